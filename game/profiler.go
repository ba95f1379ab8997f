package game

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"

	"github.com/charmbracelet/log"
)

// Profiler records a CPU profile and an execution trace for a whole session
type Profiler struct {
	logger    *log.Logger
	cpuPath   string
	tracePath string
	cpuFile   *os.File
	traceFile *os.File
}

// StartProfiler begins CPU profiling into cpuPath and tracing into cpuPath+".trace"
func StartProfiler(cpuPath string, logger *log.Logger) (*Profiler, error) {
	p := &Profiler{logger: logger, cpuPath: cpuPath, tracePath: cpuPath + ".trace"}

	cpuFile, err := os.Create(p.cpuPath)
	if err != nil {
		return nil, fmt.Errorf("create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		cpuFile.Close()
		return nil, fmt.Errorf("start CPU profile: %w", err)
	}
	p.cpuFile = cpuFile

	traceFile, err := os.Create(p.tracePath)
	if err != nil {
		p.Stop()
		return nil, fmt.Errorf("create trace file: %w", err)
	}
	if err := trace.Start(traceFile); err != nil {
		traceFile.Close()
		p.Stop()
		return nil, fmt.Errorf("start trace: %w", err)
	}
	p.traceFile = traceFile

	logger.Info("profiling", "cpu", p.cpuPath, "trace", p.tracePath)
	return p, nil
}

// Stop flushes both recordings and logs memory statistics
func (p *Profiler) Stop() {
	if p.traceFile != nil {
		trace.Stop()
		p.traceFile.Close()
		p.traceFile = nil
	}
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.cpuFile = nil
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile saved",
		"cpu", p.cpuPath,
		"view", "go tool pprof -http=:8080 "+p.cpuPath,
		"heap_kb", m.HeapAlloc/1024,
		"num_gc", m.NumGC,
	)
}
