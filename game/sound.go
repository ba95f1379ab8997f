package game

//go:generate go tool mockgen -source=sound.go -destination=mock_sound_test.go -package=game

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// Cue identifies a sound effect
type Cue int

const (
	CueShoot Cue = iota
	CueHit
	CueGameOver
)

// Sound plays short effects. Implementations must not block the frame loop.
type Sound interface {
	Play(cue Cue)
}

// NopSound discards every cue
type NopSound struct{}

// Play implements Sound
func (NopSound) Play(Cue) {}

// cueSource describes where a cue comes from: a WAV file, or a synthesized beep
type cueSource struct {
	file     string
	freq     float64
	duration float64
}

var cueSources = map[Cue]cueSource{
	CueShoot:    {file: "shoot.wav", freq: 950, duration: 0.07},
	CueHit:      {file: "hit.wav", freq: 240, duration: 0.12},
	CueGameOver: {file: "gameover.wav", freq: 110, duration: 0.6},
}

// player is the part of *audio.Player used for cues
type player interface {
	Rewind() error
	Play()
}

// AudioSound plays cues through ebiten's audio context
type AudioSound struct {
	players map[Cue]player
	logger  *log.Logger
}

// NewAudioSound loads one player per cue from dir. A missing WAV falls back to
// a beep; a WAV that exists but cannot be decoded is an error.
func NewAudioSound(dir string, logger *log.Logger) (*AudioSound, error) {
	ctx := audio.NewContext(sampleRate)
	s := &AudioSound{
		players: make(map[Cue]player, len(cueSources)),
		logger:  logger,
	}

	for cue, src := range cueSources {
		p, err := loadWav(ctx, filepath.Join(dir, src.file))
		if errors.Is(err, fs.ErrNotExist) {
			p, err = newBeep(ctx, src.freq, src.duration)
		}
		if err != nil {
			return nil, fmt.Errorf("load sound %s: %w", src.file, err)
		}
		s.players[cue] = p
	}
	return s, nil
}

// Play implements Sound
func (s *AudioSound) Play(cue Cue) {
	p, ok := s.players[cue]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		s.logger.Debug("rewind sound", "cue", cue, "err", err)
		return
	}
	p.Play()
}

func loadWav(ctx *audio.Context, path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ctx.NewPlayer(stream)
}

// newBeep synthesizes a sine tone as 16-bit little-endian stereo PCM
func newBeep(ctx *audio.Context, freq, seconds float64) (*audio.Player, error) {
	n := int(sampleRate * seconds)
	pcm := make([]byte, n*4)
	const amp = 0.3
	for i := 0; i < n; i++ {
		// Linear fade-out avoids a click at the end
		fade := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * amp * fade * math.MaxInt16)
		pcm[4*i] = byte(v)
		pcm[4*i+1] = byte(v >> 8)
		pcm[4*i+2] = byte(v)
		pcm[4*i+3] = byte(v >> 8)
	}
	return ctx.NewPlayerFromBytes(pcm), nil
}
