// Package world holds the simulation of the shooter: ship, bullets, the enemy
// pool and the per-frame update and collision pass. It does no rendering.
package world

import (
	"fmt"
	"math/rand"
)

// State is the session state
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String implements fmt.Stringer
func (s State) String() string {
	if s == StateGameOver {
		return "game over"
	}
	return "running"
}

// Report describes what happened during one Step
type Report struct {
	// Shots is the number of bullets fired this frame
	Shots int
	// Hits is the number of enemies hit this frame
	Hits int
	// HitAt holds where each hit enemy was before it respawned
	HitAt []Point
	// Pruned is the number of spent bullets removed this frame
	Pruned int
	// GameOver is set on the frame the session transitions to StateGameOver
	GameOver bool
	// Restarted is set when a restart request was honoured
	Restarted bool
	// Quit is set when a quit event was received
	Quit bool
}

// World is the complete simulation: one ship, a fixed enemy pool and the score.
// It is not safe for concurrent use; all calls come from the frame loop.
type World struct {
	config   Config
	ship     *Ship
	enemies  *EnemyPool
	steering Steering

	score   int
	state   State
	running bool
	frame   uint64
}

// New validates config and creates a running world
func New(config Config, rng *rand.Rand) (*World, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidConfig)
	}
	return &World{
		config:   config,
		ship:     NewShip(config.ShipStartX, config.ShipY, config.ShipMaxX, config.BulletSpeed),
		enemies:  NewEnemyPool(config, rng),
		steering: NewSteering(config.Steering, config.SteerStep),
		state:    StateRunning,
		running:  true,
	}, nil
}

// Step advances the world by one frame after applying events in order
func (w *World) Step(events []Event) Report {
	var report Report

	for _, ev := range events {
		w.handleEvent(ev, &report)
	}
	if !w.running {
		return report
	}

	w.ship.Update()

	w.ship.UpdateBullets()
	report.Pruned = w.ship.PruneBullets()

	if w.state == StateRunning {
		respawn := func(e *Enemy) {
			report.HitAt = append(report.HitAt, Point{e.X, e.Y})
			w.enemies.Respawn(e)
		}
		for _, e := range w.enemies.Enemies() {
			e.Update()
			hits := e.CheckCollision(w.ship.Bullets, w.config.HitRadius, respawn)
			w.score += hits
			report.Hits += hits
			if e.Y > w.config.GameOverY {
				w.enemies.Park(w.config.ParkY)
				w.state = StateGameOver
				report.GameOver = true
				break
			}
		}
	}

	w.frame++
	return report
}

func (w *World) handleEvent(ev Event, report *Report) {
	switch ev.Kind {
	case EventQuit:
		w.running = false
		report.Quit = true
	case EventKeyDown:
		if dir, ok := ev.Key.direction(); ok {
			w.steering.KeyDown(w.ship, dir)
			return
		}
		switch ev.Key {
		case KeyFire:
			w.ship.FireBullet()
			report.Shots++
		case KeyRestart:
			if w.state == StateGameOver {
				w.Restart()
				report.Restarted = true
			}
		}
	case EventKeyUp:
		if dir, ok := ev.Key.direction(); ok {
			w.steering.KeyUp(w.ship, dir)
		}
	}
}

// Restart resets score, ship position, bullets and enemies and returns to
// StateRunning. Steering is left alone so keys held across the restart are
// still undone by their key-up.
func (w *World) Restart() {
	w.score = 0
	w.state = StateRunning
	w.ship.X = w.config.ShipStartX
	clear(w.ship.Bullets)
	w.ship.Bullets = w.ship.Bullets[:0]
	w.enemies.Reset()
}

// ReleaseKeys forgets all held steering keys and stops the ship, e.g. after
// the window loses focus with held steering
func (w *World) ReleaseKeys() {
	w.steering.Reset(w.ship)
}

// Score returns the number of hits so far
func (w *World) Score() int { return w.score }

// State returns the session state
func (w *World) State() State { return w.state }

// Running reports whether no quit event has been received
func (w *World) Running() bool { return w.running }

// Frame returns the number of completed steps
func (w *World) Frame() uint64 { return w.frame }

// Ship returns the player ship
func (w *World) Ship() *Ship { return w.ship }

// Enemies returns the enemy pool
func (w *World) Enemies() *EnemyPool { return w.enemies }

// Config returns the configuration the world was created with
func (w *World) Config() Config { return w.config }

// Entities returns every drawable entity: enemies, bullets in flight, then the ship
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.enemies.Len()+len(w.ship.Bullets)+1)
	for _, e := range w.enemies.Enemies() {
		out = append(out, e)
	}
	for _, b := range w.ship.Bullets {
		if b.Fired {
			out = append(out, b)
		}
	}
	return append(out, w.ship)
}
