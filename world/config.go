package world

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid world config")

// Config holds the gameplay constants of a session.
// All speeds are in pixels per tick; the game runs at a fixed TPS.
type Config struct {
	// ScreenWidth is the play field width in pixels
	ScreenWidth int

	// ScreenHeight is the play field height in pixels
	ScreenHeight int

	// ShipStartX is the initial ship x coordinate
	ShipStartX float64

	// ShipY is the fixed ship row
	ShipY float64

	// ShipMaxX is the right clamp for the ship (screen width minus sprite width)
	ShipMaxX float64

	// SteerStep is the velocity change per direction key
	SteerStep float64

	// BulletSpeed is the upward distance a bullet travels per tick
	BulletSpeed float64

	// EnemyCount is the fixed size of the enemy pool
	EnemyCount int

	// EnemySpeed is the horizontal enemy speed
	EnemySpeed float64

	// EnemyDrop is the downward step applied on every bounce
	EnemyDrop float64

	// EnemyMaxX is the right bounce bound
	EnemyMaxX float64

	// SpawnMinY and SpawnMaxY bound the enemy respawn band (inclusive)
	SpawnMinY float64
	SpawnMaxY float64

	// HitRadius is the collision distance (strictly less than)
	HitRadius float64

	// GameOverY is the enemy row that ends the game once exceeded
	GameOverY float64

	// ParkY is where all enemies are moved on game over
	ParkY float64

	// Steering selects the ship velocity model
	Steering SteeringMode
}

// DefaultConfig returns the classic 800x600 configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		ShipStartX:   370,
		ShipY:        515,
		ShipMaxX:     736, // 800 - 64px sprite
		SteerStep:    10,
		BulletSpeed:  10,
		EnemyCount:   12,
		EnemySpeed:   5,
		EnemyDrop:    60,
		EnemyMaxX:    736,
		SpawnMinY:    30,
		SpawnMaxY:    120,
		HitRadius:    35,
		GameOverY:    460,
		ParkY:        1000,
		Steering:     SteeringAdditive,
	}
}

// Validate reports the first inconsistency in c
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.ScreenWidth, c.ScreenHeight)
	case c.ShipMaxX < 0 || c.ShipMaxX > float64(c.ScreenWidth):
		return fmt.Errorf("%w: ship max x %.0f outside screen", ErrInvalidConfig, c.ShipMaxX)
	case c.EnemyMaxX <= 0 || c.EnemyMaxX > float64(c.ScreenWidth):
		return fmt.Errorf("%w: enemy max x %.0f outside screen", ErrInvalidConfig, c.EnemyMaxX)
	case c.EnemyCount <= 0:
		return fmt.Errorf("%w: enemy count %d", ErrInvalidConfig, c.EnemyCount)
	case c.BulletSpeed <= 0:
		return fmt.Errorf("%w: bullet speed %.1f", ErrInvalidConfig, c.BulletSpeed)
	case c.SpawnMinY > c.SpawnMaxY:
		return fmt.Errorf("%w: spawn band [%.0f, %.0f]", ErrInvalidConfig, c.SpawnMinY, c.SpawnMaxY)
	case c.HitRadius <= 0:
		return fmt.Errorf("%w: hit radius %.1f", ErrInvalidConfig, c.HitRadius)
	case c.Steering != SteeringAdditive && c.Steering != SteeringHeld:
		return fmt.Errorf("%w: steering mode %d", ErrInvalidConfig, c.Steering)
	}
	return nil
}
