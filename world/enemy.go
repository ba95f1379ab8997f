package world

// Enemy sweeps horizontally and drops a row every time it bounces off an edge
type Enemy struct {
	X, Y float64

	// ChangeX is the horizontal velocity; its sign flips on each bounce
	ChangeX float64

	// ChangeY is the downward step applied on each bounce
	ChangeY float64

	maxX float64
}

// NewEnemy creates an enemy moving right
func NewEnemy(x, y, speed, drop, maxX float64) *Enemy {
	return &Enemy{
		X:       x,
		Y:       y,
		ChangeX: speed,
		ChangeY: drop,
		maxX:    maxX,
	}
}

// Update moves the enemy and bounces it at either bound.
// x may overshoot a bound by one step before the reflection takes effect.
func (e *Enemy) Update() {
	e.X += e.ChangeX
	if e.X <= 0 || e.X >= e.maxX {
		e.Y += e.ChangeY
		e.ChangeX = -e.ChangeX
	}
}

// CheckCollision tests every bullet in flight against the enemy.
// A bullet closer than radius is spent, respawn relocates the enemy, and the
// scan continues from the new position. It returns the number of hits.
func (e *Enemy) CheckCollision(bullets []*Bullet, radius float64, respawn func(*Enemy)) int {
	hits := 0
	for _, b := range bullets {
		if !b.Fired {
			continue
		}
		if distance(e.X, e.Y, b.X, b.Y) < radius {
			b.Fired = false
			hits++
			respawn(e)
		}
	}
	return hits
}

// Type implements Entity
func (e *Enemy) Type() EntityType { return EntityTypeEnemy }

// Position implements Entity
func (e *Enemy) Position() (float64, float64) { return e.X, e.Y }

// Active implements Entity
func (e *Enemy) Active() bool { return true }
