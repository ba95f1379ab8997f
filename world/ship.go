package world

// Ship is the player craft. It slides along a fixed row and owns its bullets.
type Ship struct {
	X, Y float64

	// ChangeX is the horizontal velocity accumulator
	ChangeX float64

	// Bullets holds every bullet fired and not yet pruned
	Bullets []*Bullet

	maxX        float64
	bulletSpeed float64
}

// NewShip creates a ship at (x, y) clamped to [0, maxX]
func NewShip(x, y, maxX, bulletSpeed float64) *Ship {
	return &Ship{
		X:           x,
		Y:           y,
		maxX:        maxX,
		bulletSpeed: bulletSpeed,
		Bullets:     make([]*Bullet, 0, 16),
	}
}

// Move adds delta to the velocity accumulator. It is not an absolute set,
// so overlapping key presses combine.
func (s *Ship) Move(delta float64) {
	s.ChangeX += delta
}

// Update applies the velocity and clamps x to the screen
func (s *Ship) Update() {
	s.X += s.ChangeX
	if s.X < 0 {
		s.X = 0
	} else if s.X > s.maxX {
		s.X = s.maxX
	}
}

// FireBullet spawns a bullet at the ship position and returns it
func (s *Ship) FireBullet() *Bullet {
	b := NewBullet(s.X, s.Y, s.bulletSpeed)
	b.Fire()
	s.Bullets = append(s.Bullets, b)
	return b
}

// UpdateBullets advances every bullet in flight
func (s *Ship) UpdateBullets() {
	for _, b := range s.Bullets {
		if b.Fired {
			b.Update()
		}
	}
}

// PruneBullets drops inactive bullets in place and returns how many were removed
func (s *Ship) PruneBullets() int {
	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if b.Fired {
			kept = append(kept, b)
		}
	}
	removed := len(s.Bullets) - len(kept)
	// Clear the tail so pruned bullets can be collected
	for i := len(kept); i < len(s.Bullets); i++ {
		s.Bullets[i] = nil
	}
	s.Bullets = kept
	return removed
}

// ActiveBullets returns the number of bullets in flight
func (s *Ship) ActiveBullets() int {
	n := 0
	for _, b := range s.Bullets {
		if b.Fired {
			n++
		}
	}
	return n
}

// Type implements Entity
func (s *Ship) Type() EntityType { return EntityTypeShip }

// Position implements Entity
func (s *Ship) Position() (float64, float64) { return s.X, s.Y }

// Active implements Entity
func (s *Ship) Active() bool { return true }
