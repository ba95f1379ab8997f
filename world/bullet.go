package world

// Bullet is a ship projectile travelling straight up
type Bullet struct {
	X, Y float64

	// Speed is subtracted from Y every tick
	Speed float64

	// Fired is true while the bullet is in flight
	Fired bool
}

// NewBullet creates an inactive bullet at the given position
func NewBullet(x, y, speed float64) *Bullet {
	return &Bullet{X: x, Y: y, Speed: speed}
}

// Fire marks the bullet as in flight
func (b *Bullet) Fire() {
	b.Fired = true
}

// Update moves the bullet up and deactivates it once it reaches the top edge
func (b *Bullet) Update() {
	b.Y -= b.Speed
	if b.Y <= 0 {
		b.Fired = false
	}
}

// Type implements Entity
func (b *Bullet) Type() EntityType { return EntityTypeBullet }

// Position implements Entity
func (b *Bullet) Position() (float64, float64) { return b.X, b.Y }

// Active implements Entity
func (b *Bullet) Active() bool { return b.Fired }
