package world

import "math/rand"

// EnemyPool is the fixed set of enemies for a session.
// Enemies are never removed; a hit relocates them instead.
type EnemyPool struct {
	enemies []*Enemy
	config  Config
	rng     *rand.Rand
}

// NewEnemyPool creates config.EnemyCount enemies at random spawn positions
func NewEnemyPool(config Config, rng *rand.Rand) *EnemyPool {
	p := &EnemyPool{
		enemies: make([]*Enemy, config.EnemyCount),
		config:  config,
		rng:     rng,
	}
	for i := range p.enemies {
		p.enemies[i] = NewEnemy(0, 0, config.EnemySpeed, config.EnemyDrop, config.EnemyMaxX)
		p.Respawn(p.enemies[i])
	}
	return p
}

// Respawn moves e to a random whole-pixel position in the spawn band.
// Its direction of travel is kept.
func (p *EnemyPool) Respawn(e *Enemy) {
	e.X = float64(p.rng.Intn(int(p.config.EnemyMaxX) + 1))
	minY, maxY := int(p.config.SpawnMinY), int(p.config.SpawnMaxY)
	e.Y = float64(minY + p.rng.Intn(maxY-minY+1))
}

// Reset respawns every enemy and restores its initial heading
func (p *EnemyPool) Reset() {
	for _, e := range p.enemies {
		e.ChangeX = p.config.EnemySpeed
		p.Respawn(e)
	}
}

// Park moves every enemy to row y, out of reach of bullets
func (p *EnemyPool) Park(y float64) {
	for _, e := range p.enemies {
		e.Y = y
	}
}

// Enemies returns the pool members. The slice must not be modified.
func (p *EnemyPool) Enemies() []*Enemy {
	return p.enemies
}

// Len returns the pool size
func (p *EnemyPool) Len() int {
	return len(p.enemies)
}
