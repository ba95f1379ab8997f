package game

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"spaceinvaders/world"
)

// Particle is a single spark of an explosion
type Particle struct {
	x, y     float64
	vx, vy   float64 // pixels per tick
	age      int     // ticks
	lifetime int
	size     float64
	color    color.NRGBA
}

// Alive reports whether the particle is still visible
func (p *Particle) Alive() bool {
	return p.age < p.lifetime
}

// Explosions spawns and animates a short burst of sparks for every hit.
// It is cosmetic only and never feeds back into the world.
type Explosions struct {
	particles    []Particle
	maxParticles int
	burst        int

	speedMin, speedMax       float64
	lifetimeMin, lifetimeMax int
	sizeMin, sizeMax         float64
	colorBase                color.NRGBA
	colorVariation           color.NRGBA

	rng *rand.Rand
}

// NewExplosions creates an orange spark emitter
func NewExplosions(rng *rand.Rand) *Explosions {
	return &Explosions{
		maxParticles:   400,
		burst:          24,
		speedMin:       1.0,
		speedMax:       4.0,
		lifetimeMin:    12,
		lifetimeMax:    30,
		sizeMin:        1.5,
		sizeMax:        3.5,
		colorBase:      color.NRGBA{R: 255, G: 170, B: 40, A: 255},
		colorVariation: color.NRGBA{R: 0, G: 80, B: 40, A: 0},
		rng:            rng,
	}
}

// Emit starts a burst centred on a hit enemy sprite
func (ex *Explosions) Emit(at world.Point, offset float64) {
	for i := 0; i < ex.burst && len(ex.particles) < ex.maxParticles; i++ {
		angle := ex.rng.Float64() * 2 * math.Pi
		speed := ex.speedMin + ex.rng.Float64()*(ex.speedMax-ex.speedMin)
		ex.particles = append(ex.particles, Particle{
			x:        at.X + offset,
			y:        at.Y + offset,
			vx:       math.Cos(angle) * speed,
			vy:       math.Sin(angle) * speed,
			lifetime: ex.lifetimeMin + ex.rng.Intn(ex.lifetimeMax-ex.lifetimeMin+1),
			size:     ex.sizeMin + ex.rng.Float64()*(ex.sizeMax-ex.sizeMin),
			color: color.NRGBA{
				R: vary(ex.colorBase.R, ex.colorVariation.R, ex.rng),
				G: vary(ex.colorBase.G, ex.colorVariation.G, ex.rng),
				B: vary(ex.colorBase.B, ex.colorVariation.B, ex.rng),
				A: ex.colorBase.A,
			},
		})
	}
}

// Update ages and moves every particle and drops the dead ones
func (ex *Explosions) Update() {
	alive := ex.particles[:0]
	for _, p := range ex.particles {
		p.age++
		p.x += p.vx
		p.y += p.vy
		p.vx *= 0.95
		p.vy *= 0.95
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	ex.particles = alive
}

// Reset removes all particles
func (ex *Explosions) Reset() {
	ex.particles = ex.particles[:0]
}

// Len returns the number of live particles
func (ex *Explosions) Len() int {
	return len(ex.particles)
}

// Draw renders the particles, fading them out with age
func (ex *Explosions) Draw(screen *ebiten.Image) {
	for _, p := range ex.particles {
		fade := 1 - float64(p.age)/float64(p.lifetime)
		clr := p.color
		clr.A = uint8(float64(clr.A) * math.Max(0, math.Min(1, fade)))
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), float32(p.size), clr, true)
	}
}

func vary(base, spread uint8, rng *rand.Rand) uint8 {
	v := float64(base) + (rng.Float64()*2-1)*float64(spread)
	return uint8(math.Max(0, math.Min(255, v)))
}
