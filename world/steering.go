package world

import "fmt"

// Direction is a horizontal steering key
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

// SteeringMode selects how direction keys turn into ship velocity
type SteeringMode int

const (
	// SteeringAdditive adds a step on key down and subtracts it on key up
	SteeringAdditive SteeringMode = iota
	// SteeringHeld derives velocity from the set of held keys
	SteeringHeld
)

// String implements fmt.Stringer
func (m SteeringMode) String() string {
	switch m {
	case SteeringAdditive:
		return "additive"
	case SteeringHeld:
		return "held"
	default:
		return fmt.Sprintf("SteeringMode(%d)", int(m))
	}
}

// ParseSteeringMode converts a flag value into a SteeringMode
func ParseSteeringMode(s string) (SteeringMode, error) {
	switch s {
	case "additive":
		return SteeringAdditive, nil
	case "held":
		return SteeringHeld, nil
	default:
		return 0, fmt.Errorf("unknown steering mode %q (want additive or held)", s)
	}
}

// Steering turns direction key transitions into ship velocity changes
type Steering interface {
	KeyDown(ship *Ship, dir Direction)
	KeyUp(ship *Ship, dir Direction)
	// Reset forgets held keys and stops the ship
	Reset(ship *Ship)
}

// NewSteering returns the steering model for mode
func NewSteering(mode SteeringMode, step float64) Steering {
	if mode == SteeringHeld {
		return &HeldSteering{step: step}
	}
	return &AdditiveSteering{step: step}
}

// AdditiveSteering mirrors key events one to one. Releasing one of two held
// keys restores the other's effect, but a lost key-up leaves the ship drifting.
type AdditiveSteering struct {
	step float64
}

// KeyDown implements Steering
func (a *AdditiveSteering) KeyDown(ship *Ship, dir Direction) {
	ship.Move(a.sign(dir) * a.step)
}

// KeyUp implements Steering
func (a *AdditiveSteering) KeyUp(ship *Ship, dir Direction) {
	ship.Move(-a.sign(dir) * a.step)
}

// Reset implements Steering
func (a *AdditiveSteering) Reset(ship *Ship) {
	ship.ChangeX = 0
}

func (a *AdditiveSteering) sign(dir Direction) float64 {
	if dir == DirectionLeft {
		return -1
	}
	return 1
}

// HeldSteering tracks which direction keys are down and sets the velocity
// from that set, so repeated or missing events cannot accumulate.
type HeldSteering struct {
	step  float64
	left  bool
	right bool
}

// KeyDown implements Steering
func (h *HeldSteering) KeyDown(ship *Ship, dir Direction) {
	h.set(dir, true)
	ship.ChangeX = h.velocity()
}

// KeyUp implements Steering
func (h *HeldSteering) KeyUp(ship *Ship, dir Direction) {
	h.set(dir, false)
	ship.ChangeX = h.velocity()
}

// Reset implements Steering
func (h *HeldSteering) Reset(ship *Ship) {
	h.left, h.right = false, false
	ship.ChangeX = 0
}

func (h *HeldSteering) set(dir Direction, down bool) {
	if dir == DirectionLeft {
		h.left = down
	} else {
		h.right = down
	}
}

func (h *HeldSteering) velocity() float64 {
	v := 0.0
	if h.left {
		v -= h.step
	}
	if h.right {
		v += h.step
	}
	return v
}
