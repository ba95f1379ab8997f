package world

import "math"

// EntityType identifies the type of entity
type EntityType int

const (
	EntityTypeShip EntityType = iota
	EntityTypeBullet
	EntityTypeEnemy
)

// String returns a lowercase name, used in log fields
func (t EntityType) String() string {
	switch t {
	case EntityTypeShip:
		return "ship"
	case EntityTypeBullet:
		return "bullet"
	case EntityTypeEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is the shape shared by everything on the play field.
// Renderers only need the type and the top-left position.
type Entity interface {
	Type() EntityType
	Position() (x, y float64)
	Active() bool
	Update()
}

// Point is a position on the play field
type Point struct {
	X, Y float64
}

// distance returns the Euclidean distance between two points
func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}
