package kinematics

import (
	"github.com/TheBitDrifter/table"
)

// Component represents a data attribute/state that can be attached to entities
// Components can be used to create queries for entities
type Component interface {
	table.ElementType
}

// Position2D is an object's center of mass in 2D Euclidean space.
//
// It describes the center of a rigid body, not the edges or bounding box a
// renderer might draw. All distances are in meters.
type Position2D struct {
	X float64
	Y float64
}

// Velocity2D is the group velocity of an object in 2D Euclidean space, the
// velocity a single entity would have taken in aggregate.
// All velocities are in meters per second.
type Velocity2D struct {
	X float64
	Y float64
}

func NewPosition2D(x, y float64) Position2D {
	return Position2D{X: x, Y: y}
}

func NewVelocity2D(vx, vy float64) Velocity2D {
	return Velocity2D{X: vx, Y: vy}
}

var (
	// Position is the storage handle for Position2D.
	Position = FactoryNewComponent[Position2D]()
	// Velocity is the storage handle for Velocity2D.
	Velocity = FactoryNewComponent[Velocity2D]()
)
