package scene

import (
	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// ObjectKind discriminates the two object variants
type ObjectKind uint8

const (
	KindSphere ObjectKind = iota
	KindTriangle
)

// Rigidbody carries the dynamic state of a sphere moved by the physics
// stepper. Static objects have none.
type Rigidbody struct {
	Mass     float32
	Velocity mathpkg.Vec3
}

// Object is a tagged union of the sphere and triangle variants. Which
// fields are meaningful depends on Kind; the intersector switches on it
// exhaustively. Objects are immutable for the duration of a frame.
type Object struct {
	Kind  ObjectKind
	Color Color

	// Sphere fields
	Center mathpkg.Vec3
	Radius float32
	Body   *Rigidbody

	// Triangle fields
	P0, P1, P2 mathpkg.Vec3
}

// NewSphere creates a static sphere object
func NewSphere(center mathpkg.Vec3, radius float32, color Color) Object {
	return Object{Kind: KindSphere, Center: center, Radius: radius, Color: color}
}

// NewDynamicSphere creates a sphere object with mass and velocity, making
// it a participant in the physics step
func NewDynamicSphere(center mathpkg.Vec3, radius float32, color Color, mass float32, velocity mathpkg.Vec3) Object {
	obj := NewSphere(center, radius, color)
	obj.Body = &Rigidbody{Mass: mass, Velocity: velocity}
	return obj
}

// NewTriangle creates a triangle object from three vertices. Winding
// determines the normal orientation; degenerate vertices degrade to a
// shape no ray can hit.
func NewTriangle(p0, p1, p2 mathpkg.Vec3, color Color) Object {
	return Object{Kind: KindTriangle, P0: p0, P1: p1, P2: p2, Color: color}
}

// Scene is an ordered sequence of objects plus a single point light. It
// is built once and read-only during rendering; object order only breaks
// exact nearest-hit ties.
type Scene struct {
	Objects []Object
	Light   mathpkg.Vec3
}
