package renderer

import (
	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// Transform is a position and orientation pair
type Transform struct {
	Position mathpkg.Vec3
	Rotation mathpkg.Quat
}

// Camera owns the view transform and projection parameters. Its fields
// are mutated between frames by whatever drives it (the interactive
// viewer, or nothing at all for offline renders); the renderer itself
// only reads them.
type Camera struct {
	Transform   Transform
	PxPerUnit   float32 // pixels per world unit at the focal plane
	FocalLength float32
}

// NewCamera creates a camera at the origin with an identity rotation
func NewCamera(pxPerUnit, focalLength float32) *Camera {
	return &Camera{
		Transform:   Transform{Rotation: mathpkg.QuatIdentity},
		PxPerUnit:   pxPerUnit,
		FocalLength: focalLength,
	}
}

// Ray builds the world-space primary ray for a pixel at screen offset
// (x, y) from the image center, in pixels. The camera looks along +X in
// its own space; screen x maps to -Y and screen y to -Z.
func (c *Camera) Ray(x, y float32) mathpkg.Ray {
	direction := mathpkg.Vec3{
		X: c.FocalLength,
		Y: -x / c.PxPerUnit,
		Z: -y / c.PxPerUnit,
	}
	return mathpkg.NewRay(c.Transform.Position, direction.Rotate(c.Transform.Rotation))
}
