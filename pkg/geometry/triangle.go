package geometry

import (
	"github.com/chewxy/math32"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// TriangleHit tests a ray against a triangle. The plane is solved for t
// first, then the ray direction is checked against the three vertex
// triple products for sign consistency with the overall determinant: any
// disagreement means the ray passes outside an edge. Degenerate
// (collinear) vertices produce a NaN t and report no hit.
func TriangleHit(ray mathpkg.Ray, p0, p1, p2 mathpkg.Vec3) (Hit, bool) {
	v1 := p1.Subtract(p0)
	v2 := p2.Subtract(p0)
	normal := v1.Cross(v2)

	t := -normal.Dot(ray.Origin.Subtract(p0)) / normal.Dot(ray.Direction)
	if !isFinite(t) || math32.Signbit(t) {
		return Hit{}, false
	}

	// Vertices relative to the ray origin
	r0 := p0.Subtract(ray.Origin)
	r1 := p1.Subtract(ray.Origin)
	r2 := p2.Subtract(ray.Origin)

	detNeg := math32.Signbit(r0.Dot(r1.Cross(r2)))
	if math32.Signbit(ray.Direction.Dot(r1.Cross(r2))) != detNeg ||
		math32.Signbit(ray.Direction.Dot(r2.Cross(r0))) != detNeg ||
		math32.Signbit(ray.Direction.Dot(r0.Cross(r1))) != detNeg {
		return Hit{}, false
	}

	return Hit{
		T:      t,
		Point:  ray.At(t),
		Normal: normal.Normalize(),
	}, true
}
