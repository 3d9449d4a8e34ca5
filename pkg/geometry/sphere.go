package geometry

import (
	"github.com/chewxy/math32"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// minNormal32 is the smallest positive normal float32 (2^-126). A
// discriminant below it is either negative or a subnormal grazing
// tangency too small to trust.
const minNormal32 float32 = 1.1754943508222875e-38

// SphereHit tests a ray against a sphere and returns the nearest
// non-negative intersection, if any
func SphereHit(ray mathpkg.Ray, center mathpkg.Vec3, radius float32) (Hit, bool) {
	// Quadratic in t: a*t^2 - 2*b*t + c = 0 with l pointing at the center
	l := center.Subtract(ray.Origin)
	a := ray.Direction.LengthSquared()
	b := ray.Direction.Dot(l)
	c := l.LengthSquared() - radius*radius

	discriminant := b*b - a*c
	if discriminant != 0 && discriminant < minNormal32 {
		return Hit{}, false
	}

	sqrtD := math32.Sqrt(discriminant)

	// Nearest point of entry: the smaller of the non-negative roots.
	// a is a squared magnitude, so dividing by it cannot flip the sign.
	t := float32(-1)
	for _, numerator := range [2]float32{b - sqrtD, b + sqrtD} {
		if numerator < 0 {
			continue
		}
		root := numerator / a
		if !isFinite(root) {
			continue
		}
		if t < 0 || root < t {
			t = root
		}
	}
	if t < 0 {
		return Hit{}, false
	}

	point := ray.At(t)
	return Hit{
		T:      t,
		Point:  point,
		Normal: point.Subtract(center).Normalize(),
	}, true
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
