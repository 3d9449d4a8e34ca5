// Package geometry implements ray-object intersection as pure functions.
// Missing is a normal outcome, reported through the ok result; no
// condition here is an error.
package geometry

import (
	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

// Hit records where a ray meets a surface: the distance t along the ray,
// the point itself and the unit surface normal. Hits are ephemeral; the
// caller that asked for the test owns the value.
type Hit struct {
	T      float32
	Point  mathpkg.Vec3
	Normal mathpkg.Vec3
}

// ObjectHit tests a ray against a scene object, dispatching on its kind
func ObjectHit(ray mathpkg.Ray, obj *scene.Object) (Hit, bool) {
	switch obj.Kind {
	case scene.KindSphere:
		return SphereHit(ray, obj.Center, obj.Radius)
	case scene.KindTriangle:
		return TriangleHit(ray, obj.P0, obj.P1, obj.P2)
	}
	return Hit{}, false
}
