// Package physics implements the toy N-body stepper: pairwise gravity
// and elastic collisions between the scene's dynamic spheres. It runs
// between frames, never during one.
package physics

import (
	"github.com/chewxy/math32"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

// G is the gravitational constant at toy scale
const G float32 = 2.0

// Simulation advances the dynamic spheres of a scene. It mutates object
// positions and rigidbody velocities in place, so it must never overlap
// a render of the same scene.
type Simulation struct {
	scene *scene.Scene
}

// NewSimulation creates a stepper over the given scene
func NewSimulation(s *scene.Scene) *Simulation {
	return &Simulation{scene: s}
}

// Step advances the simulation by dt and returns how far the system's
// center of mass moved. Callers that want the view to track the system
// apply the delta to the camera position and the light.
func (sim *Simulation) Step(dt float32) mathpkg.Vec3 {
	before := sim.centerOfMass()

	sim.applyGravity(dt)
	sim.integrate(dt)
	sim.resolveCollisions()

	return sim.centerOfMass().Subtract(before)
}

// applyGravity accumulates pairwise gravitational acceleration into each
// dynamic sphere's velocity
func (sim *Simulation) applyGravity(dt float32) {
	type body struct {
		position mathpkg.Vec3
		mass     float32
	}
	var bodies []body
	for i := range sim.scene.Objects {
		obj := &sim.scene.Objects[i]
		if obj.Kind == scene.KindSphere && obj.Body != nil {
			bodies = append(bodies, body{position: obj.Center, mass: obj.Body.Mass})
		}
	}

	for i := range sim.scene.Objects {
		obj := &sim.scene.Objects[i]
		if obj.Kind != scene.KindSphere || obj.Body == nil {
			continue
		}

		var acceleration mathpkg.Vec3
		for _, other := range bodies {
			offset := other.position.Subtract(obj.Center)
			sqDist := offset.LengthSquared()
			// A body exerts no force on itself; overlapping centers
			// would blow the force up anyway
			if sqDist < mathpkg.Epsilon {
				continue
			}
			magnitude := G * other.mass / sqDist
			acceleration = acceleration.Add(offset.Divide(math32.Sqrt(sqDist)).Multiply(magnitude))
		}
		obj.Body.Velocity = obj.Body.Velocity.Add(acceleration.Multiply(dt))
	}
}

// integrate moves every dynamic sphere along its velocity
func (sim *Simulation) integrate(dt float32) {
	for i := range sim.scene.Objects {
		obj := &sim.scene.Objects[i]
		if obj.Kind == scene.KindSphere && obj.Body != nil {
			obj.Center = obj.Center.Add(obj.Body.Velocity.Multiply(dt))
		}
	}
}

// resolveCollisions applies a 1-D elastic collision along the line of
// centers for every overlapping, approaching sphere pair
func (sim *Simulation) resolveCollisions() {
	objects := sim.scene.Objects
	for i := range objects {
		first := &objects[i]
		if first.Kind != scene.KindSphere || first.Body == nil {
			continue
		}
		for j := i + 1; j < len(objects); j++ {
			second := &objects[j]
			if second.Kind != scene.KindSphere || second.Body == nil {
				continue
			}

			offset := second.Center.Subtract(first.Center)
			dist := offset.Length()
			if dist > first.Radius+second.Radius {
				continue
			}
			// Already separating; resolving again would glue them
			if offset.Dot(second.Body.Velocity.Subtract(first.Body.Velocity)) >= 0 {
				continue
			}

			m1, m2 := first.Body.Mass, second.Body.Mass
			axis := offset.Divide(dist)
			v1 := first.Body.Velocity.Dot(axis)
			v2 := second.Body.Velocity.Dot(axis)

			p1, p2 := m1*v1, m2*v2
			totalMass := m1 + m2
			v1After := (p1 + 2*p2 - m2*v1) / totalMass
			v2After := (p2 + 2*p1 - m1*v2) / totalMass

			first.Body.Velocity = first.Body.Velocity.Add(axis.Multiply(v1After - v1))
			second.Body.Velocity = second.Body.Velocity.Add(axis.Multiply(v2After - v2))
		}
	}
}

// centerOfMass returns the mass-weighted mean position of the dynamic
// spheres, or the zero vector when the scene has none
func (sim *Simulation) centerOfMass() mathpkg.Vec3 {
	var weighted mathpkg.Vec3
	var totalMass float32
	for i := range sim.scene.Objects {
		obj := &sim.scene.Objects[i]
		if obj.Kind == scene.KindSphere && obj.Body != nil {
			weighted = weighted.Add(obj.Center.Multiply(obj.Body.Mass))
			totalMass += obj.Body.Mass
		}
	}
	if totalMass == 0 {
		return mathpkg.Vec3{}
	}
	return weighted.Divide(totalMass)
}
