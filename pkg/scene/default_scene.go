package scene

import (
	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// NewDefaultScene creates a small demonstration scene with two spheres,
// a triangle backdrop and a light above the camera axis
func NewDefaultScene() *Scene {
	return &Scene{
		Objects: []Object{
			NewSphere(mathpkg.NewVec3(4, 0, 0), 0.75, NewColor(220, 60, 60)),
			NewSphere(mathpkg.NewVec3(5, 1.6, 0.4), 0.5, NewColor(60, 120, 220)),
			NewTriangle(
				mathpkg.NewVec3(8, 4, 3),
				mathpkg.NewVec3(8, -4, 3),
				mathpkg.NewVec3(8, 0, -3),
				NewColor(230, 230, 230),
			),
		},
		Light: mathpkg.NewVec3(2, -3, 4),
	}
}

// NewOrbitScene creates a scene of dynamic spheres for the gravity toy:
// a heavy central body and two light orbiters
func NewOrbitScene() *Scene {
	return &Scene{
		Objects: []Object{
			NewDynamicSphere(mathpkg.NewVec3(6, 0, 0), 0.8, NewColor(240, 200, 80), 40, mathpkg.Vec3{}),
			NewDynamicSphere(mathpkg.NewVec3(6, 2.5, 0), 0.25, NewColor(90, 160, 240), 1,
				mathpkg.NewVec3(0, 0, 5.5)),
			NewDynamicSphere(mathpkg.NewVec3(6, -3.5, 0), 0.3, NewColor(200, 90, 90), 1.5,
				mathpkg.NewVec3(0, 0, -4.5)),
		},
		Light: mathpkg.NewVec3(0, 0, 6),
	}
}
