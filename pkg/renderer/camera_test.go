package renderer

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

func TestCamera_Ray_Identity(t *testing.T) {
	cam := NewCamera(160, 2)

	tests := []struct {
		name     string
		x, y     float32
		expected mathpkg.Vec3
	}{
		{"image center", 0, 0, mathpkg.NewVec3(2, 0, 0)},
		{"right of center", 160, 0, mathpkg.NewVec3(2, -1, 0)},
		{"below center", 0, 80, mathpkg.NewVec3(2, 0, -0.5)},
		{"upper left", -320, -160, mathpkg.NewVec3(2, 2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := cam.Ray(tt.x, tt.y)
			assert.Equal(t, cam.Transform.Position, ray.Origin)
			assert.Less(t, ray.Direction.Subtract(tt.expected).LengthSquared(), float32(mathpkg.Epsilon))
		})
	}
}

func TestCamera_Ray_Rotated(t *testing.T) {
	cam := NewCamera(160, 2)
	// Quarter turn about +Z swings the +X view axis onto +Y
	cam.Transform.Rotation = mathpkg.Rotation(mathpkg.UnitZ, gomath.Pi/2)

	dir := cam.Ray(0, 0).Direction
	want := mathpkg.NewVec3(0, 2, 0)
	assert.Less(t, dir.Subtract(want).LengthSquared(), float32(mathpkg.Epsilon)*8)
}

func TestCamera_Ray_FollowsPosition(t *testing.T) {
	cam := NewCamera(160, 2)
	cam.Transform.Position = mathpkg.NewVec3(1, -2, 3)

	ray := cam.Ray(10, -10)
	assert.Equal(t, mathpkg.NewVec3(1, -2, 3), ray.Origin)
}
