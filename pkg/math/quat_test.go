package math

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func quatDistSq(a, b Quat) float32 {
	d := Quat{a.R - b.R, a.I - b.I, a.J - b.J, a.K - b.K}
	return d.LengthSquared()
}

func TestQuat_Multiply(t *testing.T) {
	a := NewQuat(1, 1, 1, 1)
	b := NewQuat(0.5, 1, 0.5, 1)

	got := a.Multiply(b)
	assert.Less(t, quatDistSq(got, NewQuat(-2, 2, 1, 1)), float32(Epsilon))
}

func TestQuat_Conjugate(t *testing.T) {
	q := NewQuat(1, 2, 3, 4)
	if got := q.Conjugate(); got != NewQuat(1, -2, -3, -4) {
		t.Errorf("expected (1, -2, -3, -4), got %v", got)
	}

	// q * conj(q) is real with magnitude |q|^2
	prod := q.Multiply(q.Conjugate())
	assert.InDelta(t, 30.0, prod.R, 30*Epsilon)
	assert.InDelta(t, 0.0, prod.I, Epsilon)
	assert.InDelta(t, 0.0, prod.J, Epsilon)
	assert.InDelta(t, 0.0, prod.K, Epsilon)
}

func TestQuat_Length(t *testing.T) {
	q := NewQuat(1, 2, 3, 4)
	assert.InDelta(t, 30.0, q.LengthSquared(), 30*Epsilon)
	assert.InDelta(t, gomath.Sqrt(30), float64(q.Length()), 1e-6)
}

func TestQuat_Normalize(t *testing.T) {
	q := NewQuat(1, 2, 3, 4).Normalize()
	assert.InDelta(t, 1.0, q.LengthSquared(), Epsilon)
}

func TestRotation_UnitMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		axis  Vec3
		angle float32
	}{
		{"quarter turn about z", UnitZ, gomath.Pi / 2},
		{"full turn about y", UnitY, 2 * gomath.Pi},
		{"non-unit axis", NewVec3(1, 2, 3), 0.7},
		{"tiny angle", UnitX, 1e-4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Rotation(tt.axis, tt.angle)
			assert.InDelta(t, 1.0, q.LengthSquared(), Epsilon)
		})
	}
}

func TestRotation_ComposedDriftCorrectable(t *testing.T) {
	// Many incremental compositions drift; Normalize pulls the result
	// back to unit magnitude, which is the correction policy camera
	// controllers apply between frames.
	rot := QuatIdentity
	step := Rotation(NewVec3(0.3, 1, -0.2).Normalize(), 0.01)
	for i := 0; i < 10000; i++ {
		rot = step.Multiply(rot)
	}

	corrected := rot.Normalize()
	assert.InDelta(t, 1.0, corrected.LengthSquared(), Epsilon)
}
