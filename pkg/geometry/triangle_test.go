package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

var testTriangle = [3]mathpkg.Vec3{
	mathpkg.NewVec3(0, 1, 1),
	mathpkg.NewVec3(0, 1, -1),
	mathpkg.NewVec3(0, -1, 0),
}

func TestTriangleHit_Center(t *testing.T) {
	ray := mathpkg.NewRay(mathpkg.NewVec3(-5, 0, 0), mathpkg.NewVec3(1, 0, 0))

	hit, ok := TriangleHit(ray, testTriangle[0], testTriangle[1], testTriangle[2])
	require.True(t, ok, "expected hit")

	assert.InDelta(t, 5.0, hit.T, mathpkg.Epsilon*8)

	// Normal is parallel to the x-axis and unit length
	assert.InDelta(t, 1.0, hit.Normal.X*hit.Normal.X, mathpkg.Epsilon*8)
	assert.InDelta(t, 0.0, hit.Normal.Y, mathpkg.Epsilon*8)
	assert.InDelta(t, 0.0, hit.Normal.Z, mathpkg.Epsilon*8)
}

func TestTriangleHit_OutsideFootprint(t *testing.T) {
	tests := []struct {
		name   string
		origin mathpkg.Vec3
	}{
		{"far above", mathpkg.NewVec3(-5, 0, 10)},
		{"far below", mathpkg.NewVec3(-5, 0, -10)},
		{"far sideways", mathpkg.NewVec3(-5, 10, 0)},
		{"past an edge", mathpkg.NewVec3(-5, 1.01, 1.01)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := mathpkg.NewRay(tt.origin, mathpkg.NewVec3(1, 0, 0))
			_, ok := TriangleHit(ray, testTriangle[0], testTriangle[1], testTriangle[2])
			assert.False(t, ok)
		})
	}
}

func TestTriangleHit_ParallelRay(t *testing.T) {
	// Ray parallel to the plane: t is not finite, reported as a miss
	ray := mathpkg.NewRay(mathpkg.NewVec3(-5, 0, 0), mathpkg.NewVec3(0, 1, 0))
	_, ok := TriangleHit(ray, testTriangle[0], testTriangle[1], testTriangle[2])
	assert.False(t, ok)
}

func TestTriangleHit_BehindOrigin(t *testing.T) {
	ray := mathpkg.NewRay(mathpkg.NewVec3(5, 0, 0), mathpkg.NewVec3(1, 0, 0))
	_, ok := TriangleHit(ray, testTriangle[0], testTriangle[1], testTriangle[2])
	assert.False(t, ok)
}

func TestTriangleHit_DegenerateVertices(t *testing.T) {
	// Collinear or duplicate vertices must degrade to a miss, not panic
	tests := []struct {
		name       string
		p0, p1, p2 mathpkg.Vec3
	}{
		{
			"collinear",
			mathpkg.NewVec3(0, -1, 0), mathpkg.NewVec3(0, 0, 0), mathpkg.NewVec3(0, 1, 0),
		},
		{
			"duplicate vertex",
			mathpkg.NewVec3(0, 1, 1), mathpkg.NewVec3(0, 1, 1), mathpkg.NewVec3(0, -1, 0),
		},
		{
			"all identical",
			mathpkg.NewVec3(0, 0, 0), mathpkg.NewVec3(0, 0, 0), mathpkg.NewVec3(0, 0, 0),
		},
	}

	ray := mathpkg.NewRay(mathpkg.NewVec3(-5, 0, 0), mathpkg.NewVec3(1, 0, 0))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := TriangleHit(ray, tt.p0, tt.p1, tt.p2)
			assert.False(t, ok)
		})
	}
}

func TestTriangleHit_WindingFlipsNormal(t *testing.T) {
	ray := mathpkg.NewRay(mathpkg.NewVec3(-5, 0, 0), mathpkg.NewVec3(1, 0, 0))

	forward, ok := TriangleHit(ray, testTriangle[0], testTriangle[1], testTriangle[2])
	require.True(t, ok)
	reversed, ok := TriangleHit(ray, testTriangle[1], testTriangle[0], testTriangle[2])
	require.True(t, ok)

	// The normal follows the winding; it is not forced to face the ray
	assert.InDelta(t, -forward.Normal.X, reversed.Normal.X, mathpkg.Epsilon*8)
}

func TestObjectHit_Dispatch(t *testing.T) {
	ray := mathpkg.NewRay(mathpkg.NewVec3(-5, 0, 0), mathpkg.NewVec3(1, 0, 0))

	sphere := scene.NewSphere(mathpkg.Vec3{}, 1.0, scene.NewColor(255, 0, 0))
	hit, ok := ObjectHit(ray, &sphere)
	require.True(t, ok)
	assert.InDelta(t, 4.0, hit.T, mathpkg.Epsilon*8)

	tri := scene.NewTriangle(testTriangle[0], testTriangle[1], testTriangle[2], scene.NewColor(0, 255, 0))
	hit, ok = ObjectHit(ray, &tri)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, mathpkg.Epsilon*8)
}
