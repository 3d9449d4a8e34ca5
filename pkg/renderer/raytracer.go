package renderer

import (
	"github.com/chewxy/math32"

	"github.com/tlange/go-realtime-raytracer/pkg/geometry"
	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

// shadowEpsilon rejects shadow-ray hits at the surface the ray starts
// on: a true t=0 self-hit is expected, but floating point noise can
// land it at a tiny positive t instead.
const shadowEpsilon = 1e-4

// Raytracer renders a scene through a camera. It holds no mutable render
// state; every pixel is a pure function of the scene and camera snapshot
// for the current frame.
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	width  int
	height int
}

// NewRaytracer creates a raytracer for the given scene, camera and
// output size in pixels
func NewRaytracer(s *scene.Scene, camera *Camera, width, height int) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: camera,
		width:  width,
		height: height,
	}
}

// PixelColor shades the pixel at screen offset (x, y) from the image
// center. Rays that hit nothing, and hits that cannot produce a finite
// shaded result, come back as the background color.
func (rt *Raytracer) PixelColor(x, y float32) scene.Color {
	ray := rt.camera.Ray(x, y)

	hit, obj, ok := rt.nearestHit(ray)
	if !ok {
		return scene.Black
	}
	return rt.shade(hit, obj)
}

// nearestHit scans every object for the smallest finite non-negative t.
// Candidates with a non-finite t are excluded before comparison, and the
// strict less-than keeps the earliest object in scene order when two t
// values are exactly equal.
func (rt *Raytracer) nearestHit(ray mathpkg.Ray) (geometry.Hit, *scene.Object, bool) {
	var nearest geometry.Hit
	var nearestObj *scene.Object
	found := false

	for i := range rt.scene.Objects {
		obj := &rt.scene.Objects[i]
		hit, ok := geometry.ObjectHit(ray, obj)
		if !ok || math32.IsNaN(hit.T) || math32.IsInf(hit.T, 0) {
			continue
		}
		if !found || hit.T < nearest.T {
			nearest = hit
			nearestObj = obj
			found = true
		}
	}
	return nearest, nearestObj, found
}

// shade computes the diffuse-lit color at a hit, fully black when the
// point is in shadow
func (rt *Raytracer) shade(hit geometry.Hit, obj *scene.Object) scene.Color {
	toLight := rt.scene.Light.Subtract(hit.Point)
	lightDistSq := toLight.LengthSquared()
	lightDir := toLight.Divide(math32.Sqrt(lightDistSq))

	if rt.occluded(hit.Point, lightDir, lightDistSq) {
		return scene.Black
	}

	illumination := math32.Max(0, lightDir.Dot(hit.Normal))
	if math32.IsNaN(illumination) || math32.IsInf(illumination, 0) {
		// Degenerate geometry (zero radius, light on the surface)
		return scene.Black
	}
	return obj.Color.Scale(illumination)
}

// occluded casts a shadow ray from point toward the light and reports
// whether any object blocks it. Hits behind the light do not count: an
// occluder qualifies only while its squared distance stays inside the
// squared distance to the light.
func (rt *Raytracer) occluded(point, lightDir mathpkg.Vec3, lightDistSq float32) bool {
	shadowRay := mathpkg.NewRay(point, lightDir)
	for i := range rt.scene.Objects {
		hit, ok := geometry.ObjectHit(shadowRay, &rt.scene.Objects[i])
		if ok && hit.T > shadowEpsilon && hit.T*hit.T < lightDistSq {
			return true
		}
	}
	return false
}

// RenderFrame renders every pixel into an RGBA byte buffer on the
// calling goroutine. Only the R, G and B bytes of each pixel are
// written; alpha is left untouched.
func (rt *Raytracer) RenderFrame(frame []byte) {
	rt.renderRows(frame, 0, rt.height)
}

// renderRows renders the half-open row range [y0, y1) into frame. Rows
// are disjoint between calls, which is what makes the worker pool safe
// without locks.
func (rt *Raytracer) renderRows(frame []byte, y0, y1 int) {
	halfW := float32(rt.width) / 2
	halfH := float32(rt.height) / 2

	for y := y0; y < y1; y++ {
		row := frame[y*rt.width*4 : (y+1)*rt.width*4]
		for x := 0; x < rt.width; x++ {
			color := rt.PixelColor(float32(x)-halfW, float32(y)-halfH)
			row[x*4] = color[0]
			row[x*4+1] = color[1]
			row[x*4+2] = color[2]
		}
	}
}

// Width returns the output width in pixels
func (rt *Raytracer) Width() int { return rt.width }

// Height returns the output height in pixels
func (rt *Raytracer) Height() int { return rt.height }
