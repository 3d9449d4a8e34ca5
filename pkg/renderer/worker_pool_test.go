package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

func TestWorkerPool_MatchesSerialRender(t *testing.T) {
	s := scene.NewDefaultScene()
	rt := NewRaytracer(s, testCamera(), 64, 40)

	serial := make([]byte, 64*40*4)
	rt.RenderFrame(serial)

	for _, workers := range []int{1, 2, 7} {
		pool := NewWorkerPool(rt, workers)
		parallel := make([]byte, 64*40*4)
		pool.RenderFrame(parallel)
		pool.Close()

		assert.Equal(t, serial, parallel, "worker count %d", workers)
	}
}

func TestWorkerPool_MoreWorkersThanRows(t *testing.T) {
	s := scene.NewDefaultScene()
	rt := NewRaytracer(s, testCamera(), 16, 3)
	pool := NewWorkerPool(rt, 8)
	defer pool.Close()

	frame := make([]byte, 16*3*4)
	pool.RenderFrame(frame) // must not deadlock or skip rows

	serial := make([]byte, 16*3*4)
	rt.RenderFrame(serial)
	assert.Equal(t, serial, frame)
}

func TestWorkerPool_DefaultWorkerCount(t *testing.T) {
	s := scene.NewDefaultScene()
	rt := NewRaytracer(s, testCamera(), 8, 8)
	pool := NewWorkerPool(rt, 0)
	defer pool.Close()

	assert.Greater(t, pool.NumWorkers(), 0)
}

func TestWorkerPool_ReusableAcrossFrames(t *testing.T) {
	s := scene.NewDefaultScene()
	rt := NewRaytracer(s, testCamera(), 16, 10)
	pool := NewWorkerPool(rt, 3)
	defer pool.Close()

	a := make([]byte, 16*10*4)
	b := make([]byte, 16*10*4)
	pool.RenderFrame(a)
	pool.RenderFrame(b)

	assert.Equal(t, a, b)
}
