package renderer

import (
	"runtime"
	"sync"
)

// bandTask asks a worker to render one row band of the current frame
type bandTask struct {
	frame  []byte
	y0, y1 int
	wg     *sync.WaitGroup
}

// WorkerPool renders frames with a fixed set of workers, each handling
// disjoint row bands of the output buffer. The pool persists across
// frames; the scene and camera must not be mutated while a frame is in
// flight.
type WorkerPool struct {
	raytracer  *Raytracer
	tasks      chan bandTask
	numWorkers int
}

// NewWorkerPool creates and starts a worker pool. A non-positive
// numWorkers means one worker per CPU.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		raytracer:  raytracer,
		tasks:      make(chan bandTask, numWorkers),
		numWorkers: numWorkers,
	}
	for i := 0; i < numWorkers; i++ {
		go wp.worker()
	}
	return wp
}

// worker is the main worker loop
func (wp *WorkerPool) worker() {
	for task := range wp.tasks {
		wp.raytracer.renderRows(task.frame, task.y0, task.y1)
		task.wg.Done()
	}
}

// RenderFrame splits the frame into one row band per worker, renders
// them in parallel and blocks until the whole frame is done. The band
// split is fixed for a given size, so the result is identical to a
// serial render.
func (wp *WorkerPool) RenderFrame(frame []byte) {
	height := wp.raytracer.Height()
	bands := wp.numWorkers
	if bands > height {
		bands = height
	}

	var wg sync.WaitGroup
	rowsPerBand := (height + bands - 1) / bands
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := y0 + rowsPerBand
		if y1 > height {
			y1 = height
		}
		wg.Add(1)
		wp.tasks <- bandTask{frame: frame, y0: y0, y1: y1, wg: &wg}
	}
	wg.Wait()
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Close shuts the pool down. RenderFrame must not be called afterwards.
func (wp *WorkerPool) Close() {
	close(wp.tasks)
}
