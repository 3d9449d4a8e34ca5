// Interactive viewer: renders the scene into an RGBA frame every tick
// and presents it through ebiten, with keyboard camera controls and the
// toy physics stepping between frames.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tlange/go-realtime-raytracer/pkg/physics"
	"github.com/tlange/go-realtime-raytracer/pkg/renderer"
	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

const (
	screenWidth  = 600
	screenHeight = 375

	// Fixed simulation timestep per tick
	delta = 0.015
)

// Game owns the scene, camera and render pipeline for the viewer
type Game struct {
	scene  *scene.Scene
	camera *renderer.Camera
	pool   *renderer.WorkerPool
	sim    *physics.Simulation
	frame  []byte
	stats  *renderer.FrameStats
	logger renderer.Logger
	paused bool
}

func newGame(s *scene.Scene) *Game {
	camera := renderer.NewCamera(160, 2)
	raytracer := renderer.NewRaytracer(s, camera, screenWidth, screenHeight)

	frame := make([]byte, screenWidth*screenHeight*4)
	// Fill alpha once; the renderer only ever writes R, G and B
	for i := 3; i < len(frame); i += 4 {
		frame[i] = 0xff
	}

	return &Game{
		scene:  s,
		camera: camera,
		pool:   renderer.NewWorkerPool(raytracer, 0),
		sim:    physics.NewSimulation(s),
		frame:  frame,
		stats:  renderer.NewFrameStats(),
		logger: renderer.NewDefaultLogger(),
	}
}

// Update advances the physics and applies keyboard input. Both mutate
// scene and camera strictly between frames.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}

	if !g.paused {
		// Keep the view anchored to the system as it drifts
		shift := g.sim.Step(delta)
		g.camera.Transform.Position = g.camera.Transform.Position.Add(shift)
		g.scene.Light = g.scene.Light.Add(shift)
	}

	g.handleInput(delta)
	return nil
}

// Draw renders the frame and hands it to ebiten
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.pool.RenderFrame(g.frame)
	took := time.Since(start)

	g.stats.Add(took)
	g.logger.Printf("Frame took: %v (avg: %v)\n", took, g.stats.Average())

	screen.WritePixels(g.frame)
}

// Layout fixes the render resolution regardless of window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	scenePath := flag.String("scene", "", "Path to a YAML scene file (empty for the built-in orbit scene)")
	flag.Parse()

	s := scene.NewOrbitScene()
	if *scenePath != "" {
		loaded, err := scene.Load(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
		s = loaded
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Realtime Raytracer")

	game := newGame(s)
	defer game.pool.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
