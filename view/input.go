package main

import (
	gomath "math"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"

	mathpkg "github.com/tlange/go-realtime-raytracer/pkg/math"
)

// handleInput applies held movement and rotation keys for one tick.
// Movement is in camera space: the camera looks along +X, +Y is screen
// left and +Z is screen up.
func (g *Game) handleInput(dt float32) {
	moveDelta := 3 * dt
	turnDelta := float32(gomath.Pi/2) * dt

	moves := []struct {
		key  ebiten.Key
		axis mathpkg.Vec3
	}{
		{ebiten.KeyW, mathpkg.UnitX},
		{ebiten.KeyS, mathpkg.UnitX.Negate()},
		{ebiten.KeyA, mathpkg.UnitY},
		{ebiten.KeyD, mathpkg.UnitY.Negate()},
		{ebiten.KeyE, mathpkg.UnitZ},
		{ebiten.KeyQ, mathpkg.UnitZ.Negate()},
	}
	for _, m := range moves {
		if ebiten.IsKeyPressed(m.key) {
			g.move(m.axis.Multiply(moveDelta))
		}
	}

	// Dolly: move and counter-zoom together
	if ebiten.IsKeyPressed(ebiten.KeyX) {
		g.move(mathpkg.UnitX.Multiply(moveDelta))
		g.camera.FocalLength -= moveDelta
	}
	if ebiten.IsKeyPressed(ebiten.KeyZ) {
		g.move(mathpkg.UnitX.Multiply(-moveDelta))
		g.camera.FocalLength += moveDelta
	}
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.camera.FocalLength += moveDelta
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		g.camera.FocalLength -= moveDelta
	}

	turns := []struct {
		key  ebiten.Key
		axis mathpkg.Vec3
	}{
		{ebiten.KeyJ, mathpkg.UnitZ},          // yaw left
		{ebiten.KeyL, mathpkg.UnitZ.Negate()}, // yaw right
		{ebiten.KeyI, mathpkg.UnitY},          // pitch up
		{ebiten.KeyK, mathpkg.UnitY.Negate()}, // pitch down
		{ebiten.KeyO, mathpkg.UnitX},          // roll
		{ebiten.KeyU, mathpkg.UnitX.Negate()},
	}
	for _, r := range turns {
		if ebiten.IsKeyPressed(r.key) {
			g.rotate(turnDelta, r.axis)
		}
	}
}

// move translates the camera by a camera-space delta
func (g *Game) move(delta mathpkg.Vec3) {
	world := delta.Rotate(g.camera.Transform.Rotation)
	g.camera.Transform.Position = g.camera.Transform.Position.Add(world)
}

// rotate composes an incremental rotation about a camera-space axis.
// The magnitude should stay at 1 on its own, but floating point error
// feeds on itself across many small rotations, so any measurable drift
// is renormalized away before composing.
func (g *Game) rotate(angle float32, axis mathpkg.Vec3) {
	current := g.camera.Transform.Rotation
	step := mathpkg.Rotation(axis.Rotate(current), angle)
	if math32.Abs(step.LengthSquared()-1) > mathpkg.Epsilon {
		step = step.Normalize()
	}
	g.camera.Transform.Rotation = step.Multiply(current)
}
