package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/muesli/termenv"
	"github.com/nfnt/resize"

	"github.com/tlange/go-realtime-raytracer/pkg/renderer"
	"github.com/tlange/go-realtime-raytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Path to a YAML scene file (empty for the built-in default scene)")
	width := flag.Int("width", 600, "Output width in pixels")
	height := flag.Int("height", 375, "Output height in pixels")
	pxPerUnit := flag.Float64("ppu", 160, "Pixels per world unit at the focal plane")
	focalLength := flag.Float64("focal", 2, "Camera focal length in world units")
	workers := flag.Int("workers", 0, "Worker count (0 = one per CPU)")
	upscale := flag.Uint("upscale", 1, "Integer upscale factor for the output image")
	preview := flag.Bool("preview", false, "Print a terminal preview of the render")
	outputDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Realtime Raytracer (offline render)")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <out>/render_<timestamp>.png")
		return
	}

	logger := renderer.NewDefaultLogger()

	s, err := loadScene(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	camera := renderer.NewCamera(float32(*pxPerUnit), float32(*focalLength))
	raytracer := renderer.NewRaytracer(s, camera, *width, *height)
	pool := renderer.NewWorkerPool(raytracer, *workers)
	defer pool.Close()

	frame := make([]byte, *width**height*4)
	// Fill alpha once; the renderer only writes R, G and B
	for i := 3; i < len(frame); i += 4 {
		frame[i] = 0xff
	}

	startTime := time.Now()
	pool.RenderFrame(frame)
	renderTime := time.Since(startTime)
	logger.Printf("Frame took: %v (%d workers)\n", renderTime, pool.NumWorkers())

	img := &image.RGBA{
		Pix:    frame,
		Stride: *width * 4,
		Rect:   image.Rect(0, 0, *width, *height),
	}

	if *preview {
		printPreview(img)
	}

	if err := writePNG(img, *outputDir, *upscale); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing image: %v\n", err)
		os.Exit(1)
	}
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.NewDefaultScene(), nil
	}
	return scene.Load(path)
}

func writePNG(img image.Image, outputDir string, upscale uint) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if upscale > 1 {
		bounds := img.Bounds()
		img = resize.Resize(
			uint(bounds.Dx())*upscale, uint(bounds.Dy())*upscale,
			img, resize.NearestNeighbor,
		)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	fmt.Printf("Saved %s\n", filename)
	return nil
}

// printPreview writes the image to the terminal, two rows per text line
// using the upper-half-block glyph
func printPreview(img image.Image) {
	const previewWidth = 80

	bounds := img.Bounds()
	if bounds.Dx() > previewWidth {
		ratio := float64(previewWidth) / float64(bounds.Dx())
		img = resize.Resize(previewWidth, uint(float64(bounds.Dy())*ratio), img, resize.NearestNeighbor)
		bounds = img.Bounds()
	}

	output := termenv.NewOutput(os.Stdout)
	profile := output.ColorProfile()

	for y := bounds.Min.Y; y+1 < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			upper := profile.FromColor(color.RGBAModel.Convert(img.At(x, y)))
			lower := profile.FromColor(color.RGBAModel.Convert(img.At(x, y+1)))
			fmt.Print(output.String("▀").Foreground(upper).Background(lower))
		}
		fmt.Println()
	}
}
