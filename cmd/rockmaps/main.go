// Command rockmaps generates a procedural rock volume and writes its
// orthographic position, normal and diffuse maps as PNG files.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"

	"embervox/internal/scene"
	"embervox/internal/volume"
)

func main() {
	configPath := flag.String("config", "", "optional YAML scene config")
	size := flag.Int("size", 0, "volume and output size in voxels (overrides config)")
	seed := flag.Uint64("seed", 0, "noise seed (overrides config)")
	rx := flag.Float64("rx", 0, "rotation around x in degrees")
	ry := flag.Float64("ry", 0, "rotation around y in degrees")
	rz := flag.Float64("rz", 0, "rotation around z in degrees")
	outDir := flag.String("out", ".", "output directory")
	flag.Parse()

	cfg := scene.DefaultConfig()
	if *configPath != "" {
		loaded, err := scene.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	params := cfg.Rock
	if *size > 0 {
		params.Size = *size
	}
	if *seed != 0 {
		params.Seed = *seed
	}

	rotation := mgl32.Vec3{
		mgl32.DegToRad(float32(*rx)),
		mgl32.DegToRad(float32(*ry)),
		mgl32.DegToRad(float32(*rz)),
	}

	vol := volume.GenerateRock(params)
	maps := volume.RenderMaps(vol, params.Size, rotation)

	outputs := []struct {
		name string
		data []byte
	}{
		{"position.png", maps.Position},
		{"normal.png", maps.Normal},
		{"diffuse.png", maps.Diffuse},
	}
	for _, out := range outputs {
		path := filepath.Join(*outDir, out.name)
		if err := writePNG(path, out.data, maps.Width, maps.Height); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", path)
	}
}

func writePNG(path string, rgba []byte, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, rgba)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
