//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"embervox/internal/app"
	"embervox/internal/core"
	_ "embervox/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Scenes()[cfg.Scene]
	if !ok {
		log.Fatalf("unknown scene %q", cfg.Scene)
	}

	opts := cfg.SceneOptions()
	scene := factory(opts)
	scene.Reset(cfg.Seed)

	game := app.New(scene, cfg.Scale, cfg.TPS, cfg.Seed)
	size := scene.Size()

	ebiten.SetWindowTitle("embervox — " + scene.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
