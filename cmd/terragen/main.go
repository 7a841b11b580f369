//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"terragen/internal/app"
	"terragen/internal/core"
	"terragen/internal/noise"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	tcfg := cfg.Terrain()
	if err := tcfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	if _, err := noise.New(tcfg.Noise, 0); err != nil {
		log.Fatal(err)
	}

	seed := uint32(cfg.Seed)
	if seed == 0 {
		seed = core.NewRNG(time.Now().UnixNano()).Uint32()
	}

	game := app.New(tcfg, seed, cfg.Mag)

	ebiten.SetWindowTitle("terragen — " + tcfg.Noise)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.Layout(0, 0))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
