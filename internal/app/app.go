//go:build ebiten

package app

import (
	"log"
	"time"

	"terragen/internal/core"
	"terragen/internal/noise"
	"terragen/internal/render"
	"terragen/internal/terrain"
	"terragen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth    = 220
	regenPerSec = 20
)

// Game drives the interactive terrain viewer. It owns the mutable config
// copy and the current seed; the synthesis core never sees either except by
// value at regeneration time.
type Game struct {
	cfg  terrain.Config
	seed uint32

	heights *core.FloatGrid
	buf     *terrain.PixelBuffer

	painter  *render.TerrainPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	rng      *core.RNG
	throttle *core.Throttle

	mag   int
	dirty bool
}

// New constructs a Game and synthesizes the initial terrain.
func New(cfg terrain.Config, seed uint32, mag int) *Game {
	if mag < 1 {
		mag = 1
	}
	g := &Game{
		cfg:      cfg,
		seed:     seed,
		mag:      mag,
		painter:  render.NewTerrainPainter(cfg.Width, cfg.Height),
		rng:      core.NewRNG(time.Now().UnixNano()),
		throttle: core.NewThrottle(regenPerSec),
	}
	g.hud = ui.NewHUD(g, hudWidth)
	g.overlay = ui.NewOverlay(g)
	g.regenerate()
	return g
}

// Seed reports the seed of the currently displayed terrain.
func (g *Game) Seed() uint32 { return g.seed }

// Parameters exposes the current config values for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot { return terrain.Snapshot(g.cfg) }

// ParameterControls exposes the HUD-adjustable controls.
func (g *Game) ParameterControls() []core.ParameterControl { return terrain.Controls() }

// SetIntParameter updates an integer parameter and schedules a regeneration.
func (g *Game) SetIntParameter(key string, value int) bool {
	if !terrain.ApplyInt(&g.cfg, key, value) {
		return false
	}
	g.dirty = true
	return true
}

// SetFloatParameter updates a float parameter and schedules a regeneration.
func (g *Game) SetFloatParameter(key string, value float64) bool {
	if !terrain.ApplyFloat(&g.cfg, key, value) {
		return false
	}
	g.dirty = true
	return true
}

// HeightField exposes the current normalized heights for the overlay.
func (g *Game) HeightField() *core.FloatGrid { return g.heights }

// Update handles per-frame input and runs any pending regeneration.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = g.rng.Uint32()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.dirty = true
	}

	if g.hud != nil {
		g.hud.Update(g.cfg.Width * g.mag)
	}
	if g.overlay != nil {
		g.overlay.Update()
	}

	if g.dirty && g.throttle.Allow() {
		g.regenerate()
		g.dirty = false
	}
	return nil
}

// Draw renders the terrain, the height overlay, and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.buf != nil {
		g.painter.Blit(screen, g.buf, g.mag)
	}
	if g.overlay != nil {
		g.overlay.Draw(screen, g.mag)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.cfg.Width*g.mag, g.cfg.Height*g.mag)
	}
}

// Layout returns the logical screen size: terrain view plus HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.cfg.Width * g.mag
	h := g.cfg.Height * g.mag
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w + hudWidth, h
}

// regenerate replaces the displayed buffer. A rejected config or unknown
// algorithm keeps the previous buffer on screen.
func (g *Game) regenerate() {
	if err := g.cfg.Validate(); err != nil {
		log.Printf("config rejected: %v", err)
		return
	}
	field, err := noise.New(g.cfg.Noise, g.seed)
	if err != nil {
		log.Printf("noise field: %v", err)
		return
	}
	synth := terrain.NewSynthesizer(field)
	g.heights = synth.HeightField(g.cfg)
	g.buf = terrain.Rasterize(g.heights)
}
