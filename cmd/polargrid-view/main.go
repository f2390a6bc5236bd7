// Command polargrid-view opens a window showing a polar grid overlay and
// lets the grid be reshaped from the keyboard:
//
//	S       toggle sectors
//	I       toggle invert
//	Up/Down ring count
//	Right/Left sector count
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/banshee-data/polargrid/internal/config"
	"github.com/banshee-data/polargrid/internal/overlay"
	"github.com/banshee-data/polargrid/internal/render"
	"github.com/banshee-data/polargrid/internal/version"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var bindings = map[ebiten.Key]action{
	ebiten.KeyS:          actToggleSectors,
	ebiten.KeyI:          actToggleInvert,
	ebiten.KeyArrowUp:    actMoreRings,
	ebiten.KeyArrowDown:  actFewerRings,
	ebiten.KeyArrowRight: actMoreSectors,
	ebiten.KeyArrowLeft:  actFewerSectors,
}

var background = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF}

type viewer struct {
	ov *overlay.Overlay
}

func (v *viewer) Update() error {
	for key, act := range bindings {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if err := apply(v.ov.Grid(), act); err != nil {
			log.Printf("[%s] %s: %v", v.ov.Name(), act, err)
			continue
		}
		log.Printf("[%s] %s: %d segments", v.ov.Name(), act, v.ov.Lines().SegmentCount())
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if !v.ov.Visible() {
		return
	}

	lines := v.ov.Lines()
	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	scale := min(cx, cy) / render.Extent(lines)

	for i := 0; i < lines.SegmentCount(); i++ {
		a, c := lines.Segment(i)
		vector.StrokeLine(screen,
			float32(cx+a.Position.X*scale), float32(cy-a.Position.Y*scale),
			float32(cx+c.Position.X*scale), float32(cy-c.Position.Y*scale),
			1, render.NRGBA(a.Color), true)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "Grid config JSON (defaults built in when empty)")
	size := flag.Int("size", 800, "Window width and height in pixels")
	flag.Parse()

	cfg := config.DefaultGridConfig()
	if *configPath != "" {
		loaded, err := config.LoadGridConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	ov := overlay.New()
	if err := ov.ApplyConfig(cfg); err != nil {
		log.Fatalf("apply config: %v", err)
	}

	ebiten.SetWindowTitle("Polar Grid (" + version.Version + ")")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)
	if err := ebiten.RunGame(&viewer{ov: ov}); err != nil {
		log.Fatalf("viewer: %v", err)
	}
}
