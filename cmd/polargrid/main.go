// Command polargrid renders a polar grid overlay described by a JSON config
// to PNG, HTML or a JSON vertex dump.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/banshee-data/polargrid/internal/config"
	"github.com/banshee-data/polargrid/internal/overlay"
	"github.com/banshee-data/polargrid/internal/polargrid"
	"github.com/banshee-data/polargrid/internal/render"
	"github.com/banshee-data/polargrid/internal/version"
	"gonum.org/v1/plot/vg"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("polargrid: %v", err)
	}
}

// exportVertex is the JSON form of one world-space vertex.
type exportVertex struct {
	Position [3]float64 `json:"position"`
	Color    [4]float64 `json:"color"`
}

type exportDoc struct {
	Overlay    string         `json:"overlay"`
	Plane      string         `json:"plane"`
	AlphaBlend bool           `json:"alpha_blend"`
	Segments   int            `json:"segments"`
	Vertices   []exportVertex `json:"vertices"`
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("polargrid", flag.ContinueOnError)
	configPath := fs.String("config", "", "Grid config JSON (defaults built in when empty)")
	format := fs.String("format", "png", "Output format: png, html or json")
	output := fs.String("o", "", "Output path (stdout when empty)")
	size := fs.Float64("size", 8, "PNG width and height in inches")
	title := fs.String("title", "Polar Grid", "Chart title for png and html")
	showVersion := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(stdout, "polargrid", version.String())
		return nil
	}

	cfg := config.DefaultGridConfig()
	if *configPath != "" {
		loaded, err := config.LoadGridConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	ov := overlay.New()
	if err := ov.ApplyConfig(cfg); err != nil {
		return err
	}

	w := stdout
	if *output != "" {
		if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
			return fmt.Errorf("failed to create output dir: %w", err)
		}
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(*format) {
	case "png":
		err := render.WritePNG(w, ov.Lines(), render.PNGOptions{Title: *title, Size: vg.Length(*size) * vg.Inch})
		if err != nil {
			return err
		}
	case "html":
		if err := render.WriteHTML(w, ov.Lines(), *title); err != nil {
			return err
		}
	case "json":
		if err := writeJSON(w, ov); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (want png, html or json)", *format)
	}

	if *output != "" {
		log.Printf("Wrote %s (%d segments, plane %s)", *output, ov.Lines().SegmentCount(), ov.Plane())
	}
	return nil
}

func writeJSON(w io.Writer, ov *overlay.Overlay) error {
	world := ov.World()
	doc := exportDoc{
		Overlay:    ov.Name(),
		Plane:      ov.Plane().String(),
		AlphaBlend: ov.Material().AlphaBlend,
		Segments:   world.SegmentCount(),
		Vertices:   make([]exportVertex, len(world)),
	}
	for i, v := range world {
		doc.Vertices[i] = exportVertex{
			Position: [3]float64{v.Position.X, v.Position.Y, v.Position.Z},
			Color:    colorArray(v.Color),
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode vertices: %w", err)
	}
	return nil
}

func colorArray(c polargrid.Color) [4]float64 {
	return [4]float64{c.R, c.G, c.B, c.A}
}
