package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/banshee-data/polargrid/internal/polargrid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PNGOptions controls raster output. Zero values pick the defaults.
type PNGOptions struct {
	Title     string
	Size      vg.Length // width and height, default 8 inches
	LineWidth vg.Length // default 1 point
}

func (o PNGOptions) withDefaults() PNGOptions {
	if o.Size <= 0 {
		o.Size = 8 * vg.Inch
	}
	if o.LineWidth <= 0 {
		o.LineWidth = vg.Points(1)
	}
	return o
}

// newPlot lays every polyline of lines onto a square plot with equal axes.
func newPlot(lines polargrid.LineList, o PNGOptions) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for i, pl := range Chain(lines) {
		xys := make(plotter.XYs, len(pl.Points))
		for j, pt := range pl.Points {
			xys[j] = plotter.XY{X: pt.X, Y: pt.Y}
		}
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("polyline %d: %w", i, err)
		}
		l.Color = NRGBA(pl.Color)
		l.Width = o.LineWidth
		p.Add(l)
	}

	pad := Extent(lines)
	p.X.Min, p.X.Max = -pad, pad
	p.Y.Min, p.Y.Max = -pad, pad
	return p, nil
}

// WritePNG renders lines as a PNG image to w.
func WritePNG(w io.Writer, lines polargrid.LineList, opts PNGOptions) error {
	o := opts.withDefaults()
	p, err := newPlot(lines, o)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(o.Size, o.Size, "png")
	if err != nil {
		return fmt.Errorf("create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// SavePNG writes the PNG to path, creating parent directories as needed.
func SavePNG(path string, lines polargrid.LineList, opts PNGOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WritePNG(f, lines, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
