package render

import (
	"fmt"
	"io"

	"github.com/banshee-data/polargrid/internal/polargrid"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders lines as a standalone go-echarts page, one line series
// per polyline on square value axes.
func WriteHTML(w io.Writer, lines polargrid.LineList, title string) error {
	polylines := Chain(lines)
	pad := Extent(lines)

	chart := charts.NewLine()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Theme: "dark", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("segments=%d polylines=%d", lines.SegmentCount(), len(polylines))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -pad, Max: pad, Name: "X (m)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -pad, Max: pad, Name: "Y (m)", NameLocation: "middle", NameGap: 30}),
	)

	for i, pl := range polylines {
		data := make([]opts.LineData, len(pl.Points))
		for j, pt := range pl.Points {
			data[j] = opts.LineData{Value: []interface{}{pt.X, pt.Y}}
		}
		chart.AddSeries(fmt.Sprintf("polyline-%d", i), data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: CSS(pl.Color)}),
		)
	}

	if err := chart.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}
