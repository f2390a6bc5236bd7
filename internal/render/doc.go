// Package render turns a polar grid line list into viewable artefacts: a
// PNG via gonum/plot and an interactive HTML page via go-echarts. Both
// draw the builder's local plane and ignore z.
package render
