package viz

import (
	"github.com/guptarohit/asciigraph"
)

// Plot renders a value series as a terminal line chart.
func Plot(values []float64, caption string, width, height int) string {
	if len(values) == 0 {
		return "(no data)"
	}
	return asciigraph.Plot(values,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(caption),
		asciigraph.Precision(4),
	)
}
