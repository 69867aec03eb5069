package report

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// AsciiPlots renders temperature and pressure vs stage as terminal graphs.
func AsciiPlots(rows []Row) string {
	if len(rows) == 0 {
		return "no stages to plot\n"
	}

	temps := make([]float64, len(rows))
	pressures := make([]float64, len(rows))
	for i, r := range rows {
		temps[i] = r.Temperature
		pressures[i] = r.Pressure
	}

	var b strings.Builder
	b.WriteString(asciigraph.Plot(temps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("temperature (K) vs stage 1..%d", len(rows))),
	))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(pressures,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("pressure (kPa) vs stage 1..%d", len(rows))),
	))
	b.WriteString("\n")
	return b.String()
}
