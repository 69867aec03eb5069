package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/san-kum/distsim/internal/column"
)

// Header names the seven stage-table columns, in output order.
var Header = []string{
	"Stage",
	"Temperature (K)",
	"Pressure (kPa)",
	"Reflux Ratio",
	"Energy Balance",
	"Total Vapor Flow",
	"Total Liquid Flow",
}

// Row is one stage of the report table.
type Row struct {
	Stage         int     `json:"stage"`
	Temperature   float64 `json:"temperature_k"`
	Pressure      float64 `json:"pressure_kpa"`
	RefluxRatio   float64 `json:"reflux_ratio"`
	EnergyBalance float64 `json:"energy_balance"`
	TotalVapor    float64 `json:"total_vapor_flow"`
	TotalLiquid   float64 `json:"total_liquid_flow"`
}

// Build assembles one row per simulated stage, in stage order.
func Build(col *column.Column) []Row {
	rows := make([]Row, 0, len(col.Stages))
	for _, stage := range col.Stages {
		totalVapor, totalLiquid := col.MassBalance(stage)
		rows = append(rows, Row{
			Stage:         stage.Number,
			Temperature:   stage.Temperature,
			Pressure:      stage.Pressure,
			RefluxRatio:   stage.Reflux,
			EnergyBalance: col.EnergyBalance(stage),
			TotalVapor:    totalVapor,
			TotalLiquid:   totalLiquid,
		})
	}
	return rows
}

// WriteTab prints the rows as an aligned text table.
func WriteTab(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tTEMP (K)\tPRESSURE (kPa)\tREFLUX\tENERGY\tVAPOR\tLIQUID")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%.2f\t%.3f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			r.Stage, r.Temperature, r.Pressure, r.RefluxRatio,
			r.EnergyBalance, r.TotalVapor, r.TotalLiquid)
	}
	return tw.Flush()
}
