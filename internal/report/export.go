package report

import (
	"encoding/json"
	"io"
)

// ExportData is the JSON export payload for one run.
type ExportData struct {
	ID          string             `json:"id,omitempty"`
	Stages      int                `json:"stages"`
	RefluxRatio float64            `json:"reflux_ratio"`
	TotalDuty   float64            `json:"total_duty"`
	Volatility  map[string]float64 `json:"relative_volatility,omitempty"`
	Rows        []Row              `json:"rows"`
}

// ExportJSON writes the run payload as indented JSON.
func ExportJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
