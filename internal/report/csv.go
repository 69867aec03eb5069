package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the stage table with the seven named columns.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Stage),
			strconv.FormatFloat(r.Temperature, 'f', 6, 64),
			strconv.FormatFloat(r.Pressure, 'f', 6, 64),
			strconv.FormatFloat(r.RefluxRatio, 'f', 6, 64),
			strconv.FormatFloat(r.EnergyBalance, 'f', 6, 64),
			strconv.FormatFloat(r.TotalVapor, 'f', 6, 64),
			strconv.FormatFloat(r.TotalLiquid, 'f', 6, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a stage table written by WriteCSV.
func ReadCSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return []Row{}, nil
	}

	rows := make([]Row, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != len(Header) {
			return nil, fmt.Errorf("report: row %d has %d fields, want %d", i, len(record), len(Header))
		}

		stage, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("report: row %d: %w", i, err)
		}
		vals := make([]float64, 6)
		for j := 1; j < len(record); j++ {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("report: row %d: %w", i, err)
			}
			vals[j-1] = v
		}

		rows = append(rows, Row{
			Stage:         stage,
			Temperature:   vals[0],
			Pressure:      vals[1],
			RefluxRatio:   vals[2],
			EnergyBalance: vals[3],
			TotalVapor:    vals[4],
			TotalLiquid:   vals[5],
		})
	}

	return rows, nil
}
