package report

import (
	"bytes"
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/distsim/internal/column"
	"github.com/san-kum/distsim/internal/thermo"
)

func simulatedColumn(t *testing.T) *column.Column {
	t.Helper()
	components := []thermo.Component{
		{Name: "A", VaporPressureCoeff: 0.5, SpecificHeatLiquid: 1.2, SpecificHeatVapor: 2.0},
		{Name: "B", VaporPressureCoeff: 0.6, SpecificHeatLiquid: 1.3, SpecificHeatVapor: 2.1},
		{Name: "C", VaporPressureCoeff: 0.7, SpecificHeatLiquid: 1.4, SpecificHeatVapor: 2.2},
	}
	feed := column.Feed{"A": 0.5, "B": 0.3, "C": 0.2}
	col, err := column.New(components, feed, column.Config{RefluxRatio: 1.5, Stages: 20, FeedStage: 10, Seed: 42}, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := col.Simulate(context.Background()); err != nil {
		t.Fatalf("Simulate: %v", err)
	}
	return col
}

func TestBuild(t *testing.T) {
	col := simulatedColumn(t)
	rows := Build(col)

	if len(rows) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(rows))
	}

	for i, r := range rows {
		if r.Stage != i+1 {
			t.Fatalf("row %d: stage = %d, want strictly increasing from 1", i, r.Stage)
		}
		if r.Temperature != 300+10*float64(r.Stage) {
			t.Errorf("row %d: temperature = %v", i, r.Temperature)
		}
		if math.Abs(r.RefluxRatio-1.0) > 1e-4 {
			t.Errorf("row %d: reflux = %v, want ~1.0", i, r.RefluxRatio)
		}

		wantV, wantL := col.MassBalance(col.Stages[i])
		if r.TotalVapor != wantV || r.TotalLiquid != wantL {
			t.Errorf("row %d: totals (%v, %v) != mass balance (%v, %v)", i, r.TotalVapor, r.TotalLiquid, wantV, wantL)
		}
	}
}

func TestCSVRoundtrip(t *testing.T) {
	rows := Build(simulatedColumn(t))

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 21 {
		t.Fatalf("expected header + 20 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Stage,Temperature (K),Pressure (kPa)") {
		t.Errorf("unexpected header: %s", lines[0])
	}

	parsed, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(parsed) != len(rows) {
		t.Fatalf("roundtrip row count: %d vs %d", len(parsed), len(rows))
	}
	for i := range rows {
		if parsed[i].Stage != rows[i].Stage {
			t.Errorf("row %d: stage %d vs %d", i, parsed[i].Stage, rows[i].Stage)
		}
		if math.Abs(parsed[i].EnergyBalance-rows[i].EnergyBalance) > 1e-5 {
			t.Errorf("row %d: energy %v vs %v", i, parsed[i].EnergyBalance, rows[i].EnergyBalance)
		}
	}
}

func TestWriteTab(t *testing.T) {
	rows := Build(simulatedColumn(t))

	var buf bytes.Buffer
	if err := WriteTab(&buf, rows); err != nil {
		t.Fatalf("WriteTab: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 21 {
		t.Errorf("expected header + 20 rows, got %d lines", len(lines))
	}
}

func TestExportJSON(t *testing.T) {
	col := simulatedColumn(t)
	rows := Build(col)

	var buf bytes.Buffer
	err := ExportJSON(&buf, ExportData{
		ID:          "column_1",
		Stages:      col.NumStages,
		RefluxRatio: col.RefluxRatio,
		TotalDuty:   col.TotalDuty,
		Volatility:  col.Volatility,
		Rows:        rows,
	})
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	out := buf.String()
	for _, field := range []string{"\"reflux_ratio\"", "\"total_duty\"", "\"temperature_k\"", "\"total_vapor_flow\""} {
		if !strings.Contains(out, field) {
			t.Errorf("export missing field %s", field)
		}
	}
}

func TestAsciiPlots(t *testing.T) {
	rows := Build(simulatedColumn(t))
	out := AsciiPlots(rows)
	if !strings.Contains(out, "temperature (K) vs stage 1..20") {
		t.Error("missing temperature caption")
	}
	if !strings.Contains(out, "pressure (kPa) vs stage 1..20") {
		t.Error("missing pressure caption")
	}
}

func TestRenderPNG(t *testing.T) {
	rows := Build(simulatedColumn(t))
	path := filepath.Join(t.TempDir(), "stages.png")

	if err := RenderPNG(rows, path); err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}

	if err := RenderPNG(nil, path); err == nil {
		t.Error("expected error for empty rows")
	}
}
