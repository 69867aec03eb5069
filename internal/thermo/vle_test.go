package thermo

import (
	"math"
	"math/rand"
	"testing"
)

func testComponents() []Component {
	return []Component{
		{Name: "A", VaporPressureCoeff: 0.5},
		{Name: "B", VaporPressureCoeff: 0.6},
		{Name: "C", VaporPressureCoeff: 0.7},
	}
}

func TestGenerateVLE_Grid(t *testing.T) {
	table := GenerateVLE(testComponents(), rand.New(rand.NewSource(42)))

	if len(table.Temperatures) != 11 {
		t.Fatalf("expected 11 temperature points, got %d", len(table.Temperatures))
	}
	if table.Temperatures[0] != 300 {
		t.Errorf("first temperature = %v, want 300", table.Temperatures[0])
	}
	if table.Temperatures[10] != 400 {
		t.Errorf("last temperature = %v, want 400", table.Temperatures[10])
	}

	for i := 1; i < len(table.Temperatures); i++ {
		step := table.Temperatures[i] - table.Temperatures[i-1]
		if math.Abs(step-10) > 1e-9 {
			t.Errorf("uneven spacing at point %d: %v", i, step)
		}
	}
}

func TestGenerateVLE_PressuresMatchCorrelation(t *testing.T) {
	comps := testComponents()
	table := GenerateVLE(comps, rand.New(rand.NewSource(1)))

	for i, T := range table.Temperatures {
		for _, comp := range comps {
			want := comp.VaporPressure(T)
			if got := table.Pressures[i][comp.Name]; math.Abs(got-want) > 1e-9 {
				t.Errorf("pressure %s at %v K = %v, want %v", comp.Name, T, got, want)
			}
		}
	}
}

func TestGenerateVLE_MoleFractionRange(t *testing.T) {
	table := GenerateVLE(testComponents(), rand.New(rand.NewSource(7)))

	for i := range table.MoleFractions {
		for name, x := range table.MoleFractions[i] {
			if x < 0.1 || x >= 0.9 {
				t.Errorf("mole fraction %s at point %d out of [0.1, 0.9): %v", name, i, x)
			}
		}
	}
}

func TestGenerateVLE_Deterministic(t *testing.T) {
	a := GenerateVLE(testComponents(), rand.New(rand.NewSource(99)))
	b := GenerateVLE(testComponents(), rand.New(rand.NewSource(99)))

	for i := range a.MoleFractions {
		for name := range a.MoleFractions[i] {
			if a.MoleFractions[i][name] != b.MoleFractions[i][name] {
				t.Fatalf("same seed produced different mole fractions at point %d", i)
			}
		}
	}
}

func TestGenerateVLLE(t *testing.T) {
	table := GenerateVLLE(testComponents())

	if len(table) != 3 {
		t.Fatalf("expected 3 pairs for 3 components, got %d", len(table))
	}

	for _, key := range []string{"A-B", "A-C", "B-C"} {
		points, ok := table[key]
		if !ok {
			t.Fatalf("missing pair key %s", key)
		}
		if len(points) != 10 {
			t.Errorf("pair %s: expected 10 points, got %d", key, len(points))
		}
		if points[0].Temperature != 300 {
			t.Errorf("pair %s: first temperature = %v, want 300", key, points[0].Temperature)
		}
		if points[9].Temperature != 390 {
			t.Errorf("pair %s: last temperature = %v, want 390", key, points[9].Temperature)
		}
	}

	comps := testComponents()
	want := PairVaporPressure(comps[0], comps[1], 350)
	if got := table["A-B"][5].Pressure; math.Abs(got-want) > 1e-9 {
		t.Errorf("A-B pressure at 350 K = %v, want %v", got, want)
	}
}
