package mapdata

import (
	"math"
	"reflect"
	"testing"
)

func TestDisplayPosition_OneLightYearOnX(t *testing.T) {
	p := DisplayPosition([]float64{MetersPerLightYear, 0, 0})
	if p == nil {
		t.Fatal("DisplayPosition returned nil")
	}
	if p.X != 1 || p.Y != 0 || p.Z != 0 {
		t.Errorf("position = %+v, want {1 0 0}", *p)
	}
}

func TestDisplayPosition_RotatesZUpToYUp(t *testing.T) {
	// Source (0, 2ly, 3ly) must land at display (0, 3, -2).
	p := DisplayPosition([]float64{0, 2 * MetersPerLightYear, 3 * MetersPerLightYear})
	if p == nil {
		t.Fatal("DisplayPosition returned nil")
	}
	if p.X != 0 || p.Y != 3 || p.Z != -2 {
		t.Errorf("position = %+v, want {0 3 -2}", *p)
	}
}

func TestDisplayPosition_MalformedVectors(t *testing.T) {
	tests := []struct {
		name   string
		center []float64
	}{
		{name: "nil", center: nil},
		{name: "empty", center: []float64{}},
		{name: "two components", center: []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := DisplayPosition(tt.center); p != nil {
				t.Errorf("DisplayPosition(%v) = %+v, want nil", tt.center, *p)
			}
		})
	}
}

func TestDisplayPosition_RoundTrip(t *testing.T) {
	vectors := [][3]float64{
		{MetersPerLightYear, 0, 0},
		{-3.2e16, 7.5e15, 1.1e17},
		{0.5, -0.25, 0.125},
		{0, 0, 0},
	}
	for _, v := range vectors {
		p := DisplayPosition(v[:])
		if p == nil {
			t.Fatalf("DisplayPosition(%v) = nil", v)
		}
		// Inverse: rotate back (x, y, z) -> (x, -z, y), then rescale.
		back := [3]float64{
			p.X * MetersPerLightYear,
			-p.Z * MetersPerLightYear,
			p.Y * MetersPerLightYear,
		}
		for i := range v {
			if diff := math.Abs(back[i] - v[i]); diff > math.Abs(v[i])*1e-12 {
				t.Errorf("round trip %v -> %v, component %d off by %v", v, back, i, diff)
			}
		}
	}
}

func TestBuildStargates_OnePerNeighbour(t *testing.T) {
	systems := map[string]*SolarSystem{
		"30000001": {
			Name:       "A",
			Navigation: &Navigation{Neighbours: []ID{"30000002", "30000003"}},
		},
		"30000002": {Name: "B"},
		"30000003": {Name: "C"},
	}

	gates := BuildStargates(systems)
	if len(gates) != 2 {
		t.Fatalf("got %d stargates, want 2", len(gates))
	}

	first, second := gates["1"], gates["2"]
	if first == nil || second == nil {
		t.Fatalf("sequential ids missing: %v", gates)
	}
	if first.SourceSystemID != "30000001" || first.DestinationSystemID != "30000002" {
		t.Errorf("gate 1 = %s -> %s", first.SourceSystemID, first.DestinationSystemID)
	}
	if second.SourceSystemID != "30000001" || second.DestinationSystemID != "30000003" {
		t.Errorf("gate 2 = %s -> %s", second.SourceSystemID, second.DestinationSystemID)
	}
	if first.Name != "Stargate 30000001 -> 30000002" {
		t.Errorf("gate 1 name = %q", first.Name)
	}
}

func TestBuildStargates_BidirectionalLinkYieldsTwoRecords(t *testing.T) {
	systems := map[string]*SolarSystem{
		"30000001": {Navigation: &Navigation{Neighbours: []ID{"30000002"}}},
		"30000002": {Navigation: &Navigation{Neighbours: []ID{"30000001"}}},
	}

	gates := BuildStargates(systems)
	if len(gates) != 2 {
		t.Fatalf("got %d stargates, want 2 (edges are directed, never deduplicated)", len(gates))
	}
}

func TestBuildStargates_CountPerSource(t *testing.T) {
	systems := map[string]*SolarSystem{
		"30000001": {Navigation: &Navigation{Neighbours: []ID{"30000002", "30000003", "30000004"}}},
		"30000002": {Navigation: &Navigation{Neighbours: []ID{"30000001"}}},
		"30000003": {},
		"30000004": {Navigation: &Navigation{}},
	}

	gates := BuildStargates(systems)
	perSource := make(map[ID]int)
	for _, g := range gates {
		perSource[g.SourceSystemID]++
	}
	if perSource["30000001"] != 3 {
		t.Errorf("source 30000001 gates = %d, want 3", perSource["30000001"])
	}
	if perSource["30000002"] != 1 {
		t.Errorf("source 30000002 gates = %d, want 1", perSource["30000002"])
	}
	if perSource["30000003"] != 0 || perSource["30000004"] != 0 {
		t.Errorf("neighbourless systems produced gates: %v", perSource)
	}
}

func TestBuildStargates_DeterministicAcrossRuns(t *testing.T) {
	systems := map[string]*SolarSystem{
		"30000003": {Navigation: &Navigation{Neighbours: []ID{"30000001"}}},
		"30000001": {Navigation: &Navigation{Neighbours: []ID{"30000002", "30000003"}}},
		"30000002": {Navigation: &Navigation{Neighbours: []ID{"30000001"}}},
	}

	a := BuildStargates(systems)
	b := BuildStargates(systems)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("stargate ids differ across runs over identical input:\n%v\n%v", a, b)
	}
}

func TestTransform_SetsPositionsAndGates(t *testing.T) {
	d := &MapData{
		SolarSystems: map[string]*SolarSystem{
			"30000001": {
				Center:     []float64{MetersPerLightYear, 0, 0},
				Navigation: &Navigation{Neighbours: []ID{"30000002"}},
			},
			"30000002": {Center: []float64{1, 2}}, // malformed, stays unset
		},
	}

	d.Transform()

	s1 := d.SolarSystems["30000001"]
	if s1.Position == nil || s1.Position.X != 1 {
		t.Errorf("system 30000001 position = %+v", s1.Position)
	}
	if got := s1.Center[0]; got != MetersPerLightYear {
		t.Errorf("source center was rewritten: %v", got)
	}
	if d.SolarSystems["30000002"].Position != nil {
		t.Error("malformed center must leave position unset")
	}
	if len(d.Stargates) != 1 {
		t.Errorf("stargates = %d, want 1", len(d.Stargates))
	}
}
