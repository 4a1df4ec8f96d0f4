package mapdata

import "testing"

func TestApplyHiddenRegions_Cascade(t *testing.T) {
	d := &MapData{
		Regions: map[string]*Region{
			"14000001": {Name: "Hidden Rift"},
			"10000001": {Name: "Core"},
		},
		Constellations: map[string]*Constellation{
			"21000001": {Name: "In hidden region", RegionID: "14000001"},
			"20000001": {Name: "In visible region", RegionID: "10000001"},
		},
		SolarSystems: map[string]*SolarSystem{
			"31000001": {RegionID: "14000001", ConstellationID: "21000001"},
			"31000002": {RegionID: "14000001", ConstellationID: "21000001"},
			"30000001": {RegionID: "10000001", ConstellationID: "20000001"},
		},
	}

	d.ApplyHiddenRegions([]string{"14000001"})

	if !d.Regions["14000001"].Hidden {
		t.Error("denylisted region not hidden")
	}
	if d.Regions["10000001"].Hidden {
		t.Error("region outside denylist was flagged")
	}
	if !d.SolarSystems["31000001"].Hidden || !d.SolarSystems["31000002"].Hidden {
		t.Error("systems in denylisted region not hidden")
	}
	if d.SolarSystems["30000001"].Hidden {
		t.Error("system outside denylisted region was flagged")
	}
	if !d.Constellations["21000001"].Hidden {
		t.Error("constellation declared in denylisted region not hidden")
	}
	if d.Constellations["20000001"].Hidden {
		t.Error("constellation outside denylisted region was flagged")
	}
}

func TestApplyHiddenRegions_UnknownIDIsNoop(t *testing.T) {
	d := &MapData{
		Regions:      map[string]*Region{"10000001": {Name: "Core"}},
		SolarSystems: map[string]*SolarSystem{"30000001": {RegionID: "10000001"}},
	}

	d.ApplyHiddenRegions([]string{"99999999"})

	if d.Regions["10000001"].Hidden || d.SolarSystems["30000001"].Hidden {
		t.Error("denylist entry with no matching region flagged something")
	}
}

func TestApplyHiddenRegions_NeverPropagatesUpward(t *testing.T) {
	// A hidden system must not hide its region.
	d := &MapData{
		Regions: map[string]*Region{"10000001": {Name: "Core"}},
		SolarSystems: map[string]*SolarSystem{
			"30000001": {RegionID: "10000001", Hidden: true},
		},
	}

	d.ApplyHiddenRegions(nil)

	if d.Regions["10000001"].Hidden {
		t.Error("hidden flag propagated upward from system to region")
	}
}
