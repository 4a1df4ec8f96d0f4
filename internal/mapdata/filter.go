package mapdata

// ApplyHiddenRegions flags every region on the denylist as hidden and
// cascades the flag downward: a solar system or constellation is hidden when
// its declared regionId is denylisted. The flag never propagates upward or
// sideways, and entities outside denylisted regions are never touched.
func (d *MapData) ApplyHiddenRegions(denylist []string) {
	denied := make(map[string]bool, len(denylist))
	for _, id := range denylist {
		denied[id] = true
	}

	for id, r := range d.Regions {
		if denied[id] {
			r.Hidden = true
		}
	}
	for _, s := range d.SolarSystems {
		if denied[string(s.RegionID)] {
			s.Hidden = true
		}
	}
	for _, c := range d.Constellations {
		if denied[string(c.RegionID)] {
			c.Hidden = true
		}
	}
}
