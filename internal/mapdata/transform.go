package mapdata

import (
	"fmt"
	"sort"
	"strconv"
)

// MetersPerLightYear is the scale constant between the source coordinate
// space (meters) and display space (light-years).
const MetersPerLightYear = 9460730472580800

// Rotate converts a Z-up vector to the Y-up display convention:
// (x, y, z) -> (x, z, -y).
func Rotate(x, y, z float64) Position {
	return Position{X: x, Y: z, Z: -y}
}

// DisplayPosition scales a source-space center vector to light-years and
// rotates it into display space. Returns nil when the vector is absent or
// has fewer than 3 components.
func DisplayPosition(center []float64) *Position {
	if len(center) < 3 {
		return nil
	}
	p := Rotate(
		center[0]/MetersPerLightYear,
		center[1]/MetersPerLightYear,
		center[2]/MetersPerLightYear,
	)
	return &p
}

// BuildStargates synthesizes one directed stargate per neighbour-list entry.
// Ids are a local accumulator starting at 1, assigned over a sorted pass of
// the system map so identical input yields identical ids. Edges are not
// deduplicated: a bidirectional link produces two records.
func BuildStargates(systems map[string]*SolarSystem) map[string]*Stargate {
	ids := make([]string, 0, len(systems))
	for id := range systems {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	gates := make(map[string]*Stargate)
	next := 1
	for _, sysID := range ids {
		for _, dst := range systems[sysID].Neighbours() {
			gates[strconv.Itoa(next)] = &Stargate{
				ID:                  next,
				Name:                fmt.Sprintf("Stargate %s -> %s", sysID, dst),
				SourceSystemID:      ID(sysID),
				DestinationSystemID: dst,
			}
			next++
		}
	}
	return gates
}

// Transform derives display positions for every solar system and synthesizes
// the stargate set. Applied exactly once per load; Center is never rewritten,
// so re-running a load-transform cycle is reproducible.
func (d *MapData) Transform() {
	for _, s := range d.SolarSystems {
		s.Position = DisplayPosition(s.Center)
	}
	d.Stargates = BuildStargates(d.SolarSystems)
}
