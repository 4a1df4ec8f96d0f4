package mapdata

import "encoding/json"

// ID is a numeric entity identifier carried as text. The source exports mix
// quoted and bare numbers, and some identifiers exceed a signed 64-bit range,
// so ids stay strings end-to-end.
type ID string

// UnmarshalJSON accepts both "30000001" and 30000001.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON always emits the quoted form.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// Position is a point in display space: light-year units, Y-up.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Region is a top-level grouping of constellations.
type Region struct {
	Name   string          `json:"name"`
	Center []float64       `json:"center,omitempty"`
	Hidden bool            `json:"hidden,omitempty"`
	Nebula json.RawMessage `json:"nebula,omitempty"` // opaque frontend metadata, passed through
}

// Constellation groups solar systems within a region.
type Constellation struct {
	Name     string          `json:"name"`
	RegionID ID              `json:"regionId,omitempty"`
	Center   []float64       `json:"center,omitempty"`
	Lines    json.RawMessage `json:"lines,omitempty"` // line-segment metadata, passed through
	Hidden   bool            `json:"hidden,omitempty"`
}

// Navigation holds a system's adjacency data.
type Navigation struct {
	Neighbours []ID `json:"neighbours,omitempty"`
}

// SolarSystem is a single star system. Center is the source-space vector in
// meters (Z-up); Position is derived once in display space and is nil when
// the source vector is absent or malformed.
type SolarSystem struct {
	Name            string      `json:"name"`
	ConstellationID ID          `json:"constellationId,omitempty"`
	RegionID        ID          `json:"regionId,omitempty"`
	Center          []float64   `json:"center,omitempty"`
	Position        *Position   `json:"position,omitempty"`
	SecurityClass   string      `json:"securityClass,omitempty"`
	SecurityStatus  float64     `json:"securityStatus,omitempty"`
	StarClass       string      `json:"starClass,omitempty"`
	Hidden          bool        `json:"hidden,omitempty"`
	Navigation      *Navigation `json:"navigation,omitempty"`
}

// Neighbours returns the system's adjacency list, or nil.
func (s *SolarSystem) Neighbours() []ID {
	if s.Navigation == nil {
		return nil
	}
	return s.Navigation.Neighbours
}

// Stargate is a synthetic directed edge between two solar systems, derived
// from adjacency data. A bidirectional link yields two records.
type Stargate struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	SourceSystemID      ID     `json:"source_system_id"`
	DestinationSystemID ID     `json:"destination_system_id"`
}

// Label is one merged map label. Region-type labels may carry placement
// extras the other two types never have.
type Label struct {
	Text       string    `json:"text"`
	Type       string    `json:"type"` // region | constellation | system
	ParentID   ID        `json:"parent_id,omitempty"`
	Position   *Position `json:"position,omitempty"`
	FontSize   float64   `json:"font_size,omitempty"`
	ShowOnZoom *bool     `json:"showOnZoom,omitempty"`
}

// MapData is the full in-memory snapshot: everything loaded from the source
// exports plus the derived stargates. Top-level keys match the consolidated
// map_data.json document.
type MapData struct {
	Regions             map[string]*Region         `json:"regions"`
	Constellations      map[string]*Constellation  `json:"constellations"`
	SolarSystems        map[string]*SolarSystem    `json:"solar_systems"`
	Stargates           map[string]*Stargate       `json:"stargates"`
	SystemLabels        map[string]string          `json:"system_labels"`
	ConstellationLabels map[string]string          `json:"constellation_labels"`
	StellarLabels       map[string]json.RawMessage `json:"stellar_labels"`
}
