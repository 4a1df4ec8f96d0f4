package mapdata

import "encoding/json"

// stellarLabel is the object form a stellar (region) label may take. The
// source also allows a bare string, handled separately in MergeLabels.
type stellarLabel struct {
	Text       string    `json:"text"`
	ParentID   ID        `json:"parent_id"`
	Position   []float64 `json:"position"`
	FontSize   float64   `json:"font_size"`
	ShowOnZoom *bool     `json:"showOnZoom"`
}

// MergeLabels folds the three label sources into one map keyed by label id.
// System and constellation labels are bare strings; stellar labels are
// region-typed and may carry placement extras, with the position rotated
// into the Y-up display convention. On an id collision the region form wins
// over constellation, which wins over system.
func (d *MapData) MergeLabels() map[string]*Label {
	labels := make(map[string]*Label, len(d.SystemLabels)+len(d.ConstellationLabels)+len(d.StellarLabels))

	for id, text := range d.SystemLabels {
		labels[id] = &Label{Text: text, Type: "system"}
	}
	for id, text := range d.ConstellationLabels {
		labels[id] = &Label{Text: text, Type: "constellation"}
	}
	for id, raw := range d.StellarLabels {
		labels[id] = parseStellarLabel(raw)
	}
	return labels
}

func parseStellarLabel(raw json.RawMessage) *Label {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return &Label{Text: text, Type: "region"}
	}

	var sl stellarLabel
	if err := json.Unmarshal(raw, &sl); err != nil {
		return &Label{Type: "region"}
	}
	l := &Label{
		Text:       sl.Text,
		Type:       "region",
		ParentID:   sl.ParentID,
		FontSize:   sl.FontSize,
		ShowOnZoom: sl.ShowOnZoom,
	}
	// Label positions are already in display units, but Z-up.
	if len(sl.Position) >= 3 {
		p := Rotate(sl.Position[0], sl.Position[1], sl.Position[2])
		l.Position = &p
	}
	return l
}
