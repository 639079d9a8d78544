package sink

import "github.com/matzehuels/relgraph/pkg/scene"

// Palette maps scene classes to colors. Both renderers draw with
// [DefaultPalette]; the mapping is fixed.
type Palette struct {
	Value        string `json:"value" toml:"value"`
	Relationship string `json:"relationship" toml:"relationship"`
	Edge         string `json:"edge" toml:"edge"`
	Stroke       string `json:"stroke" toml:"stroke"`
	Text         string `json:"text" toml:"text"`
}

// DefaultPalette returns green value nodes, blue relationship nodes and blue
// edges with matching arrowheads.
func DefaultPalette() Palette {
	return Palette{
		Value:        "#4CAF50",
		Relationship: "#2196F3",
		Edge:         "#2196F3",
		Stroke:       "#333",
		Text:         "black",
	}
}

// Fill returns the color for a fill class.
func (p Palette) Fill(k scene.FillKind) string {
	if k == scene.FillRelationship {
		return p.Relationship
	}
	return p.Value
}
