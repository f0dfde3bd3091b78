package catalog

import "strings"

type Color struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

var palette = []Color{
	{Name: "Black", Hex: "#0f172a"},
	{Name: "White", Hex: "#f8fafc"},
	{Name: "Graphite", Hex: "#4b5563"},
	{Name: "Sand", Hex: "#f5e1c8"},
	{Name: "Olive", Hex: "#6b7b4a"},
	{Name: "Forest", Hex: "#166534"},
	{Name: "Navy", Hex: "#1e3a8a"},
	{Name: "Sky", Hex: "#7dd3fc"},
	{Name: "Clay", Hex: "#c2410c"},
	{Name: "Rose", Hex: "#fda4af"},
	{Name: "Amber", Hex: "#f59e0b"},
	{Name: "Lilac", Hex: "#c4b5fd"},
}

// ColorRecommendations are shown above the palette.
var ColorRecommendations = []string{"Graphite", "Olive", "Sand"}

// FilterColors returns the palette entries whose name contains query.
// An empty query returns the whole palette.
func FilterColors(query string) []Color {
	if query == "" {
		out := make([]Color, len(palette))
		copy(out, palette)
		return out
	}
	q := strings.ToLower(query)
	out := []Color{}
	for _, c := range palette {
		if strings.Contains(strings.ToLower(c.Name), q) {
			out = append(out, c)
		}
	}
	return out
}
