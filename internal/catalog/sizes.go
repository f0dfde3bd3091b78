package catalog

import "strings"

// DefaultSize is used when a cart add does not name a size.
const DefaultSize = "M"

type Size struct {
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

var sizes = []Size{
	{Label: "XS", Available: true},
	{Label: "S", Available: true},
	{Label: "M", Available: true},
	{Label: "L", Available: false},
	{Label: "XL", Available: true},
}

func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

// ParseSize normalizes a size label. Blank input yields DefaultSize.
func ParseSize(label string) (Size, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if label == "" {
		label = DefaultSize
	}
	for _, s := range sizes {
		if s.Label == label {
			return s, true
		}
	}
	return Size{}, false
}
