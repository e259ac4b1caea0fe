package render

import (
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// namedColors maps the colour names used in chart specs to RGB values.
var namedColors = map[string]string{
	"lightgreen": "90ee90",
	"red":        "ff0000",
	"green":      "008000",
	"blue":       "0000ff",
	"orange":     "ffa500",
	"gray":       "808080",
}

// Palette resolves colour names to drawing colours.
type Palette map[string]string

// DefaultPalette returns the built-in colour names.
func DefaultPalette() Palette {
	p := make(Palette, len(namedColors))
	for k, v := range namedColors {
		p[k] = v
	}
	return p
}

// With returns a copy of p with overrides applied.
func (p Palette) With(overrides map[string]string) Palette {
	out := make(Palette, len(p)+len(overrides))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range overrides {
		out[strings.ToLower(k)] = strings.TrimPrefix(v, "#")
	}
	return out
}

// Resolve returns the colour for name, a hex value, or the series default
// for index when name is empty or unknown.
func (p Palette) Resolve(name string, index int) drawing.Color {
	key := strings.ToLower(strings.TrimSpace(name))
	if hex, ok := p[key]; ok {
		return drawing.ColorFromHex(hex)
	}
	if isHex(key) {
		return drawing.ColorFromHex(strings.TrimPrefix(key, "#"))
	}
	return chart.GetDefaultColor(index)
}

func isHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return false
		}
	}
	return true
}
