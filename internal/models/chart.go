package models

// Chart kinds
const (
	KindPie     = "pie"
	KindScatter = "scatter"
)

// Segment is one slice of a proportion chart.
type Segment struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Point is one marker of a scatter chart.
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Category string  `json:"category"`
}

// ChartSpec describes a chart to the rendering layer. A spec is built once
// per filter change and treated as read-only afterwards.
type ChartSpec struct {
	ID       string            `json:"id"`
	Kind     string            `json:"kind"`
	Title    string            `json:"title"`
	XLabel   string            `json:"x_label,omitempty"`
	YLabel   string            `json:"y_label,omitempty"`
	XRange   *Range            `json:"x_range,omitempty"`
	Segments []Segment         `json:"segments,omitempty"`
	Points   []Point           `json:"points,omitempty"`
	Colors   map[string]string `json:"colors,omitempty"`
}

// Range is a closed numeric interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Total returns the sum of all segment values.
func (s ChartSpec) Total() float64 {
	var total float64
	for _, seg := range s.Segments {
		total += seg.Value
	}
	return total
}

// Empty reports whether the chart has nothing to draw.
func (s ChartSpec) Empty() bool {
	switch s.Kind {
	case KindPie:
		return len(s.Segments) == 0 || s.Total() <= 0
	case KindScatter:
		return len(s.Points) == 0
	default:
		return len(s.Segments) == 0 && len(s.Points) == 0
	}
}

// Categories returns the distinct point categories in first-seen order.
func (s ChartSpec) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.Points {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
