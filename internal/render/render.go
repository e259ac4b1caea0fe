// Package render draws chart specs as images.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"launchdash/internal/models"
)

// Format is an output image encoding.
type Format string

// Supported formats.
const (
	PNG Format = "png"
	SVG Format = "svg"
)

var ErrUnsupportedFormat = errors.New("unsupported image format")

// ParseFormat validates a format name; empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Renderer draws chart specs at a fixed size.
type Renderer struct {
	Width   int
	Height  int
	Palette Palette
}

// New creates a renderer with the default palette.
func New(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height, Palette: DefaultPalette()}
}

// Render writes spec to w. Empty specs produce a blank placeholder.
func (r *Renderer) Render(w io.Writer, spec models.ChartSpec, f Format) error {
	if spec.Empty() {
		return r.blank(w, spec.Title, f)
	}

	var (
		renderable interface {
			Render(chart.RendererProvider, io.Writer) error
		}
		err error
	)
	switch spec.Kind {
	case models.KindPie:
		renderable = r.pie(spec)
	case models.KindScatter:
		renderable = r.scatter(spec)
	default:
		return fmt.Errorf("unknown chart kind %q", spec.Kind)
	}

	provider := chart.PNG
	if f == SVG {
		provider = chart.SVG
	}

	var buf bytes.Buffer
	if err = renderable.Render(provider, &buf); err != nil {
		return fmt.Errorf("render %s: %w", spec.ID, err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func (r *Renderer) pie(spec models.ChartSpec) *chart.PieChart {
	values := make([]chart.Value, 0, len(spec.Segments))
	for i, seg := range spec.Segments {
		if seg.Value <= 0 {
			continue
		}
		name := seg.Color
		if name == "" {
			name = spec.Colors[seg.Label]
		}
		if name == "" {
			name = seg.Label
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%g)", seg.Label, seg.Value),
			Value: seg.Value,
			Style: chart.Style{FillColor: r.Palette.Resolve(name, i)},
		})
	}

	return &chart.PieChart{
		Title:  spec.Title,
		Width:  r.Width,
		Height: r.Height,
		Values: values,
	}
}

// pointStyle draws markers only, without connecting lines.
func pointStyle(index int, p Palette, name string) chart.Style {
	col := p.Resolve(name, index)
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    5,
		DotColor:    col,
		StrokeColor: col,
	}
}

func (r *Renderer) scatter(spec models.ChartSpec) *chart.Chart {
	byCategory := make(map[string][2][]float64)
	for _, p := range spec.Points {
		xy := byCategory[p.Category]
		xy[0] = append(xy[0], p.X)
		xy[1] = append(xy[1], p.Y)
		byCategory[p.Category] = xy
	}

	var series []chart.Series
	for i, category := range spec.Categories() {
		xy := byCategory[category]
		series = append(series, chart.ContinuousSeries{
			Name:    category,
			XValues: xy[0],
			YValues: xy[1],
			Style:   pointStyle(i, r.Palette, spec.Colors[category]),
		})
	}

	ch := &chart.Chart{
		Title:      spec.Title,
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  spec.XLabel,
			Range: xRange(spec),
		},
		YAxis: chart.YAxis{
			Name:  spec.YLabel,
			Range: &chart.ContinuousRange{Min: -0.1, Max: 1.1},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}},
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}
	return ch
}

// xRange uses the filter range so the axis does not jump between updates,
// padding it when it would be degenerate.
func xRange(spec models.ChartSpec) *chart.ContinuousRange {
	lo, hi := math.Inf(1), math.Inf(-1)
	if spec.XRange != nil {
		lo, hi = spec.XRange.Min, spec.XRange.Max
	}
	for _, p := range spec.Points {
		lo, hi = math.Min(lo, p.X), math.Max(hi, p.X)
	}
	if hi-lo < 1 {
		lo, hi = lo-50, hi+50
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

func (r *Renderer) blank(w io.Writer, title string, f Format) error {
	if f == SVG {
		_, err := fmt.Fprintf(w,
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d"><rect width="100%%" height="100%%" fill="white"/><text x="50%%" y="24" text-anchor="middle" font-family="sans-serif" font-size="14">%s</text><text x="50%%" y="50%%" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#888">No data</text></svg>`,
			r.Width, r.Height, html.EscapeString(title))
		return err
	}

	rr, err := chart.PNG(r.Width, r.Height)
	if err != nil {
		return err
	}

	// The raster canvas starts transparent.
	rr.SetFillColor(drawing.ColorWhite)
	rr.MoveTo(0, 0)
	rr.LineTo(r.Width, 0)
	rr.LineTo(r.Width, r.Height)
	rr.LineTo(0, r.Height)
	rr.Close()
	rr.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	rr.SetFont(font)

	rr.SetFontColor(drawing.ColorBlack)
	rr.SetFontSize(14)
	centerText(rr, title, r.Width, 24)

	rr.SetFontColor(drawing.ColorFromHex("888888"))
	rr.SetFontSize(12)
	centerText(rr, "No data", r.Width, r.Height/2)

	return rr.Save(w)
}

func centerText(rr chart.Renderer, text string, width, y int) {
	if text == "" {
		return
	}
	box := rr.MeasureText(text)
	rr.Text(text, (width-box.Width())/2, y)
}
