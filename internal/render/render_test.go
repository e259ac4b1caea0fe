package render

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"launchdash/internal/dataset"
	"launchdash/internal/derive"
	"launchdash/internal/models"
)

func testTable() *dataset.Table {
	return dataset.FromRecords([]models.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 500, Success: false, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", PayloadMassKg: 2500, Success: true, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", PayloadMassKg: 5300, Success: true, BoosterCategory: "FT"},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, Success: true, BoosterCategory: "B4"},
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", PNG, false},
		{"png", PNG, false},
		{"svg", SVG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if tt.wantErr && !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("ParseFormat(%q) error = %v, want ErrUnsupportedFormat", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRender_PNG(t *testing.T) {
	table := testTable()
	r := New(640, 400)

	specs := []models.ChartSpec{
		derive.OutcomeProportion(table, models.AllSites),
		derive.OutcomeProportion(table, "CCAFS LC-40"),
		derive.PayloadScatter(table, table.FullRange()),
		derive.PayloadScatter(table, models.FilterState{Site: "KSC LC-39A", PayloadMin: 5300, PayloadMax: 5300}),
	}

	for _, spec := range specs {
		t.Run(spec.Title, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.Render(&buf, spec, PNG); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if _, err := png.Decode(&buf); err != nil {
				t.Errorf("output is not a PNG: %v", err)
			}
		})
	}
}

func TestRender_SVG(t *testing.T) {
	table := testTable()
	var buf bytes.Buffer
	if err := New(640, 400).Render(&buf, derive.PayloadScatter(table, table.FullRange()), SVG); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not SVG: %.80s", buf.String())
	}
}

func TestRender_EmptySpecIsBlank(t *testing.T) {
	table := testTable()
	r := New(320, 200)

	empty := []models.ChartSpec{
		derive.OutcomeProportion(table, "Omelek"),
		derive.PayloadScatter(table, models.FilterState{Site: models.AllSites}),
	}
	for _, spec := range empty {
		var buf bytes.Buffer
		if err := r.Render(&buf, spec, PNG); err != nil {
			t.Fatalf("Render(%s) error = %v", spec.ID, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			t.Fatalf("blank output is not a PNG: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
			t.Errorf("blank size = %dx%d, want 320x200", b.Dx(), b.Dy())
		}
		if n := nonWhitePixels(img); n == 0 {
			t.Errorf("blank png for %s carries no text", spec.ID)
		}

		buf.Reset()
		if err := r.Render(&buf, spec, SVG); err != nil {
			t.Fatalf("Render(%s, svg) error = %v", spec.ID, err)
		}
		if !strings.Contains(buf.String(), "No data") {
			t.Errorf("blank svg missing placeholder text")
		}
	}
}

func TestPalette_Resolve(t *testing.T) {
	p := DefaultPalette().With(map[string]string{"LightGreen": "#00ff00"})

	if got := p.Resolve("lightgreen", 0); got.R != 0 || got.G != 0xff || got.B != 0 {
		t.Errorf("override not applied: %+v", got)
	}
	if got := p.Resolve("red", 0); got.R != 0xff || got.G != 0 || got.B != 0 {
		t.Errorf("red = %+v", got)
	}
	if got := p.Resolve("#102030", 0); got.R != 0x10 || got.G != 0x20 || got.B != 0x30 {
		t.Errorf("hex = %+v", got)
	}
	if got := p.Resolve("", 2); got != p.Resolve("unknown", 2) {
		t.Errorf("default colours should depend only on index")
	}
}

func nonWhitePixels(img image.Image) int {
	var n int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r < 0xf000 || g < 0xf000 || bl < 0xf000 {
				n++
			}
		}
	}
	return n
}
