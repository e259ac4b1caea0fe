package derive

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

func rec(site string, kg float64, ok bool, booster string) models.LaunchRecord {
	return models.LaunchRecord{Site: site, PayloadMassKg: kg, Success: ok, BoosterCategory: booster}
}

func testTable() *dataset.Table {
	return dataset.FromRecords([]models.LaunchRecord{
		rec("CCAFS LC-40", 0, false, "v1.0"),
		rec("CCAFS LC-40", 525, false, "v1.0"),
		rec("CCAFS LC-40", 677, true, "v1.1"),
		rec("VAFB SLC-4E", 500, false, "v1.1"),
		rec("KSC LC-39A", 2490, true, "FT"),
		rec("KSC LC-39A", 5300, true, "FT"),
		rec("CCAFS SLC-40", 9600, true, "B5"),
		rec("VAFB SLC-4E", 9600, true, "B4"),
	})
}

func TestOutcomeProportion_SingleSite(t *testing.T) {
	var recs []models.LaunchRecord
	for range 3 {
		recs = append(recs, rec("CCAFS LC-40", 1000, true, "FT"))
	}
	for range 5 {
		recs = append(recs, rec("CCAFS LC-40", 2000, false, "v1.0"))
	}
	recs = append(recs, rec("KSC LC-39A", 3000, true, "FT"))

	got := OutcomeProportion(dataset.FromRecords(recs), "CCAFS LC-40")

	want := []models.Segment{
		{Label: "Success", Value: 3, Color: "lightgreen"},
		{Label: "Failure", Value: 5, Color: "red"},
	}
	if diff := cmp.Diff(want, got.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if got.Title != "Total Successful Launches for site CCAFS LC-40" {
		t.Errorf("Title = %q", got.Title)
	}
	if got.Kind != models.KindPie {
		t.Errorf("Kind = %q, want %q", got.Kind, models.KindPie)
	}
}

func TestOutcomeProportion_AllSites(t *testing.T) {
	got := OutcomeProportion(testTable(), models.AllSites)

	want := []models.Segment{
		{Label: "CCAFS LC-40", Value: 1},
		{Label: "VAFB SLC-4E", Value: 1},
		{Label: "KSC LC-39A", Value: 2},
		{Label: "CCAFS SLC-40", Value: 1},
	}
	if diff := cmp.Diff(want, got.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if got.Title != "Total Success Launches By Site" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestOutcomeProportion_SegmentsSumToFilteredCount(t *testing.T) {
	table := testTable()

	var successes int
	for r := range table.All() {
		successes += r.Class()
	}
	if got := OutcomeProportion(table, models.AllSites).Total(); got != float64(successes) {
		t.Errorf("ALL total = %v, want %d successes", got, successes)
	}

	for _, site := range table.Sites() {
		var n int
		for r := range table.All() {
			if r.Site == site {
				n++
			}
		}
		if got := OutcomeProportion(table, site).Total(); got != float64(n) {
			t.Errorf("site %q total = %v, want %d", site, got, n)
		}
	}
}

func TestOutcomeProportion_UnknownSiteIsEmpty(t *testing.T) {
	got := OutcomeProportion(testTable(), "Boca Chica")
	if len(got.Segments) != 0 {
		t.Fatalf("expected no segments, got %v", got.Segments)
	}
	if !got.Empty() {
		t.Error("Empty() = false, want true")
	}
}

func TestPayloadScatter_RangeIsInclusive(t *testing.T) {
	table := testTable()
	f := models.FilterState{Site: models.AllSites, PayloadMin: 500, PayloadMax: 2490}

	got := PayloadScatter(table, f)

	want := []models.Point{
		{X: 525, Y: 0, Category: "v1.0"},
		{X: 677, Y: 1, Category: "v1.1"},
		{X: 500, Y: 0, Category: "v1.1"},
		{X: 2490, Y: 1, Category: "FT"},
	}
	if diff := cmp.Diff(want, got.Points); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadScatter_NeverOutsideRange(t *testing.T) {
	table := testTable()
	ranges := []models.FilterState{
		{Site: models.AllSites, PayloadMin: 0, PayloadMax: 10000},
		{Site: models.AllSites, PayloadMin: 600, PayloadMax: 600},
		{Site: "VAFB SLC-4E", PayloadMin: 501, PayloadMax: 9600},
		{Site: "KSC LC-39A", PayloadMin: 3000, PayloadMax: 4000},
	}
	for _, f := range ranges {
		for _, p := range PayloadScatter(table, f).Points {
			if p.X < f.PayloadMin || p.X > f.PayloadMax {
				t.Errorf("filter %+v produced point outside range: %+v", f, p)
			}
		}
	}
}

func TestPayloadScatter_SiteFilterAndTitle(t *testing.T) {
	f := models.FilterState{Site: "VAFB SLC-4E", PayloadMin: 0, PayloadMax: 10000}
	got := PayloadScatter(testTable(), f)

	if len(got.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(got.Points))
	}
	if got.Title != "Correlation between Payload and Success for Site VAFB SLC-4E" {
		t.Errorf("Title = %q", got.Title)
	}
	if diff := cmp.Diff([]string{"v1.1", "B4"}, got.Categories()); diff != "" {
		t.Errorf("categories mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadScatter_FullRangeReproducesDataset(t *testing.T) {
	table := testTable()
	got := PayloadScatter(table, table.FullRange())

	if len(got.Points) != table.Len() {
		t.Fatalf("len(Points) = %d, want %d", len(got.Points), table.Len())
	}
	var successes float64
	for _, p := range got.Points {
		successes += p.Y
	}
	if want := OutcomeProportion(table, models.AllSites).Total(); successes != want {
		t.Errorf("scatter successes = %v, proportion total = %v", successes, want)
	}
	if got.Title != "Correlation between Payload and Success for All Sites" {
		t.Errorf("Title = %q", got.Title)
	}
}

func TestPayloadScatter_EmptyResults(t *testing.T) {
	table := dataset.FromRecords([]models.LaunchRecord{
		rec("CCAFS LC-40", 500, true, "FT"),
		rec("KSC LC-39A", 3000, false, "FT"),
	})

	tests := []struct {
		name   string
		filter models.FilterState
	}{
		{"zero range without zero payloads", models.FilterState{Site: models.AllSites}},
		{"site without launches in range", models.FilterState{Site: "KSC LC-39A", PayloadMin: 0, PayloadMax: 1000}},
		{"unknown site", models.FilterState{Site: "Omelek", PayloadMin: 0, PayloadMax: 10000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PayloadScatter(table, tt.filter)
			if len(got.Points) != 0 {
				t.Errorf("expected empty scatter, got %v", got.Points)
			}
			if !got.Empty() {
				t.Error("Empty() = false, want true")
			}
		})
	}
}

func TestDerivationsDoNotMutateTable(t *testing.T) {
	table := testTable()
	var before []models.LaunchRecord
	for r := range table.All() {
		before = append(before, r)
	}

	_ = OutcomeProportion(table, models.AllSites)
	_ = OutcomeProportion(table, "CCAFS LC-40")
	spec := PayloadScatter(table, table.FullRange())
	spec.Points[0].X = -1

	var after []models.LaunchRecord
	for r := range table.All() {
		after = append(after, r)
	}
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("table changed (-before +after):\n%s", diff)
	}
}
