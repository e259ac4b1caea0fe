package dataset

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"launchdash/internal/models"
)

func TestFromRecords_CopiesInput(t *testing.T) {
	recs := []models.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 500, Success: true, BoosterCategory: "FT"},
	}
	table := FromRecords(recs)
	recs[0].Site = "changed"

	for r := range table.All() {
		if r.Site != "CCAFS LC-40" {
			t.Errorf("table shares backing array with input: site = %q", r.Site)
		}
	}
}

func TestTable_SitesReturnsCopy(t *testing.T) {
	table := FromRecords([]models.LaunchRecord{{Site: "A"}, {Site: "B"}})
	sites := table.Sites()
	sites[0] = "Z"

	if diff := cmp.Diff([]string{"A", "B"}, table.Sites()); diff != "" {
		t.Errorf("Sites() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Empty(t *testing.T) {
	table := FromRecords(nil)
	lo, hi := table.PayloadBounds()
	if lo != 0 || hi != 0 {
		t.Errorf("PayloadBounds() = (%v, %v), want (0, 0)", lo, hi)
	}
	if len(table.Sites()) != 0 {
		t.Errorf("Sites() = %v, want empty", table.Sites())
	}
}

func TestTable_SiteOptions(t *testing.T) {
	table := FromRecords([]models.LaunchRecord{
		{Site: "KSC LC-39A"}, {Site: "CCAFS LC-40"}, {Site: "KSC LC-39A"},
	})

	want := []SiteOption{
		{Label: "All Sites", Value: models.AllSites},
		{Label: "KSC LC-39A", Value: "KSC LC-39A"},
		{Label: "CCAFS LC-40", Value: "CCAFS LC-40"},
	}
	if diff := cmp.Diff(want, table.SiteOptions("All Sites")); diff != "" {
		t.Errorf("SiteOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_HasSiteAndFullRange(t *testing.T) {
	table := FromRecords([]models.LaunchRecord{
		{Site: "A", PayloadMassKg: 350}, {Site: "B", PayloadMassKg: 15600},
	})

	if !table.HasSite("A") || table.HasSite("C") {
		t.Error("HasSite() returned unexpected result")
	}
	want := models.FilterState{Site: models.AllSites, PayloadMin: 350, PayloadMax: 15600}
	if got := table.FullRange(); got != want {
		t.Errorf("FullRange() = %+v, want %+v", got, want)
	}
}

func TestTable_AllStopsEarly(t *testing.T) {
	table := FromRecords([]models.LaunchRecord{{Site: "A"}, {Site: "B"}, {Site: "C"}})
	var n int
	for range table.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d records, want 2", n)
	}
}
