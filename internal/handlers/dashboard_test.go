package handlers

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"launchdash/internal/dataset"
	"launchdash/internal/models"
)

func TestChartURL(t *testing.T) {
	got := ChartURL("success-pie-chart", models.FilterState{Site: "KSC LC-39A", PayloadMin: 0, PayloadMax: 2500.5})

	u, err := url.Parse(got)
	if err != nil {
		t.Fatalf("url.Parse(%q) error = %v", got, err)
	}
	if u.Path != "/charts/success-pie-chart" {
		t.Errorf("path = %q", u.Path)
	}
	q := u.Query()
	if q.Get("site") != "KSC LC-39A" || q.Get("min") != "0" || q.Get("max") != "2500.5" {
		t.Errorf("query = %v", q)
	}
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestReadiness(t *testing.T) {
	loaded := dataset.FromRecords([]models.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 500, BoosterCategory: "v1.0"},
	})

	tests := []struct {
		name   string
		table  *dataset.Table
		db     Pinger
		status int
		body   string
	}{
		{"file source", loaded, nil, 200, `"records":1`},
		{"database up", loaded, fakePinger{}, 200, `"status":"ok"`},
		{"database down", loaded, fakePinger{err: errors.New("refused")}, 503, "database unavailable"},
		{"empty dataset", dataset.FromRecords(nil), nil, 503, "dataset not loaded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/readyz", NewProbeHandler(tt.table, tt.db).Readiness)

			resp, err := app.Test(httptest.NewRequest("GET", "/readyz", nil))
			if err != nil {
				t.Fatal(err)
			}
			body, _ := io.ReadAll(resp.Body)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", resp.StatusCode, tt.status)
			}
			if !strings.Contains(string(body), tt.body) {
				t.Errorf("body = %s, want substring %q", body, tt.body)
			}
		})
	}
}

func TestHTMXError(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c fiber.Ctx) error {
		return htmxError(c, `min <b> max`)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), "min &lt;b&gt; max") {
		t.Errorf("message not escaped: %s", body)
	}
}
