package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
1,CCAFS LC-40,0,0,F9 v1.0  B0003,v1.0
2,CCAFS LC-40,0,525,F9 v1.0  B0005,v1.0
3,VAFB SLC-4E,0,500,F9 v1.1  B1003,v1.1
4,KSC LC-39A,1,2490,F9 FT B1031.1,FT
`

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "launches.csv")
	if err := os.WriteFile(data, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "charts")

	t.Setenv("DATA_FILE", data)
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.yaml"))

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"render", "--site", "CCAFS LC-40", "--max", "1000", "--out", out})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, name := range []string{"success-pie-chart.png", "success-payload-scatter-chart.png"} {
		info, err := os.Stat(filepath.Join(out, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if !strings.Contains(stdout.String(), "Total Successful Launches for site CCAFS LC-40") {
		t.Errorf("output = %q", stdout.String())
	}
}
