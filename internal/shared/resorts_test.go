package shared_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/heynenm/snowreport/internal/shared"
)

func TestLoadResorts_EmbeddedDefault(t *testing.T) {
	rs, err := shared.LoadResorts("")
	if err != nil {
		t.Fatalf("LoadResorts: %v", err)
	}
	if len(rs) != 16 {
		t.Fatalf("expected 16 resorts, got %d", len(rs))
	}
	if rs[0].Name != "Palisades Tahoe" || rs[0].State != "CA" {
		t.Fatalf("unexpected first record: %+v", rs[0])
	}
	for _, r := range rs {
		if r.Lat < -90 || r.Lat > 90 || r.Lon < -180 || r.Lon > 180 {
			t.Fatalf("resort %q has out-of-range coordinates", r.Name)
		}
	}
}

func TestLoadResorts_FileOverride(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resorts.yaml")
	doc := `resorts:
  - name: Test Bowl
    region: Nowhere
    state: ut
    elevation_ft: 9000
    lat: 40.5
    lon: -111.6
    report_url: https://example.com/report
    webcam_url: https://example.com/cams
`
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	rs, err := shared.LoadResorts(p)
	if err != nil {
		t.Fatalf("LoadResorts: %v", err)
	}
	if len(rs) != 1 || rs[0].Name != "Test Bowl" {
		t.Fatalf("unexpected registry: %+v", rs)
	}
}

func TestLoadResorts_RejectsBadCoordinates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resorts.yaml")
	doc := `resorts:
  - name: Off The Map
    region: Nowhere
    elevation_ft: 100
    lat: 95.0
    lon: 10.0
`
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := shared.LoadResorts(p); err == nil {
		t.Fatalf("expected validation error for lat=95")
	}
}

func TestLoadResorts_RejectsBadStateCode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "resorts.yaml")
	doc := `resorts:
  - name: Bad State
    region: Nowhere
    state: C1
    elevation_ft: 100
    lat: 40.0
    lon: -100.0
`
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := shared.LoadResorts(p); err == nil {
		t.Fatalf("expected validation error for state=C1")
	}
}
