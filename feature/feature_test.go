package feature

import (
	"encoding/json"
	"testing"
)

func TestPointEncoding(t *testing.T) {
	p := Point(-122.4, 37.8)
	got, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"coordinates":[-122.4,37.8],"type":"Point"}`
	if string(got) != want {
		t.Fatalf("unexpected point encoding:\n got %s\nwant %s", got, want)
	}
}

func TestPolygonEncoding(t *testing.T) {
	g := Polygon([][][]float64{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	if g.Type != "Polygon" {
		t.Fatalf("unexpected type %q", g.Type)
	}
	if g.IsZero() {
		t.Fatalf("polygon reported zero")
	}
}

func TestZeroGeometry(t *testing.T) {
	var g Geometry
	if !g.IsZero() {
		t.Fatalf("zero geometry not detected")
	}
}

func TestFeatureEncodingWithProperties(t *testing.T) {
	f := New(Point(1, 2), map[string]any{"name": "pier"})
	got, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"geometry":{"coordinates":[1,2],"type":"Point"},"properties":{"name":"pier"},"type":"Feature"}`
	if string(got) != want {
		t.Fatalf("unexpected feature encoding:\n got %s\nwant %s", got, want)
	}
}

func TestFeatureEncodingWithoutProperties(t *testing.T) {
	f := New(Point(1, 2), nil)
	got, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"geometry":{"coordinates":[1,2],"type":"Point"},"type":"Feature"}`
	if string(got) != want {
		t.Fatalf("unexpected feature encoding:\n got %s\nwant %s", got, want)
	}
}

func TestNewCopiesProperties(t *testing.T) {
	props := map[string]any{"name": "pier"}
	f := New(Point(1, 2), props)
	props["name"] = "mutated"
	if f.Properties["name"] != "pier" {
		t.Fatalf("properties not isolated from caller map")
	}
}
