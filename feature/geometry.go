// Package feature holds the client-side geometry and feature value types.
// Both are plain data: they never talk to the remote service, they only
// appear as arguments inside request graphs.
package feature

import "encoding/json"

// Geometry is a GeoJSON-shaped geometry value.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// Point builds a point geometry from lon/lat.
func Point(lon, lat float64) Geometry {
	return Geometry{Type: "Point", Coordinates: []float64{lon, lat}}
}

// MultiPoint builds a multi-point geometry.
func MultiPoint(coords [][]float64) Geometry {
	return Geometry{Type: "MultiPoint", Coordinates: coords}
}

// LineString builds a line geometry from an ordered coordinate list.
func LineString(coords [][]float64) Geometry {
	return Geometry{Type: "LineString", Coordinates: coords}
}

// Polygon builds a polygon from one outer ring plus optional holes.
func Polygon(rings [][][]float64) Geometry {
	return Geometry{Type: "Polygon", Coordinates: rings}
}

// MultiPolygon builds a multi-polygon geometry.
func MultiPolygon(polys [][][][]float64) Geometry {
	return Geometry{Type: "MultiPolygon", Coordinates: polys}
}

// IsZero reports whether the geometry carries no data.
func (g Geometry) IsZero() bool {
	return g.Type == "" && g.Coordinates == nil
}

// EncodeGraph encodes the geometry as a request-graph object.
func (g Geometry) EncodeGraph() any {
	return map[string]any{
		"type":        g.Type,
		"coordinates": g.Coordinates,
	}
}

// MarshalJSON keeps the wire form identical to the graph form.
func (g Geometry) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.EncodeGraph())
}
