package feature

import "encoding/json"

// Feature is one geographic feature: a geometry plus free-form properties.
type Feature struct {
	Geometry   Geometry
	Properties map[string]any
}

// New builds a feature from a geometry and an optional property map.
// The property map is copied so later caller mutation cannot reach the
// feature.
func New(geom Geometry, props map[string]any) Feature {
	var copied map[string]any
	if len(props) > 0 {
		copied = make(map[string]any, len(props))
		for k, v := range props {
			copied[k] = v
		}
	}
	return Feature{Geometry: geom, Properties: copied}
}

// EncodeGraph encodes the feature as a request-graph object.
func (f Feature) EncodeGraph() any {
	obj := map[string]any{
		"type":     "Feature",
		"geometry": f.Geometry.EncodeGraph(),
	}
	if f.Properties != nil {
		obj["properties"] = f.Properties
	}
	return obj
}

// MarshalJSON keeps the wire form identical to the graph form.
func (f Feature) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.EncodeGraph())
}
