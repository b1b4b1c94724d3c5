package collection

import (
	"github.com/gridworks-io/geoengine/engine"
	"github.com/gridworks-io/geoengine/feature"
)

// New classifies an untyped input into one of the collection's recognized
// shapes. It exists for callers holding dynamic values (decoded JSON,
// script bindings); typed callers should use the dedicated factories.
//
// Recognized shapes: string or numeric identifier, geometry, feature,
// slice of features or geometries, an existing collection or expression.
// Anything else fails with an InvalidArgumentError naming the value, and
// no partial object is produced.
func New(v any) (*Collection, error) {
	switch val := v.(type) {
	case string:
		return FromTable(val), nil
	case int:
		return FromTableNumeric(int64(val)), nil
	case int32:
		return FromTableNumeric(int64(val)), nil
	case int64:
		return FromTableNumeric(val), nil
	case float64:
		// JSON numbers decode as float64; whole values are identifiers.
		if val == float64(int64(val)) {
			return FromTableNumeric(int64(val)), nil
		}
	case feature.Geometry:
		return FromGeometry(val), nil
	case feature.Feature:
		return FromFeature(val), nil
	case []feature.Feature:
		return FromFeatures(val), nil
	case []feature.Geometry:
		features := make([]feature.Feature, len(val))
		for i, g := range val {
			features[i] = feature.New(g, nil)
		}
		return FromFeatures(features), nil
	case []any:
		features := make([]feature.Feature, len(val))
		for i, elem := range val {
			switch e := elem.(type) {
			case feature.Feature:
				features[i] = e
			case feature.Geometry:
				features[i] = feature.New(e, nil)
			default:
				return nil, &engine.InvalidArgumentError{Value: elem}
			}
		}
		return FromFeatures(features), nil
	case *Collection:
		if val != nil {
			return val, nil
		}
	case *engine.Expression:
		if val != nil {
			return FromExpression(val)
		}
	}
	return nil, &engine.InvalidArgumentError{Value: v}
}
