package engine

import (
	"encoding/json"
	"reflect"
)

// Marshal serializes an expression graph into the JSON form the evaluation
// endpoints accept. Object keys are emitted in sorted order, so equal graphs
// always serialize to equal bytes.
func Marshal(e *Expression) ([]byte, error) {
	if e == nil {
		return nil, ErrNilExpression
	}
	return json.Marshal(e.EncodeGraph())
}

// encodeValue lowers one argument into plain JSON-marshalable data.
// Values reaching here already passed checkValue.
func encodeValue(v any) any {
	switch val := v.(type) {
	case Node:
		return val.EncodeGraph()
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = encodeValue(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = encodeValue(iter.Value().Interface())
		}
		return out
	}
	return v
}
