package engine

import (
	"reflect"
	"strings"
)

// Args maps remote operation parameter names to their arguments.
type Args map[string]any

// Node is implemented by values that encode themselves into a request graph.
type Node interface {
	EncodeGraph() any
}

// Expression is a computed reference: one named remote operation plus the
// arguments it will be applied to. Arguments may themselves be expressions,
// so expressions compose into request graphs. Immutable once built.
type Expression struct {
	fn   string
	args Args
}

// NewCall builds an expression for the named remote operation. Every
// argument is checked up front; an unsupported value fails with an
// InvalidArgumentError and no expression is produced. Slice and map
// arguments are copied all the way down, so later caller mutation cannot
// reach the expression.
func NewCall(fn string, args Args) (*Expression, error) {
	if strings.TrimSpace(fn) == "" {
		return nil, ErrOperationRequired
	}
	copied := make(Args, len(args))
	for name, value := range args {
		c, err := copyValue(value)
		if err != nil {
			return nil, err
		}
		copied[name] = c
	}
	return &Expression{fn: fn, args: copied}, nil
}

// Function returns the remote operation name.
func (e *Expression) Function() string {
	return e.fn
}

// Arg returns one argument by parameter name. Slice and map arguments
// come back as copies.
func (e *Expression) Arg(name string) (any, bool) {
	v, ok := e.args[name]
	if !ok {
		return nil, false
	}
	c, _ := copyValue(v)
	return c, true
}

// Args returns a copy of the argument map, slices and maps included.
func (e *Expression) Args() Args {
	copied := make(Args, len(e.args))
	for name, value := range e.args {
		c, _ := copyValue(value)
		copied[name] = c
	}
	return copied
}

// EncodeGraph encodes the expression as a request-graph object.
func (e *Expression) EncodeGraph() any {
	obj := make(map[string]any, len(e.args)+1)
	obj["algorithm"] = e.fn
	for name, value := range e.args {
		obj[name] = encodeValue(value)
	}
	return obj
}

const opCollectionMap = "Collection.map"

// MapOver applies an algorithm element-wise over a collection expression.
// All collection wrappers defer their map operation here.
func MapOver(collection, algorithm *Expression) (*Expression, error) {
	if collection == nil || algorithm == nil {
		return nil, ErrNilExpression
	}
	return NewCall(opCollectionMap, Args{
		"collection":    collection,
		"baseAlgorithm": algorithm,
	})
}

// copyValue accepts the closed set of argument kinds the remote service
// understands: JSON scalars, graph nodes, and slices or string-keyed maps
// of those. Containers are rebuilt recursively, so the returned value
// shares no mutable structure with the input.
func copyValue(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, &InvalidArgumentError{Value: v}
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val, nil
	case Node:
		if rv := reflect.ValueOf(val); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, &InvalidArgumentError{Value: v}
		}
		return val, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			c, err := copyValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = c
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &InvalidArgumentError{Value: v}
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			c, err := copyValue(iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			out[iter.Key().String()] = c
		}
		return out, nil
	}
	return nil, &InvalidArgumentError{Value: v}
}
