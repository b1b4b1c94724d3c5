// Package collection wraps server-side feature collections. A Collection is
// a computed reference specialized to a sequence of geographic features; it
// always reduces to a table load by identifier, a literal feature list, or
// the reinterpretation of an existing expression.
package collection

import (
	"github.com/gridworks-io/geoengine/engine"
	"github.com/gridworks-io/geoengine/feature"
)

const (
	opLoadTable    = "Collection.loadTable"
	opFromFeatures = "Collection.fromFeatures"
	opDraw         = "Collection.draw"
)

// Collection is an immutable handle on a remote feature collection.
type Collection struct {
	expr *engine.Expression
}

// TableOption tunes a table-load request.
type TableOption func(*tableOptions)

type tableOptions struct {
	geometryColumn string
}

// WithGeometryColumn tags which table field holds the geometry.
func WithGeometryColumn(name string) TableOption {
	return func(o *tableOptions) {
		o.geometryColumn = name
	}
}

// FromTable loads a named table asset.
func FromTable(id string, opts ...TableOption) *Collection {
	return fromTableArg(id, opts)
}

// FromTableNumeric loads a table asset by numeric identifier.
func FromTableNumeric(id int64, opts ...TableOption) *Collection {
	return fromTableArg(id, opts)
}

func fromTableArg(id any, opts []TableOption) *Collection {
	var o tableOptions
	for _, opt := range opts {
		opt(&o)
	}
	args := engine.Args{"tableId": id}
	if o.geometryColumn != "" {
		args["geometryColumn"] = o.geometryColumn
	}
	return &Collection{expr: mustCall(opLoadTable, args)}
}

// FromGeometry wraps a single geometry as a one-feature collection.
func FromGeometry(g feature.Geometry) *Collection {
	return FromFeatures([]feature.Feature{feature.New(g, nil)})
}

// FromFeature wraps a single feature as a one-element collection.
func FromFeature(f feature.Feature) *Collection {
	return FromFeatures([]feature.Feature{f})
}

// FromFeatures builds a collection from literal features, preserving order.
func FromFeatures(features []feature.Feature) *Collection {
	wrapped := make([]any, len(features))
	for i, f := range features {
		wrapped[i] = f
	}
	return &Collection{expr: mustCall(opFromFeatures, engine.Args{"features": wrapped})}
}

// FromExpression reinterprets an existing computed reference as a
// collection. The expression is adopted as-is; wrapping is never stacked.
func FromExpression(expr *engine.Expression) (*Collection, error) {
	if expr == nil {
		return nil, engine.ErrNilExpression
	}
	return &Collection{expr: expr}, nil
}

// Expression returns the underlying computed reference.
func (c *Collection) Expression() *engine.Expression {
	return c.expr
}

// Map applies an algorithm to every element, deferring to the engine's
// shared mapping primitive.
func (c *Collection) Map(algorithm *engine.Expression) (*Collection, error) {
	expr, err := engine.MapOver(c.expr, algorithm)
	if err != nil {
		return nil, err
	}
	return &Collection{expr: expr}, nil
}

// mustCall builds expressions whose inputs are statically known to be valid
// argument kinds. A failure here is a programming error in this package.
func mustCall(fn string, args engine.Args) *engine.Expression {
	expr, err := engine.NewCall(fn, args)
	if err != nil {
		panic(err)
	}
	return expr
}
