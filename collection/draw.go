package collection

import (
	"context"

	"github.com/gridworks-io/geoengine/engine"
	"github.com/gridworks-io/geoengine/transport"
)

// DefaultDrawColor is the color used when a draw request does not pick one.
const DefaultDrawColor = "000000"

// DrawOptions tune vectorized rendering.
type DrawOptions struct {
	// Color is a hex RGB string; black when empty.
	Color string
}

// Draw builds the expression that rasterizes the collection's vectors.
// The color parameter is always present, defaulting to black.
func (c *Collection) Draw(opts DrawOptions) *engine.Expression {
	color := opts.Color
	if color == "" {
		color = DefaultDrawColor
	}
	return mustCall(opDraw, engine.Args{
		"collection": c.expr,
		"color":      color,
	})
}

// MapID renders the collection and requests a map-tile handle for it.
func (c *Collection) MapID(ctx context.Context, client *transport.Client, opts DrawOptions) (transport.MapHandle, error) {
	graph, err := engine.Marshal(c.Draw(opts))
	if err != nil {
		return transport.MapHandle{}, err
	}
	return client.MapID(ctx, transport.MapParams{
		Image:  string(graph),
		Format: "png",
	})
}
