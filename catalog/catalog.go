// Package catalog holds the catalog of server-defined operations. The
// catalog is built explicitly at startup, typically through Load, and
// passed by reference to whatever needs to validate or build calls
// against it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gridworks-io/geoengine/engine"
	"github.com/gridworks-io/geoengine/transport"
)

var (
	ErrSignatureExists   = errors.New("catalog: operation already registered")
	ErrInvalidSignature  = errors.New("catalog: invalid signature")
	ErrUnknownOperation  = errors.New("catalog: unknown operation")
	ErrMissingArgument   = errors.New("catalog: missing required argument")
	ErrTransportRequired = errors.New("catalog: transport client required")
)

// Arg describes one parameter of a server-defined operation.
type Arg struct {
	Name        string
	Description string
	Type        string
	Optional    bool
	Default     any
}

// Signature describes one server-defined operation.
type Signature struct {
	Name        string
	Description string
	Returns     string
	Args        []Arg
}

// Catalog stores operation signatures by name.
type Catalog struct {
	items map[string]Signature
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{items: make(map[string]Signature)}
}

// Register adds one signature to the catalog.
func (c *Catalog) Register(sig Signature) error {
	if strings.TrimSpace(sig.Name) == "" {
		return fmt.Errorf("%w: operation name required", ErrInvalidSignature)
	}
	for _, arg := range sig.Args {
		if strings.TrimSpace(arg.Name) == "" {
			return fmt.Errorf("%w: unnamed argument on %q", ErrInvalidSignature, sig.Name)
		}
	}
	if _, ok := c.items[sig.Name]; ok {
		return fmt.Errorf("%w: %q", ErrSignatureExists, sig.Name)
	}
	c.items[sig.Name] = sig
	return nil
}

// Resolve returns one signature by operation name.
func (c *Catalog) Resolve(name string) (Signature, bool) {
	sig, ok := c.items[name]
	return sig, ok
}

// Names returns all registered operation names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.items))
	for name := range c.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered operations.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Call validates the operation name and its required arguments against the
// catalog, then builds the expression.
func (c *Catalog) Call(name string, args engine.Args) (*engine.Expression, error) {
	sig, ok := c.items[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	for _, arg := range sig.Args {
		if arg.Optional {
			continue
		}
		if _, present := args[arg.Name]; !present {
			return nil, fmt.Errorf("%w: %q needs %q", ErrMissingArgument, name, arg.Name)
		}
	}
	return engine.NewCall(name, args)
}

// Load fetches the server's operation list once and builds the catalog.
func Load(ctx context.Context, client *transport.Client) (*Catalog, error) {
	if client == nil {
		return nil, ErrTransportRequired
	}
	infos, err := client.Algorithms(ctx)
	if err != nil {
		return nil, err
	}

	c := New()
	for name, info := range infos {
		args := make([]Arg, len(info.Args))
		for i, a := range info.Args {
			args[i] = Arg{
				Name:        a.Name,
				Description: a.Description,
				Type:        a.Type,
				Optional:    a.Optional,
				Default:     a.Default,
			}
		}
		if err := c.Register(Signature{
			Name:        name,
			Description: info.Description,
			Returns:     info.Returns,
			Args:        args,
		}); err != nil {
			return nil, err
		}
	}
	return c, nil
}
