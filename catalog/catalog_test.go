package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gridworks-io/geoengine/engine"
	"github.com/gridworks-io/geoengine/transport"
)

func loadTableSignature() Signature {
	return Signature{
		Name:        "Collection.loadTable",
		Description: "Loads a table asset.",
		Returns:     "FeatureCollection",
		Args: []Arg{
			{Name: "tableId", Type: "String"},
			{Name: "geometryColumn", Type: "String", Optional: true},
		},
	}
}

func TestRegisterAndResolve(t *testing.T) {
	c := New()
	if err := c.Register(loadTableSignature()); err != nil {
		t.Fatalf("register: %v", err)
	}
	sig, ok := c.Resolve("Collection.loadTable")
	if !ok {
		t.Fatalf("signature not resolvable")
	}
	if sig.Returns != "FeatureCollection" {
		t.Fatalf("unexpected returns %q", sig.Returns)
	}
	if c.Len() != 1 {
		t.Fatalf("unexpected length %d", c.Len())
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	c := New()
	if err := c.Register(loadTableSignature()); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := c.Register(loadTableSignature()); !errors.Is(err, ErrSignatureExists) {
		t.Fatalf("expected ErrSignatureExists, got %v", err)
	}
}

func TestRegisterRejectsInvalidSignatures(t *testing.T) {
	c := New()
	if err := c.Register(Signature{Name: "  "}); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for empty name, got %v", err)
	}
	bad := loadTableSignature()
	bad.Args = append(bad.Args, Arg{Name: ""})
	if err := c.Register(bad); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for unnamed arg, got %v", err)
	}
}

func TestNamesAreSorted(t *testing.T) {
	c := New()
	for _, name := range []string{"Feature.buffer", "Collection.map", "Collection.loadTable"} {
		if err := c.Register(Signature{Name: name}); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	names := c.Names()
	want := []string{"Collection.loadTable", "Collection.map", "Feature.buffer"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("unexpected order %v", names)
		}
	}
}

func TestCallValidatesAgainstSignature(t *testing.T) {
	c := New()
	if err := c.Register(loadTableSignature()); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := c.Call("Collection.nope", nil); !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
	if _, err := c.Call("Collection.loadTable", engine.Args{}); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}

	expr, err := c.Call("Collection.loadTable", engine.Args{"tableId": "roads"})
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if expr.Function() != "Collection.loadTable" {
		t.Fatalf("unexpected operation %q", expr.Function())
	}
}

func TestLoadBuildsCatalogFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/algorithms" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"data":{
			"Collection.loadTable":{"description":"Loads a table.","returns":"FeatureCollection",
				"args":[{"name":"tableId","type":"String"}]},
			"Collection.draw":{"description":"Renders vectors.","returns":"Image",
				"args":[{"name":"collection","type":"FeatureCollection"},
				        {"name":"color","type":"String","optional":true,"default":"000000"}]}
		}}`))
	}))
	defer server.Close()

	client, err := transport.NewClient(transport.Config{
		APIBaseURL:  server.URL,
		TileBaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	c, err := Load(context.Background(), client)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("unexpected catalog size %d", c.Len())
	}
	sig, ok := c.Resolve("Collection.draw")
	if !ok {
		t.Fatalf("Collection.draw missing")
	}
	if len(sig.Args) != 2 || !sig.Args[1].Optional {
		t.Fatalf("unexpected draw signature %+v", sig)
	}
	if sig.Args[1].Default != "000000" {
		t.Fatalf("unexpected default %v", sig.Args[1].Default)
	}
}

func TestLoadRequiresClient(t *testing.T) {
	if _, err := Load(context.Background(), nil); !errors.Is(err, ErrTransportRequired) {
		t.Fatalf("expected ErrTransportRequired, got %v", err)
	}
}
