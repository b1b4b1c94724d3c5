package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/gridworks-io/geoengine/catalog"
	"github.com/gridworks-io/geoengine/collection"
	"github.com/gridworks-io/geoengine/config"
	"github.com/gridworks-io/geoengine/engine"
	"github.com/gridworks-io/geoengine/internal/logging"
	"github.com/gridworks-io/geoengine/transport"
)

const defaultConfigPath = "geoengine.toml"

func main() {
	logging.ConfigureRuntime()
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "geoengine: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		usage()
		return errors.New("command required")
	}
	switch args[0] {
	case "info":
		return runInfo(args[1:])
	case "list":
		return runList(args[1:])
	case "algorithms":
		return runAlgorithms(args[1:])
	case "draw":
		return runDraw(args[1:])
	case "mapid":
		return runMapID(args[1:])
	case "tile-url":
		return runTileURL(args[1:])
	case "thumb":
		return runThumb(args[1:])
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: geoengine <command> [flags]

commands:
  info        print metadata for an asset
  list        list the contents of a collection asset
  algorithms  print the server operation catalog
  draw        print the render graph for a table collection
  mapid       request a map handle for a table collection
  tile-url    build a tile URL from a map handle
  thumb       request a thumbnail of a table collection

common flags:
  -config path   config file (default geoengine.toml)`)
}

func newClient(configPath string) (*transport.Client, error) {
	cfg := config.Config{}
	if _, err := os.Stat(configPath); err == nil {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else if configPath != defaultConfigPath {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		zerolog.SetGlobalLevel(lvl)
	}
	tc, err := cfg.Transport()
	if err != nil {
		return nil, err
	}
	return transport.NewClient(tc)
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "config file")
	assetID := fs.String("id", "", "asset identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := newClient(*configPath)
	if err != nil {
		return err
	}
	data, err := client.Info(context.Background(), *assetID)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "config file")
	assetID := fs.String("id", "", "collection asset identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := newClient(*configPath)
	if err != nil {
		return err
	}
	data, err := client.List(context.Background(), *assetID)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func runAlgorithms(args []string) error {
	fs := flag.NewFlagSet("algorithms", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	client, err := newClient(*configPath)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(context.Background(), client)
	if err != nil {
		return err
	}
	for _, name := range cat.Names() {
		sig, _ := cat.Resolve(name)
		fmt.Printf("%s -> %s\n", name, sig.Returns)
		for _, arg := range sig.Args {
			optional := ""
			if arg.Optional {
				optional = " (optional)"
			}
			fmt.Printf("  %s: %s%s\n", arg.Name, arg.Type, optional)
		}
	}
	return nil
}

func tableCollection(fs *flag.FlagSet, args []string) (*collection.Collection, *string, *collection.DrawOptions, error) {
	configPath := fs.String("config", defaultConfigPath, "config file")
	tableID := fs.String("table", "", "table asset identifier")
	geometryColumn := fs.String("geometry-column", "", "field holding the geometry")
	color := fs.String("color", "", "hex render color, black when unset")
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}
	if *tableID == "" {
		return nil, nil, nil, errors.New("-table required")
	}
	var opts []collection.TableOption
	if *geometryColumn != "" {
		opts = append(opts, collection.WithGeometryColumn(*geometryColumn))
	}
	return collection.FromTable(*tableID, opts...), configPath, &collection.DrawOptions{Color: *color}, nil
}

func runDraw(args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	col, _, drawOpts, err := tableCollection(fs, args)
	if err != nil {
		return err
	}
	graph, err := engine.Marshal(col.Draw(*drawOpts))
	if err != nil {
		return err
	}
	fmt.Println(string(graph))
	return nil
}

func runMapID(args []string) error {
	fs := flag.NewFlagSet("mapid", flag.ContinueOnError)
	col, configPath, drawOpts, err := tableCollection(fs, args)
	if err != nil {
		return err
	}
	client, err := newClient(*configPath)
	if err != nil {
		return err
	}
	handle, err := col.MapID(context.Background(), client, *drawOpts)
	if err != nil {
		return err
	}
	fmt.Printf("mapid: %s\ntoken: %s\nsample tile: %s\n",
		handle.MapID, handle.Token, client.TileURL(handle, 0, 0, 0))
	return nil
}

func runTileURL(args []string) error {
	fs := flag.NewFlagSet("tile-url", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "config file")
	mapID := fs.String("mapid", "", "map identifier")
	token := fs.String("token", "", "map token")
	x := fs.Int("x", 0, "tile x coordinate")
	y := fs.Int("y", 0, "tile y coordinate")
	z := fs.Int("z", 0, "tile zoom level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mapID == "" {
		return errors.New("-mapid required")
	}
	if *token == "" {
		return errors.New("-token required")
	}
	client, err := newClient(*configPath)
	if err != nil {
		return err
	}
	handle := transport.MapHandle{MapID: *mapID, Token: *token}
	fmt.Println(client.TileURL(handle, *x, *y, *z))
	return nil
}

func runThumb(args []string) error {
	fs := flag.NewFlagSet("thumb", flag.ContinueOnError)
	width := fs.Int("width", 0, "maximum thumbnail width in pixels")
	height := fs.Int("height", 0, "maximum thumbnail height in pixels")
	region := fs.String("region", "", "geospatial region to render")
	col, configPath, drawOpts, err := tableCollection(fs, args)
	if err != nil {
		return err
	}
	client, err := newClient(*configPath)
	if err != nil {
		return err
	}
	graph, err := engine.Marshal(col.Draw(*drawOpts))
	if err != nil {
		return err
	}
	var size []int
	if *width > 0 {
		size = append(size, *width)
	}
	if *height > 0 {
		size = append(size, *height)
	}
	handle, err := client.ThumbID(context.Background(), transport.ThumbParams{
		MapParams: transport.MapParams{Image: string(graph), Format: "png"},
		Size:      size,
		Region:    *region,
	})
	if err != nil {
		return err
	}
	fmt.Printf("thumbid: %s\ntoken: %s\nurl: %s\n",
		handle.ThumbID, handle.Token, client.ThumbURL(handle))
	return nil
}
