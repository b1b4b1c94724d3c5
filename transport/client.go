package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/gridworks-io/geoengine/internal/observability"
)

const (
	// DefaultAPIBaseURL is the engine REST API endpoint.
	DefaultAPIBaseURL = "https://api.gridworks.io/engine"
	// DefaultTileBaseURL is the endpoint serving tiles, thumbnails, and downloads.
	DefaultTileBaseURL = "https://tiles.gridworks.io"
	// DefaultDeadline bounds each API call unless the config overrides it.
	DefaultDeadline = 30 * time.Second
)

// Config carries everything a Client needs. Build it once at startup and
// pass the resulting Client by reference to consumers.
type Config struct {
	APIBaseURL  string
	TileBaseURL string
	Token       string
	Deadline    time.Duration
	HTTPClient  *http.Client
}

// WithDefaults fills unset fields with the package defaults.
func (c Config) WithDefaults() Config {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if strings.TrimSpace(c.TileBaseURL) == "" {
		c.TileBaseURL = DefaultTileBaseURL
	}
	if c.Deadline <= 0 {
		c.Deadline = DefaultDeadline
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	return c
}

// Client talks to the engine API. Safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient validates the config and builds a client.
func NewClient(cfg Config) (*Client, error) {
	cfg = cfg.WithDefaults()
	for _, base := range []string{cfg.APIBaseURL, cfg.TileBaseURL} {
		if !isHTTPURL(base) {
			return nil, ErrBaseURLInvalid
		}
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.TileBaseURL = strings.TrimRight(cfg.TileBaseURL, "/")
	observability.RegisterMetrics()
	return &Client{cfg: cfg, http: cfg.HTTPClient}, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// Info loads metadata for one asset.
func (c *Client) Info(ctx context.Context, assetID string) (json.RawMessage, error) {
	if strings.TrimSpace(assetID) == "" {
		return nil, ErrAssetIDRequired
	}
	return c.send(ctx, "/info", http.MethodPost, url.Values{"id": {assetID}}, false)
}

// List returns the contents of a collection asset.
func (c *Client) List(ctx context.Context, assetID string) (json.RawMessage, error) {
	if strings.TrimSpace(assetID) == "" {
		return nil, ErrAssetIDRequired
	}
	return c.send(ctx, "/list", http.MethodPost, url.Values{"asset_id": {assetID}}, false)
}

// MapHandle identifies a renderable map: combine with TileURL to fetch tiles.
type MapHandle struct {
	MapID string `json:"mapid"`
	Token string `json:"token"`
}

// MapID requests a map handle for a serialized image or draw graph.
func (c *Client) MapID(ctx context.Context, params MapParams) (MapHandle, error) {
	values := params.values()
	values.Set("json_format", jsonFormat)
	data, err := c.send(ctx, "/mapid", http.MethodPost, values, false)
	if err != nil {
		return MapHandle{}, err
	}
	var handle MapHandle
	if err := json.Unmarshal(data, &handle); err != nil {
		return MapHandle{}, err
	}
	return handle, nil
}

// Value evaluates a serialized request graph and returns the result.
func (c *Client) Value(ctx context.Context, graph []byte) (json.RawMessage, error) {
	values := url.Values{
		"json":        {string(graph)},
		"json_format": {jsonFormat},
	}
	return c.send(ctx, "/value", http.MethodPost, values, false)
}

// ThumbHandle identifies a rendered thumbnail.
type ThumbHandle struct {
	ThumbID string `json:"thumbid"`
	Token   string `json:"token"`
}

// ThumbID requests a thumbnail handle; fetch the image through ThumbURL.
func (c *Client) ThumbID(ctx context.Context, params ThumbParams) (ThumbHandle, error) {
	values := params.values()
	values.Set("getid", "1")
	values.Set("json_format", jsonFormat)
	data, err := c.send(ctx, "/thumb", http.MethodPost, values, false)
	if err != nil {
		return ThumbHandle{}, err
	}
	var handle ThumbHandle
	if err := json.Unmarshal(data, &handle); err != nil {
		return ThumbHandle{}, err
	}
	return handle, nil
}

// Thumbnail renders a thumbnail and returns the raw image bytes.
func (c *Client) Thumbnail(ctx context.Context, params ThumbParams) ([]byte, error) {
	return c.send(ctx, "/thumb", http.MethodGet, params.values(), true)
}

// DownloadHandle identifies a prepared download.
type DownloadHandle struct {
	DocID string `json:"docid"`
	Token string `json:"token"`
}

// DownloadID prepares a download; fetch the archive through DownloadURL.
func (c *Client) DownloadID(ctx context.Context, params DownloadParams) (DownloadHandle, error) {
	values, err := params.values()
	if err != nil {
		return DownloadHandle{}, err
	}
	values.Set("json_format", jsonFormat)
	data, err := c.send(ctx, "/download", http.MethodPost, values, false)
	if err != nil {
		return DownloadHandle{}, err
	}
	var handle DownloadHandle
	if err := json.Unmarshal(data, &handle); err != nil {
		return DownloadHandle{}, err
	}
	return handle, nil
}

// AlgorithmArg describes one parameter of a server-defined operation.
type AlgorithmArg struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	Default     any    `json:"default"`
}

// AlgorithmInfo describes one server-defined operation.
type AlgorithmInfo struct {
	Description string         `json:"description"`
	Returns     string         `json:"returns"`
	Args        []AlgorithmArg `json:"args"`
}

// Algorithms fetches the full catalog of server-defined operations.
func (c *Client) Algorithms(ctx context.Context) (map[string]AlgorithmInfo, error) {
	data, err := c.send(ctx, "/algorithms", http.MethodGet, url.Values{}, false)
	if err != nil {
		return nil, err
	}
	out := make(map[string]AlgorithmInfo)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAsset saves a serialized value as an asset, optionally at the given
// path, and returns the server's description of it.
func (c *Client) CreateAsset(ctx context.Context, value []byte, path string) (json.RawMessage, error) {
	values := url.Values{
		"value":       {string(value)},
		"json_format": {jsonFormat},
	}
	if path != "" {
		values.Set("id", path)
	}
	return c.send(ctx, "/create", http.MethodPost, values, false)
}

const jsonFormat = "v2"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *APIError       `json:"error"`
}

// send performs one API call. Raw responses skip envelope decoding.
func (c *Client) send(ctx context.Context, path, method string, params url.Values, raw bool) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Deadline)
	defer cancel()

	endpoint := c.cfg.APIBaseURL + path
	var req *http.Request
	var err error
	if method == http.MethodGet {
		if encoded := params.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(params.Encode()))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	}
	if err != nil {
		return nil, err
	}
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.ObserveRequest(path, method, "error", time.Since(start))
		log.Warn().Str("path", path).Err(err).Msg("engine request failed")
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveRequest(path, method, strconv.Itoa(resp.StatusCode), time.Since(start))
	log.Debug().
		Str("path", path).
		Str("method", method).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("engine request")

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if raw {
		return body, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, err
	}
	if env.Error != nil {
		return nil, env.Error
	}
	if len(env.Data) == 0 {
		return nil, ErrMissingData
	}
	return env.Data, nil
}
