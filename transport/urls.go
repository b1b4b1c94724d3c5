package transport

import "fmt"

// maxTileZoom bounds the tile pyramid depth the URL builder accepts.
const maxTileZoom = 30

// TileURL builds the URL of one map tile. The x coordinate wraps around
// the antimeridian, so any integer x is valid at every zoom level. Zoom
// levels are clamped to [0, maxTileZoom].
func (c *Client) TileURL(handle MapHandle, x, y, z int) string {
	if z < 0 {
		z = 0
	}
	if z > maxTileZoom {
		z = maxTileZoom
	}
	width := 1 << uint(z)
	x %= width
	if x < 0 {
		x += width
	}
	return fmt.Sprintf("%s/map/%s/%d/%d/%d?token=%s",
		c.cfg.TileBaseURL, handle.MapID, z, x, y, handle.Token)
}

// ThumbURL builds the URL a thumbnail handle can be fetched from.
func (c *Client) ThumbURL(handle ThumbHandle) string {
	return fmt.Sprintf("%s/api/thumb?thumbid=%s&token=%s",
		c.cfg.TileBaseURL, handle.ThumbID, handle.Token)
}

// DownloadURL builds the URL a download handle can be fetched from.
func (c *Client) DownloadURL(handle DownloadHandle) string {
	return fmt.Sprintf("%s/api/download?docid=%s&token=%s",
		c.cfg.TileBaseURL, handle.DocID, handle.Token)
}
