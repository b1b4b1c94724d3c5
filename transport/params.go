package transport

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// MapParams are the visualization options for MapID. Image carries the
// serialized request graph to render; the remaining fields mirror the
// server's band-mapping controls and are omitted when unset.
type MapParams struct {
	Image   string
	Version int
	Bands   string
	Min     string
	Max     string
	Gain    string
	Bias    string
	Gamma   string
	Palette string
	Format  string
}

func (p MapParams) values() url.Values {
	values := url.Values{}
	setNonEmpty(values, "image", p.Image)
	if p.Version > 0 {
		values.Set("version", strconv.Itoa(p.Version))
	}
	setNonEmpty(values, "bands", p.Bands)
	setNonEmpty(values, "min", p.Min)
	setNonEmpty(values, "max", p.Max)
	setNonEmpty(values, "gain", p.Gain)
	setNonEmpty(values, "bias", p.Bias)
	setNonEmpty(values, "gamma", p.Gamma)
	setNonEmpty(values, "palette", p.Palette)
	setNonEmpty(values, "format", p.Format)
	return values
}

// ThumbParams extend MapParams with output sizing and a render region.
// Size holds up to two dimensions; a pair is sent as "WxH".
type ThumbParams struct {
	MapParams
	Size   []int
	Region string
}

func (p ThumbParams) values() url.Values {
	values := p.MapParams.values()
	if len(p.Size) > 0 {
		parts := make([]string, len(p.Size))
		for i, dim := range p.Size {
			parts[i] = strconv.Itoa(dim)
		}
		values.Set("size", strings.Join(parts, "x"))
	}
	setNonEmpty(values, "region", p.Region)
	return values
}

// BandSpec describes one band of a download request.
type BandSpec struct {
	ID           string    `json:"id"`
	CRS          string    `json:"crs,omitempty"`
	CRSTransform []float64 `json:"crs_transform,omitempty"`
	Dimensions   []int     `json:"dimensions,omitempty"`
	Scale        float64   `json:"scale,omitempty"`
}

// DownloadParams describe an image download: per-band settings plus
// defaults applied to bands that do not specify their own.
type DownloadParams struct {
	Name         string
	Image        string
	Bands        []BandSpec
	CRS          string
	CRSTransform []float64
	Dimensions   []int
	Scale        float64
	Region       string
}

func (p DownloadParams) values() (url.Values, error) {
	values := url.Values{}
	setNonEmpty(values, "name", p.Name)
	setNonEmpty(values, "image", p.Image)
	if len(p.Bands) > 0 {
		encoded, err := json.Marshal(p.Bands)
		if err != nil {
			return nil, err
		}
		values.Set("bands", string(encoded))
	}
	setNonEmpty(values, "crs", p.CRS)
	if len(p.CRSTransform) > 0 {
		encoded, err := json.Marshal(p.CRSTransform)
		if err != nil {
			return nil, err
		}
		values.Set("crs_transform", string(encoded))
	}
	if len(p.Dimensions) > 0 {
		parts := make([]string, len(p.Dimensions))
		for i, dim := range p.Dimensions {
			parts[i] = strconv.Itoa(dim)
		}
		values.Set("dimensions", strings.Join(parts, ","))
	}
	if p.Scale > 0 {
		values.Set("scale", strconv.FormatFloat(p.Scale, 'f', -1, 64))
	}
	setNonEmpty(values, "region", p.Region)
	return values, nil
}

func setNonEmpty(values url.Values, key, value string) {
	if value != "" {
		values.Set(key, value)
	}
}
