package domain

import "time"

// Resort is one entry of the deployment-time registry. Records are
// immutable once loaded; duplicates are allowed and treated independently.
type Resort struct {
	Name        string  `yaml:"name" json:"name" validate:"required"`
	Region      string  `yaml:"region" json:"region" validate:"required"`
	State       string  `yaml:"state,omitempty" json:"state,omitempty" validate:"omitempty,len=2,alpha"`
	ElevationFt int     `yaml:"elevation_ft" json:"elevation_ft"`
	Lat         float64 `yaml:"lat" json:"-" validate:"gte=-90,lte=90"`
	Lon         float64 `yaml:"lon" json:"-" validate:"gte=-180,lte=180"`
	ReportURL   string  `yaml:"report_url" json:"report_url"`
	WebcamURL   string  `yaml:"webcam_url" json:"webcam_url"`
}

// SnowTotals holds the trailing-window snowfall sums in inches.
// Nil means the provider returned no usable hourly data, not zero snow.
type SnowTotals struct {
	Snow24hIn *float64 `json:"snow_24h_in"`
	Snow72hIn *float64 `json:"snow_72h_in"`
}

// ResortReport is one resort's slice of the response payload. The five
// ops-metric fields are always null: the weather provider models snowfall
// and knows nothing about lifts, trails, or base depth. The consumer
// expects the keys to be present regardless.
type ResortReport struct {
	Name           string   `json:"name"`
	Region         string   `json:"region"`
	State          string   `json:"state,omitempty"`
	ElevationFt    int      `json:"elevation_ft"`
	Snow24hIn      *float64 `json:"snow_24h_in"`
	Snow72hIn      *float64 `json:"snow_72h_in"`
	BaseDepthIn    *int     `json:"base_depth_in"`
	TrailsOpen     *int     `json:"trails_open"`
	TrailsTotal    *int     `json:"trails_total"`
	LiftsOpen      *int     `json:"lifts_open"`
	LiftsTotal     *int     `json:"lifts_total"`
	TerrainOpenPct *float64 `json:"terrain_open_pct"`
	ReportURL      string   `json:"report_url"`
	WebcamURL      string   `json:"webcam_url"`
}

// ReportPayload is the top-level response body, shaped to match the static
// snow.json fallback file.
type ReportPayload struct {
	UpdatedAt time.Time         `json:"updated_at"`
	Source    string            `json:"source"`
	Resorts   []ResortReport    `json:"resorts"`
	Filters   map[string]string `json:"filters"`
}
