package models

// ViewState is the initial camera of the map
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	MinZoom   float64 `json:"min_zoom"`
	MaxZoom   float64 `json:"max_zoom"`
	Pitch     float64 `json:"pitch"`
}

// HeatmapPoint represents a single attraction in the heat layer
type HeatmapPoint struct {
	Position [2]float64 `json:"position"` // [lng, lat]
	Name     string     `json:"NOMBRE"`
	Address  string     `json:"DIRECCION"`
	Commune  string     `json:"COMUNA"`
	Region   string     `json:"REGION"`
	Type     string     `json:"TIPO"`
	Lat      float64    `json:"PUNTO_X"`
	Lng      float64    `json:"PUNTO_Y"`
}

// HeatmapLayer is the heat-intensity layer configuration
type HeatmapLayer struct {
	Type          string         `json:"type"` // "HeatmapLayer"
	Pickable      bool           `json:"pickable"`
	AutoHighlight bool           `json:"auto_highlight"`
	Opacity       float64        `json:"opacity"`
	Data          []HeatmapPoint `json:"data"`
}

// Tooltip is the hover template shown for each point
type Tooltip struct {
	HTML  string            `json:"html"`
	Style map[string]string `json:"style"`
}

// Bounds is the bounding box of the rendered points. CrossesAntimeridian is
// set when the box wraps past ±180°, in which case MinLng > MaxLng.
type Bounds struct {
	MinLat              float64 `json:"min_lat"`
	MaxLat              float64 `json:"max_lat"`
	MinLng              float64 `json:"min_lng"`
	MaxLng              float64 `json:"max_lng"`
	CrossesAntimeridian bool    `json:"crosses_antimeridian"`
}

// MapView represents the full map configuration handed to the map widget
type MapView struct {
	MapStyle         *string        `json:"map_style"` // null: default basemap
	InitialViewState ViewState      `json:"initial_view_state"`
	Layers           []HeatmapLayer `json:"layers"`
	Tooltip          Tooltip        `json:"tooltip"`
	Bounds           Bounds         `json:"bounds"`
	Count            int            `json:"count"`
}

// MapResponse is either a map view or a no-results notice
type MapResponse struct {
	NoResults bool     `json:"no_results"`
	Notice    string   `json:"notice,omitempty"`
	Map       *MapView `json:"map,omitempty"`
}

// DashboardView is the complete dashboard for one set of selections
type DashboardView struct {
	Options   FilterOptions  `json:"options"`
	Selection Selection      `json:"selection"`
	Charts    ChartsResponse `json:"charts"`
	MapResponse
}

// Selection holds the effective selections after the empty-means-all fallback
type Selection struct {
	Regions []string `json:"regions"`
	Names   []string `json:"names"`
}
