package models

// Attraction represents a single tourist attraction row
type Attraction struct {
	Name    string  `json:"name"`    // NOMBRE
	Region  string  `json:"region"`  // REGION
	Commune string  `json:"commune"` // COMUNA
	Type    string  `json:"type"`    // TIPO
	Address string  `json:"address"` // DIRECCION
	Lat     float64 `json:"lat"`     // PUNTO_X
	Lng     float64 `json:"lng"`     // PUNTO_Y
}

// Source column names of the attraction dataset
const (
	ColumnName    = "NOMBRE"
	ColumnRegion  = "REGION"
	ColumnCommune = "COMUNA"
	ColumnType    = "TIPO"
	ColumnAddress = "DIRECCION"
	ColumnLat     = "PUNTO_X"
	ColumnLng     = "PUNTO_Y"
)

// RequiredColumns lists every column a dataset must provide
var RequiredColumns = []string{
	ColumnName,
	ColumnRegion,
	ColumnCommune,
	ColumnType,
	ColumnAddress,
	ColumnLat,
	ColumnLng,
}

// DatasetInfo describes the currently cached dataset snapshot
type DatasetInfo struct {
	Version  string `json:"version"`
	Records  int    `json:"records"`
	LoadedAt int64  `json:"loaded_at"` // Unix timestamp
	Source   string `json:"source"`
	Stored   *int   `json:"stored_records,omitempty"` // Rows in the SQL store, SQL sources only
}
