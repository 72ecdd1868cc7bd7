package models

// TypeCount is one row of the type frequency table
type TypeCount struct {
	Type    string  `json:"type"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"` // 0-100, rounded to 2 decimals
	Label   string  `json:"label"`   // e.g. "45.45%"
}

// FrequencyTable counts attractions per type, ordered by count descending
type FrequencyTable struct {
	Rows  []TypeCount `json:"rows"`
	Total int         `json:"total"`
}
