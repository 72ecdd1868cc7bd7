package models

// DashboardFilter represents the sidebar selections sent by the dashboard
type DashboardFilter struct {
	Regions []string `form:"region" binding:"dive,max=255"` // Repeated ?region=
	Names   []string `form:"name" binding:"dive,max=255"`   // Repeated ?name=
}

// FilterOptions represents the selectable domains and their default state
type FilterOptions struct {
	Regions        []string `json:"regions"`
	Names          []string `json:"names"`
	DefaultRegions []string `json:"default_regions"` // Empty: every region
	DefaultNames   []string `json:"default_names"`   // Pre-populated with every name
}
