package models

// ChartPoint is a single labelled value in a chart series
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text,omitempty"` // Formatted slice label for pie charts
}

// ChartSeries is a named sequence of points
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartConfig describes a chart for the client-side renderer
type ChartConfig struct {
	ChartType  string        `json:"chart_type"` // bar, pie, line
	Title      string        `json:"title"`
	XAxis      string        `json:"x_axis,omitempty"`
	YAxis      string        `json:"y_axis,omitempty"`
	ShowLegend bool          `json:"show_legend"`
	ShowGrid   bool          `json:"show_grid"`
	Series     []ChartSeries `json:"series"`
}

// ChartsResponse bundles the frequency table with its three renderings
type ChartsResponse struct {
	Table    FrequencyTable `json:"table"`
	Filtered bool           `json:"filtered"` // Whether the table reflects the active filters
	Bar      ChartConfig    `json:"bar"`
	Pie      ChartConfig    `json:"pie"`
	Line     ChartConfig    `json:"line"`
}
