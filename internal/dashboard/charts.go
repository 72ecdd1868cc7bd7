package dashboard

import "github.com/jengzang/attraction-heatmap/internal/models"

const (
	chartTitle  = "Cantidad de atractivos turísticos por tipo"
	chartXAxis  = "Tipo"
	chartYAxis  = "Atractivos turísticos"
	seriesName  = "Total de atractivos"
	seriesColor = "lightblue"
)

// BuildCharts renders the frequency table as bar, pie and line configurations
func BuildCharts(table models.FrequencyTable, filtered bool) models.ChartsResponse {
	return models.ChartsResponse{
		Table:    table,
		Filtered: filtered,
		Bar:      axisChart("bar", table),
		Pie:      pieChart(table),
		Line:     axisChart("line", table),
	}
}

func axisChart(chartType string, table models.FrequencyTable) models.ChartConfig {
	points := make([]models.ChartPoint, 0, len(table.Rows))
	for _, row := range table.Rows {
		points = append(points, models.ChartPoint{
			Label: row.Type,
			Value: float64(row.Count),
		})
	}

	return models.ChartConfig{
		ChartType:  chartType,
		Title:      chartTitle,
		XAxis:      chartXAxis,
		YAxis:      chartYAxis,
		ShowLegend: true,
		ShowGrid:   true,
		Series: []models.ChartSeries{{
			Name:  seriesName,
			Data:  points,
			Color: seriesColor,
		}},
	}
}

// pieChart has no legend; each slice carries its formatted percentage
func pieChart(table models.FrequencyTable) models.ChartConfig {
	points := make([]models.ChartPoint, 0, len(table.Rows))
	for _, row := range table.Rows {
		points = append(points, models.ChartPoint{
			Label: row.Type,
			Value: float64(row.Count),
			Text:  row.Label,
		})
	}

	return models.ChartConfig{
		ChartType:  "pie",
		Title:      chartTitle,
		ShowLegend: false,
		ShowGrid:   false,
		Series: []models.ChartSeries{{
			Name: seriesName,
			Data: points,
		}},
	}
}
