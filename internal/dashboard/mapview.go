package dashboard

import (
	"errors"

	"github.com/jengzang/attraction-heatmap/internal/models"
	"github.com/jengzang/attraction-heatmap/internal/spatial"
	"github.com/jengzang/attraction-heatmap/internal/stats"
)

// ErrEmptySubset is returned when a map is requested for zero attractions
var ErrEmptySubset = errors.New("dashboard: no attractions to render")

// Map view settings
const (
	InitialZoom    = 10
	MinZoom        = 10
	MaxZoom        = 15
	Pitch          = 20
	HeatmapOpacity = 0.6
)

// TooltipHTML is the hover template; placeholders name HeatmapPoint JSON fields
const TooltipHTML = "<b>Nombre: </b> {NOMBRE} <br /> " +
	"<b>Dirección: </b> {DIRECCION} <br /> " +
	"<b>Comuna: </b> {COMUNA} <br /> " +
	"<b>Región: </b> {REGION} <br /> " +
	"<b>Tipo: </b> {TIPO} <br /> " +
	"<b>Georeferencia (Lat, Lng): </b>[{PUNTO_X}, {PUNTO_Y}] <br /> "

// Center returns the median latitude and longitude of records
func Center(records []models.Attraction) (lat, lng float64, err error) {
	if len(records) == 0 {
		return 0, 0, ErrEmptySubset
	}

	lats, lngs := coordinates(records)
	return stats.Median(lats), stats.Median(lngs), nil
}

// BuildMapView assembles the heatmap configuration for a non-empty subset
func BuildMapView(records []models.Attraction) (*models.MapView, error) {
	lat, lng, err := Center(records)
	if err != nil {
		return nil, err
	}

	points := make([]models.HeatmapPoint, len(records))
	for i, r := range records {
		points[i] = models.HeatmapPoint{
			Position: [2]float64{r.Lng, r.Lat},
			Name:     r.Name,
			Address:  r.Address,
			Commune:  r.Commune,
			Region:   r.Region,
			Type:     r.Type,
			Lat:      r.Lat,
			Lng:      r.Lng,
		}
	}

	lats, lngs := coordinates(records)
	rect := spatial.BoundingRect(lats, lngs)
	minLat, maxLat, minLng, maxLng := spatial.RectDegrees(rect)

	return &models.MapView{
		MapStyle: nil,
		InitialViewState: models.ViewState{
			Latitude:  lat,
			Longitude: lng,
			Zoom:      InitialZoom,
			MinZoom:   MinZoom,
			MaxZoom:   MaxZoom,
			Pitch:     Pitch,
		},
		Layers: []models.HeatmapLayer{{
			Type:          "HeatmapLayer",
			Pickable:      true,
			AutoHighlight: true,
			Opacity:       HeatmapOpacity,
			Data:          points,
		}},
		Tooltip: models.Tooltip{
			HTML: TooltipHTML,
			Style: map[string]string{
				"backgroundColor": "steelblue",
				"color":           "white",
			},
		},
		Bounds: models.Bounds{
			MinLat: minLat,
			MaxLat: maxLat,
			MinLng: minLng,
			MaxLng: maxLng,

			CrossesAntimeridian: spatial.CrossesAntimeridian(rect),
		},
		Count: len(records),
	}, nil
}

func coordinates(records []models.Attraction) (lats, lngs []float64) {
	lats = make([]float64, len(records))
	lngs = make([]float64, len(records))
	for i, r := range records {
		lats[i] = r.Lat
		lngs[i] = r.Lng
	}
	return lats, lngs
}
