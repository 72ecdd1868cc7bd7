package dashboard

import (
	"errors"

	"github.com/jengzang/attraction-heatmap/internal/models"
)

// NoResultsNotice is shown instead of the map when the filters match nothing
const NoResultsNotice = "No hay registros para los filtros usados!!!"

// Options controls product decisions of the render pipeline
type Options struct {
	// ChartsFollowFilters aggregates the filtered subset instead of the full dataset
	ChartsFollowFilters bool
}

// Render computes the whole dashboard for one set of sidebar selections.
// It is pure: the same records and filter always produce the same view.
func Render(records []models.Attraction, filter models.DashboardFilter, opts Options) models.DashboardView {
	options := Domains(records)
	selection := ResolveSelection(filter, options)
	subset := Filter(records, selection.Names, selection.Regions)

	charted := records
	if opts.ChartsFollowFilters {
		charted = subset
	}

	return models.DashboardView{
		Options:     options,
		Selection:   selection,
		Charts:      BuildCharts(Aggregate(charted), opts.ChartsFollowFilters),
		MapResponse: RenderMap(subset),
	}
}

// RenderMap returns the map for subset, or the no-results state when it is empty
func RenderMap(subset []models.Attraction) models.MapResponse {
	view, err := BuildMapView(subset)
	if errors.Is(err, ErrEmptySubset) {
		return models.MapResponse{
			NoResults: true,
			Notice:    NoResultsNotice,
		}
	}
	return models.MapResponse{Map: view}
}
