package service

import (
	"context"

	"github.com/jengzang/attraction-heatmap/internal/dashboard"
	"github.com/jengzang/attraction-heatmap/internal/dataset"
	"github.com/jengzang/attraction-heatmap/internal/metrics"
	"github.com/jengzang/attraction-heatmap/internal/models"
)

// DashboardService runs the render pipeline over the cached dataset
type DashboardService struct {
	cache   *dataset.Cache
	opts    dashboard.Options
	metrics *metrics.Metrics
}

// NewDashboardService creates a new dashboard service. m may be nil.
func NewDashboardService(cache *dataset.Cache, opts dashboard.Options, m *metrics.Metrics) *DashboardService {
	return &DashboardService{cache: cache, opts: opts, metrics: m}
}

// GetOptions returns the region and name domains
func (s *DashboardService) GetOptions(ctx context.Context) (models.FilterOptions, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return models.FilterOptions{}, err
	}
	return dashboard.Domains(snap.Records), nil
}

// GetCharts returns the type frequency table and its chart configurations
func (s *DashboardService) GetCharts(ctx context.Context, filter models.DashboardFilter) (models.ChartsResponse, error) {
	view, err := s.GetDashboard(ctx, filter)
	if err != nil {
		return models.ChartsResponse{}, err
	}
	return view.Charts, nil
}

// GetMap returns the heatmap for the filtered subset, or the no-results state
func (s *DashboardService) GetMap(ctx context.Context, filter models.DashboardFilter) (models.MapResponse, error) {
	view, err := s.GetDashboard(ctx, filter)
	if err != nil {
		return models.MapResponse{}, err
	}
	return view.MapResponse, nil
}

// GetDashboard renders the complete dashboard
func (s *DashboardService) GetDashboard(ctx context.Context, filter models.DashboardFilter) (models.DashboardView, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return models.DashboardView{}, err
	}

	view := dashboard.Render(snap.Records, filter, s.opts)
	if view.NoResults && s.metrics != nil {
		s.metrics.NoResultsTotal.Inc()
	}
	return view, nil
}

// GetDatasetInfo returns metadata of the cached snapshot
func (s *DashboardService) GetDatasetInfo(ctx context.Context) (models.DatasetInfo, error) {
	snap, err := s.cache.Get(ctx)
	if err != nil {
		return models.DatasetInfo{}, err
	}
	return s.withStoredCount(ctx, snap.Info())
}

// RefreshDataset reloads the dataset from its source
func (s *DashboardService) RefreshDataset(ctx context.Context) (models.DatasetInfo, error) {
	snap, err := s.cache.Refresh(ctx)
	if err != nil {
		return models.DatasetInfo{}, err
	}
	return s.withStoredCount(ctx, snap.Info())
}

func (s *DashboardService) withStoredCount(ctx context.Context, info models.DatasetInfo) (models.DatasetInfo, error) {
	counter, ok := s.cache.Source().(dataset.Counter)
	if !ok {
		return info, nil
	}

	n, err := counter.Count(ctx)
	if err != nil {
		return info, err
	}
	info.Stored = &n
	return info, nil
}
