package dashboard

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"testing"

	"github.com/jengzang/attraction-heatmap/internal/models"
)

func threeRecords() []models.Attraction {
	return []models.Attraction{
		{Name: "X", Region: "A", Type: "Museo", Lat: -33.0, Lng: -70.0},
		{Name: "Y", Region: "A", Type: "Parque", Lat: -34.0, Lng: -71.0},
		{Name: "Z", Region: "B", Type: "Museo", Lat: -20.0, Lng: -69.0},
	}
}

func typed(counts map[string]int) []models.Attraction {
	var out []models.Attraction
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for i := 0; i < counts[k]; i++ {
			out = append(out, models.Attraction{Name: k, Region: "R", Type: k})
		}
	}
	return out
}

func TestDomains(t *testing.T) {
	records := []models.Attraction{
		{Name: "b", Region: "Valparaíso"},
		{Name: "a", Region: "Biobío"},
		{Name: "b", Region: "Valparaíso"},
	}

	opts := Domains(records)
	if want := []string{"Biobío", "Valparaíso"}; !reflect.DeepEqual(opts.Regions, want) {
		t.Errorf("Regions = %v, want %v", opts.Regions, want)
	}
	if want := []string{"a", "b"}; !reflect.DeepEqual(opts.Names, want) {
		t.Errorf("Names = %v, want %v", opts.Names, want)
	}
	if len(opts.DefaultRegions) != 0 {
		t.Errorf("DefaultRegions = %v, want empty", opts.DefaultRegions)
	}
	if !reflect.DeepEqual(opts.DefaultNames, opts.Names) {
		t.Errorf("DefaultNames = %v, want every name", opts.DefaultNames)
	}
}

func TestResolveFallback(t *testing.T) {
	domain := []string{"A", "B"}

	if got := Resolve(nil, domain); !reflect.DeepEqual(got, domain) {
		t.Errorf("Resolve(nil) = %v, want full domain", got)
	}
	if got := Resolve([]string{}, domain); !reflect.DeepEqual(got, domain) {
		t.Errorf("Resolve(empty) = %v, want full domain", got)
	}
	if got := Resolve([]string{"B"}, domain); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Resolve([B]) = %v, want [B]", got)
	}
}

func TestFilterIdentity(t *testing.T) {
	records := threeRecords()
	opts := Domains(records)

	got := Filter(records, opts.Names, opts.Regions)
	if !reflect.DeepEqual(got, records) {
		t.Errorf("Filter with full domains = %+v, want input unchanged", got)
	}
}

func TestFilterRegionScenario(t *testing.T) {
	records := threeRecords()
	opts := Domains(records)

	got := Filter(records, opts.Names, []string{"A"})
	if len(got) != 2 || got[0].Name != "X" || got[1].Name != "Y" {
		t.Errorf("Filter region=A = %+v, want X and Y", got)
	}

	table := Aggregate(records)
	if table.Total != 3 {
		t.Errorf("aggregate total = %d, want 3 regardless of filter", table.Total)
	}
}

func TestFilterSoundAndComplete(t *testing.T) {
	records := threeRecords()
	records = append(records, models.Attraction{Name: "X", Region: "B", Type: "Playa"})

	tests := []struct {
		names, regions []string
	}{
		{[]string{"X"}, []string{"A", "B"}},
		{[]string{"X", "Z"}, []string{"B"}},
		{[]string{"Y"}, []string{"B"}},
		{[]string{"unknown"}, []string{"A"}},
		{[]string{"X"}, []string{"nowhere"}},
	}

	for _, tt := range tests {
		got := Filter(records, tt.names, tt.regions)

		in := func(v string, set []string) bool {
			for _, s := range set {
				if s == v {
					return true
				}
			}
			return false
		}

		want := 0
		for _, r := range records {
			if in(r.Name, tt.names) && in(r.Region, tt.regions) {
				want++
			}
		}
		if len(got) != want {
			t.Errorf("Filter(%v, %v) returned %d records, want %d", tt.names, tt.regions, len(got), want)
		}
		for _, r := range got {
			if !in(r.Name, tt.names) || !in(r.Region, tt.regions) {
				t.Errorf("Filter(%v, %v) returned non-matching %+v", tt.names, tt.regions, r)
			}
		}
	}
}

func TestAggregate(t *testing.T) {
	records := typed(map[string]int{"Museum": 5, "Park": 3, "Beach": 3})

	table := Aggregate(records)
	if table.Total != 11 {
		t.Errorf("Total = %d, want 11", table.Total)
	}

	sum := 0
	for i, row := range table.Rows {
		sum += row.Count
		if i > 0 && row.Count > table.Rows[i-1].Count {
			t.Errorf("rows not sorted descending: %+v", table.Rows)
		}
	}
	if sum != 11 {
		t.Errorf("counts sum to %d, want 11", sum)
	}

	first := table.Rows[0]
	if first.Type != "Museum" || first.Count != 5 {
		t.Errorf("first row = %+v, want Museum 5", first)
	}
	if first.Label != "45.45%" {
		t.Errorf("Museum label = %q, want 45.45%%", first.Label)
	}
	if table.Rows[1].Count != 3 || table.Rows[2].Count != 3 {
		t.Errorf("tied rows = %+v", table.Rows[1:])
	}
}

func TestAggregateSingleTypeAndEmpty(t *testing.T) {
	table := Aggregate(typed(map[string]int{"Museo": 4}))
	if len(table.Rows) != 1 || table.Rows[0].Label != "100.00%" {
		t.Errorf("single type table = %+v", table)
	}

	empty := Aggregate(nil)
	if empty.Total != 0 || len(empty.Rows) != 0 {
		t.Errorf("empty table = %+v", empty)
	}
}

func TestFormatPercent(t *testing.T) {
	tests := map[float64]string{
		23.45: "23.45%",
		50:    "50.00%",
		0:     "0.00%",
	}
	for in, want := range tests {
		if got := FormatPercent(in); got != want {
			t.Errorf("FormatPercent(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCenter(t *testing.T) {
	lat, lng, err := Center(threeRecords())
	if err != nil {
		t.Fatalf("Center: %v", err)
	}
	if lat != -33.0 || lng != -70.0 {
		t.Errorf("Center = (%v, %v), want (-33, -70)", lat, lng)
	}

	if _, _, err := Center(nil); !errors.Is(err, ErrEmptySubset) {
		t.Errorf("Center(nil) error = %v, want ErrEmptySubset", err)
	}
}

func TestBuildMapView(t *testing.T) {
	view, err := BuildMapView(threeRecords())
	if err != nil {
		t.Fatalf("BuildMapView: %v", err)
	}

	vs := view.InitialViewState
	if vs.Zoom != 10 || vs.MinZoom != 10 || vs.MaxZoom != 15 || vs.Pitch != 20 {
		t.Errorf("view state = %+v", vs)
	}
	if view.MapStyle != nil {
		t.Error("map style should be unset")
	}
	if len(view.Layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(view.Layers))
	}

	layer := view.Layers[0]
	if layer.Type != "HeatmapLayer" || layer.Opacity != 0.6 || !layer.Pickable || !layer.AutoHighlight {
		t.Errorf("layer = %+v", layer)
	}
	if got := layer.Data[2].Position; got != [2]float64{-69.0, -20.0} {
		t.Errorf("position = %v, want [lng, lat]", got)
	}
	if view.Tooltip.Style["backgroundColor"] != "steelblue" || view.Tooltip.Style["color"] != "white" {
		t.Errorf("tooltip style = %v", view.Tooltip.Style)
	}

	const eps = 1e-9
	if math.Abs(view.Bounds.MinLat-(-34.0)) > eps || math.Abs(view.Bounds.MaxLat-(-20.0)) > eps {
		t.Errorf("bounds = %+v", view.Bounds)
	}
}

func TestRenderMapNoResults(t *testing.T) {
	resp := RenderMap(nil)
	if !resp.NoResults || resp.Map != nil || resp.Notice == "" {
		t.Errorf("RenderMap(nil) = %+v, want no-results notice", resp)
	}
}

func TestRender(t *testing.T) {
	records := threeRecords()

	view := Render(records, models.DashboardFilter{Regions: []string{"A"}}, Options{})
	if view.NoResults || view.Map == nil || view.Map.Count != 2 {
		t.Fatalf("Render region=A map = %+v", view.MapResponse)
	}
	if view.Charts.Table.Total != 3 || view.Charts.Filtered {
		t.Errorf("charts should cover the full dataset, got total %d", view.Charts.Table.Total)
	}
	if !reflect.DeepEqual(view.Selection.Names, []string{"X", "Y", "Z"}) {
		t.Errorf("names resolved to %v, want every name", view.Selection.Names)
	}

	view = Render(records, models.DashboardFilter{Regions: []string{"A"}}, Options{ChartsFollowFilters: true})
	if view.Charts.Table.Total != 2 || !view.Charts.Filtered {
		t.Errorf("filtered charts total = %d, want 2", view.Charts.Table.Total)
	}

	view = Render(records, models.DashboardFilter{Regions: []string{"B"}, Names: []string{"X"}}, Options{})
	if !view.NoResults || view.Map != nil {
		t.Errorf("disjoint filters should yield no results, got %+v", view.MapResponse)
	}
}

func TestBuildCharts(t *testing.T) {
	charts := BuildCharts(Aggregate(threeRecords()), false)

	if charts.Bar.ChartType != "bar" || charts.Line.ChartType != "line" || charts.Pie.ChartType != "pie" {
		t.Errorf("chart types = %s/%s/%s", charts.Bar.ChartType, charts.Pie.ChartType, charts.Line.ChartType)
	}
	if !charts.Bar.ShowGrid || !charts.Line.ShowGrid || charts.Pie.ShowLegend {
		t.Error("unexpected grid/legend flags")
	}

	pie := charts.Pie.Series[0].Data
	if pie[0].Label != "Museo" || pie[0].Text != "66.67%" {
		t.Errorf("first pie slice = %+v", pie[0])
	}
	if bar := charts.Bar.Series[0]; bar.Color != "lightblue" || bar.Data[0].Value != 2 {
		t.Errorf("bar series = %+v", bar)
	}
}

func TestBuildMapViewAcrossAntimeridian(t *testing.T) {
	fiji := []models.Attraction{
		{Name: "Taveuni", Region: "Northern", Type: "Isla", Lat: -16.9, Lng: 179.9},
		{Name: "Lau", Region: "Eastern", Type: "Isla", Lat: -17.9, Lng: -178.8},
	}

	view, err := BuildMapView(fiji)
	if err != nil {
		t.Fatalf("BuildMapView: %v", err)
	}
	if !view.Bounds.CrossesAntimeridian || view.Bounds.MinLng <= view.Bounds.MaxLng {
		t.Errorf("bounds = %+v, want wrapped longitude interval", view.Bounds)
	}

	view, _ = BuildMapView(threeRecords())
	if view.Bounds.CrossesAntimeridian {
		t.Error("mainland subset flagged as crossing the antimeridian")
	}
}
