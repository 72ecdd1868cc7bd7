package dashboard

import (
	"sort"

	"github.com/jengzang/attraction-heatmap/internal/models"
)

// Domains returns the sorted, deduplicated region and name domains together
// with the default widget state: no region preselected, every name preselected.
func Domains(records []models.Attraction) models.FilterOptions {
	regions := distinct(records, func(a models.Attraction) string { return a.Region })
	names := distinct(records, func(a models.Attraction) string { return a.Name })

	defaultNames := make([]string, len(names))
	copy(defaultNames, names)

	return models.FilterOptions{
		Regions:        regions,
		Names:          names,
		DefaultRegions: []string{},
		DefaultNames:   defaultNames,
	}
}

// Resolve applies the empty-selection-means-all rule
func Resolve(selected, domain []string) []string {
	if len(selected) == 0 {
		out := make([]string, len(domain))
		copy(out, domain)
		return out
	}
	return selected
}

// ResolveSelection resolves both sidebar selections against the option domains
func ResolveSelection(filter models.DashboardFilter, options models.FilterOptions) models.Selection {
	return models.Selection{
		Regions: Resolve(filter.Regions, options.Regions),
		Names:   Resolve(filter.Names, options.Names),
	}
}

func distinct(records []models.Attraction, key func(models.Attraction) string) []string {
	seen := make(map[string]struct{}, len(records))
	values := make([]string, 0)
	for _, r := range records {
		k := key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		values = append(values, k)
	}
	sort.Strings(values)
	return values
}
