package dashboard

import "github.com/jengzang/attraction-heatmap/internal/models"

// Predicate decides whether an attraction is part of the filtered subset
type Predicate func(models.Attraction) bool

// SelectionPredicate matches attractions whose name is in names AND whose
// region is in regions. Values absent from the dataset simply never match.
func SelectionPredicate(names, regions []string) Predicate {
	nameSet := toSet(names)
	regionSet := toSet(regions)

	return func(a models.Attraction) bool {
		if _, ok := nameSet[a.Name]; !ok {
			return false
		}
		_, ok := regionSet[a.Region]
		return ok
	}
}

// Filter returns the order preserving subsequence of records matching both selections
func Filter(records []models.Attraction, names, regions []string) []models.Attraction {
	return Where(records, SelectionPredicate(names, regions))
}

// Where returns a new slice with the records matching p
func Where(records []models.Attraction, p Predicate) []models.Attraction {
	out := make([]models.Attraction, 0, len(records))
	for _, r := range records {
		if p(r) {
			out = append(out, r)
		}
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
