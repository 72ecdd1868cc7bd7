package dashboard

import (
	"fmt"
	"sort"

	"github.com/jengzang/attraction-heatmap/internal/models"
	"github.com/jengzang/attraction-heatmap/internal/stats"
)

// Aggregate counts attractions per type, ordered by count descending.
// Ties are broken by type name so the order is deterministic.
func Aggregate(records []models.Attraction) models.FrequencyTable {
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.Type]++
	}

	rows := make([]models.TypeCount, 0, len(counts))
	for t, c := range counts {
		p := stats.RoundTo(stats.Percent(c, len(records)), 2)
		rows = append(rows, models.TypeCount{
			Type:    t,
			Count:   c,
			Percent: p,
			Label:   FormatPercent(p),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Type < rows[j].Type
	})

	return models.FrequencyTable{
		Rows:  rows,
		Total: len(records),
	}
}

// FormatPercent renders a percentage with two decimals, e.g. "45.45%"
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
