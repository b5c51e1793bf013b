// Package events file: events/filter.go
package events

import (
	"sort"
	"strings"

	"go-event-portal/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Criteria narrows a combined list. An empty field means no constraint.
type Criteria struct {
	Search   string // case-insensitive substring of the title
	Category string // exact match after trimming
	Location string // case-insensitive exact match after trimming
}

// IsZero reports whether no constraint is set.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Category == "" && c.Location == ""
}

// Filter keeps the events matching every criterion. The input is not modified.
func Filter(list []models.CombinedEvent, c Criteria) []models.CombinedEvent {
	fold := cases.Fold()
	search := fold.String(c.Search)
	category := strings.TrimSpace(c.Category)
	location := fold.String(strings.TrimSpace(c.Location))

	out := make([]models.CombinedEvent, 0, len(list))
	for _, e := range list {
		if search != "" && !strings.Contains(fold.String(e.Title), search) {
			continue
		}
		if c.Category != "" && strings.TrimSpace(e.Category) != category {
			continue
		}
		if c.Location != "" {
			loc := fold.String(strings.TrimSpace(e.Location))
			if loc == "" || loc != location {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}

// Categories lists the distinct non-empty categories, sorted.
func Categories(list []models.CombinedEvent) []string {
	return distinct(list, func(e models.CombinedEvent) string { return e.Category })
}

// Locations lists the distinct non-empty locations, sorted.
func Locations(list []models.CombinedEvent) []string {
	return distinct(list, func(e models.CombinedEvent) string { return e.Location })
}

func distinct(list []models.CombinedEvent, field func(models.CombinedEvent) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range list {
		v := strings.TrimSpace(field(e))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FormatPrice renders whole Rupiah with Indonesian digit grouping, e.g.
// "Rp 150.000". Zero renders as "Free".
func FormatPrice(price int64) string {
	if price == 0 {
		return "Free"
	}
	return message.NewPrinter(language.Indonesian).Sprintf("Rp %d", price)
}
