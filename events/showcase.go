// Package events builds the event lists the portal renders: the compiled-in
// showcase catalog, the reconciled showcase+backend list, and the filters
// and facets applied to it.
// File: events/showcase.go
package events

import (
	_ "embed"
	"fmt"
	"sync"

	"go-event-portal/models"
	"gopkg.in/yaml.v3"
)

//go:embed showcase.yaml
var showcaseYAML []byte

var (
	showcaseOnce sync.Once
	showcase     []models.ShowcaseEvent
)

// parseShowcase decodes a showcase catalog and rejects duplicate or empty IDs.
func parseShowcase(data []byte) ([]models.ShowcaseEvent, error) {
	var list []models.ShowcaseEvent
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse showcase catalog: %w", err)
	}
	seen := make(map[string]bool, len(list))
	for _, e := range list {
		if e.ID == "" {
			return nil, fmt.Errorf("showcase event %q has no id", e.Title)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate showcase id %q", e.ID)
		}
		seen[e.ID] = true
	}
	return list, nil
}

// Showcase returns a copy of the compiled-in showcase events in their fixed
// order. The embedded catalog is part of the binary, so a parse failure is a
// build defect and panics.
func Showcase() []models.ShowcaseEvent {
	showcaseOnce.Do(func() {
		list, err := parseShowcase(showcaseYAML)
		if err != nil {
			panic(err)
		}
		showcase = list
	})
	out := make([]models.ShowcaseEvent, len(showcase))
	copy(out, showcase)
	return out
}

// FindShowcase looks a showcase event up by its ID.
func FindShowcase(id string) (models.ShowcaseEvent, bool) {
	for _, e := range Showcase() {
		if e.ID == id {
			return e, true
		}
	}
	return models.ShowcaseEvent{}, false
}
