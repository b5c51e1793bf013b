// Package events file: events/reconcile.go
package events

import (
	"strconv"
	"strings"

	"go-event-portal/models"
)

// BackendIDPrefix marks display IDs of backend events. Showcase IDs never
// carry it, so the two ID spaces cannot collide in a combined list.
const BackendIDPrefix = "backend-"

// Reconcile merges showcase and remote events into one display list:
// showcase entries first in their fixed order, then remote entries in the
// order the backend returned them. Duplicates are kept.
func Reconcile(showcase []models.ShowcaseEvent, remote []models.RemoteEvent) []models.CombinedEvent {
	out := make([]models.CombinedEvent, 0, len(showcase)+len(remote))
	for _, e := range showcase {
		out = append(out, FromShowcase(e))
	}
	for _, e := range remote {
		out = append(out, FromRemote(e))
	}
	return out
}

// FromShowcase maps one showcase event to the combined view model.
func FromShowcase(e models.ShowcaseEvent) models.CombinedEvent {
	return models.CombinedEvent{
		DisplayID:   e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Image:       e.Image,
		Category:    e.Category,
		Location:    strings.TrimSpace(e.Location),
		Description: e.Description,
		Price:       e.Price,
		IsShowcase:  true,
	}
}

// FromRemote maps one backend event to the combined view model. Backend
// events carry no price.
func FromRemote(e models.RemoteEvent) models.CombinedEvent {
	return models.CombinedEvent{
		DisplayID:   BackendDisplayID(e.ID),
		Title:       e.Title,
		Date:        e.Date,
		Image:       e.CoverImg,
		Category:    strings.TrimSpace(e.Category),
		Location:    strings.TrimSpace(e.Location),
		Description: e.Description,
		Price:       0,
		IsShowcase:  false,
		BackendID:   e.ID,
	}
}

// BackendDisplayID builds the display ID of a backend event.
func BackendDisplayID(id int64) string {
	return BackendIDPrefix + strconv.FormatInt(id, 10)
}

// ParseBackendID accepts "backend-42" or a bare "42" and returns 42.
func ParseBackendID(displayID string) (int64, bool) {
	raw := strings.TrimPrefix(displayID, BackendIDPrefix)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Find returns the combined event with the given display ID.
func Find(list []models.CombinedEvent, displayID string) (models.CombinedEvent, bool) {
	for _, e := range list {
		if e.DisplayID == displayID {
			return e, true
		}
	}
	return models.CombinedEvent{}, false
}
