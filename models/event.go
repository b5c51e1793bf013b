// Package models file: models/event.go
package models

// ------------------------ showcase events -----------------------

// ShowcaseEvent is a fixed event compiled into the portal. It is shown to
// everyone regardless of login state.
type ShowcaseEvent struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Date        string `yaml:"date" json:"date"` // not normalized
	Image       string `yaml:"image" json:"image"`
	Category    string `yaml:"category" json:"category"`
	Location    string `yaml:"location" json:"location"`
	Description string `yaml:"description" json:"description"`
	Price       int64  `yaml:"price" json:"price"` // whole Rupiah
}

// ------------------------ remote events -----------------------

// RemoteEvent is an event owned and served by the external backend.
type RemoteEvent struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Location    string `json:"location"`
	CoverImg    string `json:"cover_img"`
	Date        string `json:"date"`
	CreatedAt   string `json:"createdAt"`
	Category    string `json:"category,omitempty"`
}

// ------------------------ combined view model -----------------------

// CombinedEvent unifies showcase and remote events for listing, filtering
// and detail lookups. It is rebuilt on every request and never persisted.
type CombinedEvent struct {
	DisplayID   string
	Title       string
	Date        string
	Image       string
	Category    string
	Location    string
	Description string
	Price       int64
	IsShowcase  bool
	BackendID   int64 // zero for showcase events
}
