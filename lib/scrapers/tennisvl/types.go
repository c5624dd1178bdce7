// Package tennisvl scrapes the Flemish tennis/padel federation portal for
// player ranking and club data. The portal has no API; everything comes
// out of markup that changes shape between pages, so extraction runs as
// ordered chains of patterns that degrade gracefully.
package tennisvl

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("scrapers/tennisvl")

// PlayerRecord is one row extracted from a search-results page.
type PlayerRecord struct {
	// ExternalUserID is the opaque player id assigned by the portal,
	// unique within one result set.
	ExternalUserID string `json:"external_user_id"`
	// Name may be a synthesized fallback (the query name) when the card
	// markup held no usable heading.
	Name    string `json:"name"`
	Ranking string `json:"ranking,omitempty"`
	Club    string `json:"club,omitempty"`
}
