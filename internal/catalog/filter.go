// Package catalog holds the pure state model behind the property search
// screen: facet derivation, conjunctive filtering, and single-selection
// toggling. Nothing here touches the database or the renderer, so the whole
// workflow is testable as plain functions.
package catalog

import (
	"sort"
	"strings"

	"github.com/skanda-m/estatedesk/internal/domain"
)

// Filter is the ephemeral search state. Zero values mean "match all" for the
// string fields; the price bounds are inclusive.
type Filter struct {
	ID       string
	City     string
	Listing  domain.Listing
	MinPrice int64
	MaxPrice int64
}

// Default returns the filter that matches the entire catalog: empty facets and
// a price range spanning [0, max observed price].
func Default(props []*domain.Property) Filter {
	return Filter{MaxPrice: MaxPrice(props)}
}

// Apply recomputes the visible subset of props under f. Predicates are
// conjunctive: city substring containment, id substring containment, listing
// equality, and inclusive price range. The result is always a subset of props
// and props is never mutated.
func Apply(f Filter, props []*domain.Property) []*domain.Property {
	filtered := make([]*domain.Property, 0, len(props))
	for _, p := range props {
		cityMatch := f.City == "" || strings.Contains(p.City, f.City)
		idMatch := f.ID == "" || strings.Contains(p.ID, f.ID)
		listingMatch := f.Listing == "" || p.Listing == f.Listing
		priceMatch := p.Price >= f.MinPrice && p.Price <= f.MaxPrice

		if cityMatch && idMatch && listingMatch && priceMatch {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Cities derives the city facet set. Each city field is a comma-separated
// locality string ("Andheri, Mumbai, MH"); the facet value is the segment
// after the last comma, trimmed. Values are deduplicated and sorted so the
// facet control renders stably.
func Cities(props []*domain.Property) []string {
	seen := make(map[string]struct{})
	var cities []string
	for _, p := range props {
		segments := strings.Split(p.City, ",")
		city := strings.TrimSpace(segments[len(segments)-1])
		if city == "" {
			continue
		}
		if _, ok := seen[city]; ok {
			continue
		}
		seen[city] = struct{}{}
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities
}

// MaxPrice returns the highest price in the catalog, 0 when empty. Used to
// initialize the upper filter bound.
func MaxPrice(props []*domain.Property) int64 {
	var max int64
	for _, p := range props {
		if p.Price > max {
			max = p.Price
		}
	}
	return max
}

// Toggle implements the single-selection state machine. Clicking an
// unselected property selects it; clicking the current selection clears it;
// clicking a different property replaces the selection. Cardinality is always
// 0 or 1.
func Toggle(current, clicked string) string {
	if clicked == current {
		return ""
	}
	return clicked
}
