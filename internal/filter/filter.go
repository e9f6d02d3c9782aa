// Package filter computes the visible subset of the in-memory catalog. View
// is pure: it never mutates its inputs and the same inputs always produce
// the same output, regardless of the order books were fetched in.
package filter

import (
	"strconv"
	"strings"

	"shelfdesk/pkg/domain"
)

// Facet names understood by Criteria.
const (
	FacetCategory     = "category"
	FacetPublisher    = "publisher"
	FacetPriceRange   = "priceRange"
	FacetAvailability = "availability"
)

// Availability facet tokens.
const (
	InStock    = "in-stock"
	OutOfStock = "out-of-stock"
)

// All is the sentinel facet value that disables a facet, alongside "".
const All = "all"

// Criteria is one facet selection per dimension. Zero values disable the
// corresponding facet.
type Criteria struct {
	Category     string
	Publisher    string
	PriceRange   string
	Availability string
}

// FromFacets builds Criteria from a store's facet map.
func FromFacets(facets map[string]string) Criteria {
	return Criteria{
		Category:     facets[FacetCategory],
		Publisher:    facets[FacetPublisher],
		PriceRange:   facets[FacetPriceRange],
		Availability: facets[FacetAvailability],
	}
}

// View returns the books matching the free-text query and every enabled
// facet, preserving collection order.
func View(books []domain.Book, query string, c Criteria) []domain.Book {
	query = strings.ToLower(query)
	low, high, priceEnabled := parsePriceRange(c.PriceRange)

	out := make([]domain.Book, 0, len(books))
	for _, b := range books {
		if query != "" && !strings.Contains(strings.ToLower(b.DisplayName()), query) {
			continue
		}
		if enabled(c.Category) && b.ResolvedCategory() != c.Category {
			continue
		}
		if enabled(c.Publisher) && b.ResolvedPublisher() != c.Publisher {
			continue
		}
		if priceEnabled && (b.Price < low || b.Price > high) {
			continue
		}
		switch c.Availability {
		case InStock:
			if !b.Available() {
				continue
			}
		case OutOfStock:
			if b.Available() {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

func enabled(facet string) bool {
	return facet != "" && facet != All
}

// parsePriceRange understands "low-high" (both bounds inclusive) and "low+"
// (inclusive lower bound, no upper bound). Anything else disables the facet.
func parsePriceRange(token string) (low, high float64, ok bool) {
	token = strings.TrimSpace(token)
	if token == "" || token == All {
		return 0, 0, false
	}
	if rest, found := strings.CutSuffix(token, "+"); found {
		low, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, 0, false
		}
		return low, maxPrice, true
	}
	lowStr, highStr, found := strings.Cut(token, "-")
	if !found {
		return 0, 0, false
	}
	low, errLow := strconv.ParseFloat(lowStr, 64)
	high, errHigh := strconv.ParseFloat(highStr, 64)
	if errLow != nil || errHigh != nil {
		return 0, 0, false
	}
	return low, high, true
}

// maxPrice stands in for an open upper bound.
const maxPrice = float64(1<<63 - 1)
