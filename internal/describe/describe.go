// Package describe generates marketing copy for a listing from its structured
// fields. It is an optional assist on the new-property form; the default
// backend is disabled.
package describe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skanda-m/estatedesk/internal/domain"
)

// ErrDisabled is returned by the disabled backend; handlers surface it as a
// notice rather than an error page.
var ErrDisabled = errors.New("description generation is not configured")

type Generator interface {
	Generate(ctx context.Context, p *domain.Property) (string, error)
}

// Disabled is the Generator used when no backend is configured.
type Disabled struct{}

func (Disabled) Generate(context.Context, *domain.Property) (string, error) {
	return "", ErrDisabled
}

// Prompt renders the property's fields into the instruction sent to the
// model. Shared by all backends.
func Prompt(p *domain.Property) string {
	var b strings.Builder
	b.WriteString("Write a short listing description (2-3 sentences, plain text, no headings) for this property:\n")
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Address: %s, %s, %s %s\n", p.Address, p.City, p.State, p.PostalCode)
	fmt.Fprintf(&b, "For: %s at %d INR", p.Listing, p.Price)
	if p.Listing == domain.ListingRent {
		b.WriteString(" per month")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Layout: %d beds, %d baths, %d sq ft, facing %s, condition %s\n",
		p.Beds, p.Baths, p.Area, p.Facing, p.Condition)
	if p.CornerPlot {
		b.WriteString("Corner plot.\n")
	}
	return b.String()
}
