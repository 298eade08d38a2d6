package describe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanda-m/estatedesk/internal/domain"
)

func TestDisabledReturnsErrDisabled(t *testing.T) {
	_, err := Disabled{}.Generate(context.Background(), &domain.Property{})
	require.ErrorIs(t, err, ErrDisabled)
}

func TestPrompt(t *testing.T) {
	p := &domain.Property{
		Name:       "Sunrise Villa",
		Address:    "14 Lakeview Road",
		City:       "Powai, Mumbai",
		State:      "MH",
		PostalCode: "400076",
		Price:      25000,
		Area:       1200,
		Beds:       2,
		Baths:      2,
		Listing:    domain.ListingRent,
		Facing:     domain.FacingEast,
		Condition:  domain.ConditionNew,
		CornerPlot: true,
	}

	got := Prompt(p)

	assert.Contains(t, got, "Sunrise Villa")
	assert.Contains(t, got, "14 Lakeview Road, Powai, Mumbai, MH 400076")
	assert.Contains(t, got, "RENT at 25000 INR per month")
	assert.Contains(t, got, "2 beds, 2 baths, 1200 sq ft")
	assert.Contains(t, got, "Corner plot.")
}

func TestPromptSaleOmitsPerMonth(t *testing.T) {
	p := &domain.Property{Listing: domain.ListingSale, Price: 9500000}

	got := Prompt(p)

	assert.Contains(t, got, "SALE at 9500000 INR")
	assert.NotContains(t, got, "per month")
}
