package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skanda-m/estatedesk/internal/db"
	"github.com/skanda-m/estatedesk/internal/domain"
)

// openTestDB opens a throwaway database with the real migrations applied.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	d, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func createTestProperty(t *testing.T, d *sql.DB, city string, price int64) *domain.Property {
	t.Helper()
	p, err := NewPropertyStore(d).Create(context.Background(), &domain.Property{
		Name:        "Sunrise Villa",
		Description: "A bright two-bedroom home.",
		SocialID:    "sunrise-villa",
		Address:     "14 Lakeview Road, Powai",
		City:        city,
		State:       "MH",
		PostalCode:  "400076",
		Price:       price,
		Area:        1200,
		Beds:        2,
		Baths:       2,
		Listing:     domain.ListingRent,
		Facing:      domain.FacingEast,
		Condition:   domain.ConditionNew,
	})
	require.NoError(t, err)
	return p
}
