package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanda-m/estatedesk/internal/domain"
)

func TestLeadStoreCreate(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	property := createTestProperty(t, d, "Pune, MH", 5000)

	lead, err := NewLeadStore(d).Create(ctx, &domain.Lead{
		FullName:   "Asha Rao",
		Phone:      "+91 98200 00000",
		Status:     domain.LeadHot,
		PropertyID: property.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, "Asha Rao", lead.FullName)
	assert.Equal(t, domain.LeadHot, lead.Status)
	assert.Equal(t, property.ID, lead.PropertyID)
}

func TestLeadStoreCreateRequiresProperty(t *testing.T) {
	d := openTestDB(t)

	_, err := NewLeadStore(d).Create(context.Background(), &domain.Lead{
		FullName:   "Asha Rao",
		Phone:      "+91 98200 00000",
		Status:     domain.LeadWarm,
		PropertyID: "missing-property",
	})
	assert.Error(t, err)
}

func TestLeadStoreList(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()
	s := NewLeadStore(d)

	property := createTestProperty(t, d, "Pune, MH", 5000)
	for _, name := range []string{"Asha Rao", "Vikram Shah"} {
		_, err := s.Create(ctx, &domain.Lead{
			FullName: name, Phone: "123", Status: domain.LeadWarm, PropertyID: property.ID,
		})
		require.NoError(t, err)
	}

	leads, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, leads, 2)
}

func TestLeadStoreCountByStatus(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()
	s := NewLeadStore(d)

	property := createTestProperty(t, d, "Pune, MH", 5000)
	for _, status := range []domain.LeadStatus{domain.LeadHot, domain.LeadHot, domain.LeadCold} {
		_, err := s.Create(ctx, &domain.Lead{
			FullName: "x", Phone: "1", Status: status, PropertyID: property.ID,
		})
		require.NoError(t, err)
	}

	counts, err := s.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[domain.LeadHot])
	assert.Equal(t, int64(1), counts[domain.LeadCold])
	assert.Zero(t, counts[domain.LeadWarm])
}
