package web

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanda-m/estatedesk/internal/service"
)

func TestDashboardShowsStats(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	p := ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")

	_, err := ts.listings.CreateLead(context.Background(), service.LeadInput{
		FullName: "Asha Rao", Phone: "123", Status: "HOT", PropertyID: p.ID,
	})
	require.NoError(t, err)

	rec := ts.get("/dashboard", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dashboard")
	assert.Contains(t, rec.Body.String(), "status-chart.png")
}

func TestLeadStatusChartRendersPNG(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")

	// Renders even with zero leads.
	rec := ts.get("/dashboard/leads/status-chart.png", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	body := rec.Body.Bytes()
	require.Greater(t, len(body), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, body[:4])
}
