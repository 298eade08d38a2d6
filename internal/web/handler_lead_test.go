package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skanda-m/estatedesk/internal/domain"
)

func TestLeadSearchPageDerivesCityFacets(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")
	ts.seedProperty(t, "Palm Court", "Koramangala, Bengaluru", 48000, "RENT")
	ts.seedProperty(t, "Palm Court Annex", "Indiranagar, Bengaluru", 52000, "SALE")

	rec := ts.get("/dashboard/leads/new", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	// Facets come from the segment after the last comma, deduplicated.
	assert.Contains(t, body, `<option value="Bengaluru"`)
	assert.Contains(t, body, `<option value="Mumbai"`)
	assert.Equal(t, 1, strings.Count(body, `<option value="Bengaluru"`))
	// All three cards render with no filter applied.
	assert.Contains(t, body, "Sunrise Villa")
	assert.Contains(t, body, "Palm Court")
	assert.Contains(t, body, "Palm Court Annex")
}

func TestLeadSearchFilterNarrowsResults(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")
	ts.seedProperty(t, "Palm Court", "Koramangala, Bengaluru", 48000, "SALE")

	rec := ts.get("/dashboard/leads/new?city=Bengaluru&min_price=0&max_price=100000", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Palm Court")
	assert.NotContains(t, rec.Body.String(), "Sunrise Villa")
}

func TestLeadSearchPriceRangeInclusive(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	ts.seedProperty(t, "Budget Rooms", "Powai, Mumbai", 2000, "RENT")
	ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")
	ts.seedProperty(t, "Palm Court", "Koramangala, Bengaluru", 48000, "SALE")

	rec := ts.get("/dashboard/leads/new?min_price=2000&max_price=25000", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Budget Rooms")
	assert.Contains(t, rec.Body.String(), "Sunrise Villa")
	assert.NotContains(t, rec.Body.String(), "Palm Court")
}

func TestLeadSearchHTMXReturnsPartial(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")

	req := httptest.NewRequest(http.MethodGet, "/dashboard/leads/new?listing=RENT", nil)
	req.Header.Set("HX-Request", "true")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	ts.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `id="lead-results"`)
	assert.Contains(t, body, "Sunrise Villa")
	// Only the results fragment, not the whole page.
	assert.NotContains(t, body, "<html")
	assert.NotContains(t, body, "Filters")
}

func TestLeadSearchEmptyCatalog(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")

	rec := ts.get("/dashboard/leads/new", cookie)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No properties found")
}

func TestLeadSearchToggleLinks(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	p := ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")

	// Unselected card links to a URL that selects it.
	rec := ts.get("/dashboard/leads/new", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "selected="+p.ID)

	// Clicking the selected card again clears the selection.
	rec = ts.get("/dashboard/leads/new?selected="+p.ID+"&min_price=0&max_price=25000", cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1 property selected")
	assert.NotContains(t, rec.Body.String(), "selected="+p.ID+"&")
}

func TestCreateLeadWithoutSelectionRerenders(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")

	rec := ts.postForm("/dashboard/leads/new", url.Values{
		"userFullName": {"Asha Rao"},
		"userPhone":    {"+91 98200 00000"},
		"status":       {"WARM"},
		"min_price":    {"0"},
		"max_price":    {"25000"},
	}, cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Select a property first.")
	// The typed form values survive the re-render.
	assert.Contains(t, rec.Body.String(), "Asha Rao")

	leads, err := ts.listings.ListLeads(context.Background())
	require.NoError(t, err)
	assert.Empty(t, leads)
}

func TestCreateLeadSuccessRedirects(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	p := ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")

	rec := ts.postForm("/dashboard/leads/new", url.Values{
		"selected":     {p.ID},
		"userFullName": {"Asha Rao"},
		"userPhone":    {"+91 98200 00000"},
		"status":       {"HOT"},
		"min_price":    {"0"},
		"max_price":    {"25000"},
	}, cookie)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/dashboard/leads?notice=")

	leads, err := ts.listings.ListLeads(context.Background())
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, p.ID, leads[0].PropertyID)
	assert.Equal(t, domain.LeadHot, leads[0].Status)

	rec = ts.get(rec.Header().Get("Location"), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lead created successfully!")
	assert.Contains(t, rec.Body.String(), "Asha Rao")
}

func TestCreateLeadKeepsFilterStateOnError(t *testing.T) {
	ts := newTestServer(t)
	cookie := ts.signUpAndVerify(t, "asha@example.com")
	p := ts.seedProperty(t, "Sunrise Villa", "Powai, Mumbai", 25000, "RENT")
	ts.seedProperty(t, "Palm Court", "Koramangala, Bengaluru", 48000, "SALE")

	// Missing phone: the page re-renders with the filter and selection intact.
	rec := ts.postForm("/dashboard/leads/new", url.Values{
		"selected":     {p.ID},
		"userFullName": {"Asha Rao"},
		"city":         {"Mumbai"},
		"min_price":    {"0"},
		"max_price":    {"100000"},
	}, cookie)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Phone number is required.")
	assert.Contains(t, body, "1 property selected")
	assert.Contains(t, body, "Sunrise Villa")
	assert.NotContains(t, body, "Palm Court")
}
