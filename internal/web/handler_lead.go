package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/skanda-m/estatedesk/internal/catalog"
	"github.com/skanda-m/estatedesk/internal/domain"
	"github.com/skanda-m/estatedesk/internal/service"
)

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.listings.ListLeads(r.Context())
	if err != nil {
		s.logger.Error("list leads failed", "error", err)
		http.Error(w, "failed to list leads", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Session":   sessionFrom(r),
		"ActiveNav": "leads",
		"Leads":     leads,
		"Notice":    r.URL.Query().Get("notice"),
	}
	if err := s.renderPage(w, data,
		"templates/base.html", "templates/pages/leads.html", "templates/partials/sidebar.html",
	); err != nil {
		s.logger.Error("render leads failed", "error", err)
	}
}

// leadSearchView is everything the lead-capture screen needs for one render:
// the loaded catalog's facets, the current filter and selection, and the
// filtered subset.
type leadSearchView struct {
	Filter     catalog.Filter
	Selected   string
	Cities     []string
	PriceCeil  int64
	Properties []*domain.Property
	Form       service.LeadInput
	Errors     service.ValidationErrors
	Error      string
}

// filterQuery encodes the current filter state, with the selection set to sel.
func (v *leadSearchView) filterQuery(sel string) url.Values {
	q := url.Values{}
	if v.Filter.ID != "" {
		q.Set("id", v.Filter.ID)
	}
	if v.Filter.City != "" {
		q.Set("city", v.Filter.City)
	}
	if v.Filter.Listing != "" {
		q.Set("listing", string(v.Filter.Listing))
	}
	q.Set("min_price", strconv.FormatInt(v.Filter.MinPrice, 10))
	q.Set("max_price", strconv.FormatInt(v.Filter.MaxPrice, 10))
	if sel != "" {
		q.Set("selected", sel)
	}
	return q
}

// ToggleURL is the link target for a property card: the same filter state
// with the selection toggled for id.
func (v *leadSearchView) ToggleURL(id string) string {
	return "/dashboard/leads/new?" + v.filterQuery(catalog.Toggle(v.Selected, id)).Encode()
}

// buildLeadSearchView loads the catalog once and derives facets, then applies
// the query-string filter state. An empty catalog renders the empty state; no
// retry is attempted.
func (s *Server) buildLeadSearchView(r *http.Request) (*leadSearchView, error) {
	props, err := s.listings.ListProperties(r.Context())
	if err != nil {
		return nil, err
	}

	view := &leadSearchView{
		Cities:    catalog.Cities(props),
		PriceCeil: catalog.MaxPrice(props),
		Selected:  r.FormValue("selected"),
	}

	filter := catalog.Default(props)
	filter.ID = strings.TrimSpace(r.FormValue("id"))
	filter.City = strings.TrimSpace(r.FormValue("city"))
	if listing, ok := domain.ParseListing(r.FormValue("listing")); ok {
		filter.Listing = listing
	}
	if v, err := strconv.ParseInt(r.FormValue("min_price"), 10, 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseInt(r.FormValue("max_price"), 10, 64); err == nil {
		filter.MaxPrice = v
	}

	view.Filter = filter
	view.Properties = catalog.Apply(filter, props)

	// A selection hidden by the current filter stays selected; the form keeps
	// submitting it until the user clears or replaces it.
	return view, nil
}

func (s *Server) handleNewLeadPage(w http.ResponseWriter, r *http.Request) {
	view, err := s.buildLeadSearchView(r)
	if err != nil {
		s.logger.Error("lead search load failed", "error", err)
		http.Error(w, "failed to load properties", http.StatusInternalServerError)
		return
	}
	view.Form.Status = string(domain.LeadWarm)

	// HTMX filter updates replace only the results grid.
	if r.Header.Get("HX-Request") == "true" {
		if err := s.renderPartial(w, "templates/partials/lead_results.html", "lead_results", view); err != nil {
			s.logger.Error("render lead results failed", "error", err)
		}
		return
	}

	s.renderLeadSearchPage(w, r, view)
}

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
	in := service.LeadInput{
		FullName:   strings.TrimSpace(r.FormValue("userFullName")),
		Phone:      strings.TrimSpace(r.FormValue("userPhone")),
		Status:     r.FormValue("status"),
		PropertyID: r.FormValue("selected"),
	}

	_, err := s.listings.CreateLead(r.Context(), in)
	if err == nil {
		// Selection clears on confirmed write only.
		http.Redirect(w, r,
			"/dashboard/leads?notice="+url.QueryEscape("Lead created successfully!"),
			http.StatusSeeOther)
		return
	}

	view, verr := s.buildLeadSearchView(r)
	if verr != nil {
		s.logger.Error("lead search reload failed", "error", verr)
		http.Error(w, "failed to load properties", http.StatusInternalServerError)
		return
	}
	view.Selected = in.PropertyID
	view.Form = in

	var ve service.ValidationErrors
	if errors.As(err, &ve) {
		view.Errors = ve
	} else {
		s.logger.Error("create lead failed", "error", err)
		view.Error = "Lead creation failed! Please try again."
	}
	s.renderLeadSearchPage(w, r, view)
}

func (s *Server) renderLeadSearchPage(w http.ResponseWriter, r *http.Request, view *leadSearchView) {
	data := map[string]any{
		"Session":   sessionFrom(r),
		"ActiveNav": "leads",
		"View":      view,
	}
	if err := s.renderPage(w, data,
		"templates/base.html", "templates/pages/lead_new.html",
		"templates/partials/sidebar.html", "templates/partials/lead_results.html",
	); err != nil {
		s.logger.Error("render lead capture page failed", "error", err)
	}
}
