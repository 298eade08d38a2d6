package web

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/skanda-m/estatedesk/internal/describe"
	"github.com/skanda-m/estatedesk/internal/domain"
	"github.com/skanda-m/estatedesk/internal/service"
)

func (s *Server) handleListProperties(w http.ResponseWriter, r *http.Request) {
	props, err := s.listings.ListProperties(r.Context())
	if err != nil {
		s.logger.Error("list properties failed", "error", err)
		http.Error(w, "failed to list properties", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Session":    sessionFrom(r),
		"ActiveNav":  "properties",
		"Properties": props,
		"Notice":     r.URL.Query().Get("notice"),
	}
	if err := s.renderPage(w, data,
		"templates/base.html", "templates/pages/properties.html",
		"templates/partials/sidebar.html", "templates/partials/property_card.html",
	); err != nil {
		s.logger.Error("render properties failed", "error", err)
	}
}

func (s *Server) handleNewPropertyPage(w http.ResponseWriter, r *http.Request) {
	s.renderNewPropertyPage(w, r, service.PropertyInput{Listing: "RENT", Facing: "NORTH", Condition: "NEW"}, nil, "")
}

func (s *Server) handleCreateProperty(w http.ResponseWriter, r *http.Request) {
	in := propertyInputFromForm(r)

	_, err := s.listings.CreateProperty(r.Context(), in)
	if err != nil {
		var ve service.ValidationErrors
		if errors.As(err, &ve) {
			s.renderNewPropertyPage(w, r, in, ve, "")
			return
		}
		s.logger.Error("create property failed", "error", err)
		s.renderNewPropertyPage(w, r, in, nil, "Property creation failed! Please try again.")
		return
	}

	http.Redirect(w, r,
		"/dashboard/properties?notice="+url.QueryEscape("Property added successfully!"),
		http.StatusSeeOther)
}

// handleDescribeProperty returns a generated description for the form's
// current field values as an HTMX fragment.
func (s *Server) handleDescribeProperty(w http.ResponseWriter, r *http.Request) {
	in := propertyInputFromForm(r)
	listing, _ := domain.ParseListing(in.Listing)
	facing, _ := domain.ParseFacing(in.Facing)
	condition, _ := domain.ParseCondition(in.Condition)

	text, err := s.describer.Generate(r.Context(), &domain.Property{
		Name:       in.Name,
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Price:      in.Price,
		Area:       in.Area,
		Beds:       in.Beds,
		Baths:      in.Baths,
		Listing:    listing,
		Facing:     facing,
		Condition:  condition,
		CornerPlot: in.CornerPlot,
	})
	if err != nil {
		if !errors.Is(err, describe.ErrDisabled) {
			s.logger.Error("describe property failed", "error", err)
			err = errors.New("description generation failed, try again")
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		if rerr := s.renderPartial(w, "templates/partials/describe_result.html", "describe_result",
			map[string]any{"Error": err.Error(), "Description": in.Description}); rerr != nil {
			s.logger.Error("render describe partial failed", "error", rerr)
		}
		return
	}

	if err := s.renderPartial(w, "templates/partials/describe_result.html", "describe_result",
		map[string]any{"Description": text}); err != nil {
		s.logger.Error("render describe partial failed", "error", err)
	}
}

func (s *Server) renderNewPropertyPage(w http.ResponseWriter, r *http.Request, in service.PropertyInput, fieldErrors service.ValidationErrors, errMsg string) {
	data := map[string]any{
		"Session":   sessionFrom(r),
		"ActiveNav": "properties",
		"Form":      in,
		"Errors":    fieldErrors,
		"Error":     errMsg,
		// The description textarea lives in the describe_result partial so
		// the suggest button can swap it in place.
		"Describe": map[string]any{"Description": in.Description},
	}
	if err := s.renderPage(w, data,
		"templates/base.html", "templates/pages/property_new.html",
		"templates/partials/sidebar.html", "templates/partials/describe_result.html",
	); err != nil {
		s.logger.Error("render new property page failed", "error", err)
	}
}

func propertyInputFromForm(r *http.Request) service.PropertyInput {
	return service.PropertyInput{
		Name:         strings.TrimSpace(r.FormValue("name")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		SocialID:     strings.TrimSpace(r.FormValue("socialId")),
		Address:      strings.TrimSpace(r.FormValue("address")),
		City:         strings.TrimSpace(r.FormValue("city")),
		State:        strings.TrimSpace(r.FormValue("state")),
		PostalCode:   strings.TrimSpace(r.FormValue("postalCode")),
		Price:        parseInt(r.FormValue("price")),
		Area:         parseInt(r.FormValue("area")),
		Beds:         parseInt(r.FormValue("beds")),
		Baths:        parseInt(r.FormValue("baths")),
		Listing:      r.FormValue("listing"),
		Facing:       r.FormValue("facing"),
		Condition:    r.FormValue("condition"),
		CornerPlot:   r.FormValue("isCornerPlot") == "on" || r.FormValue("isCornerPlot") == "true",
		ThumbnailURL: strings.TrimSpace(r.FormValue("thumbnailUrl")),
	}
}

// parseInt returns 0 for anything unparseable; the validator rejects the zero
// value with a field message.
func parseInt(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
