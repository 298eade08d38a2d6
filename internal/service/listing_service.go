package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skanda-m/estatedesk/internal/domain"
)

// propertyRepository is the subset of store.PropertyStore that ListingService
// requires.
type propertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]*domain.Property, error)
	Count(ctx context.Context) (int64, error)
}

// leadRepository is the subset of store.LeadStore that ListingService requires.
type leadRepository interface {
	Create(ctx context.Context, l *domain.Lead) (*domain.Lead, error)
	List(ctx context.Context) ([]*domain.Lead, error)
	CountByStatus(ctx context.Context) (map[domain.LeadStatus]int64, error)
}

type ListingService struct {
	properties propertyRepository
	leads      leadRepository
	logger     *slog.Logger
}

func NewListingService(properties propertyRepository, leads leadRepository, logger *slog.Logger) *ListingService {
	return &ListingService{properties: properties, leads: leads, logger: logger}
}

// PropertyInput carries the raw new-property form values.
type PropertyInput struct {
	Name         string
	Description  string
	SocialID     string
	Address      string
	City         string
	State        string
	PostalCode   string
	Price        int64
	Area         int64
	Beds         int64
	Baths        int64
	Listing      string
	Facing       string
	Condition    string
	CornerPlot   bool
	ThumbnailURL string
}

// CreateProperty validates in and persists it. A ValidationErrors return means
// nothing was written; any other error is a persistence failure the caller
// must surface.
func (s *ListingService) CreateProperty(ctx context.Context, in PropertyInput) (*domain.Property, error) {
	ve := ValidateProperty(in)
	if len(ve) > 0 {
		return nil, ve
	}

	listing, _ := domain.ParseListing(in.Listing)
	facing, _ := domain.ParseFacing(in.Facing)
	condition, _ := domain.ParseCondition(in.Condition)

	property, err := s.properties.Create(ctx, &domain.Property{
		Name:         strings.TrimSpace(in.Name),
		Description:  strings.TrimSpace(in.Description),
		SocialID:     strings.TrimSpace(in.SocialID),
		Address:      strings.TrimSpace(in.Address),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		PostalCode:   strings.TrimSpace(in.PostalCode),
		Price:        in.Price,
		Area:         in.Area,
		Beds:         in.Beds,
		Baths:        in.Baths,
		Listing:      listing,
		Facing:       facing,
		Condition:    condition,
		CornerPlot:   in.CornerPlot,
		ThumbnailURL: strings.TrimSpace(in.ThumbnailURL),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.logger.Info("property created", "property_id", property.ID, "listing", property.Listing)
	return property, nil
}

func (s *ListingService) ListProperties(ctx context.Context) ([]*domain.Property, error) {
	return s.properties.List(ctx)
}

func (s *ListingService) GetProperty(ctx context.Context, id string) (*domain.Property, error) {
	return s.properties.GetByID(ctx, id)
}

// LeadInput carries the raw lead-capture form values. PropertyID is the
// current selection; empty means nothing is selected.
type LeadInput struct {
	FullName   string
	Phone      string
	Status     string
	PropertyID string
}

// CreateLead validates in, confirms the referenced property exists, and
// persists the lead. No store call is made when validation fails, including
// the no-selection case. Persistence errors propagate so the caller never
// reports success for an unconfirmed write.
func (s *ListingService) CreateLead(ctx context.Context, in LeadInput) (*domain.Lead, error) {
	ve := ValidateLead(in)
	if len(ve) > 0 {
		return nil, ve
	}

	property, err := s.properties.GetByID(ctx, in.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up property: %w", err)
	}
	if property == nil {
		return nil, ValidationErrors{"property": "selected property no longer exists"}
	}

	status := domain.LeadStatus(in.Status)
	if in.Status == "" {
		status = domain.LeadWarm
	}

	lead, err := s.leads.Create(ctx, &domain.Lead{
		FullName:   strings.TrimSpace(in.FullName),
		Phone:      strings.TrimSpace(in.Phone),
		Status:     status,
		PropertyID: in.PropertyID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Info("lead created", "lead_id", lead.ID, "property_id", lead.PropertyID, "status", lead.Status)
	return lead, nil
}

func (s *ListingService) ListLeads(ctx context.Context) ([]*domain.Lead, error) {
	return s.leads.List(ctx)
}

// DashboardStats summarizes the catalog and pipeline for the dashboard home.
type DashboardStats struct {
	Properties    int64
	Leads         int64
	LeadsByStatus map[domain.LeadStatus]int64
}

func (s *ListingService) Stats(ctx context.Context) (*DashboardStats, error) {
	propertyCount, err := s.properties.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	byStatus, err := s.leads.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}

	var total int64
	for _, n := range byStatus {
		total += n
	}

	return &DashboardStats{Properties: propertyCount, Leads: total, LeadsByStatus: byStatus}, nil
}
