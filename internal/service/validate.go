package service

import (
	"sort"
	"strings"

	"github.com/skanda-m/estatedesk/internal/domain"
)

// Validation limits. The minimum price applies to both RENT and SALE listings.
const (
	MinPrice       = 1500
	MinArea        = 100
	minNameLen     = 5
	minDescLen     = 5
	minAddressLen  = 10
	minCityLen     = 2
	minStateLen    = 2
	minPostalLen   = 5
	minSocialIDLen = 5
)

// ValidationErrors maps form field names to user-facing messages. It is
// returned before any store call is made.
type ValidationErrors map[string]string

func (ve ValidationErrors) Error() string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

func ValidateProperty(in PropertyInput) ValidationErrors {
	ve := ValidationErrors{}

	if len(strings.TrimSpace(in.Name)) < minNameLen {
		ve["name"] = "Name must be at least 5 characters."
	}
	if len(strings.TrimSpace(in.Description)) < minDescLen {
		ve["description"] = "Description must be at least 5 characters."
	}
	if len(strings.TrimSpace(in.SocialID)) < minSocialIDLen {
		ve["socialId"] = "Social ID must be at least 5 characters."
	}
	if len(strings.TrimSpace(in.Address)) < minAddressLen {
		ve["address"] = "Address must be detailed."
	}
	if len(strings.TrimSpace(in.City)) < minCityLen {
		ve["city"] = "City must be at least 2 characters."
	}
	if len(strings.TrimSpace(in.State)) < minStateLen {
		ve["state"] = "State must be at least 2 characters."
	}
	if len(strings.TrimSpace(in.PostalCode)) < minPostalLen {
		ve["postalCode"] = "Postal code must be at least 5 characters."
	}
	if in.Price < MinPrice {
		ve["price"] = "Price must be at least ₹1500."
	}
	if in.Area < MinArea {
		ve["area"] = "Area must be at least 100 sqft."
	}
	if in.Beds < 1 {
		ve["beds"] = "Beds is required."
	}
	if in.Baths < 1 {
		ve["baths"] = "Baths is required."
	}
	if _, ok := domain.ParseListing(in.Listing); !ok {
		ve["listing"] = "Listing type is required."
	}
	if _, ok := domain.ParseFacing(in.Facing); !ok {
		ve["facing"] = "Facing direction is required."
	}
	if _, ok := domain.ParseCondition(in.Condition); !ok {
		ve["condition"] = "Property condition is required."
	}

	return ve
}

func ValidateLead(in LeadInput) ValidationErrors {
	ve := ValidationErrors{}

	if in.PropertyID == "" {
		ve["property"] = "Select a property first."
	}
	if strings.TrimSpace(in.FullName) == "" {
		ve["userFullName"] = "Full name is required."
	}
	if strings.TrimSpace(in.Phone) == "" {
		ve["userPhone"] = "Phone number is required."
	}
	if in.Status != "" {
		if _, ok := domain.ParseLeadStatus(in.Status); !ok {
			ve["status"] = "Status must be HOT, WARM, or COLD."
		}
	}

	return ve
}
