package domain

import "time"

// Listing is a property's transaction kind.
type Listing string

const (
	ListingRent Listing = "RENT"
	ListingSale Listing = "SALE"
)

func ParseListing(s string) (Listing, bool) {
	switch Listing(s) {
	case ListingRent, ListingSale:
		return Listing(s), true
	}
	return "", false
}

// Facing is the direction a property faces.
type Facing string

const (
	FacingNorth Facing = "NORTH"
	FacingSouth Facing = "SOUTH"
	FacingEast  Facing = "EAST"
	FacingWest  Facing = "WEST"
)

func ParseFacing(s string) (Facing, bool) {
	switch Facing(s) {
	case FacingNorth, FacingSouth, FacingEast, FacingWest:
		return Facing(s), true
	}
	return "", false
}

// Condition describes the physical state of a property.
type Condition string

const (
	ConditionOld         Condition = "OLD"
	ConditionNew         Condition = "NEW"
	ConditionRefurbished Condition = "REFURNISHED"
)

func ParseCondition(s string) (Condition, bool) {
	switch Condition(s) {
	case ConditionOld, ConditionNew, ConditionRefurbished:
		return Condition(s), true
	}
	return "", false
}

// LeadStatus is the triage bucket for a lead.
type LeadStatus string

const (
	LeadHot  LeadStatus = "HOT"
	LeadWarm LeadStatus = "WARM"
	LeadCold LeadStatus = "COLD"
)

func ParseLeadStatus(s string) (LeadStatus, bool) {
	switch LeadStatus(s) {
	case LeadHot, LeadWarm, LeadCold:
		return LeadStatus(s), true
	}
	return "", false
}

type Property struct {
	ID           string
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
	Listing      Listing
	Facing       Facing
	Condition    Condition
	CornerPlot   bool
	ThumbnailURL string
	CreatedAt    time.Time
}

type Lead struct {
	ID         string
	FullName   string
	Phone      string
	Status     LeadStatus
	PropertyID string
	CreatedAt  time.Time
}

type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string
	Role          string
	EmailVerified bool
	CreatedAt     time.Time
}

// Session is the authenticated state attached to a browser cookie. User is
// populated when the session is loaded by token.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	User      *User
}
