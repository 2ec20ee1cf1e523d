package domain

import "time"

type Category string

const (
	CategoryAll          Category = "All"
	CategoryResidential  Category = "Residential"
	CategoryAgricultural Category = "Agricultural"
	CategoryCommercial   Category = "Commercial"
	CategoryInvestment   Category = "Investment"
)

// ValidCategory reports whether c names a real listing category. The "All"
// sentinel is a filter value, not a category a plot can carry.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryResidential, CategoryAgricultural, CategoryCommercial, CategoryInvestment:
		return true
	}
	return false
}

type SellerType string

const (
	SellerOwner  SellerType = "owner"
	SellerBroker SellerType = "broker"
)

// Plot is a land parcel offered for sale or investment. IDs are assigned by
// the data gateway on insert, never by the application.
type Plot struct {
	ID                string
	Name              string
	Location          string
	Latitude          *float64
	Longitude         *float64
	Size              string
	Price             int64
	Category          Category
	Tag               string
	Description       string
	NeighborhoodScore int
	MediaURLs         []string
	AerialViewURL     string
	OwnerName         string
	OwnerEmail        string
	OwnerPhone        string
	SellerType        SellerType
	AgencyName        string
	SellerID          string
	Verified          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HeroURL is the image used in compact card views: the first media item by
// upload order, or the empty string when the plot has no media.
func (p *Plot) HeroURL() string {
	if len(p.MediaURLs) == 0 {
		return ""
	}
	return p.MediaURLs[0]
}

// FilterSet holds the current search constraints as the user typed them.
// Numeric bounds stay raw strings: an empty or non-numeric bound imposes no
// constraint, and interpreting them is the query builder's job, not ours.
type FilterSet struct {
	Location string
	MinPrice string
	MaxPrice string
	Category Category
}

// DefaultFilters is the all-unconstrained state.
func DefaultFilters() FilterSet {
	return FilterSet{Category: CategoryAll}
}

// FilterChange is a partial update merged into a FilterSet. Nil fields are
// left untouched.
type FilterChange struct {
	Location *string
	MinPrice *string
	MaxPrice *string
	Category *Category
}

// Apply merges the change into f.
func (f *FilterSet) Apply(ch FilterChange) {
	if ch.Location != nil {
		f.Location = *ch.Location
	}
	if ch.MinPrice != nil {
		f.MinPrice = *ch.MinPrice
	}
	if ch.MaxPrice != nil {
		f.MaxPrice = *ch.MaxPrice
	}
	if ch.Category != nil {
		f.Category = *ch.Category
	}
}

// Lead records a buyer's expression of interest in a plot. Created
// best-effort when the buyer opens an outbound contact link.
type Lead struct {
	ID        string
	PlotID    string
	SellerID  string
	CreatedAt time.Time
}

// User is an authenticated account. Only admins and sellers ever sign in;
// browsing is anonymous.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
