package domain

import "context"

// SearchLimit caps every filtered read. There is no pagination; the UI only
// ever shows the first page.
const SearchLimit = 24

type PlotRepository interface {
	Create(ctx context.Context, plot *Plot) error
	Update(ctx context.Context, plot *Plot) error
	UpdatePrice(ctx context.Context, id string, price int64) error
	UpdateVerified(ctx context.Context, id string, verified bool) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Plot, error)
	// Search returns at most SearchLimit plots matching the filter,
	// newest first.
	Search(ctx context.Context, filter FilterSet) ([]*Plot, error)
	// FindAll returns every plot ordered newest first, for the admin console.
	FindAll(ctx context.Context) ([]*Plot, error)
}

type LeadRepository interface {
	Create(ctx context.Context, lead *Lead) error
	FindByPlotID(ctx context.Context, plotID string) ([]*Lead, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}
