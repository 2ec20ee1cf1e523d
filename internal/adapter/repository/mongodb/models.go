package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

// plotDocument is the stored shape of a Plot. All translation between the
// gateway's shape and the domain shape lives in this file so nullable and
// optional handling has one home.
type plotDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Name              string             `bson:"name"`
	Location          string             `bson:"location"`
	Latitude          *float64           `bson:"lat,omitempty"`
	Longitude         *float64           `bson:"lng,omitempty"`
	Size              string             `bson:"size"`
	Price             int64              `bson:"price"`
	Category          string             `bson:"category,omitempty"`
	Tag               string             `bson:"tag,omitempty"`
	Description       string             `bson:"description,omitempty"`
	NeighborhoodScore int                `bson:"neighborhood_score,omitempty"`
	MediaURLs         []string           `bson:"media_urls,omitempty"`
	AerialViewURL     string             `bson:"aerial_view_url,omitempty"`
	OwnerName         string             `bson:"owner_name,omitempty"`
	OwnerEmail        string             `bson:"owner_email,omitempty"`
	OwnerPhone        string             `bson:"owner_phone,omitempty"`
	SellerType        string             `bson:"seller_type,omitempty"`
	AgencyName        string             `bson:"agency_name,omitempty"`
	SellerID          string             `bson:"seller_id,omitempty"`
	Verified          bool               `bson:"is_verified"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func toPlotDocument(p *domain.Plot) (*plotDocument, error) {
	if p == nil {
		return nil, nil
	}

	var docID primitive.ObjectID
	if p.ID != "" {
		var err error
		docID, err = primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("toPlotDocument: invalid id %q: %w", p.ID, err)
		}
	}

	return &plotDocument{
		ID:                docID,
		Name:              p.Name,
		Location:          p.Location,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Size:              p.Size,
		Price:             p.Price,
		Category:          string(p.Category),
		Tag:               p.Tag,
		Description:       p.Description,
		NeighborhoodScore: p.NeighborhoodScore,
		MediaURLs:         p.MediaURLs,
		AerialViewURL:     p.AerialViewURL,
		OwnerName:         p.OwnerName,
		OwnerEmail:        p.OwnerEmail,
		OwnerPhone:        p.OwnerPhone,
		SellerType:        string(p.SellerType),
		AgencyName:        p.AgencyName,
		SellerID:          p.SellerID,
		Verified:          p.Verified,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}, nil
}

func toDomainPlot(d *plotDocument) *domain.Plot {
	if d == nil {
		return nil
	}
	return &domain.Plot{
		ID:                d.ID.Hex(),
		Name:              d.Name,
		Location:          d.Location,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Size:              d.Size,
		Price:             d.Price,
		Category:          domain.Category(d.Category),
		Tag:               d.Tag,
		Description:       d.Description,
		NeighborhoodScore: d.NeighborhoodScore,
		MediaURLs:         d.MediaURLs,
		AerialViewURL:     d.AerialViewURL,
		OwnerName:         d.OwnerName,
		OwnerEmail:        d.OwnerEmail,
		OwnerPhone:        d.OwnerPhone,
		SellerType:        domain.SellerType(d.SellerType),
		AgencyName:        d.AgencyName,
		SellerID:          d.SellerID,
		Verified:          d.Verified,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func toDomainPlots(docs []*plotDocument) []*domain.Plot {
	plots := make([]*domain.Plot, 0, len(docs))
	for _, doc := range docs {
		plots = append(plots, toDomainPlot(doc))
	}
	return plots
}

type leadDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PlotID    string             `bson:"plot_id"`
	SellerID  string             `bson:"seller_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}

func toDomainLead(d *leadDocument) *domain.Lead {
	if d == nil {
		return nil
	}
	return &domain.Lead{
		ID:        d.ID.Hex(),
		PlotID:    d.PlotID,
		SellerID:  d.SellerID,
		CreatedAt: d.CreatedAt,
	}
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	CreatedAt    time.Time          `bson:"created_at"`
}

func toDomainUser(d *userDocument) *domain.User {
	if d == nil {
		return nil
	}
	return &domain.User{
		ID:           d.ID.Hex(),
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}
