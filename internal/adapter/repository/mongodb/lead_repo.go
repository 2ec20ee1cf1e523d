package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

type LeadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) *LeadRepository {
	return &LeadRepository{collection: db.Collection("leads")}
}

func (r *LeadRepository) Create(ctx context.Context, lead *domain.Lead) error {
	lead.CreatedAt = time.Now()

	doc := &leadDocument{
		PlotID:    lead.PlotID,
		SellerID:  lead.SellerID,
		CreatedAt: lead.CreatedAt,
	}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		lead.ID = oid.Hex()
	}
	return nil
}

func (r *LeadRepository) FindByPlotID(ctx context.Context, plotID string) ([]*domain.Lead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"plot_id": plotID}, opts)
	if err != nil {
		return nil, err
	}
	var docs []*leadDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	leads := make([]*domain.Lead, 0, len(docs))
	for _, doc := range docs {
		leads = append(leads, toDomainLead(doc))
	}
	return leads, nil
}
