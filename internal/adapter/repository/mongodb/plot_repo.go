package mongodb

import (
	"context"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

type PlotRepository struct {
	collection *mongo.Collection
}

func NewPlotRepository(db *mongo.Database) *PlotRepository {
	return &PlotRepository{collection: db.Collection("plots")}
}

func (r *PlotRepository) Create(ctx context.Context, plot *domain.Plot) error {
	plot.CreatedAt = time.Now()
	plot.UpdatedAt = time.Now()

	doc, err := toPlotDocument(plot)
	if err != nil {
		return err
	}
	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	// The gateway assigns identity; reflect it back onto the domain object.
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		plot.ID = oid.Hex()
	}
	return nil
}

func (r *PlotRepository) Update(ctx context.Context, plot *domain.Plot) error {
	plot.UpdatedAt = time.Now()

	doc, err := toPlotDocument(plot)
	if err != nil {
		return err
	}
	_, err = r.collection.UpdateByID(ctx, doc.ID, bson.M{"$set": doc})
	return err
}

func (r *PlotRepository) UpdatePrice(ctx context.Context, id string, price int64) error {
	return r.setFields(ctx, id, bson.M{"price": price})
}

func (r *PlotRepository) UpdateVerified(ctx context.Context, id string, verified bool) error {
	return r.setFields(ctx, id, bson.M{"is_verified": verified})
}

func (r *PlotRepository) setFields(ctx context.Context, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlotNotFound
	}
	fields["updated_at"] = time.Now()
	res, err := r.collection.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrPlotNotFound
	}
	return nil
}

func (r *PlotRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPlotNotFound
	}
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPlotNotFound
	}
	return nil
}

func (r *PlotRepository) FindByID(ctx context.Context, id string) (*domain.Plot, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPlotNotFound
	}
	var doc plotDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrPlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomainPlot(&doc), nil
}

func (r *PlotRepository) Search(ctx context.Context, filter domain.FilterSet) ([]*domain.Plot, error) {
	opts := options.Find().
		SetLimit(domain.SearchLimit).
		SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, filterQuery(filter), opts)
	if err != nil {
		return nil, err
	}
	var docs []*plotDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toDomainPlots(docs), nil
}

func (r *PlotRepository) FindAll(ctx context.Context) ([]*domain.Plot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var docs []*plotDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return toDomainPlots(docs), nil
}

// filterQuery translates a FilterSet into the gateway's conjunctive
// predicate form:
//
//   - a location that trims non-empty becomes a case-insensitive substring
//     match; whitespace-only input imposes no predicate at all
//   - a category other than the "All" sentinel becomes an equality match
//   - a bound whose string trims non-empty and parses to a finite number
//     becomes an inclusive limit; anything else is dropped silently, never
//     treated as zero
//
// Bounds are applied literally: min > max yields a query that matches
// nothing.
func filterQuery(filter domain.FilterSet) bson.M {
	query := bson.M{}

	if term := strings.TrimSpace(filter.Location); term != "" {
		query["location"] = bson.M{"$regex": regexp.QuoteMeta(term), "$options": "i"}
	}

	if filter.Category != "" && filter.Category != domain.CategoryAll {
		query["category"] = string(filter.Category)
	}

	price := bson.M{}
	if min, ok := parseBound(filter.MinPrice); ok {
		price["$gte"] = min
	}
	if max, ok := parseBound(filter.MaxPrice); ok {
		price["$lte"] = max
	}
	if len(price) > 0 {
		query["price"] = price
	}

	return query
}

func parseBound(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
