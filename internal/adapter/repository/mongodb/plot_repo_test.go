package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

func TestFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.FilterSet
		want   bson.M
	}{
		{
			name:   "defaults impose no predicates",
			filter: domain.DefaultFilters(),
			want:   bson.M{},
		},
		{
			name:   "location becomes case-insensitive substring match",
			filter: domain.FilterSet{Location: "Kitengela", Category: domain.CategoryAll},
			want:   bson.M{"location": bson.M{"$regex": "Kitengela", "$options": "i"}},
		},
		{
			name:   "location regex metacharacters are escaped",
			filter: domain.FilterSet{Location: "Plot (A)", Category: domain.CategoryAll},
			want:   bson.M{"location": bson.M{"$regex": `Plot \(A\)`, "$options": "i"}},
		},
		{
			name:   "whitespace-only location imposes no predicate",
			filter: domain.FilterSet{Location: "   ", Category: domain.CategoryAll},
			want:   bson.M{},
		},
		{
			name:   "concrete category becomes equality",
			filter: domain.FilterSet{Category: domain.CategoryResidential},
			want:   bson.M{"category": "Residential"},
		},
		{
			name:   "both bounds present",
			filter: domain.FilterSet{MinPrice: "100000", MaxPrice: "900000", Category: domain.CategoryAll},
			want:   bson.M{"price": bson.M{"$gte": 100000.0, "$lte": 900000.0}},
		},
		{
			name:   "min greater than max is applied literally",
			filter: domain.FilterSet{MinPrice: "900000", MaxPrice: "100000", Category: domain.CategoryAll},
			want:   bson.M{"price": bson.M{"$gte": 900000.0, "$lte": 100000.0}},
		},
		{
			name:   "non-numeric bound is dropped, not zeroed",
			filter: domain.FilterSet{MinPrice: "cheap", MaxPrice: "500000", Category: domain.CategoryAll},
			want:   bson.M{"price": bson.M{"$lte": 500000.0}},
		},
		{
			name:   "NaN and Inf bounds are dropped",
			filter: domain.FilterSet{MinPrice: "NaN", MaxPrice: "+Inf", Category: domain.CategoryAll},
			want:   bson.M{},
		},
		{
			name:   "bounds trim surrounding whitespace",
			filter: domain.FilterSet{MinPrice: " 250000 ", Category: domain.CategoryAll},
			want:   bson.M{"price": bson.M{"$gte": 250000.0}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, filterQuery(tt.filter))
		})
	}
}

func TestParseBound(t *testing.T) {
	if n, ok := parseBound("1500000"); assert.True(t, ok) {
		assert.Equal(t, 1500000.0, n)
	}
	if n, ok := parseBound("1.5e6"); assert.True(t, ok) {
		assert.Equal(t, 1500000.0, n)
	}
	for _, raw := range []string{"", "  ", "abc", "NaN", "Inf", "-Inf"} {
		_, ok := parseBound(raw)
		assert.False(t, ok, "parseBound(%q) must reject", raw)
	}
}
