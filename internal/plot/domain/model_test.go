package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeroURL(t *testing.T) {
	assert.Empty(t, (&Plot{}).HeroURL())

	p := &Plot{MediaURLs: []string{"https://media.test/first.jpg", "https://media.test/second.jpg"}}
	assert.Equal(t, "https://media.test/first.jpg", p.HeroURL())
}

func TestFilterSetApply(t *testing.T) {
	f := DefaultFilters()
	loc := "Kitengela"
	cat := CategoryCommercial

	f.Apply(FilterChange{Location: &loc})
	assert.Equal(t, FilterSet{Location: "Kitengela", Category: CategoryAll}, f)

	// Nil fields leave existing values untouched.
	f.Apply(FilterChange{Category: &cat})
	assert.Equal(t, FilterSet{Location: "Kitengela", Category: CategoryCommercial}, f)

	empty := ""
	f.Apply(FilterChange{Location: &empty})
	assert.Empty(t, f.Location)
	assert.Equal(t, CategoryCommercial, f.Category)
}

func TestValidCategory(t *testing.T) {
	for _, c := range []Category{CategoryResidential, CategoryAgricultural, CategoryCommercial, CategoryInvestment} {
		assert.True(t, ValidCategory(c))
	}
	assert.False(t, ValidCategory(CategoryAll), "All is a filter sentinel, not a listing category")
	assert.False(t, ValidCategory("Beachfront"))
}
