package repository

import (
	"testing"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		in   string
		want SortField
	}{
		{"price", SortByPrice},
		{"name", SortByName},
		{"averageRating", SortByAverageRating},
		{"createdAt", SortByCreatedAt},
		{"", SortByCreatedAt},
		{"inventory; DROP TABLE products", SortByCreatedAt},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseSortField(tt.in), tt.in)
	}
}

func TestProductQuery_Matches(t *testing.T) {
	phone := models.Product{
		ID:          "p1",
		Name:        "iPhone 15 Pro",
		Description: "Latest iPhone with titanium design",
		Price:       decimal.RequireFromString("999.99"),
		Brand:       "Apple",
		IsActive:    true,
	}
	inactive := phone
	inactive.IsActive = false

	tests := []struct {
		name    string
		query   ProductQuery
		product models.Product
		slug    string
		want    bool
	}{
		{name: "empty query matches active", product: phone, slug: "electronics", want: true},
		{name: "inactive never matches", product: inactive, slug: "electronics", want: false},
		{name: "slug match", query: ProductQuery{CategorySlug: "electronics"}, product: phone, slug: "electronics", want: true},
		{name: "slug mismatch", query: ProductQuery{CategorySlug: "clothing"}, product: phone, slug: "electronics", want: false},
		{name: "slug is exact", query: ProductQuery{CategorySlug: "Electronics"}, product: phone, slug: "electronics", want: false},
		{name: "search is case-insensitive substring of name", query: ProductQuery{Search: "phone"}, product: phone, want: true},
		{name: "search matches description", query: ProductQuery{Search: "TITANIUM"}, product: phone, want: true},
		{name: "search miss", query: ProductQuery{Search: "galaxy"}, product: phone, want: false},
		{name: "brand ignores case", query: ProductQuery{Brand: "apple"}, product: phone, want: true},
		{name: "brand mismatch", query: ProductQuery{Brand: "Samsung"}, product: phone, want: false},
		{name: "min price inclusive", query: ProductQuery{MinPrice: decPtr("999.99")}, product: phone, want: true},
		{name: "min price excludes", query: ProductQuery{MinPrice: decPtr("1000")}, product: phone, want: false},
		{name: "max price inclusive", query: ProductQuery{MaxPrice: decPtr("999.99")}, product: phone, want: true},
		{name: "max price excludes", query: ProductQuery{MaxPrice: decPtr("500")}, product: phone, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Matches(tt.product, tt.slug))
		})
	}
}

func TestProductQuery_Less(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := models.Product{ID: "a", Name: "Alpha", Price: decimal.NewFromInt(20), AverageRating: 4.5, CreatedAt: base}
	b := models.Product{ID: "b", Name: "Beta", Price: decimal.NewFromInt(10), AverageRating: 4.8, CreatedAt: base.Add(time.Hour)}
	tie := models.Product{ID: "c", Name: "Alpha", Price: decimal.NewFromInt(20), AverageRating: 4.5, CreatedAt: base}

	tests := []struct {
		name  string
		query ProductQuery
		x, y  models.Product
		want  bool
	}{
		{name: "createdAt desc puts newest first", query: ProductQuery{SortDesc: true}, x: b, y: a, want: true},
		{name: "createdAt asc", query: ProductQuery{}, x: a, y: b, want: true},
		{name: "price asc", query: ProductQuery{SortBy: SortByPrice}, x: b, y: a, want: true},
		{name: "price desc", query: ProductQuery{SortBy: SortByPrice, SortDesc: true}, x: a, y: b, want: true},
		{name: "name asc", query: ProductQuery{SortBy: SortByName}, x: a, y: b, want: true},
		{name: "rating desc", query: ProductQuery{SortBy: SortByAverageRating, SortDesc: true}, x: b, y: a, want: true},
		{name: "tie broken by id asc", query: ProductQuery{SortBy: SortByName}, x: a, y: tie, want: true},
		{name: "tie broken by id desc", query: ProductQuery{SortBy: SortByName, SortDesc: true}, x: tie, y: a, want: true},
		{name: "irreflexive", query: ProductQuery{}, x: a, y: a, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.Less(tt.x, tt.y))
		})
	}
}

func TestProductQuery_WhereClause(t *testing.T) {
	q := ProductQuery{
		CategorySlug: "electronics",
		Search:       "50%_off",
		Brand:        "Apple",
		MinPrice:     decPtr("10"),
		MaxPrice:     decPtr("99.5"),
	}

	where, args := q.whereClause()

	assert.Equal(t, "WHERE p.is_active = TRUE AND c.slug = $1 AND (p.name ILIKE $2 OR p.description ILIKE $2)"+
		" AND LOWER(p.brand) = LOWER($3) AND p.price >= $4::numeric AND p.price <= $5::numeric", where)
	assert.Equal(t, []any{"electronics", `%50\%\_off%`, "Apple", "10", "99.5"}, args)
}

func TestProductQuery_WhereClause_Empty(t *testing.T) {
	where, args := ProductQuery{}.whereClause()
	assert.Equal(t, "WHERE p.is_active = TRUE", where)
	assert.Empty(t, args)
}

func TestProductQuery_OrderClause(t *testing.T) {
	assert.Equal(t, "ORDER BY p.created_at DESC, p.id DESC", ProductQuery{SortDesc: true}.orderClause())
	assert.Equal(t, "ORDER BY p.price ASC, p.id ASC", ProductQuery{SortBy: SortByPrice}.orderClause())
	assert.Equal(t, "ORDER BY p.created_at ASC, p.id ASC", ProductQuery{SortBy: "bogus"}.orderClause())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\\b\%c\_d`, escapeLike(`a\b%c_d`))
	assert.Equal(t, "plain", escapeLike("plain"))
}
