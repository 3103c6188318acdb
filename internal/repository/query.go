package repository

import (
	"strings"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// SortField is a product column the listing can be ordered by
type SortField string

const (
	SortByCreatedAt     SortField = "createdAt"
	SortByPrice         SortField = "price"
	SortByName          SortField = "name"
	SortByAverageRating SortField = "averageRating"
)

// ParseSortField returns the matching field, falling back to SortByCreatedAt.
func ParseSortField(s string) SortField {
	switch SortField(s) {
	case SortByPrice, SortByName, SortByAverageRating:
		return SortField(s)
	default:
		return SortByCreatedAt
	}
}

// ProductQuery is the persistence-level form of a product listing request:
// a predicate over active products, an ordering and a window.
// Count ignores Limit and Offset.
type ProductQuery struct {
	CategorySlug string
	Search       string
	Brand        string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	SortBy       SortField
	SortDesc     bool
	Limit        int
	Offset       int
}

// Matches reports whether p satisfies the predicate. categorySlug is the
// slug of p's category.
func (q ProductQuery) Matches(p models.Product, categorySlug string) bool {
	if !p.IsActive {
		return false
	}
	if q.CategorySlug != "" && categorySlug != q.CategorySlug {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(q.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if q.Brand != "" && !strings.EqualFold(p.Brand, q.Brand) {
		return false
	}
	if q.MinPrice != nil && p.Price.LessThan(*q.MinPrice) {
		return false
	}
	if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
		return false
	}
	return true
}

// Less orders a before b under the query's ordering, with id as tiebreaker.
func (q ProductQuery) Less(a, b models.Product) bool {
	c := compareBy(q.SortBy, a, b)
	if c == 0 {
		c = strings.Compare(a.ID, b.ID)
	}
	if q.SortDesc {
		return c > 0
	}
	return c < 0
}

func compareBy(field SortField, a, b models.Product) int {
	switch field {
	case SortByPrice:
		return a.Price.Cmp(b.Price)
	case SortByName:
		return strings.Compare(a.Name, b.Name)
	case SortByAverageRating:
		switch {
		case a.AverageRating < b.AverageRating:
			return -1
		case a.AverageRating > b.AverageRating:
			return 1
		}
		return 0
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}
