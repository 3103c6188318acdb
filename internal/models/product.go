package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices are emitted as JSON numbers, which is what the storefront client expects.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog item
type Product struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Price          decimal.Decimal  `json:"price"`
	SKU            string           `json:"sku"`
	Inventory      int              `json:"inventory"`
	Images         []string         `json:"images"`
	Brand          string           `json:"brand,omitempty"`
	Specifications map[string]any   `json:"specifications,omitempty"`
	IsActive       bool             `json:"isActive"`
	CategoryID     string           `json:"categoryId"`
	Category       *CategorySummary `json:"category,omitempty"`
	AverageRating  float64          `json:"averageRating"`
	TotalReviews   int              `json:"totalReviews"`
	Reviews        []Review         `json:"reviews,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

// FirstImage returns the primary image URL or an empty string
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Category is a node in the category tree
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Slug        string    `json:"slug"`
	IsActive    bool      `json:"isActive"`
	ParentID    string    `json:"parentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategorySummary is the category data embedded in product responses
type CategorySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Review is a product review. Only the reviewer's name is exposed.
type Review struct {
	ID         string       `json:"id"`
	ProductID  string       `json:"productId"`
	UserID     string       `json:"userId"`
	Rating     int          `json:"rating"`
	Title      string       `json:"title,omitempty"`
	Comment    string       `json:"comment,omitempty"`
	IsVerified bool         `json:"isVerified"`
	User       ReviewAuthor `json:"user"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

type ReviewAuthor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PaginationInfo is derived from a page request and a total count
type PaginationInfo struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	Limit       int  `json:"limit"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// NewPaginationInfo computes page metadata. limit must be at least 1.
func NewPaginationInfo(page, limit, totalCount int) PaginationInfo {
	totalPages := (totalCount + limit - 1) / limit
	return PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
