package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100

	// MaxPage keeps (page-1)*limit within int range.
	MaxPage = math.MaxInt / MaxLimit

	// RecentReviewLimit bounds the reviews attached to a product detail.
	RecentReviewLimit = 10
)

var (
	ErrProductNotFound = apperror.NotFound("Product not found")
)

// ListProductsParams carries the raw query string values of a listing
// request. Values that do not parse fall back to defaults.
type ListProductsParams struct {
	Category  string
	Search    string
	Brand     string
	MinPrice  string
	MaxPrice  string
	SortBy    string
	SortOrder string
	Page      string
	Limit     string
}

// ProductPage is one page of a product listing
type ProductPage struct {
	Products   []models.Product
	Pagination models.PaginationInfo
}

// ProductService handles business logic for products
type ProductService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	log        *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(products repository.ProductRepository, categories repository.CategoryRepository, log *slog.Logger) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		log:        log,
	}
}

// ListProducts returns one page of active products matching params together
// with pagination metadata. The page and the total count are loaded
// concurrently; if either fails no partial page is returned.
func (s *ProductService) ListProducts(ctx context.Context, params ListProductsParams) (*ProductPage, error) {
	page, limit := parsePagination(params.Page, params.Limit)
	q := buildQuery(params)
	q.Limit = limit
	q.Offset = (page - 1) * limit

	var (
		products []models.Product
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.products.FindPage(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.products.Count(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if products == nil {
		products = []models.Product{}
	}

	return &ProductPage{
		Products:   products,
		Pagination: models.NewPaginationInfo(page, limit, total),
	}, nil
}

// GetProduct returns an active product with its category and most recent reviews
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.products.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	reviews, err := s.products.RecentReviews(ctx, product.ID, RecentReviewLimit)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	product.Reviews = reviews

	return product, nil
}

// ListCategories returns active categories ordered by name
func (s *ProductService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func parsePagination(rawPage, rawLimit string) (page, limit int) {
	page = min(parsePositive(rawPage, DefaultPage), MaxPage)
	limit = min(parsePositive(rawLimit, DefaultLimit), MaxLimit)
	return page, limit
}

func parsePositive(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func buildQuery(params ListProductsParams) repository.ProductQuery {
	q := repository.ProductQuery{
		CategorySlug: strings.TrimSpace(params.Category),
		Search:       strings.TrimSpace(params.Search),
		Brand:        strings.TrimSpace(params.Brand),
		MinPrice:     parsePrice(params.MinPrice),
		MaxPrice:     parsePrice(params.MaxPrice),
		SortBy:       repository.ParseSortField(params.SortBy),
		SortDesc:     !strings.EqualFold(strings.TrimSpace(params.SortOrder), "asc"),
	}
	return q
}

func parsePrice(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return nil
	}
	return &d
}
