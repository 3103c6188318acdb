package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/jackc/pgx/v5"
)

const productColumns = `p.id, p.name, p.description, p.price, p.sku, p.inventory, p.images,
	COALESCE(p.brand, ''), p.specifications, p.is_active, p.category_id,
	p.average_rating, p.total_reviews, p.created_at, p.updated_at,
	c.id, c.name, c.slug`

const productFrom = `FROM products p JOIN categories c ON c.id = p.category_id`

var sortColumns = map[SortField]string{
	SortByCreatedAt:     "p.created_at",
	SortByPrice:         "p.price",
	SortByName:          "p.name",
	SortByAverageRating: "p.average_rating",
}

// whereClause renders the query predicate with positional arguments
func (q ProductQuery) whereClause() (string, []any) {
	conds := []string{"p.is_active = TRUE"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.CategorySlug != "" {
		conds = append(conds, "c.slug = "+arg(q.CategorySlug))
	}
	if q.Search != "" {
		n := arg("%" + escapeLike(q.Search) + "%")
		conds = append(conds, fmt.Sprintf("(p.name ILIKE %s OR p.description ILIKE %s)", n, n))
	}
	if q.Brand != "" {
		conds = append(conds, "LOWER(p.brand) = LOWER("+arg(q.Brand)+")")
	}
	if q.MinPrice != nil {
		conds = append(conds, "p.price >= "+arg(q.MinPrice.String())+"::numeric")
	}
	if q.MaxPrice != nil {
		conds = append(conds, "p.price <= "+arg(q.MaxPrice.String())+"::numeric")
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderClause renders the ORDER BY clause with id as a stable tiebreaker
func (q ProductQuery) orderClause() string {
	col, ok := sortColumns[q.SortBy]
	if !ok {
		col = sortColumns[SortByCreatedAt]
	}
	dir := "ASC"
	if q.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf("ORDER BY %s %s, p.id %s", col, dir, dir)
}

// FindPage returns one page of active products matching the query
func (s *PostgresStore) FindPage(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	where, args := q.whereClause()
	args = append(args, q.Limit, q.Offset)
	sql := fmt.Sprintf("SELECT %s %s %s %s LIMIT $%d OFFSET $%d",
		productColumns, productFrom, where, q.orderClause(), len(args)-1, len(args))

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.Persistence("find products", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, apperror.Persistence("scan products", err)
	}
	return products, nil
}

// Count returns the number of active products matching the query predicate
func (s *PostgresStore) Count(ctx context.Context, q ProductQuery) (int, error) {
	where, args := q.whereClause()
	var count int
	err := s.pool.QueryRow(ctx, "SELECT COUNT(*) "+productFrom+" "+where, args...).Scan(&count)
	if err != nil {
		return 0, apperror.Persistence("count products", err)
	}
	return count, nil
}

// FindActiveByID returns an active product with its category
func (s *PostgresStore) FindActiveByID(ctx context.Context, id string) (*models.Product, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+productColumns+" "+productFrom+" WHERE p.id = $1 AND p.is_active = TRUE", id)
	if err != nil {
		return nil, apperror.Persistence("find product", err)
	}
	product, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if err != nil {
		return nil, notFoundOr("find product", err)
	}
	return &product, nil
}

// FindActiveByIDs fetches the active products among ids in one query
func (s *PostgresStore) FindActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT "+productColumns+" "+productFrom+" WHERE p.id = ANY($1) AND p.is_active = TRUE", ids)
	if err != nil {
		return nil, apperror.Persistence("find products by id", err)
	}
	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, apperror.Persistence("scan products", err)
	}
	return products, nil
}

// RecentReviews returns the newest reviews of a product with reviewer names
func (s *PostgresStore) RecentReviews(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT r.id, r.product_id, r.user_id, r.rating, COALESCE(r.title, ''), COALESCE(r.comment, ''),
			r.is_verified, r.created_at, r.updated_at, u.first_name, u.last_name
		FROM reviews r
		JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2`, productID, limit)
	if err != nil {
		return nil, apperror.Persistence("find reviews", err)
	}
	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Review, error) {
		var r models.Review
		err := row.Scan(&r.ID, &r.ProductID, &r.UserID, &r.Rating, &r.Title, &r.Comment,
			&r.IsVerified, &r.CreatedAt, &r.UpdatedAt, &r.User.FirstName, &r.User.LastName)
		return r, err
	})
	if err != nil {
		return nil, apperror.Persistence("scan reviews", err)
	}
	return reviews, nil
}

// ListActive returns active categories ordered by name
func (s *PostgresStore) ListActive(ctx context.Context) ([]models.Category, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), slug, is_active, COALESCE(parent_id, ''),
			created_at, updated_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.Persistence("list categories", err)
	}
	categories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var c models.Category
		err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Slug, &c.IsActive, &c.ParentID,
			&c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
	if err != nil {
		return nil, apperror.Persistence("scan categories", err)
	}
	return categories, nil
}

func scanProduct(row pgx.CollectableRow) (models.Product, error) {
	var p models.Product
	var c models.CategorySummary
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.SKU, &p.Inventory, &p.Images,
		&p.Brand, &p.Specifications, &p.IsActive, &p.CategoryID,
		&p.AverageRating, &p.TotalReviews, &p.CreatedAt, &p.UpdatedAt,
		&c.ID, &c.Name, &c.Slug)
	if err != nil {
		return models.Product{}, err
	}
	p.Category = &c
	return p, nil
}
