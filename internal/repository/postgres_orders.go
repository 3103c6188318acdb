package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/jackc/pgx/v5"
)

// Create inserts the order and its items in one transaction
func (s *PostgresStore) Create(ctx context.Context, order *models.Order) error {
	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO orders (id, status, subtotal, shipping_cost, tax_amount, total_amount,
				payment_intent_id, payment_status, notes, customer, shipping_address, created_at, updated_at)
			VALUES ($1, $2, $3::numeric, $4::numeric, $5::numeric, $6::numeric,
				NULLIF($7, ''), $8, $9, $10, $11, $12, $13)`,
			order.ID, string(order.Status),
			order.Subtotal.StringFixed(2), order.ShippingCost.StringFixed(2),
			order.TaxAmount.StringFixed(2), order.TotalAmount.StringFixed(2),
			order.PaymentIntentID, string(order.PaymentStatus), order.Notes,
			order.Customer, order.ShippingAddress, order.CreatedAt, order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		batch := &pgx.Batch{}
		for i, item := range order.Items {
			batch.Queue(`
				INSERT INTO order_items (id, order_id, product_id, position, name, price, quantity, image)
				VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8)`,
				item.ID, order.ID, item.ProductID, i, item.Name, item.Price.String(), item.Quantity, item.Image,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("insert order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return apperror.Persistence("create order", err)
	}
	return nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	var role string
	err := s.pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, password_hash, role, COALESCE(phone, ''),
			is_active, created_at, updated_at
		FROM users
		WHERE LOWER(email) = LOWER($1)`, email,
	).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &role, &u.Phone,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFoundOr("find user", err)
	}
	u.Role = models.Role(role)
	return &u, nil
}

// Stats counts users, products, orders and categories in one round trip
func (s *PostgresStore) Stats(ctx context.Context) (models.Stats, error) {
	var st models.Stats
	err := s.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COUNT(*) FROM categories)`,
	).Scan(&st.Users, &st.Products, &st.Orders, &st.Categories)
	if err != nil {
		return models.Stats{}, apperror.Persistence("load stats", err)
	}
	st.LastUpdated = time.Now().UTC()
	return st, nil
}

func (s *PostgresStore) UpsertCategory(ctx context.Context, c *models.Category) error {
	stampNew(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	err := s.pool.QueryRow(ctx, `
		INSERT INTO categories (id, name, description, slug, is_active, parent_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, NULLIF($6, ''), $7, $8)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			is_active = EXCLUDED.is_active,
			parent_id = EXCLUDED.parent_id,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`,
		c.ID, c.Name, c.Description, c.Slug, c.IsActive, c.ParentID, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return apperror.Persistence("upsert category "+c.Slug, err)
	}
	return nil
}

func (s *PostgresStore) UpsertProduct(ctx context.Context, p *models.Product) error {
	stampNew(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	specs := p.Specifications
	if specs == nil {
		specs = map[string]any{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	err := s.pool.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price, sku, inventory, images, brand,
			specifications, is_active, category_id, average_rating, total_reviews, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, NULLIF($8, ''), $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (sku) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			inventory = EXCLUDED.inventory,
			images = EXCLUDED.images,
			brand = EXCLUDED.brand,
			specifications = EXCLUDED.specifications,
			is_active = EXCLUDED.is_active,
			category_id = EXCLUDED.category_id,
			average_rating = EXCLUDED.average_rating,
			total_reviews = EXCLUDED.total_reviews,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`,
		p.ID, p.Name, p.Description, p.Price.String(), p.SKU, p.Inventory, images, p.Brand,
		specs, p.IsActive, p.CategoryID, p.AverageRating, p.TotalReviews, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return apperror.Persistence("upsert product "+p.SKU, err)
	}
	return nil
}

func (s *PostgresStore) UpsertUser(ctx context.Context, u *models.User) error {
	stampNew(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	err := s.pool.QueryRow(ctx, `
		INSERT INTO users (id, first_name, last_name, email, password_hash, role, phone, is_active,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			password_hash = EXCLUDED.password_hash,
			role = EXCLUDED.role,
			phone = EXCLUDED.phone,
			is_active = EXCLUDED.is_active,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, string(u.Role), u.Phone, u.IsActive,
		u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return apperror.Persistence("upsert user "+u.Email, err)
	}
	return nil
}

func (s *PostgresStore) UpsertReview(ctx context.Context, r *models.Review) error {
	stampNew(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	_, err := s.pool.Exec(ctx, `
		INSERT INTO reviews (id, product_id, user_id, rating, title, comment, is_verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			rating = EXCLUDED.rating,
			title = EXCLUDED.title,
			comment = EXCLUDED.comment,
			is_verified = EXCLUDED.is_verified,
			updated_at = EXCLUDED.updated_at`,
		r.ID, r.ProductID, r.UserID, r.Rating, r.Title, r.Comment, r.IsVerified, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return apperror.Persistence("upsert review "+r.ID, err)
	}
	return nil
}
