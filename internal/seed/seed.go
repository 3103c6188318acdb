// Package seed loads the demo catalog: categories, products, an admin and a
// customer account, and a handful of reviews.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
)

// Hasher hashes plaintext passwords before they are stored.
type Hasher interface {
	Hash(password string) (string, error)
}

// Summary reports how many records Apply wrote.
type Summary struct {
	Categories int
	Products   int
	Users      int
	Reviews    int
}

// Apply upserts the demo data. Running it twice leaves the store unchanged
// apart from updatedAt timestamps.
func Apply(ctx context.Context, store repository.Seeder, hasher Hasher) (Summary, error) {
	var sum Summary

	categoryIDs := make(map[string]string, len(categories))
	for _, cs := range categories {
		c := &models.Category{Name: cs.Name, Description: cs.Description, Slug: cs.Slug, IsActive: true}
		if err := store.UpsertCategory(ctx, c); err != nil {
			return sum, err
		}
		categoryIDs[c.Slug] = c.ID
		sum.Categories++
	}

	userIDs := make(map[string]string, len(users))
	for _, us := range users {
		u, err := newUser(us, hasher)
		if err != nil {
			return sum, err
		}
		if err := store.UpsertUser(ctx, u); err != nil {
			return sum, err
		}
		userIDs[u.Email] = u.ID
		sum.Users++
	}

	// Stagger createdAt so the default newest-first listing is deterministic.
	base := time.Now().UTC().Add(-time.Duration(len(products)) * time.Minute)
	productIDs := make(map[string]string, len(products))
	for i, ps := range products {
		categoryID, ok := categoryIDs[ps.CategorySlug]
		if !ok {
			return sum, fmt.Errorf("product %s: unknown category %q", ps.SKU, ps.CategorySlug)
		}
		if ps.Price.IsNegative() || ps.Inventory < 0 {
			return sum, fmt.Errorf("product %s: price and inventory must not be negative", ps.SKU)
		}
		p := &models.Product{
			Name:           ps.Name,
			Description:    ps.Description,
			Price:          ps.Price,
			SKU:            ps.SKU,
			Inventory:      ps.Inventory,
			Images:         ps.Images,
			Brand:          ps.Brand,
			Specifications: ps.Specifications,
			IsActive:       true,
			CategoryID:     categoryID,
			AverageRating:  ps.AverageRating,
			TotalReviews:   ps.TotalReviews,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.UpsertProduct(ctx, p); err != nil {
			return sum, err
		}
		productIDs[p.SKU] = p.ID
		sum.Products++
	}

	for i, rs := range reviews {
		r := &models.Review{
			ID:         rs.ID,
			ProductID:  productIDs[rs.SKU],
			UserID:     userIDs[rs.Email],
			Rating:     rs.Rating,
			Title:      rs.Title,
			Comment:    rs.Comment,
			IsVerified: rs.Verified,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if r.ProductID == "" || r.UserID == "" {
			return sum, fmt.Errorf("review %s: unknown product or user", rs.ID)
		}
		if err := store.UpsertReview(ctx, r); err != nil {
			return sum, err
		}
		sum.Reviews++
	}

	return sum, nil
}

// AdminUser builds an active ADMIN account with a hashed password.
func AdminUser(email, password, firstName, lastName string, hasher Hasher) (*models.User, error) {
	return newUser(userSeed{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Admin:     true,
	}, hasher)
}

func newUser(us userSeed, hasher Hasher) (*models.User, error) {
	hash, err := hasher.Hash(us.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password for %s: %w", us.Email, err)
	}
	role := models.RoleCustomer
	if us.Admin {
		role = models.RoleAdmin
	}
	return &models.User{
		FirstName:    us.FirstName,
		LastName:     us.LastName,
		Email:        us.Email,
		PasswordHash: hash,
		Role:         role,
		Phone:        us.Phone,
		IsActive:     true,
	}, nil
}
