package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrEmptyOrder        = apperror.Validation("Order must contain at least one item")
	ErrMissingEmail      = apperror.Validation("Customer email is required")
	ErrInvalidEmail      = apperror.Validation("Customer email is invalid")
	ErrInvalidProduct    = apperror.Validation("Every item needs a productId")
	ErrInvalidQuantity   = apperror.Validation("Quantity must be positive")
	ErrInsufficientStock = apperror.Validation("Insufficient stock")
)

// OrderService turns a guest checkout request into a priced, persisted order
type OrderService struct {
	products repository.ProductRepository
	orders   repository.OrderRepository
	pricer   Pricer
	validate *validator.Validate
	log      *slog.Logger
	now      func() time.Time
}

// NewOrderService creates a new order service
func NewOrderService(products repository.ProductRepository, orders repository.OrderRepository, pricer Pricer, log *slog.Logger) *OrderService {
	return &OrderService{
		products: products,
		orders:   orders,
		pricer:   pricer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		log:      log,
		now:      time.Now,
	}
}

// CreateOrder validates the request, prices it against current catalog data
// and persists the order with snapshot items. Nothing is written when any
// product is missing or inactive.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if err := checkStock(req.Items, products); err != nil {
		return nil, err
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product := products[line.ProductID]
		items = append(items, models.OrderItem{
			ID:        uuid.NewString(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Image:     product.FirstImage(),
		})
	}

	totals := s.pricer.Price(items)
	now := s.now().UTC()

	order := &models.Order{
		ID:              generateOrderID(),
		Status:          models.OrderStatusPending,
		Subtotal:        totals.Subtotal,
		ShippingCost:    totals.ShippingCost,
		TaxAmount:       totals.TaxAmount,
		TotalAmount:     totals.TotalAmount,
		PaymentIntentID: req.PaymentIntentID,
		PaymentStatus:   models.PaymentStatusPending,
		Notes:           "Customer email: " + req.CustomerInfo.Email,
		Customer:        req.CustomerInfo,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	s.log.Info("order created",
		"order_id", order.ID,
		"items_count", len(order.Items),
		"total", order.TotalAmount.StringFixed(2),
	)
	return order, nil
}

// validateRequest runs the structural checks that need no I/O
func (s *OrderService) validateRequest(req models.OrderRequest) error {
	if len(req.Items) == 0 {
		return ErrEmptyOrder
	}
	if strings.TrimSpace(req.CustomerInfo.Email) == "" {
		return ErrMissingEmail
	}

	if err := s.validate.Struct(req); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			switch verrs[0].Field() {
			case "Email":
				return ErrInvalidEmail
			case "ProductID":
				return ErrInvalidProduct
			case "Quantity":
				return ErrInvalidQuantity
			}
		}
		return apperror.Validation(err.Error())
	}
	return nil
}

// loadProducts fetches the distinct requested products in one call
func (s *OrderService) loadProducts(ctx context.Context, lines []models.OrderItemRequest) (map[string]models.Product, error) {
	ids := make([]string, 0, len(lines))
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	found, err := s.products.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	products := make(map[string]models.Product, len(found))
	for _, p := range found {
		products[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, apperror.NotFound("Product %s not found", id)
		}
	}
	return products, nil
}

// checkStock compares the summed quantity per product against its inventory
func checkStock(lines []models.OrderItemRequest, products map[string]models.Product) error {
	requested := make(map[string]int, len(products))
	for _, line := range lines {
		requested[line.ProductID] += line.Quantity
	}
	for _, line := range lines {
		product := products[line.ProductID]
		if qty := requested[line.ProductID]; qty > product.Inventory {
			return apperror.Wrap(ErrInsufficientStock,
				fmt.Sprintf("%s has %d in stock, %d requested", product.Name, product.Inventory, qty))
		}
	}
	return nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
