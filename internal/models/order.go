package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// OrderRequest represents an incoming guest checkout request
type OrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"dive"`
	CustomerInfo    CustomerInfo       `json:"customerInfo"`
	ShippingAddress *ShippingAddress   `json:"shippingAddress,omitempty"`
	PaymentIntentID string             `json:"paymentIntentId,omitempty"`
}

// OrderItemRequest is a single requested line
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type CustomerInfo struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone,omitempty"`
}

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Order represents a placed order.
// TotalAmount is Subtotal + ShippingCost + TaxAmount.
type Order struct {
	ID              string           `json:"id"`
	Status          OrderStatus      `json:"status"`
	Subtotal        decimal.Decimal  `json:"subtotal"`
	ShippingCost    decimal.Decimal  `json:"shippingCost"`
	TaxAmount       decimal.Decimal  `json:"taxAmount"`
	TotalAmount     decimal.Decimal  `json:"totalAmount"`
	PaymentIntentID string           `json:"paymentIntentId,omitempty"`
	PaymentStatus   PaymentStatus    `json:"paymentStatus"`
	Notes           string           `json:"notes,omitempty"`
	Customer        CustomerInfo     `json:"customer"`
	ShippingAddress *ShippingAddress `json:"shippingAddress,omitempty"`
	Items           []OrderItem      `json:"items"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// OrderNumber is the human-facing reference: the last 8 characters of the id, upper-cased
func (o Order) OrderNumber() string {
	id := o.ID
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	return strings.ToUpper(id)
}

// OrderItem is a snapshot of the product at order time
type OrderItem struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// LineTotal returns price × quantity
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
