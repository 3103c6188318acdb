package service

import (
	"github.com/Lixing-Zhang/storefront-api/internal/config"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/shopspring/decimal"
)

// Totals are the monetary fields of an order
type Totals struct {
	Subtotal     decimal.Decimal
	ShippingCost decimal.Decimal
	TaxAmount    decimal.Decimal
	TotalAmount  decimal.Decimal
}

// Pricer applies the flat shipping charge and tax rate to order lines
type Pricer struct {
	shipping decimal.Decimal
	taxRate  decimal.Decimal
}

func NewPricer(cfg config.PricingConfig) Pricer {
	return Pricer{shipping: cfg.ShippingCost, taxRate: cfg.TaxRate}
}

// Price sums the line totals and derives shipping, tax and the grand total.
// Tax is rounded half away from zero to cents.
func (p Pricer) Price(items []models.OrderItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	tax := subtotal.Mul(p.taxRate).Round(2)

	return Totals{
		Subtotal:     subtotal,
		ShippingCost: p.shipping,
		TaxAmount:    tax,
		TotalAmount:  subtotal.Add(p.shipping).Add(tax),
	}
}
