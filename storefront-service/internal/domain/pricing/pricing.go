// Package pricing derives prices the backend never stores: the effective
// price of a discounted book and the totals of a cart.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/azaliaz/bookly-storefront/storefront-service/internal/domain/models"
)

var (
	hundred = decimal.NewFromInt(100)
	// Shipping is free everywhere.
	shipping = decimal.Zero
)

type Totals struct {
	Subtotal decimal.Decimal
	Savings  decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
	// Count is the number of copies in the cart, shown on the cart badge.
	Count int
}

// discountRate returns the discount as a fraction, clamped to [0, 1].
func discountRate(b models.Book) decimal.Decimal {
	d := b.Discount
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(hundred) {
		d = hundred
	}
	return d.Div(hundred)
}

// EffectivePrice is price * (1 - discount/100) rounded to cents.
func EffectivePrice(b models.Book) decimal.Decimal {
	return b.Price.Mul(decimal.NewFromInt(1).Sub(discountRate(b))).Round(2)
}

// DiscountAmount is what one copy saves against the list price.
func DiscountAmount(b models.Book) decimal.Decimal {
	return b.Price.Round(2).Sub(EffectivePrice(b))
}

func HasDiscount(b models.Book) bool {
	return b.Discount.IsPositive()
}

// Compute totals a cart. Lines without a populated book and non-positive
// quantities contribute nothing.
func Compute(items []models.CartItem) Totals {
	t := Totals{
		Subtotal: decimal.Zero,
		Savings:  decimal.Zero,
		Shipping: shipping,
	}
	for _, item := range items {
		if item.Book == nil || item.Quantity <= 0 {
			continue
		}
		qty := decimal.NewFromInt(int64(item.Quantity))
		t.Subtotal = t.Subtotal.Add(EffectivePrice(*item.Book).Mul(qty))
		if HasDiscount(*item.Book) {
			t.Savings = t.Savings.Add(DiscountAmount(*item.Book).Mul(qty))
		}
		t.Count += item.Quantity
	}
	t.Total = t.Subtotal.Add(t.Shipping)
	return t
}
