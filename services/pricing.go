package services

import (
	"github.com/chudu2110/Coffee-Shop/entity"
)

// Pricing is pure arithmetic on int64 VND amounts. VND has no sub-unit, so
// the only rounding point is the VAT line, which rounds half up.

const (
	// VATPercent is the fixed 10% VAT applied to every order subtotal.
	VATPercent = 10

	// SizeSurchargeMedium and SizeSurchargeLarge are added on top of the
	// catalog base price. Small cups sell at base price.
	SizeSurchargeMedium = 5_000
	SizeSurchargeLarge  = 10_000

	// CustomizationSurcharge is the flat per-add-on price (extra shot,
	// caramel, vanilla, whipped cream all sell at the same rate).
	CustomizationSurcharge = 5_000
)

// PriceLineItem resolves the unit price of a configured item: base price
// plus the size delta plus the flat surcharge per selected add-on.
// Temperature is free. The result never goes below zero.
func PriceLineItem(basePrice int64, size entity.DrinkSize, customizations []string) int64 {
	price := basePrice
	switch size {
	case entity.SizeMedium:
		price += SizeSurchargeMedium
	case entity.SizeLarge:
		price += SizeSurchargeLarge
	}
	price += int64(len(customizations)) * CustomizationSurcharge
	if price < 0 {
		price = 0
	}
	return price
}

// RecomputeTotals derives subtotal, tax and total from the line items and
// the discount. It has no side effects and is idempotent: the same input
// always produces the same three amounts. An empty cart prices to zero.
func RecomputeTotals(items []entity.OrderItem, discount int64) (subtotal, tax, total int64) {
	for _, it := range items {
		subtotal += it.UnitPrice * int64(it.Quantity)
	}
	tax = (subtotal*VATPercent + 50) / 100
	total = subtotal + tax - discount
	if total < 0 {
		total = 0
	}
	return subtotal, tax, total
}
