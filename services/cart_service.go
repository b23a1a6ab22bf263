package services

import (
	"errors"
	"time"

	"github.com/chudu2110/Coffee-Shop/entity"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrItemUnavailable  = errors.New("menu item is not available")
	ErrItemNotInCart    = errors.New("item is not in the cart")
	ErrNegativeDiscount = errors.New("discount cannot be negative")
	ErrTableNotAllowed  = errors.New("table number is only valid for dine-in")
	ErrEmptyCart        = errors.New("cart is empty")
)

// Cart is the in-memory order aggregate: one customer's uncommitted order,
// mutated by a single caller at a time. Totals are recomputed after every
// mutation; nothing touches storage until Checkout.
type Cart struct {
	order entity.Order
}

func NewCart(customerID uint, serviceType entity.ServiceType) *Cart {
	return &Cart{order: entity.Order{
		CustomerID:  customerID,
		ServiceType: serviceType,
		Status:      entity.OrderPending,
		OrderTime:   time.Now(),
	}}
}

// AddItem puts a configured item in the cart. A line for the same menu item
// absorbs the quantity and keeps its original unit price and configuration;
// otherwise a new line is appended with a freshly computed unit price.
func (c *Cart) AddItem(item *entity.MenuItem, quantity int, size entity.DrinkSize, isHot bool, customizations []string) error {
	if item == nil {
		return ErrItemNotInCart
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !item.IsAvailable {
		return ErrItemUnavailable
	}

	for i := range c.order.OrderItems {
		line := &c.order.OrderItems[i]
		if line.MenuItemID == item.ID {
			line.Quantity += quantity
			line.TotalPrice = line.UnitPrice * int64(line.Quantity)
			c.recompute()
			return nil
		}
	}

	unit := PriceLineItem(item.BasePrice, size, customizations)
	c.order.OrderItems = append(c.order.OrderItems, entity.OrderItem{
		MenuItemID:     item.ID,
		MenuItem:       *item,
		Quantity:       quantity,
		UnitPrice:      unit,
		TotalPrice:     unit * int64(quantity),
		Customizations: entity.JoinCustomizations(customizations),
		Size:           size,
		IsHot:          isHot,
	})
	c.recompute()
	return nil
}

// RemoveItem drops every line referencing the menu item.
func (c *Cart) RemoveItem(menuItemID uint) error {
	kept := c.order.OrderItems[:0]
	removed := false
	for _, line := range c.order.OrderItems {
		if line.MenuItemID == menuItemID {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		return ErrItemNotInCart
	}
	c.order.OrderItems = kept
	c.recompute()
	return nil
}

// UpdateQuantity sets the line's quantity; a non-positive quantity removes
// the line entirely, mirroring RemoveItem.
func (c *Cart) UpdateQuantity(menuItemID uint, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(menuItemID)
	}
	for i := range c.order.OrderItems {
		line := &c.order.OrderItems[i]
		if line.MenuItemID == menuItemID {
			line.Quantity = quantity
			line.TotalPrice = line.UnitPrice * int64(quantity)
			c.recompute()
			return nil
		}
	}
	return ErrItemNotInCart
}

func (c *Cart) SetDiscount(amount int64) error {
	if amount < 0 {
		return ErrNegativeDiscount
	}
	c.order.Discount = amount
	c.recompute()
	return nil
}

// SetTableNumber assigns a dine-in table. Takeaway orders keep the zero
// sentinel and reject assignment.
func (c *Cart) SetTableNumber(n int) error {
	if c.order.ServiceType != entity.DineIn || n <= 0 {
		return ErrTableNotAllowed
	}
	c.order.TableNumber = n
	return nil
}

func (c *Cart) SetSpecialInstructions(s string) {
	c.order.SpecialInstructions = s
}

// Clear empties the line items. The discount survives a clear.
func (c *Cart) Clear() {
	c.order.OrderItems = nil
	c.recompute()
}

func (c *Cart) IsEmpty() bool {
	return len(c.order.OrderItems) == 0
}

func (c *Cart) TotalItemCount() int {
	n := 0
	for _, line := range c.order.OrderItems {
		n += line.Quantity
	}
	return n
}

// Order exposes the aggregate for checkout and display.
func (c *Cart) Order() *entity.Order {
	return &c.order
}

func (c *Cart) recompute() {
	c.order.Subtotal, c.order.Tax, c.order.TotalAmount =
		RecomputeTotals(c.order.OrderItems, c.order.Discount)
}
