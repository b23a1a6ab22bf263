package entity

import (
	"strings"

	"gorm.io/gorm"
)

// OrderItem is one priced line of an order. UnitPrice is resolved once when
// the line enters the cart and stays fixed until the line is reconfigured.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `gorm:"not null" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"` // preload for the priced reference

	Quantity   int   `gorm:"not null" json:"quantity"`
	UnitPrice  int64 `gorm:"not null" json:"unitPrice"`
	TotalPrice int64 `gorm:"not null" json:"totalPrice"`

	Customizations string    `json:"customizations"` // comma-joined add-on names
	Size           DrinkSize `gorm:"size:20" json:"size"`
	IsHot          bool      `json:"isHot"`
}

// CustomizationList splits the serialized add-on names.
func (i *OrderItem) CustomizationList() []string {
	if i.Customizations == "" {
		return nil
	}
	return strings.Split(i.Customizations, ",")
}

// JoinCustomizations serializes add-on names for the customizations column.
func JoinCustomizations(names []string) string {
	return strings.Join(names, ",")
}
