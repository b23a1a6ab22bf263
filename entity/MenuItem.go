package entity

import "gorm.io/gorm"

// MenuItem is a catalog entry. BasePrice is the small-size price in VND;
// size and add-on surcharges are resolved by the pricing engine at cart
// time, so catalog edits never rewrite committed order lines.
type MenuItem struct {
	gorm.Model
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `json:"description"`
	BasePrice   int64  `gorm:"not null" json:"basePrice"`
	Category    string `gorm:"size:50;index" json:"category"`
	ItemType    string `gorm:"size:20" json:"itemType"` // Drink or Food
	CoffeeType  string `gorm:"size:50" json:"coffeeType,omitempty"`
	IsAvailable bool   `gorm:"default:true" json:"isAvailable"`
}
