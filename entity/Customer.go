package entity

import "gorm.io/gorm"

type Customer struct {
	gorm.Model
	Name          string `gorm:"size:100;not null" json:"name"`
	Email         string `gorm:"size:100;uniqueIndex" json:"email"`
	Phone         string `gorm:"size:20" json:"phone"`
	LoyaltyPoints int64  `gorm:"default:0" json:"loyaltyPoints"`
}
