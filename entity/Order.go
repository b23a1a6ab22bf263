package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is a persisted order header. Subtotal, Tax and TotalAmount are
// derived by the pricing engine and are never written directly by callers.
type Order struct {
	gorm.Model
	CustomerID uint     `gorm:"not null" json:"customerId"`
	Customer   Customer `json:"-"`

	Status      OrderStatus `gorm:"size:20;default:PENDING" json:"status"`
	ServiceType ServiceType `gorm:"size:20;not null" json:"serviceType"`
	TableNumber int         `json:"tableNumber"` // 0 = no table (takeaway)

	Subtotal    int64 `json:"subtotal"`
	Tax         int64 `json:"tax"`
	Discount    int64 `gorm:"default:0" json:"discount"`
	TotalAmount int64 `json:"totalAmount"`

	SpecialInstructions string     `json:"specialInstructions"`
	OrderTime           time.Time  `json:"orderTime"`
	CompletionTime      *time.Time `json:"completionTime,omitempty"`

	OrderItems []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Payments   []Payment   `json:"-"`
}

// AfterFind rejects rows whose status or service type no longer matches a
// known tag instead of silently substituting a default.
func (o *Order) AfterFind(tx *gorm.DB) error {
	if _, err := ParseOrderStatus(string(o.Status)); err != nil {
		return err
	}
	if _, err := ParseServiceType(string(o.ServiceType)); err != nil {
		return err
	}
	return nil
}
