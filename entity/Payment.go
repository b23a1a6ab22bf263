package entity

import (
	"time"

	"gorm.io/gorm"
)

// Payment records one settlement attempt against a persisted order. Amount
// always equals the order's total at creation time; AmountPaid and
// ChangeGiven are only meaningful for cash.
type Payment struct {
	gorm.Model
	OrderID uint  `gorm:"not null" json:"orderId"`
	Order   Order `json:"-"`

	Method PaymentMethod `gorm:"column:payment_method;size:20;not null" json:"paymentMethod"`
	Status PaymentStatus `gorm:"size:20;default:PENDING" json:"status"`

	Amount      int64 `gorm:"not null" json:"amount"`
	AmountPaid  int64 `gorm:"default:0" json:"amountPaid"`
	ChangeGiven int64 `gorm:"default:0" json:"changeGiven"`

	TransactionReference string     `gorm:"size:100" json:"transactionReference"`
	CardLastFourDigits   string     `gorm:"size:4" json:"cardLastFourDigits"`
	FailureReason        string     `json:"failureReason,omitempty"`
	PaymentTime          *time.Time `json:"paymentTime,omitempty"`
}

func (p *Payment) AfterFind(tx *gorm.DB) error {
	if _, err := ParsePaymentMethod(string(p.Method)); err != nil {
		return err
	}
	if _, err := ParsePaymentStatus(string(p.Status)); err != nil {
		return err
	}
	return nil
}
