package entity

import "fmt"

type PaymentMethod string

const (
	PayCash   PaymentMethod = "CASH"
	PayCard   PaymentMethod = "CARD"
	PayMobile PaymentMethod = "MOBILE"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PayCash, PayCard, PayMobile:
		return m, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}
