package entity

import "fmt"

// PaymentStatus: PENDING settles to COMPLETED or FAILED; REFUNDED is only
// reachable from COMPLETED. COMPLETED, FAILED and REFUNDED are terminal.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch st := PaymentStatus(s); st {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return st, nil
	}
	return "", fmt.Errorf("unknown payment status %q", s)
}
