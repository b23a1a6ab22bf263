package services

import (
	"errors"
	"testing"

	"github.com/chudu2110/Coffee-Shop/entity"
)

func TestProcessCashUnderTender(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)
	orderID := checkoutOrder(t, orders, customer, latte, 1) // owes 49500

	if _, err := payments.ProcessCash(orderID, 40_000); !errors.Is(err, ErrInsufficientCash) {
		t.Fatalf("got %v, want ErrInsufficientCash", err)
	}

	rows, err := payments.GetPaymentsByOrderID(orderID)
	if err != nil {
		t.Fatalf("list payments: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("found %d payments, want 0: under-tender must persist nothing", len(rows))
	}
}

func TestProcessCashGivesChange(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)
	orderID := checkoutOrder(t, orders, customer, latte, 1) // owes 49500

	p, err := payments.ProcessCash(orderID, 50_000)
	if err != nil {
		t.Fatalf("process cash: %v", err)
	}
	if p.Status != entity.PaymentCompleted {
		t.Errorf("status = %s, want COMPLETED", p.Status)
	}
	if p.Amount != 49_500 {
		t.Errorf("amount = %d, must equal the order total 49500", p.Amount)
	}
	if p.ChangeGiven != 500 {
		t.Errorf("change = %d, want 500", p.ChangeGiven)
	}
	if p.TransactionReference == "" {
		t.Error("missing transaction reference")
	}
	if p.PaymentTime == nil {
		t.Error("missing payment time")
	}

	// the processor never touches the order's status
	o, err := orders.GetOrderByID(orderID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if o.Status != entity.OrderPending {
		t.Errorf("order status = %s, processor must leave it to the caller", o.Status)
	}
}

func TestProcessCardValidation(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)

	tests := []struct {
		name                string
		number, expiry, cvv string
	}{
		{"short number", "4111", "12/30", "123"},
		{"letters in number", "41111111111111xx", "12/30", "123"},
		{"bad expiry", "4111111111111111", "13/30", "123"},
		{"bad cvv", "4111111111111111", "12/30", "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := checkoutOrder(t, orders, customer, latte, 1)
			p, err := payments.ProcessCard(orderID, tt.number, tt.expiry, tt.cvv)
			if !errors.Is(err, ErrInvalidCard) {
				t.Fatalf("got %v, want ErrInvalidCard", err)
			}
			if p.Status != entity.PaymentFailed || p.FailureReason == "" {
				t.Errorf("rejection must record a FAILED payment with a reason, got %s %q", p.Status, p.FailureReason)
			}
		})
	}
}

func TestProcessCardAccepted(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)
	orderID := checkoutOrder(t, orders, customer, latte, 1)

	p, err := payments.ProcessCard(orderID, "4111111111111111", "12/30", "123")
	if err != nil {
		t.Fatalf("process card: %v", err)
	}
	if p.Status != entity.PaymentCompleted {
		t.Errorf("status = %s, want COMPLETED", p.Status)
	}
	if p.CardLastFourDigits != "1111" {
		t.Errorf("last four = %q, want 1111", p.CardLastFourDigits)
	}
	if p.AmountPaid != p.Amount {
		t.Errorf("amount paid = %d, want %d", p.AmountPaid, p.Amount)
	}
}

func TestProcessMobile(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)
	orderID := checkoutOrder(t, orders, customer, latte, 1)

	if _, err := payments.ProcessMobile(orderID, "  "); !errors.Is(err, ErrMissingReference) {
		t.Fatalf("blank reference: got %v, want ErrMissingReference", err)
	}

	p, err := payments.ProcessMobile(orderID, "MOMO_12345")
	if err != nil {
		t.Fatalf("process mobile: %v", err)
	}
	if p.Status != entity.PaymentCompleted || p.TransactionReference != "MOMO_12345" {
		t.Errorf("got %s %q", p.Status, p.TransactionReference)
	}
}

func TestProcessAgainstUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	seedTestData(t, db)
	payments := newTestPaymentService(t, db)

	if _, err := payments.ProcessCash(404, 100_000); !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("got %v, want ErrOrderNotFound", err)
	}
}

func TestRefundPayment(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)
	orderID := checkoutOrder(t, orders, customer, latte, 1)

	p, err := payments.ProcessCash(orderID, 50_000)
	if err != nil {
		t.Fatalf("process cash: %v", err)
	}

	if err := payments.RefundPayment(p.ID); err != nil {
		t.Fatalf("refund: %v", err)
	}
	refunded, err := payments.GetPaymentsByStatus(entity.PaymentRefunded)
	if err != nil {
		t.Fatalf("list refunded: %v", err)
	}
	if len(refunded) != 1 || refunded[0].ID != p.ID {
		t.Errorf("refunded = %v, want payment %d", refunded, p.ID)
	}

	// refunded is terminal, a second refund is rejected
	if err := payments.RefundPayment(p.ID); !errors.Is(err, ErrNotRefundable) {
		t.Errorf("double refund: got %v, want ErrNotRefundable", err)
	}
	if err := payments.RefundPayment(888); !errors.Is(err, ErrPaymentNotFound) {
		t.Errorf("unknown payment: got %v, want ErrPaymentNotFound", err)
	}
}

func TestCompletedPaymentAccruesLoyalty(t *testing.T) {
	db := newTestDB(t)
	customer, latte := seedTestData(t, db)
	orders := newTestOrderService(t, db)
	payments := newTestPaymentService(t, db)
	orderID := checkoutOrder(t, orders, customer, latte, 1) // total 49500

	if _, err := payments.ProcessCash(orderID, 50_000); err != nil {
		t.Fatalf("process cash: %v", err)
	}

	var c entity.Customer
	if err := db.First(&c, customer.ID).Error; err != nil {
		t.Fatalf("reload customer: %v", err)
	}
	if c.LoyaltyPoints != 49 {
		t.Errorf("loyalty points = %d, want 49", c.LoyaltyPoints)
	}
}
