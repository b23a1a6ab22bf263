package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/chudu2110/Coffee-Shop/entity"
	"github.com/chudu2110/Coffee-Shop/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrInsufficientCash = errors.New("cash tendered is below the amount owed")
	ErrInvalidCard      = errors.New("card details are not valid")
	ErrMissingReference = errors.New("mobile payment reference is required")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrNotRefundable    = errors.New("only a completed payment can be refunded")
)

// loyaltyDivisor: one loyalty point per 1.000đ settled.
const loyaltyDivisor = 1_000

// PaymentService validates and records payments against persisted orders.
// Card and mobile acceptance is simulated; a real gateway client would
// replace the structural checks. The processor never advances the order's
// status; the caller does that after observing success.
type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	Orders    *repository.OrderRepository
	Customers *repository.CustomerRepository

	logger *zap.Logger
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orders *repository.OrderRepository, customers *repository.CustomerRepository, logger *zap.Logger) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, Orders: orders, Customers: customers, logger: logger}
}

// ProcessCash settles an order in cash. Tendering less than the amount owed
// fails without persisting anything; on success the change is the surplus.
func (s *PaymentService) ProcessCash(orderID uint, tendered int64) (*entity.Payment, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}
	owed := order.TotalAmount
	if tendered < owed {
		return nil, ErrInsufficientCash
	}

	p := &entity.Payment{
		OrderID:              order.ID,
		Method:               entity.PayCash,
		Status:               entity.PaymentCompleted,
		Amount:               owed,
		AmountPaid:           tendered,
		ChangeGiven:          tendered - owed,
		TransactionReference: newTransactionReference(),
	}
	if err := s.record(order, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ProcessCard settles an order by card. Only structural well-formedness is
// checked; a malformed card records a FAILED payment with the reason and
// returns ErrInvalidCard.
func (s *PaymentService) ProcessCard(orderID uint, cardNumber, expiry, cvv string) (*entity.Payment, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}

	p := &entity.Payment{
		OrderID: order.ID,
		Method:  entity.PayCard,
		Amount:  order.TotalAmount,
	}
	if reason := cardRejection(cardNumber, expiry, cvv); reason != "" {
		p.Status = entity.PaymentFailed
		p.FailureReason = reason
		if err := s.record(order, p); err != nil {
			return nil, err
		}
		return p, ErrInvalidCard
	}

	p.Status = entity.PaymentCompleted
	p.AmountPaid = order.TotalAmount
	p.CardLastFourDigits = cardNumber[len(cardNumber)-4:]
	p.TransactionReference = newTransactionReference()
	if err := s.record(order, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ProcessMobile settles an order through a mobile wallet, keyed by the
// caller-supplied transaction reference.
func (s *PaymentService) ProcessMobile(orderID uint, reference string) (*entity.Payment, error) {
	order, err := s.loadOrder(orderID)
	if err != nil {
		return nil, err
	}

	p := &entity.Payment{
		OrderID: order.ID,
		Method:  entity.PayMobile,
		Amount:  order.TotalAmount,
	}
	if strings.TrimSpace(reference) == "" {
		p.Status = entity.PaymentFailed
		p.FailureReason = "missing transaction reference"
		if err := s.record(order, p); err != nil {
			return nil, err
		}
		return p, ErrMissingReference
	}

	p.Status = entity.PaymentCompleted
	p.AmountPaid = order.TotalAmount
	p.TransactionReference = reference
	if err := s.record(order, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RefundPayment moves a completed payment to REFUNDED. Failed, pending
// and already refunded payments are not refundable.
func (s *PaymentService) RefundPayment(paymentID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Repo.GetPaymentByID(paymentID); errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		} else if err != nil {
			return err
		}
		ok, err := s.Repo.Refund(tx, paymentID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotRefundable
		}
		s.logger.Info("payment refunded", zap.Uint("payment_id", paymentID))
		return nil
	})
}

func (s *PaymentService) GetPaymentsByOrderID(orderID uint) ([]entity.Payment, error) {
	return s.Repo.ListPaymentsByOrderID(orderID)
}

func (s *PaymentService) GetPaymentsByStatus(status entity.PaymentStatus) ([]entity.Payment, error) {
	if _, err := entity.ParsePaymentStatus(string(status)); err != nil {
		return nil, err
	}
	return s.Repo.ListPaymentsByStatus(status)
}

func (s *PaymentService) GetPaymentStats() (*repository.PaymentStats, error) {
	return s.Repo.GetPaymentStats()
}

func (s *PaymentService) loadOrder(orderID uint) (*entity.Order, error) {
	o, err := s.Orders.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

// record persists the payment row and, for settled payments, accrues
// loyalty points in the same transaction.
func (s *PaymentService) record(order *entity.Order, p *entity.Payment) error {
	now := time.Now()
	p.PaymentTime = &now

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreatePayment(tx, p); err != nil {
			return err
		}
		if p.Status == entity.PaymentCompleted && p.Amount >= loyaltyDivisor {
			return s.Customers.AddLoyaltyPoints(tx, order.CustomerID, p.Amount/loyaltyDivisor)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("payment not recorded",
			zap.Uint("order_id", order.ID),
			zap.Error(err))
		return err
	}

	s.logger.Info("payment recorded",
		zap.Uint("payment_id", p.ID),
		zap.Uint("order_id", order.ID),
		zap.String("method", string(p.Method)),
		zap.String("status", string(p.Status)),
		zap.Int64("amount", p.Amount))
	return nil
}

// cardRejection returns a human-readable reason when the card details are
// structurally malformed, or "" when they pass. This is a stand-in for a
// gateway client, not an authorization.
func cardRejection(cardNumber, expiry, cvv string) string {
	if n := len(cardNumber); n < 13 || n > 19 || !digitsOnly(cardNumber) {
		return "card number must be 13-19 digits"
	}
	if !validExpiry(expiry) {
		return fmt.Sprintf("expiry %q is not a valid MM/YY", expiry)
	}
	if n := len(cvv); n < 3 || n > 4 || !digitsOnly(cvv) {
		return "cvv must be 3 or 4 digits"
	}
	return ""
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func validExpiry(expiry string) bool {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	_, err = strconv.Atoi(parts[1])
	return err == nil
}

func newTransactionReference() string {
	return "TXN-" + uuid.NewString()
}
