package repository

import (
	"github.com/chudu2110/Coffee-Shop/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) CreatePayment(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) GetPaymentByID(paymentID uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := r.DB.First(&p, paymentID).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ListPaymentsByOrderID(orderID uint) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *PaymentRepository) ListPaymentsByStatus(status entity.PaymentStatus) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("status = ?", status).
		Order("id DESC").Find(&out).Error
	return out, err
}

// Refund flips COMPLETED to REFUNDED; the guard keeps every other state,
// including an already refunded payment, untouched.
func (r *PaymentRepository) Refund(tx *gorm.DB, paymentID uint) (bool, error) {
	res := tx.Model(&entity.Payment{}).
		Where("id = ? AND status = ?", paymentID, entity.PaymentCompleted).
		Update("status", entity.PaymentRefunded)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

type PaymentStats struct {
	TotalPayments     int64   `json:"totalPayments"`
	CompletedPayments int64   `json:"completedPayments"`
	RefundedPayments  int64   `json:"refundedPayments"`
	TotalRevenue      int64   `json:"totalRevenue"`
	AvgPaymentAmount  float64 `json:"avgPaymentAmount"`
}

func (r *PaymentRepository) GetPaymentStats() (*PaymentStats, error) {
	var s PaymentStats
	err := r.DB.Raw(`
		SELECT
			COUNT(*)                                                    AS total_payments,
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 END), 0) AS completed_payments,
			COALESCE(SUM(CASE WHEN status = 'REFUNDED'  THEN 1 END), 0) AS refunded_payments,
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN amount END), 0) AS total_revenue,
			COALESCE(AVG(CASE WHEN status = 'COMPLETED' THEN amount END), 0) AS avg_payment_amount
		FROM payments
		WHERE deleted_at IS NULL
	`).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
