package repository

import (
	"time"

	"github.com/chudu2110/Coffee-Shop/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) ListOrdersForCustomer(customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Where("customer_id = ?", customerID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Where("status = ?", status).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListOrdersByDateRange(start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Where("order_time BETWEEN ? AND ?", start, end).
		Order("order_time DESC").Find(&out).Error
	return out, err
}

// UpdateStatusGuard flips the status only when the row still holds the
// expected current status, so a stale caller cannot clobber a newer state.
// completedAt, when non-nil, stamps the completion time in the same write.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus, completedAt *time.Time) (bool, error) {
	updates := map[string]any{"status": to}
	if completedAt != nil {
		updates["completion_time"] = completedAt
	}
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// SetStatus writes the status unconditionally. Reserved for the named
// administrative override; the completion time, once set, is kept.
func (r *OrderRepository) SetStatus(tx *gorm.DB, orderID uint, to entity.OrderStatus, completedAt *time.Time) (bool, error) {
	res := tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	if completedAt != nil {
		err := tx.Model(&entity.Order{}).
			Where("id = ? AND completion_time IS NULL", orderID).
			Update("completion_time", completedAt).Error
		if err != nil {
			return false, err
		}
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Preload("MenuItem").
		Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ---------------- Reporting ----------------

type OrderStats struct {
	TotalOrders     int64   `json:"totalOrders"`
	PendingOrders   int64   `json:"pendingOrders"`
	CompletedOrders int64   `json:"completedOrders"`
	CancelledOrders int64   `json:"cancelledOrders"`
	AvgOrderValue   float64 `json:"avgOrderValue"`
	TotalRevenue    int64   `json:"totalRevenue"`
}

func (r *OrderRepository) GetOrderStats() (*OrderStats, error) {
	var s OrderStats
	err := r.DB.Raw(`
		SELECT
			COUNT(*)                                                    AS total_orders,
			COALESCE(SUM(CASE WHEN status = 'PENDING'   THEN 1 END), 0) AS pending_orders,
			COALESCE(SUM(CASE WHEN status = 'COMPLETED' THEN 1 END), 0) AS completed_orders,
			COALESCE(SUM(CASE WHEN status = 'CANCELLED' THEN 1 END), 0) AS cancelled_orders,
			COALESCE(AVG(total_amount), 0)                              AS avg_order_value,
			COALESCE(SUM(total_amount), 0)                              AS total_revenue
		FROM orders
		WHERE deleted_at IS NULL
	`).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
