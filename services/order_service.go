package services

import (
	"errors"
	"time"

	"github.com/chudu2110/Coffee-Shop/entity"
	"github.com/chudu2110/Coffee-Shop/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderService is the persistence gateway for orders: it commits a cart as
// one atomic unit and reconstructs aggregates for lookups. Status changes go
// through AdvanceStatus/OverrideStatus (order_transitions.go).
type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository

	logger *zap.Logger
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{DB: db, Repo: repo, logger: logger}
}

// Checkout commits the cart: the order header and every line item are
// inserted inside one transaction, so a failed line insert rolls the header
// back too and no partial order is ever visible. Returns the generated
// order id.
func (s *OrderService) Checkout(cart *Cart) (uint, error) {
	if cart.IsEmpty() {
		return 0, ErrEmptyCart
	}

	src := cart.Order()
	order := entity.Order{
		CustomerID:          src.CustomerID,
		Status:              entity.OrderPending,
		ServiceType:         src.ServiceType,
		TableNumber:         src.TableNumber,
		Subtotal:            src.Subtotal,
		Tax:                 src.Tax,
		Discount:            src.Discount,
		TotalAmount:         src.TotalAmount,
		SpecialInstructions: src.SpecialInstructions,
		OrderTime:           time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}
		for _, line := range src.OrderItems {
			item := entity.OrderItem{
				OrderID:        order.ID,
				MenuItemID:     line.MenuItemID,
				Quantity:       line.Quantity,
				UnitPrice:      line.UnitPrice,
				TotalPrice:     line.TotalPrice,
				Customizations: line.Customizations,
				Size:           line.Size,
				IsHot:          line.IsHot,
			}
			if err := s.Repo.CreateOrderItem(tx, &item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("checkout rolled back",
			zap.Uint("customer_id", order.CustomerID),
			zap.Error(err))
		return 0, err
	}

	s.logger.Info("order committed",
		zap.Uint("order_id", order.ID),
		zap.Int64("total", order.TotalAmount),
		zap.Int("items", len(src.OrderItems)))
	return order.ID, nil
}

func (s *OrderService) GetOrderByID(orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (s *OrderService) GetOrdersByCustomer(customerID uint) ([]entity.Order, error) {
	return s.Repo.ListOrdersForCustomer(customerID)
}

func (s *OrderService) GetOrdersByStatus(status entity.OrderStatus) ([]entity.Order, error) {
	if _, err := entity.ParseOrderStatus(string(status)); err != nil {
		return nil, err
	}
	return s.Repo.ListOrdersByStatus(status)
}

func (s *OrderService) GetOrdersByDateRange(start, end time.Time) ([]entity.Order, error) {
	return s.Repo.ListOrdersByDateRange(start, end)
}

func (s *OrderService) GetOrderStats() (*repository.OrderStats, error) {
	return s.Repo.GetOrderStats()
}
