package services

import (
	"errors"
	"time"

	"github.com/chudu2110/Coffee-Shop/entity"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrIllegalTransition = errors.New("illegal order status transition")
	ErrStatusConflict    = errors.New("order status changed underneath the update")
)

// orderFlow is the forward lifecycle. Cancellation is allowed from any
// non-terminal state; COMPLETED and CANCELLED accept nothing.
var orderFlow = map[entity.OrderStatus]entity.OrderStatus{
	entity.OrderPending:   entity.OrderConfirmed,
	entity.OrderConfirmed: entity.OrderPreparing,
	entity.OrderPreparing: entity.OrderReady,
	entity.OrderReady:     entity.OrderCompleted,
}

// CanTransition reports whether the lifecycle permits moving from one
// status to another.
func CanTransition(from, to entity.OrderStatus) bool {
	if from.IsTerminal() {
		return false
	}
	if to == entity.OrderCancelled {
		return true
	}
	return orderFlow[from] == to
}

// AdvanceStatus moves a persisted order one step through its lifecycle.
// The legality check runs here, before anything reaches storage, and the
// persisted flip is guarded against concurrent writers. Arriving in
// COMPLETED stamps the completion time; since COMPLETED accepts no further
// transition, the stamp can only ever happen once.
func (s *OrderService) AdvanceStatus(orderID uint, to entity.OrderStatus) error {
	if _, err := entity.ParseOrderStatus(string(to)); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.GetOrderByID(orderID)
		if err != nil {
			return err
		}
		if !CanTransition(o.Status, to) {
			return ErrIllegalTransition
		}

		var completedAt *time.Time
		if to == entity.OrderCompleted && o.CompletionTime == nil {
			now := time.Now()
			completedAt = &now
		}

		ok, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to, completedAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrStatusConflict
		}

		s.logger.Info("order status advanced",
			zap.Uint("order_id", o.ID),
			zap.String("from", string(o.Status)),
			zap.String("to", string(to)))
		return nil
	})
}

// OverrideStatus is the administrative escape hatch: it skips the
// transition table and writes the requested status directly. Unknown tags
// are still rejected, and a completion time that is already set is never
// re-stamped.
func (s *OrderService) OverrideStatus(orderID uint, to entity.OrderStatus) error {
	if _, err := entity.ParseOrderStatus(string(to)); err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.GetOrderByID(orderID)
		if err != nil {
			return err
		}

		var completedAt *time.Time
		if to == entity.OrderCompleted && o.CompletionTime == nil {
			now := time.Now()
			completedAt = &now
		}

		ok, err := s.Repo.SetStatus(tx, o.ID, to, completedAt)
		if err != nil {
			return err
		}
		if !ok {
			return ErrOrderNotFound
		}

		s.logger.Warn("order status overridden",
			zap.Uint("order_id", o.ID),
			zap.String("from", string(o.Status)),
			zap.String("to", string(to)))
		return nil
	})
}
