package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/chudu2110/Coffee-Shop/configs"
	"github.com/chudu2110/Coffee-Shop/entity"
	"github.com/chudu2110/Coffee-Shop/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database per test. The name keys
// the shared cache so a test sees one database across pooled connections
// without leaking into other tests.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := configs.ConnectDB(dsn)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedTestData(t *testing.T, db *gorm.DB) (*entity.Customer, *entity.MenuItem) {
	t.Helper()
	customer := &entity.Customer{Name: "Test Customer", Email: "test@example.com"}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	latte := &entity.MenuItem{
		Name:        "Latte",
		BasePrice:   45_000,
		Category:    "Coffee",
		ItemType:    "Drink",
		CoffeeType:  "Latte",
		IsAvailable: true,
	}
	if err := db.Create(latte).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return customer, latte
}

func newTestOrderService(t *testing.T, db *gorm.DB) *OrderService {
	t.Helper()
	return NewOrderService(db, repository.NewOrderRepository(db), zap.NewNop())
}

func newTestPaymentService(t *testing.T, db *gorm.DB) *PaymentService {
	t.Helper()
	return NewPaymentService(db,
		repository.NewPaymentRepository(db),
		repository.NewOrderRepository(db),
		repository.NewCustomerRepository(db),
		zap.NewNop())
}

// checkoutOrder commits a one-line cart and returns the order id.
func checkoutOrder(t *testing.T, svc *OrderService, customer *entity.Customer, item *entity.MenuItem, qty int) uint {
	t.Helper()
	cart := NewCart(customer.ID, entity.Takeaway)
	if err := cart.AddItem(item, qty, entity.SizeSmall, true, nil); err != nil {
		t.Fatalf("add item: %v", err)
	}
	id, err := svc.Checkout(cart)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	return id
}
