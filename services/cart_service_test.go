package services

import (
	"errors"
	"testing"

	"github.com/chudu2110/Coffee-Shop/entity"
)

func testMenuItem(id uint, name string, price int64) *entity.MenuItem {
	item := &entity.MenuItem{
		Name:        name,
		BasePrice:   price,
		ItemType:    "Drink",
		IsAvailable: true,
	}
	item.ID = id
	return item
}

func TestCartAddItemMergesOnSameMenuItem(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	latte := testMenuItem(1, "Latte", 45_000)

	if err := cart.AddItem(latte, 1, entity.SizeSmall, true, nil); err != nil {
		t.Fatalf("first add: %v", err)
	}
	first := cart.Order().OrderItems[0].UnitPrice

	if err := cart.AddItem(latte, 2, entity.SizeLarge, false, []string{"Caramel"}); err != nil {
		t.Fatalf("second add: %v", err)
	}

	items := cart.Order().OrderItems
	if len(items) != 1 {
		t.Fatalf("got %d lines, want 1 merged line", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("quantity = %d, want 3", items[0].Quantity)
	}
	if items[0].UnitPrice != first {
		t.Errorf("unit price changed on merge: %d -> %d", first, items[0].UnitPrice)
	}
}

func TestCartAddItemRejectsBadInput(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	latte := testMenuItem(1, "Latte", 45_000)

	if err := cart.AddItem(latte, 0, entity.SizeSmall, true, nil); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("zero quantity: got %v, want ErrInvalidQuantity", err)
	}
	if err := cart.AddItem(latte, -2, entity.SizeSmall, true, nil); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("negative quantity: got %v, want ErrInvalidQuantity", err)
	}

	soldOut := testMenuItem(2, "Trà Đào", 40_000)
	soldOut.IsAvailable = false
	if err := cart.AddItem(soldOut, 1, entity.SizeSmall, false, nil); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("unavailable item: got %v, want ErrItemUnavailable", err)
	}
	if !cart.IsEmpty() {
		t.Error("rejected adds must not change the cart")
	}
}

func TestCartRemoveItem(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	latte := testMenuItem(1, "Latte", 45_000)
	banhMi := testMenuItem(2, "Bánh Mì", 25_000)
	cart.AddItem(latte, 1, entity.SizeSmall, true, nil)
	cart.AddItem(banhMi, 2, "", false, nil)

	if err := cart.RemoveItem(latte.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := len(cart.Order().OrderItems); got != 1 {
		t.Fatalf("got %d lines, want 1", got)
	}
	if cart.Order().Subtotal != 50_000 {
		t.Errorf("subtotal after remove = %d, want 50000", cart.Order().Subtotal)
	}

	if err := cart.RemoveItem(99); !errors.Is(err, ErrItemNotInCart) {
		t.Errorf("absent item: got %v, want ErrItemNotInCart", err)
	}
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	latte := testMenuItem(1, "Latte", 45_000)
	cart.AddItem(latte, 1, entity.SizeSmall, true, nil)

	if err := cart.UpdateQuantity(latte.ID, 4); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := cart.Order().OrderItems[0].Quantity; got != 4 {
		t.Errorf("quantity = %d, want 4", got)
	}
	if cart.Order().Subtotal != 180_000 {
		t.Errorf("subtotal = %d, want 180000", cart.Order().Subtotal)
	}

	// non-positive quantity removes the line
	if err := cart.UpdateQuantity(latte.ID, 0); err != nil {
		t.Fatalf("update to zero: %v", err)
	}
	if !cart.IsEmpty() {
		t.Error("zero quantity should remove the line")
	}
}

func TestCartSetDiscount(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	latte := testMenuItem(1, "Latte", 45_000)
	cart.AddItem(latte, 1, entity.SizeSmall, true, nil)

	if err := cart.SetDiscount(-500); !errors.Is(err, ErrNegativeDiscount) {
		t.Errorf("negative discount: got %v, want ErrNegativeDiscount", err)
	}
	if cart.Order().Discount != 0 {
		t.Error("rejected discount must not stick")
	}

	if err := cart.SetDiscount(10_000); err != nil {
		t.Fatalf("set discount: %v", err)
	}
	// 45000 + 4500 tax - 10000
	if got := cart.Order().TotalAmount; got != 39_500 {
		t.Errorf("total = %d, want 39500", got)
	}
}

func TestCartClearKeepsDiscount(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	latte := testMenuItem(1, "Latte", 45_000)
	cart.AddItem(latte, 2, entity.SizeSmall, true, nil)
	cart.SetDiscount(5_000)

	cart.Clear()
	if !cart.IsEmpty() {
		t.Fatal("cart should be empty after clear")
	}
	o := cart.Order()
	if o.Subtotal != 0 || o.Tax != 0 || o.TotalAmount != 0 {
		t.Errorf("totals = (%d,%d,%d), want all zero", o.Subtotal, o.Tax, o.TotalAmount)
	}
	if o.Discount != 5_000 {
		t.Errorf("discount = %d, want 5000 (clear keeps it)", o.Discount)
	}
}

func TestCartTotalItemCount(t *testing.T) {
	cart := NewCart(1, entity.Takeaway)
	cart.AddItem(testMenuItem(1, "Latte", 45_000), 2, entity.SizeSmall, true, nil)
	cart.AddItem(testMenuItem(2, "Espresso", 30_000), 3, entity.SizeSmall, true, nil)

	if got := cart.TotalItemCount(); got != 5 {
		t.Errorf("TotalItemCount() = %d, want 5", got)
	}
}

func TestCartTableNumber(t *testing.T) {
	takeaway := NewCart(1, entity.Takeaway)
	if err := takeaway.SetTableNumber(4); !errors.Is(err, ErrTableNotAllowed) {
		t.Errorf("takeaway table: got %v, want ErrTableNotAllowed", err)
	}
	if takeaway.Order().TableNumber != 0 {
		t.Error("takeaway must keep the zero table sentinel")
	}

	dineIn := NewCart(1, entity.DineIn)
	if err := dineIn.SetTableNumber(0); !errors.Is(err, ErrTableNotAllowed) {
		t.Errorf("table 0: got %v, want ErrTableNotAllowed", err)
	}
	if err := dineIn.SetTableNumber(7); err != nil {
		t.Fatalf("set table: %v", err)
	}
	if dineIn.Order().TableNumber != 7 {
		t.Errorf("table = %d, want 7", dineIn.Order().TableNumber)
	}
}
