package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/chudu2110/Coffee-Shop/configs"
	"github.com/chudu2110/Coffee-Shop/entity"
	"github.com/chudu2110/Coffee-Shop/pkg/logger"
	"github.com/chudu2110/Coffee-Shop/repository"
	"github.com/chudu2110/Coffee-Shop/services"
	"github.com/chudu2110/Coffee-Shop/utils"

	"go.uber.org/zap"
)

func main() {
	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		zl.Fatal("migrate database", zap.Error(err))
	}
	if cfg.SeedDB {
		if err := configs.SeedCatalog(db); err != nil {
			zl.Fatal("seed catalog", zap.Error(err))
		}
	}

	menuRepo := repository.NewMenuRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	orderSvc := services.NewOrderService(db, orderRepo, zl)
	paymentSvc := services.NewPaymentService(db, paymentRepo, orderRepo, customerRepo, zl)

	walkIn, err := customerRepo.GetCustomerByEmail("walkin@coffeeshop.local")
	if err != nil {
		zl.Fatal("walk-in customer missing, run with SEED_DB=true once", zap.Error(err))
	}

	app := &posApp{
		in:       bufio.NewReader(os.Stdin),
		menus:    menuRepo,
		orders:   orderSvc,
		payments: paymentSvc,
		customer: walkIn,
	}
	app.run()
}

type posApp struct {
	in       *bufio.Reader
	menus    *repository.MenuRepository
	orders   *services.OrderService
	payments *services.PaymentService
	customer *entity.Customer

	cart *services.Cart
}

func (a *posApp) run() {
	fmt.Println("=== Coffee Shop POS ===")
	a.newCart()

	for {
		fmt.Println()
		fmt.Println("1. Xem thực đơn")
		fmt.Println("2. Thêm món vào giỏ")
		fmt.Println("3. Xoá món")
		fmt.Println("4. Đổi số lượng")
		fmt.Println("5. Giảm giá")
		fmt.Println("6. Xem giỏ hàng")
		fmt.Println("7. Thanh toán")
		fmt.Println("8. Lịch sử đơn hàng")
		fmt.Println("9. Thống kê")
		fmt.Println("0. Thoát")

		switch a.readLine("Chọn: ") {
		case "1":
			a.showMenu()
		case "2":
			a.addItem()
		case "3":
			a.removeItem()
		case "4":
			a.updateQuantity()
		case "5":
			a.setDiscount()
		case "6":
			a.showCart()
		case "7":
			a.checkoutAndPay()
		case "8":
			a.showHistory()
		case "9":
			a.showStats()
		case "0":
			return
		}
	}
}

func (a *posApp) newCart() {
	serviceType := entity.Takeaway
	if strings.EqualFold(a.readLine("Tại chỗ hay mang đi? (t/m): "), "t") {
		serviceType = entity.DineIn
	}
	a.cart = services.NewCart(a.customer.ID, serviceType)
	if serviceType == entity.DineIn {
		if n := a.readInt("Số bàn: "); n > 0 {
			if err := a.cart.SetTableNumber(n); err != nil {
				fmt.Println(err)
			}
		}
	}
}

func (a *posApp) showMenu() {
	items, err := a.menus.ListAvailable()
	if err != nil {
		fmt.Println("Lỗi:", err)
		return
	}
	for _, m := range items {
		fmt.Printf("%3d. %-20s %10s  (%s)\n", m.ID, m.Name, utils.FormatVND(m.BasePrice), m.Category)
	}
}

func (a *posApp) addItem() {
	id := a.readInt("Mã món: ")
	item, err := a.menus.GetMenuItemByID(uint(id))
	if err != nil {
		fmt.Println("Không tìm thấy món")
		return
	}
	qty := a.readInt("Số lượng: ")

	size := entity.SizeMedium
	isHot := true
	var customizations []string
	if item.ItemType == "Drink" {
		switch a.readLine("Kích cỡ (1 Nhỏ / 2 Vừa / 3 Lớn): ") {
		case "1":
			size = entity.SizeSmall
		case "3":
			size = entity.SizeLarge
		}
		isHot = !strings.EqualFold(a.readLine("Nóng hay lạnh? (n/l): "), "l")
		for _, c := range []string{"Extra Shot", "Caramel", "Vanilla", "Whipped Cream"} {
			if strings.EqualFold(a.readLine(c+" (+5.000đ)? (y/n): "), "y") {
				customizations = append(customizations, c)
			}
		}
	}

	if err := a.cart.AddItem(item, qty, size, isHot, customizations); err != nil {
		fmt.Println("Lỗi:", err)
		return
	}
	fmt.Printf("Đã thêm %s x%d\n", item.Name, qty)
}

func (a *posApp) removeItem() {
	id := a.readInt("Mã món cần xoá: ")
	if err := a.cart.RemoveItem(uint(id)); err != nil {
		fmt.Println("Lỗi:", err)
	}
}

func (a *posApp) updateQuantity() {
	id := a.readInt("Mã món: ")
	qty := a.readInt("Số lượng mới: ")
	if err := a.cart.UpdateQuantity(uint(id), qty); err != nil {
		fmt.Println("Lỗi:", err)
	}
}

func (a *posApp) setDiscount() {
	amount := a.readInt64("Giảm giá (đ): ")
	if err := a.cart.SetDiscount(amount); err != nil {
		fmt.Println("Lỗi:", err)
	}
}

func (a *posApp) showCart() {
	o := a.cart.Order()
	for _, line := range o.OrderItems {
		fmt.Printf("%-20s x%-2d %12s\n", line.MenuItem.Name, line.Quantity, utils.FormatVND(line.TotalPrice))
	}
	fmt.Println("Tạm tính: ", utils.FormatVND(o.Subtotal))
	fmt.Println("Thuế VAT: ", utils.FormatVND(o.Tax))
	if o.Discount > 0 {
		fmt.Println("Giảm giá: -" + utils.FormatVND(o.Discount))
	}
	fmt.Println("Tổng cộng:", utils.FormatVND(o.TotalAmount))
}

func (a *posApp) checkoutAndPay() {
	if a.cart.IsEmpty() {
		fmt.Println("Giỏ hàng trống")
		return
	}
	if note := a.readLine("Ghi chú (Enter để bỏ qua): "); note != "" {
		a.cart.SetSpecialInstructions(note)
	}

	orderID, err := a.orders.Checkout(a.cart)
	if err != nil {
		fmt.Println("Không tạo được đơn:", err)
		return
	}
	order, err := a.orders.GetOrderByID(orderID)
	if err != nil {
		fmt.Println("Lỗi:", err)
		return
	}
	fmt.Printf("Đơn #%d, cần thanh toán %s\n", orderID, utils.FormatVND(order.TotalAmount))

	var payment *entity.Payment
	switch a.readLine("Phương thức (1 Tiền mặt / 2 Thẻ / 3 Ví điện tử): ") {
	case "2":
		// simulated gateway, fixed test card
		payment, err = a.payments.ProcessCard(orderID, "4111111111111111", "12/30", "123")
	case "3":
		ref := fmt.Sprintf("MOMO_%d", time.Now().UnixMilli())
		payment, err = a.payments.ProcessMobile(orderID, ref)
	default:
		tendered := a.readInt64("Tiền khách đưa: ")
		payment, err = a.payments.ProcessCash(orderID, tendered)
		if err == nil && payment.ChangeGiven > 0 {
			fmt.Println("Tiền thừa:", utils.FormatVND(payment.ChangeGiven))
		}
	}
	if err != nil {
		fmt.Println("Thanh toán thất bại:", err)
		return
	}

	// payment succeeded, so the caller advances the order
	if err := a.orders.AdvanceStatus(orderID, entity.OrderConfirmed); err != nil {
		fmt.Println("Lỗi cập nhật trạng thái:", err)
		return
	}
	fmt.Printf("Đã thanh toán (%s). Đơn #%d chuyển sang CONFIRMED.\n", payment.TransactionReference, orderID)
	a.newCart()
}

func (a *posApp) showHistory() {
	orders, err := a.orders.GetOrdersByCustomer(a.customer.ID)
	if err != nil {
		fmt.Println("Lỗi:", err)
		return
	}
	for _, o := range orders {
		fmt.Printf("#%-4d %-9s %-9s %12s  %s\n",
			o.ID, o.ServiceType, o.Status,
			utils.FormatVND(o.TotalAmount),
			o.OrderTime.Format("02/01/2006 15:04"))
	}
}

func (a *posApp) showStats() {
	stats, err := a.orders.GetOrderStats()
	if err != nil {
		fmt.Println("Lỗi:", err)
		return
	}
	fmt.Printf("Đơn hàng: %d (chờ %d, hoàn tất %d, huỷ %d), doanh thu %s\n",
		stats.TotalOrders, stats.PendingOrders, stats.CompletedOrders, stats.CancelledOrders,
		utils.FormatVND(stats.TotalRevenue))

	ps, err := a.payments.GetPaymentStats()
	if err != nil {
		fmt.Println("Lỗi:", err)
		return
	}
	fmt.Printf("Thanh toán: %d (thành công %d, hoàn tiền %d), đã thu %s\n",
		ps.TotalPayments, ps.CompletedPayments, ps.RefundedPayments,
		utils.FormatVND(ps.TotalRevenue))
}

func (a *posApp) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *posApp) readInt(prompt string) int {
	n, err := strconv.Atoi(a.readLine(prompt))
	if err != nil {
		return 0
	}
	return n
}

func (a *posApp) readInt64(prompt string) int64 {
	n, err := strconv.ParseInt(a.readLine(prompt), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
