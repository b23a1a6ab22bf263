package configs

import (
	"github.com/chudu2110/Coffee-Shop/entity"

	"gorm.io/gorm"
)

// SeedCatalog fills the menu and a walk-in customer. Matching on the unique
// name/email keeps re-runs idempotent.
func SeedCatalog(db *gorm.DB) error {
	items := []entity.MenuItem{
		{Name: "Espresso", Description: "Cà phê espresso nguyên chất", BasePrice: 30_000, Category: "Coffee", ItemType: "Drink", CoffeeType: "Espresso", IsAvailable: true},
		{Name: "Americano", Description: "Espresso pha loãng kiểu Mỹ", BasePrice: 35_000, Category: "Coffee", ItemType: "Drink", CoffeeType: "Americano", IsAvailable: true},
		{Name: "Latte", Description: "Espresso với sữa nóng", BasePrice: 45_000, Category: "Coffee", ItemType: "Drink", CoffeeType: "Latte", IsAvailable: true},
		{Name: "Cappuccino", Description: "Espresso, sữa nóng và bọt sữa", BasePrice: 45_000, Category: "Coffee", ItemType: "Drink", CoffeeType: "Cappuccino", IsAvailable: true},
		{Name: "Cà Phê Sữa Đá", Description: "Cà phê phin truyền thống với sữa đặc", BasePrice: 35_000, Category: "Coffee", ItemType: "Drink", CoffeeType: "Vietnamese", IsAvailable: true},
		{Name: "Trà Đào", Description: "Trà đào cam sả", BasePrice: 40_000, Category: "Tea", ItemType: "Drink", IsAvailable: true},
		{Name: "Bánh Mì", Description: "Bánh mì thịt nguội", BasePrice: 25_000, Category: "Food", ItemType: "Food", IsAvailable: true},
		{Name: "Croissant", Description: "Bánh sừng bò bơ", BasePrice: 30_000, Category: "Food", ItemType: "Food", IsAvailable: true},
	}
	for i := range items {
		err := db.Where(entity.MenuItem{Name: items[i].Name}).
			FirstOrCreate(&items[i]).Error
		if err != nil {
			return err
		}
	}

	walkIn := entity.Customer{
		Name:  "Khách lẻ",
		Email: "walkin@coffeeshop.local",
	}
	return db.Where(entity.Customer{Email: walkIn.Email}).
		FirstOrCreate(&walkIn).Error
}
