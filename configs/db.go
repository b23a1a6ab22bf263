package configs

import (
	"strings"

	"github.com/chudu2110/Coffee-Shop/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectDB opens the sqlite database named by source and returns the
// handle for explicit injection; nothing holds a package-level connection.
// Foreign keys are forced on so order_items cascade with their order and
// payments cannot reference a missing order.
func ConnectDB(source string) (*gorm.DB, error) {
	dsn := source
	if strings.Contains(dsn, "?") {
		dsn += "&_foreign_keys=on"
	} else {
		dsn += "?_foreign_keys=on"
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// SetupDatabase migrates the order-pipeline schema.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.MenuItem{},
		&entity.Customer{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
	)
}
