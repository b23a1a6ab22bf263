package repository

import (
	"github.com/chudu2110/Coffee-Shop/entity"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) GetCustomerByID(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) GetCustomerByEmail(email string) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.Where("email = ?", email).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) CreateCustomer(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

// AddLoyaltyPoints accrues points atomically inside the caller's transaction.
func (r *CustomerRepository) AddLoyaltyPoints(tx *gorm.DB, customerID uint, points int64) error {
	return tx.Model(&entity.Customer{}).Where("id = ?", customerID).
		Update("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error
}
