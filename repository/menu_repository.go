package repository

import (
	"github.com/chudu2110/Coffee-Shop/entity"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) GetMenuItemByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MenuRepository) ListAvailable() ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("is_available = ?", true).Order("category, name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) ListByCategory(category string) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	err := r.DB.Where("category = ? AND is_available = ?", category, true).
		Order("name").Find(&items).Error
	return items, err
}

func (r *MenuRepository) SetAvailability(id uint, available bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).
		Update("is_available", available).Error
}
