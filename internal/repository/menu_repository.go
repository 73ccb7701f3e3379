package repository

import (
	"github.com/BackspaceAditya/JustEat/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository interface {
	Create(item *models.MenuItem) error
	GetByID(id uint) (*models.MenuItem, error)
	// GetByIDForUpdate locks the row until the surrounding transaction
	// ends. Used during checkout re-validation.
	GetByIDForUpdate(id uint) (*models.MenuItem, error)
	ListAvailable(restaurantID uint) ([]models.MenuItem, error)
	ListByRestaurant(restaurantID uint) ([]models.MenuItem, error)
	Update(item *models.MenuItem) error
	Delete(id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) Create(item *models.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *menuRepository) GetByID(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) GetByIDForUpdate(id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) ListAvailable(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.
		Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *menuRepository) ListByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.db.
		Where("restaurant_id = ?", restaurantID).
		Order("category, name").
		Find(&items).Error
	return items, err
}

func (r *menuRepository) Update(item *models.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *menuRepository) Delete(id uint) error {
	return r.db.Delete(&models.MenuItem{}, id).Error
}
