package repository

import (
	"github.com/BackspaceAditya/JustEat/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository interface {
	GetLine(customerID, menuItemID uint) (*models.CartItem, error)
	// GetLineForUpdate row-locks the line so concurrent quantity edits
	// for the same customer+item serialize instead of losing updates.
	GetLineForUpdate(customerID, menuItemID uint) (*models.CartItem, error)
	GetLines(customerID uint) ([]models.CartItem, error)
	// GetLinesForUpdate locks every line of the customer's cart for the
	// given restaurant for the duration of the checkout transaction.
	GetLinesForUpdate(customerID, restaurantID uint) ([]models.CartItem, error)
	// LockCustomer serializes all cart mutations of one customer for
	// the rest of the current transaction. Row locks cannot do this:
	// a first add has no row to lock yet.
	LockCustomer(customerID uint) error
	CountForCustomer(customerID uint) (int, error)
	// Merge inserts the line, or, when a line for the same
	// customer+item already exists, adds the quantities and replaces
	// the special instructions. Atomic against concurrent first adds.
	Merge(line *models.CartItem) error
	Update(line *models.CartItem) error
	DeleteLine(customerID, menuItemID uint) error
	Clear(customerID uint) error
	ClearForRestaurant(customerID, restaurantID uint) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetLine(customerID, menuItemID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := r.db.Where("customer_id = ? AND menu_item_id = ?", customerID, menuItemID).First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) GetLineForUpdate(customerID, menuItemID uint) (*models.CartItem, error) {
	var line models.CartItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND menu_item_id = ?", customerID, menuItemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *cartRepository) GetLines(customerID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := r.db.Where("customer_id = ?", customerID).Order("id").Find(&lines).Error
	return lines, err
}

func (r *cartRepository) GetLinesForUpdate(customerID, restaurantID uint) ([]models.CartItem, error) {
	var lines []models.CartItem
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("customer_id = ? AND restaurant_id = ?", customerID, restaurantID).
		Order("id").
		Find(&lines).Error
	return lines, err
}

// cartLockNamespace keeps the per-customer advisory lock keys from
// colliding with any other advisory locks on the same database.
const cartLockNamespace = 1

// LockCustomer takes a transaction-scoped advisory lock; it must run
// inside a transaction and releases automatically on commit/rollback.
func (r *cartRepository) LockCustomer(customerID uint) error {
	return r.db.Exec("SELECT pg_advisory_xact_lock(?, ?)", cartLockNamespace, int32(customerID)).Error
}

func (r *cartRepository) CountForCustomer(customerID uint) (int, error) {
	var count int64
	err := r.db.Model(&models.CartItem{}).
		Where("customer_id = ?", customerID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&count).Error
	return int(count), err
}

// Merge rides the unique index on (customer_id, menu_item_id): a
// conflicting insert becomes an in-place sum instead of a duplicate
// key error, so two first adds that raced past the existence check
// still end with the quantities combined.
func (r *cartRepository) Merge(line *models.CartItem) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "customer_id"}, {Name: "menu_item_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":             gorm.Expr("cart_items.quantity + excluded.quantity"),
			"special_instructions": gorm.Expr("excluded.special_instructions"),
			"updated_at":           gorm.Expr("excluded.updated_at"),
		}),
	}).Create(line).Error
}

func (r *cartRepository) Update(line *models.CartItem) error {
	return r.db.Save(line).Error
}

func (r *cartRepository) DeleteLine(customerID, menuItemID uint) error {
	return r.db.Where("customer_id = ? AND menu_item_id = ?", customerID, menuItemID).
		Delete(&models.CartItem{}).Error
}

func (r *cartRepository) Clear(customerID uint) error {
	return r.db.Where("customer_id = ?", customerID).Delete(&models.CartItem{}).Error
}

func (r *cartRepository) ClearForRestaurant(customerID, restaurantID uint) error {
	return r.db.Where("customer_id = ? AND restaurant_id = ?", customerID, restaurantID).
		Delete(&models.CartItem{}).Error
}
