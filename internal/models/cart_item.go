package models

import "time"

// CartItem is one pending line in a customer's cart. All lines of a
// customer reference the same restaurant; the binding is checked on
// every add. Lines are deleted on checkout or explicit clear, so there
// is no soft delete here.
type CartItem struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	CustomerID          uint      `json:"customer_id" gorm:"not null;uniqueIndex:idx_cart_customer_item"`
	RestaurantID        uint      `json:"restaurant_id" gorm:"not null;index"`
	MenuItemID          uint      `json:"menu_item_id" gorm:"not null;uniqueIndex:idx_cart_customer_item"`
	Quantity            int       `json:"quantity" gorm:"not null"`
	SpecialInstructions string    `json:"special_instructions" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
