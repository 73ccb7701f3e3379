package models

import "time"

// OrderItem freezes the menu item price at purchase time.
// UnitPriceCents never follows later menu edits.
type OrderItem struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OrderID             uint      `json:"order_id" gorm:"not null;index"`
	MenuItemID          uint      `json:"menu_item_id" gorm:"not null;index"`
	Quantity            int       `json:"quantity" gorm:"not null"`
	UnitPriceCents      int64     `json:"unit_price_cents" gorm:"not null"`
	SubtotalCents       int64     `json:"subtotal_cents" gorm:"not null"`
	SpecialInstructions string    `json:"special_instructions" gorm:"type:text"`
	CreatedAt           time.Time `json:"created_at"`
}
