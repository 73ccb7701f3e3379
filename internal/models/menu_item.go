package models

import (
	"time"

	"gorm.io/gorm"
)

// MenuItem prices are stored in minor units (cents) to avoid
// floating point drift in totals.
type MenuItem struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Name         string         `json:"name" gorm:"not null"`
	Description  string         `json:"description" gorm:"type:text"`
	PriceCents   int64          `json:"price_cents" gorm:"not null"`
	Category     string         `json:"category" gorm:"not null;index"`
	IsVegetarian bool           `json:"is_vegetarian" gorm:"default:false"`
	IsVegan      bool           `json:"is_vegan" gorm:"default:false"`
	IsGlutenFree bool           `json:"is_gluten_free" gorm:"default:false"`
	IsAvailable  bool           `json:"is_available" gorm:"default:true"`
	IsSpecial    bool           `json:"is_special" gorm:"default:false"`
	IsDealOfDay  bool           `json:"is_deal_of_day" gorm:"default:false"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
