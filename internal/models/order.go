package models

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderReady     OrderStatus = "ready"
	OrderDelivered OrderStatus = "delivered"
)

// orderStatusRank fixes the lifecycle ordering. Transitions may only
// move forward (or stay in place); skipping intermediate statuses is
// allowed.
var orderStatusRank = map[OrderStatus]int{
	OrderPending:   0,
	OrderConfirmed: 1,
	OrderPreparing: 2,
	OrderReady:     3,
	OrderDelivered: 4,
}

// Valid reports whether s is one of the declared lifecycle statuses.
func (s OrderStatus) Valid() bool {
	_, ok := orderStatusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next keeps the
// lifecycle monotonic.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	from, ok := orderStatusRank[s]
	if !ok {
		return false
	}
	to, ok := orderStatusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

// Order is an immutable snapshot of a checked-out cart. Only Status
// and DeliveredAt change after creation.
type Order struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	OrderNumber  string         `json:"order_number" gorm:"unique;not null"`
	CustomerID   uint           `json:"customer_id" gorm:"not null;index"`
	RestaurantID uint           `json:"restaurant_id" gorm:"not null;index"`
	Status       OrderStatus    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	TotalCents   int64          `json:"total_cents" gorm:"not null"`
	Notes        string         `json:"notes" gorm:"type:text"`
	PlacedAt     time.Time      `json:"placed_at" gorm:"not null;index"`
	DeliveredAt  *time.Time     `json:"delivered_at"`
	Items        []OrderItem    `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
