package services

import "time"

// CartCache holds the per-customer cart badge count. A returned error
// from Get is treated as a miss; the database stays the source of
// truth.
type CartCache interface {
	GetCartCount(customerID uint) (int, error)
	SetCartCount(customerID uint, count int, ttl time.Duration) error
	InvalidateCartCount(customerID uint) error
}

// AnalyticsCache holds recomputed mostly-ordered item sets per
// restaurant and calendar day.
type AnalyticsCache interface {
	GetMostlyOrdered(restaurantID uint, day string) ([]uint, error)
	SetMostlyOrdered(restaurantID uint, day string, itemIDs []uint, ttl time.Duration) error
}
