package services

import (
	"errors"
	"log"
	"sort"
	"time"

	"github.com/BackspaceAditya/JustEat/internal/repository"

	"gorm.io/gorm"
)

// RestaurantStats is the owner dashboard summary.
type RestaurantStats struct {
	OrdersByStatus []repository.StatusCount `json:"orders_by_status"`
	RevenueCents   int64                    `json:"revenue_cents"`
	TopItems       []repository.ItemSales   `json:"top_items"`
}

type AnalyticsService interface {
	// MostlyOrdered returns the ids of menu items whose order item
	// quantities, summed over the restaurant's orders placed within the
	// UTC calendar day of `day`, reach the threshold.
	MostlyOrdered(restaurantID uint, day time.Time) ([]uint, error)
	RestaurantStats(ownerID, restaurantID uint) (*RestaurantStats, error)
}

type analyticsService struct {
	store     repository.Store
	cache     AnalyticsCache
	threshold int64
	cacheTTL  time.Duration
}

func NewAnalyticsService(store repository.Store, cache AnalyticsCache, threshold int, cacheTTL time.Duration) AnalyticsService {
	return &analyticsService{
		store:     store,
		cache:     cache,
		threshold: int64(threshold),
		cacheTTL:  cacheTTL,
	}
}

// MostlyOrdered is a pure derived computation over order history: the
// same order data always yields the same tag set. The cache is only a
// shortcut, never the source of truth. All day boundaries are UTC,
// matching the timestamps orders are stored with.
func (s *analyticsService) MostlyOrdered(restaurantID uint, day time.Time) ([]uint, error) {
	dayKey := day.UTC().Format("2006-01-02")
	if ids, err := s.cache.GetMostlyOrdered(restaurantID, dayKey); err == nil {
		return ids, nil
	}

	start := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	rows, err := s.store.Orders().ItemTotalsForPeriod(restaurantID, start, end)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, row := range rows {
		if row.TotalQuantity >= s.threshold {
			ids = append(ids, row.MenuItemID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if err := s.cache.SetMostlyOrdered(restaurantID, dayKey, ids, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache mostly-ordered set: %v", err)
	}
	return ids, nil
}

func (s *analyticsService) RestaurantStats(ownerID, restaurantID uint) (*RestaurantStats, error) {
	restaurant, err := s.store.Restaurants().GetByID(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if restaurant.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	byStatus, err := s.store.Orders().CountByStatus(restaurantID)
	if err != nil {
		return nil, err
	}
	revenue, err := s.store.Orders().DeliveredRevenueCents(restaurantID)
	if err != nil {
		return nil, err
	}
	topItems, err := s.store.Orders().TopItems(restaurantID, 10)
	if err != nil {
		return nil, err
	}

	return &RestaurantStats{
		OrdersByStatus: byStatus,
		RevenueCents:   revenue,
		TopItems:       topItems,
	}, nil
}
