package services

import (
	"errors"
	"log"
	"time"

	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	PlaceOrder(customerID, restaurantID uint, notes string) (*models.Order, error)
	UpdateStatus(orderID uint, newStatus models.OrderStatus, ownerID uint) (*models.Order, error)
	GetOrder(customerID, orderID uint) (*models.Order, error)
	ListByCustomer(customerID uint) ([]models.Order, error)
	ListByRestaurant(ownerID, restaurantID uint, status models.OrderStatus) ([]models.Order, error)
	Reorder(customerID, orderID uint) ([]models.CartItem, []uint, error)
}

type orderService struct {
	store repository.Store
	cache CartCache
}

func NewOrderService(store repository.Store, cache CartCache) OrderService {
	return &orderService{store: store, cache: cache}
}

func newOrderNumber() string {
	return time.Now().UTC().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder drains the customer's cart for the restaurant into a new
// pending order inside one transaction: cart lines and menu items are
// row-locked, availability is re-validated, and unit prices are frozen
// into the order items. Either the order exists and the cart is empty,
// or neither happened.
func (s *orderService) PlaceOrder(customerID, restaurantID uint, notes string) (*models.Order, error) {
	var created *models.Order
	err := s.store.Atomically(func(tx repository.Store) error {
		// Checkout serializes against cart adds on the same
		// per-customer lock, so no line can slip in between the read
		// below and the clear.
		if err := tx.Cart().LockCustomer(customerID); err != nil {
			return err
		}

		lines, err := tx.Cart().GetLinesForUpdate(customerID, restaurantID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		order := &models.Order{
			OrderNumber:  newOrderNumber(),
			CustomerID:   customerID,
			RestaurantID: restaurantID,
			Status:       models.OrderPending,
			Notes:        notes,
			PlacedAt:     time.Now().UTC(),
		}
		for _, line := range lines {
			item, err := tx.Menu().GetByIDForUpdate(line.MenuItemID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemUnavailable
			}
			if err != nil {
				return err
			}
			if !item.IsAvailable {
				return ErrItemUnavailable
			}

			subtotal := item.PriceCents * int64(line.Quantity)
			order.Items = append(order.Items, models.OrderItem{
				MenuItemID:          line.MenuItemID,
				Quantity:            line.Quantity,
				UnitPriceCents:      item.PriceCents,
				SubtotalCents:       subtotal,
				SpecialInstructions: line.SpecialInstructions,
			})
			order.TotalCents += subtotal
		}

		if err := tx.Orders().Create(order); err != nil {
			return err
		}
		if err := tx.Cart().ClearForRestaurant(customerID, restaurantID); err != nil {
			return err
		}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.InvalidateCartCount(customerID); err != nil {
		log.Printf("Warning: failed to invalidate cart count cache: %v", err)
	}
	return created, nil
}

func (s *orderService) UpdateStatus(orderID uint, newStatus models.OrderStatus, ownerID uint) (*models.Order, error) {
	if !newStatus.Valid() {
		return nil, ErrInvalidTransition
	}

	var updated *models.Order
	err := s.store.Atomically(func(tx repository.Store) error {
		order, err := tx.Orders().GetByID(orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		restaurant, err := tx.Restaurants().GetByID(order.RestaurantID)
		if err != nil {
			return err
		}
		if restaurant.OwnerID != ownerID {
			return ErrForbidden
		}

		if !order.Status.CanTransitionTo(newStatus) {
			return ErrInvalidTransition
		}
		order.Status = newStatus
		if newStatus == models.OrderDelivered && order.DeliveredAt == nil {
			now := time.Now().UTC()
			order.DeliveredAt = &now
		}
		if err := tx.Orders().UpdateStatus(order); err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *orderService) GetOrder(customerID, orderID uint) (*models.Order, error) {
	order, err := s.store.Orders().GetByID(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, ErrForbidden
	}
	return order, nil
}

func (s *orderService) ListByCustomer(customerID uint) ([]models.Order, error) {
	return s.store.Orders().GetByCustomerID(customerID)
}

func (s *orderService) ListByRestaurant(ownerID, restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
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
	return s.store.Orders().GetByRestaurantID(restaurantID, status)
}

// Reorder rebuilds the cart from a historical order at current prices.
// Items that have gone unavailable (or were deleted) are skipped and
// reported instead of failing the whole operation.
func (s *orderService) Reorder(customerID, orderID uint) ([]models.CartItem, []uint, error) {
	var cart []models.CartItem
	var skipped []uint
	err := s.store.Atomically(func(tx repository.Store) error {
		skipped = skipped[:0]

		order, err := tx.Orders().GetByID(orderID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if order.CustomerID != customerID {
			return ErrForbidden
		}

		for _, orderItem := range order.Items {
			item, err := tx.Menu().GetByID(orderItem.MenuItemID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				skipped = append(skipped, orderItem.MenuItemID)
				continue
			}
			if err != nil {
				return err
			}
			if !item.IsAvailable {
				skipped = append(skipped, orderItem.MenuItemID)
				continue
			}
			if _, err := addCartLine(tx, customerID, orderItem.MenuItemID, orderItem.Quantity, orderItem.SpecialInstructions); err != nil {
				return err
			}
		}

		cart, err = tx.Cart().GetLines(customerID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	if err := s.cache.InvalidateCartCount(customerID); err != nil {
		log.Printf("Warning: failed to invalidate cart count cache: %v", err)
	}
	return cart, skipped, nil
}
