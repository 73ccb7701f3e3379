package services

import (
	"errors"
	"log"
	"time"

	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	AddItem(customerID, menuItemID uint, quantity int, instructions string) (*models.CartItem, error)
	UpdateQuantity(customerID, menuItemID uint, quantity int) error
	RemoveItem(customerID, menuItemID uint) error
	GetCart(customerID uint) ([]models.CartItem, error)
	GetCount(customerID uint) (int, error)
	Clear(customerID uint) error
}

type cartService struct {
	store    repository.Store
	cache    CartCache
	countTTL time.Duration
}

func NewCartService(store repository.Store, cache CartCache, countTTL time.Duration) CartService {
	return &cartService{store: store, cache: cache, countTTL: countTTL}
}

func (s *cartService) AddItem(customerID, menuItemID uint, quantity int, instructions string) (*models.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var line *models.CartItem
	err := s.store.Atomically(func(tx repository.Store) error {
		var err error
		line, err = addCartLine(tx, customerID, menuItemID, quantity, instructions)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCount(customerID)
	return line, nil
}

// addCartLine merges a quantity into the customer's cart inside the
// caller's transaction. Quantities always sum and the latest
// instructions win. Also used by reorder.
func addCartLine(tx repository.Store, customerID, menuItemID uint, quantity int, instructions string) (*models.CartItem, error) {
	// Serialize this customer's cart mutations for the rest of the
	// transaction. An empty cart has no rows to lock, so without this
	// two concurrent first adds from different restaurants would both
	// pass the single-restaurant check below.
	if err := tx.Cart().LockCustomer(customerID); err != nil {
		return nil, err
	}

	item, err := tx.Menu().GetByID(menuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !item.IsAvailable {
		return nil, ErrItemUnavailable
	}

	// A cart is bound to a single restaurant. Adding from a second one
	// is rejected rather than silently clearing the cart.
	lines, err := tx.Cart().GetLines(customerID)
	if err != nil {
		return nil, err
	}
	if len(lines) > 0 && lines[0].RestaurantID != item.RestaurantID {
		return nil, ErrCrossRestaurantConflict
	}

	line := &models.CartItem{
		CustomerID:          customerID,
		RestaurantID:        item.RestaurantID,
		MenuItemID:          menuItemID,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	}
	if err := tx.Cart().Merge(line); err != nil {
		return nil, err
	}
	return tx.Cart().GetLine(customerID, menuItemID)
}

func (s *cartService) UpdateQuantity(customerID, menuItemID uint, quantity int) error {
	err := s.store.Atomically(func(tx repository.Store) error {
		line, err := tx.Cart().GetLineForUpdate(customerID, menuItemID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		if err != nil {
			return err
		}

		// Zero or negative removes the line.
		if quantity <= 0 {
			return tx.Cart().DeleteLine(customerID, menuItemID)
		}
		line.Quantity = quantity
		return tx.Cart().Update(line)
	})
	if err != nil {
		return err
	}

	s.invalidateCount(customerID)
	return nil
}

func (s *cartService) RemoveItem(customerID, menuItemID uint) error {
	// Idempotent: deleting an absent line is not an error.
	if err := s.store.Cart().DeleteLine(customerID, menuItemID); err != nil {
		return err
	}
	s.invalidateCount(customerID)
	return nil
}

func (s *cartService) GetCart(customerID uint) ([]models.CartItem, error) {
	return s.store.Cart().GetLines(customerID)
}

func (s *cartService) GetCount(customerID uint) (int, error) {
	if count, err := s.cache.GetCartCount(customerID); err == nil {
		return count, nil
	}

	count, err := s.store.Cart().CountForCustomer(customerID)
	if err != nil {
		return 0, err
	}
	if err := s.cache.SetCartCount(customerID, count, s.countTTL); err != nil {
		log.Printf("Warning: failed to cache cart count: %v", err)
	}
	return count, nil
}

func (s *cartService) Clear(customerID uint) error {
	if err := s.store.Cart().Clear(customerID); err != nil {
		return err
	}
	s.invalidateCount(customerID)
	return nil
}

func (s *cartService) invalidateCount(customerID uint) {
	if err := s.cache.InvalidateCartCount(customerID); err != nil {
		log.Printf("Warning: failed to invalidate cart count cache: %v", err)
	}
}
