package services

import (
	"errors"

	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	ListAvailable(restaurantID uint) ([]models.MenuItem, error)
	ListOwnRestaurants(ownerID uint) ([]models.Restaurant, error)
	ListForOwner(ownerID, restaurantID uint) ([]models.MenuItem, error)
	GetItem(id uint) (*models.MenuItem, error)
	CreateItem(ownerID uint, item *models.MenuItem) error
	UpdateItem(ownerID uint, item *models.MenuItem) (*models.MenuItem, error)
	DeleteItem(ownerID, itemID uint) error
	SetAvailability(ownerID, itemID uint, available bool) (*models.MenuItem, error)
	SetSpecial(ownerID, itemID uint, special bool) (*models.MenuItem, error)
	SetDealOfDay(ownerID, itemID uint, deal bool) (*models.MenuItem, error)
}

type catalogService struct {
	store repository.Store
}

func NewCatalogService(store repository.Store) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) ListAvailable(restaurantID uint) ([]models.MenuItem, error) {
	return s.store.Menu().ListAvailable(restaurantID)
}

func (s *catalogService) ListOwnRestaurants(ownerID uint) ([]models.Restaurant, error) {
	return s.store.Restaurants().GetByOwnerID(ownerID)
}

func (s *catalogService) ListForOwner(ownerID, restaurantID uint) ([]models.MenuItem, error) {
	if err := s.checkRestaurantOwner(ownerID, restaurantID); err != nil {
		return nil, err
	}
	return s.store.Menu().ListByRestaurant(restaurantID)
}

func (s *catalogService) GetItem(id uint) (*models.MenuItem, error) {
	item, err := s.store.Menu().GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) CreateItem(ownerID uint, item *models.MenuItem) error {
	if err := s.checkRestaurantOwner(ownerID, item.RestaurantID); err != nil {
		return err
	}
	return s.store.Menu().Create(item)
}

// UpdateItem edits the mutable fields of an existing item. The
// restaurant binding never changes.
func (s *catalogService) UpdateItem(ownerID uint, item *models.MenuItem) (*models.MenuItem, error) {
	existing, err := s.getOwnedItem(ownerID, item.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = item.Name
	existing.Description = item.Description
	existing.PriceCents = item.PriceCents
	existing.Category = item.Category
	existing.IsVegetarian = item.IsVegetarian
	existing.IsVegan = item.IsVegan
	existing.IsGlutenFree = item.IsGlutenFree
	if err := s.store.Menu().Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteItem(ownerID, itemID uint) error {
	if _, err := s.getOwnedItem(ownerID, itemID); err != nil {
		return err
	}
	return s.store.Menu().Delete(itemID)
}

func (s *catalogService) SetAvailability(ownerID, itemID uint, available bool) (*models.MenuItem, error) {
	return s.setFlag(ownerID, itemID, func(item *models.MenuItem) {
		item.IsAvailable = available
	})
}

func (s *catalogService) SetSpecial(ownerID, itemID uint, special bool) (*models.MenuItem, error) {
	return s.setFlag(ownerID, itemID, func(item *models.MenuItem) {
		item.IsSpecial = special
	})
}

func (s *catalogService) SetDealOfDay(ownerID, itemID uint, deal bool) (*models.MenuItem, error) {
	return s.setFlag(ownerID, itemID, func(item *models.MenuItem) {
		item.IsDealOfDay = deal
	})
}

func (s *catalogService) setFlag(ownerID, itemID uint, apply func(*models.MenuItem)) (*models.MenuItem, error) {
	item, err := s.getOwnedItem(ownerID, itemID)
	if err != nil {
		return nil, err
	}
	apply(item)
	if err := s.store.Menu().Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) getOwnedItem(ownerID, itemID uint) (*models.MenuItem, error) {
	item, err := s.store.Menu().GetByID(itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := s.checkRestaurantOwner(ownerID, item.RestaurantID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) checkRestaurantOwner(ownerID, restaurantID uint) error {
	restaurant, err := s.store.Restaurants().GetByID(restaurantID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if restaurant.OwnerID != ownerID {
		return ErrForbidden
	}
	return nil
}
