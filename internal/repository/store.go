package repository

import "gorm.io/gorm"

// Store bundles the repositories and gives services a single
// transaction boundary. Atomically runs fn against repositories bound
// to one database transaction; if fn returns an error the whole
// transaction rolls back.
type Store interface {
	Users() UserRepository
	Restaurants() RestaurantRepository
	Menu() MenuRepository
	Cart() CartRepository
	Orders() OrderRepository
	Atomically(fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository {
	return NewUserRepository(s.db)
}

func (s *gormStore) Restaurants() RestaurantRepository {
	return NewRestaurantRepository(s.db)
}

func (s *gormStore) Menu() MenuRepository {
	return NewMenuRepository(s.db)
}

func (s *gormStore) Cart() CartRepository {
	return NewCartRepository(s.db)
}

func (s *gormStore) Orders() OrderRepository {
	return NewOrderRepository(s.db)
}

func (s *gormStore) Atomically(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
