package services

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/repository"

	"gorm.io/gorm"
)

// memStore is an in-memory repository.Store for service tests. It
// mirrors the transactional contract of the gorm store: Atomically
// serializes callers and restores a pre-transaction snapshot when fn
// returns an error, so all-or-nothing behavior is observable without a
// database.
type memStore struct {
	mu   sync.Mutex
	data *memData
}

type memData struct {
	nextID      uint
	users       map[uint]models.User
	restaurants map[uint]models.Restaurant
	items       map[uint]models.MenuItem
	cartLines   map[uint]models.CartItem
	orders      map[uint]models.Order
}

func newMemStore() *memStore {
	return &memStore{
		data: &memData{
			users:       make(map[uint]models.User),
			restaurants: make(map[uint]models.Restaurant),
			items:       make(map[uint]models.MenuItem),
			cartLines:   make(map[uint]models.CartItem),
			orders:      make(map[uint]models.Order),
		},
	}
}

func (d *memData) clone() *memData {
	c := &memData{
		nextID:      d.nextID,
		users:       make(map[uint]models.User, len(d.users)),
		restaurants: make(map[uint]models.Restaurant, len(d.restaurants)),
		items:       make(map[uint]models.MenuItem, len(d.items)),
		cartLines:   make(map[uint]models.CartItem, len(d.cartLines)),
		orders:      make(map[uint]models.Order, len(d.orders)),
	}
	for id, u := range d.users {
		c.users[id] = u
	}
	for id, r := range d.restaurants {
		c.restaurants[id] = r
	}
	for id, i := range d.items {
		c.items[id] = i
	}
	for id, l := range d.cartLines {
		c.cartLines[id] = l
	}
	for id, o := range d.orders {
		o.Items = append([]models.OrderItem(nil), o.Items...)
		c.orders[id] = o
	}
	return c
}

func (d *memData) allocID() uint {
	d.nextID++
	return d.nextID
}

func (s *memStore) Users() repository.UserRepository             { return &memUserRepo{s} }
func (s *memStore) Restaurants() repository.RestaurantRepository { return &memRestaurantRepo{s} }
func (s *memStore) Menu() repository.MenuRepository              { return &memMenuRepo{s} }
func (s *memStore) Cart() repository.CartRepository              { return &memCartRepo{s} }
func (s *memStore) Orders() repository.OrderRepository           { return &memOrderRepo{s} }

func (s *memStore) Atomically(fn func(repository.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	tx := &memStore{data: s.data}
	if err := fn(tx); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// seed helpers

func (s *memStore) seedUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.data.allocID()
	}
	s.data.users[u.ID] = u
	return u
}

func (s *memStore) seedRestaurant(r models.Restaurant) models.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		r.ID = s.data.allocID()
	}
	s.data.restaurants[r.ID] = r
	return r
}

func (s *memStore) seedItem(i models.MenuItem) models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i.ID == 0 {
		i.ID = s.data.allocID()
	}
	s.data.items[i.ID] = i
	return i
}

// user repository

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = r.s.data.allocID()
	r.s.data.users[user.ID] = *user
	return nil
}

func (r *memUserRepo) GetByID(id uint) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.data.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByUsername(username string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.data.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUserRepo) Update(user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.users[user.ID] = *user
	return nil
}

// restaurant repository

type memRestaurantRepo struct{ s *memStore }

func (r *memRestaurantRepo) Create(restaurant *models.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	restaurant.ID = r.s.data.allocID()
	r.s.data.restaurants[restaurant.ID] = *restaurant
	return nil
}

func (r *memRestaurantRepo) GetByID(id uint) (*models.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rest, ok := r.s.data.restaurants[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &rest, nil
}

func (r *memRestaurantRepo) GetByOwnerID(ownerID uint) ([]models.Restaurant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Restaurant
	for _, rest := range r.s.data.restaurants {
		if rest.OwnerID == ownerID {
			out = append(out, rest)
		}
	}
	return out, nil
}

func (r *memRestaurantRepo) Update(restaurant *models.Restaurant) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.restaurants[restaurant.ID] = *restaurant
	return nil
}

// menu repository

type memMenuRepo struct{ s *memStore }

func (r *memMenuRepo) Create(item *models.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = r.s.data.allocID()
	r.s.data.items[item.ID] = *item
	return nil
}

func (r *memMenuRepo) GetByID(id uint) (*models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item, ok := r.s.data.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &item, nil
}

func (r *memMenuRepo) GetByIDForUpdate(id uint) (*models.MenuItem, error) {
	return r.GetByID(id)
}

func (r *memMenuRepo) ListAvailable(restaurantID uint) ([]models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.MenuItem
	for _, item := range r.s.data.items {
		if item.RestaurantID == restaurantID && item.IsAvailable {
			out = append(out, item)
		}
	}
	sortMenuItems(out)
	return out, nil
}

func (r *memMenuRepo) ListByRestaurant(restaurantID uint) ([]models.MenuItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.MenuItem
	for _, item := range r.s.data.items {
		if item.RestaurantID == restaurantID {
			out = append(out, item)
		}
	}
	sortMenuItems(out)
	return out, nil
}

func sortMenuItems(items []models.MenuItem) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
}

func (r *memMenuRepo) Update(item *models.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.items[item.ID] = *item
	return nil
}

func (r *memMenuRepo) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.data.items, id)
	return nil
}

// cart repository

type memCartRepo struct{ s *memStore }

func (r *memCartRepo) GetLine(customerID, menuItemID uint) (*models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, line := range r.s.data.cartLines {
		if line.CustomerID == customerID && line.MenuItemID == menuItemID {
			line := line
			return &line, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memCartRepo) GetLineForUpdate(customerID, menuItemID uint) (*models.CartItem, error) {
	return r.GetLine(customerID, menuItemID)
}

func (r *memCartRepo) GetLines(customerID uint) ([]models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.CartItem
	for _, line := range r.s.data.cartLines {
		if line.CustomerID == customerID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memCartRepo) GetLinesForUpdate(customerID, restaurantID uint) ([]models.CartItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.CartItem
	for _, line := range r.s.data.cartLines {
		if line.CustomerID == customerID && line.RestaurantID == restaurantID {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// LockCustomer is a no-op: Atomically already serializes whole
// transactions behind the root mutex.
func (r *memCartRepo) LockCustomer(customerID uint) error {
	return nil
}

func (r *memCartRepo) CountForCustomer(customerID uint) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	count := 0
	for _, line := range r.s.data.cartLines {
		if line.CustomerID == customerID {
			count += line.Quantity
		}
	}
	return count, nil
}

// Merge mirrors the upsert: existing customer+item lines absorb the
// quantity instead of raising a duplicate key error.
func (r *memCartRepo) Merge(line *models.CartItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, existing := range r.s.data.cartLines {
		if existing.CustomerID == line.CustomerID && existing.MenuItemID == line.MenuItemID {
			existing.Quantity += line.Quantity
			existing.SpecialInstructions = line.SpecialInstructions
			r.s.data.cartLines[id] = existing
			return nil
		}
	}
	line.ID = r.s.data.allocID()
	r.s.data.cartLines[line.ID] = *line
	return nil
}

func (r *memCartRepo) Update(line *models.CartItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.data.cartLines[line.ID] = *line
	return nil
}

func (r *memCartRepo) DeleteLine(customerID, menuItemID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, line := range r.s.data.cartLines {
		if line.CustomerID == customerID && line.MenuItemID == menuItemID {
			delete(r.s.data.cartLines, id)
		}
	}
	return nil
}

func (r *memCartRepo) Clear(customerID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, line := range r.s.data.cartLines {
		if line.CustomerID == customerID {
			delete(r.s.data.cartLines, id)
		}
	}
	return nil
}

func (r *memCartRepo) ClearForRestaurant(customerID, restaurantID uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, line := range r.s.data.cartLines {
		if line.CustomerID == customerID && line.RestaurantID == restaurantID {
			delete(r.s.data.cartLines, id)
		}
	}
	return nil
}

// order repository

type memOrderRepo struct{ s *memStore }

func (r *memOrderRepo) Create(order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order.ID = r.s.data.allocID()
	for i := range order.Items {
		order.Items[i].ID = r.s.data.allocID()
		order.Items[i].OrderID = order.ID
	}
	stored := *order
	stored.Items = append([]models.OrderItem(nil), order.Items...)
	r.s.data.orders[order.ID] = stored
	return nil
}

func (r *memOrderRepo) GetByID(id uint) (*models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.data.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	order.Items = append([]models.OrderItem(nil), order.Items...)
	return &order, nil
}

func (r *memOrderRepo) GetByCustomerID(customerID uint) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Order
	for _, order := range r.s.data.orders {
		if order.CustomerID == customerID {
			order.Items = append([]models.OrderItem(nil), order.Items...)
			out = append(out, order)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlacedAt.After(out[j].PlacedAt) })
	return out, nil
}

func (r *memOrderRepo) GetByRestaurantID(restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []models.Order
	for _, order := range r.s.data.orders {
		if order.RestaurantID != restaurantID {
			continue
		}
		if status != "" && order.Status != status {
			continue
		}
		order.Items = append([]models.OrderItem(nil), order.Items...)
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlacedAt.After(out[j].PlacedAt) })
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(order *models.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.data.orders[order.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = order.Status
	stored.DeliveredAt = order.DeliveredAt
	r.s.data.orders[order.ID] = stored
	return nil
}

func (r *memOrderRepo) ItemTotalsForPeriod(restaurantID uint, start, end time.Time) ([]repository.ItemSales, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := make(map[uint]int64)
	for _, order := range r.s.data.orders {
		if order.RestaurantID != restaurantID {
			continue
		}
		if order.PlacedAt.Before(start) || !order.PlacedAt.Before(end) {
			continue
		}
		for _, item := range order.Items {
			totals[item.MenuItemID] += int64(item.Quantity)
		}
	}
	var out []repository.ItemSales
	for id, total := range totals {
		out = append(out, repository.ItemSales{MenuItemID: id, TotalQuantity: total})
	}
	return out, nil
}

func (r *memOrderRepo) CountByStatus(restaurantID uint) ([]repository.StatusCount, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	counts := make(map[models.OrderStatus]int64)
	for _, order := range r.s.data.orders {
		if order.RestaurantID == restaurantID {
			counts[order.Status]++
		}
	}
	var out []repository.StatusCount
	for status, count := range counts {
		out = append(out, repository.StatusCount{Status: status, Count: count})
	}
	return out, nil
}

func (r *memOrderRepo) DeliveredRevenueCents(restaurantID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total int64
	for _, order := range r.s.data.orders {
		if order.RestaurantID == restaurantID && order.Status == models.OrderDelivered {
			total += order.TotalCents
		}
	}
	return total, nil
}

func (r *memOrderRepo) TopItems(restaurantID uint, limit int) ([]repository.ItemSales, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	totals := make(map[uint]int64)
	for _, order := range r.s.data.orders {
		if order.RestaurantID != restaurantID {
			continue
		}
		for _, item := range order.Items {
			totals[item.MenuItemID] += int64(item.Quantity)
		}
	}
	var out []repository.ItemSales
	for id, total := range totals {
		row := repository.ItemSales{MenuItemID: id, TotalQuantity: total}
		if item, ok := r.s.data.items[id]; ok {
			row.Name = item.Name
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TotalQuantity > out[j].TotalQuantity })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// fake caches

type fakeCartCache struct {
	mu     sync.Mutex
	counts map[uint]int
}

func newFakeCartCache() *fakeCartCache {
	return &fakeCartCache{counts: make(map[uint]int)}
}

func (c *fakeCartCache) GetCartCount(customerID uint) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	count, ok := c.counts[customerID]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return count, nil
}

func (c *fakeCartCache) SetCartCount(customerID uint, count int, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[customerID] = count
	return nil
}

func (c *fakeCartCache) InvalidateCartCount(customerID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, customerID)
	return nil
}

type fakeAnalyticsCache struct {
	mu   sync.Mutex
	sets map[string][]uint
}

func newFakeAnalyticsCache() *fakeAnalyticsCache {
	return &fakeAnalyticsCache{sets: make(map[string][]uint)}
}

func (c *fakeAnalyticsCache) key(restaurantID uint, day string) string {
	return fmt.Sprintf("%d:%s", restaurantID, day)
}

func (c *fakeAnalyticsCache) GetMostlyOrdered(restaurantID uint, day string) ([]uint, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := c.sets[c.key(restaurantID, day)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ids, nil
}

func (c *fakeAnalyticsCache) SetMostlyOrdered(restaurantID uint, day string, itemIDs []uint, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets[c.key(restaurantID, day)] = itemIDs
	return nil
}
