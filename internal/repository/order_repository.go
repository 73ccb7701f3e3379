package repository

import (
	"time"

	"github.com/BackspaceAditya/JustEat/internal/models"

	"gorm.io/gorm"
)

// ItemSales is an aggregation row: total quantity ordered for a menu
// item. Name is only populated by queries that join menu_items.
type ItemSales struct {
	MenuItemID    uint   `json:"menu_item_id"`
	Name          string `json:"name,omitempty"`
	TotalQuantity int64  `json:"total_quantity"`
}

// StatusCount is an aggregation row: number of orders in a status.
type StatusCount struct {
	Status models.OrderStatus `json:"status"`
	Count  int64              `json:"count"`
}

type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	GetByCustomerID(customerID uint) ([]models.Order, error)
	GetByRestaurantID(restaurantID uint, status models.OrderStatus) ([]models.Order, error)
	// UpdateStatus persists status and delivered_at only. Orders are
	// immutable apart from those two columns.
	UpdateStatus(order *models.Order) error
	// ItemTotalsForPeriod sums order item quantities per menu item over
	// orders of the restaurant placed in [start, end).
	ItemTotalsForPeriod(restaurantID uint, start, end time.Time) ([]ItemSales, error)
	CountByStatus(restaurantID uint) ([]StatusCount, error)
	DeliveredRevenueCents(restaurantID uint) (int64, error)
	TopItems(restaurantID uint, limit int) ([]ItemSales, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByCustomerID(customerID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("placed_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByRestaurantID(restaurantID uint, status models.OrderStatus) ([]models.Order, error) {
	query := r.db.Preload("Items").Where("restaurant_id = ?", restaurantID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var orders []models.Order
	err := query.Order("placed_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(order *models.Order) error {
	return r.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":       order.Status,
			"delivered_at": order.DeliveredAt,
		}).Error
}

func (r *orderRepository) ItemTotalsForPeriod(restaurantID uint, start, end time.Time) ([]ItemSales, error) {
	var rows []ItemSales
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.menu_item_id, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.restaurant_id = ? AND orders.placed_at >= ? AND orders.placed_at < ?", restaurantID, start, end).
		Group("order_items.menu_item_id").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) CountByStatus(restaurantID uint) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Where("restaurant_id = ?", restaurantID).
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepository) DeliveredRevenueCents(restaurantID uint) (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, models.OrderDelivered).
		Select("COALESCE(SUM(total_cents), 0)").
		Scan(&total).Error
	return total, err
}

func (r *orderRepository) TopItems(restaurantID uint, limit int) ([]ItemSales, error) {
	var rows []ItemSales
	err := r.db.Model(&models.OrderItem{}).
		Select("order_items.menu_item_id, menu_items.name, SUM(order_items.quantity) AS total_quantity").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN menu_items ON menu_items.id = order_items.menu_item_id").
		Where("orders.restaurant_id = ?", restaurantID).
		Group("order_items.menu_item_id, menu_items.name").
		Order("total_quantity DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
