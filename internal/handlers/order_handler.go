package handlers

import (
	"net/http"

	"github.com/BackspaceAditya/JustEat/internal/middleware"
	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type placeOrderRequest struct {
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
	Notes        string `json:"notes"`
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}

	order, err := h.orderService.PlaceOrder(middleware.UserID(c), req.RestaurantID, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Order placed successfully",
		"order_id": order.ID,
		"order":    order,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListByCustomer(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.orderService.GetOrder(middleware.UserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (h *OrderHandler) Reorder(c *gin.Context) {
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	cart, skipped, err := h.orderService.Reorder(middleware.UserID(c), orderID)
	if err != nil {
		respondError(c, err)
		return
	}
	if skipped == nil {
		skipped = []uint{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"cart":             cart,
		"skipped_item_ids": skipped,
	})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateStatus(orderID, models.OrderStatus(req.Status), middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": order.Status, "order": order})
}

func (h *OrderHandler) ListRestaurantOrders(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	status := models.OrderStatus(c.Query("status"))

	orders, err := h.orderService.ListByRestaurant(middleware.UserID(c), restaurantID, status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}
