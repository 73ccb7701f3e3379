package handlers

import (
	"net/http"

	"github.com/BackspaceAditya/JustEat/internal/middleware"
	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/services"

	"github.com/gin-gonic/gin"
)

type MenuHandler struct {
	catalogService services.CatalogService
}

func NewMenuHandler(catalogService services.CatalogService) *MenuHandler {
	return &MenuHandler{catalogService: catalogService}
}

// PublicMenu lists the available items of a restaurant, ordered by
// category then name.
func (h *MenuHandler) PublicMenu(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	items, err := h.catalogService.ListAvailable(restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

// MyRestaurants lists the restaurants owned by the authenticated
// owner, so clients never have to guess restaurant ids.
func (h *MenuHandler) MyRestaurants(c *gin.Context) {
	restaurants, err := h.catalogService.ListOwnRestaurants(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "restaurants": restaurants})
}

func (h *MenuHandler) ListForOwner(c *gin.Context) {
	restaurantID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	items, err := h.catalogService.ListForOwner(middleware.UserID(c), restaurantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": items})
}

type menuItemRequest struct {
	RestaurantID uint   `json:"restaurant_id"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceCents   int64  `json:"price_cents" binding:"required,min=1"`
	Category     string `json:"category" binding:"required"`
	IsVegetarian bool   `json:"is_vegetarian"`
	IsVegan      bool   `json:"is_vegan"`
	IsGlutenFree bool   `json:"is_gluten_free"`
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}
	if req.RestaurantID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "restaurant_id is required"})
		return
	}

	item := &models.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Category:     req.Category,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsGlutenFree: req.IsGlutenFree,
		IsAvailable:  true,
	}
	if err := h.catalogService.CreateItem(middleware.UserID(c), item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Menu item created", "item": item})
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}

	item := &models.MenuItem{
		ID:           itemID,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		Category:     req.Category,
		IsVegetarian: req.IsVegetarian,
		IsVegan:      req.IsVegan,
		IsGlutenFree: req.IsGlutenFree,
	}
	updated, err := h.catalogService.UpdateItem(middleware.UserID(c), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item updated", "item": updated})
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.DeleteItem(middleware.UserID(c), itemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu item deleted"})
}

type flagRequest struct {
	Value *bool `json:"value" binding:"required"`
}

func (h *MenuHandler) SetAvailability(c *gin.Context) {
	h.setFlag(c, h.catalogService.SetAvailability)
}

func (h *MenuHandler) SetSpecial(c *gin.Context) {
	h.setFlag(c, h.catalogService.SetSpecial)
}

func (h *MenuHandler) SetDealOfDay(c *gin.Context) {
	h.setFlag(c, h.catalogService.SetDealOfDay)
}

func (h *MenuHandler) setFlag(c *gin.Context, apply func(ownerID, itemID uint, value bool) (*models.MenuItem, error)) {
	itemID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req flagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}

	item, err := apply(middleware.UserID(c), itemID, *req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "item": item})
}
