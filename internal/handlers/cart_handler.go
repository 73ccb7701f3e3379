package handlers

import (
	"net/http"

	"github.com/BackspaceAditya/JustEat/internal/middleware"
	"github.com/BackspaceAditya/JustEat/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addToCartRequest struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}

	line, err := h.cartService.AddItem(middleware.UserID(c), req.MenuItemID, req.Quantity, req.SpecialInstructions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Item added to cart", "line": line})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	lines, err := h.cartService.GetCart(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "items": lines})
}

func (h *CartHandler) GetCount(c *gin.Context) {
	count, err := h.cartService.GetCount(middleware.UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

type updateCartLineRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateLine(c *gin.Context) {
	menuItemID, ok := parseUintParam(c, "menu_item_id")
	if !ok {
		return
	}
	var req updateCartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
		return
	}

	if err := h.cartService.UpdateQuantity(middleware.UserID(c), menuItemID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
}

func (h *CartHandler) RemoveLine(c *gin.Context) {
	menuItemID, ok := parseUintParam(c, "menu_item_id")
	if !ok {
		return
	}
	if err := h.cartService.RemoveItem(middleware.UserID(c), menuItemID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
}

func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.Clear(middleware.UserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared"})
}
