package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/middleware"
	"foodmood-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

// RegisterRoutes registers the routes for cart management
func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// All cart routes require authentication
	cartRoutes := router.Group("/cart", authMiddleware.AuthRequired())
	{
		// Get the user's cart
		cartRoutes.GET("", h.GetCart)
		// Add item to cart
		cartRoutes.POST("/items", h.AddItem)
		// Change line quantity
		cartRoutes.POST("/items/:line_id/increment", h.IncrementLine)
		cartRoutes.POST("/items/:line_id/decrement", h.DecrementLine)
		// Set special instructions on a line
		cartRoutes.PUT("/items/:line_id/instructions", h.SetInstructions)
		// Remove line from cart
		cartRoutes.DELETE("/items/:line_id", h.RemoveLine)
		// Clear cart
		cartRoutes.DELETE("", h.ClearCart)
		// Sidebar visibility
		cartRoutes.POST("/toggle", h.ToggleSidebar)
		cartRoutes.POST("/close", h.CloseSidebar)
	}
}

// GetCart godoc
// @Summary Get user's cart
// @Description Get the current cart with derived pricing
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartView
// @Failure 401 {object} ErrorResponse
// @Router /cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartService.GetCart(c.Request.Context(), userID))
}

// AddItem godoc
// @Summary Add item to cart
// @Description Add a menu item to the cart, merging quantities for repeats.
// @Description Items from a second restaurant are refused with 409 unless
// @Description replace is set, which starts a fresh cart for that restaurant.
// @Tags cart
// @Accept json
// @Produce json
// @Param item body AddCartItemRequest true "Cart item data"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} CartConflictResponse
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	view, err := h.cartService.AddItem(c.Request.Context(), userID, req.MenuItemID, req.Replace)
	if err != nil {
		if errors.Is(err, cart.ErrDifferentRestaurant) {
			c.JSON(http.StatusConflict, CartConflictResponse{
				Error:          "Cart holds items from another restaurant",
				Message:        err.Error(),
				ReplaceAllowed: true,
			})
			return
		}
		if errors.Is(err, services.ErrInvalidPrice) {
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Menu item unavailable",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to add item to cart",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// IncrementLine godoc
// @Summary Increment line quantity
// @Tags cart
// @Produce json
// @Param line_id path int true "Cart line ID"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{line_id}/increment [post]
func (h *CartHandler) IncrementLine(c *gin.Context) {
	h.lineOp(c, h.cartService.IncrementLine)
}

// DecrementLine godoc
// @Summary Decrement line quantity
// @Description Decrement the line's quantity; a line at quantity one is removed
// @Tags cart
// @Produce json
// @Param line_id path int true "Cart line ID"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{line_id}/decrement [post]
func (h *CartHandler) DecrementLine(c *gin.Context) {
	h.lineOp(c, h.cartService.DecrementLine)
}

// RemoveLine godoc
// @Summary Remove line from cart
// @Tags cart
// @Produce json
// @Param line_id path int true "Cart line ID"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{line_id} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	h.lineOp(c, h.cartService.RemoveLine)
}

// SetInstructions godoc
// @Summary Set special instructions on a cart line
// @Tags cart
// @Accept json
// @Produce json
// @Param line_id path int true "Cart line ID"
// @Param instructions body SetInstructionsRequest true "Instructions"
// @Success 200 {object} services.CartView
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /cart/items/{line_id}/instructions [put]
func (h *CartHandler) SetInstructions(c *gin.Context) {
	var req SetInstructionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	lineID, ok := parseLineID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.cartService.SetInstructions(c.Request.Context(), userID, lineID, req.Instructions))
}

// ToggleSidebar godoc
// @Summary Toggle cart sidebar visibility
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartView
// @Failure 401 {object} ErrorResponse
// @Router /cart/toggle [post]
func (h *CartHandler) ToggleSidebar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartService.ToggleSidebar(c.Request.Context(), userID))
}

// CloseSidebar godoc
// @Summary Hide the cart sidebar
// @Tags cart
// @Produce json
// @Success 200 {object} services.CartView
// @Failure 401 {object} ErrorResponse
// @Router /cart/close [post]
func (h *CartHandler) CloseSidebar(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	c.JSON(http.StatusOK, h.cartService.CloseSidebar(c.Request.Context(), userID))
}

// ClearCart godoc
// @Summary Clear user's cart
// @Tags cart
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Router /cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	h.cartService.Clear(c.Request.Context(), userID)
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) lineOp(c *gin.Context, op func(ctx context.Context, userID string, lineID int64) *services.CartView) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "Unauthorized",
			Message: "User ID not found",
		})
		return
	}

	lineID, ok := parseLineID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, op(c.Request.Context(), userID, lineID))
}

func parseLineID(c *gin.Context) (int64, bool) {
	lineID, err := strconv.ParseInt(c.Param("line_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid line ID",
			Message: "Line ID must be an integer",
		})
		return 0, false
	}
	return lineID, true
}

// Request and Response structs
type AddCartItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Replace    bool   `json:"replace"`
}

type SetInstructionsRequest struct {
	Instructions string `json:"instructions"`
}

type CartConflictResponse struct {
	Error          string `json:"error"`
	Message        string `json:"message"`
	ReplaceAllowed bool   `json:"replace_allowed"`
}
