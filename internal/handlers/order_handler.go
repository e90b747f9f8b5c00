package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"foodmood-backend/internal/cart"
	"foodmood-backend/internal/middleware"
	"foodmood-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// RegisterRoutes registers the routes for order management
func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup, authMiddleware *middleware.AuthMiddleware) {
	// All order routes require authentication
	orders := router.Group("/orders", authMiddleware.AuthRequired())
	{
		// Submit the current cart as an order
		orders.POST("", h.SubmitOrder)
		// List the user's orders
		orders.GET("", h.GetUserOrders)
		// Get the user's most recent order
		orders.GET("/latest", h.GetLatestOrder)
		// Get one order
		orders.GET("/:order_id", h.GetOrder)
		// Advance an order's status
		orders.PATCH("/:order_id/status", h.UpdateOrderStatus)
	}
}

// SubmitOrder godoc
// @Summary Submit the cart as an order
// @Description Persist the current cart as a pending order. The order and its
// @Description items are written atomically; the cart is cleared only after
// @Description the write succeeds.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body services.SubmitOrderRequest true "Delivery and payment details"
// @Success 201 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var req services.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	userID := middleware.GetUserID(c)

	order, err := h.orderService.SubmitOrder(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: err.Error(),
			})
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidPaymentMethod):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "Cannot submit order",
				Message: err.Error(),
			})
		case errors.Is(err, cart.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, ErrorResponse{
				Error:   "Submission already in progress",
				Message: err.Error(),
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error:   "Failed to submit order",
				Message: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetUserOrders godoc
// @Summary List the user's orders
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} models.Order
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) GetUserOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := h.orderService.GetUserOrders(c.Request.Context(), userID, limit, offset)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get orders",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetLatestOrder godoc
// @Summary Get the user's most recent order
// @Tags orders
// @Produce json
// @Success 200 {object} models.Order
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/latest [get]
func (h *OrderHandler) GetLatestOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := h.orderService.GetLatestOrder(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "Unauthorized",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "No orders found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrder godoc
// @Summary Get an order
// @Description Get one of the user's orders by ID
// @Tags orders
// @Produce json
// @Param order_id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)

	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("order_id"), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotOrderOwner) {
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error:   "Forbidden",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Order not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus godoc
// @Summary Advance an order's status
// @Description Apply one step of the order status machine
// @Tags orders
// @Accept json
// @Produce json
// @Param order_id path string true "Order ID"
// @Param status body UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), c.Param("order_id"), req.Status)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatusTransition) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Error:   "Invalid status transition",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Order not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, order)
}

// Request and Response structs
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing completed cancelled"`
}
