package handlers

import (
	"net/http"

	"foodmood-backend/internal/middleware"
	"foodmood-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the routes for browsing moods, foods, restaurants
// and menus. The browsing flow is public; no authentication is required.
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup, _ *middleware.AuthMiddleware) {
	moods := router.Group("/moods")
	{
		moods.GET("", h.ListMoods)
		moods.GET("/:mood_id/foods", h.FoodsByMood)
	}

	foods := router.Group("/foods")
	{
		foods.GET("", h.ListFoods)
		foods.GET("/:food_id/restaurants", h.RestaurantsByFood)
	}

	restaurants := router.Group("/restaurants")
	{
		restaurants.GET("", h.ListRestaurants)
		restaurants.GET("/:restaurant_id", h.GetRestaurant)
		restaurants.GET("/:restaurant_id/menu", h.MenuByRestaurant)
	}

	router.GET("/menu-items/:item_id", h.GetMenuItem)
}

// ListMoods godoc
// @Summary List moods
// @Description Get all moods the user can browse by
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Mood
// @Failure 500 {object} ErrorResponse
// @Router /moods [get]
func (h *CatalogHandler) ListMoods(c *gin.Context) {
	moods, err := h.catalogService.ListMoods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get moods",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, moods)
}

// FoodsByMood godoc
// @Summary List foods for a mood
// @Description Get the foods suggested for the given mood
// @Tags catalog
// @Produce json
// @Param mood_id path string true "Mood ID"
// @Success 200 {array} models.Food
// @Failure 400 {object} ErrorResponse
// @Router /moods/{mood_id}/foods [get]
func (h *CatalogHandler) FoodsByMood(c *gin.Context) {
	foods, err := h.catalogService.FoodsByMood(c.Request.Context(), c.Param("mood_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to get foods",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// ListFoods godoc
// @Summary List foods
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Food
// @Failure 500 {object} ErrorResponse
// @Router /foods [get]
func (h *CatalogHandler) ListFoods(c *gin.Context) {
	foods, err := h.catalogService.ListFoods(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get foods",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, foods)
}

// RestaurantsByFood godoc
// @Summary List restaurants serving a food
// @Tags catalog
// @Produce json
// @Param food_id path string true "Food ID"
// @Success 200 {array} models.Restaurant
// @Failure 400 {object} ErrorResponse
// @Router /foods/{food_id}/restaurants [get]
func (h *CatalogHandler) RestaurantsByFood(c *gin.Context) {
	restaurants, err := h.catalogService.RestaurantsByFood(c.Request.Context(), c.Param("food_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to get restaurants",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// ListRestaurants godoc
// @Summary List restaurants
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Restaurant
// @Failure 500 {object} ErrorResponse
// @Router /restaurants [get]
func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.catalogService.ListRestaurants(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to get restaurants",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, restaurants)
}

// GetRestaurant godoc
// @Summary Get a restaurant
// @Tags catalog
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Success 200 {object} models.Restaurant
// @Failure 404 {object} ErrorResponse
// @Router /restaurants/{restaurant_id} [get]
func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.catalogService.GetRestaurant(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Restaurant not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, restaurant)
}

// MenuByRestaurant godoc
// @Summary Get a restaurant's menu
// @Tags catalog
// @Produce json
// @Param restaurant_id path string true "Restaurant ID"
// @Success 200 {array} models.MenuItem
// @Failure 400 {object} ErrorResponse
// @Router /restaurants/{restaurant_id}/menu [get]
func (h *CatalogHandler) MenuByRestaurant(c *gin.Context) {
	items, err := h.catalogService.MenuByRestaurant(c.Request.Context(), c.Param("restaurant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Failed to get menu",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMenuItem godoc
// @Summary Get a menu item
// @Tags catalog
// @Produce json
// @Param item_id path string true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} ErrorResponse
// @Router /menu-items/{item_id} [get]
func (h *CatalogHandler) GetMenuItem(c *gin.Context) {
	item, err := h.catalogService.GetMenuItem(c.Request.Context(), c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Menu item not found",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ErrorResponse is the error body shared by all handlers.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
