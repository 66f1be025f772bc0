package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	diningapp "github.com/menuboard/backend/internal/application/dining"
)

// RestaurantHandler handles restaurant API endpoints
type RestaurantHandler struct {
	BaseHandler
	restaurantService *diningapp.RestaurantService
}

// NewRestaurantHandler creates a new RestaurantHandler
func NewRestaurantHandler(restaurantService *diningapp.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{
		restaurantService: restaurantService,
	}
}

// Create handles POST /restaurants
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req diningapp.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	restaurant, err := h.restaurantService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, restaurant)
}

// GetByID handles GET /restaurants/:id
func (h *RestaurantHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	restaurant, err := h.restaurantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, restaurant)
}

// List handles GET /restaurants
func (h *RestaurantHandler) List(c *gin.Context) {
	filter, ok := bindListFilter(h.BaseHandler, c)
	if !ok {
		return
	}

	restaurants, total, err := h.restaurantService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, restaurants, total, filter.Page, filter.PageSize)
}

// Update handles PUT /restaurants/:id
func (h *RestaurantHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	var req diningapp.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	restaurant, err := h.restaurantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, restaurant)
}

// Delete handles DELETE /restaurants/:id.
// Menus owned by the restaurant and their placements are removed with it;
// menu items survive because they are shared across restaurants.
func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	if err := h.restaurantService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
