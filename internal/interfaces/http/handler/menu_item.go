package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	diningapp "github.com/menuboard/backend/internal/application/dining"
)

// MenuItemHandler handles endpoints for globally shared menu items
type MenuItemHandler struct {
	BaseHandler
	menuItemService *diningapp.MenuItemService
}

// NewMenuItemHandler creates a new MenuItemHandler
func NewMenuItemHandler(menuItemService *diningapp.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{
		menuItemService: menuItemService,
	}
}

// Create handles POST /menu_items
func (h *MenuItemHandler) Create(c *gin.Context) {
	var req diningapp.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuItemService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, item)
}

// GetByID handles GET /menu_items/:id
func (h *MenuItemHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	item, err := h.menuItemService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// List handles GET /menu_items
func (h *MenuItemHandler) List(c *gin.Context) {
	filter, ok := bindListFilter(h.BaseHandler, c)
	if !ok {
		return
	}

	items, total, err := h.menuItemService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// ListForRestaurant handles GET /restaurants/:id/menu_items, returning the
// distinct items placed on any of the restaurant's menus
func (h *MenuItemHandler) ListForRestaurant(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return
	}

	filter, ok := bindListFilter(h.BaseHandler, c)
	if !ok {
		return
	}

	items, total, err := h.menuItemService.ListForRestaurant(c.Request.Context(), restaurantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Update handles PUT /menu_items/:id
func (h *MenuItemHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req diningapp.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	item, err := h.menuItemService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, item)
}

// Delete handles DELETE /menu_items/:id. Every placement referencing the
// item is removed alongside it.
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	if err := h.menuItemService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
