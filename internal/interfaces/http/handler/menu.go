package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	diningapp "github.com/menuboard/backend/internal/application/dining"
)

// MenuHandler handles menu endpoints nested under a restaurant
type MenuHandler struct {
	BaseHandler
	menuService *diningapp.MenuService
}

// NewMenuHandler creates a new MenuHandler
func NewMenuHandler(menuService *diningapp.MenuService) *MenuHandler {
	return &MenuHandler{
		menuService: menuService,
	}
}

func (h *MenuHandler) restaurantID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid restaurant ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *MenuHandler) menuID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("menu_id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu ID format")
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /restaurants/:id/menus
func (h *MenuHandler) Create(c *gin.Context) {
	restaurantID, ok := h.restaurantID(c)
	if !ok {
		return
	}

	var req diningapp.CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	menu, err := h.menuService.Create(c.Request.Context(), restaurantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, menu)
}

// GetByID handles GET /restaurants/:id/menus/:menu_id
func (h *MenuHandler) GetByID(c *gin.Context) {
	restaurantID, ok := h.restaurantID(c)
	if !ok {
		return
	}
	menuID, ok := h.menuID(c)
	if !ok {
		return
	}

	menu, err := h.menuService.GetByID(c.Request.Context(), restaurantID, menuID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, menu)
}

// List handles GET /restaurants/:id/menus
func (h *MenuHandler) List(c *gin.Context) {
	restaurantID, ok := h.restaurantID(c)
	if !ok {
		return
	}

	filter, ok := bindListFilter(h.BaseHandler, c)
	if !ok {
		return
	}

	menus, total, err := h.menuService.List(c.Request.Context(), restaurantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, menus, total, filter.Page, filter.PageSize)
}

// Update handles PUT /restaurants/:id/menus/:menu_id
func (h *MenuHandler) Update(c *gin.Context) {
	restaurantID, ok := h.restaurantID(c)
	if !ok {
		return
	}
	menuID, ok := h.menuID(c)
	if !ok {
		return
	}

	var req diningapp.UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	menu, err := h.menuService.Update(c.Request.Context(), restaurantID, menuID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, menu)
}

// Delete handles DELETE /restaurants/:id/menus/:menu_id
func (h *MenuHandler) Delete(c *gin.Context) {
	restaurantID, ok := h.restaurantID(c)
	if !ok {
		return
	}
	menuID, ok := h.menuID(c)
	if !ok {
		return
	}

	if err := h.menuService.Delete(c.Request.Context(), restaurantID, menuID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListPlacements handles GET /restaurants/:id/menus/:menu_id/items
func (h *MenuHandler) ListPlacements(c *gin.Context) {
	if _, ok := h.restaurantID(c); !ok {
		return
	}
	menuID, ok := h.menuID(c)
	if !ok {
		return
	}

	placements, err := h.menuService.ListPlacements(c.Request.Context(), menuID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, placements)
}

// UpdatePlacementPrice handles PUT /restaurants/:id/menus/:menu_id/items/:item_id
func (h *MenuHandler) UpdatePlacementPrice(c *gin.Context) {
	if _, ok := h.restaurantID(c); !ok {
		return
	}
	menuID, ok := h.menuID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid menu item ID format")
		return
	}

	var req diningapp.UpdatePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	placement, err := h.menuService.UpdatePlacementPrice(c.Request.Context(), menuID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, placement)
}
