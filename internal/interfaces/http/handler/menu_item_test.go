package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	diningapp "github.com/menuboard/backend/internal/application/dining"
	"github.com/menuboard/backend/internal/domain/dining"
	"github.com/menuboard/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type menuItemTestMocks struct {
	items       *MockMenuItemRepository
	restaurants *MockRestaurantRepository
}

func newMenuItemTestServer() (*gin.Engine, menuItemTestMocks) {
	mocks := menuItemTestMocks{
		items:       new(MockMenuItemRepository),
		restaurants: new(MockRestaurantRepository),
	}
	h := NewMenuItemHandler(diningapp.NewMenuItemService(mocks.items, mocks.restaurants))

	r := gin.New()
	r.POST("/menu_items", h.Create)
	r.GET("/menu_items", h.List)
	r.GET("/menu_items/:id", h.GetByID)
	r.PUT("/menu_items/:id", h.Update)
	r.DELETE("/menu_items/:id", h.Delete)
	r.GET("/restaurants/:id/menu_items", h.ListForRestaurant)
	return r, mocks
}

func mustNewMenuItem(t *testing.T, name string) *dining.MenuItem {
	t.Helper()
	item, err := dining.NewMenuItem(name)
	require.NoError(t, err)
	return item
}

func TestMenuItemHandlerCreate(t *testing.T) {
	server, mocks := newMenuItemTestServer()
	mocks.items.On("FindByNormalizedName", mock.Anything, " Pancakes  Deluxe").Return(nil, shared.ErrNotFound)
	mocks.items.On("Save", mock.Anything, mock.AnythingOfType("*dining.MenuItem")).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/menu_items", bytes.NewBufferString(`{"name": " Pancakes  Deluxe"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool                        `json:"success"`
		Data    diningapp.MenuItemResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Pancakes Deluxe", resp.Data.Name)
	mocks.items.AssertExpectations(t)
}

func TestMenuItemHandlerCreateDuplicateName(t *testing.T) {
	existing := mustNewMenuItem(t, "Pancakes")
	server, mocks := newMenuItemTestServer()
	mocks.items.On("FindByNormalizedName", mock.Anything, "Pancakes").Return(existing, nil)

	req := httptest.NewRequest(http.MethodPost, "/menu_items", bytes.NewBufferString(`{"name": "Pancakes"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mocks.items.AssertNotCalled(t, "Save")
}

func TestMenuItemHandlerGetByID(t *testing.T) {
	existing := mustNewMenuItem(t, "Pancakes")
	server, mocks := newMenuItemTestServer()
	mocks.items.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)

	req := httptest.NewRequest(http.MethodGet, "/menu_items/"+existing.ID.String(), nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pancakes")
}

func TestMenuItemHandlerList(t *testing.T) {
	first := mustNewMenuItem(t, "Pancakes")
	second := mustNewMenuItem(t, "Waffles")
	server, mocks := newMenuItemTestServer()
	mocks.items.On("FindAll", mock.Anything, mock.Anything).Return([]dining.MenuItem{*first, *second}, nil)
	mocks.items.On("Count", mock.Anything, mock.Anything).Return(int64(2), nil)

	req := httptest.NewRequest(http.MethodGet, "/menu_items", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                          `json:"success"`
		Data    []diningapp.MenuItemResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
}

func TestMenuItemHandlerListForRestaurant(t *testing.T) {
	restaurant := mustNewRestaurant(t, "Cafe Rio")
	item := mustNewMenuItem(t, "Pancakes")
	server, mocks := newMenuItemTestServer()
	mocks.restaurants.On("FindByID", mock.Anything, restaurant.ID).Return(restaurant, nil)
	mocks.items.On("FindAllForRestaurant", mock.Anything, restaurant.ID, mock.Anything).Return([]dining.MenuItem{*item}, nil)
	mocks.items.On("CountForRestaurant", mock.Anything, restaurant.ID, mock.Anything).Return(int64(1), nil)

	req := httptest.NewRequest(http.MethodGet, "/restaurants/"+restaurant.ID.String()+"/menu_items", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Pancakes")
}

func TestMenuItemHandlerListForRestaurantMissing(t *testing.T) {
	server, mocks := newMenuItemTestServer()
	mocks.restaurants.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/restaurants/"+uuid.NewString()+"/menu_items", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mocks.items.AssertNotCalled(t, "FindAllForRestaurant")
}

func TestMenuItemHandlerUpdate(t *testing.T) {
	existing := mustNewMenuItem(t, "Pancakes")
	server, mocks := newMenuItemTestServer()
	mocks.items.On("FindByID", mock.Anything, existing.ID).Return(existing, nil)
	mocks.items.On("FindByNormalizedName", mock.Anything, "Belgian Waffles").Return(nil, shared.ErrNotFound)
	mocks.items.On("Save", mock.Anything, mock.AnythingOfType("*dining.MenuItem")).Return(nil)

	req := httptest.NewRequest(http.MethodPut, "/menu_items/"+existing.ID.String(), bytes.NewBufferString(`{"name": "Belgian Waffles"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Belgian Waffles")
}

func TestMenuItemHandlerDelete(t *testing.T) {
	id := uuid.New()
	server, mocks := newMenuItemTestServer()
	mocks.items.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/menu_items/"+id.String(), nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mocks.items.AssertExpectations(t)
}

func TestMenuItemHandlerInvalidUUID(t *testing.T) {
	server, mocks := newMenuItemTestServer()

	req := httptest.NewRequest(http.MethodGet, "/menu_items/not-a-uuid", nil)
	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid menu item ID format")
	mocks.items.AssertNotCalled(t, "FindByID")
}
