package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

var buyer = models.Identity{UserID: 42, Role: models.RoleBuyer}

func newCartRouter(carts CartService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(carts)
	router := gin.New()
	group := router.Group("/api/cart", asUser(buyer))
	group.GET("/getCartItems", controller.GetCartItems)
	group.POST("/addItem", controller.AddItem)
	group.PUT("/updateItem", controller.UpdateItem)
	group.DELETE("/removeItem/:productId", controller.RemoveItem)
	group.DELETE("/clearCart", controller.ClearCart)
	return router
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestAddItemController(t *testing.T) {
	item := models.CartItemData{ProductID: 10, Quantity: 2}

	t.Run("New row - 201", func(t *testing.T) {
		carts := new(MockCartService)
		carts.On("Add", mock.Anything, uint(42), item).Return(true, nil).Once()

		w := httptest.NewRecorder()
		newCartRouter(carts).ServeHTTP(w, jsonRequest(http.MethodPost, "/api/cart/addItem", `{"product_id":10,"quantity":2}`))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Summed row - 200", func(t *testing.T) {
		carts := new(MockCartService)
		carts.On("Add", mock.Anything, uint(42), item).Return(false, nil).Once()

		w := httptest.NewRecorder()
		newCartRouter(carts).ServeHTTP(w, jsonRequest(http.MethodPost, "/api/cart/addItem", `{"product_id":10,"quantity":2}`))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "quantity increased")
	})

	t.Run("Zero quantity - 400 before the service", func(t *testing.T) {
		carts := new(MockCartService)

		w := httptest.NewRecorder()
		newCartRouter(carts).ServeHTTP(w, jsonRequest(http.MethodPost, "/api/cart/addItem", `{"product_id":10,"quantity":0}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		carts.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stock ceiling - 400", func(t *testing.T) {
		carts := new(MockCartService)
		carts.On("Add", mock.Anything, uint(42), item).
			Return(false, services.ErrInsufficientStock.WithMessage("Only 1 items in stock")).Once()

		w := httptest.NewRecorder()
		newCartRouter(carts).ServeHTTP(w, jsonRequest(http.MethodPost, "/api/cart/addItem", `{"product_id":10,"quantity":2}`))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Only 1 items in stock","code":"insufficient_stock"}`, w.Body.String())
	})
}

func TestRemoveAndClearController(t *testing.T) {
	carts := new(MockCartService)
	carts.On("Remove", mock.Anything, uint(42), uint(10)).Return(nil).Once()
	carts.On("Clear", mock.Anything, uint(42)).Return(nil).Once()
	router := newCartRouter(carts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart/removeItem/10", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart/clearCart", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/cart/removeItem/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	carts.AssertExpectations(t)
}

func TestCartController_RequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(new(MockCartService))
	router := gin.New()
	router.GET("/api/cart/getCartItems", controller.GetCartItems)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart/getCartItems", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
