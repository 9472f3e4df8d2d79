package controllers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/vasthra/vasthra-api/middlewares"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/services"
)

// asUser stands in for RequireAuth in controller tests.
func asUser(identity models.Identity) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request = ctx.Request.WithContext(middlewares.WithIdentity(ctx.Request.Context(), identity))
		ctx.Next()
	}
}

type MockAuthService struct{ mock.Mock }

func (m *MockAuthService) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*models.User), args.Error(2)
}

type MockCartService struct{ mock.Mock }

func (m *MockCartService) List(ctx context.Context, userID uint) ([]models.CartLine, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CartLine), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, userID uint, data models.CartItemData) (bool, error) {
	args := m.Called(ctx, userID, data)
	return args.Bool(0), args.Error(1)
}

func (m *MockCartService) Update(ctx context.Context, userID uint, data models.CartItemData) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

func (m *MockCartService) Remove(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockCartService) Clear(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) PlaceOrder(ctx context.Context, userID uint, data models.PlaceOrderData) (*models.Order, error) {
	args := m.Called(ctx, userID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderService) Orders(ctx context.Context, userID uint) ([]models.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderService) Order(ctx context.Context, userID uint, ref string) (*models.Order, error) {
	args := m.Called(ctx, userID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

type MockSellerService struct{ mock.Mock }

func (m *MockSellerService) CreateProduct(ctx context.Context, sellerID uint, data models.ProductData) (*models.Product, error) {
	args := m.Called(ctx, sellerID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockSellerService) Authorize(ctx context.Context, sellerID, productID uint) (*models.Product, error) {
	args := m.Called(ctx, sellerID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockSellerService) UpdateProduct(ctx context.Context, sellerID, productID uint, data models.ProductData) (*models.Product, error) {
	args := m.Called(ctx, sellerID, productID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockSellerService) DeleteProduct(ctx context.Context, sellerID, productID uint) error {
	args := m.Called(ctx, sellerID, productID)
	return args.Error(0)
}

func (m *MockSellerService) Products(ctx context.Context, sellerID uint) ([]models.Product, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockSellerService) Search(ctx context.Context, sellerID uint, rawID, name string) ([]models.Product, error) {
	args := m.Called(ctx, sellerID, rawID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockSellerService) UploadImage(ctx context.Context, sellerID, productID uint, image services.ProductImage) (*models.Product, error) {
	args := m.Called(ctx, sellerID, productID, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
