package services

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vasthra/vasthra-api/logger"
	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/repository"
	"go.uber.org/zap"
)

// confirmationTimeout bounds one confirmation email.
const confirmationTimeout = 30 * time.Second

var formattedOrderID = regexp.MustCompile(`^O-(\d{4,})$`)

// OrderMailer sends the confirmation for a committed order.
type OrderMailer interface {
	SendOrderConfirmation(ctx context.Context, user *models.User, order *models.Order) error
}

type OrderService struct {
	orders repository.OrderRepository
	users  repository.UserRepository
	mailer OrderMailer
	// background runs post-commit work off the request path.
	background func(func())
}

// NewOrderService builds the order service. mailer may be nil.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, mailer OrderMailer) *OrderService {
	return &OrderService{
		orders:     orders,
		users:      users,
		mailer:     mailer,
		background: func(fn func()) { go fn() },
	}
}

// PlaceOrder converts the client's cart snapshot into an order. Stock is
// decremented and the matching cart rows are removed in the same transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, data models.PlaceOrderData) (*models.Order, error) {
	paymentMethod := strings.TrimSpace(data.PaymentMethod)
	if len(data.Items) == 0 || data.AddressID == 0 || paymentMethod == "" {
		return nil, ErrIncompleteOrder
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(data.Items))
	for _, line := range data.Items {
		if line.ProductID == 0 || line.Quantity < 1 || line.Price == nil || line.Price.IsNegative() {
			return nil, ErrIncompleteOrder
		}
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, models.OrderItem{
			ProductID:       line.ProductID,
			ProductName:     line.Name,
			ImageURL:        line.ImageURL,
			Size:            line.Size,
			Color:           line.Color,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Price.Round(2),
		})
	}

	order, err := s.orders.PlaceOrder(ctx, repository.PlaceOrderParams{
		UserID:        userID,
		AddressID:     data.AddressID,
		PaymentMethod: paymentMethod,
		Total:         total.Round(2),
		Items:         items,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrAddressNotFound):
			return nil, ErrAddressNotFound
		case errors.Is(err, repository.ErrStockUnavailable):
			return nil, ErrStockUnavailable.Wrap(err)
		default:
			logger.Error(ctx, "Order placement failed", err, zap.Uint("user_id", userID))
			return nil, ErrOrderPlacementFailed.Wrap(err)
		}
	}

	s.sendConfirmation(ctx, userID, order)
	return order, nil
}

// sendConfirmation is best effort and does not wait for delivery. The order
// is already committed.
func (s *OrderService) sendConfirmation(ctx context.Context, userID uint, order *models.Order) {
	if s.mailer == nil {
		return
	}
	mailCtx := context.WithoutCancel(ctx)
	s.background(func() {
		ctx, cancel := context.WithTimeout(mailCtx, confirmationTimeout)
		defer cancel()
		s.deliverConfirmation(ctx, userID, order)
	})
}

func (s *OrderService) deliverConfirmation(ctx context.Context, userID uint, order *models.Order) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "Order confirmation skipped", zap.String("order_id", order.OrderID), zap.Error(err))
		return
	}
	if err := s.mailer.SendOrderConfirmation(ctx, user, order); err != nil {
		logger.Warn(ctx, "Order confirmation email failed", zap.String("order_id", order.OrderID), zap.Error(err))
	}
}

func (s *OrderService) Orders(ctx context.Context, userID uint) ([]models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return orders, nil
}

// Order looks up one of the caller's orders by numeric id or by its O-NNNN
// reference.
func (s *OrderService) Order(ctx context.Context, userID uint, ref string) (*models.Order, error) {
	id, err := ParseOrderID(ref)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrOrderNotFound
		}
		return nil, ErrStorage.Wrap(err)
	}
	return order, nil
}

// ParseOrderID accepts "12" or "O-0012". References with fewer than four
// digits after the prefix, and id zero, are rejected.
func ParseOrderID(ref string) (uint, error) {
	digits := ref
	if !isAllDigits(ref) {
		match := formattedOrderID.FindStringSubmatch(ref)
		if match == nil {
			return 0, ErrInvalidFormat
		}
		digits = match[1]
	}

	id, err := strconv.ParseUint(digits, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, ErrInvalidFormat
	}
	return uint(id), nil
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
