package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/metrics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Checkout оформляет оплату сохраняемого заказа
type Checkout interface {
	Checkout(ctx context.Context, order *domain.Order) (*domain.CheckoutResult, error)
}

// OrderService реализует domain.OrderService
type OrderService struct {
	store    domain.Store
	promos   *PromoService
	payments Checkout
	status   domain.StatusService
	tariffs  domain.DeliveryTariffs
	notifier domain.Notifier
	metrics  *metrics.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewOrderService создает новый OrderService
func NewOrderService(
	store domain.Store,
	promos *PromoService,
	payments Checkout,
	status domain.StatusService,
	tariffs domain.DeliveryTariffs,
	notifier domain.Notifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		store:    store,
		promos:   promos,
		payments: payments,
		status:   status,
		tariffs:  tariffs,
		notifier: notifier,
		metrics:  m,
		logger:   logger,
		now:      time.Now,
	}
}

// mergeCart складывает повторяющиеся позиции, сохраняя порядок первого появления
func mergeCart(items []domain.CartItem) ([]domain.CartItem, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	merged := make([]domain.CartItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.Validation("quantity must be positive")
		}
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, it)
	}
	return merged, nil
}

// Quote считает заказ по текущим ценам каталога. Недействительный промокод
// не считается ошибкой: причина возвращается в Promo.
func (s *OrderService) Quote(ctx context.Context, req domain.CheckoutRequest) (*domain.Quote, error) {
	cart, err := mergeCart(req.Items)
	if err != nil {
		return nil, err
	}
	deliveryType, err := domain.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return nil, err
	}
	speed, err := domain.ParseDeliverySpeed(req.DeliverySpeed)
	if err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(cart))
	for _, it := range cart {
		p, err := s.store.Products().GetProductByID(ctx, it.ProductID)
		if err != nil {
			if isDomainError(err) {
				return nil, err
			}
			return nil, fmt.Errorf("order service: failed to get product %d: %w", it.ProductID, err)
		}
		if !p.IsActive {
			return nil, domain.ErrProductInactive
		}
		if p.Stock < it.Quantity {
			return nil, domain.ErrOutOfStock
		}
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  it.Quantity,
		})
	}

	subtotal := domain.Subtotal(items)
	delivery, err := s.tariffs.DeliveryCost(deliveryType, speed, subtotal)
	if err != nil {
		return nil, err
	}

	q := &domain.Quote{
		Items:          items,
		SubtotalAmount: subtotal,
		DeliveryAmount: delivery,
		DiscountAmount: decimal.Zero,
	}

	if code := strings.TrimSpace(req.PromoCode); code != "" {
		res, err := s.promos.Evaluate(ctx, code, subtotal)
		if err != nil {
			return nil, err
		}
		q.Promo = &res
		if res.Valid {
			q.DiscountAmount = res.DiscountAmount
		}
	}
	q.TotalAmount = domain.Price(items, delivery, q.Promo)

	return q, nil
}

// PlaceOrder оформляет заказ пользователя и запускает оплату
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64, req domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, domain.Validation("full name is required")
	}
	phone, err := domain.NormalizePhone(req.Phone)
	if err != nil {
		return nil, err
	}
	method, err := domain.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	deliveryType, err := domain.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return nil, err
	}
	address := strings.TrimSpace(req.Address)
	if address == "" && deliveryType != domain.DeliveryPickup {
		return nil, domain.Validation("address is required for delivery")
	}
	speed, err := domain.ParseDeliverySpeed(req.DeliverySpeed)
	if err != nil {
		return nil, err
	}

	q, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	var promoCode *string
	if q.Promo != nil {
		if err := q.Promo.Err(); err != nil {
			return nil, err
		}
		code := q.Promo.Code
		promoCode = &code
	}

	result, err := s.payments.Checkout(ctx, &domain.Order{
		UserID:         userID,
		Items:          q.Items,
		SubtotalAmount: q.SubtotalAmount,
		DeliveryAmount: q.DeliveryAmount,
		DiscountAmount: q.DiscountAmount,
		TotalAmount:    q.TotalAmount,
		PromoCode:      promoCode,
		FullName:       fullName,
		Phone:          phone,
		Address:        address,
		DeliveryType:   deliveryType,
		DeliverySpeed:  speed,
		PaymentMethod:  method,
		CreatedAt:      s.now(),
	})
	if err != nil {
		return nil, err
	}

	order := result.Order
	s.metrics.RecordOrderCreated(string(order.PaymentMethod), order.TotalAmount)
	s.notifier.NotifyAsync(userID, orderCreatedMessage(order))
	s.logger.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.Int64("user_id", userID),
		zap.String("payment_method", string(order.PaymentMethod)),
		zap.String("total", order.TotalAmount.String()),
	)

	return result, nil
}

// ListUserOrders возвращает заказы пользователя
func (s *OrderService) ListUserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.store.Orders().ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders of user %d: %w", userID, err)
	}
	return orders, nil
}

// GetUserOrder возвращает заказ, если он принадлежит пользователю
func (s *OrderService) GetUserOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// validateProofURL принимает только абсолютные http(s) ссылки
func validateProofURL(raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return domain.Validation("proof url must be an http(s) link")
	}
	return nil
}

// UploadPaymentProof сохраняет подтверждение банковского перевода по заказу
func (s *OrderService) UploadPaymentProof(ctx context.Context, userID, orderID int64, proofURL string) (*domain.Order, error) {
	if err := validateProofURL(proofURL); err != nil {
		return nil, err
	}

	order, err := s.GetUserOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentMethod != domain.PaymentMethodBankTransfer || order.Status != domain.OrderStatusPendingPayment {
		return nil, domain.ErrNotManualPayment
	}

	if err := s.store.Orders().SetPaymentProof(ctx, orderID, proofURL); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to save proof of order %d: %w", orderID, err)
	}
	order.PaymentProofURL = &proofURL

	return order, nil
}

// ListOrders возвращает страницу заказов для администратора
func (s *OrderService) ListOrders(ctx context.Context, f domain.OrderFilter) (*domain.OrderPage, error) {
	page, limit, err := normalizePage(f.Page, f.Limit)
	if err != nil {
		return nil, err
	}
	f.Page, f.Limit = page, limit
	f.Search = strings.TrimSpace(f.Search)

	orders, total, err := s.store.Orders().ListOrders(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("order service: failed to list orders: %w", err)
	}

	return &domain.OrderPage{Orders: orders, Total: total, Page: page, Limit: limit}, nil
}

// GetOrder возвращает заказ
func (s *OrderService) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.store.Orders().GetOrderByID(ctx, id)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("order service: failed to get order %d: %w", id, err)
	}
	return order, nil
}

// EditOrder изменяет контактные данные заказа и при необходимости его статус
func (s *OrderService) EditOrder(ctx context.Context, id int64, edit domain.OrderEdit, change *domain.StatusChange) (*domain.Order, error) {
	if edit.FullName != nil {
		name := strings.TrimSpace(*edit.FullName)
		if name == "" {
			return nil, domain.Validation("full name is required")
		}
		edit.FullName = &name
	}
	if edit.Phone != nil {
		p, err := domain.NormalizePhone(*edit.Phone)
		if err != nil {
			return nil, err
		}
		edit.Phone = &p
	}
	if edit.Address != nil {
		a := strings.TrimSpace(*edit.Address)
		edit.Address = &a
	}

	if !edit.IsEmpty() {
		if err := s.store.Orders().UpdateOrderDetails(ctx, id, edit); err != nil {
			if isDomainError(err) {
				return nil, err
			}
			return nil, fmt.Errorf("order service: failed to edit order %d: %w", id, err)
		}
	}

	if change != nil {
		if change.Actor == "" {
			change.Actor = actorAdmin
		}
		order, err := s.status.Transition(ctx, id, *change)
		if err != nil {
			if isDomainError(err) {
				return nil, err
			}
			return nil, fmt.Errorf("order service: failed to change status of order %d: %w", id, err)
		}
		return order, nil
	}

	return s.GetOrder(ctx, id)
}

// DeleteOrder удаляет заказ вместе с позициями и историей
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.store.Orders().DeleteOrder(ctx, id); err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf("order service: failed to delete order %d: %w", id, err)
	}
	s.logger.Info("order deleted", zap.Int64("order_id", id))
	return nil
}
