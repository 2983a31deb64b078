package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, user_id, subtotal_amount, delivery_amount, discount_amount, total_amount, promo_code,
	full_name, phone, address, delivery_type, delivery_speed, payment_method, payment_status, order_status,
	payment_id, payment_proof_url, tracking_number, stock_reduced, promo_consumed, created_at, last_status_change_at`

// OrderRepository реализует domain.OrderRepository
type OrderRepository struct {
	db DBTX
}

// NewOrderRepository создает новый OrderRepository
func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	o := &domain.Order{}
	err := row.Scan(&o.ID, &o.UserID, &o.SubtotalAmount, &o.DeliveryAmount, &o.DiscountAmount, &o.TotalAmount,
		&o.PromoCode, &o.FullName, &o.Phone, &o.Address, &o.DeliveryType, &o.DeliverySpeed, &o.PaymentMethod,
		&o.PaymentStatus, &o.Status, &o.PaymentID, &o.PaymentProofURL, &o.TrackingNumber, &o.StockReduced,
		&o.PromoConsumed, &o.CreatedAt, &o.LastStatusAt)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// CreateOrder сохраняет заказ, позиции и первую запись истории.
// Вызывается внутри транзакции.
func (r *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO orders (user_id, subtotal_amount, delivery_amount, discount_amount, total_amount, promo_code,
			full_name, phone, address, delivery_type, delivery_speed, payment_method, payment_status, order_status,
			created_at, last_status_change_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)
		 RETURNING id`,
		order.UserID, order.SubtotalAmount, order.DeliveryAmount, order.DiscountAmount, order.TotalAmount,
		order.PromoCode, order.FullName, order.Phone, order.Address, order.DeliveryType, order.DeliverySpeed,
		order.PaymentMethod, order.PaymentStatus, order.Status, order.CreatedAt,
	).Scan(&order.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: failed to create order for user %d: %w", order.UserID, err)
	}

	for _, it := range order.Items {
		_, err := r.db.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, name, unit_price, quantity)
			 VALUES ($1, $2, $3, $4, $5)`,
			order.ID, it.ProductID, it.Name, it.UnitPrice, it.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to add item %d to order %d: %w", it.ProductID, order.ID, err)
		}
	}

	entry := domain.StatusEntry{Status: order.Status, CreatedAt: order.CreatedAt}
	if err := r.AppendHistory(ctx, order.ID, entry); err != nil {
		return nil, err
	}
	order.LastStatusAt = order.CreatedAt
	order.History = []domain.StatusEntry{entry}

	return order, nil
}

// GetOrderByID получает заказ с позициями и историей статусов
func (r *OrderRepository) GetOrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order %d: %w", id, err)
	}

	if err := r.loadItems(ctx, []*domain.Order{o}); err != nil {
		return nil, err
	}
	if err := r.loadHistory(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// LockOrder читает заказ с позициями под блокировкой строки (SELECT ... FOR UPDATE)
func (r *OrderRepository) LockOrder(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock order %d: %w", id, err)
	}

	if err := r.loadItems(ctx, []*domain.Order{o}); err != nil {
		return nil, err
	}

	return o, nil
}

// GetOrderByPaymentID получает заказ по идентификатору платежа шлюза
func (r *OrderRepository) GetOrderByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE payment_id = $1`, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("repository: failed to get order by payment %q: %w", paymentID, err)
	}
	return o, nil
}

func (r *OrderRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]*domain.Order, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating orders: %w", err)
	}

	if err := r.loadItems(ctx, orders); err != nil {
		return nil, err
	}

	return orders, nil
}

// ListOrdersByUser возвращает заказы пользователя, новые первыми
func (r *OrderRepository) ListOrdersByUser(ctx context.Context, userID int64) ([]*domain.Order, error) {
	return r.queryOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

// ListOrders возвращает страницу заказов по фильтру и общее количество
func (r *OrderRepository) ListOrders(ctx context.Context, f domain.OrderFilter) ([]*domain.Order, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("order_status = $%d", len(args)))
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		args = append(args, q, "%"+q+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(id::text = $%d OR full_name ILIKE $%d OR phone ILIKE $%d OR address ILIKE $%d)", n-1, n, n, n))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count orders: %w", err)
	}

	args = append(args, f.Limit, f.Offset())
	orders, err := r.queryOrders(ctx,
		fmt.Sprintf(`SELECT %s FROM orders%s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
			orderColumns, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, orders []*domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(orders))
	byID := make(map[int64]*domain.Order, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
		byID[o.ID] = o
		o.Items = []domain.OrderItem{}
	}

	rows, err := r.db.Query(ctx,
		`SELECT order_id, product_id, name, unit_price, quantity
		 FROM order_items
		 WHERE order_id = ANY($1)
		 ORDER BY order_id, id`,
		ids,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to load order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID int64
			it      domain.OrderItem
		)
		if err := rows.Scan(&orderID, &it.ProductID, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return fmt.Errorf("repository: failed to scan order item: %w", err)
		}
		if o, ok := byID[orderID]; ok {
			o.Items = append(o.Items, it)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating order items: %w", err)
	}

	return nil
}

func (r *OrderRepository) loadHistory(ctx context.Context, o *domain.Order) error {
	rows, err := r.db.Query(ctx,
		`SELECT status, comment, created_at
		 FROM order_status_history
		 WHERE order_id = $1
		 ORDER BY created_at, id`,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to load history of order %d: %w", o.ID, err)
	}
	defer rows.Close()

	o.History = []domain.StatusEntry{}
	for rows.Next() {
		var e domain.StatusEntry
		if err := rows.Scan(&e.Status, &e.Comment, &e.CreatedAt); err != nil {
			return fmt.Errorf("repository: failed to scan status entry: %w", err)
		}
		o.History = append(o.History, e)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("repository: error iterating history of order %d: %w", o.ID, err)
	}

	return nil
}

// UpdateStatus меняет статус заказа. Пустой payment оставляет статус оплаты без изменений.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus, payment domain.PaymentStatus, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET order_status = $2,
			payment_status = COALESCE(NULLIF($3, ''), payment_status),
			last_status_change_at = $4
		 WHERE id = $1`,
		id, status, string(payment), at,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update status of order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// AppendHistory добавляет запись в историю статусов
func (r *OrderRepository) AppendHistory(ctx context.Context, id int64, entry domain.StatusEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO order_status_history (order_id, status, comment, created_at) VALUES ($1, $2, $3, $4)`,
		id, entry.Status, entry.Comment, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to append history of order %d: %w", id, err)
	}
	return nil
}

func (r *OrderRepository) setFlagOnce(ctx context.Context, id int64, column string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		fmt.Sprintf(`UPDATE orders SET %[1]s = TRUE WHERE id = $1 AND %[1]s = FALSE`, column), id)
	if err != nil {
		return false, fmt.Errorf("repository: failed to set %s of order %d: %w", column, id, err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkStockReduced выставляет stock_reduced. true только если флаг был снят.
func (r *OrderRepository) MarkStockReduced(ctx context.Context, id int64) (bool, error) {
	return r.setFlagOnce(ctx, id, "stock_reduced")
}

// MarkPromoConsumed выставляет promo_consumed. true только если флаг был снят.
func (r *OrderRepository) MarkPromoConsumed(ctx context.Context, id int64) (bool, error) {
	return r.setFlagOnce(ctx, id, "promo_consumed")
}

// SetPaymentID сохраняет идентификатор платежа шлюза
func (r *OrderRepository) SetPaymentID(ctx context.Context, id int64, paymentID string) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET payment_id = $2 WHERE id = $1`, id, paymentID)
	if err != nil {
		return fmt.Errorf("repository: failed to set payment of order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// SetPaymentProof сохраняет ссылку на подтверждение перевода
func (r *OrderRepository) SetPaymentProof(ctx context.Context, id int64, url string) error {
	tag, err := r.db.Exec(ctx, `UPDATE orders SET payment_proof_url = $2 WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("repository: failed to set payment proof of order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// UpdateOrderDetails обновляет контактные данные и трек-номер
func (r *OrderRepository) UpdateOrderDetails(ctx context.Context, id int64, edit domain.OrderEdit) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET
			full_name = COALESCE($2, full_name),
			phone = COALESCE($3, phone),
			address = COALESCE($4, address),
			tracking_number = COALESCE($5, tracking_number)
		 WHERE id = $1`,
		id, edit.FullName, edit.Phone, edit.Address, edit.TrackingNumber,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// DeleteOrder удаляет заказ вместе с позициями и историей
func (r *OrderRepository) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete order %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

// ListStaleOrders возвращает заказы, находящиеся в статусе дольше указанного момента
func (r *OrderRepository) ListStaleOrders(ctx context.Context, status domain.OrderStatus, before time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM orders WHERE order_status = $1 AND last_status_change_at < $2 ORDER BY id`,
		status, before,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list stale orders: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan order id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating stale orders: %w", err)
	}

	return ids, nil
}
