package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, description, category, price, stock, image_url, is_active, created_at, updated_at`

// ProductRepository реализует domain.ProductRepository
type ProductRepository struct {
	db DBTX
}

// NewProductRepository создает новый ProductRepository
func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Stock,
		&p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// CreateProduct создает товар
func (r *ProductRepository) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	created, err := scanProduct(r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, category, price, stock, image_url, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+productColumns,
		p.Name, p.Description, p.Category, p.Price, p.Stock, p.ImageURL, p.IsActive,
	))
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create product %q: %w", p.Name, err)
	}
	return created, nil
}

// GetProductByID получает товар по ID
func (r *ProductRepository) GetProductByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to get product %d: %w", id, err)
	}
	return p, nil
}

// ListProducts возвращает страницу товаров по фильтру и общее количество
func (r *ProductRepository) ListProducts(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, int, error) {
	var (
		conds []string
		args  []any
	)
	if f.OnlyActive {
		conds = append(conds, "is_active")
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count products: %w", err)
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM products%s ORDER BY id DESC LIMIT $%d OFFSET $%d`,
			productColumns, where, len(args)-1, len(args)),
		args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repository: failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repository: error iterating products: %w", err)
	}

	return products, total, nil
}

// UpdateProduct обновляет товар целиком
func (r *ProductRepository) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	updated, err := scanProduct(r.db.QueryRow(ctx,
		`UPDATE products SET name = $2, description = $3, category = $4, price = $5, stock = $6,
			image_url = $7, is_active = $8, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+productColumns,
		p.ID, p.Name, p.Description, p.Category, p.Price, p.Stock, p.ImageURL, p.IsActive,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to update product %d: %w", p.ID, err)
	}
	return updated, nil
}

// DeleteProduct удаляет товар. Позиции заказов хранят снимок названия и цены.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DecrementStock уменьшает остаток товара, не опуская его ниже нуля
func (r *ProductRepository) DecrementStock(ctx context.Context, id int64, qty int) error {
	_, err := r.db.Exec(ctx,
		`UPDATE products SET stock = GREATEST(stock - $2, 0), updated_at = NOW() WHERE id = $1`,
		id, qty,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to decrement stock of product %d: %w", id, err)
	}
	return nil
}
