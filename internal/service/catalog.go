package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/plantstore/internal/domain"
	"go.uber.org/zap"
)

// CatalogService реализует domain.CatalogService
type CatalogService struct {
	store    domain.Store
	notifier domain.Notifier
	logger   *zap.Logger
}

// NewCatalogService создает новый CatalogService
func NewCatalogService(store domain.Store, notifier domain.Notifier, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// ListProducts возвращает страницу товаров и общее количество
func (s *CatalogService) ListProducts(ctx context.Context, f domain.ProductFilter) ([]*domain.Product, int, error) {
	page, limit, err := normalizePage(f.Page, f.Limit)
	if err != nil {
		return nil, 0, err
	}
	f.Page, f.Limit = page, limit
	f.Search = strings.TrimSpace(f.Search)

	products, total, err := s.store.Products().ListProducts(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog service: failed to list products: %w", err)
	}

	return products, total, nil
}

// GetProduct возвращает товар
func (s *CatalogService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.store.Products().GetProductByID(ctx, id)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to get product %d: %w", id, err)
	}
	return p, nil
}

func validateProduct(p *domain.Product) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = strings.TrimSpace(p.Category)
	if p.Name == "" {
		return domain.Validation("product name is required")
	}
	if p.Price.IsNegative() {
		return domain.Validation("product price must not be negative")
	}
	if p.Stock < 0 {
		return domain.Validation("product stock must not be negative")
	}
	return nil
}

// CreateProduct добавляет товар в каталог. announce запускает рассылку о новинке.
func (s *CatalogService) CreateProduct(ctx context.Context, p *domain.Product, announce bool) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	created, err := s.store.Products().CreateProduct(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to create product %q: %w", p.Name, err)
	}

	if announce && created.IsActive {
		s.notifier.AnnounceProduct(created)
	}

	s.logger.Info("product created",
		zap.Int64("product_id", created.ID),
		zap.Bool("announce", announce),
	)

	return created, nil
}

// UpdateProduct изменяет товар
func (s *CatalogService) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}

	updated, err := s.store.Products().UpdateProduct(ctx, p)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("catalog service: failed to update product %d: %w", p.ID, err)
	}

	return updated, nil
}

// DeleteProduct удаляет товар
func (s *CatalogService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.store.Products().DeleteProduct(ctx, id); err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf("catalog service: failed to delete product %d: %w", id, err)
	}
	return nil
}
