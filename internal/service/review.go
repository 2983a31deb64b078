package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/avc/plantstore/internal/domain"
)

const maxReviewLength = 2000

// ReviewService реализует domain.ReviewService
type ReviewService struct {
	store domain.Store
}

// NewReviewService создает новый ReviewService
func NewReviewService(store domain.Store) *ReviewService {
	return &ReviewService{store: store}
}

// CreateReview оставляет отзыв. Один пользователь пишет не больше одного отзыва на товар.
func (s *ReviewService) CreateReview(ctx context.Context, userID, productID int64, rating int, text string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, domain.Validation("rating must be between 1 and 5")
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) > maxReviewLength {
		return nil, domain.Validation(fmt.Sprintf("review must be at most %d characters", maxReviewLength))
	}

	product, err := s.store.Products().GetProductByID(ctx, productID)
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("review service: failed to get product %d: %w", productID, err)
	}
	if !product.IsActive {
		return nil, domain.ErrProductInactive
	}

	review, err := s.store.Reviews().CreateReview(ctx, &domain.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Text:      text,
	})
	if err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("review service: failed to create review for product %d: %w", productID, err)
	}

	return review, nil
}

// ListProductReviews возвращает отзывы о товаре
func (s *ReviewService) ListProductReviews(ctx context.Context, productID int64) ([]*domain.Review, error) {
	if _, err := s.store.Products().GetProductByID(ctx, productID); err != nil {
		if isDomainError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("review service: failed to get product %d: %w", productID, err)
	}

	reviews, err := s.store.Reviews().ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("review service: failed to list reviews for product %d: %w", productID, err)
	}

	return reviews, nil
}

// ListReviews возвращает страницу всех отзывов для модерации
func (s *ReviewService) ListReviews(ctx context.Context, page, limit int) ([]*domain.Review, int, error) {
	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return nil, 0, err
	}

	reviews, total, err := s.store.Reviews().ListReviews(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("review service: failed to list reviews: %w", err)
	}

	return reviews, total, nil
}

// DeleteReview удаляет отзыв
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if err := s.store.Reviews().DeleteReview(ctx, id); err != nil {
		if isDomainError(err) {
			return err
		}
		return fmt.Errorf("review service: failed to delete review %d: %w", id, err)
	}
	return nil
}
