package postgres

import (
	"context"
	"fmt"

	"github.com/avc/plantstore/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ReviewRepository реализует domain.ReviewRepository
type ReviewRepository struct {
	db DBTX
}

// NewReviewRepository создает новый ReviewRepository
func NewReviewRepository(db DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewSelect = `SELECT r.id, r.product_id, r.user_id, u.full_name, r.rating, r.text, r.created_at
	FROM reviews r JOIN users u ON u.id = r.user_id`

func scanReviews(rows pgx.Rows) ([]*domain.Review, error) {
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		rv := &domain.Review{}
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Author, &rv.Rating, &rv.Text, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating reviews: %w", err)
	}

	return reviews, nil
}

// CreateReview создает отзыв. Один отзыв на товар от пользователя.
func (r *ReviewRepository) CreateReview(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	created := *rv
	err := r.db.QueryRow(ctx,
		`INSERT INTO reviews (product_id, user_id, rating, text)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rv.ProductID, rv.UserID, rv.Rating, rv.Text,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return nil, domain.ErrReviewExists
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("repository: failed to create review for product %d: %w", rv.ProductID, err)
	}
	return &created, nil
}

// ListReviewsByProduct возвращает отзывы о товаре, новые первыми
func (r *ReviewRepository) ListReviewsByProduct(ctx context.Context, productID int64) ([]*domain.Review, error) {
	rows, err := r.db.Query(ctx, reviewSelect+` WHERE r.product_id = $1 ORDER BY r.created_at DESC, r.id DESC`, productID)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list reviews of product %d: %w", productID, err)
	}
	return scanReviews(rows)
}

// ListReviews возвращает страницу всех отзывов и их общее количество
func (r *ReviewRepository) ListReviews(ctx context.Context, limit, offset int) ([]*domain.Review, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repository: failed to count reviews: %w", err)
	}

	rows, err := r.db.Query(ctx, reviewSelect+` ORDER BY r.created_at DESC, r.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("repository: failed to list reviews: %w", err)
	}

	reviews, err := scanReviews(rows)
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

// DeleteReview удаляет отзыв
func (r *ReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: failed to delete review %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}
