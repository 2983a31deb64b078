package service

import (
	"context"
	"strings"
	"testing"

	"github.com/avc/plantstore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewReviewService(store.view())

	user := store.addUser(domain.User{Email: "anna@example.com", FullName: "Анна"})
	product := store.addProduct(domain.Product{Name: "Монстера", Price: dec("1500"), IsActive: true})
	hidden := store.addProduct(domain.Product{Name: "Снятый", Price: dec("1")})

	review, err := svc.CreateReview(ctx, user.ID, product.ID, 5, "  Отличное растение ")
	require.NoError(t, err)
	assert.Equal(t, "Отличное растение", review.Text)
	assert.Equal(t, "Анна", review.Author)

	t.Run("One review per product", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, user.ID, product.ID, 4, "Еще раз")
		assert.ErrorIs(t, err, domain.ErrReviewExists)
	})

	t.Run("Invalid input", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, user.ID, product.ID, 0, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.CreateReview(ctx, user.ID, product.ID, 6, "")
		assert.ErrorIs(t, err, domain.ErrValidation)
		_, err = svc.CreateReview(ctx, user.ID, product.ID, 3, strings.Repeat("я", maxReviewLength+1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Product checks", func(t *testing.T) {
		_, err := svc.CreateReview(ctx, user.ID, 999, 5, "")
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		_, err = svc.CreateReview(ctx, user.ID, hidden.ID, 5, "")
		assert.ErrorIs(t, err, domain.ErrProductInactive)
	})

	t.Run("Listing and moderation", func(t *testing.T) {
		reviews, err := svc.ListProductReviews(ctx, product.ID)
		require.NoError(t, err)
		require.Len(t, reviews, 1)

		all, total, err := svc.ListReviews(ctx, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, all, 1)

		_, err = svc.ListProductReviews(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		require.NoError(t, svc.DeleteReview(ctx, review.ID))
		assert.ErrorIs(t, svc.DeleteReview(ctx, review.ID), domain.ErrReviewNotFound)
	})
}
