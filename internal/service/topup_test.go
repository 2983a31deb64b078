package service

import (
	"context"
	"errors"
	"testing"

	"github.com/avc/plantstore/internal/domain"
	"github.com/avc/plantstore/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTopupService_RequestTopup(t *testing.T) {
	ctx := context.Background()

	t.Run("Gateway topup gets payment link", func(t *testing.T) {
		gateway := mocks.NewPaymentGatewayMock(t)
		s := newShop(t, gateway, domain.ParseTransitionPolicy(""))
		user := s.store.addUser(domain.User{Email: "anna@example.com", FullName: "Анна"})

		gateway.EXPECT().
			CreatePayment(mock.Anything, mock.MatchedBy(func(req domain.PaymentRequest) bool {
				return req.Reference == "topup-2" && req.Amount.Equal(dec("1500"))
			})).
			Return(&domain.PaymentSession{PaymentID: "pay-t1", RedirectURL: "https://pay.example/pay-t1"}, nil).
			Once()

		topup, err := s.topups.RequestTopup(ctx, user.ID, dec("1500"), "ozon_pay")
		require.NoError(t, err)
		assert.Equal(t, domain.TopupStatusPending, topup.Status)
		require.NotNil(t, topup.PaymentURL)
		assert.Equal(t, "https://pay.example/pay-t1", *topup.PaymentURL)
	})

	t.Run("Gateway failure marks topup failed", func(t *testing.T) {
		gateway := mocks.NewPaymentGatewayMock(t)
		s := newShop(t, gateway, domain.ParseTransitionPolicy(""))
		user := s.store.addUser(domain.User{Email: "anna@example.com", FullName: "Анна"})

		gateway.EXPECT().CreatePayment(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

		_, err := s.topups.RequestTopup(ctx, user.ID, dec("1500"), "ozon_pay")
		assert.ErrorIs(t, err, domain.ErrPaymentGatewayFailure)

		topups, err := s.topups.ListUserTopups(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, topups, 1)
		assert.Equal(t, domain.TopupStatusFailed, topups[0].Status)
	})

	t.Run("Validation", func(t *testing.T) {
		s := newShop(t, nil, domain.ParseTransitionPolicy(""))

		_, err := s.topups.RequestTopup(ctx, 1, dec("0"), "bank_transfer")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		_, err = s.topups.RequestTopup(ctx, 1, dec("-5"), "bank_transfer")
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		_, err = s.topups.RequestTopup(ctx, 1, dec("100"), "balance")
		assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
		_, err = s.topups.RequestTopup(ctx, 1, dec("100"), "cash")
		assert.ErrorIs(t, err, domain.ErrInvalidPaymentMethod)
	})
}

func TestTopupService_BankTransfer(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*shop, *domain.User, *domain.BalanceTopup) {
		s := newShop(t, nil, domain.ParseTransitionPolicy(""))
		user := s.store.addUser(domain.User{Email: "anna@example.com", FullName: "Анна", Balance: dec("100")})
		topup, err := s.topups.RequestTopup(ctx, user.ID, dec("1000"), "bank_transfer")
		require.NoError(t, err)
		return s, user, topup
	}

	t.Run("Proof and approval credit once", func(t *testing.T) {
		s, user, topup := setup(t)

		withProof, err := s.topups.UploadTopupProof(ctx, user.ID, topup.ID, "https://files.example/check.jpg")
		require.NoError(t, err)
		require.NotNil(t, withProof.ProofURL)

		approved, err := s.topups.ApproveTopup(ctx, topup.ID, "ok")
		require.NoError(t, err)
		assert.Equal(t, domain.TopupStatusCompleted, approved.Status)
		assert.True(t, dec("1100").Equal(s.store.user(user.ID).Balance))

		_, err = s.topups.ApproveTopup(ctx, topup.ID, "again")
		assert.ErrorIs(t, err, domain.ErrTopupNotPending)
		_, err = s.topups.RejectTopup(ctx, topup.ID, "")
		assert.ErrorIs(t, err, domain.ErrTopupNotPending)
		assert.True(t, dec("1100").Equal(s.store.user(user.ID).Balance))

		msgs := s.notifier.messages()
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0].Message, "1000")
	})

	t.Run("Reject keeps balance", func(t *testing.T) {
		s, user, topup := setup(t)

		rejected, err := s.topups.RejectTopup(ctx, topup.ID, "не найден")
		require.NoError(t, err)
		assert.Equal(t, domain.TopupStatusFailed, rejected.Status)
		assert.True(t, dec("100").Equal(s.store.user(user.ID).Balance))

		failed, err := s.topups.ListTopups(ctx, domain.TopupStatusFailed)
		require.NoError(t, err)
		assert.Len(t, failed, 1)
	})

	t.Run("Proof of another user", func(t *testing.T) {
		s, _, topup := setup(t)
		_, err := s.topups.UploadTopupProof(ctx, 999, topup.ID, "https://files.example/check.jpg")
		assert.ErrorIs(t, err, domain.ErrTopupNotFound)

		_, err = s.topups.UploadTopupProof(ctx, 999, topup.ID, "not a url")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Unknown status filter", func(t *testing.T) {
		s, _, _ := setup(t)
		_, err := s.topups.ListTopups(ctx, "lost")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestTopupService_Webhook(t *testing.T) {
	ctx := context.Background()
	gateway := mocks.NewPaymentGatewayMock(t)
	s := newShop(t, gateway, domain.ParseTransitionPolicy(""))
	user := s.store.addUser(domain.User{Email: "anna@example.com", FullName: "Анна"})

	gateway.EXPECT().CreatePayment(mock.Anything, mock.Anything).
		Return(&domain.PaymentSession{PaymentID: "pay-t1", RedirectURL: "https://pay.example/pay-t1"}, nil).
		Once()
	topup, err := s.topups.RequestTopup(ctx, user.ID, dec("700"), "ozon_pay")
	require.NoError(t, err)

	first := webhookBody("tx-a", "pay-t1", "succeeded")
	require.NoError(t, s.payments.HandleWebhook(ctx, first, sign(first)))
	second := webhookBody("tx-b", "pay-t1", "succeeded")
	require.NoError(t, s.payments.HandleWebhook(ctx, second, sign(second)))

	assert.True(t, dec("700").Equal(s.store.user(user.ID).Balance))
	stored, err := s.store.view().GetTopupByID(ctx, topup.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TopupStatusCompleted, stored.Status)
}
