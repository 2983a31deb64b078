package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc/plantstore/internal/domain"
	domainmocks "github.com/avc/plantstore/internal/domain/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newRequest собирает запрос с телом, пользователем и параметрами маршрута
func newRequest(method, target, body string, userID int64, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	ctx := req.Context()
	if userID != 0 {
		ctx = context.WithValue(ctx, UserIDKey, userID)
	}
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func decimalEq(v int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(v))
	})
}

func TestAuthHandler_Register(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	want := domain.RegisterRequest{
		Email:    "anna@example.com",
		Password: "secret123",
		FullName: "Anna",
		Phone:    "+79991234567",
	}
	body := `{"email":"anna@example.com","password":"secret123","full_name":"Anna","phone":"+79991234567"}`

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, want).Return(&domain.RegistrationTicket{
			Phone:   "+79991234567",
			Token:   "tok",
			BotLink: "https://t.me/plant_shop_bot?start=tok",
		}, nil).Once()

		w := httptest.NewRecorder()
		handler.Register(w, newRequest(http.MethodPost, "/api/auth/register", body, 0, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		var ticket domain.RegistrationTicket
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ticket))
		assert.Equal(t, "tok", ticket.Token)
		assert.Contains(t, ticket.BotLink, "start=tok")
	})

	t.Run("Email taken", func(t *testing.T) {
		mockService.EXPECT().Register(mock.Anything, want).Return(nil, domain.ErrUserExists).Once()

		w := httptest.NewRecorder()
		handler.Register(w, newRequest(http.MethodPost, "/api/auth/register", body, 0, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"user already exists"}`, w.Body.String())
	})

	t.Run("Invalid JSON", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Register(w, newRequest(http.MethodPost, "/api/auth/register", `{"email":}`, 0, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_ConfirmAndLogin(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Confirm issues token", func(t *testing.T) {
		mockService.EXPECT().CompleteRegistration(mock.Anything, "+79991234567", "tok").Return("jwt", nil).Once()

		w := httptest.NewRecorder()
		handler.ConfirmRegistration(w, newRequest(http.MethodPost, "/api/auth/confirm",
			`{"phone":"+79991234567","token":"tok"}`, 0, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer jwt", w.Header().Get("Authorization"))
		assert.JSONEq(t, `{"token":"jwt"}`, w.Body.String())
	})

	t.Run("Confirm with stale token", func(t *testing.T) {
		mockService.EXPECT().CompleteRegistration(mock.Anything, "+79991234567", "old").
			Return("", domain.ErrVerificationMismatch).Once()

		w := httptest.NewRecorder()
		handler.ConfirmRegistration(w, newRequest(http.MethodPost, "/api/auth/confirm",
			`{"phone":"+79991234567","token":"old"}`, 0, nil))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Confirm before bot verification", func(t *testing.T) {
		mockService.EXPECT().CompleteRegistration(mock.Anything, "+79991234567", "tok").
			Return("", domain.ErrNotVerified).Once()

		w := httptest.NewRecorder()
		handler.ConfirmRegistration(w, newRequest(http.MethodPost, "/api/auth/confirm",
			`{"phone":"+79991234567","token":"tok"}`, 0, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Login success", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "anna@example.com", "secret123").Return("jwt", nil).Once()

		w := httptest.NewRecorder()
		handler.Login(w, newRequest(http.MethodPost, "/api/auth/login",
			`{"email":"anna@example.com","password":"secret123"}`, 0, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Bearer jwt", w.Header().Get("Authorization"))
	})

	t.Run("Login wrong password", func(t *testing.T) {
		mockService.EXPECT().Login(mock.Anything, "anna@example.com", "nope").Return("", domain.ErrInvalidCredentials).Once()

		w := httptest.NewRecorder()
		handler.Login(w, newRequest(http.MethodPost, "/api/auth/login",
			`{"email":"anna@example.com","password":"nope"}`, 0, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	mockService := domainmocks.NewAuthServiceMock(t)
	handler := NewAuthHandler(mockService, zap.NewNop())

	t.Run("Profile with balance", func(t *testing.T) {
		mockService.EXPECT().Profile(mock.Anything, int64(3)).Return(&domain.User{
			ID:      3,
			Email:   "anna@example.com",
			Balance: decimal.NewFromInt(250),
		}, nil).Once()

		w := httptest.NewRecorder()
		handler.Me(w, newRequest(http.MethodGet, "/api/me", "", 3, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"balance":"250"`)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Unauthorized - no user ID in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.Me(w, newRequest(http.MethodGet, "/api/me", "", 0, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	catalog := domainmocks.NewCatalogServiceMock(t)
	handler := NewCatalogHandler(catalog, domainmocks.NewReviewServiceMock(t), zap.NewNop())

	t.Run("Storefront lists only active", func(t *testing.T) {
		catalog.EXPECT().ListProducts(mock.Anything, domain.ProductFilter{
			Page:       2,
			Limit:      10,
			Category:   "succulents",
			OnlyActive: true,
		}).Return([]*domain.Product{{ID: 1, Name: "Aloe"}}, 11, nil).Once()

		w := httptest.NewRecorder()
		handler.ListProducts(w, newRequest(http.MethodGet, "/api/products?page=2&limit=10&category=succulents", "", 0, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Items []domain.Product `json:"items"`
			Total int              `json:"total"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 11, resp.Total)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Aloe", resp.Items[0].Name)
	})

	t.Run("Admin sees hidden products", func(t *testing.T) {
		catalog.EXPECT().ListProducts(mock.Anything, domain.ProductFilter{Search: "fern"}).
			Return(nil, 0, nil).Once()

		w := httptest.NewRecorder()
		handler.ListAllProducts(w, newRequest(http.MethodGet, "/api/admin/products?search=fern", "", 0, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Non-numeric page", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListProducts(w, newRequest(http.MethodGet, "/api/products?page=two", "", 0, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	catalog := domainmocks.NewCatalogServiceMock(t)
	reviews := domainmocks.NewReviewServiceMock(t)
	handler := NewCatalogHandler(catalog, reviews, zap.NewNop())

	t.Run("With reviews", func(t *testing.T) {
		catalog.EXPECT().GetProduct(mock.Anything, int64(5)).
			Return(&domain.Product{ID: 5, Name: "Monstera", IsActive: true}, nil).Once()
		reviews.EXPECT().ListProductReviews(mock.Anything, int64(5)).
			Return([]*domain.Review{{ID: 1, ProductID: 5, Rating: 5}}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetProduct(w, newRequest(http.MethodGet, "/api/products/5", "", 0, map[string]string{"id": "5"}))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Name    string          `json:"name"`
			Reviews []domain.Review `json:"reviews"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Monstera", resp.Name)
		assert.Len(t, resp.Reviews, 1)
	})

	t.Run("Hidden product is not found", func(t *testing.T) {
		catalog.EXPECT().GetProduct(mock.Anything, int64(6)).
			Return(&domain.Product{ID: 6, IsActive: false}, nil).Once()

		w := httptest.NewRecorder()
		handler.GetProduct(w, newRequest(http.MethodGet, "/api/products/6", "", 0, map[string]string{"id": "6"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.GetProduct(w, newRequest(http.MethodGet, "/api/products/abc", "", 0, map[string]string{"id": "abc"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
	})
}

func TestCatalogHandler_Admin(t *testing.T) {
	catalog := domainmocks.NewCatalogServiceMock(t)
	reviews := domainmocks.NewReviewServiceMock(t)
	handler := NewCatalogHandler(catalog, reviews, zap.NewNop())

	t.Run("Create with announcement", func(t *testing.T) {
		catalog.EXPECT().CreateProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Name == "Ficus" && p.IsActive && p.Price.Equal(decimal.NewFromInt(1200))
		}), true).Return(&domain.Product{ID: 9, Name: "Ficus", IsActive: true}, nil).Once()

		w := httptest.NewRecorder()
		handler.CreateProduct(w, newRequest(http.MethodPost, "/api/admin/products",
			`{"name":"Ficus","price":"1200","stock":3,"announce":true}`, 1, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Update keeps explicit inactive flag", func(t *testing.T) {
		catalog.EXPECT().UpdateProduct(mock.Anything, mock.MatchedBy(func(p *domain.Product) bool {
			return p.ID == 9 && !p.IsActive
		})).Return(&domain.Product{ID: 9}, nil).Once()

		w := httptest.NewRecorder()
		handler.UpdateProduct(w, newRequest(http.MethodPut, "/api/admin/products/9",
			`{"name":"Ficus","price":"1200","is_active":false}`, 1, map[string]string{"id": "9"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		catalog.EXPECT().DeleteProduct(mock.Anything, int64(9)).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.DeleteProduct(w, newRequest(http.MethodDelete, "/api/admin/products/9", "", 1, map[string]string{"id": "9"}))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Delete review that is gone", func(t *testing.T) {
		reviews.EXPECT().DeleteReview(mock.Anything, int64(4)).Return(domain.ErrReviewNotFound).Once()

		w := httptest.NewRecorder()
		handler.DeleteReview(w, newRequest(http.MethodDelete, "/api/admin/reviews/4", "", 1, map[string]string{"id": "4"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCatalogHandler_CreateReview(t *testing.T) {
	reviews := domainmocks.NewReviewServiceMock(t)
	handler := NewCatalogHandler(domainmocks.NewCatalogServiceMock(t), reviews, zap.NewNop())

	t.Run("Success", func(t *testing.T) {
		reviews.EXPECT().CreateReview(mock.Anything, int64(2), int64(5), 4, "Растет быстро").
			Return(&domain.Review{ID: 1, ProductID: 5, UserID: 2, Rating: 4}, nil).Once()

		w := httptest.NewRecorder()
		handler.CreateReview(w, newRequest(http.MethodPost, "/api/products/5/reviews",
			`{"rating":4,"text":"Растет быстро"}`, 2, map[string]string{"id": "5"}))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Second review", func(t *testing.T) {
		reviews.EXPECT().CreateReview(mock.Anything, int64(2), int64(5), 5, "").
			Return(nil, domain.ErrReviewExists).Once()

		w := httptest.NewRecorder()
		handler.CreateReview(w, newRequest(http.MethodPost, "/api/products/5/reviews",
			`{"rating":5}`, 2, map[string]string{"id": "5"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestOrdersHandler_PlaceOrder(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(mockService, zap.NewNop())

	body := `{"items":[{"product_id":5,"quantity":2}],"full_name":"Anna","phone":"+79991234567",` +
		`"address":"Moscow","delivery_type":"courier","delivery_speed":"standard","payment_method":"ozon_pay"}`

	t.Run("Gateway redirect", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.MatchedBy(func(req domain.CheckoutRequest) bool {
			return len(req.Items) == 1 && req.Items[0].Quantity == 2 && req.PaymentMethod == "ozon_pay"
		})).Return(&domain.CheckoutResult{
			Order:       &domain.Order{ID: 10, Status: domain.OrderStatusPendingPayment},
			RedirectURL: "https://pay.example/10",
		}, nil).Once()

		w := httptest.NewRecorder()
		handler.PlaceOrder(w, newRequest(http.MethodPost, "/api/orders", body, 1, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"redirect_url":"https://pay.example/10"`)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.Anything).
			Return(nil, domain.ErrInsufficientBalance).Once()

		w := httptest.NewRecorder()
		handler.PlaceOrder(w, newRequest(http.MethodPost, "/api/orders", body, 1, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error":"insufficient balance"}`, w.Body.String())
	})

	t.Run("Gateway down", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.Anything).
			Return(nil, domain.ErrPaymentGatewayFailure).Once()

		w := httptest.NewRecorder()
		handler.PlaceOrder(w, newRequest(http.MethodPost, "/api/orders", body, 1, nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("Internal error is hidden", func(t *testing.T) {
		mockService.EXPECT().PlaceOrder(mock.Anything, int64(1), mock.Anything).
			Return(nil, errors.New("order service: connection reset")).Once()

		w := httptest.NewRecorder()
		handler.PlaceOrder(w, newRequest(http.MethodPost, "/api/orders", body, 1, nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})

	t.Run("Unauthorized - no user ID in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.PlaceOrder(w, newRequest(http.MethodPost, "/api/orders", body, 0, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOrdersHandler_ListMyOrders(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(mockService, zap.NewNop())

	mockService.EXPECT().ListUserOrders(mock.Anything, int64(1)).Return(nil, nil).Once()

	w := httptest.NewRecorder()
	handler.ListMyOrders(w, newRequest(http.MethodGet, "/api/orders", "", 1, nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestOrdersHandler_Admin(t *testing.T) {
	mockService := domainmocks.NewOrderServiceMock(t)
	handler := NewOrdersHandler(mockService, zap.NewNop())

	t.Run("List with filter", func(t *testing.T) {
		mockService.EXPECT().ListOrders(mock.Anything, domain.OrderFilter{
			Page:   1,
			Limit:  20,
			Status: domain.OrderStatusShipped,
			Search: "Anna",
		}).Return(&domain.OrderPage{Total: 0, Page: 1, Limit: 20}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListOrders(w, newRequest(http.MethodGet, "/api/admin/orders?page=1&limit=20&status=shipped&search=Anna", "", 1, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("List with unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ListOrders(w, newRequest(http.MethodGet, "/api/admin/orders?status=lost", "", 1, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Change status with tracking number", func(t *testing.T) {
		mockService.EXPECT().EditOrder(mock.Anything, int64(10), domain.OrderEdit{},
			mock.MatchedBy(func(c *domain.StatusChange) bool {
				return c.Status == domain.OrderStatusShipped && c.TrackingNumber != nil && *c.TrackingNumber == "RA123"
			})).Return(&domain.Order{ID: 10, Status: domain.OrderStatusShipped}, nil).Once()

		w := httptest.NewRecorder()
		handler.ChangeStatus(w, newRequest(http.MethodPost, "/api/admin/orders/10/status",
			`{"status":"shipped","tracking_number":"RA123"}`, 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Completed is accepted as paid", func(t *testing.T) {
		mockService.EXPECT().EditOrder(mock.Anything, int64(10), domain.OrderEdit{},
			mock.MatchedBy(func(c *domain.StatusChange) bool {
				return c.Status == domain.OrderStatusPaid
			})).Return(&domain.Order{ID: 10, Status: domain.OrderStatusPaid}, nil).Once()

		w := httptest.NewRecorder()
		handler.ChangeStatus(w, newRequest(http.MethodPost, "/api/admin/orders/10/status",
			`{"status":"completed"}`, 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Rejected transition", func(t *testing.T) {
		mockService.EXPECT().EditOrder(mock.Anything, int64(10), domain.OrderEdit{}, mock.Anything).
			Return(nil, domain.ErrInvalidTransition).Once()

		w := httptest.NewRecorder()
		handler.ChangeStatus(w, newRequest(http.MethodPost, "/api/admin/orders/10/status",
			`{"status":"pending"}`, 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Edit without status change", func(t *testing.T) {
		mockService.EXPECT().EditOrder(mock.Anything, int64(10),
			mock.MatchedBy(func(e domain.OrderEdit) bool {
				return e.Address != nil && *e.Address == "Kazan" && e.FullName == nil
			}), (*domain.StatusChange)(nil)).Return(&domain.Order{ID: 10}, nil).Once()

		w := httptest.NewRecorder()
		handler.EditOrder(w, newRequest(http.MethodPatch, "/api/admin/orders/10",
			`{"address":"Kazan"}`, 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		mockService.EXPECT().DeleteOrder(mock.Anything, int64(10)).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.DeleteOrder(w, newRequest(http.MethodDelete, "/api/admin/orders/10", "", 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestPaymentsHandler_Webhook(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	handler := NewPaymentsHandler(mockService, zap.NewNop())

	body := `{"transactionId":"tx-1","status":"paid"}`

	t.Run("Accepted", func(t *testing.T) {
		mockService.EXPECT().HandleWebhook(mock.Anything, []byte(body), "abc").Return(nil).Once()

		req := newRequest(http.MethodPost, "/api/payments/webhook", body, 0, nil)
		req.Header.Set(SignatureHeader, "abc")
		w := httptest.NewRecorder()
		handler.Webhook(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("Bad signature", func(t *testing.T) {
		mockService.EXPECT().HandleWebhook(mock.Anything, []byte(body), "").Return(domain.ErrInvalidSignature).Once()

		w := httptest.NewRecorder()
		handler.Webhook(w, newRequest(http.MethodPost, "/api/payments/webhook", body, 0, nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestPaymentsHandler_Manual(t *testing.T) {
	mockService := domainmocks.NewPaymentServiceMock(t)
	handler := NewPaymentsHandler(mockService, zap.NewNop())

	t.Run("Approve without body", func(t *testing.T) {
		mockService.EXPECT().ApproveManual(mock.Anything, int64(10), "").
			Return(&domain.Order{ID: 10, PaymentStatus: domain.PaymentStatusPaid}, nil).Once()

		w := httptest.NewRecorder()
		handler.ApproveManual(w, newRequest(http.MethodPost, "/api/admin/orders/10/approve-payment", "", 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Reject with comment", func(t *testing.T) {
		mockService.EXPECT().RejectManual(mock.Anything, int64(10), "нет поступления").
			Return(&domain.Order{ID: 10}, nil).Once()

		w := httptest.NewRecorder()
		handler.RejectManual(w, newRequest(http.MethodPost, "/api/admin/orders/10/reject-payment",
			`{"comment":"нет поступления"}`, 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Not a manual order", func(t *testing.T) {
		mockService.EXPECT().ApproveManual(mock.Anything, int64(11), "").
			Return(nil, domain.ErrNotManualPayment).Once()

		w := httptest.NewRecorder()
		handler.ApproveManual(w, newRequest(http.MethodPost, "/api/admin/orders/11/approve-payment", "", 1, map[string]string{"id": "11"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Malformed comment", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.RejectManual(w, newRequest(http.MethodPost, "/api/admin/orders/10/reject-payment",
			`{"comment":`, 1, map[string]string{"id": "10"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBalanceHandler(t *testing.T) {
	mockService := domainmocks.NewTopupServiceMock(t)
	handler := NewBalanceHandler(mockService, zap.NewNop())

	t.Run("Request topup", func(t *testing.T) {
		mockService.EXPECT().RequestTopup(mock.Anything, int64(1), decimalEq(500), "bank_transfer").
			Return(&domain.BalanceTopup{ID: 3, Status: domain.TopupStatusPending}, nil).Once()

		w := httptest.NewRecorder()
		handler.RequestTopup(w, newRequest(http.MethodPost, "/api/balance/topups",
			`{"amount":"500","method":"bank_transfer"}`, 1, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		mockService.EXPECT().RequestTopup(mock.Anything, int64(1), decimalEq(0), "bank_transfer").
			Return(nil, domain.ErrInvalidAmount).Once()

		w := httptest.NewRecorder()
		handler.RequestTopup(w, newRequest(http.MethodPost, "/api/balance/topups",
			`{"amount":"0","method":"bank_transfer"}`, 1, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Own topups", func(t *testing.T) {
		mockService.EXPECT().ListUserTopups(mock.Anything, int64(1)).Return(nil, nil).Once()

		w := httptest.NewRecorder()
		handler.ListMyTopups(w, newRequest(http.MethodGet, "/api/balance/topups", "", 1, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Admin list pending", func(t *testing.T) {
		mockService.EXPECT().ListTopups(mock.Anything, domain.TopupStatusPending).
			Return([]*domain.BalanceTopup{{ID: 3}}, nil).Once()

		w := httptest.NewRecorder()
		handler.ListTopups(w, newRequest(http.MethodGet, "/api/admin/topups?status=pending", "", 1, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Approve twice", func(t *testing.T) {
		mockService.EXPECT().ApproveTopup(mock.Anything, int64(3), "ok").
			Return(nil, domain.ErrTopupNotPending).Once()

		w := httptest.NewRecorder()
		handler.ApproveTopup(w, newRequest(http.MethodPost, "/api/admin/topups/3/approve",
			`{"comment":"ok"}`, 1, map[string]string{"id": "3"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Reject", func(t *testing.T) {
		mockService.EXPECT().RejectTopup(mock.Anything, int64(3), "").
			Return(&domain.BalanceTopup{ID: 3, Status: domain.TopupStatusFailed}, nil).Once()

		w := httptest.NewRecorder()
		handler.RejectTopup(w, newRequest(http.MethodPost, "/api/admin/topups/3/reject", "", 1, map[string]string{"id": "3"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestPromoHandler(t *testing.T) {
	mockService := domainmocks.NewPromoServiceMock(t)
	handler := NewPromoHandler(mockService, zap.NewNop())

	t.Run("Validate reports reason", func(t *testing.T) {
		mockService.EXPECT().Evaluate(mock.Anything, "SPRING", decimalEq(800)).
			Return(domain.PromoResult{Code: "SPRING", Reason: domain.PromoReasonBelowMinimum, DiscountAmount: decimal.Zero}, nil).Once()

		w := httptest.NewRecorder()
		handler.Validate(w, newRequest(http.MethodPost, "/api/promo/validate",
			`{"code":"SPRING","subtotal":"800"}`, 0, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"valid":false`)
	})

	t.Run("Create defaults to active", func(t *testing.T) {
		mockService.EXPECT().CreatePromo(mock.Anything, mock.MatchedBy(func(p *domain.PromoCode) bool {
			return p.Code == "SUMMER" && p.IsActive && p.DiscountType == domain.DiscountPercentage
		})).Return(&domain.PromoCode{ID: 2, Code: "SUMMER", IsActive: true}, nil).Once()

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/admin/promos",
			`{"code":"SUMMER","discount_type":"percentage","discount_value":"10",`+
				`"start_date":"2026-06-01T00:00:00Z","end_date":"2026-09-01T00:00:00Z"}`, 1, nil))

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Duplicate code", func(t *testing.T) {
		mockService.EXPECT().CreatePromo(mock.Anything, mock.Anything).Return(nil, domain.ErrPromoExists).Once()

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/admin/promos", `{"code":"SUMMER"}`, 1, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Delete deactivates", func(t *testing.T) {
		mockService.EXPECT().DeactivatePromo(mock.Anything, int64(2)).Return(nil).Once()

		w := httptest.NewRecorder()
		handler.Delete(w, newRequest(http.MethodDelete, "/api/admin/promos/2", "", 1, map[string]string{"id": "2"}))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestUsersHandler(t *testing.T) {
	mockService := domainmocks.NewUserServiceMock(t)
	handler := NewUsersHandler(mockService, zap.NewNop())

	t.Run("Update only given fields", func(t *testing.T) {
		mockService.EXPECT().UpdateUser(mock.Anything, int64(4), mock.MatchedBy(func(u domain.UserUpdate) bool {
			return u.IsAdmin != nil && *u.IsAdmin && u.Phone == nil && u.FullName == nil
		})).Return(&domain.User{ID: 4, IsAdmin: true}, nil).Once()

		w := httptest.NewRecorder()
		handler.Update(w, newRequest(http.MethodPatch, "/api/admin/users/4", `{"is_admin":true}`, 1, map[string]string{"id": "4"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Credit balance", func(t *testing.T) {
		mockService.EXPECT().CreditBalance(mock.Anything, int64(4), decimalEq(300)).
			Return(&domain.User{ID: 4, Balance: decimal.NewFromInt(300)}, nil).Once()

		w := httptest.NewRecorder()
		handler.CreditBalance(w, newRequest(http.MethodPost, "/api/admin/users/4/balance", `{"amount":"300"}`, 1, map[string]string{"id": "4"}))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		mockService.EXPECT().CreateUser(mock.Anything, domain.NewUser{Email: "a@b.c", Password: "secret123"}).
			Return(nil, domain.ErrUserExists).Once()

		w := httptest.NewRecorder()
		handler.Create(w, newRequest(http.MethodPost, "/api/admin/users", `{"email":"a@b.c","password":"secret123"}`, 1, nil))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Missing user", func(t *testing.T) {
		mockService.EXPECT().GetUser(mock.Anything, int64(99)).Return(nil, domain.ErrUserNotFound).Once()

		w := httptest.NewRecorder()
		handler.Get(w, newRequest(http.MethodGet, "/api/admin/users/99", "", 1, map[string]string{"id": "99"}))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthHandler(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name       string
		checks     []Check
		wantStatus int
		wantBody   string
		wantReady  int
	}{
		{
			name:       "All dependencies up",
			checks:     []Check{{Name: "database", Ping: up}, {Name: "redis", Ping: up, Optional: true}},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ok","checks":{"database":"ok","redis":"ok"}}`,
			wantReady:  http.StatusOK,
		},
		{
			name:       "Optional dependency down",
			checks:     []Check{{Name: "database", Ping: up}, {Name: "redis", Ping: down, Optional: true}},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"degraded","checks":{"database":"ok","redis":"unavailable"}}`,
			wantReady:  http.StatusOK,
		},
		{
			name:       "Database down",
			checks:     []Check{{Name: "database", Ping: down}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"degraded","checks":{"database":"unavailable"}}`,
			wantReady:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(zap.NewNop(), tt.checks...)

			w := httptest.NewRecorder()
			handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())

			w = httptest.NewRecorder()
			handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
			assert.Equal(t, tt.wantReady, w.Code)
		})
	}
}
