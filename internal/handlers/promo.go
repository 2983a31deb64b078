package handlers

import (
	"net/http"
	"time"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PromoHandler struct {
	promos domain.PromoService
	logger *zap.Logger
}

func NewPromoHandler(promos domain.PromoService, logger *zap.Logger) *PromoHandler {
	return &PromoHandler{
		promos: promos,
		logger: logger,
	}
}

type validateRequest struct {
	Code     string          `json:"code"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Validate проверяет промокод для суммы корзины. Недействительный код не ошибка:
// причина возвращается в теле ответа.
func (h *PromoHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	res, err := h.promos.Evaluate(r.Context(), req.Code, req.Subtotal)
	if err != nil {
		writeError(w, r, h.logger, err, "validate promo")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, res)
}

type promoRequest struct {
	Code           string              `json:"code"`
	DiscountType   domain.DiscountType `json:"discount_type"`
	DiscountValue  decimal.Decimal     `json:"discount_value"`
	MinOrderAmount *decimal.Decimal    `json:"min_order_amount"`
	StartDate      time.Time           `json:"start_date"`
	EndDate        time.Time           `json:"end_date"`
	MaxUses        *int                `json:"max_uses"`
	IsActive       *bool               `json:"is_active"`
}

func (req promoRequest) promo() *domain.PromoCode {
	p := &domain.PromoCode{
		Code:           req.Code,
		DiscountType:   req.DiscountType,
		DiscountValue:  req.DiscountValue,
		MinOrderAmount: req.MinOrderAmount,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MaxUses:        req.MaxUses,
		IsActive:       true,
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}
	return p
}

func (h *PromoHandler) List(w http.ResponseWriter, r *http.Request) {
	promos, err := h.promos.ListPromos(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "list promos")
		return
	}
	if promos == nil {
		promos = []*domain.PromoCode{}
	}

	writeJSON(w, h.logger, http.StatusOK, promos)
}

func (h *PromoHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	promo, err := h.promos.GetPromo(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "get promo")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, promo)
}

func (h *PromoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	promo, err := h.promos.CreatePromo(r.Context(), req.promo())
	if err != nil {
		writeError(w, r, h.logger, err, "create promo")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, promo)
}

func (h *PromoHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req promoRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	p := req.promo()
	p.ID = id

	promo, err := h.promos.UpdatePromo(r.Context(), p)
	if err != nil {
		writeError(w, r, h.logger, err, "update promo")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, promo)
}

// Delete мягко удаляет промокод
func (h *PromoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.promos.DeactivatePromo(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "deactivate promo")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
