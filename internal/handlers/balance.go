package handlers

import (
	"net/http"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BalanceHandler пополнения баланса
type BalanceHandler struct {
	topups domain.TopupService
	logger *zap.Logger
}

func NewBalanceHandler(topups domain.TopupService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		topups: topups,
		logger: logger,
	}
}

type topupRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

func (h *BalanceHandler) RequestTopup(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req topupRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	topup, err := h.topups.RequestTopup(r.Context(), userID, req.Amount, req.Method)
	if err != nil {
		writeError(w, r, h.logger, err, "request topup")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, topup)
}

func (h *BalanceHandler) ListMyTopups(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	topups, err := h.topups.ListUserTopups(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, "list topups")
		return
	}
	if topups == nil {
		topups = []*domain.BalanceTopup{}
	}

	writeJSON(w, h.logger, http.StatusOK, topups)
}

func (h *BalanceHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req proofRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	topup, err := h.topups.UploadTopupProof(r.Context(), userID, id, req.URL)
	if err != nil {
		writeError(w, r, h.logger, err, "upload topup proof")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, topup)
}

// ListTopups список пополнений для администратора, ?status= фильтрует по статусу
func (h *BalanceHandler) ListTopups(w http.ResponseWriter, r *http.Request) {
	status := domain.TopupStatus(r.URL.Query().Get("status"))

	topups, err := h.topups.ListTopups(r.Context(), status)
	if err != nil {
		writeError(w, r, h.logger, err, "admin list topups")
		return
	}
	if topups == nil {
		topups = []*domain.BalanceTopup{}
	}

	writeJSON(w, h.logger, http.StatusOK, topups)
}

func (h *BalanceHandler) ApproveTopup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}
	comment, ok := decodeComment(w, r, h.logger)
	if !ok {
		return
	}

	topup, err := h.topups.ApproveTopup(r.Context(), id, comment)
	if err != nil {
		writeError(w, r, h.logger, err, "approve topup")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, topup)
}

func (h *BalanceHandler) RejectTopup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}
	comment, ok := decodeComment(w, r, h.logger)
	if !ok {
		return
	}

	topup, err := h.topups.RejectTopup(r.Context(), id, comment)
	if err != nil {
		writeError(w, r, h.logger, err, "reject topup")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, topup)
}
