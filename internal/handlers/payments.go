package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc/plantstore/internal/domain"
	"go.uber.org/zap"
)

// SignatureHeader заголовок с HMAC подписью тела вебхука
const SignatureHeader = "X-Signature"

type PaymentsHandler struct {
	payments domain.PaymentService
	logger   *zap.Logger
}

func NewPaymentsHandler(payments domain.PaymentService, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{
		payments: payments,
		logger:   logger,
	}
}

type statusResponse struct {
	Status string `json:"status"`
}

// Webhook принимает уведомление платежного шлюза. Повторы отвечают 200.
func (h *PaymentsHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		writeMessage(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.payments.HandleWebhook(r.Context(), body, r.Header.Get(SignatureHeader)); err != nil {
		writeError(w, r, h.logger, err, "payment webhook")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, statusResponse{Status: "ok"})
}

type commentRequest struct {
	Comment string `json:"comment"`
}

// decodeComment читает необязательный комментарий. Пустое тело допустимо.
func decodeComment(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (string, bool) {
	var req commentRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeMessage(w, logger, http.StatusBadRequest, "invalid request body")
		return "", false
	}
	return req.Comment, true
}

func (h *PaymentsHandler) ApproveManual(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}
	comment, ok := decodeComment(w, r, h.logger)
	if !ok {
		return
	}

	order, err := h.payments.ApproveManual(r.Context(), id, comment)
	if err != nil {
		writeError(w, r, h.logger, err, "approve payment")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func (h *PaymentsHandler) RejectManual(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}
	comment, ok := decodeComment(w, r, h.logger)
	if !ok {
		return
	}

	order, err := h.payments.RejectManual(r.Context(), id, comment)
	if err != nil {
		writeError(w, r, h.logger, err, "reject payment")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}
