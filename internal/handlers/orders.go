package handlers

import (
	"net/http"

	"github.com/avc/plantstore/internal/domain"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// Quote рассчитывает заказ без сохранения
func (h *OrdersHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	quote, err := h.orderService.Quote(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err, "quote")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, quote)
}

func (h *OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	var req domain.CheckoutRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	res, err := h.orderService.PlaceOrder(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, h.logger, err, "place order")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, res)
}

func (h *OrdersHandler) ListMyOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	orders, err := h.orderService.ListUserOrders(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, "list orders")
		return
	}
	if orders == nil {
		orders = []*domain.Order{}
	}

	writeJSON(w, h.logger, http.StatusOK, orders)
}

func (h *OrdersHandler) GetMyOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetUserOrder(r.Context(), userID, id)
	if err != nil {
		writeError(w, r, h.logger, err, "get order")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

type proofRequest struct {
	URL string `json:"url"`
}

func (h *OrdersHandler) UploadProof(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orderService.UploadPaymentProof(r.Context(), userID, id, req.URL)
	if err != nil {
		writeError(w, r, h.logger, err, "upload proof")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

// ListOrders постраничный список заказов для администратора
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	pg, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, h.logger, err, "admin list orders")
		return
	}

	f := domain.OrderFilter{Page: pg, Limit: limit, Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := domain.ParseOrderStatus(raw)
		if err != nil {
			writeError(w, r, h.logger, err, "admin list orders")
			return
		}
		f.Status = status
	}

	res, err := h.orderService.ListOrders(r.Context(), f)
	if err != nil {
		writeError(w, r, h.logger, err, "admin list orders")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, res)
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "admin get order")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

type statusRequest struct {
	Status         string  `json:"status"`
	Comment        string  `json:"comment"`
	TrackingNumber *string `json:"tracking_number"`
}

func (req statusRequest) change() (*domain.StatusChange, error) {
	status, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, err
	}
	return &domain.StatusChange{
		Status:         status,
		Comment:        req.Comment,
		TrackingNumber: req.TrackingNumber,
	}, nil
}

type editRequest struct {
	FullName       *string `json:"full_name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	TrackingNumber *string `json:"tracking_number"`
	// Status необязательная смена статуса вместе с правкой
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// EditOrder правит контакты и трек-номер заказа, при наличии status меняет и статус
func (h *OrdersHandler) EditOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req editRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	edit := domain.OrderEdit{
		FullName:       req.FullName,
		Phone:          req.Phone,
		Address:        req.Address,
		TrackingNumber: req.TrackingNumber,
	}
	var change *domain.StatusChange
	if req.Status != "" {
		var err error
		change, err = statusRequest{Status: req.Status, Comment: req.Comment, TrackingNumber: req.TrackingNumber}.change()
		if err != nil {
			writeError(w, r, h.logger, err, "admin edit order")
			return
		}
	}

	order, err := h.orderService.EditOrder(r.Context(), id, edit, change)
	if err != nil {
		writeError(w, r, h.logger, err, "admin edit order")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func (h *OrdersHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req statusRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}
	change, err := req.change()
	if err != nil {
		writeError(w, r, h.logger, err, "admin change status")
		return
	}

	order, err := h.orderService.EditOrder(r.Context(), id, domain.OrderEdit{}, change)
	if err != nil {
		writeError(w, r, h.logger, err, "admin change status")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, order)
}

func (h *OrdersHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, r, h.logger, err, "admin delete order")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
