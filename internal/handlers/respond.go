package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/avc/plantstore/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

// errorResponse тело ответа с ошибкой
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON записывает ответ в формате JSON
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeMessage записывает ошибку с текстом причины
func writeMessage(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, errorResponse{Error: msg})
}

// statusFor сопоставляет вид ошибки предметной области с HTTP статусом
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrTokenMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrExternalService):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// writeError отвечает на ошибку сервиса. Причина показывается только для ошибок
// предметной области, остальные логируются и скрываются за 500.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error, op string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		requestID, _ := r.Context().Value(RequestIDKey).(string)
		logger.Error("request failed",
			zap.String("op", op),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		writeMessage(w, logger, status, "internal server error")
		return
	}
	writeMessage(w, logger, status, err.Error())
}

// decodeJSON читает тело запроса. Ошибка разбора уже записана в ответ.
func decodeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, logger, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathID разбирает числовой идентификатор из маршрута
func pathID(w http.ResponseWriter, r *http.Request, logger *zap.Logger, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeMessage(w, logger, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt разбирает необязательный числовой параметр запроса, 0 если не задан
func queryInt(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ErrInvalidPagination
	}
	return v, nil
}

// pageParams читает page и limit
func pageParams(r *http.Request) (int, int, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return 0, 0, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}
	return page, limit, nil
}

// page ответ со страницей списка
type page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// currentUser возвращает пользователя из контекста или отвечает 401
func currentUser(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (int64, bool) {
	userID, ok := GetUserID(r.Context())
	if !ok {
		writeMessage(w, logger, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return userID, true
}
