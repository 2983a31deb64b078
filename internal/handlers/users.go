package handlers

import (
	"net/http"

	"github.com/avc/plantstore/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// UsersHandler администрирование пользователей
type UsersHandler struct {
	users  domain.UserService
	logger *zap.Logger
}

func NewUsersHandler(users domain.UserService, logger *zap.Logger) *UsersHandler {
	return &UsersHandler{
		users:  users,
		logger: logger,
	}
}

func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	pg, limit, err := pageParams(r)
	if err != nil {
		writeError(w, r, h.logger, err, "list users")
		return
	}

	users, total, err := h.users.ListUsers(r.Context(), pg, limit)
	if err != nil {
		writeError(w, r, h.logger, err, "list users")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, page[*domain.User]{Items: users, Total: total})
}

func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	user, err := h.users.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err, "get user")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}

func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.NewUser
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	user, err := h.users.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err, "create user")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, user)
}

type userUpdateRequest struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	IsAdmin  *bool   `json:"is_admin"`
}

func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req userUpdateRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	user, err := h.users.UpdateUser(r.Context(), id, domain.UserUpdate{
		FullName: req.FullName,
		Phone:    req.Phone,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		writeError(w, r, h.logger, err, "update user")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}

type creditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreditBalance зачисляет сумму на баланс пользователя
func (h *UsersHandler) CreditBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, h.logger, "id")
	if !ok {
		return
	}

	var req creditRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	user, err := h.users.CreditBalance(r.Context(), id, req.Amount)
	if err != nil {
		writeError(w, r, h.logger, err, "credit balance")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}
