package handlers

import (
	"net/http"

	"github.com/avc/plantstore/internal/domain"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService domain.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService domain.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// writeToken отдает токен в заголовке и в теле ответа
func (h *AuthHandler) writeToken(w http.ResponseWriter, token string) {
	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, h.logger, http.StatusOK, tokenResponse{Token: token})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	ticket, err := h.authService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err, "register")
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, ticket)
}

type confirmRequest struct {
	Phone string `json:"phone"`
	Token string `json:"token"`
}

func (h *AuthHandler) ConfirmRegistration(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	token, err := h.authService.CompleteRegistration(r.Context(), req.Phone, req.Token)
	if err != nil {
		writeError(w, r, h.logger, err, "confirm registration")
		return
	}

	h.writeToken(w, token)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, h.logger, err, "login")
		return
	}

	h.writeToken(w, token)
}

// Me возвращает профиль текущего пользователя с балансом
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r, h.logger)
	if !ok {
		return
	}

	user, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err, "profile")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, user)
}
