package handlers

import (
	"encoding/json"
	"net/http"

	"billing-backend/internal/auth"
	"billing-backend/internal/config"
	"billing-backend/internal/models"
	"billing-backend/pkg/utils"
)

// AuthHandler implements the single-credential login the shop UI uses.
// There is no user table: the admin username and password come from config,
// optionally as a bcrypt hash.
type AuthHandler struct {
	cfg        *config.Config
	jwtManager *auth.JWTManager
}

func NewAuthHandler(cfg *config.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username != h.cfg.Auth.AdminUsername || !h.checkPassword(req.Password) {
		utils.JSON(w, http.StatusUnauthorized, models.LoginResponse{
			Success: false,
			Message: "Invalid credentials",
		})
		return
	}

	token, err := h.jwtManager.GenerateToken(req.Username)
	if err != nil {
		utils.Error(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.LoginResponse{
		Success: true,
		Token:   token,
		User:    &models.AuthUser{Username: req.Username},
	})
}

func (h *AuthHandler) checkPassword(password string) bool {
	if h.cfg.Auth.AdminPasswordHash != "" {
		return auth.CheckPassword(h.cfg.Auth.AdminPasswordHash, password)
	}
	return password == h.cfg.Auth.AdminPassword
}
