package http

import (
	"encoding/json"
	"net/http"

	"github.com/lotus-wellness/payroll-backend-go/internal/domain/auth"
	"github.com/lotus-wellness/payroll-backend-go/internal/handler/http/response"
	authservice "github.com/lotus-wellness/payroll-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type authHandler struct {
	authService *authservice.Service
}

func NewAuthHandler(authService *authservice.Service) AuthHandler {
	return &authHandler{authService: authService}
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if req.Username == "" || req.Password == "" {
		response.BadRequest(w, "Username and password are required", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
