package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/dentio/dentio_backend/internal/api/http/middleware"
	"github.com/dentio/dentio_backend/internal/service/auth"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	id, err := h.svc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return unauthorized(c, err.Error())
		}
		return internalError(c)
	}
	return ok(c, id)
}

// POST /auth/logout
func (h *AuthHandler) Logout(c fiber.Ctx) error {
	if err := h.svc.Logout(c.Context()); err != nil {
		return internalError(c)
	}
	return noContent(c)
}

// GET /auth/me
func (h *AuthHandler) Me(c fiber.Ctx) error {
	id, valid := middleware.IdentityFromFiber(c)
	if !valid {
		return unauthorized(c, "no active session")
	}
	return ok(c, id)
}
