package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-order-hub/internal/utils"
)

// AuthHandler issues access tokens for the register/admin surface.
// This system has one shared operator credential, verified against a
// bcrypt hash from the environment; there is no user table and no
// refresh-token rotation.
type AuthHandler struct {
	Secret   string // JWT signing secret
	PassHash string // bcrypt hash of the operator password
	TTLMin   int    // token lifetime in minutes
}

// NewAuthHandler constructs an AuthHandler.  All fields must be set.
func NewAuthHandler(secret, passHash string, ttlMin int) *AuthHandler {
	if secret == "" || passHash == "" || ttlMin <= 0 {
		panic("incomplete auth configuration passed to NewAuthHandler")
	}
	return &AuthHandler{Secret: secret, PassHash: passHash, TTLMin: ttlMin}
}

// Login handles POST /api/auth/login.  The body carries the operator
// password; on success a short-lived admin token is returned.
func (h *AuthHandler) Login(c echo.Context) error {
	var body struct {
		Password string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !utils.VerifyPassword(h.PassHash, body.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}
	tok, err := utils.NewAdminToken(h.Secret, h.TTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to issue token"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"accessToken": tok.Token,
		"expiresAt":   tok.Exp.Format(time.RFC3339),
	})
}
