package handlers

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/dto"
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Authenticator registers users and exchanges credentials for tokens.
type Authenticator interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, error)
}

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, "Email and password are required")
	}

	id, err := h.auth.Register(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "register user")
	}

	return c.JSON(dto.RegisterResponse{
		Message: "New user account",
		Result: dto.RegisterResult{
			Acknowledged: true,
			InsertedID:   id,
		},
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req); err != nil {
		return badRequest(c, "Email and password are required")
	}

	token, err := h.auth.Login(c.UserContext(), &req)
	if err != nil {
		return fail(c, err, "login")
	}

	return c.JSON(dto.LoginResponse{AccessToken: token})
}

func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	claims := middleware.ClaimsFrom(c)
	if claims == nil {
		return c.SendStatus(fiber.StatusForbidden)
	}

	user := dto.ProfileUser{
		UserID: claims.UserID,
		Email:  claims.Email,
	}
	if claims.IssuedAt != nil {
		user.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.ExpiresAt != nil {
		user.ExpiresAt = claims.ExpiresAt.Unix()
	}

	return c.JSON(dto.ProfileResponse{
		Message: "This is a protected route",
		User:    user,
	})
}
