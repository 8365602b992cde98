package middleware

import (
	"github.com/ahmetcoskunkizilkaya/delivery-api/internal/services"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenKey  = "user"
	claimsKey = "claims"
)

// JWTProtected rejects requests without a valid bearer token with a bare
// 403. Tokens go through TokenService.Verify before jwtware parses them,
// so the guard accepts exactly what Verify accepts. Verified claims are
// available to later handlers via ClaimsFrom.
func JWTProtected(tokens *services.TokenService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:    tokens.Keyfunc,
		Claims:     &services.Claims{},
		ContextKey: tokenKey,
		TokenProcessorFunc: func(token string) (string, error) {
			if _, err := tokens.Verify(token); err != nil {
				return "", err
			}
			return token, nil
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			c.Status(fiber.StatusForbidden)
			return nil
		},
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals(tokenKey).(*jwt.Token)
			if !ok {
				c.Status(fiber.StatusForbidden)
				return nil
			}
			claims, ok := token.Claims.(*services.Claims)
			if !ok {
				c.Status(fiber.StatusForbidden)
				return nil
			}
			c.Locals(claimsKey, claims)
			return c.Next()
		},
	})
}

// ClaimsFrom returns the claims stored by JWTProtected, or nil.
func ClaimsFrom(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(claimsKey).(*services.Claims)
	return claims
}
