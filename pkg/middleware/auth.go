// Package middleware holds Fiber middleware shared by the API routes.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/webapi/common"
)

// JwtProtected guards a route with HS256 bearer-token authentication.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Missing or malformed JWT", nil)
	}
	return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Invalid or expired JWT", nil)
}
