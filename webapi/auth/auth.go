// Package auth exposes the login endpoint.
package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minibank/ledger/pkg/service/auth"
	"github.com/minibank/ledger/webapi/common"
)

// Routes registers the auth endpoints.
func Routes(app *fiber.App, svc *auth.Service) {
	app.Post("/auth/login", Login(svc))
}

// Login handles POST /auth/login: verifies credentials and returns a token.
func Login(svc *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		token, err := svc.Login(c.Context(), input.Username, input.Password)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusUnauthorized, "Invalid credentials", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Login successful", LoginResponse{Token: token})
	}
}
