// Package transfer exposes the transfer engine over HTTP.
package transfer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/pkg/middleware"
	"github.com/minibank/ledger/pkg/service/transfer"
	"github.com/minibank/ledger/webapi/common"
)

// Routes registers the transfer endpoint.
func Routes(app *fiber.App, svc *transfer.Service, cfg *config.App) {
	app.Post("/transfer", middleware.JwtProtected(cfg.Jwt), Execute(svc))
}

// Execute handles POST /transfer: an atomic debit+credit between two client
// accounts.
func Execute(svc *transfer.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[Request](c)
		if input == nil {
			return err
		}
		receipt, err := svc.Transfer(c.Context(), input.FromClientID, input.ToClientID, input.Amount)
		if err != nil {
			return common.DomainErrorJSON(c, "Transfer failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", Response{
			Reference:   receipt.Reference.String(),
			FromBalance: receipt.FromBalance,
			ToBalance:   receipt.ToBalance,
		})
	}
}
