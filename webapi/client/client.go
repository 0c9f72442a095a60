// Package client exposes the client registry over HTTP.
package client

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/middleware"
	"github.com/minibank/ledger/pkg/service/registry"
	"github.com/minibank/ledger/webapi/common"
)

// Routes registers the client endpoints. Updates require a valid token;
// registration is open.
func Routes(app *fiber.App, svc *registry.Service, cfg *config.App) {
	app.Post("/clients", Create(svc))
	app.Put("/clients/:id", middleware.JwtProtected(cfg.Jwt), Update(svc))
}

// Create handles POST /clients: registers a client and opens its account in
// one transaction.
func Create(svc *registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRequest](c)
		if input == nil {
			return err
		}
		created, err := svc.Create(c.Context(), registry.CreateInput{
			Username:       input.Username,
			Password:       input.Password,
			Name:           input.Name,
			DOB:            input.DOB,
			Phones:         input.Phones,
			Emails:         input.Emails,
			InitialBalance: input.InitialBalance,
		})
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't create client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Client created", toResponse(created))
	}
}

// Update handles PUT /clients/:id: replaces the phone and/or email lists.
func Update(svc *registry.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id <= 0 {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid client ID", "Client ID must be a positive integer")
		}
		input, err := common.BindAndValidate[UpdateRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.Update(c.Context(), uint(id), input.Phones, input.Emails)
		if err != nil {
			return common.DomainErrorJSON(c, "Couldn't update client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client updated", toResponse(updated))
	}
}

func toResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:       c.ID,
		Username: c.Username,
		Name:     c.Name,
		DOB:      c.DOB.Format(client.DOBLayout),
		Phones:   c.Phones,
		Emails:   c.Emails,
		Created:  c.CreatedAt.Format(time.RFC3339),
	}
}
