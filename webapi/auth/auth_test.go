package auth_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/minibank/ledger/app"
	"github.com/minibank/ledger/config"
	"github.com/minibank/ledger/internal/fixtures"
	"github.com/minibank/ledger/pkg/domain/client"
	"github.com/minibank/ledger/pkg/utils"
)

func newTestApp(uow *fixtures.MockUoW) *fiber.App {
	return app.New(config.Deps{
		Uow:    uow,
		Logger: slog.Default(),
		Config: &config.App{
			Jwt:       &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
			RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		},
	})
}

func postLogin(t *testing.T, a *fiber.App, username, password string) (int, string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]string{
		"username": username,
		"password": password,
	}))
	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := a.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func storedClient(t *testing.T, password string) *client.Client {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	require.NoError(t, err)
	c, err := client.New("alice", hashed, "Alice A.", "1990-04-02", nil, nil)
	require.NoError(t, err)
	c.ID = 1
	return c
}

func TestLogin(t *testing.T) {
	uow := fixtures.NewMockUoW()
	a := newTestApp(uow)

	uow.ClientRepo.On("GetByUsername", mock.Anything, "alice").
		Return(storedClient(t, "password123"), nil)

	status, body := postLogin(t, a, "alice", "password123")

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"Login successful"`)
	assert.Contains(t, body, `"token"`)
}

func TestLogin_WrongPassword(t *testing.T) {
	uow := fixtures.NewMockUoW()
	a := newTestApp(uow)

	uow.ClientRepo.On("GetByUsername", mock.Anything, "alice").
		Return(storedClient(t, "password123"), nil)

	status, body := postLogin(t, a, "alice", "not-the-password")

	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Contains(t, body, "Invalid credentials")
	assert.NotContains(t, body, "token")
}

func TestLogin_UnknownUsername(t *testing.T) {
	uow := fixtures.NewMockUoW()
	a := newTestApp(uow)

	uow.ClientRepo.On("GetByUsername", mock.Anything, "nobody").
		Return(nil, client.ErrClientNotFound)

	status, _ := postLogin(t, a, "nobody", "whatever")

	assert.Equal(t, fiber.StatusUnauthorized, status)
}
