package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/cadetnet/dutylog-api/internal/middleware"
	"github.com/cadetnet/dutylog-api/pkg/msgraph"
)

func graphStub(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("Authorization") {
		case "Bearer cadet-token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mail":"cdt@westpoint.edu","displayName":"CDT Doe"}`))
		case "Bearer external-token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"mail":"someone@example.com","displayName":"Someone"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func identityApp(t *testing.T, opts middleware.IdentityOptions) *fiber.App {
	t.Helper()
	client, err := msgraph.New(graphStub(t).URL, zerolog.New(io.Discard))
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/whoami", middleware.VerifyIdentity(client, opts, zerolog.New(io.Discard)), func(c *fiber.Ctx) error {
		return c.SendString(middleware.VerifiedEmail(c))
	})
	return app
}

func TestVerifyIdentityRequiresAuthorization(t *testing.T) {
	app := identityApp(t, middleware.IdentityOptions{RequiredDomain: "@westpoint.edu"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyIdentityRejectsInvalidToken(t *testing.T) {
	app := identityApp(t, middleware.IdentityOptions{RequiredDomain: "@westpoint.edu"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyIdentityEnforcesDomain(t *testing.T) {
	app := identityApp(t, middleware.IdentityOptions{RequiredDomain: "@westpoint.edu"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer external-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestVerifyIdentityPropagatesEmail(t *testing.T) {
	app := identityApp(t, middleware.IdentityOptions{RequiredDomain: "@westpoint.edu"})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer cadet-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "cdt@westpoint.edu", string(body))
}

func TestVerifyIdentityWithoutDomainGate(t *testing.T) {
	app := identityApp(t, middleware.IdentityOptions{})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer external-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
