package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/starwars-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/starwars-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "starwars-api-test"
	testAudience  = "starwars-api-test-clients"
	testExpMin    = 60
)

var testSettings = apphttp.JWTSettings{
	Secret:   testJWTSecret,
	Issuer:   testIssuer,
	Audience: testAudience,
}

// buildProtectedApp construye una aplicación Fiber mínima con AuthMiddleware y un
// handler dummy que devuelve la identidad cargada en locals.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testSettings),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

// validToken genera un JWT válido para los settings del test.
func validToken(t *testing.T, expMinutes int) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "luke", "luke@rebellion.org", "User", testIssuer, testAudience, expMinutes)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: token válido -> pasa y los locals llevan la identidad del token.
func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "Bearer "+validToken(t, testExpMin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: sin header Authorization -> 401 MISSING_TOKEN.
func TestAuthMiddleware_SinHeader(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 3: formato distinto de "Bearer <token>" -> 401.
func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "Basic abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: token expirado -> 401.
func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildProtectedApp()
	resp := doRequest(t, app, "Bearer "+validToken(t, -1))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 5: token firmado con otro secret -> 401.
func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secret", testUserID, "luke", "luke@rebellion.org", "User", testIssuer, testAudience, testExpMin)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: audience distinta a la configurada -> 401.
func TestAuthMiddleware_AudienceIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "luke", "luke@rebellion.org", "User", testIssuer, "otra-audience", testExpMin)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
