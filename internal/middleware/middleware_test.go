package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/julioaguiar07/aplicacao-garagem-sub000/internal/utils"
)

const testSecret = "middleware-test-secret"

func doRequest(t *testing.T, mw echo.MiddlewareFunc, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestJWTAuth(t *testing.T) {
	t.Run("valid token passes and sets context", func(t *testing.T) {
		access, err := utils.NewAccessToken(testSecret, 42, "ADMIN", 15)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+access.Token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var gotRole any
		handler := JWTAuth(testSecret)(func(c echo.Context) error {
			gotRole = c.Get("role")
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "ADMIN", gotRole)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec := doRequest(t, JWTAuth(testSecret), "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret is unauthorized", func(t *testing.T) {
		access, err := utils.NewAccessToken("some-other-secret", 42, "USER", 15)
		require.NoError(t, err)
		rec := doRequest(t, JWTAuth(testSecret), "Bearer "+access.Token)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		rec := doRequest(t, JWTAuth(testSecret), "Bearer not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	run := func(role any, allowed ...string) int {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != nil {
			c.Set("role", role)
		}
		handler := RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		return rec.Code
	}

	t.Run("allowed role passes", func(t *testing.T) {
		require.Equal(t, http.StatusOK, run("ADMIN", "ADMIN", "USER"))
	})
	t.Run("unknown role is forbidden", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, run("GUEST", "ADMIN", "USER"))
	})
	t.Run("missing role is forbidden", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, run(nil, "ADMIN"))
	})
	t.Run("non-string role is forbidden", func(t *testing.T) {
		require.Equal(t, http.StatusForbidden, run(7, "ADMIN"))
	})
}
