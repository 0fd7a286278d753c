package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"product-api/internal/cache"
	"product-api/internal/database"
	"product-api/internal/model"
	"product-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) (*echo.Echo, *service.TokenIssuer) {
	t.Helper()
	tokens, err := service.NewTokenIssuer("router-secret", 15*time.Minute)
	require.NoError(t, err)
	e := echo.New()
	Setup(e, Deps{
		DB:     &database.FakeDB{},
		Cache:  &cache.FakeCache{},
		Hasher: service.NewHasher(service.DefaultBcryptCost, nil),
		Tokens: tokens,
	})
	return e, tokens
}

func TestSetupRoutes(t *testing.T) {
	e, _ := newTestEcho(t)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/users/register",
		http.MethodPost + " /api/users/login",
		http.MethodGet + " /api/users/profile",
		http.MethodGet + " /api/users",
		http.MethodGet + " /api/users/:id",
		http.MethodPut + " /api/users/:id",
		http.MethodDelete + " /api/users/:id",
		http.MethodGet + " /api/products",
		http.MethodGet + " /api/products/:id",
		http.MethodPost + " /api/products",
		http.MethodPut + " /api/products/:id",
		http.MethodDelete + " /api/products/:id",
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	e, _ := newTestEcho(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/users/profile"},
		{http.MethodGet, "/api/users"},
		{http.MethodGet, "/api/users/1"},
		{http.MethodPut, "/api/users/1"},
		{http.MethodDelete, "/api/users/1"},
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/1"},
		{http.MethodDelete, "/api/products/1"},
	} {
		req := httptest.NewRequest(r.method, r.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", r.method, r.path)
	}
}

func TestProfileAndAdminGate(t *testing.T) {
	e, tokens := newTestEcho(t)
	token, _, err := tokens.Issue(model.User{ID: 3, Name: "Carol", Email: "carol@example.com"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user":{"_id":3,"name":"Carol","email":"carol@example.com","isAdmin":false}}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "admin privileges required")
}
