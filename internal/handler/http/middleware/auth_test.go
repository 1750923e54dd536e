package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane-hq/worklane-bff-go/internal/pkg/jwt"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

func protectedRouter(t *testing.T) (*chi.Mux, jwt.Service, *string) {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", "1h")
	var seenToken string

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService.JWTAuth()))
	r.Use(TokenPassthrough)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		seenToken = upstream.TokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	return r, jwtService, &seenToken
}

func TestAuthRequired_MissingToken(t *testing.T) {
	router, _, _ := protectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	router, _, _ := protectedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_PassesTokenThrough(t *testing.T) {
	router, jwtService, seenToken := protectedRouter(t)

	token, _, err := jwtService.GenerateAccessToken("user-1", "user@worklane.io", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, token, *seenToken)
}
