package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/jwtauth/v5"

	"github.com/worklane-hq/worklane-bff-go/internal/handler/http/response"
	"github.com/worklane-hq/worklane-bff-go/internal/upstream"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Invalid access token")
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.Unauthorized(w, "Invalid access token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// TokenPassthrough copies the caller's bearer token into the request
// context so upstream calls carry the same identity.
func TokenPassthrough(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if rest, ok := strings.CutPrefix(header, "Bearer "); ok && rest != "" {
			r = r.WithContext(upstream.WithToken(r.Context(), rest))
		}
		next.ServeHTTP(w, r)
	})
}
