package middleware

import (
	"net/http"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RevocationChecker reports whether a raw token was revoked by logout.
type RevocationChecker interface {
	IsTokenRevoked(token string) bool
}

// AuthRequired runs after jwtauth.Verifier and rejects missing, non-access or revoked tokens.
func AuthRequired(revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if revoked != nil && revoked.IsTokenRevoked(RawToken(r)) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// RawToken returns the bearer token of r, falling back to the jwt query
// parameter used by EventSource clients.
func RawToken(r *http.Request) string {
	if token := jwtauth.TokenFromHeader(r); token != "" {
		return token
	}
	return jwtauth.TokenFromQuery(r)
}
