package middleware

import (
	"net/http"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func requireRole(role auth.Role, denied error) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok || auth.Role(roleStr) != role {
				response.HandleError(w, denied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin requires the admin role
var RequireAdmin = requireRole(auth.RoleAdmin, auth.ErrAdminRequired)

// RequireEmployee requires the employee role
var RequireEmployee = requireRole(auth.RoleEmployee, auth.ErrForbidden)
