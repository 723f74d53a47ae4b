package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/handler/http/response"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds JSON bodies, which carry base64 photos.
const maxBodyBytes = 10 << 20

var errBadPathID = errors.New("invalid id")

// decodeJSON decodes the request body into dst. Malformed JSON is a 400; a
// well-formed body whose field has the wrong type is a 422 naming that field.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Fail(w, http.StatusRequestEntityTooLarge, response.CodeInvalidInput, "Request body too large", nil)
			return false
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.ValidationError(w, map[string]string{
				typeErr.Field: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
			})
			return false
		}
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// employeeIDFromClaims returns the employee_id claim of an employee token.
func employeeIDFromClaims(r *http.Request) (int64, error) {
	claims, err := jwt.ClaimsFromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	if claims.Role != auth.RoleEmployee || claims.EmployeeID == nil {
		return 0, auth.ErrForbidden
	}
	return *claims.EmployeeID, nil
}

func pathID(r *http.Request, key string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadPathID
	}
	return id, nil
}

// getIntQueryParam gets an int query parameter with a default value
func getIntQueryParam(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}
	intVal, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return intVal
}

func optionalQuery(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}
