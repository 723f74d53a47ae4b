package jwt

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrMissingClaim = errors.New("token is missing a required claim")

type Service interface {
	GenerateAccessToken(subjectID int64, email string, role auth.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string, expiresAt int64)
	IsTokenRevoked(token string) bool
	PruneRevoked(now time.Time) int
}

type JWTService struct {
	accessTokenExpiration time.Duration
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64 // token -> exp (unix)
	mu                    sync.RWMutex
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) (*JWTService, error) {
	exp, err := time.ParseDuration(accessTokenExpirationTime)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		accessTokenExpiration: exp,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// GenerateAccessToken issues an HS256 token. Employees additionally carry
// employee_id so handlers can match it against request bodies.
func (j *JWTService) GenerateAccessToken(subjectID int64, email string, role auth.Role) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpiration).Unix()

	claims := map[string]interface{}{
		"sub_id": subjectID,
		"email":  email,
		"role":   string(role),
		"type":   "access",
		"exp":    expiresAt,
	}
	if role == auth.RoleEmployee {
		claims["employee_id"] = subjectID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = expiresAt
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// PruneRevoked forgets revoked tokens that have expired anyway and returns how many were dropped.
func (j *JWTService) PruneRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	pruned := 0
	for token, exp := range j.revokedTokens {
		if exp <= now.Unix() {
			delete(j.revokedTokens, token)
			pruned++
		}
	}
	return pruned
}

// Claims is the typed view of an access token.
type Claims struct {
	SubjectID  int64
	Email      string
	Role       auth.Role
	EmployeeID *int64
	ExpiresAt  int64
}

// ClaimsFromContext reads the verified token placed on ctx by jwtauth.Verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, raw, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}
	return ParseClaims(raw)
}

func ParseClaims(raw map[string]interface{}) (Claims, error) {
	var c Claims

	sub, ok := toInt64(raw["sub_id"])
	if !ok {
		return c, ErrMissingClaim
	}
	role, ok := raw["role"].(string)
	if !ok {
		return c, ErrMissingClaim
	}
	c.SubjectID = sub
	c.Role = auth.Role(role)
	c.Email, _ = raw["email"].(string)

	if id, ok := toInt64(raw["employee_id"]); ok {
		c.EmployeeID = &id
	}
	switch exp := raw["exp"].(type) {
	case time.Time:
		c.ExpiresAt = exp.Unix()
	default:
		c.ExpiresAt, _ = toInt64(exp)
	}
	return c, nil
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
