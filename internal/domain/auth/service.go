package auth

import (
	"context"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string, expiresAt int64) error
	CreateAdmin(ctx context.Context, req CreateAdminRequest) (UserResponse, error)
}
