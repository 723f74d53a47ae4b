package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	auth.AccountRepository
	jwt.Service
	bcryptCost int
}

func NewAuthService(accountRepository auth.AccountRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		AccountRepository: accountRepository,
		Service:           jwtService,
		bcryptCost:        bcrypt.DefaultCost,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (a *AuthServiceImpl) issue(acc auth.Account) (auth.TokenResponse, error) {
	token, expiresAt, err := a.Service.GenerateAccessToken(acc.ID, acc.Email, acc.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        auth.NewUserResponse(acc),
	}, nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	acc, err := a.AccountRepository.GetByEmail(ctx, req.Role, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get account by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issue(acc)
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	acc, err := a.AccountRepository.CreateEmployee(ctx, req.Name, req.Email, hash, auth.DefaultDepartment, auth.DefaultDesignation)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	slog.Info("Employee registered", "employee_id", acc.ID)

	return a.issue(acc)
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string, expiresAt int64) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	a.Service.RevokeToken(token, expiresAt)
	return nil
}

// CreateAdmin implements auth.AuthService.
func (a *AuthServiceImpl) CreateAdmin(ctx context.Context, req auth.CreateAdminRequest) (auth.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.UserResponse{}, err
	}

	hash, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.UserResponse{}, err
	}

	acc, err := a.AccountRepository.CreateAdmin(ctx, req.Name, req.Email, hash)
	if err != nil {
		return auth.UserResponse{}, err
	}
	slog.Info("Admin created", "admin_id", acc.ID)

	return auth.NewUserResponse(acc), nil
}
