package auth

import "context"

type AccountRepository interface {
	// GetByEmail returns ErrAccountNotFound when no account of role has the email.
	GetByEmail(ctx context.Context, role Role, email string) (Account, error)
	CreateAdmin(ctx context.Context, name, email, passwordHash string) (Account, error)
	// CreateEmployee places the new employee in the named department.
	CreateEmployee(ctx context.Context, name, email, passwordHash, department, designation string) (Account, error)
}
