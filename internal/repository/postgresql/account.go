package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accountRepositoryImpl struct {
	db *database.DB
}

func NewAccountRepository(db *database.DB) auth.AccountRepository {
	return &accountRepositoryImpl{db: db}
}

// GetByEmail implements auth.AccountRepository.
func (r *accountRepositoryImpl) GetByEmail(ctx context.Context, role auth.Role, email string) (auth.Account, error) {
	acc := auth.Account{Role: role}
	var row pgx.Row
	switch role {
	case auth.RoleAdmin:
		acc.Department, acc.Designation = auth.AdminDepartment, auth.AdminDesignation
		row = r.db.QueryRow(ctx, `
			SELECT id, name, email, password_hash, profile_image, created_at
			FROM admins
			WHERE email = $1
		`, email)
		err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.ProfileImage, &acc.CreatedAt)
		return acc, accountLookupError(role, err)
	case auth.RoleEmployee:
		row = r.db.QueryRow(ctx, `
			SELECT e.id, e.name, e.email, e.password_hash, COALESCE(d.name, $2), e.designation,
			       e.profile_image, e.created_at
			FROM employees e
			LEFT JOIN departments d ON d.id = e.department_id
			WHERE e.email = $1
		`, email, auth.DefaultDepartment)
		err := row.Scan(&acc.ID, &acc.Name, &acc.Email, &acc.PasswordHash, &acc.Department, &acc.Designation,
			&acc.ProfileImage, &acc.CreatedAt)
		return acc, accountLookupError(role, err)
	default:
		return auth.Account{}, auth.ErrAccountNotFound
	}
}

func accountLookupError(role auth.Role, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return auth.ErrAccountNotFound
	default:
		return fmt.Errorf("failed to get %s by email: %w", role, err)
	}
}

// CreateAdmin implements auth.AccountRepository.
func (r *accountRepositoryImpl) CreateAdmin(ctx context.Context, name, email, passwordHash string) (auth.Account, error) {
	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	acc := auth.Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         auth.RoleAdmin,
		Department:   auth.AdminDepartment,
		Designation:  auth.AdminDesignation,
	}
	if err := r.db.QueryRow(ctx, query, name, email, passwordHash).Scan(&acc.ID, &acc.CreatedAt); err != nil {
		if database.IsUniqueViolation(err, "") {
			return auth.Account{}, auth.ErrEmailExists
		}
		return auth.Account{}, fmt.Errorf("failed to create admin: %w", err)
	}
	return acc, nil
}

// CreateEmployee implements auth.AccountRepository.
func (r *accountRepositoryImpl) CreateEmployee(ctx context.Context, name, email, passwordHash, department, designation string) (auth.Account, error) {
	query := `
		INSERT INTO employees (name, email, password_hash, department_id, designation)
		VALUES ($1, $2, $3, (SELECT id FROM departments WHERE name = $4), $5)
		RETURNING id, created_at
	`

	acc := auth.Account{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         auth.RoleEmployee,
		Department:   department,
		Designation:  designation,
	}
	err := r.db.QueryRow(ctx, query, name, email, passwordHash, department, designation).Scan(&acc.ID, &acc.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "employees_email_key") {
			return auth.Account{}, auth.ErrEmailExists
		}
		return auth.Account{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return acc, nil
}
