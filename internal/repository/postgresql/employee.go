package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/employee"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

const employeeSelect = `
	SELECT e.id, e.name, e.email, e.department_id, COALESCE(d.name, ''), e.designation,
	       e.profile_image, e.created_at, e.updated_at
	FROM employees e
	LEFT JOIN departments d ON d.id = e.department_id`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.DepartmentID, &e.Department, &e.Designation,
		&e.ProfileImage, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.Query(ctx, employeeSelect+` ORDER BY e.name ASC, e.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []employee.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	e, err := scanEmployee(r.db.QueryRow(ctx, employeeSelect+` WHERE e.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateProfileRequest) error {
	updates := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Department != nil {
		var departmentID int64
		err := r.db.QueryRow(ctx, `SELECT id FROM departments WHERE name = $1`, *req.Department).Scan(&departmentID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrDepartmentNotFound
			}
			return fmt.Errorf("failed to look up department: %w", err)
		}
		updates = append(updates, fmt.Sprintf("department_id = $%d", argIdx))
		args = append(args, departmentID)
		argIdx++
	}
	if req.Name != nil {
		updates = append(updates, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		updates = append(updates, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Designation != nil {
		updates = append(updates, fmt.Sprintf("designation = $%d", argIdx))
		args = append(args, *req.Designation)
		argIdx++
	}

	if len(updates) == 0 {
		return employee.ErrNothingToUpdate
	}
	updates = append(updates, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE id = $%d`, strings.Join(updates, ", "), argIdx)
	args = append(args, id)

	commandTag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		if database.IsUniqueViolation(err, "employees_email_key") {
			return employee.ErrEmailExists
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// UpdateProfileImage implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) UpdateProfileImage(ctx context.Context, id int64, ref string) error {
	commandTag, err := r.db.Exec(ctx, `UPDATE employees SET profile_image = $1, updated_at = NOW() WHERE id = $2`, ref, id)
	if err != nil {
		return fmt.Errorf("failed to update profile image: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
