package employee

import "context"

type EmployeeRepository interface {
	// List returns every employee ordered by name.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	// Update applies the non-nil fields of req. An unknown department yields
	// ErrDepartmentNotFound and a taken email ErrEmailExists.
	Update(ctx context.Context, id int64, req UpdateProfileRequest) error
	UpdateProfileImage(ctx context.Context, id int64, ref string) error
}
