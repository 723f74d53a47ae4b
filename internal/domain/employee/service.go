package employee

import "context"

// EmployeeService defines business logic for employee profiles
type EmployeeService interface {
	// List returns all employees (admin only)
	List(ctx context.Context) ([]EmployeeResponse, error)

	// Get returns one profile
	Get(ctx context.Context, id int64) (EmployeeResponse, error)

	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (EmployeeResponse, error)

	// UpdateProfileImage stores a new avatar and points the profile at it
	UpdateProfileImage(ctx context.Context, req UpdateProfileImageRequest) (EmployeeResponse, error)
}
