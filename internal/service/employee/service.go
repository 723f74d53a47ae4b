package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/employee"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/jwt"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	fileService  file.FileService
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, fileService file.FileService) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		fileService:  fileService,
	}
}

// authorize lets admins reach every profile and employees only their own.
func authorize(ctx context.Context, id int64) error {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}
	switch claims.Role {
	case auth.RoleAdmin:
		return nil
	case auth.RoleEmployee:
		if claims.EmployeeID != nil && *claims.EmployeeID == id {
			return nil
		}
	}
	return auth.ErrForbidden
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, s.toResponse(ctx, e))
	}
	return out, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	if err := authorize(ctx, id); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.toResponse(ctx, e), nil
}

// UpdateProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfile(ctx context.Context, req employee.UpdateProfileRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := authorize(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if req.Empty() {
		return employee.EmployeeResponse{}, employee.ErrNothingToUpdate
	}

	if err := s.employeeRepo.Update(ctx, req.ID, req); err != nil {
		return employee.EmployeeResponse{}, err
	}
	return s.Get(ctx, req.ID)
}

// UpdateProfileImage implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateProfileImage(ctx context.Context, req employee.UpdateProfileImageRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := authorize(ctx, req.ID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	ref, err := s.fileService.UploadAvatar(ctx, req.ID, req.Image, req.ImageFormat)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to upload avatar: %w", err)
	}

	if err := s.employeeRepo.UpdateProfileImage(ctx, req.ID, ref); err != nil {
		if delErr := s.fileService.DeleteFile(ctx, ref); delErr != nil {
			slog.Error("Failed to remove unused avatar", "employee_id", req.ID, "image", ref, "error", delErr)
		}
		return employee.EmployeeResponse{}, err
	}

	if current.ProfileImage != nil {
		if err := s.fileService.DeleteFile(ctx, *current.ProfileImage); err != nil {
			slog.Warn("Failed to remove previous avatar", "employee_id", req.ID, "image", *current.ProfileImage, "error", err)
		}
	}

	return s.Get(ctx, req.ID)
}

func (s *EmployeeServiceImpl) toResponse(ctx context.Context, e employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Designation: e.Designation,
		CreatedAt:   e.CreatedAt,
	}
	if e.ProfileImage != nil {
		u, err := s.fileService.GetFileURL(ctx, *e.ProfileImage)
		if err != nil {
			slog.Warn("Failed to resolve avatar URL", "employee_id", e.ID, "error", err)
			u = *e.ProfileImage
		}
		resp.ProfileImage = &u
	}
	return resp
}
