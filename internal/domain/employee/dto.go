package employee

import (
	"strings"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	ID          int64   `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Designation *string `json:"designation,omitempty" validate:"omitempty,min=1,max=100"`
	Department  *string `json:"department,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateProfileRequest) Validate() error {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.Name)
	trim(r.Designation)
	trim(r.Department)
	if r.Email != nil {
		*r.Email = strings.ToLower(strings.TrimSpace(*r.Email))
	}
	return validator.Struct(r)
}

// Empty reports whether the request changes nothing.
func (r UpdateProfileRequest) Empty() bool {
	return r.Name == nil && r.Email == nil && r.Designation == nil && r.Department == nil
}

type UpdateProfileImageRequest struct {
	ID          int64  `json:"-"`
	ImageBase64 string `json:"image_base64" validate:"required"`

	Image       []byte `json:"-"`
	ImageFormat string `json:"-"`
}

func (r *UpdateProfileImageRequest) Validate() error {
	if err := validator.Struct(r); err != nil {
		return err
	}
	raw, format, err := validator.DecodeBase64Image(r.ImageBase64)
	if err != nil {
		return validator.ValidationErrors{{Field: "image_base64", Message: err.Error()}}
	}
	r.Image = raw
	r.ImageFormat = format
	return nil
}

type EmployeeResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	Designation  string    `json:"designation"`
	ProfileImage *string   `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
}
