package leave

import (
	"strings"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"gt=0"`
	DateFrom   string `json:"date_from" validate:"required,isodate"`
	DateTo     string `json:"date_to" validate:"required,isodate"`
	Reason     string `json:"reason" validate:"required,max=1000"`
}

func (r *ApplyRequest) Validate() error {
	r.Reason = strings.TrimSpace(r.Reason)
	if err := validator.Struct(r); err != nil {
		return err
	}
	if r.DateFrom > r.DateTo {
		return validator.ValidationErrors{{
			Field:   "date_from",
			Message: "date_from must not be after date_to",
		}}
	}
	return nil
}

type UpdateStatusRequest struct {
	ID     int64  `json:"-" validate:"gt=0"`
	Status Status `json:"status" validate:"required,oneof=Approved Rejected"`
}

func (r *UpdateStatusRequest) Validate() error {
	return validator.Struct(r)
}

type LeaveResponse struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Reason       string    `json:"reason"`
	DateFrom     string    `json:"date_from"`
	DateTo       string    `json:"date_to"`
	Days         int       `json:"days"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmployeeID:   l.EmployeeID,
		EmployeeName: l.EmployeeName,
		Reason:       l.Reason,
		DateFrom:     l.DateFrom.Format("2006-01-02"),
		DateTo:       l.DateTo.Format("2006-01-02"),
		Days:         int(l.DateTo.Sub(l.DateFrom).Hours()/24) + 1,
		Status:       l.Status,
		CreatedAt:    l.CreatedAt,
	}
}
