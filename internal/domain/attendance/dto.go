package attendance

import (
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
)

// PresenceRequest is the payload of both check-in and check-out.
type PresenceRequest struct {
	EmployeeID  int64  `json:"employee_id" validate:"gt=0"`
	ImageBase64 string `json:"image_base64" validate:"required"`

	Image       []byte `json:"-"`
	ImageFormat string `json:"-"`
}

// Validate checks the employee id and decodes the image so no side effect
// happens for malformed input.
func (r *PresenceRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := validator.Struct(r); err != nil {
		fieldErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		errs = append(errs, fieldErrs...)
	}

	if !validator.IsEmpty(r.ImageBase64) {
		raw, format, err := validator.DecodeBase64Image(r.ImageBase64)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "image_base64",
				Message: err.Error(),
			})
		} else {
			r.Image = raw
			r.ImageFormat = format
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckInResponse struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	Date           string    `json:"date"`
	Timestamp      time.Time `json:"timestamp"`
	ImageReference string    `json:"image_reference"`
	ImageURL       string    `json:"image_url,omitempty"`
}

type CheckOutResponse struct {
	ID             int64     `json:"id"`
	EmployeeID     int64     `json:"employee_id"`
	Date           string    `json:"date"`
	Timestamp      time.Time `json:"timestamp"`
	ImageReference string    `json:"image_reference"`
	ImageURL       string    `json:"image_url,omitempty"`
	WorkedHours    string    `json:"worked_hours"`
}

type AttendanceResponse struct {
	ID            int64      `json:"id"`
	EmployeeID    int64      `json:"employee_id"`
	EmployeeName  string     `json:"employee_name,omitempty"`
	Date          string     `json:"date"`
	CheckInTime   *time.Time `json:"check_in_time"`
	CheckOutTime  *time.Time `json:"check_out_time"`
	CheckInImage  *string    `json:"check_in_image"`
	CheckOutImage *string    `json:"check_out_image"`
	WorkedHours   *string    `json:"worked_hours"`
	Status        Status     `json:"status"`
}

type ListFilter struct {
	EmployeeID *int64  `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty" validate:"omitempty,isodate"`
	StartDate  *string `json:"start_date,omitempty" validate:"omitempty,isodate"`
	EndDate    *string `json:"end_date,omitempty" validate:"omitempty,isodate"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
}

func (f *ListFilter) Validate() error {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}

	if err := validator.Struct(f); err != nil {
		return err
	}

	if f.StartDate != nil && f.EndDate != nil && *f.StartDate > *f.EndDate {
		return validator.ValidationErrors{{
			Field:   "start_date",
			Message: "start_date must not be after end_date",
		}}
	}
	return nil
}

type ListAttendanceResponse struct {
	Items      []AttendanceResponse `json:"items"`
	TotalCount int64                `json:"total_count"`
	Page       int                  `json:"page"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
}

type CalendarRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"gt=0"`
	Month      string `json:"month" validate:"required,yearmonth"`
}

func (r *CalendarRequest) Validate() error {
	return validator.Struct(r)
}

type CalendarDay struct {
	Date         string     `json:"date"`
	Weekday      string     `json:"weekday"`
	Status       Status     `json:"status"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
	WorkedHours  *string    `json:"worked_hours,omitempty"`
	Holiday      *string    `json:"holiday,omitempty"`
}

type CalendarSummary struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	HalfDay int `json:"half_day"`
	Absent  int `json:"absent"`
}

type CalendarResponse struct {
	EmployeeID int64           `json:"employee_id"`
	Month      string          `json:"month"`
	Days       []CalendarDay   `json:"days"`
	Summary    CalendarSummary `json:"summary"`
}

type StatusResponse struct {
	EmployeeID   int64      `json:"employee_id"`
	Date         string     `json:"date"`
	State        DayState   `json:"state"`
	CanCheckIn   bool       `json:"can_check_in"`
	CanCheckOut  bool       `json:"can_check_out"`
	CheckInTime  *time.Time `json:"check_in_time,omitempty"`
	CheckOutTime *time.Time `json:"check_out_time,omitempty"`
}

// LiveEvent is published to the admin feed after a successful check-in or check-out.
type LiveEvent struct {
	Type       string    `json:"type"` // check_in or check_out
	EmployeeID int64     `json:"employee_id"`
	RecordID   int64     `json:"record_id"`
	Timestamp  time.Time `json:"timestamp"`
}
