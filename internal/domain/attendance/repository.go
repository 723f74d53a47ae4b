package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetByEmployeeAndDate returns nil, nil when the employee has no record on date.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// Create inserts a checked-in record and sets its ID. A second record for
	// the same (employee, date) yields ErrDuplicateCheckIn.
	Create(ctx context.Context, a *Attendance) error

	// CompleteCheckOut sets the check-out fields only while they are unset.
	// It reports false when the record was already checked out.
	CompleteCheckOut(ctx context.Context, id int64, at time.Time, image string) (bool, error)

	ListByEmployee(ctx context.Context, employeeID int64) ([]Attendance, error)
	ListByEmployeeBetween(ctx context.Context, employeeID int64, from, to time.Time) ([]Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, int64, error)
}
