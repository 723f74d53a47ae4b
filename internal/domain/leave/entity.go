package leave

import "time"

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Leave is an employee's request to be away for an inclusive range of days.
type Leave struct {
	ID           int64
	EmployeeID   int64
	EmployeeName string // populated by joined reads only
	Reason       string
	DateFrom     time.Time
	DateTo       time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
