package attendance

import (
	"fmt"
	"time"
)

// Attendance is one employee's record for one calendar day. It is created by
// check-in and updated exactly once more by check-out.
type Attendance struct {
	ID            int64
	EmployeeID    int64
	EmployeeName  string // populated by joined reads only
	Date          time.Time
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	CheckInImage  *string
	CheckOutImage *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// DayState is the position of a (employee, date) pair in the check-in/check-out lifecycle.
type DayState string

const (
	StateNoRecord  DayState = "NoRecord"
	StateCheckedIn DayState = "CheckedIn"
	StateComplete  DayState = "Complete"
)

// Status is the daily classification shown by history and calendar views.
type Status string

const (
	StatusPresent  Status = "Present"
	StatusLate     Status = "Late"
	StatusHalfDay  Status = "HalfDay"
	StatusAbsent   Status = "Absent"
	StatusNoRecord Status = "NoRecord"
)

// State reports the lifecycle position of a (possibly nil) record.
func (a *Attendance) State() DayState {
	switch {
	case a == nil || a.CheckInTime == nil:
		return StateNoRecord
	case a.CheckOutTime == nil:
		return StateCheckedIn
	default:
		return StateComplete
	}
}

// WorkedDuration is check-out minus check-in; ok is false while the record is open.
func (a *Attendance) WorkedDuration() (d time.Duration, ok bool) {
	if a == nil || a.CheckInTime == nil || a.CheckOutTime == nil {
		return 0, false
	}
	d = a.CheckOutTime.Sub(*a.CheckInTime)
	if d < 0 {
		d = 0
	}
	return d, true
}

// WorkedHours formats the worked duration as "Xh Ym"; nil while check-out is unset.
func (a *Attendance) WorkedHours() *string {
	d, ok := a.WorkedDuration()
	if !ok {
		return nil
	}
	s := FormatDuration(d)
	return &s
}

// FormatDuration renders whole hours and minutes, truncating seconds.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Policy holds the rules used to stamp and classify records.
type Policy struct {
	Location      *time.Location
	LateThreshold time.Duration     // offset from local midnight; check-in at or before it is on time
	Holidays      map[string]string // YYYY-MM-DD -> name
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Holiday returns the holiday name for day, if any.
func (p Policy) Holiday(day time.Time) (string, bool) {
	name, ok := p.Holidays[day.Format("2006-01-02")]
	return name, ok
}

// Classify derives the status of day for a record that may be nil. today is
// the current calendar date in the policy location.
func (p Policy) Classify(rec *Attendance, day, today time.Time) Status {
	if rec == nil || rec.CheckInTime == nil {
		if sameOrAfter(day, today) {
			return StatusNoRecord
		}
		return StatusAbsent
	}
	if rec.CheckOutTime == nil {
		return StatusHalfDay
	}
	if p.sinceMidnight(*rec.CheckInTime) > p.LateThreshold {
		return StatusLate
	}
	return StatusPresent
}

func (p Policy) sinceMidnight(t time.Time) time.Duration {
	local := t.In(p.location())
	return time.Duration(local.Hour())*time.Hour +
		time.Duration(local.Minute())*time.Minute +
		time.Duration(local.Second())*time.Second +
		time.Duration(local.Nanosecond())
}

func sameOrAfter(day, today time.Time) bool {
	dy, dm, dd := day.Date()
	ty, tm, td := today.Date()
	if dy != ty {
		return dy > ty
	}
	if dm != tm {
		return dm > tm
	}
	return dd >= td
}
