package attendance

import "errors"

// Attendance domain errors
var (
	ErrDuplicateCheckIn    = errors.New("already checked in today")
	ErrDuplicateCheckOut   = errors.New("already checked out today")
	ErrNoCheckInFound      = errors.New("no check-in record found for today")
	ErrImagePersistFailure = errors.New("failed to save proof image")
	ErrRecordWriteFailure  = errors.New("failed to write attendance record")
	ErrUnknownEmployee     = errors.New("employee does not exist")
)
