package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, req PresenceRequest) (CheckInResponse, error)
	CheckOut(ctx context.Context, req PresenceRequest) (CheckOutResponse, error)

	History(ctx context.Context, employeeID int64) ([]AttendanceResponse, error)
	TodayLog(ctx context.Context) ([]AttendanceResponse, error)
	List(ctx context.Context, filter ListFilter) (ListAttendanceResponse, error)
	Calendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)
	Status(ctx context.Context, employeeID int64) (StatusResponse, error)
}
