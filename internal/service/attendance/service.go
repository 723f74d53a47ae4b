package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/attendance"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/clock"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/sse"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/service/file"
)

const dateLayout = "2006-01-02"

// Publisher is the live feed successful check-ins and check-outs are announced on.
type Publisher interface {
	Publish(topic string, event sse.Event)
}

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	fileService file.FileService
	publisher   Publisher
	clock       clock.Clock
	policy      attendance.Policy
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	fileService file.FileService,
	publisher Publisher,
	clk clock.Clock,
	policy attendance.Policy,
) attendance.AttendanceService {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		fileService:          fileService,
		publisher:            publisher,
		clock:                clk,
		policy:               policy,
	}
}

func (a *AttendanceServiceImpl) now() (time.Time, time.Time) {
	now := a.clock.Now().In(a.policy.Location)
	return now, clock.DateOf(now, a.policy.Location)
}

// CheckIn implements attendance.AttendanceService.
//
// Order: validate, reject a duplicate, persist the image, insert the row. The
// (employee_id, date) unique key settles races that pass the pre-check.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.PresenceRequest) (attendance.CheckInResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckInResponse{}, err
	}

	now, today := a.now()

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.CheckInResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.CheckInResponse{}, attendance.ErrDuplicateCheckIn
	}

	ref, err := a.fileService.UploadAttendanceProof(ctx, req.EmployeeID, file.ProofCheckIn, now, req.Image)
	if err != nil {
		slog.Error("Failed to persist check-in image", "employee_id", req.EmployeeID, "error", err)
		return attendance.CheckInResponse{}, fmt.Errorf("%w: %w", attendance.ErrImagePersistFailure, err)
	}

	record := &attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         today,
		CheckInTime:  &now,
		CheckInImage: &ref,
	}
	if err := a.AttendanceRepository.Create(ctx, record); err != nil {
		switch {
		case errors.Is(err, attendance.ErrDuplicateCheckIn):
			slog.Error("Concurrent check-in lost the race; proof image left orphaned",
				"employee_id", req.EmployeeID, "image", ref)
			return attendance.CheckInResponse{}, attendance.ErrDuplicateCheckIn
		case errors.Is(err, attendance.ErrUnknownEmployee):
			slog.Error("Orphaned proof image: employee does not exist",
				"employee_id", req.EmployeeID, "image", ref)
			return attendance.CheckInResponse{}, err
		default:
			slog.Error("Orphaned proof image: attendance insert failed",
				"employee_id", req.EmployeeID, "image", ref, "error", err)
			return attendance.CheckInResponse{}, fmt.Errorf("%w: %w", attendance.ErrRecordWriteFailure, err)
		}
	}

	a.publish("check_in", record.EmployeeID, record.ID, now)

	return attendance.CheckInResponse{
		ID:             record.ID,
		EmployeeID:     record.EmployeeID,
		Date:           today.Format(dateLayout),
		Timestamp:      now,
		ImageReference: ref,
		ImageURL:       a.url(ctx, ref),
	}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.PresenceRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	now, today := a.now()

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.CheckOutResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}
	if existing == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNoCheckInFound
	}
	if existing.CheckOutTime != nil {
		return attendance.CheckOutResponse{}, attendance.ErrDuplicateCheckOut
	}

	ref, err := a.fileService.UploadAttendanceProof(ctx, req.EmployeeID, file.ProofCheckOut, now, req.Image)
	if err != nil {
		slog.Error("Failed to persist check-out image", "employee_id", req.EmployeeID, "error", err)
		return attendance.CheckOutResponse{}, fmt.Errorf("%w: %w", attendance.ErrImagePersistFailure, err)
	}

	updated, err := a.AttendanceRepository.CompleteCheckOut(ctx, existing.ID, now, ref)
	if err != nil {
		slog.Error("Orphaned proof image: attendance update failed",
			"employee_id", req.EmployeeID, "attendance_id", existing.ID, "image", ref, "error", err)
		return attendance.CheckOutResponse{}, fmt.Errorf("%w: %w", attendance.ErrRecordWriteFailure, err)
	}
	if !updated {
		slog.Error("Concurrent check-out lost the race; proof image left orphaned",
			"employee_id", req.EmployeeID, "attendance_id", existing.ID, "image", ref)
		return attendance.CheckOutResponse{}, attendance.ErrDuplicateCheckOut
	}

	existing.CheckOutTime = &now
	existing.CheckOutImage = &ref
	a.publish("check_out", existing.EmployeeID, existing.ID, now)

	worked := ""
	if w := existing.WorkedHours(); w != nil {
		worked = *w
	}

	return attendance.CheckOutResponse{
		ID:             existing.ID,
		EmployeeID:     existing.EmployeeID,
		Date:           today.Format(dateLayout),
		Timestamp:      now,
		ImageReference: ref,
		ImageURL:       a.url(ctx, ref),
		WorkedHours:    worked,
	}, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID int64) ([]attendance.AttendanceResponse, error) {
	records, err := a.AttendanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance history: %w", err)
	}
	return a.mapAll(ctx, records), nil
}

// TodayLog implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) TodayLog(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	_, today := a.now()
	records, err := a.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendance: %w", err)
	}
	return a.mapAll(ctx, records), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, total, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	return attendance.ListAttendanceResponse{
		Items:      a.mapAll(ctx, records),
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
	}, nil
}

// Calendar implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Calendar(ctx context.Context, req attendance.CalendarRequest) (attendance.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CalendarResponse{}, err
	}

	month, err := time.ParseInLocation("2006-01", req.Month, a.policy.Location)
	if err != nil {
		return attendance.CalendarResponse{}, err
	}
	first := month
	last := first.AddDate(0, 1, -1)

	records, err := a.AttendanceRepository.ListByEmployeeBetween(ctx, req.EmployeeID, first, last)
	if err != nil {
		return attendance.CalendarResponse{}, fmt.Errorf("failed to list attendance for calendar: %w", err)
	}

	byDate := make(map[string]*attendance.Attendance, len(records))
	for i := range records {
		byDate[records[i].Date.Format(dateLayout)] = &records[i]
	}

	_, today := a.now()
	resp := attendance.CalendarResponse{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Days:       make([]attendance.CalendarDay, 0, last.Day()),
	}

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		key := day.Format(dateLayout)
		rec := byDate[key]
		status := a.policy.Classify(rec, day, today)

		cd := attendance.CalendarDay{
			Date:    key,
			Weekday: day.Weekday().String(),
			Status:  status,
		}
		if rec != nil {
			cd.CheckInTime = rec.CheckInTime
			cd.CheckOutTime = rec.CheckOutTime
			cd.WorkedHours = rec.WorkedHours()
		}
		if name, ok := a.policy.Holiday(day); ok {
			cd.Holiday = &name
		}

		switch status {
		case attendance.StatusPresent:
			resp.Summary.Present++
		case attendance.StatusLate:
			resp.Summary.Late++
		case attendance.StatusHalfDay:
			resp.Summary.HalfDay++
		case attendance.StatusAbsent:
			resp.Summary.Absent++
		}
		resp.Days = append(resp.Days, cd)
	}

	return resp, nil
}

// Status implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Status(ctx context.Context, employeeID int64) (attendance.StatusResponse, error) {
	_, today := a.now()
	rec, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		return attendance.StatusResponse{}, fmt.Errorf("failed to look up today's attendance: %w", err)
	}

	state := rec.State()
	resp := attendance.StatusResponse{
		EmployeeID:  employeeID,
		Date:        today.Format(dateLayout),
		State:       state,
		CanCheckIn:  state == attendance.StateNoRecord,
		CanCheckOut: state == attendance.StateCheckedIn,
	}
	if rec != nil {
		resp.CheckInTime = rec.CheckInTime
		resp.CheckOutTime = rec.CheckOutTime
	}
	return resp, nil
}

func (a *AttendanceServiceImpl) mapAll(ctx context.Context, records []attendance.Attendance) []attendance.AttendanceResponse {
	_, today := a.now()
	out := make([]attendance.AttendanceResponse, 0, len(records))
	for i := range records {
		out = append(out, a.mapAttendanceToResponse(ctx, &records[i], today))
	}
	return out
}

func (a *AttendanceServiceImpl) mapAttendanceToResponse(ctx context.Context, rec *attendance.Attendance, today time.Time) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:            rec.ID,
		EmployeeID:    rec.EmployeeID,
		EmployeeName:  rec.EmployeeName,
		Date:          rec.Date.Format(dateLayout),
		CheckInTime:   rec.CheckInTime,
		CheckOutTime:  rec.CheckOutTime,
		CheckInImage:  a.urlPtr(ctx, rec.CheckInImage),
		CheckOutImage: a.urlPtr(ctx, rec.CheckOutImage),
		WorkedHours:   rec.WorkedHours(),
		Status:        a.policy.Classify(rec, rec.Date, today),
	}
}

func (a *AttendanceServiceImpl) url(ctx context.Context, ref string) string {
	u, err := a.fileService.GetFileURL(ctx, ref)
	if err != nil {
		slog.Warn("Failed to resolve image URL", "image", ref, "error", err)
		return ""
	}
	return u
}

func (a *AttendanceServiceImpl) urlPtr(ctx context.Context, ref *string) *string {
	if ref == nil {
		return nil
	}
	u := a.url(ctx, *ref)
	if u == "" {
		return ref
	}
	return &u
}

func (a *AttendanceServiceImpl) publish(kind string, employeeID, recordID int64, at time.Time) {
	if a.publisher == nil {
		return
	}
	a.publisher.Publish(sse.TopicAdmin, sse.Event{
		Event: "attendance",
		Data: attendance.LiveEvent{
			Type:       kind,
			EmployeeID: employeeID,
			RecordID:   recordID,
			Timestamp:  at,
		},
	})
}
