package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{LeaveRepository: leaveRepo}
}

// Apply implements leave.LeaveService.
func (s *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	// Validate guarantees both dates parse
	from, _ := time.Parse("2006-01-02", req.DateFrom)
	to, _ := time.Parse("2006-01-02", req.DateTo)

	l := &leave.Leave{
		EmployeeID: req.EmployeeID,
		Reason:     req.Reason,
		DateFrom:   from,
		DateTo:     to,
		Status:     leave.StatusPending,
	}
	if err := s.LeaveRepository.Create(ctx, l); err != nil {
		return leave.LeaveResponse{}, err
	}

	slog.Info("Leave requested", "leave_id", l.ID, "employee_id", l.EmployeeID)
	return leave.NewLeaveResponse(*l), nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// ListMine implements leave.LeaveService.
func (s *LeaveServiceImpl) ListMine(ctx context.Context, employeeID int64) ([]leave.LeaveResponse, error) {
	leaves, err := s.LeaveRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return toResponses(leaves), nil
}

// UpdateStatus implements leave.LeaveService.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	current, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if current.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	updated, err := s.LeaveRepository.UpdateStatusIfPending(ctx, req.ID, req.Status)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave status: %w", err)
	}
	if !updated {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	current.Status = req.Status
	slog.Info("Leave status updated", "leave_id", req.ID, "status", req.Status)
	return leave.NewLeaveResponse(current), nil
}

func toResponses(leaves []leave.Leave) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, leave.NewLeaveResponse(l))
	}
	return out
}
