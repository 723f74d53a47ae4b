package leave

import "context"

type LeaveService interface {
	Apply(ctx context.Context, req ApplyRequest) (LeaveResponse, error)
	ListAll(ctx context.Context) ([]LeaveResponse, error)
	ListMine(ctx context.Context, employeeID int64) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (LeaveResponse, error)
}
