package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/attendance"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/employee"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/leave"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance lifecycle
	case errors.Is(err, attendance.ErrDuplicateCheckIn):
		Fail(w, http.StatusConflict, CodeDuplicateCheckIn, "Already checked in today", nil)
	case errors.Is(err, attendance.ErrDuplicateCheckOut):
		Fail(w, http.StatusConflict, CodeDuplicateCheckOut, "Already checked out today", nil)
	case errors.Is(err, attendance.ErrNoCheckInFound):
		Fail(w, http.StatusConflict, CodeNoCheckInFound, "No check-in found for today", nil)
	case errors.Is(err, attendance.ErrImagePersistFailure):
		slog.Error("Image persist failure", "error", err)
		Fail(w, http.StatusInternalServerError, CodeImagePersistFailure, "Failed to save proof image", nil)
	case errors.Is(err, attendance.ErrRecordWriteFailure):
		slog.Error("Record write failure", "error", err)
		Fail(w, http.StatusInternalServerError, CodeRecordWriteFailure, "Failed to save attendance record", nil)
	case errors.Is(err, attendance.ErrUnknownEmployee):
		NotFound(w, "Employee not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrForbidden), errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, auth.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrNothingToUpdate):
		BadRequest(w, "No profile fields to update", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
