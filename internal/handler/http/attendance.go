package http

import (
	"net/http"
	"strconv"

	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/attendance"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/domain/auth"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/handler/http/response"
	"github.com/AmeerKhan0987/Integral-University-Attendance-System-main/internal/pkg/validator"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	MyStatus(w http.ResponseWriter, r *http.Request)
	MyCalendar(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	EmployeeCalendar(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// presenceRequest decodes a check-in/check-out body and binds it to the caller.
func (h *attendanceHandlerImpl) presenceRequest(w http.ResponseWriter, r *http.Request) (attendance.PresenceRequest, bool) {
	var req attendance.PresenceRequest
	if !decodeJSON(w, r, &req) {
		return req, false
	}

	if req.EmployeeID < 0 {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "employee_id", Message: "employee_id must be greater than 0"},
		})
		return req, false
	}

	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return req, false
	}
	if req.EmployeeID == 0 {
		req.EmployeeID = employeeID
	}
	if req.EmployeeID != employeeID {
		response.HandleError(w, auth.ErrForbidden)
		return req, false
	}
	return req, true
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	req, ok := h.presenceRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Check-in successful", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	req, ok := h.presenceRequest(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Check-out successful", result)
}

// MyHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MyStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Status(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// MyCalendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyCalendar(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	h.calendar(w, r, employeeID)
}

// EmployeeCalendar implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeCalendar(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}
	h.calendar(w, r, employeeID)
}

func (h *attendanceHandlerImpl) calendar(w http.ResponseWriter, r *http.Request, employeeID int64) {
	req := attendance.CalendarRequest{
		EmployeeID: employeeID,
		Month:      r.URL.Query().Get("month"),
	}

	result, err := h.attendanceService.Calendar(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.ListFilter{
		Date:      optionalQuery(r, "date"),
		StartDate: optionalQuery(r, "start_date"),
		EndDate:   optionalQuery(r, "end_date"),
		Page:      getIntQueryParam(r, "page", 1),
		Limit:     getIntQueryParam(r, "limit", 20),
	}
	if v := r.URL.Query().Get("employee_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.TodayLog(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}
