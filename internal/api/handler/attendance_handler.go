package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yogesh-sai906/HRMS-Lite/internal/dto"
	"github.com/yogesh-sai906/HRMS-Lite/internal/service"
	"github.com/yogesh-sai906/HRMS-Lite/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc}
}

// MarkAttendance 打卡
// POST /attendance
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	message, err := h.attSvc.Mark(c.Request.Context(), &req)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.Message(c, message)
}

// GetAttendance 查询某员工的考勤历史（按业务工号，日期倒序）
// GET /attendance/:employee_id
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	employeeID := c.Param("employee_id")
	if employeeID == "" {
		response.BadRequest(c, "Employee id is required")
		return
	}

	records, err := h.attSvc.GetForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, records)
}

// GetTodayPresent 查询今日在岗员工
// GET /attendance/today/present
func (h *AttendanceHandler) GetTodayPresent(c *gin.Context) {
	result, err := h.attSvc.GetTodayPresent(c.Request.Context())
	if err != nil {
		h.handleAttendanceError(c, err)
		return
	}

	response.OK(c, result)
}

// handleAttendanceError 统一处理考勤模块业务错误
func (h *AttendanceHandler) handleAttendanceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidDate):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c)
	}
}
