package handler

import "github.com/yogesh-sai906/HRMS-Lite/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Employee:   NewEmployeeHandler(svc.Employee),
		Attendance: NewAttendanceHandler(svc.Attendance),
	}
}
