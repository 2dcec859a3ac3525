package service

import (
	"go.uber.org/zap"

	"github.com/yogesh-sai906/HRMS-Lite/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Employee   EmployeeService
	Attendance AttendanceService
}

// NewService 创建 Service 聚合
func NewService(repo *repository.Repository, logger *zap.Logger) *Service {
	return &Service{
		Employee:   NewEmployeeService(repo, logger),
		Attendance: NewAttendanceService(repo, logger),
	}
}
