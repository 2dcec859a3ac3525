package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yogesh-sai906/HRMS-Lite/internal/dto"
	"github.com/yogesh-sai906/HRMS-Lite/internal/model"
	"github.com/yogesh-sai906/HRMS-Lite/internal/repository"
)

const dateLayout = "2006-01-02"

// 打卡结果提示文案
const (
	MessageAttendanceMarked  = "Attendance marked"
	MessageAttendanceUpdated = "Attendance updated"
)

// ── 考勤模块业务错误（错误文案即对外响应文案）──

var (
	ErrInvalidStatus = errors.New("Status must be Present or Absent")
	ErrInvalidDate   = errors.New("Date must be in YYYY-MM-DD format")
)

// AttendanceService 考勤业务接口
type AttendanceService interface {
	// Mark 打卡：每人每天至多一条记录，重复打卡原地覆盖状态
	// 返回提示文案（新记录 "Attendance marked"，覆盖 "Attendance updated"）
	Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (string, error)
	// GetForEmployee 按业务工号查询考勤历史，日期倒序
	GetForEmployee(ctx context.Context, employeeID string) ([]dto.AttendanceRecordResponse, error)
	// GetTodayPresent 今日（服务器本地时区）状态为 Present 的员工去重视图
	GetTodayPresent(ctx context.Context) ([]dto.PresentTodayResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time // 可注入时钟，测试用
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger, now: time.Now}
}

// ────────────────────── Mark ──────────────────────

func (s *attendanceService) Mark(ctx context.Context, req *dto.MarkAttendanceRequest) (string, error) {
	// 1. 按业务工号解析员工
	emp, err := s.repo.Employee.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return "", err
	}

	// 2. 归一化并校验状态
	status := normalizeStatus(req.Status)
	if status != model.StatusPresent && status != model.StatusAbsent {
		return "", ErrInvalidStatus
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return "", ErrInvalidDate
	}

	// 3. 预读仅用于区分提示文案；行数不变量由唯一约束 + 原子 upsert 保证
	message := MessageAttendanceMarked
	existing, err := s.repo.Attendance.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询考勤记录失败", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return "", err
	}
	if existing != nil {
		message = MessageAttendanceUpdated
	}

	att := &model.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		Status:     status,
	}
	if err := s.repo.Attendance.Upsert(ctx, att); err != nil {
		s.logger.Error("写入考勤记录失败",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return "", err
	}

	return message, nil
}

// ────────────────────── GetForEmployee ──────────────────────

func (s *attendanceService) GetForEmployee(ctx context.Context, employeeID string) ([]dto.AttendanceRecordResponse, error) {
	emp, err := s.repo.Employee.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	atts, err := s.repo.Attendance.ListByEmployee(ctx, emp.ID)
	if err != nil {
		s.logger.Error("查询考勤历史失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceRecordResponse, 0, len(atts))
	for i := range atts {
		result = append(result, dto.AttendanceRecordResponse{
			ID:         atts[i].ID,
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Date:       atts[i].Date.Format(dateLayout),
			Status:     atts[i].Status,
		})
	}

	return result, nil
}

// ────────────────────── GetTodayPresent ──────────────────────

func (s *attendanceService) GetTodayPresent(ctx context.Context) ([]dto.PresentTodayResponse, error) {
	// "今日"取服务器本地时区
	today := s.now()

	rows, err := s.repo.Attendance.ListPresentByDate(ctx, today)
	if err != nil {
		s.logger.Error("查询今日在岗失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PresentTodayResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, dto.PresentTodayResponse{
			EmployeeID: r.EmployeeID,
			FullName:   r.FullName,
			Department: r.Department,
		})
	}

	return result, nil
}

// ── 内部辅助方法 ──

// normalizeStatus 首字母大写、其余小写（"PRESENT"/"present"/"pResent" → "Present"）
func normalizeStatus(raw string) string {
	if raw == "" {
		return ""
	}
	r := []rune(raw)
	return strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
}
