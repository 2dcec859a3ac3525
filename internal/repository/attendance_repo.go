package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yogesh-sai906/HRMS-Lite/internal/model"
)

const dateLayout = "2006-01-02"

// PresentRow 今日在岗联表查询结果行
type PresentRow struct {
	EmployeeID string `gorm:"column:employee_id"`
	FullName   string `gorm:"column:full_name"`
	Department string `gorm:"column:department"`
}

// AttendanceRepository 考勤数据访问接口
type AttendanceRepository interface {
	GetByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*model.Attendance, error)
	// Upsert 原子写入：不存在则插入，(employee_id, date) 冲突时原地覆盖 status
	Upsert(ctx context.Context, att *model.Attendance) error
	// ListByEmployee 按日期倒序返回某员工的全部考勤记录
	ListByEmployee(ctx context.Context, employeeID uint) ([]model.Attendance, error)
	// ListPresentByDate 返回指定日期状态为 Present 的员工去重视图
	ListPresentByDate(ctx context.Context, date time.Time) ([]PresentRow, error)
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID uint, date time.Time) (*model.Attendance, error) {
	var att model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format(dateLayout)).
		First(&att).Error
	if err != nil {
		return nil, err
	}
	return &att, nil
}

func (r *attendanceRepo) Upsert(ctx context.Context, att *model.Attendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     att.Status,
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(att).Error
}

func (r *attendanceRepo) ListByEmployee(ctx context.Context, employeeID uint) ([]model.Attendance, error) {
	var atts []model.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date DESC").
		Find(&atts).Error
	return atts, err
}

func (r *attendanceRepo) ListPresentByDate(ctx context.Context, date time.Time) ([]PresentRow, error) {
	var rows []PresentRow
	err := r.db.WithContext(ctx).
		Model(&model.Attendance{}).
		Select("DISTINCT employees.employee_id, employees.full_name, employees.department").
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("attendances.date = ? AND attendances.status = ?", date.Format(dateLayout), model.StatusPresent).
		Scan(&rows).Error
	return rows, err
}
