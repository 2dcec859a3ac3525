package model

import "time"

// 考勤状态取值
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// Attendance 考勤记录表 — 对应 attendances
// (employee_id, date) 唯一，写入走 ON CONFLICT 原子 upsert
type Attendance struct {
	ID         uint      `gorm:"primaryKey"                                                      json:"id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:uq_attendances_employee_date,priority:1"    json:"employee_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendances_employee_date,priority:2" json:"date"`
	Status     string    `gorm:"type:varchar(10);not null"                                       json:"status"` // Present | Absent
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                              json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"                              json:"updated_at"`

	// 关联（员工删除时由外键 ON DELETE CASCADE 级联清理）
	Employee *Employee `gorm:"foreignKey:EmployeeID;references:ID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendances" }
