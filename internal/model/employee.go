package model

import "time"

// Employee 员工表 — 对应 employees
// ID 为系统代理主键，EmployeeID 为业务工号，两者与 Email 均唯一
type Employee struct {
	ID         uint      `gorm:"primaryKey"                             json:"id"`
	EmployeeID string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_employees_employee_id"  json:"employee_id"`
	FullName   string    `gorm:"type:varchar(200);not null"             json:"full_name"`
	Email      string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_employees_email" json:"email"`
	Department string    `gorm:"type:varchar(100);not null"             json:"department"`
	CreatedAt  time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"     json:"created_at"`
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }
