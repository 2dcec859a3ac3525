package dto

// ── 考勤模块 DTO ──

// MarkAttendanceRequest 打卡请求
// employee_id 为业务工号；date 为 YYYY-MM-DD；status 大小写不敏感
type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	Date       string `json:"date"        binding:"required,datetime=2006-01-02"`
	Status     string `json:"status"      binding:"required,max=10"`
}

// AttendanceRecordResponse 单条考勤记录（附带员工展示字段）
type AttendanceRecordResponse struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// PresentTodayResponse 今日在岗视图
type PresentTodayResponse struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}
