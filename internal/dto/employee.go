package dto

// ── 员工模块 DTO ──

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,max=50"`
	FullName   string `json:"full_name"   binding:"required,max=200"`
	Email      string `json:"email"       binding:"required,email,max=255"`
	Department string `json:"department"  binding:"required,max=100"`
}

// EmployeeResponse 员工响应（含系统分配的代理主键）
type EmployeeResponse struct {
	ID         uint   `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// EmployeeCountResponse 员工总数响应
type EmployeeCountResponse struct {
	TotalUsers int64 `json:"total_users"`
}
