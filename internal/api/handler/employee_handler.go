package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yogesh-sai906/HRMS-Lite/internal/dto"
	"github.com/yogesh-sai906/HRMS-Lite/internal/service"
	"github.com/yogesh-sai906/HRMS-Lite/pkg/response"
)

// EmployeeHandler 员工模块 HTTP 处理器
type EmployeeHandler struct {
	empSvc service.EmployeeService
}

// NewEmployeeHandler 创建 EmployeeHandler
func NewEmployeeHandler(empSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{empSvc: empSvc}
}

// AddEmployee 创建员工
// POST /employees
func (h *EmployeeHandler) AddEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	emp, err := h.empSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emp)
}

// ListEmployees 获取员工列表
// GET /employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	emps, err := h.empSvc.List(c.Request.Context())
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, emps)
}

// RemoveEmployee 删除员工（按代理主键）
// DELETE /employees/:id
func (h *EmployeeHandler) RemoveEmployee(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid employee id")
		return
	}

	if err := h.empSvc.Delete(c.Request.Context(), uint(id)); err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.Message(c, "Employee deleted successfully")
}

// GetEmployeeCounts 获取员工总数
// GET /employees/counts
func (h *EmployeeHandler) GetEmployeeCounts(c *gin.Context) {
	total, err := h.empSvc.Count(c.Request.Context())
	if err != nil {
		h.handleEmployeeError(c, err)
		return
	}

	response.OK(c, dto.EmployeeCountResponse{TotalUsers: total})
}

// handleEmployeeError 统一处理员工模块业务错误
func (h *EmployeeHandler) handleEmployeeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmployeeExists):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrEmployeeNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c)
	}
}
