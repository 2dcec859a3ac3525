package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yogesh-sai906/HRMS-Lite/internal/dto"
	"github.com/yogesh-sai906/HRMS-Lite/internal/model"
	"github.com/yogesh-sai906/HRMS-Lite/internal/repository"
	"github.com/yogesh-sai906/HRMS-Lite/pkg/database"
)

// ── 员工模块业务错误（错误文案即对外响应文案）──

var (
	ErrEmployeeExists   = errors.New("Employee already exists")
	ErrEmployeeNotFound = errors.New("Employee not found")
)

// EmployeeService 员工业务接口
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	// Delete 按代理主键硬删除；关联考勤记录由外键级联清理
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService 创建 EmployeeService 实例
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	// 合并唯一性检查：工号或邮箱任一重复即冲突
	exists, err := s.repo.Employee.ExistsByEmployeeIDOrEmail(ctx, req.EmployeeID, req.Email)
	if err != nil {
		s.logger.Error("查询员工是否存在失败", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrEmployeeExists
	}

	emp := &model.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := s.repo.Employee.Create(ctx, emp); err != nil {
		// 并发创建竞争下存在性检查可能漏判，唯一约束冲突同样视为已存在
		if database.IsUniqueViolation(err) {
			return nil, ErrEmployeeExists
		}
		s.logger.Error("创建员工失败", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return nil, err
	}

	return toEmployeeResponse(emp), nil
}

// ────────────────────── List ──────────────────────

func (s *employeeService) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	emps, err := s.repo.Employee.List(ctx)
	if err != nil {
		s.logger.Error("列出员工失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.EmployeeResponse, 0, len(emps))
	for i := range emps {
		result = append(result, *toEmployeeResponse(&emps[i]))
	}

	return result, nil
}

// ────────────────────── Delete ──────────────────────

func (s *employeeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Employee.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Employee.Delete(ctx, id); err != nil {
		s.logger.Error("删除员工失败", zap.Uint("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Count ──────────────────────

func (s *employeeService) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Employee.Count(ctx)
	if err != nil {
		s.logger.Error("统计员工数失败", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// ── 内部辅助方法 ──

func toEmployeeResponse(emp *model.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:         emp.ID,
		EmployeeID: emp.EmployeeID,
		FullName:   emp.FullName,
		Email:      emp.Email,
		Department: emp.Department,
	}
}
