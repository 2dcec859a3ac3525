package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/yogesh-sai906/HRMS-Lite/internal/model"
)

// EmployeeRepository 员工数据访问接口
type EmployeeRepository interface {
	Create(ctx context.Context, emp *model.Employee) error
	GetByID(ctx context.Context, id uint) (*model.Employee, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error)
	// ExistsByEmployeeIDOrEmail 合并存在性检查：工号或邮箱任一重复即视为已存在
	ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, error)
	List(ctx context.Context) ([]model.Employee, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

// employeeRepo EmployeeRepository 的 GORM 实现
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepo 创建 EmployeeRepository 实例
func NewEmployeeRepo(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) Create(ctx context.Context, emp *model.Employee) error {
	return r.db.WithContext(ctx).Create(emp).Error
}

func (r *employeeRepo) GetByID(ctx context.Context, id uint) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepo) ExistsByEmployeeIDOrEmail(ctx context.Context, employeeID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Where("employee_id = ? OR email = ?", employeeID, email).
		Count(&count).Error
	return count > 0, err
}

func (r *employeeRepo) List(ctx context.Context) ([]model.Employee, error) {
	var emps []model.Employee
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&emps).Error
	return emps, err
}

func (r *employeeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Delete(&model.Employee{}, id).Error
}

func (r *employeeRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Employee{}).
		Count(&count).Error
	return count, err
}
