package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/yogesh-sai906/HRMS-Lite/internal/model"
	"github.com/yogesh-sai906/HRMS-Lite/internal/repository"
)

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees map[uint]*model.Employee
	nextID    uint
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{employees: make(map[uint]*model.Employee), nextID: 1}
}

func (m *mockEmployeeRepo) Create(_ context.Context, emp *model.Employee) error {
	// 真实存储由唯一约束兜底，mock 同样拒绝重复
	for _, e := range m.employees {
		if e.EmployeeID == emp.EmployeeID || e.Email == emp.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	emp.ID = m.nextID
	m.nextID++
	stored := *emp
	m.employees[emp.ID] = &stored
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id uint) (*model.Employee, error) {
	if e, ok := m.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == employeeID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) ExistsByEmployeeIDOrEmail(_ context.Context, employeeID, email string) (bool, error) {
	for _, e := range m.employees {
		if e.EmployeeID == employeeID || e.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	result := make([]model.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id uint) error {
	delete(m.employees, id)
	return nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records map[string]*model.Attendance // key: "employeeID|date"
	emps    *mockEmployeeRepo            // 联表查询用
	nextID  uint
}

func newMockAttendanceRepo(emps *mockEmployeeRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{
		records: make(map[string]*model.Attendance),
		emps:    emps,
		nextID:  1,
	}
}

func attendanceKey(employeeID uint, date time.Time) string {
	return fmt.Sprintf("%d|%s", employeeID, date.Format("2006-01-02"))
}

func (m *mockAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID uint, date time.Time) (*model.Attendance, error) {
	if a, ok := m.records[attendanceKey(employeeID, date)]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Upsert(_ context.Context, att *model.Attendance) error {
	key := attendanceKey(att.EmployeeID, att.Date)
	if existing, ok := m.records[key]; ok {
		existing.Status = att.Status
		return nil
	}
	att.ID = m.nextID
	m.nextID++
	stored := *att
	m.records[key] = &stored
	return nil
}

func (m *mockAttendanceRepo) ListByEmployee(_ context.Context, employeeID uint) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, a := range m.records {
		if a.EmployeeID == employeeID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date.After(result[j].Date) })
	return result, nil
}

func (m *mockAttendanceRepo) ListPresentByDate(_ context.Context, date time.Time) ([]repository.PresentRow, error) {
	day := date.Format("2006-01-02")
	var result []repository.PresentRow
	for _, a := range m.records {
		if a.Date.Format("2006-01-02") != day || a.Status != model.StatusPresent {
			continue
		}
		emp, ok := m.emps.employees[a.EmployeeID]
		if !ok {
			continue
		}
		result = append(result, repository.PresentRow{
			EmployeeID: emp.EmployeeID,
			FullName:   emp.FullName,
			Department: emp.Department,
		})
	}
	return result, nil
}
