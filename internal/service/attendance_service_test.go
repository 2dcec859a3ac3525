package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/yogesh-sai906/HRMS-Lite/internal/dto"
	"github.com/yogesh-sai906/HRMS-Lite/internal/model"
	"github.com/yogesh-sai906/HRMS-Lite/internal/repository"
)

// ── 测试辅助 ──

func setupTestAttendanceService(t *testing.T) (*attendanceService, EmployeeService, *mockAttendanceRepo) {
	t.Helper()
	empRepo := newMockEmployeeRepo()
	attRepo := newMockAttendanceRepo(empRepo)
	repo := &repository.Repository{Employee: empRepo, Attendance: attRepo}
	logger := zap.NewNop()
	attSvc := NewAttendanceService(repo, logger).(*attendanceService)
	empSvc := NewEmployeeService(repo, logger)
	return attSvc, empSvc, attRepo
}

// ── Mark 测试 ──

func TestAttendanceService_Mark_UnknownEmployee(t *testing.T) {
	attSvc, _, _ := setupTestAttendanceService(t)

	_, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		EmployeeID: "nobody",
		Date:       "2024-01-01",
		Status:     "present",
	})
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestAttendanceService_Mark_StatusNormalization(t *testing.T) {
	// 首字母大写，其余小写
	cases := []string{"present", "Present", "PRESENT", "pResent"}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			attSvc, empSvc, attRepo := setupTestAttendanceService(t)
			createTestEmployee(t, empSvc, "E1", "a@x.com")

			message, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
				EmployeeID: "E1",
				Date:       "2024-01-01",
				Status:     raw,
			})
			if err != nil {
				t.Fatalf("Mark 应成功: %v", err)
			}
			if message != MessageAttendanceMarked {
				t.Errorf("期望消息=%q，实际=%q", MessageAttendanceMarked, message)
			}

			date, _ := time.Parse("2006-01-02", "2024-01-01")
			stored, err := attRepo.GetByEmployeeAndDate(context.Background(), 1, date)
			if err != nil {
				t.Fatalf("查询考勤记录应成功: %v", err)
			}
			if stored.Status != model.StatusPresent {
				t.Errorf("期望存储状态=Present，实际=%s", stored.Status)
			}
		})
	}
}

func TestAttendanceService_Mark_InvalidStatus(t *testing.T) {
	attSvc, empSvc, _ := setupTestAttendanceService(t)
	createTestEmployee(t, empSvc, "E1", "a@x.com")

	_, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     "late",
	})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("期望 ErrInvalidStatus，实际: %v", err)
	}
}

func TestAttendanceService_Mark_UpsertOverwrites(t *testing.T) {
	attSvc, empSvc, attRepo := setupTestAttendanceService(t)
	createTestEmployee(t, empSvc, "E1", "a@x.com")

	message, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     "Present",
	})
	if err != nil {
		t.Fatalf("首次打卡应成功: %v", err)
	}
	if message != MessageAttendanceMarked {
		t.Errorf("首次打卡期望消息=%q，实际=%q", MessageAttendanceMarked, message)
	}

	message, err = attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     "Absent",
	})
	if err != nil {
		t.Fatalf("重复打卡应成功: %v", err)
	}
	if message != MessageAttendanceUpdated {
		t.Errorf("重复打卡期望消息=%q，实际=%q", MessageAttendanceUpdated, message)
	}

	// (员工, 日期) 仍只有一条记录，状态被原地覆盖
	if len(attRepo.records) != 1 {
		t.Fatalf("期望仅1条考勤记录，实际=%d", len(attRepo.records))
	}
	date, _ := time.Parse("2006-01-02", "2024-01-01")
	stored, _ := attRepo.GetByEmployeeAndDate(context.Background(), 1, date)
	if stored.Status != model.StatusAbsent {
		t.Errorf("期望最终状态=Absent，实际=%s", stored.Status)
	}
}

// ── GetForEmployee 测试 ──

func TestAttendanceService_GetForEmployee_UnknownEmployee(t *testing.T) {
	attSvc, _, _ := setupTestAttendanceService(t)

	_, err := attSvc.GetForEmployee(context.Background(), "nobody")
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Errorf("期望 ErrEmployeeNotFound，实际: %v", err)
	}
}

func TestAttendanceService_GetForEmployee_SortedDateDesc(t *testing.T) {
	attSvc, empSvc, _ := setupTestAttendanceService(t)
	createTestEmployee(t, empSvc, "E1", "a@x.com")

	for _, day := range []string{"2024-01-02", "2024-01-01", "2024-01-03"} {
		if _, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
			EmployeeID: "E1",
			Date:       day,
			Status:     "Present",
		}); err != nil {
			t.Fatalf("打卡应成功: %v", err)
		}
	}

	records, err := attSvc.GetForEmployee(context.Background(), "E1")
	if err != nil {
		t.Fatalf("GetForEmployee 应成功: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("期望3条记录，实际=%d", len(records))
	}

	expected := []string{"2024-01-03", "2024-01-02", "2024-01-01"}
	for i, want := range expected {
		if records[i].Date != want {
			t.Errorf("第%d条期望日期=%s，实际=%s", i, want, records[i].Date)
		}
		if records[i].FullName != "Ann" || records[i].EmployeeID != "E1" {
			t.Errorf("第%d条应附带员工展示字段，实际=%+v", i, records[i])
		}
	}
}

// ── GetTodayPresent 测试 ──

func TestAttendanceService_GetTodayPresent(t *testing.T) {
	attSvc, empSvc, _ := setupTestAttendanceService(t)
	createTestEmployee(t, empSvc, "E1", "a@x.com")

	// 固定时钟到 2024-01-01
	attSvc.now = func() time.Time {
		return time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)
	}

	if _, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
		EmployeeID: "E1",
		Date:       "2024-01-01",
		Status:     "present",
	}); err != nil {
		t.Fatalf("打卡应成功: %v", err)
	}

	result, err := attSvc.GetTodayPresent(context.Background())
	if err != nil {
		t.Fatalf("GetTodayPresent 应成功: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("期望1个在岗员工，实际=%d", len(result))
	}
	if result[0].EmployeeID != "E1" || result[0].FullName != "Ann" || result[0].Department != "Eng" {
		t.Errorf("期望 {E1, Ann, Eng}，实际=%+v", result[0])
	}
}

func TestAttendanceService_GetTodayPresent_ExcludesAbsentAndUnmarked(t *testing.T) {
	attSvc, empSvc, _ := setupTestAttendanceService(t)
	createTestEmployee(t, empSvc, "E1", "a@x.com") // 今日 Absent
	createTestEmployee(t, empSvc, "E2", "b@x.com") // 昨日 Present
	createTestEmployee(t, empSvc, "E3", "c@x.com") // 无记录

	attSvc.now = func() time.Time {
		return time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local)
	}

	marks := []struct{ employeeID, date, status string }{
		{"E1", "2024-01-02", "Absent"},
		{"E2", "2024-01-01", "Present"},
	}
	for _, mk := range marks {
		if _, err := attSvc.Mark(context.Background(), &dto.MarkAttendanceRequest{
			EmployeeID: mk.employeeID,
			Date:       mk.date,
			Status:     mk.status,
		}); err != nil {
			t.Fatalf("打卡应成功: %v", err)
		}
	}

	result, err := attSvc.GetTodayPresent(context.Background())
	if err != nil {
		t.Fatalf("GetTodayPresent 应成功: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("期望无在岗员工，实际=%+v", result)
	}
}

// ── normalizeStatus 测试 ──

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]string{
		"present": "Present",
		"PRESENT": "Present",
		"pResent": "Present",
		"absent":  "Absent",
		"ABSENT":  "Absent",
		"late":    "Late",
		"":        "",
	}
	for raw, want := range cases {
		if got := normalizeStatus(raw); got != want {
			t.Errorf("normalizeStatus(%q)=%q，期望=%q", raw, got, want)
		}
	}
}
