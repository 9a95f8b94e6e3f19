package service

import (
	"context"
	"errors"
	"testing"

	"dealerdesk/models"
)

type fakeTaskSource struct {
	sheets []models.TaskSheet
	tasks  map[string][]models.TaskRow
	err    error
}

func (f *fakeTaskSource) ListTaskSheets(ctx context.Context, userID string) ([]models.TaskSheet, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sheets, nil
}

func (f *fakeTaskSource) FetchTasks(ctx context.Context, sheetName string) ([]models.TaskRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.tasks[sheetName], nil
}

var _ TaskSourceInterface = (*fakeTaskSource)(nil)

func TestSheetsForUser(t *testing.T) {
	source := &fakeTaskSource{
		sheets: []models.TaskSheet{
			{SheetName: "followups_ravi", MainSheetName: "Customer Followups"},
			{SheetName: "delivery_ravi", MainSheetName: "Pending Deliveries"},
		},
	}
	svc := NewTaskService(source)

	t.Run("no filter returns all", func(t *testing.T) {
		sheets, err := svc.SheetsForUser(context.Background(), "ravi", "")
		if err != nil {
			t.Fatalf("SheetsForUser failed: %v", err)
		}
		if len(sheets) != 2 {
			t.Errorf("got %d sheets, want 2", len(sheets))
		}
	})

	t.Run("filter matches display name case-insensitively", func(t *testing.T) {
		sheets, err := svc.SheetsForUser(context.Background(), "ravi", "delivery")
		if err != nil {
			t.Fatalf("SheetsForUser failed: %v", err)
		}
		if len(sheets) != 1 || sheets[0].SheetName != "delivery_ravi" {
			t.Errorf("got %+v", sheets)
		}
	})

	t.Run("source error propagates", func(t *testing.T) {
		svc := NewTaskService(&fakeTaskSource{err: errors.New("boom")})
		if _, err := svc.SheetsForUser(context.Background(), "ravi", ""); err == nil {
			t.Error("expected error from source")
		}
	})
}

func TestFilterTasks(t *testing.T) {
	tasks := []models.TaskRow{
		{"Customer": "Amit Kumar", "Status": "Pending", "Model": "Nexon"},
		{"Customer": "Priya Singh", "Status": "Done", "Model": "Punch"},
		{"Customer": "Rahul Verma", "Status": "Pending", "Model": "Harrier"},
	}

	t.Run("empty search keeps everything", func(t *testing.T) {
		if got := FilterTasks(tasks, ""); len(got) != 3 {
			t.Errorf("got %d rows, want 3", len(got))
		}
	})

	t.Run("matches any cell case-insensitively", func(t *testing.T) {
		got := FilterTasks(tasks, "pending")
		if len(got) != 2 {
			t.Fatalf("got %d rows, want 2", len(got))
		}
	})

	t.Run("matches customer name", func(t *testing.T) {
		got := FilterTasks(tasks, "priya")
		if len(got) != 1 || got[0]["Model"] != "Punch" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		if got := FilterTasks(tasks, "safari"); len(got) != 0 {
			t.Errorf("got %d rows, want 0", len(got))
		}
	})
}

func TestTasksForSheetAppliesSearch(t *testing.T) {
	source := &fakeTaskSource{
		tasks: map[string][]models.TaskRow{
			"followups_ravi": {
				{"Customer": "Amit", "Status": "Pending"},
				{"Customer": "Priya", "Status": "Done"},
			},
		},
	}
	svc := NewTaskService(source)

	got, err := svc.TasksForSheet(context.Background(), "followups_ravi", "done")
	if err != nil {
		t.Fatalf("TasksForSheet failed: %v", err)
	}
	if len(got) != 1 || got[0]["Customer"] != "Priya" {
		t.Errorf("got %+v", got)
	}
}
