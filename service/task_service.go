package service

import (
	"context"
	"fmt"
	"strings"

	"dealerdesk/models"
)

// TaskService serves task sheets and task rows with server-side search,
// so the mobile list only renders what matches.
type TaskService struct {
	source TaskSourceInterface
}

// NewTaskService creates a new TaskService
func NewTaskService(source TaskSourceInterface) *TaskService {
	return &TaskService{source: source}
}

// SheetsForUser returns the task sheets assigned to a user, optionally
// filtered by display name.
func (s *TaskService) SheetsForUser(ctx context.Context, userID, search string) ([]models.TaskSheet, error) {
	sheets, err := s.source.ListTaskSheets(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list task sheets: %w", err)
	}
	if search == "" {
		return sheets, nil
	}

	needle := strings.ToLower(search)
	filtered := make([]models.TaskSheet, 0, len(sheets))
	for _, sheet := range sheets {
		if strings.Contains(strings.ToLower(sheet.MainSheetName), needle) {
			filtered = append(filtered, sheet)
		}
	}
	return filtered, nil
}

// TasksForSheet returns the rows of one task sheet, optionally filtered by
// a case-insensitive substring match over every cell value.
func (s *TaskService) TasksForSheet(ctx context.Context, sheetName, search string) ([]models.TaskRow, error) {
	tasks, err := s.source.FetchTasks(ctx, sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return FilterTasks(tasks, search), nil
}

// FilterTasks keeps the rows where any cell contains the search text
// (case-insensitive). An empty search keeps everything.
func FilterTasks(tasks []models.TaskRow, search string) []models.TaskRow {
	if search == "" {
		return tasks
	}
	needle := strings.ToLower(search)
	filtered := make([]models.TaskRow, 0, len(tasks))
	for _, task := range tasks {
		for _, value := range task {
			if strings.Contains(strings.ToLower(value), needle) {
				filtered = append(filtered, task)
				break
			}
		}
	}
	return filtered
}
