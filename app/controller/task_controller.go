package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"dealerdesk/models"
	"dealerdesk/service"
)

// TaskController handles HTTP requests for the task-list viewer
type TaskController struct {
	taskService *service.TaskService
}

// NewTaskController creates a new TaskController
func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// ListSheets handles GET /tasks/sheets?userId=<id>&q=<search>
func (c *TaskController) ListSheets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeStatus(w, http.StatusBadRequest, false, "userId is required")
		return
	}
	search := r.URL.Query().Get("q")

	sheets, err := c.taskService.SheetsForUser(r.Context(), userID, search)
	if err != nil {
		log.Printf("❌ ListSheets: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to load task sheets")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.TaskSheetsResponse{Success: true, Sheets: sheets})
}

// ListTasks handles GET /tasks?sheetName=<name>&q=<search>
func (c *TaskController) ListTasks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sheet := r.URL.Query().Get("sheetName")
	if sheet == "" {
		writeStatus(w, http.StatusBadRequest, false, "sheetName is required")
		return
	}
	search := r.URL.Query().Get("q")

	tasks, err := c.taskService.TasksForSheet(r.Context(), sheet, search)
	if err != nil {
		log.Printf("❌ ListTasks: %v", err)
		writeStatus(w, http.StatusInternalServerError, false, "Failed to load tasks")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(models.TasksResponse{Success: true, Tasks: tasks})
}
