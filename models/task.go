package models

// TaskSheet is one sheet tab a user is assigned tasks in. SheetName is the
// tab name used to fetch rows; MainSheetName is the display label.
type TaskSheet struct {
	SheetName     string `json:"sheetName"`
	MainSheetName string `json:"mainSheetName"`
}

// TaskRow is one task record: the sheet's header row mapped onto cell
// values. Columns vary per sheet, so rows stay schemaless.
type TaskRow map[string]string

// TaskSheetsResponse is the payload for GET /tasks/sheets.
type TaskSheetsResponse struct {
	Success bool        `json:"success"`
	Sheets  []TaskSheet `json:"sheets"`
}

// TasksResponse is the payload for GET /tasks.
type TasksResponse struct {
	Success bool      `json:"success"`
	Tasks   []TaskRow `json:"tasks"`
}
