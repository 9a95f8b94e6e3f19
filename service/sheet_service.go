package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"dealerdesk/models"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Tab names inside the dealership spreadsheet.
const (
	pricingSheetRange   = "Pricing!A1:N"
	taskIndexSheetRange = "Task Index!A1:C"
)

// SheetService reads the dealership spreadsheet through the Google Sheets
// API: the pricing catalog, the task index, and the per-user task tabs.
// Implements CatalogSourceInterface and TaskSourceInterface.
type SheetService struct {
	client        *sheets.Service
	spreadsheetID string
}

// NewSheetService creates a new SheetService instance
// credentialsPath should be the path to the Service Account JSON file
func NewSheetService(credentialsPath, spreadsheetID string) (*SheetService, error) {
	ctx := context.Background()

	// option.WithCredentialsFile automatically handles Service Account authentication
	client, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SheetService{
		client:        client,
		spreadsheetID: spreadsheetID,
	}, nil
}

// Ensure SheetService implements both source interfaces
var (
	_ CatalogSourceInterface = (*SheetService)(nil)
	_ TaskSourceInterface    = (*SheetService)(nil)
)

// readRange fetches a value range from the spreadsheet
func (s *SheetService) readRange(ctx context.Context, readRange string) ([][]interface{}, error) {
	resp, err := s.client.Spreadsheets.Values.Get(s.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %q: %w", readRange, err)
	}
	return resp.Values, nil
}

// FetchCatalog reads the pricing tab and maps its header row onto catalog
// entries. Malformed price cells coerce to 0 (models.CoerceAmount).
func (s *SheetService) FetchCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	log.Printf("📥 FetchCatalog: Reading pricing rows from spreadsheet %s", s.spreadsheetID)

	values, err := s.readRange(ctx, pricingSheetRange)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		log.Printf("⚠️  FetchCatalog: Pricing sheet has no data rows")
		return []models.CatalogEntry{}, nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(fmt.Sprintf("%v", cell))
	}

	entries := make([]models.CatalogEntry, 0, len(values)-1)
	for _, row := range values[1:] {
		record := make(map[string]interface{}, len(header))
		for i, key := range header {
			if i < len(row) {
				record[key] = row[i]
			}
		}
		var entry models.CatalogEntry
		entry.FromRecord(record)
		if entry.Model == "" && entry.Variant == "" {
			continue
		}
		entries = append(entries, entry)
	}

	log.Printf("✅ FetchCatalog: Loaded %d priced variants", len(entries))
	return entries, nil
}

// ListTaskSheets reads the task index tab and returns the sheets assigned
// to the given user. Index columns: User ID | Sheet Name | Display Name.
func (s *SheetService) ListTaskSheets(ctx context.Context, userID string) ([]models.TaskSheet, error) {
	values, err := s.readRange(ctx, taskIndexSheetRange)
	if err != nil {
		return nil, err
	}

	var result []models.TaskSheet
	for i, row := range values {
		if i == 0 || len(row) < 2 {
			continue
		}
		rowUserID := strings.TrimSpace(fmt.Sprintf("%v", row[0]))
		if !strings.EqualFold(rowUserID, userID) {
			continue
		}
		sheet := models.TaskSheet{
			SheetName: strings.TrimSpace(fmt.Sprintf("%v", row[1])),
		}
		if len(row) > 2 {
			sheet.MainSheetName = strings.TrimSpace(fmt.Sprintf("%v", row[2]))
		}
		if sheet.MainSheetName == "" {
			sheet.MainSheetName = sheet.SheetName
		}
		result = append(result, sheet)
	}

	log.Printf("✅ ListTaskSheets: %d sheets assigned to user %s", len(result), userID)
	return result, nil
}

// FetchTasks reads one task tab and maps each data row onto its header.
func (s *SheetService) FetchTasks(ctx context.Context, sheetName string) ([]models.TaskRow, error) {
	values, err := s.readRange(ctx, fmt.Sprintf("%s!A1:Z", sheetName))
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return []models.TaskRow{}, nil
	}

	header := make([]string, len(values[0]))
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(fmt.Sprintf("%v", cell))
	}

	tasks := make([]models.TaskRow, 0, len(values)-1)
	for _, row := range values[1:] {
		task := make(models.TaskRow, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				task[key] = strings.TrimSpace(fmt.Sprintf("%v", row[i]))
			} else {
				task[key] = ""
			}
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// ScriptCatalogSource fetches catalog rows from the legacy Apps Script
// endpoint: a GET returning a JSON array of row objects keyed by the
// spreadsheet headers. Kept as a drop-in alternative for deployments that
// still publish prices through the script.
// Implements CatalogSourceInterface.
type ScriptCatalogSource struct {
	scriptURL string
	client    *http.Client
}

// NewScriptCatalogSource creates a new ScriptCatalogSource
func NewScriptCatalogSource(scriptURL string) *ScriptCatalogSource {
	return &ScriptCatalogSource{
		scriptURL: scriptURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Ensure ScriptCatalogSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*ScriptCatalogSource)(nil)

// FetchCatalog performs the GET and decodes the row array.
func (s *ScriptCatalogSource) FetchCatalog(ctx context.Context) ([]models.CatalogEntry, error) {
	log.Printf("📥 FetchCatalog: GET %s", s.scriptURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.scriptURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
	}

	var entries []models.CatalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog rows: %w", err)
	}

	log.Printf("✅ FetchCatalog: Loaded %d priced variants from script endpoint", len(entries))
	return entries, nil
}
