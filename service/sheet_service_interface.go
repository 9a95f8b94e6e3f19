package service

import (
	"context"

	"dealerdesk/models"
)

// CatalogSourceInterface defines the contract for fetching the pricing
// catalog rows
type CatalogSourceInterface interface {
	FetchCatalog(ctx context.Context) ([]models.CatalogEntry, error)
}

// TaskSourceInterface defines the contract for fetching task sheets and
// task rows
type TaskSourceInterface interface {
	ListTaskSheets(ctx context.Context, userID string) ([]models.TaskSheet, error)
	FetchTasks(ctx context.Context, sheetName string) ([]models.TaskRow, error)
}
