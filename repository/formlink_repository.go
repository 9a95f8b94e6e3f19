package repository

import (
	"context"
	"fmt"

	"dealerdesk/db"
	"dealerdesk/models"
)

// FormLinkRepository handles database operations for external form links
type FormLinkRepository struct{}

// NewFormLinkRepository creates a new FormLinkRepository
func NewFormLinkRepository() *FormLinkRepository {
	return &FormLinkRepository{}
}

// Ensure FormLinkRepository implements FormLinkRepositoryInterface
var _ FormLinkRepositoryInterface = (*FormLinkRepository)(nil)

// List returns active form links, optionally filtered by a case-insensitive
// name search
func (r *FormLinkRepository) List(ctx context.Context, search string) ([]models.FormLink, error) {
	query := `
		SELECT id, name, link
		FROM form_links
		WHERE is_active = true
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY name ASC
	`
	rows, err := db.DB.QueryContext(ctx, query, search)
	if err != nil {
		return nil, fmt.Errorf("failed to query form links: %w", err)
	}
	defer rows.Close()

	var links []models.FormLink
	for rows.Next() {
		var l models.FormLink
		if err := rows.Scan(&l.ID, &l.Name, &l.Link); err != nil {
			return nil, fmt.Errorf("failed to scan form link: %w", err)
		}
		links = append(links, l)
	}

	return links, rows.Err()
}
