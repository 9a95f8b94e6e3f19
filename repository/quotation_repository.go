package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"dealerdesk/db"
	"dealerdesk/models"
)

// ErrSubmissionNotFound is returned when no submission matches the lookup.
var ErrSubmissionNotFound = errors.New("quotation submission not found")

// QuotationRepository handles database operations for the quotation register
type QuotationRepository struct{}

// NewQuotationRepository creates a new QuotationRepository
func NewQuotationRepository() *QuotationRepository {
	return &QuotationRepository{}
}

// Ensure QuotationRepository implements QuotationRepositoryInterface
var _ QuotationRepositoryInterface = (*QuotationRepository)(nil)

// Insert saves one customer submission to the register
func (r *QuotationRepository) Insert(ctx context.Context, sub *models.QuotationSubmission) error {
	query := `
		INSERT INTO quotation_submissions (
			id, user_id, customer_name, customer_mobile, customer_address,
			model, variant, color, total_amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
	`
	_, err := db.DB.ExecContext(ctx, query,
		sub.ID,
		sub.UserID,
		sub.CustomerName,
		sub.CustomerMobile,
		sub.CustomerAddress,
		sub.Model,
		sub.Variant,
		sub.Color,
		sub.TotalAmount,
	)
	if err != nil {
		log.Printf("❌ Error inserting quotation submission for %s: %v", sub.CustomerName, err)
		return fmt.Errorf("failed to insert quotation submission: %w", err)
	}

	log.Printf("✅ Quotation submission saved (id: %s, customer: %s, model: %s %s)",
		sub.ID, sub.CustomerName, sub.Model, sub.Variant)
	return nil
}

// List returns the whole register, newest first
func (r *QuotationRepository) List(ctx context.Context) ([]models.QuotationSubmission, error) {
	query := `
		SELECT id, user_id, customer_name, customer_mobile, customer_address,
		       model, variant, color, total_amount, created_at
		FROM quotation_submissions
		ORDER BY created_at DESC
	`
	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotation submissions: %w", err)
	}
	defer rows.Close()

	var subs []models.QuotationSubmission
	for rows.Next() {
		var s models.QuotationSubmission
		var color sql.NullString
		if err := rows.Scan(
			&s.ID,
			&s.UserID,
			&s.CustomerName,
			&s.CustomerMobile,
			&s.CustomerAddress,
			&s.Model,
			&s.Variant,
			&color,
			&s.TotalAmount,
			&s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quotation submission: %w", err)
		}
		s.Color = color.String
		subs = append(subs, s)
	}

	return subs, rows.Err()
}

// GetByID retrieves one submission
func (r *QuotationRepository) GetByID(ctx context.Context, id string) (*models.QuotationSubmission, error) {
	query := `
		SELECT id, user_id, customer_name, customer_mobile, customer_address,
		       model, variant, color, total_amount, created_at
		FROM quotation_submissions
		WHERE id = $1
	`
	var s models.QuotationSubmission
	var color sql.NullString
	err := db.DB.QueryRowContext(ctx, query, id).Scan(
		&s.ID,
		&s.UserID,
		&s.CustomerName,
		&s.CustomerMobile,
		&s.CustomerAddress,
		&s.Model,
		&s.Variant,
		&color,
		&s.TotalAmount,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to get quotation submission: %w", err)
	}
	s.Color = color.String
	return &s, nil
}
