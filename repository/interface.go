package repository

import (
	"context"

	"dealerdesk/models"
)

// UserRepositoryInterface defines the contract for user account storage
type UserRepositoryInterface interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Insert(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// QuotationRepositoryInterface defines the contract for the quotation
// submission register
type QuotationRepositoryInterface interface {
	Insert(ctx context.Context, sub *models.QuotationSubmission) error
	List(ctx context.Context) ([]models.QuotationSubmission, error)
	GetByID(ctx context.Context, id string) (*models.QuotationSubmission, error)
}

// FormLinkRepositoryInterface defines the contract for external form links
type FormLinkRepositoryInterface interface {
	List(ctx context.Context, search string) ([]models.FormLink, error)
}
