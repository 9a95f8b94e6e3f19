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

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles database operations for user accounts
type UserRepository struct{}

// NewUserRepository creates a new UserRepository
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

// ExistsByEmail checks whether an account with this email already exists
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// Insert creates a new user account row
func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, name, mobile, email, password_hash, location, access,
			dealership_name, dealership_address, rtgs_details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
	`
	_, err := db.DB.ExecContext(ctx, query,
		user.ID,
		user.Name,
		user.Mobile,
		user.Email,
		user.PasswordHash,
		user.Location,
		user.Access,
		user.Dealer.Name,
		user.Dealer.Address,
		user.Dealer.RTGSDetails,
	)
	if err != nil {
		log.Printf("❌ Error inserting user %s: %v", user.Email, err)
		return fmt.Errorf("failed to insert user: %w", err)
	}

	log.Printf("✅ User created (id: %s, email: %s)", user.ID, user.Email)
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	var location, access, dealerName, dealerAddress, rtgs sql.NullString
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Mobile,
		&u.Email,
		&u.PasswordHash,
		&location,
		&access,
		&dealerName,
		&dealerAddress,
		&rtgs,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	u.Location = location.String
	u.Access = access.String
	u.Dealer = models.DealerInfo{
		Name:        dealerName.String,
		Address:     dealerAddress.String,
		RTGSDetails: rtgs.String,
	}
	return &u, nil
}

const userColumns = `id, name, mobile, email, password_hash, location, access,
	dealership_name, dealership_address, rtgs_details, created_at`

// GetByEmail retrieves a user account by email (case-insensitive)
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := db.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	return r.scanUser(row)
}

// GetByID retrieves a user account by its id
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	row := db.DB.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}
