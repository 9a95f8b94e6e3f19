package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"dealerdesk/models"
	"dealerdesk/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the email/password pair does
	// not match an account.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email that already
	// has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

const sessionTTL = 24 * time.Hour

type session struct {
	userID    string
	expiresAt time.Time
}

// AuthService handles signup, login, and the in-memory session register.
type AuthService struct {
	users repository.UserRepositoryInterface

	mu       sync.RWMutex
	sessions map[string]session
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepositoryInterface) *AuthService {
	return &AuthService{
		users:    users,
		sessions: make(map[string]session),
	}
}

// Signup creates a new account with a bcrypt-hashed password. Access is
// empty until an admin grants a feature like "Digital Quotation".
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		PasswordHash: string(hash),
		Location:     req.Location,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues an opaque session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (userID, token string, err error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token = uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = session{userID: user.ID, expiresAt: time.Now().Add(sessionTTL)}
	s.mu.Unlock()

	log.Printf("✅ Login: user %s authenticated", user.ID)
	return user.ID, token, nil
}

// UserForToken resolves a session token to a user id. Expired sessions are
// dropped on lookup.
func (s *AuthService) UserForToken(token string) (string, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", false
	}
	return sess.userID, true
}

// Logout drops a session token.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
