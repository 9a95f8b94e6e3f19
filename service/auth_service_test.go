package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dealerdesk/models"
	"dealerdesk/repository"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *models.User) error {
	f.byEmail[strings.ToLower(user.Email)] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

var _ repository.UserRepositoryInterface = (*fakeUserRepo)(nil)

func TestSignupAndLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo)
	ctx := context.Background()

	req := models.SignupRequest{
		Name:     "Ravi Sharma",
		Mobile:   "9876543210",
		Email:    "ravi@example.com",
		Password: "secret123",
		Location: "Jaipur",
	}

	user, err := svc.Signup(ctx, req)
	if err != nil {
		t.Fatalf("Signup failed: %v", err)
	}
	if user.ID == "" {
		t.Error("signup should assign an id")
	}
	if user.PasswordHash == req.Password {
		t.Error("password must not be stored in plain text")
	}

	t.Run("duplicate email rejected", func(t *testing.T) {
		if _, err := svc.Signup(ctx, req); !errors.Is(err, ErrEmailTaken) {
			t.Errorf("got %v, want ErrEmailTaken", err)
		}
	})

	t.Run("login with correct password", func(t *testing.T) {
		userID, token, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if userID != user.ID || token == "" {
			t.Errorf("got userID %q token %q", userID, token)
		}

		resolved, ok := svc.UserForToken(token)
		if !ok || resolved != user.ID {
			t.Errorf("UserForToken(%q) = %q, %v", token, resolved, ok)
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		if _, _, err := svc.Login(ctx, req.Email, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("login with unknown email", func(t *testing.T) {
		if _, _, err := svc.Login(ctx, "nobody@example.com", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("logout drops the session", func(t *testing.T) {
		_, token, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		svc.Logout(token)
		if _, ok := svc.UserForToken(token); ok {
			t.Error("token should be invalid after logout")
		}
	})
}
