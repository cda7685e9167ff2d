package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ecocycle/server/core"
)

func newTestAuth(storage *FakeStorage) *AuthService {
	sm := NewSessionManager(SessionConfig{MaxAge: 7 * 24 * time.Hour}, storage, nil)
	return NewAuthService(storage, sm, fakePasswords{}, nil)
}

func seedUser(t *testing.T, storage *FakeStorage, email string, role core.Role) *core.User {
	t.Helper()
	hash, _ := fakePasswords{}.Hash("correct-password")
	user := &core.User{
		ID:           "user-" + email,
		Email:        email,
		Name:         "Seeded",
		Role:         role,
		PasswordHash: hash,
	}
	if err := storage.CreateUser(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

// Requirement: Register validates input and does not touch the store on failure.
func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   RegisterInput{Email: "a@example.com", Password: "pw", ConfirmPassword: "pw"},
			wantErr: core.ErrNameRequired,
		},
		{
			name:    "empty email",
			input:   RegisterInput{Name: "Alice", Password: "pw", ConfirmPassword: "pw"},
			wantErr: core.ErrEmailRequired,
		},
		{
			name:    "empty password",
			input:   RegisterInput{Name: "Alice", Email: "a@example.com"},
			wantErr: core.ErrPasswordRequired,
		},
		{
			name:    "password mismatch",
			input:   RegisterInput{Name: "Alice", Email: "a@example.com", Password: "pw", ConfirmPassword: "other"},
			wantErr: core.ErrPasswordMismatch,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			storage := NewFakeStorage()
			service := newTestAuth(storage)

			_, err := service.Register(context.Background(), test.input, "127.0.0.1", "test-agent")

			if err != test.wantErr {
				t.Fatalf("Register() error = %v, want %v", err, test.wantErr)
			}
			if storage.userCount() != 0 {
				t.Errorf("store mutated on validation failure: %d users", storage.userCount())
			}
		})
	}
}

// Requirement: duplicate emails are rejected and the store size is unchanged.
func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuth(storage)
	seedUser(t, storage, "alice@example.com", core.RoleUser)

	_, err := service.Register(context.Background(), RegisterInput{
		Name:            "Alice Again",
		Email:           "alice@example.com",
		Password:        "pw",
		ConfirmPassword: "pw",
	}, "127.0.0.1", "test-agent")

	if err != core.ErrUserExists {
		t.Fatalf("Register() error = %v, want ErrUserExists", err)
	}
	if storage.userCount() != 1 {
		t.Errorf("store size = %d, want 1", storage.userCount())
	}
}

// Requirement: registration creates a user with role "user" and a session
// whose token resolves back to that user.
func TestAuthService_Register_Success(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuth(storage)

	result, err := service.Register(context.Background(), RegisterInput{
		Name:            "Alice",
		Email:           "alice@example.com",
		Password:        "pw",
		ConfirmPassword: "pw",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if result.User.Role != core.RoleUser {
		t.Errorf("new user role = %q, want %q", result.User.Role, core.RoleUser)
	}
	if result.Token == "" {
		t.Fatal("Register() returned empty token")
	}

	data, err := service.GetSession(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if data.User.ID != result.User.ID {
		t.Errorf("resolved user %q, want %q", data.User.ID, result.User.ID)
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: "alice@example.com", password: "correct-password"},
		{name: "empty email", email: "", password: "pw", wantErr: core.ErrEmailRequired},
		{name: "empty password", email: "alice@example.com", password: "", wantErr: core.ErrPasswordRequired},
		{name: "unknown email", email: "nobody@example.com", password: "pw", wantErr: core.ErrInvalidCredentials},
		{name: "wrong password", email: "alice@example.com", password: "wrong", wantErr: core.ErrInvalidCredentials},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			storage := NewFakeStorage()
			service := newTestAuth(storage)
			seedUser(t, storage, "alice@example.com", core.RoleUser)

			result, err := service.Login(context.Background(), LoginInput{
				Email:    test.email,
				Password: test.password,
			}, "127.0.0.1", "test-agent")

			if err != test.wantErr {
				t.Fatalf("Login() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr == nil && result.Token == "" {
				t.Error("Login() returned empty token")
			}
		})
	}
}

// Requirement: logging out twice produces no error and the same end state.
func TestAuthService_Logout_Idempotent(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuth(storage)
	seedUser(t, storage, "alice@example.com", core.RoleUser)

	result, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct-password",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := service.Logout(context.Background(), result.Token); err != nil {
			t.Fatalf("Logout() call %d error = %v", i+1, err)
		}
		if storage.sessionCount() != 0 {
			t.Errorf("call %d: %d sessions remain", i+1, storage.sessionCount())
		}
	}

	if _, err := service.GetSession(context.Background(), result.Token); err == nil {
		t.Error("GetSession() after logout should fail")
	}
}

func TestAuthService_StorageFailures(t *testing.T) {
	t.Run("register fails when user cannot be stored", func(t *testing.T) {
		storage := NewFakeStorage()
		storage.getUserErr = errors.New("storage down")
		service := newTestAuth(storage)

		_, err := service.Register(context.Background(), RegisterInput{
			Name:            "Alice",
			Email:           "alice@example.com",
			Password:        "pw",
			ConfirmPassword: "pw",
		}, "127.0.0.1", "test-agent")
		if err == nil {
			t.Fatal("Register() should fail when storage is down")
		}
	})

	t.Run("register fails when create errors", func(t *testing.T) {
		storage := NewFakeStorage()
		storage.createUserErr = errors.New("storage down")
		service := newTestAuth(storage)

		_, err := service.Register(context.Background(), RegisterInput{
			Name:            "Alice",
			Email:           "alice@example.com",
			Password:        "pw",
			ConfirmPassword: "pw",
		}, "127.0.0.1", "test-agent")
		if err == nil {
			t.Fatal("Register() should fail when create errors")
		}
	})
}

// Requirement: a session whose user vanished resolves to not-logged-in and
// the orphaned session is removed.
func TestAuthService_GetSession_MissingUserFailsClosed(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuth(storage)
	user := seedUser(t, storage, "alice@example.com", core.RoleUser)

	result, err := service.Login(context.Background(), LoginInput{
		Email:    "alice@example.com",
		Password: "correct-password",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if err := storage.DeleteUser(user.ID); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}

	if _, err := service.GetSession(context.Background(), result.Token); err != core.ErrSessionNotFound {
		t.Fatalf("GetSession() error = %v, want ErrSessionNotFound", err)
	}
	if storage.sessionCount() != 0 {
		t.Errorf("orphaned session not cleaned up: %d sessions", storage.sessionCount())
	}
}
