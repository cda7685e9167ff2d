package services

import (
	"context"
	"fmt"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/crypto"
	"github.com/ecocycle/server/pkg/logging"
)

// AuthService validates credentials against the user store and turns them
// into sessions. It owns the register/login/logout/get-session operations;
// cookie handling lives in the HTTP adapter.
type AuthService struct {
	storage  core.UserStorage
	sessions *SessionManager
	password crypto.PasswordHandler
	nanoid   *crypto.NanoIDGenerator
	log      logging.Logger
}

func NewAuthService(storage core.UserStorage, sessions *SessionManager, password crypto.PasswordHandler, log logging.Logger) *AuthService {
	if log == nil {
		log = logging.Nop{}
	}
	return &AuthService{
		storage:  storage,
		sessions: sessions,
		password: password,
		nanoid:   crypto.NewNanoID(),
		log:      log,
	}
}

// RegisterInput contains the data submitted by the registration form.
type RegisterInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginInput contains the credentials submitted by the login form.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned on successful login or registration.
type AuthResult struct {
	User    *core.User    `json:"user"`
	Session *core.Session `json:"session"`
	Token   string        `json:"token"` // the raw token (not the hash)
}

// Register creates a new user with role "user" and issues a first session.
func (s *AuthService) Register(ctx context.Context, input RegisterInput, ipAddress, userAgent string) (*AuthResult, error) {
	if input.Name == "" {
		return nil, core.ErrNameRequired
	}
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}
	if input.Password != input.ConfirmPassword {
		return nil, core.ErrPasswordMismatch
	}

	existing, err := s.storage.GetUserByEmail(input.Email)
	if err != nil && err != core.ErrUserNotFound {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, core.ErrUserExists
	}

	hashed, err := s.password.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.nanoid.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	user := &core.User{
		ID:           id,
		Email:        input.Email,
		Name:         input.Name,
		Role:         core.RoleUser,
		PasswordHash: hashed,
	}

	if err := s.storage.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	result, err := s.sessions.Create(user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info(ctx, "user registered", "userId", user.ID, "role", user.Role)

	return &AuthResult{User: user, Session: result.Session, Token: result.Token}, nil
}

// Login authenticates an email/password pair. Unknown emails and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, input LoginInput, ipAddress, userAgent string) (*AuthResult, error) {
	if input.Email == "" {
		return nil, core.ErrEmailRequired
	}
	if input.Password == "" {
		return nil, core.ErrPasswordRequired
	}

	user, err := s.storage.GetUserByEmail(input.Email)
	if err != nil {
		if err == core.ErrUserNotFound {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	valid, err := s.password.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	result, err := s.sessions.Create(user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.log.Info(ctx, "user logged in", "userId", user.ID)

	return &AuthResult{User: user, Session: result.Session, Token: result.Token}, nil
}

// Logout invalidates the session for the given token. Calling it with an
// absent or already-destroyed session succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(token); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	s.log.Debug(ctx, "session destroyed")
	return nil
}

// GetSession answers "who, if anyone, is logged in" for the given token.
// A token whose user no longer exists resolves to not-logged-in
// (fail closed) and the orphaned session is dropped.
func (s *AuthService) GetSession(ctx context.Context, token string) (*core.SessionData, error) {
	session, err := s.sessions.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUserByID(session.UserID)
	if err != nil {
		if err == core.ErrUserNotFound {
			s.log.Warn(ctx, "session refers to missing user", "sessionId", session.ID, "userId", session.UserID)
			_ = s.sessions.storage.DeleteSessionByID(session.ID)
			return nil, core.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &core.SessionData{User: user, Session: session}, nil
}
