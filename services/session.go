package services

import (
	"time"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/crypto"
)

// SessionConfig controls session lifetime. The cookie max-age mirrors
// MaxAge in the HTTP adapter.
type SessionConfig struct {
	MaxAge time.Duration
}

// DefaultSessionConfig matches the 7-day cookie lifetime of the site.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{MaxAge: 7 * 24 * time.Hour}
}

// SessionManager issues, verifies and destroys sessions. The raw token is
// only ever returned to the caller; storage and cache hold its hash.
type SessionManager struct {
	config  SessionConfig
	storage core.SessionStorage
	cache   core.Cache // optional, nil disables caching
	nanoid  *crypto.NanoIDGenerator
}

type CreateSessionResult struct {
	Session *core.Session `json:"session"`
	Token   string        `json:"token"`
}

func NewSessionManager(config SessionConfig, storage core.SessionStorage, cache core.Cache) *SessionManager {
	if config.MaxAge == 0 {
		config = DefaultSessionConfig()
	}
	return &SessionManager{
		config:  config,
		storage: storage,
		cache:   cache,
		nanoid:  crypto.NewNanoID(),
	}
}

// MaxAge exposes the configured lifetime so the HTTP adapter can stamp
// matching cookie attributes.
func (sm *SessionManager) MaxAge() time.Duration {
	return sm.config.MaxAge
}

func (sm *SessionManager) Create(userID, ipAddress, userAgent string) (*CreateSessionResult, error) {
	pair, err := crypto.GenerateHashedToken()
	if err != nil {
		return nil, err
	}

	sessionID, err := sm.nanoid.Generate()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &core.Session{
		ID:        sessionID,
		UserID:    userID,
		TokenHash: pair.Hash,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(sm.config.MaxAge),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := sm.storage.CreateSession(session); err != nil {
		return nil, err
	}

	// Cache failures never fail the request
	if sm.cache != nil {
		_ = sm.cache.Set(pair.Hash, session)
	}

	return &CreateSessionResult{Session: session, Token: pair.Token}, nil
}

// Verify resolves a raw token to its stored session, consulting the cache
// first. Expired sessions are removed and reported as ErrSessionExpired.
func (sm *SessionManager) Verify(token string) (*core.Session, error) {
	if token == "" {
		return nil, core.ErrInvalidToken
	}

	tokenHash := crypto.HashToken(token)

	if sm.cache != nil {
		if session, err := sm.cache.Get(tokenHash); err == nil && session != nil {
			if time.Now().After(session.ExpiresAt) {
				_ = sm.cache.Delete(tokenHash)
				return nil, core.ErrSessionExpired
			}
			return session, nil
		}
		// Cache miss - fall through to storage
	}

	session, err := sm.storage.GetSessionByHash(tokenHash)
	if err != nil {
		return nil, core.ErrSessionNotFound
	}

	valid, err := crypto.VerifyToken(token, session.TokenHash)
	if err != nil || !valid {
		return nil, core.ErrInvalidToken
	}

	if time.Now().After(session.ExpiresAt) {
		_ = sm.storage.DeleteSessionByID(session.ID)
		return nil, core.ErrSessionExpired
	}

	if sm.cache != nil {
		_ = sm.cache.Set(tokenHash, session)
	}

	return session, nil
}

// Destroy removes the session for the given raw token. Destroying an
// absent session is not an error; logout must be idempotent.
func (sm *SessionManager) Destroy(token string) error {
	if token == "" {
		return nil
	}

	tokenHash := crypto.HashToken(token)

	if sm.cache != nil {
		_ = sm.cache.Delete(tokenHash)
	}

	err := sm.storage.DeleteSessionByHash(tokenHash)
	if err == core.ErrSessionNotFound {
		return nil
	}
	return err
}

// DestroyAllUserSessions removes every session belonging to a user and
// returns the number removed.
func (sm *SessionManager) DestroyAllUserSessions(userID string) (int, error) {
	if userID == "" {
		return 0, core.ErrUserNotFound
	}

	count, err := sm.storage.DeleteUserSessions(userID)
	if err != nil {
		return 0, err
	}

	// Clearing the whole cache is coarse but avoids fetching every user
	// session just to invalidate entries one by one.
	if sm.cache != nil && count > 0 {
		_ = sm.cache.Clear()
	}

	return count, nil
}
