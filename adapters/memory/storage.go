// Package memory provides the in-process storage adapter. It is the
// default backend: state lives for the lifetime of the process and a
// restart resets it, which the session layer treats as a normal
// not-logged-in outcome.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/ecocycle/server/core"
)

type Storage struct {
	mu       sync.RWMutex
	users    map[string]*core.User    // key: user ID
	sessions map[string]*core.Session // key: token hash
	pickups  map[string]*core.Pickup  // key: pickup ID
	items    map[string]*core.Item    // key: item ID
	balances map[string]int           // key: user ID
	ledger   []*core.RewardEntry
	offers   []*core.Offer
	listings []*core.Listing
}

var _ core.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		users:    make(map[string]*core.User),
		sessions: make(map[string]*core.Session),
		pickups:  make(map[string]*core.Pickup),
		items:    make(map[string]*core.Item),
		balances: make(map[string]int),
	}
}

// ---- UserStorage ----

func (s *Storage) CreateUser(u *core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return core.ErrUserExists
		}
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now

	stored := *u
	s.users[u.ID] = &stored
	return nil
}

func (s *Storage) GetUserByID(id string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (s *Storage) GetUserByEmail(email string) (*core.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (s *Storage) UpdateUser(u *core.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID]; !ok {
		return core.ErrUserNotFound
	}
	u.UpdatedAt = time.Now()
	stored := *u
	s.users[u.ID] = &stored
	return nil
}

func (s *Storage) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return core.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// ---- SessionStorage ----

func (s *Storage) CreateSession(session *core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.sessions[session.TokenHash] = &stored
	return nil
}

func (s *Storage) GetSessionByHash(tokenHash string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	copied := *sess
	return &copied, nil
}

func (s *Storage) GetSessionByID(id string) (*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sess := range s.sessions {
		if sess.ID == id {
			copied := *sess
			return &copied, nil
		}
	}
	return nil, core.ErrSessionNotFound
}

func (s *Storage) GetUserSessions(userID string) ([]*core.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*core.Session
	for _, sess := range s.sessions {
		if sess.UserID == userID {
			copied := *sess
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *Storage) DeleteSessionByID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for hash, sess := range s.sessions {
		if sess.ID == id {
			delete(s.sessions, hash)
			return nil
		}
	}
	return core.ErrSessionNotFound
}

func (s *Storage) DeleteSessionByHash(tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[tokenHash]; !ok {
		return core.ErrSessionNotFound
	}
	delete(s.sessions, tokenHash)
	return nil
}

func (s *Storage) DeleteUserSessions(userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for hash, sess := range s.sessions {
		if sess.UserID == userID {
			delete(s.sessions, hash)
			count++
		}
	}
	return count, nil
}

func (s *Storage) DeleteExpiredSessions() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	count := 0
	for hash, sess := range s.sessions {
		if sess.ExpiresAt.Before(now) {
			delete(s.sessions, hash)
			count++
		}
	}
	return count, nil
}

// ---- PickupStorage ----

func (s *Storage) CreatePickup(p *core.Pickup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	s.pickups[p.ID] = &stored
	return nil
}

func (s *Storage) GetPickupByID(id string) (*core.Pickup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.pickups[id]
	if !ok {
		return nil, core.ErrPickupNotFound
	}
	copied := *p
	return &copied, nil
}

func (s *Storage) GetUserPickups(userID string) ([]*core.Pickup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*core.Pickup
	for _, p := range s.pickups {
		if p.UserID == userID {
			copied := *p
			out = append(out, &copied)
		}
	}
	sortPickups(out)
	return out, nil
}

func (s *Storage) ListPickups() ([]*core.Pickup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.Pickup, 0, len(s.pickups))
	for _, p := range s.pickups {
		copied := *p
		out = append(out, &copied)
	}
	sortPickups(out)
	return out, nil
}

func (s *Storage) UpdatePickup(p *core.Pickup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pickups[p.ID]; !ok {
		return core.ErrPickupNotFound
	}
	stored := *p
	s.pickups[p.ID] = &stored
	return nil
}

func sortPickups(pickups []*core.Pickup) {
	sort.Slice(pickups, func(i, j int) bool {
		return pickups[i].CreatedAt.After(pickups[j].CreatedAt)
	})
}

// ---- ItemStorage ----

func (s *Storage) CreateItem(i *core.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *i
	s.items[i.ID] = &stored
	return nil
}

func (s *Storage) GetUserItems(userID string) ([]*core.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*core.Item
	for _, i := range s.items {
		if i.UserID == userID {
			copied := *i
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

// ---- RewardStorage ----

func (s *Storage) AddRewardEntry(e *core.RewardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch e.Kind {
	case core.RewardEarn:
		s.balances[e.UserID] += e.Amount
	case core.RewardRedeem:
		if s.balances[e.UserID] < e.Amount {
			return core.ErrInsufficientCoins
		}
		s.balances[e.UserID] -= e.Amount
	}

	stored := *e
	s.ledger = append(s.ledger, &stored)
	return nil
}

func (s *Storage) GetCoinBalance(userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[userID], nil
}

func (s *Storage) GetUserRewardEntries(userID string) ([]*core.RewardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*core.RewardEntry
	for _, e := range s.ledger {
		if e.UserID == userID {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *Storage) ListOffers() ([]*core.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.Offer, 0, len(s.offers))
	for _, o := range s.offers {
		copied := *o
		out = append(out, &copied)
	}
	return out, nil
}

func (s *Storage) GetOfferByID(id string) (*core.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.offers {
		if o.ID == id {
			copied := *o
			return &copied, nil
		}
	}
	return nil, core.ErrOfferNotFound
}

// ---- ListingStorage ----

func (s *Storage) ListListings() ([]*core.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*core.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		copied := *l
		out = append(out, &copied)
	}
	return out, nil
}
