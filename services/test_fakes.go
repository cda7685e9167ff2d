package services

import (
	"context"
	"sync"

	"github.com/ecocycle/server/core"
)

// FakeStorage is a test-only in-memory core.Storage with error fields for
// behavior injection.
type FakeStorage struct {
	mu       sync.RWMutex
	users    map[string]*core.User
	sessions map[string]*core.Session
	pickups  map[string]*core.Pickup
	items    map[string]*core.Item
	balances map[string]int
	ledger   []*core.RewardEntry
	offers   map[string]*core.Offer
	listings []*core.Listing

	createUserErr    error
	getUserErr       error
	createSessionErr error
	getSessionErr    error
	deleteSessionErr error
	rewardErr        error
}

var _ core.Storage = (*FakeStorage)(nil)

func NewFakeStorage() *FakeStorage {
	return &FakeStorage{
		users:    make(map[string]*core.User),
		sessions: make(map[string]*core.Session),
		pickups:  make(map[string]*core.Pickup),
		items:    make(map[string]*core.Item),
		balances: make(map[string]int),
		offers:   make(map[string]*core.Offer),
	}
}

func (f *FakeStorage) CreateUser(u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createUserErr != nil {
		return f.createUserErr
	}
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return core.ErrUserExists
		}
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeStorage) GetUserByID(id string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, core.ErrUserNotFound
	}
	return u, nil
}

func (f *FakeStorage) GetUserByEmail(email string) (*core.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getUserErr != nil {
		return nil, f.getUserErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, core.ErrUserNotFound
}

func (f *FakeStorage) UpdateUser(u *core.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[u.ID]; !ok {
		return core.ErrUserNotFound
	}
	f.users[u.ID] = u
	return nil
}

func (f *FakeStorage) DeleteUser(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return core.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *FakeStorage) userCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.users)
}

func (f *FakeStorage) CreateSession(s *core.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createSessionErr != nil {
		return f.createSessionErr
	}
	f.sessions[s.TokenHash] = s
	return nil
}

func (f *FakeStorage) GetSessionByHash(tokenHash string) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getSessionErr != nil {
		return nil, f.getSessionErr
	}
	s, ok := f.sessions[tokenHash]
	if !ok {
		return nil, core.ErrSessionNotFound
	}
	return s, nil
}

func (f *FakeStorage) GetSessionByID(id string) (*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, s := range f.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, core.ErrSessionNotFound
}

func (f *FakeStorage) GetUserSessions(userID string) ([]*core.Session, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.Session
	for _, s := range f.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *FakeStorage) DeleteSessionByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, s := range f.sessions {
		if s.ID == id {
			delete(f.sessions, hash)
			return nil
		}
	}
	return core.ErrSessionNotFound
}

func (f *FakeStorage) DeleteSessionByHash(tokenHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteSessionErr != nil {
		return f.deleteSessionErr
	}
	if _, ok := f.sessions[tokenHash]; !ok {
		return core.ErrSessionNotFound
	}
	delete(f.sessions, tokenHash)
	return nil
}

func (f *FakeStorage) DeleteUserSessions(userID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for hash, s := range f.sessions {
		if s.UserID == userID {
			delete(f.sessions, hash)
			count++
		}
	}
	return count, nil
}

func (f *FakeStorage) DeleteExpiredSessions() (int, error) {
	return 0, nil
}

func (f *FakeStorage) sessionCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.sessions)
}

func (f *FakeStorage) CreatePickup(p *core.Pickup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pickups[p.ID] = p
	return nil
}

func (f *FakeStorage) GetPickupByID(id string) (*core.Pickup, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	p, ok := f.pickups[id]
	if !ok {
		return nil, core.ErrPickupNotFound
	}
	return p, nil
}

func (f *FakeStorage) GetUserPickups(userID string) ([]*core.Pickup, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.Pickup
	for _, p := range f.pickups {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *FakeStorage) ListPickups() ([]*core.Pickup, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.Pickup
	for _, p := range f.pickups {
		out = append(out, p)
	}
	return out, nil
}

func (f *FakeStorage) UpdatePickup(p *core.Pickup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pickups[p.ID]; !ok {
		return core.ErrPickupNotFound
	}
	f.pickups[p.ID] = p
	return nil
}

func (f *FakeStorage) CreateItem(i *core.Item) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[i.ID] = i
	return nil
}

func (f *FakeStorage) GetUserItems(userID string) ([]*core.Item, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.Item
	for _, i := range f.items {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out, nil
}

func (f *FakeStorage) AddRewardEntry(e *core.RewardEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rewardErr != nil {
		return f.rewardErr
	}
	switch e.Kind {
	case core.RewardEarn:
		f.balances[e.UserID] += e.Amount
	case core.RewardRedeem:
		if f.balances[e.UserID] < e.Amount {
			return core.ErrInsufficientCoins
		}
		f.balances[e.UserID] -= e.Amount
	}
	f.ledger = append(f.ledger, e)
	return nil
}

func (f *FakeStorage) GetCoinBalance(userID string) (int, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.balances[userID], nil
}

func (f *FakeStorage) GetUserRewardEntries(userID string) ([]*core.RewardEntry, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.RewardEntry
	for _, e := range f.ledger {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *FakeStorage) ListOffers() ([]*core.Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []*core.Offer
	for _, o := range f.offers {
		out = append(out, o)
	}
	return out, nil
}

func (f *FakeStorage) GetOfferByID(id string) (*core.Offer, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	o, ok := f.offers[id]
	if !ok {
		return nil, core.ErrOfferNotFound
	}
	return o, nil
}

func (f *FakeStorage) ListListings() ([]*core.Listing, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.listings, nil
}

// fakePasswords compares passwords in plain text so tests avoid argon2
// cost per case.
type fakePasswords struct{}

func (fakePasswords) Hash(password string) (string, error) { return "plain:" + password, nil }

func (fakePasswords) Verify(password, hash string) (bool, error) {
	return hash == "plain:"+password, nil
}

// fakeClassifier returns a fixed detection or an injected error.
type fakeClassifier struct {
	detection *core.Detection
	err       error
	calls     int
}

func (f *fakeClassifier) Classify(_ context.Context, _ []byte, _ string) (*core.Detection, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.detection != nil {
		return f.detection, nil
	}
	return &core.Detection{
		Name:                 "Laptop",
		Type:                 "Electronics",
		Condition:            "Used",
		EstimatedValue:       45,
		RecyclableComponents: []string{"Battery", "Screen"},
		EnvironmentalImpact:  "Medium",
	}, nil
}
