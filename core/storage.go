package core

// Storage ports. Adapters (memory, pgx) implement these; services depend on
// the interfaces only.

type UserStorage interface {
	CreateUser(u *User) error

	GetUserByID(id string) (*User, error)
	GetUserByEmail(email string) (*User, error)

	UpdateUser(u *User) error

	DeleteUser(id string) error
}

type SessionStorage interface {
	CreateSession(session *Session) error

	GetSessionByHash(tokenHash string) (*Session, error)
	GetSessionByID(id string) (*Session, error)
	GetUserSessions(userID string) ([]*Session, error)

	DeleteSessionByID(id string) error
	DeleteSessionByHash(tokenHash string) error
	DeleteUserSessions(userID string) (int, error)

	// Cleanup
	DeleteExpiredSessions() (int, error)
}

type PickupStorage interface {
	CreatePickup(p *Pickup) error

	GetPickupByID(id string) (*Pickup, error)
	GetUserPickups(userID string) ([]*Pickup, error)
	ListPickups() ([]*Pickup, error)

	UpdatePickup(p *Pickup) error
}

type ItemStorage interface {
	CreateItem(i *Item) error

	GetUserItems(userID string) ([]*Item, error)
}

type RewardStorage interface {
	// AddRewardEntry appends a ledger entry and adjusts the user's balance
	// in the same operation.
	AddRewardEntry(e *RewardEntry) error

	GetCoinBalance(userID string) (int, error)
	GetUserRewardEntries(userID string) ([]*RewardEntry, error)

	ListOffers() ([]*Offer, error)
	GetOfferByID(id string) (*Offer, error)
}

type ListingStorage interface {
	ListListings() ([]*Listing, error)
}

// Storage is the composed port the application is wired against.
type Storage interface {
	UserStorage
	SessionStorage
	PickupStorage
	ItemStorage
	RewardStorage
	ListingStorage
}
