package core

import "time"

// Role determines which gated routes a user may reach.
type Role string

const (
	RoleUser         Role = "user"
	RoleAdmin        Role = "admin"
	RoleOrganization Role = "organization"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleOrganization:
		return true
	}
	return false
}

// User is an identity in the credential store.
//
// Email is the login key and is unique within a store. PasswordHash is an
// argon2id encoded hash and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session represents an active login. Only the sha256 hash of the session
// token is stored; the raw token lives in the auth-token cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"-"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionData combines the resolved user and session, as returned to clients
// by the session endpoint. Role and name always come from the stored user,
// never from cookie values.
type SessionData struct {
	User    *User    `json:"user"`
	Session *Session `json:"session"`
}

// PickupStatus is the lifecycle state of a scheduled pickup.
type PickupStatus string

const (
	PickupPending   PickupStatus = "pending"
	PickupConfirmed PickupStatus = "confirmed"
	PickupCollected PickupStatus = "collected"
	PickupCancelled PickupStatus = "cancelled"
)

// Pickup is a scheduled e-waste collection request.
type Pickup struct {
	ID          string       `json:"id"`
	UserID      string       `json:"userId"`
	Address     string       `json:"address"`
	Date        time.Time    `json:"date"`
	TimeSlot    string       `json:"timeSlot"`
	Description string       `json:"description"`
	PhotoCount  int          `json:"photoCount"`
	Status      PickupStatus `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Item is an uploaded device after classification.
type Item struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	Name                 string    `json:"name"`
	Type                 string    `json:"type"`
	Condition            string    `json:"condition"`
	EstimatedValue       int       `json:"estimatedValue"`
	RecyclableComponents []string  `json:"recyclableComponents"`
	EnvironmentalImpact  string    `json:"environmentalImpact"`
	CreatedAt            time.Time `json:"createdAt"`
}

// RewardKind distinguishes ledger entries that add coins from ones that
// spend them.
type RewardKind string

const (
	RewardEarn   RewardKind = "earn"
	RewardRedeem RewardKind = "redeem"
)

// RewardEntry is one line in a user's coin ledger. Amount is always
// positive; Kind carries the sign.
type RewardEntry struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Kind      RewardKind `json:"kind"`
	Amount    int        `json:"amount"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"createdAt"`
}

// Offer is a reward that coins can be redeemed for.
type Offer struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	CoinsRequired int    `json:"coinsRequired"`
	Image         string `json:"image"`
}

// ListingType marks a marketplace listing as for sale or for donation.
type ListingType string

const (
	ListingSell   ListingType = "sell"
	ListingDonate ListingType = "donate"
)

// Listing is a refurbished device offered on the marketplace.
type Listing struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       int         `json:"price"`
	Condition   string      `json:"condition"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Type        ListingType `json:"type"`
}
