package memory

import (
	"fmt"
	"time"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/crypto"
)

// Demo credentials created by SeedDemoData. The password is shared across
// the three identities; this seed exists for local development only.
const DemoPassword = "recycle-me-123"

type seedUser struct {
	name  string
	email string
	role  core.Role
	coins int
}

var seedUsers = []seedUser{
	{name: "Admin User", email: "admin@example.com", role: core.RoleAdmin, coins: 1250},
	{name: "Organization User", email: "org@example.com", role: core.RoleOrganization, coins: 1250},
	{name: "Regular User", email: "user@example.com", role: core.RoleUser, coins: 1250},
}

// SeedDemoData populates the store with the demo identities, the offer
// catalogue and the marketplace listings.
func SeedDemoData(s *Storage, passwords crypto.PasswordHandler) error {
	nanoid := crypto.NewNanoID()

	for _, su := range seedUsers {
		hash, err := passwords.Hash(DemoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		id, err := nanoid.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate seed user ID: %w", err)
		}

		user := &core.User{
			ID:           id,
			Email:        su.email,
			Name:         su.name,
			Role:         su.role,
			PasswordHash: hash,
		}
		if err := s.CreateUser(user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", su.email, err)
		}

		if su.coins > 0 {
			entry := &core.RewardEntry{
				ID:        id + "-seed",
				UserID:    id,
				Kind:      core.RewardEarn,
				Amount:    su.coins,
				Reason:    "starting balance",
				CreatedAt: time.Now(),
			}
			if err := s.AddRewardEntry(entry); err != nil {
				return fmt.Errorf("failed to seed balance for %s: %w", su.email, err)
			}
		}
	}

	s.mu.Lock()
	s.offers = demoOffers()
	s.listings = demoListings()
	s.mu.Unlock()

	return nil
}

func demoOffers() []*core.Offer {
	return []*core.Offer{
		{ID: "1", Title: "Amazon Gift Card", Description: "$10 Amazon gift card", CoinsRequired: 1000, Image: "/amazon-card.jpg"},
		{ID: "2", Title: "Coffee Voucher", Description: "Free coffee at partner cafes", CoinsRequired: 250, Image: "/coffee-voucher.jpg"},
		{ID: "3", Title: "Plant a Tree", Description: "We plant a tree in your name", CoinsRequired: 500, Image: "/plant-tree.jpg"},
		{ID: "4", Title: "Movie Ticket", Description: "One standard movie ticket", CoinsRequired: 800, Image: "/movie-ticket.jpg"},
	}
}

func demoListings() []*core.Listing {
	return []*core.Listing{
		{ID: "1", Name: "Refurbished Laptop", Description: "Dell XPS 13, 16GB RAM, 512GB SSD, excellent condition", Price: 599, Condition: "Excellent", Category: "Laptops", Image: "/placeholder.svg", Type: core.ListingSell},
		{ID: "2", Name: "Used Smartphone", Description: "iPhone 12, 128GB, battery health 89%, minor scratches", Price: 349, Condition: "Good", Category: "Phones", Image: "/placeholder.svg", Type: core.ListingSell},
		{ID: "3", Name: "Gaming Console", Description: "PlayStation 5, includes 2 controllers and 3 games", Price: 450, Condition: "Like New", Category: "Gaming", Image: "/placeholder.svg", Type: core.ListingSell},
		{ID: "4", Name: "Wireless Headphones", Description: "Sony WH-1000XM4, noise cancelling, with case", Price: 180, Condition: "Good", Category: "Audio", Image: "/placeholder.svg", Type: core.ListingSell},
		{ID: "5", Name: "Tablet", Description: "iPad Air 4th Gen, 64GB, WiFi, Space Gray", Price: 320, Condition: "Excellent", Category: "Tablets", Image: "/placeholder.svg", Type: core.ListingSell},
		{ID: "6", Name: "Computer Monitor", Description: "27-inch 4K Dell UltraSharp, minimal use", Price: 0, Condition: "Like New", Category: "Monitors", Image: "/placeholder.svg", Type: core.ListingDonate},
	}
}
