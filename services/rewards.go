package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/logging"
)

// Coin awards for the recycling flows.
const (
	redeemCodeAward = 50
	binScanAward    = 25
	collectionAward = 50

	minRedeemCodeLength = 6
)

// RewardsService manages coin balances, the earn/redeem ledger, and the
// offer catalogue.
type RewardsService struct {
	storage core.RewardStorage
	log     logging.Logger
}

func NewRewardsService(storage core.RewardStorage, log logging.Logger) *RewardsService {
	if log == nil {
		log = logging.Nop{}
	}
	return &RewardsService{storage: storage, log: log}
}

// BalanceSummary is the payload behind the rewards page header.
type BalanceSummary struct {
	Coins   int                 `json:"coins"`
	Entries []*core.RewardEntry `json:"entries"`
}

func (s *RewardsService) Balance(_ context.Context, userID string) (*BalanceSummary, error) {
	coins, err := s.storage.GetCoinBalance(userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.storage.GetUserRewardEntries(userID)
	if err != nil {
		return nil, err
	}
	return &BalanceSummary{Coins: coins, Entries: entries}, nil
}

// Award credits coins to a user and records the reason.
func (s *RewardsService) Award(ctx context.Context, userID string, amount int, reason string) (*core.RewardEntry, error) {
	entry := &core.RewardEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      core.RewardEarn,
		Amount:    amount,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if err := s.storage.AddRewardEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to record award: %w", err)
	}
	s.log.Info(ctx, "coins awarded", "userId", userID, "amount", amount, "reason", reason)
	return entry, nil
}

// RedeemCode credits the fixed code award for a valid bin receipt code.
// Codes are opaque receipts printed at the bins; anything shorter than six
// characters is rejected outright.
func (s *RewardsService) RedeemCode(ctx context.Context, userID, code string) (*core.RewardEntry, error) {
	if len(code) < minRedeemCodeLength {
		return nil, core.ErrInvalidRedeemCode
	}
	return s.Award(ctx, userID, redeemCodeAward, "redeem code")
}

// ScanBin credits the QR bin-scan award.
func (s *RewardsService) ScanBin(ctx context.Context, userID string) (*core.RewardEntry, error) {
	return s.Award(ctx, userID, binScanAward, "qr bin scan")
}

// Offers returns the redeemable offer catalogue.
func (s *RewardsService) Offers(_ context.Context) ([]*core.Offer, error) {
	return s.storage.ListOffers()
}

// RedeemOffer spends coins on an offer after a balance check.
func (s *RewardsService) RedeemOffer(ctx context.Context, userID, offerID string) (*core.RewardEntry, error) {
	offer, err := s.storage.GetOfferByID(offerID)
	if err != nil {
		return nil, err
	}

	balance, err := s.storage.GetCoinBalance(userID)
	if err != nil {
		return nil, err
	}
	if balance < offer.CoinsRequired {
		return nil, core.ErrInsufficientCoins
	}

	entry := &core.RewardEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Kind:      core.RewardRedeem,
		Amount:    offer.CoinsRequired,
		Reason:    offer.Title,
		CreatedAt: time.Now(),
	}
	if err := s.storage.AddRewardEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to record redemption: %w", err)
	}

	s.log.Info(ctx, "offer redeemed", "userId", userID, "offerId", offer.ID, "coins", offer.CoinsRequired)
	return entry, nil
}
