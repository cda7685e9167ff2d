package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/logging"
)

// PickupService handles the pickup scheduling flow: the wizard submit,
// the user's own list, cancellation, and the status transitions driven by
// organization and admin dashboards.
type PickupService struct {
	storage core.PickupStorage
	rewards *RewardsService // nil disables collection awards
	log     logging.Logger
}

func NewPickupService(storage core.PickupStorage, rewards *RewardsService, log logging.Logger) *PickupService {
	if log == nil {
		log = logging.Nop{}
	}
	return &PickupService{storage: storage, rewards: rewards, log: log}
}

// SchedulePickupInput mirrors the final step of the scheduling wizard.
type SchedulePickupInput struct {
	Address     string    `json:"address"`
	Date        time.Time `json:"date"`
	TimeSlot    string    `json:"timeSlot"`
	Description string    `json:"description"`
	PhotoCount  int       `json:"photoCount"`
}

// Schedule creates a pending pickup for the user.
func (s *PickupService) Schedule(ctx context.Context, userID string, input SchedulePickupInput) (*core.Pickup, error) {
	if input.Address == "" {
		return nil, core.ErrAddressRequired
	}
	if input.Date.IsZero() {
		return nil, core.ErrDateRequired
	}
	if input.Date.Before(time.Now().Truncate(24 * time.Hour)) {
		return nil, core.ErrDateInPast
	}
	if input.TimeSlot == "" {
		return nil, core.ErrTimeSlotRequired
	}

	now := time.Now()
	pickup := &core.Pickup{
		ID:          uuid.NewString(),
		UserID:      userID,
		Address:     input.Address,
		Date:        input.Date,
		TimeSlot:    input.TimeSlot,
		Description: input.Description,
		PhotoCount:  input.PhotoCount,
		Status:      core.PickupPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.CreatePickup(pickup); err != nil {
		return nil, fmt.Errorf("failed to create pickup: %w", err)
	}

	s.log.Info(ctx, "pickup scheduled", "pickupId", pickup.ID, "userId", userID, "slot", pickup.TimeSlot)
	return pickup, nil
}

// ListOwn returns the caller's pickups.
func (s *PickupService) ListOwn(_ context.Context, userID string) ([]*core.Pickup, error) {
	return s.storage.GetUserPickups(userID)
}

// ListAll returns every pickup. Reserved for organization and admin
// dashboards; the caller's resolved role is checked here, not in the
// transport layer.
func (s *PickupService) ListAll(_ context.Context, requester *core.User) ([]*core.Pickup, error) {
	if requester == nil || !core.CapOrganization.Allows(requester.Role) {
		return nil, core.ErrForbidden
	}
	return s.storage.ListPickups()
}

// Cancel cancels one of the caller's pending pickups.
func (s *PickupService) Cancel(ctx context.Context, userID, pickupID string) (*core.Pickup, error) {
	pickup, err := s.storage.GetPickupByID(pickupID)
	if err != nil {
		return nil, err
	}
	if pickup.UserID != userID {
		return nil, core.ErrForbidden
	}
	if pickup.Status != core.PickupPending {
		return nil, core.ErrPickupNotCancellable
	}

	pickup.Status = core.PickupCancelled
	pickup.UpdatedAt = time.Now()
	if err := s.storage.UpdatePickup(pickup); err != nil {
		return nil, fmt.Errorf("failed to update pickup: %w", err)
	}

	s.log.Info(ctx, "pickup cancelled", "pickupId", pickup.ID, "userId", userID)
	return pickup, nil
}

// Advance moves a pickup forward: pending → confirmed → collected.
// Collection credits the owner's coin balance.
func (s *PickupService) Advance(ctx context.Context, requester *core.User, pickupID string) (*core.Pickup, error) {
	if requester == nil || !core.CapOrganization.Allows(requester.Role) {
		return nil, core.ErrForbidden
	}

	pickup, err := s.storage.GetPickupByID(pickupID)
	if err != nil {
		return nil, err
	}

	switch pickup.Status {
	case core.PickupPending:
		pickup.Status = core.PickupConfirmed
	case core.PickupConfirmed:
		pickup.Status = core.PickupCollected
	default:
		return nil, core.ErrInvalidTransition
	}

	pickup.UpdatedAt = time.Now()
	if err := s.storage.UpdatePickup(pickup); err != nil {
		return nil, fmt.Errorf("failed to update pickup: %w", err)
	}

	if pickup.Status == core.PickupCollected && s.rewards != nil {
		if _, err := s.rewards.Award(ctx, pickup.UserID, collectionAward, "pickup collected"); err != nil {
			// The pickup itself succeeded; surface the award failure in logs only
			s.log.Error(ctx, "failed to award collection coins", "pickupId", pickup.ID, "error", err)
		}
	}

	s.log.Info(ctx, "pickup advanced", "pickupId", pickup.ID, "status", pickup.Status)
	return pickup, nil
}
