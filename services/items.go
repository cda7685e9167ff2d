package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/logging"
)

// ItemService runs uploaded images through the classifier and keeps the
// detected items per user.
type ItemService struct {
	storage    core.ItemStorage
	classifier core.Classifier
	log        logging.Logger
}

func NewItemService(storage core.ItemStorage, classifier core.Classifier, log logging.Logger) *ItemService {
	if log == nil {
		log = logging.Nop{}
	}
	return &ItemService{storage: storage, classifier: classifier, log: log}
}

// Detect classifies an uploaded image and persists the result for the
// user. ErrNoItemDetected passes through unwrapped so the transport layer
// can map it to a not-found response.
func (s *ItemService) Detect(ctx context.Context, userID string, image []byte, filename string) (*core.Item, error) {
	if len(image) == 0 {
		return nil, core.ErrImageRequired
	}

	detection, err := s.classifier.Classify(ctx, image, filename)
	if err != nil {
		if err == core.ErrNoItemDetected {
			return nil, err
		}
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	item := &core.Item{
		ID:                   uuid.NewString(),
		UserID:               userID,
		Name:                 detection.Name,
		Type:                 detection.Type,
		Condition:            detection.Condition,
		EstimatedValue:       detection.EstimatedValue,
		RecyclableComponents: detection.RecyclableComponents,
		EnvironmentalImpact:  detection.EnvironmentalImpact,
		CreatedAt:            time.Now(),
	}

	if err := s.storage.CreateItem(item); err != nil {
		return nil, fmt.Errorf("failed to save item: %w", err)
	}

	s.log.Info(ctx, "item detected", "userId", userID, "item", item.Name, "value", item.EstimatedValue)
	return item, nil
}

// ListOwn returns the caller's detected items.
func (s *ItemService) ListOwn(_ context.Context, userID string) ([]*core.Item, error) {
	return s.storage.GetUserItems(userID)
}
