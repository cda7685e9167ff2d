package services

import (
	"context"
	"fmt"

	"github.com/ecocycle/server/core"
	"github.com/ecocycle/server/pkg/logging"
)

// AssistService forwards chat messages to the external assistant.
type AssistService struct {
	assistant core.Assistant
	log       logging.Logger
}

func NewAssistService(assistant core.Assistant, log logging.Logger) *AssistService {
	if log == nil {
		log = logging.Nop{}
	}
	return &AssistService{assistant: assistant, log: log}
}

// Reply validates and forwards a chat message. Language defaults to
// English when the client omits it.
func (s *AssistService) Reply(ctx context.Context, message, language string) (string, error) {
	if message == "" {
		return "", core.ErrMessageRequired
	}
	if language == "" {
		language = "en"
	}

	response, err := s.assistant.Reply(ctx, message, language)
	if err != nil {
		return "", fmt.Errorf("assistant call failed: %w", err)
	}
	return response, nil
}
