package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/pkg/assistant"
)

// Assistant fallback replies. Upstream failures are absorbed into a
// friendly apology so the chat UI never surfaces an error state.
const (
	fallbackReply  = "I'm sorry, I'm having trouble connecting to my brain right now. Please try again later!"
	emptyReplyText = "I processed your request but have no text to return."
)

// ChatService defines the interface for the campus assistant
type ChatService interface {
	Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

// chatServiceImpl implements ChatService
type chatServiceImpl struct {
	generator assistant.Generator
	logger    zerolog.Logger
}

// NewChatService creates a new ChatService
func NewChatService(generator assistant.Generator, logger zerolog.Logger) ChatService {
	return &chatServiceImpl{
		generator: generator,
		logger:    logger,
	}
}

// Ask forwards a single prompt to the assistant. Each call is independent;
// no conversation history is sent upstream. Failures never propagate to the
// caller as errors.
func (s *chatServiceImpl) Ask(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	if s.generator == nil {
		s.logger.Warn().Msg("Assistant is not configured, returning fallback reply")
		return &dto.ChatResponse{Reply: fallbackReply}, nil
	}

	reply, err := s.generator.Generate(ctx, req.Message)
	if err != nil {
		s.logger.Error().Err(err).Msg("Assistant call failed")
		return &dto.ChatResponse{Reply: fallbackReply}, nil
	}

	if reply == "" {
		reply = emptyReplyText
	}

	return &dto.ChatResponse{Reply: reply}, nil
}
