package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistone/campus/internal/app/models/dto"
)

// stubGenerator returns a canned reply or error
type stubGenerator struct {
	reply string
	err   error

	lastPrompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.reply, s.err
}

func TestAskReturnsUpstreamReply(t *testing.T) {
	gen := &stubGenerator{reply: "The library closes at 10 PM."}
	svc := NewChatService(gen, zerolog.Nop())

	resp, err := svc.Ask(context.Background(), &dto.ChatRequest{Message: "When does the library close?"})
	require.NoError(t, err)

	assert.Equal(t, "The library closes at 10 PM.", resp.Reply)
	assert.Equal(t, "When does the library close?", gen.lastPrompt)
}

func TestAskAbsorbsUpstreamError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	svc := NewChatService(gen, zerolog.Nop())

	resp, err := svc.Ask(context.Background(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, fallbackReply, resp.Reply)
}

func TestAskEmptyUpstreamReply(t *testing.T) {
	gen := &stubGenerator{reply: ""}
	svc := NewChatService(gen, zerolog.Nop())

	resp, err := svc.Ask(context.Background(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, emptyReplyText, resp.Reply)
}

func TestAskWithoutConfiguredAssistant(t *testing.T) {
	svc := NewChatService(nil, zerolog.Nop())

	resp, err := svc.Ask(context.Background(), &dto.ChatRequest{Message: "hello"})
	require.NoError(t, err)

	assert.Equal(t, fallbackReply, resp.Reply)
}
