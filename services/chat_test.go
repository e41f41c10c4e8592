package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"codecraft-api/models"
)

type stubGenerator struct {
	reply string
	err   error
	calls int
	last  string
}

func (g *stubGenerator) GenerateText(_ context.Context, message string) (string, error) {
	g.calls++
	g.last = message
	return g.reply, g.err
}

func TestSendNormalizesReply(t *testing.T) {
	gen := &stubGenerator{reply: "**Halo!** Berikut contohnya:\n\n```js\nlet x = 1\n```"}
	svc := NewChatService(gen, zap.NewNop())

	msg, err := svc.Send(context.Background(), "Apa itu let?")
	require.NoError(t, err)
	assert.Equal(t, "Halo! Berikut contohnya:\n\nlet x = 1", msg.Content)
	assert.Equal(t, models.SenderAssistant, msg.Sender)
	assert.NotEmpty(t, msg.ID)
	assert.NotEmpty(t, msg.Timestamp)
}

func TestSendTrimsMessageBeforeDispatch(t *testing.T) {
	gen := &stubGenerator{reply: "Oke"}
	svc := NewChatService(gen, zap.NewNop())

	_, err := svc.Send(context.Background(), "  Apa itu closure?  ")
	require.NoError(t, err)
	assert.Equal(t, "Apa itu closure?", gen.last)
}

func TestSendRejectsEmptyMessageBeforeNetwork(t *testing.T) {
	gen := &stubGenerator{reply: "unreachable"}
	svc := NewChatService(gen, zap.NewNop())

	for _, message := range []string{"", "   ", "\n\t"} {
		_, err := svc.Send(context.Background(), message)
		assert.ErrorIs(t, err, ErrEmptyMessage, "message %q", message)
	}
	assert.Zero(t, gen.calls)
}

func TestSendWrapsProviderError(t *testing.T) {
	providerErr := errors.New("generate request failed with status: 503")
	gen := &stubGenerator{err: providerErr}
	svc := NewChatService(gen, zap.NewNop())

	_, err := svc.Send(context.Background(), "Halo")
	require.Error(t, err)
	assert.ErrorIs(t, err, providerErr)
	assert.NotErrorIs(t, err, ErrEmptyMessage)
}
