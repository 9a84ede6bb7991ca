package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestChainEventsLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core), "svc", "test")

	l.ChainTxSubmitted(context.Background(), "user-1", "req-1", "gps_payment", "createPayment", "0xabc")
	l.ChainTxFailed(context.Background(), "user-1", "req-2", "gps_oracle", "updateLocation", errors.New("nonce too low"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, string(EventChainTxSubmitted), entries[0].Message)
	assert.Equal(t, "user-1", entries[0].ContextMap()["subject_value"])
	assert.Contains(t, entries[0].ContextMap()["details"], "0xabc")

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Contains(t, entries[1].ContextMap()["details"], "nonce too low")
}

func TestAddressSubjectIsMasked(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := New(zap.New(core), "svc", "test")

	l.Log(context.Background(), Event{
		Event:        EventMediatorStatus,
		SubjectType:  "address",
		SubjectValue: "0x52908400098527886E0F7030069857D2E4169EE7",
	})

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "0x5290...9EE7", logs.All()[0].ContextMap()["subject_value"])
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
	assert.Equal(t, "***", MaskEmail("nope"))
}

func TestDefaultIsUsableBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Default().RateLimitTriggered(context.Background(), "127.0.0.1", "", "/v1/chain/payments")
	})
}
