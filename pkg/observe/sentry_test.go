package observe

import (
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const errorLine = `{"level":"error","msg":"failed to fetch forecast","error":"boom",` +
	`"caller_file":"assistant.go","caller_line":71,"caller_func":"Respond",` +
	`"timestamp":"2026-08-29T12-00-00.000"}`

func TestSentryHook_ForwardsInDeployedEnvironments(t *testing.T) {
	tests := []struct {
		appZone string
		want    bool
	}{
		{"production", true},
		{"development", true},
		{"", false},
		{"local", false},
		{"test", false},
	}

	for _, tt := range tests {
		h := &SentryHook{appZone: tt.appZone, appName: "weather-chat"}
		assert.Equal(t, tt.want, h.forwards(), "appZone: %q", tt.appZone)
	}
}

func TestSentryHook_ErrorLineBecomesEvent(t *testing.T) {
	h := &SentryHook{appZone: "production", appName: "weather-chat"}

	event := h.eventFromLine([]byte(errorLine))

	require.NotNil(t, event)
	assert.Equal(t, "failed to fetch forecast", event.Message)
	assert.Equal(t, "production", event.Environment)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "boom", event.Extra["Error"])
	assert.Equal(t, "assistant.go", event.Extra["CallerFile"])
	assert.Equal(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC), event.Timestamp)
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "boom", event.Exception[0].Value)
}

func TestSentryHook_InfoLineYieldsNoEvent(t *testing.T) {
	h := &SentryHook{appZone: "production", appName: "weather-chat"}

	line := `{"level":"info","msg":"parsed weather query","timestamp":"2026-08-29T12-00-00.000"}`

	assert.Nil(t, h.eventFromLine([]byte(line)))
}

func TestSentryHook_UnparsableLineYieldsNoEvent(t *testing.T) {
	h := &SentryHook{appZone: "production", appName: "weather-chat"}

	assert.Nil(t, h.eventFromLine([]byte("not json")))
	assert.Nil(t, h.eventFromLine([]byte(`{"level":"loud","msg":"x"}`)))
	assert.Nil(t, h.eventFromLine([]byte(`{"level":"error","msg":""}`)))
}

// Write never fails and always reports the full length, whatever the
// environment; the zap multi-writer depends on that.
func TestSentryHook_WriteAlwaysConsumesLine(t *testing.T) {
	for _, zone := range []string{"production", "local"} {
		h := &SentryHook{appZone: zone, appName: "weather-chat"}

		n, err := h.Write([]byte(errorLine))

		assert.NoError(t, err, "appZone: %q", zone)
		assert.Equal(t, len(errorLine), n, "appZone: %q", zone)
	}
}
