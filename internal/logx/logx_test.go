package logx

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetMinLevel(LevelDebug)
	t.Cleanup(func() {
		SetOutput(io.Discard)
		SetMinLevel(LevelWarn)
	})
	return &buf
}

func TestEmitsJSONLine(t *testing.T) {
	buf := capture(t)
	Infof("hello %s", "world")

	var e entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	assert.Equal(t, "info", e.Level)
	assert.Equal(t, "hello world", e.Msg)
	assert.NotEmpty(t, e.TS)
}

func TestMinLevelFilters(t *testing.T) {
	buf := capture(t)
	SetMinLevel(LevelError)
	Warnf("quiet")
	assert.Empty(t, buf.String())
	Errorf("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestSecretsAreRedacted(t *testing.T) {
	buf := capture(t)
	RegisterSecret("tok-12345")
	Debugf("auth with tok-12345 done")
	assert.NotContains(t, buf.String(), "tok-12345")
	assert.Contains(t, buf.String(), "[REDACTED]")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "debug", LevelDebug.String())
	assert.Equal(t, "warn", LevelWarn.String())
}
