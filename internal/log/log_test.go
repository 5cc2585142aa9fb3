package log_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/gokuz/internal/log"
)

func TestNewLoggerJSON(t *testing.T) {
	t.Setenv("GOKUZ_LOG_LEVEL", "")

	var buf bytes.Buffer

	logger := log.NewLogger(log.Options{Level: "debug", Format: "json", Version: "v1.2.3", Out: &buf})
	assert.Equal(t, logrus.DebugLevel, logger.Logger.GetLevel())

	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "v1.2.3", line["version"])
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("GOKUZ_LOG_LEVEL", "error")

	logger := log.NewLogger(log.Options{Level: "debug"})
	assert.Equal(t, logrus.ErrorLevel, logger.Logger.GetLevel())

	t.Setenv("GOKUZ_LOG_LEVEL", "nonsense")

	logger = log.NewLogger(log.Options{Level: "bogus"})
	assert.Equal(t, logrus.InfoLevel, logger.Logger.GetLevel())
}
