package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Stand-api/pkg/logger"
)

func TestNew_JSONConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", App: "stand-api", Output: &buf})

	l.Debug().Msg("no se emite")
	comp := l.Component("http")
	comp.Info().Str("stand", "Lemons R Us").Msg("hola")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "una sola línea JSON: %s", buf.String())
	assert.Equal(t, "hola", entry["message"])
	assert.Equal(t, "stand-api", entry["app"])
	assert.Equal(t, "http", entry["component"])
	assert.Equal(t, "Lemons R Us", entry["stand"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("ruido"))
}
