package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/weinrechner/pkg/logger"
)

func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Out: &buf})

	l.Info().Str("calculator", "blend").Msg("calculado")
	l.Debug().Msg("no debe salir")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "blend", entry["calculator"])
	assert.Equal(t, "calculado", entry["message"])
}

func TestNew_ConsolaEnDesarrollo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "development", Level: "debug", Out: &buf})
	l.Debug().Msg("hola")
	assert.Contains(t, buf.String(), "hola")
	assert.NotContains(t, buf.String(), `"message"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.Disabled, logger.ParseLevel("disabled"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("loud"))
}
