package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := New(buf, zerolog.WarnLevel)

	logger.Info().Msg("hidden")
	logger.Warn().Str("path", "/footer").Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "/footer")
}

func TestLoad(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		_, err := Load("")
		require.NoError(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not read log config")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "log.yaml")
		require.NoError(t, os.WriteFile(path, []byte("writers: [unterminated"), 0o600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse log config")
	})
}
