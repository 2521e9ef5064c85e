package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Rrens/content-portal/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	require.NoError(t, Setup(config.LoggingConfig{Level: "debug"}, "development"))
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	require.NoError(t, Setup(config.LoggingConfig{Level: "nonsense"}, "production"))
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestSetup_WritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "portal.log")

	err := Setup(config.LoggingConfig{Level: "info", File: file, MaxAge: time.Hour, Rotation: time.Hour}, "production")
	require.NoError(t, err)

	log.Info().Str("component", "test").Msg("hello")

	matches, err := filepath.Glob(file + ".*")
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}
