package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/jask/themenu/internal/config"
)

func TestNewWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "themenu.log")
	log, closer, err := New(config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	require.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.WithField("screen", "menu").Info("screen changed")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "screen changed")
	require.Contains(t, string(data), "screen=menu")
}

func TestNewDiscardsWithoutPath(t *testing.T) {
	t.Parallel()

	log, closer, err := New(config.LogConfig{})
	require.NoError(t, err)
	require.Equal(t, logrus.InfoLevel, log.GetLevel())
	require.NoError(t, closer.Close())
}

func TestNewRejectsBadLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
}
