package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Run("tilde prefix", func(t *testing.T) {
		assert.Equal(t, filepath.Join(home, "data/foodsaver.db"), ExpandPath("~/data/foodsaver.db"))
	})

	t.Run("bare tilde", func(t *testing.T) {
		assert.Equal(t, home, ExpandPath("~"))
	})

	t.Run("environment variable", func(t *testing.T) {
		t.Setenv("FOODSAVER_TEST_DIR", "/tmp/pantry")
		assert.Equal(t, "/tmp/pantry/db", ExpandPath("$FOODSAVER_TEST_DIR/db"))
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Equal(t, "", ExpandPath(""))
	})
}
