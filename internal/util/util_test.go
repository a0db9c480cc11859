package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadSecrets(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	t.Run("reads file from SECRETS_FILE", func(t *testing.T) {
		f := filepath.Join(dir, "secrets.json")
		require.NoError(t, os.WriteFile(f, []byte(`{"dataJockey":"key","db":{"host":"localhost","port":"5432","user":"u","password":"p","database":"d"}}`), 0o600))
		t.Setenv("SECRETS_FILE", f)
		t.Setenv("DATABASE_URL", "")

		s, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, "key", s.DataJockeyApiKey)
		require.Equal(t, "host=localhost port=5432 user=u password=p dbname=d sslmode=disable", s.ConnectionStr())
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("SECRETS_FILE", filepath.Join(dir, "missing.json"))
		t.Setenv("DATABASE_URL", "postgresql://localhost/fscore")

		s, err := LoadSecrets()
		require.NoError(t, err)
		require.Equal(t, "postgresql://localhost/fscore", s.ConnectionStr())
	})

	t.Run("nothing configured", func(t *testing.T) {
		t.Setenv("SECRETS_FILE", filepath.Join(dir, "missing.json"))
		t.Setenv("DATABASE_URL", "")

		_, err := LoadSecrets()
		require.Error(t, err)
	})
}
