package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Endpoint string `json:"endpoint"`
	Timeout  int    `json:"timeout"`
}

func TestReadMergesLocalOverride(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "service.json5")
	require.NoError(t, os.WriteFile(base, []byte(`{
		// comments are allowed
		endpoint: "https://example.com",
		timeout: 30,
	}`), 0600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "service.local.json5"),
		[]byte(`{endpoint: "http://localhost:8080"}`), 0600,
	))

	config, err := Read[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", config.Endpoint)
	require.Equal(t, 30, config.Timeout)
}

func TestReadBaseOnly(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "service.json5")
	require.NoError(t, os.WriteFile(base, []byte(`{endpoint: "https://example.com"}`), 0600))

	config, err := Read[testConfig](base)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", config.Endpoint)
}

func TestReadMissing(t *testing.T) {
	_, err := Read[testConfig](filepath.Join(t.TempDir(), "absent.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
