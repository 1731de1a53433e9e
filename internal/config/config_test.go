package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garik-/nibbler/pkg/midi"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("NIBBLER_CONFIG", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, midi.BackendNative, cfg.Decoder.Backend)
	assert.Equal(t, 0, cfg.Decoder.MaxPending)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "", cfg.Logging.File.Filename)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10, cfg.Scan.Parallel)
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "nibbler.toml", `
[decoder]
backend = "gomidi"
maxPending = 4096

[logging]
level = "debug"
format = "json"

[scan]
parallel = 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, midi.BackendGomidi, cfg.Decoder.Backend)
	assert.Equal(t, 4096, cfg.Decoder.MaxPending)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 4, cfg.Scan.Parallel)
}

func TestLoad_YAMLFromEnvPath(t *testing.T) {
	path := writeFile(t, "nibbler.yaml", "decoder:\n  maxPending: 64\n")
	t.Setenv("NIBBLER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Decoder.MaxPending)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeFile(t, "nibbler.toml", "[decoder]\nbackend = \"native\"\n")
	t.Setenv("NIBBLER_DECODER_BACKEND", "gomidi")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, midi.BackendGomidi, cfg.Decoder.Backend)
}

func TestLoad_UnknownBackend(t *testing.T) {
	path := writeFile(t, "nibbler.toml", "[decoder]\nbackend = \"midilib\"\n")

	_, err := Load(path)
	require.ErrorIs(t, err, midi.ErrUnknownBackend)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Decoder: DecoderConfig{Backend: midi.BackendNative, MaxPending: -1},
		Scan:    ScanConfig{Parallel: 1},
	}
	require.ErrorIs(t, cfg.Validate(), midi.ErrInvalidLimit)

	cfg.Decoder.MaxPending = 0
	cfg.Scan.Parallel = 0
	require.Error(t, cfg.Validate())

	cfg.Scan.Parallel = 1
	cfg.Metrics = MetricsConfig{Enable: true}
	require.Error(t, cfg.Validate())

	cfg.Metrics.Addr = ":9464"
	require.NoError(t, cfg.Validate())
}
