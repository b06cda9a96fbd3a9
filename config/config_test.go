package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so Load sees only the file
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ECORING_AUDIO_ENABLED", "ECORING_MASTER_VOLUME", "ECORING_SAMPLE_RATE", "ECORING_JOURNAL"} {
		t.Setenv(k, "")
	}
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.5, cfg.Audio.MasterVolume)
	assert.True(t, cfg.Game.Adjacency)
	assert.False(t, cfg.Game.Sequence)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
audio:
  master_volume: 0.25
game:
  sequence: true
  fps: 30
journal:
  path: /tmp/j.db
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Audio.MasterVolume)
	assert.True(t, cfg.Game.Sequence)
	assert.Equal(t, 30, cfg.Game.FPS)
	assert.Equal(t, "/tmp/j.db", cfg.Journal.Path)
	// Untouched keys keep defaults
	assert.Equal(t, 48000, cfg.Audio.SampleRate)
	assert.True(t, cfg.Game.Adjacency)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("audio: [1, 2"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  fps: 0\n"), 0o644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(envMap(map[string]string{
		"ECORING_AUDIO_ENABLED": "false",
		"ECORING_MASTER_VOLUME": "150",
		"ECORING_SAMPLE_RATE":   "44100",
		"ECORING_JOURNAL":       "/var/tmp/x.db",
	}))

	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, "/var/tmp/x.db", cfg.Journal.Path)
}

func TestApplyEnvIgnoresGarbage(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(envMap(map[string]string{
		"ECORING_AUDIO_ENABLED": "maybe",
		"ECORING_MASTER_VOLUME": "loud",
		"ECORING_SAMPLE_RATE":   "-5",
	}))

	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config changed (-want +got):\n%s", diff)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Game.Sequence = true
	cfg.Audio.MasterVolume = 0.8
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}
