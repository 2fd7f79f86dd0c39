package config

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/tuio-hockey/tracking"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// load runs Load with an isolated env file and no TUIO_* variables
func load(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	t.Setenv(EnvHost, "")
	t.Setenv(EnvPort, "")
	return Load(args, &bytes.Buffer{})
}

func TestLoadFilePortForms(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    int
		wantErr bool
	}{
		{"number", `{"tuio_host": "0.0.0.0", "tuio_port": 3333}`, 3333, false},
		{"numeric string", `{"tuio_host": "0.0.0.0", "tuio_port": "3334"}`, 3334, false},
		{"padded string", `{"tuio_host": "0.0.0.0", "tuio_port": " 3335 "}`, 3335, false},
		{"word", `{"tuio_host": "0.0.0.0", "tuio_port": "three"}`, 0, true},
		{"out of range", `{"tuio_host": "0.0.0.0", "tuio_port": 70000}`, 0, true},
		{"missing port", `{"tuio_host": "0.0.0.0"}`, 0, true},
		{"missing host", `{"tuio_port": 3333}`, 0, true},
		{"empty host", `{"tuio_host": " ", "tuio_port": 3333}`, 0, true},
		{"malformed", `{"tuio_host": `, 0, true},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "cfg"+string(rune('a'+i))+".json", tt.content)
			f, err := LoadFile(path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrStartupConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(*f.TUIOPort))
		})
	}
}

func TestLoadFileRejectsPath(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, ErrStartupConfig)

	yaml := writeFile(t, dir, "config.yaml", "tuio_host: x")
	_, err = LoadFile(yaml)
	assert.ErrorIs(t, err, ErrStartupConfig)

	big := writeFile(t, dir, "big.json", `{"tuio_host": "`+strings.Repeat("a", maxFileSize)+`", "tuio_port": 1}`)
	_, err = LoadFile(big)
	assert.ErrorIs(t, err, ErrStartupConfig)
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"tuio_host": "127.0.0.1", "tuio_port": 3333}`)

	cfg, err := load(t, "--config", cfgPath, "--env", filepath.Join(dir, "none.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.TUIOHost)
	assert.Equal(t, 3333, cfg.TUIOPort)
	assert.Equal(t, 1, cfg.Updates)
	assert.False(t, cfg.Windowed)
	assert.False(t, cfg.Mute)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.ReplayPath)
	assert.False(t, cfg.Cursors)
	assert.Equal(t, tracking.ProfileObject, cfg.Profile())

	tc := cfg.Tracking()
	assert.Equal(t, "127.0.0.1", tc.Host)
	assert.Equal(t, 3333, tc.Port)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"tuio_host": "10.0.0.1", "tuio_port": 3333}`)
	envPath := writeFile(t, dir, "test.env", "TUIO_HOST=10.0.0.2\nTUIO_PORT=4444\n")

	// dotenv beats the file
	cfg, err := load(t, "--config", cfgPath, "--env", envPath)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2", cfg.TUIOHost)
	assert.Equal(t, 4444, cfg.TUIOPort)

	// process environment beats dotenv
	t.Setenv(EnvPort, "5555")
	cfg, err = Load([]string{"--config", cfgPath, "--env", envPath}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 5555, cfg.TUIOPort)

	// flags beat everything
	cfg, err = Load([]string{"--config", cfgPath, "--env", envPath, "--ip", "10.0.0.3", "--port", "6666"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.3", cfg.TUIOHost)
	assert.Equal(t, 6666, cfg.TUIOPort)
}

func TestLoadFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"tuio_host": "0.0.0.0", "tuio_port": "3333"}`)

	cfg, err := load(t, "--config", cfgPath, "--env", "",
		"--updates", "4", "--replay", "session.pcap", "--windowed", "--mute", "--debug", "--cursors")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Updates)
	assert.Equal(t, "session.pcap", cfg.ReplayPath)
	assert.True(t, cfg.Windowed)
	assert.True(t, cfg.Mute)
	assert.True(t, cfg.Debug)
	assert.Equal(t, tracking.ProfileCursor, cfg.Profile())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.json", `{"tuio_host": "0.0.0.0", "tuio_port": 3333}`)
	badEnv := writeFile(t, dir, "bad.env", "TUIO_PORT=abc\n")

	tests := []struct {
		name string
		args []string
	}{
		{"missing file", []string{"--config", filepath.Join(dir, "nope.json")}},
		{"zero updates", []string{"--config", cfgPath, "--updates", "0"}},
		{"bad port flag", []string{"--config", cfgPath, "--port", "99999"}},
		{"bad env port", []string{"--config", cfgPath, "--env", badEnv}},
		{"unknown flag", []string{"--config", cfgPath, "--fast"}},
		{"stray argument", []string{"--config", cfgPath, "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args...)
			assert.ErrorIs(t, err, ErrStartupConfig)
		})
	}
}

func TestLoadHelp(t *testing.T) {
	var out bytes.Buffer
	_, err := Load([]string{"-h"}, &out)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, out.String(), "-replay")
}
