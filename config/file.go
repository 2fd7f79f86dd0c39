// Package config assembles the startup configuration from the JSON file,
// the environment and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrStartupConfig marks any configuration problem that prevents the game from starting
var ErrStartupConfig = errors.New("startup configuration error")

// DefaultConfigPath is the file read when --config is not given
const DefaultConfigPath = "config.json"

const maxFileSize = 1 * 1024 * 1024 // 1MB

// Port is a UDP port that decodes from a JSON number or a numeric string
type Port int

func (p *Port) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("port %s is not an integer", string(data))
	}
	*p = Port(n)
	return nil
}

// File is the on-disk schema; both keys are required
type File struct {
	TUIOHost *string `json:"tuio_host"`
	TUIOPort *Port   `json:"tuio_port"`
}

// LoadFile reads and validates a JSON config file.
// The file must have a .json extension and be under 1MB.
func LoadFile(path string) (*File, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("%w: config file must have .json extension, got %q", ErrStartupConfig, ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat config file: %w", ErrStartupConfig, err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("%w: config file too large: %d bytes (max %d)", ErrStartupConfig, fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrStartupConfig, err)
	}

	f := &File{}
	if err := json.Unmarshal(data, f); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config JSON: %w", ErrStartupConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration in %s: %w", ErrStartupConfig, cleanPath, err)
	}
	return f, nil
}

// Validate checks required keys and value ranges
func (f *File) Validate() error {
	if f.TUIOHost == nil {
		return errors.New("missing required key tuio_host")
	}
	if f.TUIOPort == nil {
		return errors.New("missing required key tuio_port")
	}
	if strings.TrimSpace(*f.TUIOHost) == "" {
		return errors.New("tuio_host must not be empty")
	}
	if err := validPort(int(*f.TUIOPort)); err != nil {
		return fmt.Errorf("tuio_port: %w", err)
	}
	return nil
}

func validPort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", p)
	}
	return nil
}
