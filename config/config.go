package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/tuio-hockey/constant"
	"github.com/lixenwraith/tuio-hockey/tracking"
)

// Environment keys that override the config file
const (
	EnvHost = "TUIO_HOST"
	EnvPort = "TUIO_PORT"
)

// DefaultEnvPath is the dotenv file consulted for overrides when present
const DefaultEnvPath = ".env"

// Config is the resolved startup configuration; it is not modified after Load
type Config struct {
	ConfigPath string
	TUIOHost   string
	TUIOPort   int

	// Updates is the number of tracker polls per frame
	Updates int
	// ReplayPath selects a pcap capture instead of the live UDP tracker
	ReplayPath string
	// Cursors drives paddles from 2Dcur touches instead of 2Dobj fiducials
	Cursors bool

	Windowed bool
	Mute     bool
	Debug    bool
}

// Load parses args (without the program name), then layers file, environment and flags.
// Every failure wraps ErrStartupConfig except flag.ErrHelp, which is returned as is.
func Load(args []string, stderr io.Writer) (*Config, error) {
	fset := flag.NewFlagSet("tuio-hockey", flag.ContinueOnError)
	fset.SetOutput(stderr)

	var (
		configPath = fset.String("config", DefaultConfigPath, "path to the JSON config file")
		envPath    = fset.String("env", DefaultEnvPath, "dotenv file with TUIO_HOST/TUIO_PORT overrides")
		host       = fset.String("ip", "", "TUIO listen address (overrides config and environment)")
		port       = fset.Int("port", 0, "TUIO listen port (overrides config and environment)")
		updates    = fset.Int("updates", constant.TrackingUpdatesPerFrame, "tracker polls per frame")
		replay     = fset.String("replay", "", "replay TUIO traffic from a pcap capture instead of listening")
		cursors    = fset.Bool("cursors", false, "drive paddles from 2Dcur touch sessions instead of fiducials")
		windowed   = fset.Bool("windowed", false, "start in the 800x600 window instead of fullscreen")
		mute       = fset.Bool("mute", false, "disable sound")
		debug      = fset.Bool("debug", false, "write logs to logs/tuio-hockey.log")
	)

	if err := fset.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStartupConfig, err)
	}
	if fset.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments %v", ErrStartupConfig, fset.Args())
	}

	file, err := LoadFile(*configPath)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ConfigPath: *configPath,
		TUIOHost:   *file.TUIOHost,
		TUIOPort:   int(*file.TUIOPort),
		Updates:    *updates,
		ReplayPath: *replay,
		Cursors:    *cursors,
		Windowed:   *windowed,
		Mute:       *mute,
		Debug:      *debug,
	}

	if err := cfg.applyEnv(*envPath); err != nil {
		return nil, err
	}

	// Only flags the user actually passed override the file and environment
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ip":
			cfg.TUIOHost = *host
		case "port":
			cfg.TUIOPort = *port
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStartupConfig, err)
	}
	return cfg, nil
}

// applyEnv merges process environment over the dotenv file, then over the config
func (c *Config) applyEnv(envPath string) error {
	dotenv := map[string]string{}
	if envPath != "" {
		vals, err := godotenv.Read(envPath)
		switch {
		case err == nil:
			dotenv = vals
		case errors.Is(err, fs.ErrNotExist):
		default:
			return fmt.Errorf("%w: failed to read %s: %w", ErrStartupConfig, envPath, err)
		}
	}

	if v := getEnv(EnvHost, dotenv); v != "" {
		c.TUIOHost = v
	}
	if v := getEnv(EnvPort, dotenv); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrStartupConfig, EnvPort, v)
		}
		c.TUIOPort = p
	}
	return nil
}

// getEnv prefers the process environment over dotenv values
func getEnv(key string, dotenv map[string]string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return dotenv[key]
}

// Validate checks the merged values
func (c *Config) Validate() error {
	if c.TUIOHost == "" {
		return errors.New("TUIO host must not be empty")
	}
	if err := validPort(c.TUIOPort); err != nil {
		return err
	}
	if c.Updates < 1 {
		return fmt.Errorf("updates must be at least 1, got %d", c.Updates)
	}
	return nil
}

// Profile is the TUIO profile that moves the paddles
func (c *Config) Profile() tracking.Profile {
	if c.Cursors {
		return tracking.ProfileCursor
	}
	return tracking.ProfileObject
}

// Tracking derives the tracker client settings
func (c *Config) Tracking() *tracking.Config {
	tc := tracking.DefaultConfig()
	tc.Host = c.TUIOHost
	tc.Port = c.TUIOPort
	return tc
}
