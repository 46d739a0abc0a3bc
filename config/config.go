// Package config loads and saves rvsim's TOML configuration file, in the
// same shape the emulator's original config package used: one struct per
// concern, a platform-specific default path, and a DefaultConfig that
// supplies every field so a missing file never leaves a zero value live.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config is the top-level rvsim configuration.
type Config struct {
	// Execution settings (default batch size 5000, batch count 80).
	Execution struct {
		BatchSize   int    `toml:"batch_size"`
		MaxBatches  int    `toml:"max_batches"`
		ResetVector uint64 `toml:"reset_vector"`
		EnableTrace bool   `toml:"enable_trace"`
		EnableStats bool   `toml:"enable_stats"`
	} `toml:"execution"`

	// Debugger settings.
	Debugger struct {
		HistorySize   int  `toml:"history_size"`
		ShowRegisters bool `toml:"show_registers"`
		ShowCSRs      bool `toml:"show_csrs"`
		RefreshMillis int  `toml:"refresh_millis"`
	} `toml:"debugger"`

	// Trace settings.
	Trace struct {
		OutputFile    string `toml:"output_file"`
		IncludeCSRs   bool   `toml:"include_csrs"`
		IncludeFRegs  bool   `toml:"include_fregs"`
		MaxEntries    int    `toml:"max_entries"`
	} `toml:"trace"`

	// Statistics settings.
	Statistics struct {
		OutputFile string `toml:"output_file"`
		Format     string `toml:"format"` // json or text
	} `toml:"statistics"`
}

// DefaultConfig returns a configuration with spec-mandated defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Execution.BatchSize = 5000
	cfg.Execution.MaxBatches = 80
	cfg.Execution.ResetVector = 0x1000
	cfg.Execution.EnableTrace = false
	cfg.Execution.EnableStats = false

	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.ShowRegisters = true
	cfg.Debugger.ShowCSRs = true
	cfg.Debugger.RefreshMillis = 100

	cfg.Trace.OutputFile = "trace.log"
	cfg.Trace.IncludeCSRs = false
	cfg.Trace.IncludeFRegs = false
	cfg.Trace.MaxEntries = 1000000

	cfg.Statistics.OutputFile = "stats.json"
	cfg.Statistics.Format = "json"

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "rvsim")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "rvsim")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: DefaultConfig is returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("config: create %s: %w", path, err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}

	return nil
}
