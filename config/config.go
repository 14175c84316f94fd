package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Settings is the on-disk TOML shape of settings.toml.
type Settings struct {
	BackendURL string `toml:"backend_url"`
}

// Config is the resolved runtime configuration.
type Config struct {
	BackendURL string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) applyEnvOverrides() {
	if backend := os.Getenv("CHATUI_BACKEND_URL"); backend != "" {
		c.BackendURL = backend
	}
}

func CheckDebug() bool {
	debug := os.Getenv("CHATUI_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the debug log file when CHATUI_DEBUG is set. Nothing
// is ever logged to the TTY - that would corrupt the TUI.
func InitDebugLog() {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(GetConfigDir(), "debug.log")

	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (CHATUI_DEBUG=%s) ===", os.Getenv("CHATUI_DEBUG"))
}

// Load resolves configuration: defaults, then settings.toml, then
// environment overrides. A missing settings file is created with a
// commented template so users have something to edit.
func Load() (*Config, error) {
	cfg := &Config{
		BackendURL: "http://localhost:8000",
	}

	settings, err := LoadSettings()
	if err != nil {
		return nil, err
	}
	if settings.BackendURL != "" {
		cfg.BackendURL = settings.BackendURL
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}
