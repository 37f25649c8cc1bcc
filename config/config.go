package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// ProviderSettings is the [provider] table of settings.toml.
type ProviderSettings struct {
	ID      string `toml:"id"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
}

// Settings mirrors settings.toml.
type Settings struct {
	Provider ProviderSettings `toml:"provider"`
}

// Config is the resolved runtime configuration.
type Config struct {
	ProviderID string
	Model      string
	BaseURL    string
}

// DefaultProviderID is the generation service used when nothing is configured.
const DefaultProviderID = "gemini"

var Debug = false
var DebugLog *log.Logger

// ErrorLog receives generation failures. It is always opened by InitLogs.
var ErrorLog *log.Logger

// apiKeyEnv maps provider IDs to their provider-specific credential variable.
var apiKeyEnv = map[string]string{
	"gemini":     "GEMINI_API_KEY",
	"google":     "GEMINI_API_KEY",
	"openai":     "OPENAI_API_KEY",
	"anthropic":  "ANTHROPIC_API_KEY",
	"claude":     "ANTHROPIC_API_KEY",
	"openrouter": "OPENROUTER_API_KEY",
}

// APIKey resolves the service credential from the environment.
// API_KEY wins over the provider-specific variable. Ollama needs no key.
func (c *Config) APIKey() string {
	if key := os.Getenv("API_KEY"); key != "" {
		return key
	}
	if name, ok := apiKeyEnv[c.ProviderID]; ok {
		return os.Getenv(name)
	}
	return ""
}

// APIKeyEnvName returns the provider-specific credential variable, or "" if
// the provider needs none.
func (c *Config) APIKeyEnvName() string {
	return apiKeyEnv[c.ProviderID]
}

func (c *Config) applyEnvOverrides() {
	if id := os.Getenv("BITRPC_PROVIDER"); id != "" && id != c.ProviderID {
		// The file's model belongs to the file's provider
		c.ProviderID = id
		c.Model = ""
		c.BaseURL = ""
	}
	if model := os.Getenv("BITRPC_MODEL"); model != "" {
		c.Model = model
	}
	if baseURL := os.Getenv("BITRPC_BASE_URL"); baseURL != "" {
		c.BaseURL = baseURL
	}
}

func CheckDebug() bool {
	debug := os.Getenv("BITRPC_DEBUG")
	return debug == "true" || debug == "1"
}

// InitLogs opens errors.log (always) and debug.log (when BITRPC_DEBUG is set)
// under logDir. Failures are reported on stderr and leave the logger discarding.
func InitLogs(logDir string) {
	ErrorLog = log.New(io.Discard, "", 0)

	if err := EnsureDir(logDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create log directory %s: %v\n", logDir, err)
		return
	}

	errPath := filepath.Join(logDir, "errors.log")
	f, err := os.OpenFile(errPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open error log at %s: %v\n", errPath, err)
	} else {
		ErrorLog = log.New(f, "", log.Ldate|log.Ltime)
	}

	InitDebugLog(logDir)
}

func InitDebugLog(logDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(logDir, "debug.log")

	// 0600: prompts and responses end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (BITRPC_DEBUG=%s) ===", os.Getenv("BITRPC_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

// Load reads settings.toml (writing the template on first run) and applies
// environment overrides on top.
func Load() (*Config, error) {
	return LoadFrom(GetSettingsFilePath())
}

// LoadFrom is Load with an explicit settings path.
func LoadFrom(settingsPath string) (*Config, error) {
	settings, err := LoadSettings(settingsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := &Config{
		ProviderID: settings.Provider.ID,
		Model:      settings.Provider.Model,
		BaseURL:    settings.Provider.BaseURL,
	}
	cfg.applyEnvOverrides()

	if cfg.ProviderID == "" {
		cfg.ProviderID = DefaultProviderID
	}

	return cfg, nil
}
