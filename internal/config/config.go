// Package config loads game settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/rubycrawl/internal/logger"
)

// TextSpeed controls how fast narrative text is revealed. An unset speed is
// chosen by the player when the session starts.
type TextSpeed string

const (
	SpeedUnset  TextSpeed = ""
	SpeedSlow   TextSpeed = "slow"
	SpeedNormal TextSpeed = "normal"
	SpeedFast   TextSpeed = "fast"
)

// Speeds lists the selectable speeds, slowest first.
var Speeds = []TextSpeed{SpeedSlow, SpeedNormal, SpeedFast}

// WordDelay returns the pause after each revealed word. Unset reads as normal.
func (s TextSpeed) WordDelay() time.Duration {
	switch s {
	case SpeedSlow:
		return 500 * time.Millisecond
	case SpeedFast:
		return 25 * time.Millisecond
	default:
		return 100 * time.Millisecond
	}
}

// Valid reports whether s is a known speed or unset.
func (s TextSpeed) Valid() bool {
	return s == SpeedUnset || s == SpeedSlow || s == SpeedNormal || s == SpeedFast
}

// Presenter names.
const (
	UITcell = "tcell"
	UIPlain = "plain"
)

// Environment variables that override the file.
const (
	EnvSeed          = "RUBYCRAWL_SEED"
	EnvTextSpeed     = "RUBYCRAWL_TEXT_SPEED"
	EnvUI            = "RUBYCRAWL_UI"
	EnvHoneycombKey  = "HONEYCOMB_RUBYCRAWL_API_KEY"
	EnvHoneycombData = "HONEYCOMB_RUBYCRAWL_DATASET"
)

// Config holds all game settings.
type Config struct {
	// Seed for random number generation. 0 means a time based seed.
	Seed int64 `yaml:"seed"`

	PlayerName string `yaml:"player_name"`

	// StarterItemPicks is how many starter items the player chooses.
	StarterItemPicks int `yaml:"starter_item_picks"`

	TextSpeed TextSpeed `yaml:"text_speed"`

	// UI selects the presenter: "tcell" (full screen) or "plain" (line mode).
	UI string `yaml:"ui"`

	// NarrativeDir replaces the built-in story text when set.
	NarrativeDir string `yaml:"narrative_dir"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
	Logging   logger.Config   `yaml:"logging"`
}

// TelemetryConfig holds trace export settings.
type TelemetryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"`
	Dataset  string `yaml:"dataset"`

	// APIKey only comes from the environment.
	APIKey string `yaml:"-"`
}

// DefaultConfig returns a Config with the standard game settings.
func DefaultConfig() *Config {
	return &Config{
		Seed:             0,
		PlayerName:       "Isolde",
		StarterItemPicks: 3,
		TextSpeed:        SpeedUnset,
		UI:               UITcell,
		Telemetry: TelemetryConfig{
			Enabled:  false,
			Endpoint: "https://api.honeycomb.io",
			Dataset:  "rubycrawl",
		},
		Logging: logger.DefaultConfig(),
	}
}

// Load reads configuration from a YAML file on top of the defaults.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return config, config.Validate()
}

// ApplyEnv overrides settings from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvTextSpeed); v != "" {
		c.TextSpeed = TextSpeed(strings.ToLower(v))
	}
	if v := getenv(EnvUI); v != "" {
		c.UI = strings.ToLower(v)
	}
	if v := getenv(EnvHoneycombData); v != "" {
		c.Telemetry.Dataset = v
	}
	if v := getenv(EnvHoneycombKey); v != "" {
		c.Telemetry.APIKey = v
		c.Telemetry.Enabled = true
	}
	return c.Validate()
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if !c.TextSpeed.Valid() {
		return fmt.Errorf("unknown text_speed %q (want slow, normal or fast)", c.TextSpeed)
	}
	if c.UI != UITcell && c.UI != UIPlain {
		return fmt.Errorf("unknown ui %q (want %s or %s)", c.UI, UITcell, UIPlain)
	}
	if c.StarterItemPicks < 0 {
		return fmt.Errorf("starter_item_picks must not be negative, got %d", c.StarterItemPicks)
	}
	if strings.TrimSpace(c.PlayerName) == "" {
		return fmt.Errorf("player_name must not be empty")
	}
	return nil
}

// OTLPHeaders returns the exporter headers for the configured API key, or ""
// when no key is set.
func (t TelemetryConfig) OTLPHeaders() string {
	if t.APIKey == "" {
		return ""
	}
	return fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", t.APIKey, t.Dataset)
}
