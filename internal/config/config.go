// Package config loads and stores the titlebar's user configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const (
	// AppName is used for the XDG config and state directories.
	AppName = "titlebar"

	// MaxLogMessages bounds the in-app log buffer.
	MaxLogMessages = 200

	// NormalFPS is the renderer frame rate cap.
	NormalFPS = 60

	// ButtonWidth is the width in cells of each titlebar button.
	ButtonWidth = 5

	// DefaultTitle is shown on the left of the bar.
	DefaultTitle = "Heroic Games Launcher"
)

// Duration is a time.Duration that reads and writes as "250ms" in TOML.
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" {
		d.Duration = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = v
	return nil
}

// UserConfig is the on-disk configuration.
type UserConfig struct {
	Appearance  AppearanceConfig    `toml:"appearance"`
	Labels      LabelsConfig        `toml:"labels"`
	Window      WindowConfig        `toml:"window"`
	Keybindings map[string][]string `toml:"keybindings"`
}

// AppearanceConfig controls how the bar looks.
type AppearanceConfig struct {
	Title      string `toml:"title"`
	Theme      string `toml:"theme"`       // bubbletint ID, empty for the built-in palette
	ASCIIOnly  bool   `toml:"ascii_only"`  // plain ASCII button glyphs
	ShowLabels bool   `toml:"show_labels"` // show the hovered button's label in the status line
}

// LabelsConfig holds the button tooltips.
type LabelsConfig struct {
	Minimize string `toml:"minimize"`
	Maximize string `toml:"maximize"`
	Restore  string `toml:"restore"`
	Close    string `toml:"close"`
}

// WindowConfig tunes the simulated window owner and the state query.
type WindowConfig struct {
	StartMaximized      bool     `toml:"start_maximized"`
	QueryDelay          Duration `toml:"query_delay"`
	EventDelay          Duration `toml:"event_delay"`
	QueryTimeout        Duration `toml:"query_timeout"` // 0 waits forever
	FailQuery           bool     `toml:"fail_query"`
	DoubleClickInterval Duration `toml:"double_click_interval"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *UserConfig {
	return &UserConfig{
		Appearance: AppearanceConfig{
			Title:      DefaultTitle,
			ShowLabels: true,
		},
		Labels: LabelsConfig{
			Minimize: "Minimize window",
			Maximize: "Maximize window",
			Restore:  "Restore window",
			Close:    "Close",
		},
		Window: WindowConfig{
			QueryDelay:          Duration{150 * time.Millisecond},
			EventDelay:          Duration{80 * time.Millisecond},
			DoubleClickInterval: Duration{400 * time.Millisecond},
		},
		Keybindings: DefaultKeybindings(),
	}
}

// GetConfigPath returns the config file path, creating its directory.
func GetConfigPath() (string, error) {
	path, err := xdg.ConfigFile(AppName + "/config.toml")
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return path, nil
}

// GetLogPath returns the log file path under the XDG state directory.
func GetLogPath() (string, error) {
	path, err := xdg.StateFile(AppName + "/" + AppName + ".log")
	if err != nil {
		return "", fmt.Errorf("resolve log path: %w", err)
	}
	return path, nil
}

// LoadUserConfig reads the config file, writing the defaults first if it
// does not exist yet.
func LoadUserConfig() (*UserConfig, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		cfg := DefaultConfig()
		if err := SaveConfig(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return LoadFromFile(path)
}

// LoadFromFile reads path over the defaults. Keys missing from the file keep
// their default values.
func LoadFromFile(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML over the defaults.
func Parse(data []byte) (*UserConfig, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	defaults := DefaultKeybindings()
	if cfg.Keybindings == nil {
		cfg.Keybindings = defaults
	}
	for action, keys := range defaults {
		if _, ok := cfg.Keybindings[action]; !ok {
			cfg.Keybindings[action] = keys
		}
	}

	if cfg.Appearance.Title == "" {
		cfg.Appearance.Title = DefaultTitle
	}
	return cfg, nil
}

// Marshal renders cfg as a commented TOML document.
func Marshal(cfg *UserConfig, path string) ([]byte, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# titlebar configuration\n")
	sb.WriteString("# Keybindings map an action to one or more keys.\n")
	sb.WriteString("# Durations use Go syntax, e.g. \"150ms\" or \"1s\".\n")
	if path != "" {
		sb.WriteString("#\n# Location: " + path + "\n")
	}
	sb.WriteString("\n")
	sb.Write(data)
	return []byte(sb.String()), nil
}

// SaveConfig writes cfg to path.
func SaveConfig(path string, cfg *UserConfig) error {
	data, err := Marshal(cfg, path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Overrides are command-line values that win over the file. Zero values
// leave the file setting alone.
type Overrides struct {
	Title          string
	ThemeName      string
	ASCIIOnly      bool
	StartMaximized bool
	FailQuery      bool
	QueryDelay     time.Duration
	EventDelay     time.Duration
	QueryTimeout   time.Duration
}

// ApplyOverrides merges o into cfg.
func ApplyOverrides(o Overrides, cfg *UserConfig) {
	if cfg == nil {
		return
	}
	if o.Title != "" {
		cfg.Appearance.Title = o.Title
	}
	if o.ThemeName != "" {
		cfg.Appearance.Theme = o.ThemeName
	}
	if o.ASCIIOnly {
		cfg.Appearance.ASCIIOnly = true
	}
	if o.StartMaximized {
		cfg.Window.StartMaximized = true
	}
	if o.FailQuery {
		cfg.Window.FailQuery = true
	}
	if o.QueryDelay > 0 {
		cfg.Window.QueryDelay.Duration = o.QueryDelay
	}
	if o.EventDelay > 0 {
		cfg.Window.EventDelay.Duration = o.EventDelay
	}
	if o.QueryTimeout > 0 {
		cfg.Window.QueryTimeout.Duration = o.QueryTimeout
	}
}
