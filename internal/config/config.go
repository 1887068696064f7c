package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultBaseURL        = "http://localhost:8080/api/tasks"
	DefaultTimeoutSeconds = 30
)

type Keymap struct {
	Quit       string `toml:"quit"`
	Add        string `toml:"add"`
	Up         string `toml:"up"`
	Down       string `toml:"down"`
	Edit       string `toml:"edit"`
	Delete     string `toml:"delete"`
	Status     string `toml:"status"`
	Search     string `toml:"search"`
	Filter     string `toml:"filter"`
	Sort       string `toml:"sort"`
	Refresh    string `toml:"refresh"`
	PagePrev   string `toml:"page_prev"`
	PageNext   string `toml:"page_next"`
	Confirm    string `toml:"confirm"`
	Cancel     string `toml:"cancel"`
	DismissMsg string `toml:"dismiss_msg"`
}

type Config struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	DebugLog       string `toml:"debug_log"`
	Keys           Keymap `toml:"keys"`
}

// ResolveConfigPath picks the config location: $TASKGER_CONFIG if set, else
// the user config dir, else the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv("TASKGER_CONFIG"); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "taskger", DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

// LoadOrCreate reads the config at path, writing the defaults first if the
// file does not exist yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
		Keys: Keymap{
			Quit:       "q",
			Add:        "a",
			Up:         "k",
			Down:       "j",
			Edit:       "e",
			Delete:     "d",
			Status:     "s",
			Search:     "/",
			Filter:     "f",
			Sort:       "o",
			Refresh:    "r",
			PagePrev:   "h",
			PageNext:   "l",
			Confirm:    "enter",
			Cancel:     "esc",
			DismissMsg: "x",
		},
	}
}
