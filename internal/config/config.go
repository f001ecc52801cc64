package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding an optional YAML config
// file path.
const FileEnv = "DOCDESK_CONFIG"

type Config struct {
	Port string `yaml:"port"`

	// Document store
	DocsPath  string `yaml:"docs_path"`
	DocsURL   string `yaml:"docs_url"`
	WatchDocs bool   `yaml:"watch_docs"`

	// Static client
	PublicDir string `yaml:"public_dir"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Desktop sessions
	ViewportWidth    int      `yaml:"viewport_width"`
	ViewportHeight   int      `yaml:"viewport_height"`
	MinWindowWidth   int      `yaml:"min_window_width"`
	MinWindowHeight  int      `yaml:"min_window_height"`
	MaxNotices       int      `yaml:"max_notices"`
	WSOriginPatterns []string `yaml:"ws_origin_patterns"`

	// Timeouts
	FetchTimeout    time.Duration `yaml:"fetch_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	LogLevel string `yaml:"log_level"`
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Port:            "8080",
		DocsPath:        "data/docs.json",
		WatchDocs:       true,
		PublicDir:       "public",
		MaxUploadBytes:  10 << 20, // 10MB
		ViewportWidth:   1280,
		ViewportHeight:  800,
		MinWindowWidth:  150,
		MinWindowHeight: 100,
		MaxNotices:      5,
		FetchTimeout:    10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (if any), then the environment. Environment values win.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv(FileEnv)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)

	cfg.DocsPath = envOr("DOCS_PATH", cfg.DocsPath)
	cfg.DocsURL = envOr("DOCS_URL", cfg.DocsURL)
	cfg.WatchDocs = envBool("WATCH_DOCS", cfg.WatchDocs)

	cfg.PublicDir = envOr("PUBLIC_DIR", cfg.PublicDir)

	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)

	cfg.ViewportWidth = envInt("VIEWPORT_WIDTH", cfg.ViewportWidth)
	cfg.ViewportHeight = envInt("VIEWPORT_HEIGHT", cfg.ViewportHeight)
	cfg.MinWindowWidth = envInt("MIN_WINDOW_WIDTH", cfg.MinWindowWidth)
	cfg.MinWindowHeight = envInt("MIN_WINDOW_HEIGHT", cfg.MinWindowHeight)
	cfg.MaxNotices = envInt("MAX_NOTICES", cfg.MaxNotices)
	cfg.WSOriginPatterns = envList("WS_ORIGIN_PATTERNS", cfg.WSOriginPatterns)

	cfg.FetchTimeout = envDuration("FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.ShutdownTimeout = envDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)

	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)

	if cfg.MaxNotices <= 0 {
		cfg.MaxNotices = 5
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 10 << 20
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	} else if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	if c.DocsPath == "" && c.DocsURL == "" {
		errs = append(errs, errors.New("one of DOCS_PATH or DOCS_URL is required"))
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.ViewportWidth, c.ViewportHeight))
	}
	if c.MinWindowWidth <= 0 || c.MinWindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("minimum window size %dx%d must be positive", c.MinWindowWidth, c.MinWindowHeight))
	}
	if c.MinWindowWidth > c.ViewportWidth || c.MinWindowHeight > c.ViewportHeight {
		errs = append(errs, errors.New("minimum window size exceeds the viewport"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// envList splits a comma-separated value, dropping empty items.
func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
