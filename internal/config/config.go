package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr             string        `yaml:"addr"`
	DataDir          string        `yaml:"data_dir"`
	DBPath           string        `yaml:"db_path"`
	StaticDir        string        `yaml:"static_dir"`
	LogLevel         string        `yaml:"log_level"`
	EnableSwagger    bool          `yaml:"enable_swagger"`
	GeminiAPIKey     string        `yaml:"gemini_api_key"`
	GeminiModel      string        `yaml:"gemini_model"`
	ElevenLabsAPIKey string        `yaml:"elevenlabs_api_key"`
	RedisURL         string        `yaml:"redis_url"`
	BulletinInterval time.Duration `yaml:"bulletin_interval"`
	NodeID           int64         `yaml:"node_id"`
}

const (
	defaultAddr             = ":8080"
	defaultDataDir          = "data"
	defaultDBName           = "safelink.db"
	defaultLogLevel         = "info"
	defaultGeminiModel      = "gemini-2.5-flash"
	defaultBulletinInterval = 30 * time.Minute
)

// Load builds the config from SAFELINK_* environment variables. When
// SAFELINK_CONFIG names a YAML file, its non-empty fields override the
// environment.
func Load() Config {
	dataDir := envOr("SAFELINK_DATA_DIR", defaultDataDir)
	dbPath := envOr("SAFELINK_DB_PATH", filepath.Join(dataDir, defaultDBName))
	staticDir := os.Getenv("SAFELINK_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}

	cfg := Config{
		Addr:             envOr("SAFELINK_ADDR", defaultAddr),
		DataDir:          filepath.Clean(dataDir),
		DBPath:           filepath.Clean(dbPath),
		StaticDir:        filepath.Clean(staticDir),
		LogLevel:         envOr("SAFELINK_LOG_LEVEL", defaultLogLevel),
		EnableSwagger:    envBool("SAFELINK_ENABLE_SWAGGER"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      envOr("GEMINI_MODEL", defaultGeminiModel),
		ElevenLabsAPIKey: os.Getenv("ELEVENLABS_API_KEY"),
		RedisURL:         os.Getenv("SAFELINK_REDIS_URL"),
		BulletinInterval: envDuration("SAFELINK_BULLETIN_INTERVAL", defaultBulletinInterval),
		NodeID:           envInt("SAFELINK_NODE_ID", 0),
	}

	if path := os.Getenv("SAFELINK_CONFIG"); path != "" {
		if overlay, err := LoadFile(path); err == nil {
			cfg = cfg.merge(overlay)
		}
	}
	return cfg
}

// LoadFile reads a YAML config file. Unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if strings.TrimSpace(c.DBPath) == "" {
		errs = append(errs, errors.New("db path is required"))
	}
	if c.BulletinInterval < time.Minute {
		errs = append(errs, fmt.Errorf("bulletin interval %s is below 1m", c.BulletinInterval))
	}
	if c.NodeID < 0 || c.NodeID > 1023 {
		errs = append(errs, fmt.Errorf("node id %d out of range [0, 1023]", c.NodeID))
	}
	if c.RedisURL != "" && !strings.HasPrefix(c.RedisURL, "redis://") && !strings.HasPrefix(c.RedisURL, "rediss://") {
		errs = append(errs, fmt.Errorf("redis url %q must start with redis:// or rediss://", c.RedisURL))
	}
	return errors.Join(errs...)
}

func (c Config) merge(o Config) Config {
	if o.Addr != "" {
		c.Addr = o.Addr
	}
	if o.DataDir != "" {
		c.DataDir = filepath.Clean(o.DataDir)
		if o.DBPath == "" {
			c.DBPath = filepath.Join(c.DataDir, defaultDBName)
		}
	}
	if o.DBPath != "" {
		c.DBPath = filepath.Clean(o.DBPath)
	}
	if o.StaticDir != "" {
		c.StaticDir = filepath.Clean(o.StaticDir)
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.EnableSwagger {
		c.EnableSwagger = true
	}
	if o.GeminiAPIKey != "" {
		c.GeminiAPIKey = o.GeminiAPIKey
	}
	if o.GeminiModel != "" {
		c.GeminiModel = o.GeminiModel
	}
	if o.ElevenLabsAPIKey != "" {
		c.ElevenLabsAPIKey = o.ElevenLabsAPIKey
	}
	if o.RedisURL != "" {
		c.RedisURL = o.RedisURL
	}
	if o.BulletinInterval > 0 {
		c.BulletinInterval = o.BulletinInterval
	}
	if o.NodeID != 0 {
		c.NodeID = o.NodeID
	}
	return c
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func envInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(os.Getenv(key)), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
