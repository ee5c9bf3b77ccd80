package config

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the complete LeaseGuard configuration
// The structure matches the config.yaml file and can be overridden by environment variables

type Config struct {
	App AppConfig `json:"app" mapstructure:"app"`
}

// AppConfig contains the main application configuration

type AppConfig struct {
	Server  ServerConfig  `json:"server" mapstructure:"server"`
	Upload  UploadConfig  `json:"upload" mapstructure:"upload"`
	LLM     LLMConfig     `json:"llm" mapstructure:"llm"`
	Cache   CacheConfig   `json:"cache" mapstructure:"cache"`
	Archive ArchiveConfig `json:"archive" mapstructure:"archive"`
}

// ServerConfig contains server-specific configuration

type ServerConfig struct {
	Addr           string   `json:"addr" mapstructure:"addr"`
	Timeout        string   `json:"timeout" mapstructure:"timeout"`
	AllowedOrigins []string `json:"allowed_origins" mapstructure:"allowed_origins"`
}

// UploadConfig bounds what the analysis endpoint accepts. Minimum
// extracted-text length is enforced at this boundary, not by the
// scoring engine.

type UploadConfig struct {
	AllowedExts []string `json:"allowed_exts" mapstructure:"allowed_exts"`
	MaxMB       float64  `json:"max_mb" mapstructure:"max_mb"`
	MinTextLen  int      `json:"min_text_len" mapstructure:"min_text_len"`
	PreviewLen  int      `json:"preview_len" mapstructure:"preview_len"`
}

// LLMConfig contains the Gemini narrative configuration

type LLMConfig struct {
	Endpoint   string `json:"endpoint" mapstructure:"endpoint"`
	Model      string `json:"model" mapstructure:"model"`
	APIKey     string `json:"api_key" mapstructure:"api_key"`
	SecretFile string `json:"secret_file" mapstructure:"secret_file"`
}

// CacheConfig contains the analysis cache configuration

type CacheConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// ArchiveConfig contains the MinIO upload-archive configuration

type ArchiveConfig struct {
	Enabled   bool   `json:"enabled" mapstructure:"enabled"`
	Endpoint  string `json:"endpoint" mapstructure:"endpoint"`
	AccessKey string `json:"access_key" mapstructure:"access_key"`
	SecretKey string `json:"secret_key" mapstructure:"secret_key"`
	Bucket    string `json:"bucket" mapstructure:"bucket"`
	UseSSL    bool   `json:"use_ssl" mapstructure:"use_ssl"`
}

// Load loads the configuration from file and environment variables
func Load() (*Config, error) {
	// Load .env first (ignore error if not present)
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.leaseguard")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("LEASEGUARD")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found, using defaults")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Resolve paths (expand ~)
	cfg.App.Cache.Path = resolvePath(cfg.App.Cache.Path)

	// The API key is resolved exactly once here. Nothing downstream
	// re-reads the environment or the secret file.
	cfg.App.LLM.APIKey = resolveAPIKey(cfg.App.LLM)
	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("APP.SERVER.ADDR", ":8080")
	viper.SetDefault("APP.SERVER.TIMEOUT", "30s")
	viper.SetDefault("APP.SERVER.ALLOWED_ORIGINS", []string{"http://localhost:5173"})

	// Upload defaults
	viper.SetDefault("APP.UPLOAD.ALLOWED_EXTS", []string{".pdf", ".docx"})
	viper.SetDefault("APP.UPLOAD.MAX_MB", 15.0)
	viper.SetDefault("APP.UPLOAD.MIN_TEXT_LEN", 100)
	viper.SetDefault("APP.UPLOAD.PREVIEW_LEN", 500)

	// LLM defaults
	viper.SetDefault("APP.LLM.ENDPOINT", "https://generativelanguage.googleapis.com")
	viper.SetDefault("APP.LLM.MODEL", "gemini-2.5-flash")
	viper.SetDefault("APP.LLM.SECRET_FILE", "/etc/secrets/GEMINI_API_KEY")

	// Cache defaults
	viper.SetDefault("APP.CACHE.PATH", "~/.leaseguard/cache.db")

	// Archive defaults
	viper.SetDefault("APP.ARCHIVE.ENABLED", false)
	viper.SetDefault("APP.ARCHIVE.ENDPOINT", "127.0.0.1:9000")
	viper.SetDefault("APP.ARCHIVE.ACCESS_KEY", "minioadmin")
	viper.SetDefault("APP.ARCHIVE.SECRET_KEY", "minioadmin")
	viper.SetDefault("APP.ARCHIVE.BUCKET", "leaseguard-uploads")
	viper.SetDefault("APP.ARCHIVE.USE_SSL", false)
}

// resolveAPIKey applies the fixed fallback order for the Gemini key:
// explicit config, then GEMINI_API_KEY, then GOOGLE_API_KEY, then the
// secret file. An empty result means the narrative analysis is not
// configured; rule-based scoring still works.
func resolveAPIKey(llm LLMConfig) string {
	if llm.APIKey != "" {
		return llm.APIKey
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		return key
	}
	if llm.SecretFile != "" {
		if data, err := os.ReadFile(llm.SecretFile); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return ""
}

// resolvePath resolves ~ to home directory and cleans the path
func resolvePath(p string) string {
	if p == "" {
		return p
	}
	if p[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			p = filepath.Join(home, p[1:])
		}
	}
	return filepath.Clean(p)
}
