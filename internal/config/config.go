package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Models  ModelsConfig
	Extract ExtractConfig
	CORS    CORSConfig
	Log     LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// ModelsConfig locates model artifacts.
type ModelsConfig struct {
	ManifestPath string `mapstructure:"manifest_path"`
}

// ExtractConfig holds document extraction settings.
type ExtractConfig struct {
	Concurrency    int   `mapstructure:"concurrency"`
	MaxFileSizeMB  int64 `mapstructure:"max_file_size_mb"`
	MatchThreshold int   `mapstructure:"match_threshold"`
	PreviewChars   int   `mapstructure:"preview_chars"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the ONCOSERVE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ONCOSERVE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// Model defaults
	v.SetDefault("models.manifest_path", "configs/models.yaml")

	// Extraction defaults
	v.SetDefault("extract.concurrency", 4)
	v.SetDefault("extract.max_file_size_mb", 20)
	v.SetDefault("extract.match_threshold", 85)
	v.SetDefault("extract.preview_chars", 300)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "ONCOSERVE_SERVER_PORT",
		"server.read_timeout":      "ONCOSERVE_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "ONCOSERVE_SERVER_WRITE_TIMEOUT",
		"server.environment":       "ONCOSERVE_SERVER_ENVIRONMENT",
		"models.manifest_path":     "ONCOSERVE_MODELS_MANIFEST_PATH",
		"extract.concurrency":      "ONCOSERVE_EXTRACT_CONCURRENCY",
		"extract.max_file_size_mb": "ONCOSERVE_EXTRACT_MAX_FILE_SIZE_MB",
		"extract.match_threshold":  "ONCOSERVE_EXTRACT_MATCH_THRESHOLD",
		"extract.preview_chars":    "ONCOSERVE_EXTRACT_PREVIEW_CHARS",
		"cors.allowed_origins":     "ONCOSERVE_CORS_ALLOWED_ORIGINS",
		"log.level":                "ONCOSERVE_LOG_LEVEL",
		"log.format":               "ONCOSERVE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ONCOSERVE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ONCOSERVE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Models = ModelsConfig{
		ManifestPath: v.GetString("models.manifest_path"),
	}
	cfg.Extract = ExtractConfig{
		Concurrency:    v.GetInt("extract.concurrency"),
		MaxFileSizeMB:  v.GetInt64("extract.max_file_size_mb"),
		MatchThreshold: v.GetInt("extract.match_threshold"),
		PreviewChars:   v.GetInt("extract.preview_chars"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	return cfg, nil
}
