package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Log      LogConfig
	Document DocumentConfig
	S3       S3Config
}

// DocumentConfig holds reference tariff document settings.
type DocumentConfig struct {
	// Provider selects the document store backend: "fs" or "s3".
	Provider string `mapstructure:"provider"`
	// Root is the directory holding extracted document text (fs provider).
	Root string `mapstructure:"root"`
	// ID identifies the reference document within the store: a filename for
	// the fs provider, an object key for s3.
	ID string `mapstructure:"id"`
}

// S3Config holds AWS S3 settings for the s3 document store.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the MOOGSHIP_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MOOGSHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Document defaults
	v.SetDefault("document.provider", "fs")
	v.SetDefault("document.root", "data/documents")
	v.SetDefault("document.id", "htsus_general_rates.txt")

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "moogship-tariff-documents")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"document.provider": "MOOGSHIP_DOCUMENT_PROVIDER",
		"document.root":     "MOOGSHIP_DOCUMENT_ROOT",
		"document.id":       "MOOGSHIP_DOCUMENT_ID",
		"s3.region":         "MOOGSHIP_S3_REGION",
		"s3.bucket":         "MOOGSHIP_S3_BUCKET",
		"s3.endpoint":       "MOOGSHIP_S3_ENDPOINT",
		"s3.access_key":     "MOOGSHIP_S3_ACCESS_KEY",
		"s3.secret_key":     "MOOGSHIP_S3_SECRET_KEY",
		"log.level":         "MOOGSHIP_LOG_LEVEL",
		"log.format":        "MOOGSHIP_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}
	cfg.Document = DocumentConfig{
		Provider: v.GetString("document.provider"),
		Root:     v.GetString("document.root"),
		ID:       v.GetString("document.id"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
