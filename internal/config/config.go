package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr string
	StaticDir  string

	// Spool directories for transient per-request files.
	UploadsDir string
	OutputsDir string

	// S3-compatible blob store.
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3UseSSL      bool
	PublicBaseURL string

	// Image-edit provider.
	ProviderBaseURL string
	ProviderAPIKey  string
	ProviderModel   string
	ProviderSize    string
	ProviderTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ListenAddr: getEnv("PB_LISTEN_ADDR", ":3000"),
		StaticDir:  getEnv("PB_STATIC_DIR", "./web"),
		UploadsDir: getEnv("PB_UPLOADS_DIR", "images/uploads"),
		OutputsDir: getEnv("PB_OUTPUTS_DIR", "images/outputs"),

		S3Endpoint:    getEnv("PB_S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:   getEnv("PB_S3_ACCESS_KEY", ""),
		S3SecretKey:   getEnv("PB_S3_SECRET_KEY", ""),
		S3Bucket:      getEnv("PB_S3_BUCKET", "photobooth"),
		S3UseSSL:      getEnvBool("PB_S3_USE_SSL", false),
		PublicBaseURL: getEnv("PB_PUBLIC_BASE_URL", "http://localhost:9000"),

		ProviderBaseURL: getEnv("PB_PROVIDER_BASE_URL", "https://api.openai.com"),
		ProviderAPIKey:  getEnv("PB_PROVIDER_API_KEY", ""),
		ProviderModel:   getEnv("PB_PROVIDER_MODEL", "gpt-image-1"),
		ProviderSize:    getEnv("PB_PROVIDER_SIZE", "1024x1024"),
		ProviderTimeout: getEnvDuration("PB_PROVIDER_TIMEOUT", 120*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}
