// Package config provides application configuration through environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	apperrors "github.com/allisson/tokenguard/internal/errors"
	protectionDomain "github.com/allisson/tokenguard/internal/protection/domain"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the API server binds to.
	ServerHost string
	// ServerPort is the port the API server listens on.
	ServerPort int
	// ShutdownTimeout bounds graceful shutdown of both servers.
	ShutdownTimeout time.Duration

	// LogLevel is the logging level ("debug", "info", "warn", "error").
	LogLevel string

	// ValidationKey is a hex key or "AutoGenerate[,IsolateApps]".
	ValidationKey string
	// DecryptionKey is a hex key or "AutoGenerate[,IsolateApps]".
	DecryptionKey string
	// ValidationAlgorithm is one of MD5, HMACSHA1, TripleDES, AES.
	ValidationAlgorithm string
	// DecryptionAlgorithm is one of Auto, DES, 3DES, AES.
	DecryptionAlgorithm string
	// IVType is the IV strategy for confidential tokens: none, random or content-hash.
	IVType string
	// AppIsolationID binds key material to one logical application.
	AppIsolationID string
	// AutoGenerateSeed is a hex seed from which auto-generated keys are derived.
	AutoGenerateSeed string

	// KMSKeyURI opens a gocloud.dev/secrets keeper; hex keys are then treated as sealed ciphertexts.
	KMSKeyURI string

	// RateLimitDecodeEnabled enables the per-IP limiter on decode endpoints.
	RateLimitDecodeEnabled bool
	// RateLimitDecodeRequestsPerSec is the sustained request rate per IP.
	RateLimitDecodeRequestsPerSec float64
	// RateLimitDecodeBurst is the burst size per IP.
	RateLimitDecodeBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace prefixes every metric name.
	MetricsNamespace string
	// MetricsPort is the port of the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	loadDotEnv()

	return &Config{
		// Server
		ServerHost:      env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:      env.GetInt("SERVER_PORT", 8080),
		ShutdownTimeout: env.GetDuration("SHUTDOWN_TIMEOUT_SECONDS", 10, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Token protection
		ValidationKey:       env.GetString("VALIDATION_KEY", protectionDomain.AutoGenerate),
		DecryptionKey:       env.GetString("DECRYPTION_KEY", protectionDomain.AutoGenerate),
		ValidationAlgorithm: env.GetString("VALIDATION_ALGORITHM", "HMACSHA1"),
		DecryptionAlgorithm: env.GetString("DECRYPTION_ALGORITHM", "Auto"),
		IVType:              env.GetString("IV_TYPE", "random"),
		AppIsolationID:      env.GetString("APP_ISOLATION_ID", ""),
		AutoGenerateSeed:    env.GetString("AUTO_GENERATE_SEED", ""),

		// KMS
		KMSKeyURI: env.GetString("KMS_KEY_URI", ""),

		// Rate limiting for decode endpoints (IP-based)
		RateLimitDecodeEnabled:        env.GetBool("RATE_LIMIT_DECODE_ENABLED", true),
		RateLimitDecodeRequestsPerSec: env.GetFloat64("RATE_LIMIT_DECODE_REQUESTS_PER_SEC", 10.0),
		RateLimitDecodeBurst:          env.GetInt("RATE_LIMIT_DECODE_BURST", 20),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", false),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", ""),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "tokenguard"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// Validate checks ranges and enumerations that do not need key material.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.ServerPort, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.MetricsPort, validation.When(c.MetricsEnabled,
			validation.Required, validation.Min(1), validation.Max(65535))),
		validation.Field(&c.ShutdownTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.RateLimitDecodeRequestsPerSec, validation.When(c.RateLimitDecodeEnabled,
			validation.Required, validation.Min(0.0))),
		validation.Field(&c.RateLimitDecodeBurst, validation.When(c.RateLimitDecodeEnabled,
			validation.Required, validation.Min(1))),
		validation.Field(&c.AutoGenerateSeed, validation.By(isHex)),
	)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}
	return nil
}

// ProtectorConfig parses the token protection settings.
func (c *Config) ProtectorConfig() (protectionDomain.ProtectorConfig, error) {
	validationAlg, err := protectionDomain.ParseValidationAlgorithm(c.ValidationAlgorithm)
	if err != nil {
		return protectionDomain.ProtectorConfig{}, err
	}

	decryptionAlg, err := protectionDomain.ParseDecryptionAlgorithm(c.DecryptionAlgorithm)
	if err != nil {
		return protectionDomain.ProtectorConfig{}, err
	}

	ivType, err := protectionDomain.ParseIVType(c.IVType)
	if err != nil {
		return protectionDomain.ProtectorConfig{}, err
	}

	return protectionDomain.ProtectorConfig{
		ValidationKey:       c.ValidationKey,
		DecryptionKey:       c.DecryptionKey,
		ValidationAlgorithm: validationAlg,
		DecryptionAlgorithm: decryptionAlg,
		IVType:              ivType,
		AppIsolationID:      c.AppIsolationID,
	}, nil
}

// Seed decodes AutoGenerateSeed. It returns nil when no seed is configured.
func (c *Config) Seed() ([]byte, error) {
	if c.AutoGenerateSeed == "" {
		return nil, nil
	}
	seed, err := hex.DecodeString(c.AutoGenerateSeed)
	if err != nil {
		return nil, apperrors.Wrapf(protectionDomain.ErrConfiguration, "invalid AUTO_GENERATE_SEED: %v", err)
	}
	return seed, nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	if c.LogLevel == "debug" {
		return "debug"
	}
	return "release"
}

func isHex(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("must be an even-length hex string")
	}
	return nil
}

// loadDotEnv loads the nearest .env file found walking up from the working directory.
func loadDotEnv() {
	dir, err := os.Getwd()
	if err != nil {
		return
	}

	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}
