// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// JWTConfig provides token validation settings for the auth middleware.
type JWTConfig interface {
	GetJWTSecret() string
	GetJWTAlgorithm() string
	GetInternalUsername() string
}

// AuthConfig provides the settings needed by the credential service.
type AuthConfig interface {
	JWTConfig
	GetTokenTTL() time.Duration
	GetInternalPasswordHash() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// UploadConfig provides settings for resume storage.
type UploadConfig interface {
	GetUploadDir() string
	GetMaxResumeSize() int64
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	GetMinIOBucketResumes() string
	IsMinIOEnabled() bool
}

// EmailConfig provides settings for the SMTP sender.
type EmailConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	IsSMTPEnabled() bool
}

// NotificationConfig provides settings for the notification module.
type NotificationConfig interface {
	GetAttorneyEmails() []string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	DatabaseURL          string
	UploadDir            string
	MaxResumeSize        int64
	JWTSecret            string
	JWTAlgorithm         string
	TokenTTL             time.Duration
	InternalUsername     string
	InternalPasswordHash string
	AttorneyEmails       []string
	EmailEnabled         bool
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	EmailFromName        string
	EmailFromAddress     string
	MinIOEndpoint        string
	MinIOAccessKey       string
	MinIOSecretKey       string
	MinIOUseSSL          bool
	MinIOBucketResumes   string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// JWTConfig implementation
func (c *Config) GetJWTSecret() string        { return c.JWTSecret }
func (c *Config) GetJWTAlgorithm() string     { return c.JWTAlgorithm }
func (c *Config) GetInternalUsername() string { return c.InternalUsername }

// AuthConfig implementation
func (c *Config) GetTokenTTL() time.Duration      { return c.TokenTTL }
func (c *Config) GetInternalPasswordHash() string { return c.InternalPasswordHash }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// UploadConfig implementation
func (c *Config) GetUploadDir() string          { return c.UploadDir }
func (c *Config) GetMaxResumeSize() int64       { return c.MaxResumeSize }
func (c *Config) GetMinIOEndpoint() string      { return c.MinIOEndpoint }
func (c *Config) GetMinIOAccessKey() string     { return c.MinIOAccessKey }
func (c *Config) GetMinIOSecretKey() string     { return c.MinIOSecretKey }
func (c *Config) GetMinIOUseSSL() bool          { return c.MinIOUseSSL }
func (c *Config) GetMinIOBucketResumes() string { return c.MinIOBucketResumes }
func (c *Config) IsMinIOEnabled() bool          { return c.MinIOEndpoint != "" }

// EmailConfig implementation
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) IsSMTPEnabled() bool         { return c.EmailEnabled && c.SMTPHost != "" }

// NotificationConfig implementation
func (c *Config) GetAttorneyEmails() []string { return c.AttorneyEmails }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:4200"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		UploadDir:            getEnv("UPLOAD_DIR", "uploads"),
		MaxResumeSize:        mustInt64(getEnv("MAX_RESUME_SIZE", "10485760")),
		JWTSecret:            getEnv("JWT_SECRET", ""),
		JWTAlgorithm:         getEnv("JWT_ALGORITHM", "HS256"),
		TokenTTL:             mustDuration(getEnv("JWT_EXPIRE", "60m")),
		InternalUsername:     getEnv("INTERNAL_USER_USERNAME", "admin"),
		InternalPasswordHash: getEnv("INTERNAL_USER_PASSWORD_HASH", ""),
		AttorneyEmails:       splitCSV(getEnv("ATTORNEY_EMAILS", "attorney@example.com")),
		EmailEnabled:         strings.EqualFold(getEnv("EMAIL_ENABLED", "true"), "true"),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             int(mustInt64(getEnv("SMTP_PORT", "587"))),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		EmailFromName:        getEnv("EMAIL_FROM_NAME", "Lead Intake"),
		EmailFromAddress:     getEnv("EMAIL_FROM_ADDRESS", ""),
		MinIOEndpoint:        getEnv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:       getEnv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:       getEnv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:          strings.EqualFold(getEnv("MINIO_USE_SSL", "false"), "true"),
		MinIOBucketResumes:   getEnv("MINIO_BUCKET_RESUMES", "resumes"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustDuration(raw string) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil {
		return time.Hour
	}
	return d
}

func mustInt64(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func containsWildcard(values []string) bool {
	for _, v := range values {
		if v == "*" {
			return true
		}
	}
	return false
}
