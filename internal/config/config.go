// Package config reads engine configuration from environment variables.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Scheduling rules
	MinAdvance       time.Duration
	MaxAdvanceDays   int
	WorkStart        string // "07:00"
	WorkEnd          string // "19:00"
	AllowWeekends    bool
	AllowHolidays    bool
	HolidayDates     []string // ISO dates
	BufferMinutes    int
	MaxDailyBookings int
	SlotStepMinutes  int
	AlternativeDays  int
	MaxAlternatives  int

	// Admin escalation contact
	AdminEmail string
	AdminPhone string

	CompanyName  string
	CompanyPhone string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisTLS      bool

	// SendGrid email configuration
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	// AWS / SES email configuration
	EmailProvider       string // "sendgrid", "ses", or "stub"
	AWSRegion           string
	AWSAccessKeyID      string
	AWSSecretAccessKey  string
	AWSEndpointOverride string
	SESFromEmail        string

	// SMS configuration
	SMSProvider   string // "gateway" or "stub"
	SMSGatewayURL string
	SMSFromNumber string

	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MinAdvance:       getEnvAsDuration("MIN_ADVANCE", 4*time.Hour),
		MaxAdvanceDays:   getEnvAsInt("MAX_ADVANCE_DAYS", 30),
		WorkStart:        getEnv("WORK_START", "07:00"),
		WorkEnd:          getEnv("WORK_END", "19:00"),
		AllowWeekends:    getEnvAsBool("ALLOW_WEEKENDS", true),
		AllowHolidays:    getEnvAsBool("ALLOW_HOLIDAYS", false),
		HolidayDates:     getEnvAsList("HOLIDAY_DATES", "2026-01-01,2026-07-04,2026-12-25"),
		BufferMinutes:    getEnvAsInt("BUFFER_MINUTES", 30),
		MaxDailyBookings: getEnvAsInt("MAX_DAILY_BOOKINGS", 6),
		SlotStepMinutes:  getEnvAsInt("SLOT_STEP_MINUTES", 30),
		AlternativeDays:  getEnvAsInt("ALTERNATIVE_DAYS", 7),
		MaxAlternatives:  getEnvAsInt("MAX_ALTERNATIVES", 5),

		AdminEmail: getEnv("ADMIN_EMAIL", "admin@gohampro.com"),
		AdminPhone: getEnv("ADMIN_PHONE", "+15550100"),

		CompanyName:  getEnv("COMPANY_NAME", "GO HAM PRO Services"),
		CompanyPhone: getEnv("COMPANY_PHONE", "(555) 123-4567"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTLS:      getEnvAsBool("REDIS_TLS", false),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", "noreply@gohampro.com"),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "GO HAM PRO Services"),

		EmailProvider:       strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", "stub"))),
		AWSRegion:           getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:      getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		AWSEndpointOverride: getEnv("AWS_ENDPOINT_OVERRIDE", ""),
		SESFromEmail:        getEnv("SES_FROM_EMAIL", "noreply@gohampro.com"),

		SMSProvider:   strings.ToLower(strings.TrimSpace(getEnv("SMS_PROVIDER", "stub"))),
		SMSGatewayURL: getEnv("SMS_GATEWAY_URL", ""),
		SMSFromNumber: getEnv("SMS_FROM_NUMBER", "+15550199"),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", ""),
		RateLimitPerSecond: getEnvAsFloat("RATE_LIMIT_PER_SECOND", 5),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 10),
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key, defaultValue string) []string {
	raw := getEnv(key, defaultValue)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
