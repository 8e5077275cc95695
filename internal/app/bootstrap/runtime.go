// Package bootstrap wires configured infrastructure for the booking engine
// binaries: Redis, Postgres, notification senders, and the worker roster.
package bootstrap

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	appconfig "github.com/Supremetechy/go-ham/internal/config"
	"github.com/Supremetechy/go-ham/internal/notify"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

// BuildRedisClient returns a configured Redis client or nil when disabled.
// When verify is true, a ping is issued and failures return nil.
func BuildRedisClient(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger, verify bool) *redis.Client {
	if cfg == nil || strings.TrimSpace(cfg.RedisAddr) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	redisOptions := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	client := redis.NewClient(redisOptions)
	if !verify {
		return client
	}
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis not available", "error", err)
		return nil
	}
	return client
}

// BuildPgxPool connects a pgx pool or returns nil when no database is
// configured. Connection failures return nil so the engine can fall back to
// the in-memory stores.
func BuildPgxPool(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) *pgxpool.Pool {
	if cfg == nil || strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Warn("database not available", "error", err)
		return nil
	}
	if err := pool.Ping(ctx); err != nil {
		logger.Warn("database ping failed", "error", err)
		pool.Close()
		return nil
	}
	return pool
}

// BuildEmailSender selects the email provider from configuration. Unknown or
// unconfigured providers fall back to the stub.
func BuildEmailSender(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if logger == nil {
		logger = logging.Default()
	}
	switch cfg.EmailProvider {
	case "sendgrid":
		if s := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			return s
		}
		logger.Warn("sendgrid selected but not configured, using stub email sender")
	case "ses":
		awsCfg, err := appconfig.LoadAWSConfig(ctx, cfg)
		if err != nil {
			logger.Warn("ses selected but AWS config failed, using stub email sender", "error", err)
			break
		}
		if s := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SESFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger); s != nil {
			return s
		}
	}
	return notify.NewStubEmailSender(logger)
}

// BuildSMSSender selects the SMS provider from configuration. The "gateway"
// provider posts messages to an HTTP SMS gateway; anything else gets the
// stub, which logs instead of sending.
func BuildSMSSender(cfg *appconfig.Config, logger *logging.Logger) notify.SMSSender {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.SMSProvider == "gateway" {
		if strings.TrimSpace(cfg.SMSGatewayURL) == "" {
			logger.Warn("sms gateway selected but SMS_GATEWAY_URL unset, using stub sms sender")
			return notify.NewStubSMSSender(logger)
		}
		return notify.NewSimpleSMSSender(cfg.SMSFromNumber, gatewaySend(cfg.SMSGatewayURL), logger)
	}
	return notify.NewStubSMSSender(logger)
}

// gatewaySend posts one message to an HTTP SMS gateway as JSON.
func gatewaySend(gatewayURL string) func(ctx context.Context, to, from, body string) error {
	client := &http.Client{Timeout: 10 * time.Second}
	return func(ctx context.Context, to, from, body string) error {
		payload, err := json.Marshal(map[string]string{
			"to":   to,
			"from": from,
			"body": body,
		})
		if err != nil {
			return fmt.Errorf("bootstrap: encode sms payload: %w", err)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, gatewayURL, bytes.NewReader(payload))
		if err != nil {
			return fmt.Errorf("bootstrap: build sms request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("bootstrap: post sms: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("bootstrap: sms gateway returned %d", resp.StatusCode)
		}
		return nil
	}
}
