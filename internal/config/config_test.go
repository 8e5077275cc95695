package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MIN_ADVANCE", "")
	t.Setenv("HOLIDAY_DATES", "")
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.MinAdvance != 4*time.Hour {
		t.Fatalf("expected default min advance 4h, got %s", cfg.MinAdvance)
	}
	if cfg.MaxAdvanceDays != 30 {
		t.Fatalf("expected default max advance days 30, got %d", cfg.MaxAdvanceDays)
	}
	if cfg.WorkStart != "07:00" || cfg.WorkEnd != "19:00" {
		t.Fatalf("expected default working hours, got %s-%s", cfg.WorkStart, cfg.WorkEnd)
	}
	if !cfg.AllowWeekends {
		t.Fatal("expected weekends allowed by default")
	}
	if cfg.AllowHolidays {
		t.Fatal("expected holidays disallowed by default")
	}
	if cfg.BufferMinutes != 30 || cfg.MaxDailyBookings != 6 {
		t.Fatalf("expected buffer 30 and cap 6, got %d/%d", cfg.BufferMinutes, cfg.MaxDailyBookings)
	}
	if len(cfg.HolidayDates) != 3 {
		t.Fatalf("expected 3 default holidays, got %v", cfg.HolidayDates)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("MIN_ADVANCE", "6h")
	t.Setenv("MAX_ADVANCE_DAYS", "14")
	t.Setenv("ALLOW_WEEKENDS", "false")
	t.Setenv("HOLIDAY_DATES", "2026-11-26, 2026-12-25")
	t.Setenv("DATABASE_URL", "postgres://user@host/db")
	t.Setenv("EMAIL_PROVIDER", " SendGrid ")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.MinAdvance != 6*time.Hour {
		t.Fatalf("expected min advance override, got %s", cfg.MinAdvance)
	}
	if cfg.MaxAdvanceDays != 14 {
		t.Fatalf("expected max advance override, got %d", cfg.MaxAdvanceDays)
	}
	if cfg.AllowWeekends {
		t.Fatal("expected weekends disabled via override")
	}
	if len(cfg.HolidayDates) != 2 || cfg.HolidayDates[1] != "2026-12-25" {
		t.Fatalf("expected trimmed holiday list, got %v", cfg.HolidayDates)
	}
	if cfg.DatabaseURL != "postgres://user@host/db" {
		t.Fatalf("expected db override, got %s", cfg.DatabaseURL)
	}
	if cfg.EmailProvider != "sendgrid" {
		t.Fatalf("expected normalized email provider, got %q", cfg.EmailProvider)
	}
}
