package util

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestGenerateOrderNumber(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1_700_000_000_000)
	got := GenerateOrderNumber(now)

	pattern := regexp.MustCompile(`^IG-[0-9A-Z]+-[0-9A-Z]{4}$`)
	if !pattern.MatchString(got) {
		t.Fatalf("GenerateOrderNumber() = %s, does not match %s", got, pattern)
	}

	wantTS := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	if parts := strings.Split(got, "-"); parts[1] != wantTS {
		t.Fatalf("timestamp segment = %s, want %s", parts[1], wantTS)
	}
}

func TestGeneratePaymentReference(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1_700_000_000_123)
	if got := GeneratePaymentReference("IG-ABC-1234", now); got != "PAY-IG-ABC-1234-1700000000123" {
		t.Fatalf("GeneratePaymentReference() = %s", got)
	}
}

func TestNormalizeGhanaPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		phone    string
		expected string
	}{
		{name: "local with leading zero", phone: "024 123 4567", expected: "233241234567"},
		{name: "international with plus", phone: "+233 24 123 4567", expected: "233241234567"},
		{name: "already normalised", phone: "233241234567", expected: "233241234567"},
		{name: "dashes removed", phone: "024-123-4567", expected: "233241234567"},
		{name: "foreign left alone", phone: "+44 7700 900123", expected: "+447700900123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NormalizeGhanaPhone(tt.phone); got != tt.expected {
				t.Fatalf("NormalizeGhanaPhone(%q) = %s, want %s", tt.phone, got, tt.expected)
			}
		})
	}
}

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	if got := FormatMoney(decimal.NewFromInt(270), "GHS"); got != "GHS 270.00" {
		t.Fatalf("FormatMoney() = %s", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
