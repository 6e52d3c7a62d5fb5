package util

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	orderNumberPrefix = "IG"
	base36Alphabet    = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// GenerateOrderNumber returns IG-<base36 millis>-<4 random base36>, upper-cased.
func GenerateOrderNumber(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)

	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", orderNumberPrefix, ts, randomBase36(4)))
}

// GeneratePaymentReference returns PAY-<orderNumber>-<millis>.
func GeneratePaymentReference(orderNumber string, now time.Time) string {
	return fmt.Sprintf("PAY-%s-%d", orderNumber, now.UnixMilli())
}

func randomBase36(n int) string {
	var sb strings.Builder
	sb.Grow(n)

	limit := big.NewInt(int64(len(base36Alphabet)))
	for range n {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand only fails when the OS entropy source is gone
			idx = big.NewInt(time.Now().UnixNano() % int64(len(base36Alphabet)))
		}
		sb.WriteByte(base36Alphabet[idx.Int64()])
	}

	return sb.String()
}

// NormalizeGhanaPhone converts local and international Ghana numbers to 233XXXXXXXXX.
func NormalizeGhanaPhone(phone string) string {
	cleaned := strings.Join(strings.Fields(phone), "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")

	switch {
	case strings.HasPrefix(cleaned, "+233"):
		return strings.TrimPrefix(cleaned, "+")
	case strings.HasPrefix(cleaned, "233"):
		return cleaned
	case strings.HasPrefix(cleaned, "0"):
		return "233" + cleaned[1:]
	default:
		return cleaned
	}
}

// FormatMoney renders an amount with two decimals and its currency code, e.g. "GHS 270.00".
func FormatMoney(amount decimal.Decimal, currency string) string {
	return currency + " " + amount.StringFixed(2)
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
