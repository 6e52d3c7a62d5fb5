package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// verifyHMACSHA256 compares a hex HMAC-SHA256 of payload against signature in constant time.
// An empty secret or signature never verifies.
func verifyHMACSHA256(secret string, payload []byte, signature string) bool {
	signature = strings.TrimSpace(signature)
	if secret == "" || signature == "" {
		return false
	}

	expected := signHMACSHA256(secret, payload)

	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}

func signHMACSHA256(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}
