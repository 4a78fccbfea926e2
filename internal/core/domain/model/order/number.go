package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const orderNumberPrefix = "FM"

// NewOrderNumber generates a human-readable, globally unique order number.
// The number combines a time-ordered component with a random suffix so it is
// sortable by creation time but not guessable. It doubles as the public
// tracking token, so enumeration must not be possible.
//
// Format: FM-20260901153042-3FA2B1.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, 3)
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(suffix)

	return fmt.Sprintf("%s-%s-%s",
		orderNumberPrefix,
		now.UTC().Format("20060102150405"),
		strings.ToUpper(hex.EncodeToString(suffix)),
	)
}
