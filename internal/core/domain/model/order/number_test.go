package order_test

import (
	"regexp"
	"testing"
	"time"

	"farmmarket/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 30, 42, 0, time.UTC)

	t.Run("should follow the FM-timestamp-suffix format", func(t *testing.T) {
		number := order.NewOrderNumber(now)

		assert.Regexp(t, regexp.MustCompile(`^FM-20260901153042-[0-9A-F]{6}$`), number)
	})

	t.Run("should differ between calls at the same instant", func(t *testing.T) {
		seen := make(map[string]struct{})
		for range 100 {
			seen[order.NewOrderNumber(now)] = struct{}{}
		}

		assert.Greater(t, len(seen), 1)
	})

	t.Run("should normalize the timestamp to UTC", func(t *testing.T) {
		nairobi := time.FixedZone("EAT", 3*60*60)
		local := time.Date(2026, 9, 1, 18, 30, 42, 0, nairobi)

		number := order.NewOrderNumber(local)

		assert.Contains(t, number, "20260901153042")
	})
}
