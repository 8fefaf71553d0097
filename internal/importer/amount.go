package importer

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var maxCents = decimal.NewFromInt(math.MaxInt64)

// parseDollars converts a dollar amount such as "1,250.00", "$45" or "12.5" to cents.
func parseDollars(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	if clean == "" {
		return 0, fmt.Errorf("empty amount")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("amount %s is negative", s)
	}

	cents := d.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than 2 decimal places", s)
	}
	if cents.GreaterThan(maxCents) {
		return 0, fmt.Errorf("amount %s is too large", s)
	}
	return cents.IntPart(), nil
}
