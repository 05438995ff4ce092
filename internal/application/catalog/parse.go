package catalog

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// parseLenientDecimal parses a form-submitted price. Brazilian keyboards
// produce a comma decimal separator, so commas are accepted as well.
// Empty or unparseable input yields (nil, false) and the caller keeps the
// previous value.
func parseLenientDecimal(raw string) (*decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, false
	}
	raw = strings.ReplaceAll(raw, ",", ".")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// parseLenientInt parses a form-submitted quantity. Unparseable input
// yields (0, false) and the caller keeps the previous value.
func parseLenientInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
