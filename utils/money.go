package utils

import (
	"math"
	"strconv"
	"strings"
)

// FormatINR formats an amount in rupees with Indian digit grouping,
// e.g. 1234567 -> "12,34,567". The last three digits form one group and the
// rest are grouped in pairs. Paise are truncated; quotation amounts are
// whole rupees on the printed document.
func FormatINR(amount float64) string {
	n := int64(math.Floor(math.Abs(amount)))
	neg := amount < 0 && n > 0

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	head := s[:len(s)-3]
	tail := s[len(s)-3:]

	var b strings.Builder
	b.Grow(len(s) + len(s)/2 + 1)
	if neg {
		b.WriteByte('-')
	}

	// Group the head in pairs from the left.
	rem := len(head) % 2
	if rem == 0 {
		rem = 2
	}
	b.WriteString(head[:rem])
	for i := rem; i < len(head); i += 2 {
		b.WriteByte(',')
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)

	return b.String()
}

// FormatRupees renders an amount as it appears on the quotation, e.g.
// "₹ 1,50,000".
func FormatRupees(amount float64) string {
	return "₹ " + FormatINR(amount)
}
