package utils

import (
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// FPrice renders a price with exactly two decimal places.
func FPrice(n float64) string {
	rounded := math.Round(n*100) / 100
	return strconv.FormatFloat(rounded, 'f', 2, 64)
}

// FCurrency renders large totals with thousand separators, two decimals max.
func FCurrency(n float64) string {
	rounded := math.Round(n*100) / 100
	return humanize.CommafWithDigits(rounded, 2)
}
