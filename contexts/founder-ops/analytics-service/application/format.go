package application

import (
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a monetary value with thousands separators. Whole
// amounts drop the decimal part; fractional amounts keep two digits.
func FormatAmount(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "0"
	}
	negative := value < 0
	if negative {
		value = -value
	}

	rounded := math.Round(value*100) / 100
	text := strconv.FormatFloat(rounded, 'f', 2, 64)
	whole, fraction, _ := strings.Cut(text, ".")

	grouped := groupThousands(whole)
	if fraction != "00" {
		grouped += "." + fraction
	}
	if negative {
		return "-" + grouped
	}
	return grouped
}

// FormatPercentChange renders the signed relative change from prior to
// current, e.g. "+12.5%". Callers must ensure prior > 0.
func FormatPercentChange(current float64, prior float64) string {
	change := (current - prior) / prior * 100
	text := strconv.FormatFloat(math.Round(change*10)/10, 'f', -1, 64)
	if change >= 0 {
		text = "+" + text
	}
	return text + "%"
}

// FormatPercent renders a ratio in [0,1] as a percentage with one decimal.
func FormatPercent(ratio float64) string {
	return strconv.FormatFloat(math.Round(ratio*1000)/10, 'f', -1, 64) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
