package helpers

import "fmt"

// FormatWeight formats a driver weight at its stored 3-decimal precision
func FormatWeight(weight float64) string {
	return fmt.Sprintf("%.3f", weight)
}

// FormatPercent formats a weight as the percentage shown in verification
// output, rounded to 1 decimal
func FormatPercent(weight float64) string {
	return fmt.Sprintf("%.1f%%", weight*100)
}

// FormatDrift formats a weight total's signed distance from 1.0
func FormatDrift(drift float64) string {
	return fmt.Sprintf("%+.3f", drift)
}
