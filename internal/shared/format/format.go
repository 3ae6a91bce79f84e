// Package format renders byte counts as human-readable sizes.
package format

import "fmt"

// DefaultPrecision is the decimal precision used by Size.
const DefaultPrecision = 2

// Base-1024 magnitudes. int64 tops out below EB, the larger units exist so
// the table matches the full magnitude ladder.
var units = [...]string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// Size renders n with the default precision.
//
//	Size(100)          == "100 B"
//	Size(100000)       == "97.66 KB"
//	Size(100000000)    == "95.37 MB"
//	Size(100000000000) == "93.13 GB"
func Size(n int64) string {
	return SizePrec(n, DefaultPrecision)
}

// SizePrec renders n divided down to the first base-1024 unit where the
// value is below 1024. Values under 1024 render as an integer byte count.
func SizePrec(n int64, precision int) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	idx := 0
	for value >= 1024 && idx < len(units)-1 {
		value /= 1024
		idx++
	}
	return fmt.Sprintf("%.*f %s", precision, value, units[idx])
}
