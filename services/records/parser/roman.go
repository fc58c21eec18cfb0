package parser

import "strings"

var romanOrdinals = map[string]int{
	"I":    1,
	"II":   2,
	"III":  3,
	"IV":   4,
	"V":    5,
	"VI":   6,
	"VII":  7,
	"VIII": 8,
}

// RomanOrdinal converts a roman-numeral label (I-VIII) to its ordinal.
// unrecognized labels yield zero, not an error.
func RomanOrdinal(label string) int {
	return romanOrdinals[strings.ToUpper(strings.TrimSpace(label))]
}
