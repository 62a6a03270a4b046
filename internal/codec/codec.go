// Package codec turns loosely formatted stowage text into Bay-Row-Tier keys.
//
// A key is six digits, two each for bay, row and tier, so plain string
// comparison orders keys the same way as the numeric (bay, row, tier) tuple.
package codec

import (
	"strings"

	"stowsort/internal/rules"
)

const (
	// KeyWidth is the number of digits in a BRT key
	KeyWidth = 6

	// Sentinel is the key of a block with no resolved stowage. ASCII letters
	// sort after digits, so it follows every numeric key.
	Sentinel = "ZZZZZZ"
)

// KeyOf returns the sortable key for raw stowage text.
// More than six digits are truncated to the first six; fewer are left-padded with 0.
// present=false (no stowage resolved) yields Sentinel.
func KeyOf(stowage string, present bool) string {
	if !present {
		return Sentinel
	}
	digits := rules.Digits(stowage)
	if len(digits) > KeyWidth {
		digits = digits[:KeyWidth]
	}
	return pad(digits)
}

// DisplayOf returns the value written into the report cell.
// It pads like KeyOf but never truncates.
func DisplayOf(stowage string) string {
	return pad(rules.Digits(stowage))
}

// Split breaks a key into its bay, row and tier parts. The sentinel yields empty parts.
func Split(key string) (bay, row, tier string) {
	if key == Sentinel || len(key) != KeyWidth {
		return "", "", ""
	}
	return key[0:2], key[2:4], key[4:6]
}

func pad(digits string) string {
	if len(digits) >= KeyWidth {
		return digits
	}
	return strings.Repeat("0", KeyWidth-len(digits)) + digits
}
