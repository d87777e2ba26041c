package flaggo

import (
	"regexp"
	"strings"
)

var normalizer, _ = regexp.Compile("[^a-zA-Z0-9]")

// Normalizes the string which removes all non-letters and numbers and converts it to lowercase.
func Normalize(x string) string {
	return strings.ToLower(string(normalizer.ReplaceAll([]byte(x), []byte(""))))
}

// Splits a formatted flag list like "READ|WRITE" or "read, write" into its
// name tokens.
func splitNames(x string) []string {
	return strings.FieldsFunc(x, func(r rune) bool {
		return r == '|' || r == ',' || r == '+' || r == ' ' || r == '\t' || r == '\n'
	})
}

// Returns whether the value has exactly one bit set.
func singleBit[E Flag](value E) bool {
	return value != 0 && value&(value-1) == 0
}
