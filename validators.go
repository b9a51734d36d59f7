// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envflag

import (
	"regexp"
	"strconv"
	"strings"
)

// NormalizeBool canonicalizes common boolean spellings: case-insensitive
// "true", "1", and "yes" become "true"; "false", "0", and "no" become
// "false". Anything else is returned unchanged, so genuinely invalid input
// still fails downstream with a [ParseError] instead of being coerced.
//
// The function is idempotent.
func NormalizeBool(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return "true"
	case "false", "0", "no":
		return "false"
	default:
		return s
	}
}

// IsNonEmpty checks that the string is not empty or just whitespace.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsInteger checks that the string parses as a signed 64-bit integer.
func IsInteger(s string) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// IsPositiveInteger checks that the string parses as an integer greater
// than zero.
func IsPositiveInteger(s string) bool {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	return err == nil && v > 0
}

// IsPositiveNumber checks that the string parses as a number greater
// than zero.
func IsPositiveNumber(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil && v > 0
}

// IsBool checks that the string is one of the six canonical boolean
// spellings ("true", "1", "yes", "false", "0", "no"), case-insensitive.
func IsBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "false", "0", "no":
		return true
	default:
		return false
	}
}

// IsPort checks that the string is a valid port number (1-65535).
func IsPort(s string) bool {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	return err == nil && v > 0
}

// IsURL is a simple check that the string looks like a URL (contains "://").
func IsURL(s string) bool {
	return strings.Contains(s, "://")
}

// InRange returns a validator that checks the value parses as an integer
// within [min, max].
func InRange(min, max int64) func(string) bool {
	return func(s string) bool {
		v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return err == nil && v >= min && v <= max
	}
}

// MatchesRegex returns a validator that checks the value against a regex
// pattern.
//
// Panics immediately if the pattern is invalid: a bad pattern is a
// programming error and should surface at startup, not at query time.
func MatchesRegex(pattern string) func(string) bool {
	return regexp.MustCompile(pattern).MatchString
}
