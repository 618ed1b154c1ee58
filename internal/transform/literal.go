package transform

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// NullLiteral is rendered for absent, blank and pending values
const NullLiteral = "NULL"

// pendingSentinel marks a value the source data left to be filled in later
const pendingSentinel = "atualizar"

// decimalRe only admits plain decimal notation; hex floats, NaN and Inf are
// accepted by strconv but are not valid SQL numeric literals.
var decimalRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// IsNull reports whether a raw value renders as NULL
func IsNull(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return trimmed == "" || strings.EqualFold(trimmed, pendingSentinel)
}

// Literal renders a raw text value as a SQL string literal. Embedded single
// quotes are doubled; the value itself is not trimmed.
func Literal(raw string) string {
	if IsNull(raw) {
		return NullLiteral
	}
	return "'" + strings.ReplaceAll(raw, "'", "''") + "'"
}

// GeoLiteral renders a latitude or longitude value as a SQL numeric literal,
// accepting a decimal comma.
func GeoLiteral(raw string) string {
	value := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if !decimalRe.MatchString(value) {
		return NullLiteral
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsInf(f, 0) {
		return NullLiteral
	}
	return value
}
