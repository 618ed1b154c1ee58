package transform

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Namespace is the fixed namespace identifiers are derived under (the RFC 4122
// DNS namespace). Changing it changes every generated identifier.
var Namespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// Source record fields that feed identifier derivation
const (
	TaxIDField       = "cpf"
	SecondaryIDField = "matricula"
)

// IDSource tags how a row identifier was obtained
type IDSource int

const (
	IDFromTaxID IDSource = iota
	IDFromSecondaryID
	IDRandom
	IDPositional
)

func (s IDSource) String() string {
	switch s {
	case IDFromTaxID:
		return "from-tax-id"
	case IDFromSecondaryID:
		return "from-secondary-id"
	case IDRandom:
		return "random"
	case IDPositional:
		return "positional"
	default:
		return fmt.Sprintf("IDSource(%d)", int(s))
	}
}

// Deterministic reports whether repeated runs over the same input yield the
// same identifier.
func (s IDSource) Deterministic() bool {
	return s != IDRandom
}

// FallbackPolicy selects how identifiers are obtained for rows without a
// usable natural key
type FallbackPolicy string

const (
	// FallbackRandom generates a random identifier per run
	FallbackRandom FallbackPolicy = "random"
	// FallbackPositional derives the identifier from the data row number
	FallbackPositional FallbackPolicy = "positional"
)

// ParseFallbackPolicy parses a policy name; the empty string selects FallbackRandom
func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch FallbackPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", FallbackRandom:
		return FallbackRandom, nil
	case FallbackPositional:
		return FallbackPositional, nil
	default:
		return "", fmt.Errorf("unknown id fallback policy %q (want %q or %q)", s, FallbackRandom, FallbackPositional)
	}
}

// NormalizeTaxID strips the punctuation used when formatting a tax id (123.456.789-01)
func NormalizeTaxID(taxID string) string {
	return strings.NewReplacer(".", "", "-", "").Replace(taxID)
}

func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// deriveID picks the identifier for a record by priority: normalized tax id,
// then secondary id, then the fallback policy.
func (t *Transformer) deriveID(record SourceRecord) (uuid.UUID, IDSource) {
	if taxID := NormalizeTaxID(record.Get(TaxIDField)); isASCIIDigits(taxID) {
		return uuid.NewSHA1(t.namespace, []byte(taxID)), IDFromTaxID
	}

	// The raw value is hashed so identifiers match ones generated before
	// surrounding whitespace was considered.
	if secondaryID := record.Get(SecondaryIDField); strings.TrimSpace(secondaryID) != "" {
		return uuid.NewSHA1(t.namespace, []byte(secondaryID)), IDFromSecondaryID
	}

	if t.fallback == FallbackPositional {
		return uuid.NewSHA1(t.namespace, []byte(fmt.Sprintf("row:%d", record.Row))), IDPositional
	}
	return t.random(), IDRandom
}
