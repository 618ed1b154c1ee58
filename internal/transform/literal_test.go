package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiteral(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", "NULL"},
		{"whitespace only", " \t ", "NULL"},
		{"sentinel", "atualizar", "NULL"},
		{"sentinel upper case", "ATUALIZAR", "NULL"},
		{"sentinel mixed case padded", "  Atualizar ", "NULL"},
		{"plain", "Maria", "'Maria'"},
		{"single quote doubled", "D'Ávila", "'D''Ávila'"},
		{"several quotes", "'a''b'", "'''a''''b'''"},
		{"surrounding spaces kept", " x ", "' x '"},
		{"sentinel as substring", "atualizar depois", "'atualizar depois'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Literal(tt.raw))
		})
	}
}

func TestGeoLiteral(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"decimal comma", "12,345", "12.345"},
		{"negative decimal comma", "-15,7801", "-15.7801"},
		{"decimal point", "-47.9292", "-47.9292"},
		{"integer", "10", "10"},
		{"padded", " 1,5 ", "1.5"},
		{"exponent", "1e3", "1e3"},
		{"empty", "", "NULL"},
		{"sentinel", "atualizar", "NULL"},
		{"text", "abc", "NULL"},
		{"thousands separator", "1.234,56", "NULL"},
		{"nan", "NaN", "NULL"},
		{"infinity", "Inf", "NULL"},
		{"hex float", "0x1p-2", "NULL"},
		{"overflow", "1e999", "NULL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeoLiteral(tt.raw))
		})
	}
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(""))
	assert.True(t, IsNull("AtUaLiZaR"))
	assert.False(t, IsNull("0"))
}
