package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
		found    bool
	}{
		{name: "US dollar", code: "USD", expected: "$", found: true},
		{name: "Euro", code: "EUR", expected: "€", found: true},
		{name: "Indian rupee", code: "INR", expected: "₹", found: true},
		{name: "Unknown code", code: "XXX", found: false},
		{name: "Lowercase is not a code", code: "usd", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			symbol, ok := SymbolFor(tt.code)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, symbol)
		})
	}
}

func TestNameFor(t *testing.T) {
	name, ok := NameFor("GBP")
	require.True(t, ok)
	assert.Equal(t, "British pound", name)

	_, ok = NameFor("ZZZ")
	assert.False(t, ok)
}

func TestCodeForSymbol(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		expected string
		found    bool
	}{
		{name: "Pound sign", symbol: "£", expected: "GBP", found: true},
		{name: "Yen sign", symbol: "¥", expected: "JPY", found: true},
		{name: "Rupee sign", symbol: "₹", expected: "INR", found: true},
		{name: "Unknown symbol", symbol: "??", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := CodeForSymbol(tt.symbol)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestLookup(t *testing.T) {
	info, ok := Lookup("CAD")
	require.True(t, ok)
	assert.Equal(t, "CAD", info.Code)
	assert.Equal(t, "C$", info.Symbol)
	assert.Equal(t, "Canadian dollar", info.Name)
}

func TestLookupRoundTrip(t *testing.T) {
	// codes whose symbol is unambiguous must resolve back through it
	for _, code := range []string{"USD", "EUR", "JPY", "GBP", "CHF", "AUD"} {
		symbol, ok := SymbolFor(code)
		require.True(t, ok, code)

		back, ok := CodeForSymbol(symbol)
		require.True(t, ok, symbol)
		assert.Equal(t, code, back)
	}
}
