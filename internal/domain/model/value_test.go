package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOne(t *testing.T) {
	f := One(Float)
	assert.False(t, f.IsDecimal())
	assert.Equal(t, 1.0, f.Float64())

	d := One(Decimal)
	assert.True(t, d.IsDecimal())
	assert.True(t, d.Decimal().Equal(decimal.NewFromInt(1)))
}

func TestValue_In(t *testing.T) {
	f := FloatValue(42.5)

	asDecimal := f.In(Decimal)
	assert.True(t, asDecimal.IsDecimal())
	assert.True(t, asDecimal.Decimal().Equal(decimal.RequireFromString("42.5")))

	d := DecimalValue(decimal.RequireFromString("0.85"))

	asFloat := d.In(Float)
	assert.False(t, asFloat.IsDecimal())
	assert.Equal(t, 0.85, asFloat.Float64())

	// same-mode re-expression is the identity
	assert.Equal(t, f, f.In(Float))
	assert.Equal(t, d, d.In(Decimal))
}

func TestValue_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected string
	}{
		{name: "Float", value: FloatValue(0.85), expected: "0.85"},
		{name: "Decimal keeps precision", value: DecimalValue(decimal.RequireFromString("100.1000000000000000001")), expected: "100.1000000000000000001"},
		{name: "Decimal integer", value: DecimalValue(decimal.NewFromInt(85)), expected: "85"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(b))
		})
	}
}

func TestValue_ModeString(t *testing.T) {
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "decimal", Decimal.String())
}
