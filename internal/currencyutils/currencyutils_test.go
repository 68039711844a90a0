package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "1234.56", "1234.56", false},
		{"empty is zero", "", "0", false},
		{"negative", "-42.50", "-42.5", false},
		{"US thousands", "1,234.56", "1234.56", false},
		{"European decimal comma", "1234,56", "1234.56", false},
		{"European full", "1.234,56", "1234.56", false},
		{"Swiss apostrophe", "1'234.56", "1234.56", false},
		{"dollar symbol", "$1,234.56", "1234.56", false},
		{"euro symbol", "€1.234,56", "1234.56", false},
		{"currency code prefix", "USD 99.90", "99.9", false},
		{"comma thousands only", "1,234", "1234", false},
		{"garbage", "abc", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	amount := decimal.NewFromFloat(1234.5)

	assert.Equal(t, "1234.50", FormatAmount(amount, ""))
	assert.Equal(t, "$1234.50", FormatAmount(amount, "$"))
	assert.Equal(t, "€1234.50", FormatAmount(amount, "€"))
	assert.Equal(t, "USD 1234.50", FormatAmount(amount, "USD"))
}

func TestSignHelpers(t *testing.T) {
	assert.True(t, IsNegative(decimal.NewFromInt(-1)))
	assert.False(t, IsNegative(decimal.Zero))
	assert.True(t, IsPositive(decimal.NewFromInt(1)))
	assert.False(t, IsPositive(decimal.Zero))
	assert.True(t, IsZero(decimal.Zero))
	assert.False(t, IsZero(decimal.NewFromInt(1)))
}
