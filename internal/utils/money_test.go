package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePriceToCents(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		want    int64
		wantErr bool
	}{
		{"whole amount", "5000", 500000, false},
		{"two decimals", "5000.50", 500050, false},
		{"one decimal", "99.9", 9990, false},
		{"zero", "0", 0, false},
		{"small amount", "0.01", 1, false},
		{"three decimals rejected", "10.999", 0, true},
		{"not a number", "abc", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePriceToCents(tt.price)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFloatToCents(t *testing.T) {
	assert.Equal(t, int64(500050), FloatToCents(5000.50))
	assert.Equal(t, int64(1), FloatToCents(0.01))
	// binary float noise must not leak into stored amounts
	assert.Equal(t, int64(1010), FloatToCents(10.1))
	assert.Equal(t, int64(0), FloatToCents(0))
}

func TestCentsToFloat(t *testing.T) {
	assert.Equal(t, 5000.50, CentsToFloat(500050))
	assert.Equal(t, 0.01, CentsToFloat(1))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "5000.50", FormatCents(500050))
	assert.Equal(t, "0.01", FormatCents(1))
	assert.Equal(t, "0.00", FormatCents(0))
}
