package normalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmountInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Rupees Only"},
		{0.99, "Zero Rupees Only"},
		{1, "One Rupees Only"},
		{19, "Nineteen Rupees Only"},
		{42, "Forty Two Rupees Only"},
		{100, "One Hundred Rupees Only"},
		{205, "Two Hundred Five Rupees Only"},
		{1000, "One Thousand Rupees Only"},
		{1234, "One Thousand Two Hundred Thirty Four Rupees Only"},
		{100000, "One Lakh Rupees Only"},
		{2550000, "Twenty Five Lakh Fifty Thousand Rupees Only"},
		{10000000, "One Crore Rupees Only"},
		{1234.56, "One Thousand Two Hundred Thirty Four Rupees Only"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, AmountInWords(tt.amount), "amount %v", tt.amount)
	}
}

func TestAmountInWordsDegenerateInputs(t *testing.T) {
	require.Equal(t, "Zero Rupees Only", AmountInWords(math.NaN()))
	require.Equal(t, "Zero Rupees Only", AmountInWords(math.Inf(1)))
	require.Equal(t, "Zero Rupees Only", AmountInWords(-100))
}
