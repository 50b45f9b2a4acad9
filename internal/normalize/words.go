package normalize

import "math"

var (
	wordOnes = []string{"", "One", "Two", "Three", "Four", "Five", "Six",
		"Seven", "Eight", "Nine", "Ten", "Eleven", "Twelve", "Thirteen",
		"Fourteen", "Fifteen", "Sixteen", "Seventeen", "Eighteen", "Nineteen"}
	wordTens = []string{"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty",
		"Seventy", "Eighty", "Ninety"}
)

func below1000(n int) string {
	s := ""
	if n >= 100 {
		s += wordOnes[n/100] + " Hundred "
		n %= 100
	}
	if n >= 20 {
		s += wordTens[n/10] + " "
		n %= 10
	}
	if n > 0 {
		s += wordOnes[n] + " "
	}
	return trimSpaceRight(s)
}

func trimSpaceRight(s string) string {
	for len(s) > 0 && s[len(s)-1] == ' ' {
		s = s[:len(s)-1]
	}
	return s
}

// AmountInWords renders a rupee amount in words using Indian numbering
// (Crore/Lakh/Thousand). Fractions are dropped.
func AmountInWords(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 1 {
		return "Zero Rupees Only"
	}

	n := int(math.Floor(amount))
	crore := n / 10000000
	n %= 10000000
	lakh := n / 100000
	n %= 100000
	thousand := n / 1000
	rest := n % 1000

	words := ""
	if crore > 0 {
		words += below1000(crore) + " Crore "
	}
	if lakh > 0 {
		words += below1000(lakh) + " Lakh "
	}
	if thousand > 0 {
		words += below1000(thousand) + " Thousand "
	}
	if rest > 0 {
		words += below1000(rest)
	}

	return trimSpaceRight(words) + " Rupees Only"
}
