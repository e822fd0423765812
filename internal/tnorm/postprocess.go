package tnorm

import "strings"

// PostProcess restores the space marker the preprocessor planted and
// applies the quote-interior repair spec §4.12 allows: splitting runs of
// consecutive capital letters with spaces inside 『…』, so a verbalized
// acronym like 『ABC』 reads as 『A B C』 instead of running the letters
// together.
func PostProcess(s string) string {
	s = restoreSpaceMarker(s)
	return splitCapitalRunsInQuotes(s)
}

func splitCapitalRunsInQuotes(s string) string {
	var b strings.Builder
	runes := []rune(s)
	inQuote := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case '『':
			inQuote = true
			b.WriteRune(r)
		case '』':
			inQuote = false
			b.WriteRune(r)
		default:
			if inQuote && i > 0 && isCapitalLetter(r) && isCapitalLetter(runes[i-1]) {
				b.WriteRune(' ')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isCapitalLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
