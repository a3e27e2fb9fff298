package usage

import "unicode/utf8"

// Estimate approximates the token count of text as one token per four
// characters. It is a rough rule of thumb, not a tokenizer, and must
// never be treated as the provider-billed count.
func Estimate(text string) int {
	return utf8.RuneCountInString(text) / 4
}
