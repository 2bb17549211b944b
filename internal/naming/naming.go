// Package naming splits SQL identifiers into comparable word tokens.
package naming

import (
	"strings"
	"unicode"
)

// Normalize lowercases an identifier and drops everything that is not a letter or digit.
// "Billing_City" and "[BillingCity]" both normalize to "billingcity".
func Normalize(identifier string) string {
	var b strings.Builder
	b.Grow(len(identifier))
	for _, r := range identifier {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// Tokenize splits an identifier into lowercase words on separators and case
// boundaries. Runs of capitals are kept together ("IPAddress" gives "ip",
// "address") and letters are split from digits ("AddressLine1" gives
// "address", "line", "1").
func Tokenize(identifier string) []string {
	runes := []rune(identifier)
	tokens := make([]string, 0, 4)
	var current []rune

	flush := func() {
		if len(current) > 0 {
			tokens = append(tokens, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if len(current) > 0 {
			prev := runes[i-1]
			switch {
			case unicode.IsDigit(r) != unicode.IsDigit(prev):
				flush()
			case unicode.IsUpper(r) && unicode.IsLower(prev):
				flush()
			case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
				// end of an acronym: "IDNumber" -> "id", "number"
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return tokens
}

// Singularize strips one trailing "s". Words ending in "ss" are left alone so
// that "address" stays intact.
func Singularize(word string) string {
	if len(word) < 2 || !strings.HasSuffix(word, "s") || strings.HasSuffix(word, "ss") {
		return word
	}
	return word[:len(word)-1]
}

// StripDecoration removes bracket, quote and backtick decoration around an identifier
func StripDecoration(identifier string) string {
	return strings.Trim(strings.TrimSpace(identifier), "[]\"`'")
}

// TokenSet is a lookup set of tokens
type TokenSet map[string]struct{}

// NewTokenSet builds a set from words
func NewTokenSet(words ...string) TokenSet {
	set := make(TokenSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Has reports whether the token is present
func (s TokenSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// HasAll reports whether every given token is present
func (s TokenSet) HasAll(tokens ...string) bool {
	for _, t := range tokens {
		if !s.Has(t) {
			return false
		}
	}
	return true
}

// Intersects reports whether any token of other is present
func (s TokenSet) Intersects(other TokenSet) bool {
	small, large := s, other
	if len(small) > len(large) {
		small, large = large, small
	}
	for t := range small {
		if large.Has(t) {
			return true
		}
	}
	return false
}

// ColumnTokens is the token set of a column name
func ColumnTokens(name string) TokenSet {
	return NewTokenSet(Tokenize(name)...)
}

// ContextTokens is the token set of a schema or table name with each token
// present in both its original and singular form
func ContextTokens(names ...string) TokenSet {
	set := make(TokenSet)
	for _, name := range names {
		for _, t := range Tokenize(name) {
			set[t] = struct{}{}
			set[Singularize(t)] = struct{}{}
		}
	}
	return set
}
