package matcher

// DefaultBank returns the full matcher bank in registration order. Within a
// priority band earlier entries win, so the order here is significant: phone
// rules sit ahead of company rules so that "CompanyPhone" is a phone number.
func DefaultBank() []Matcher {
	var bank []Matcher
	bank = append(bank, typeDrivenMatchers()...)
	bank = append(bank, personMatchers()...)
	bank = append(bank, contactMatchers()...)
	bank = append(bank, localeMatchers()...)
	bank = append(bank, addressMatchers()...)
	bank = append(bank, paymentMatchers()...)
	bank = append(bank, commerceMatchers()...)
	bank = append(bank, temporalMatchers()...)
	bank = append(bank, NewSpecialNameMatcher())
	bank = append(bank, fallbackMatchers()...)
	return bank
}
