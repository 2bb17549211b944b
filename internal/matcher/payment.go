package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/naming"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

func paymentMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:         "CreditCardNumberMatcher",
			Key:        keys.CreditCardNumber,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  12,
			Exclude: []string{
				"type", "expiry", "exp", "expiration", "expires", "cvv", "cvc", "holder",
				"name", "month", "year", "approval", "last", "four", "4", "token", "hash",
				"masked", "brand", "issuer", "count", "verified",
			},
			Strong: []string{"creditcardnumber", "cardnumber", "ccnumber", "cardno", "ccnum", "debitcardnumber", "primaryaccountnumber"},
			Combos: [][]string{{"card", "number"}, {"card", "no"}, {"card", "num"}, {"cc", "number"}, {"credit", "card"}},
			Tokens: []string{"pan"},
		},
		&Rule{
			ID:         "CreditCardTypeMatcher",
			Key:        keys.CreditCardType,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  3,
			Exclude:    []string{"id", "code"},
			Strong:     []string{"creditcardtype", "cardtype", "cctype", "cardbrand", "cardnetwork", "cardscheme"},
			Combos:     [][]string{{"card", "type"}, {"card", "brand"}, {"card", "network"}},
		},
		&Rule{
			ID:         "CreditCardExpiryMatcher",
			Key:        keys.CreditCardExpiry,
			Rank:       PriorityHigh,
			Categories: []sqltype.Category{sqltype.Date, sqltype.String, sqltype.Integer},
			Exclude: []string{
				"password", "session", "token", "cookie", "cache", "lock", "license", "licence",
				"subscription", "trial", "key", "certificate", "cert", "passport", "contract",
				"warranty", "policy", "membership", "offer", "coupon", "visa",
			},
			Strong: []string{"cardexpiry", "cardexpiration", "ccexp", "expdate", "expmonth", "expyear"},
			Combos: [][]string{{"exp", "date"}, {"exp", "month"}, {"exp", "year"}, {"card", "expiry"}, {"card", "expiration"}},
			Check: func(column models.ColumnMetadata, table models.TableMetadata) bool {
				return tableInContext(column, table, "card", "creditcard", "payment", "wallet") &&
					naming.ColumnTokens(column.Name).Intersects(naming.NewTokenSet("expiry", "expiration", "expires"))
			},
		},
		&Rule{
			ID:         "CreditCardCVVMatcher",
			Key:        keys.CreditCardCVV,
			Rank:       PriorityHigh,
			Categories: []sqltype.Category{sqltype.String, sqltype.Integer},
			MinLength:  3,
			MaxLength:  4,
			Strong:     []string{"cvv", "cvc", "securitycode", "cardverification", "cardcode"},
			Tokens:     []string{"cvv", "cvc", "csc", "cvn"},
		},
		&Rule{
			ID:         "TaxIDMatcher",
			Key:        keys.TaxID,
			Rank:       PriorityHigh,
			Categories: []sqltype.Category{sqltype.String, sqltype.Integer},
			MinLength:  9,
			Exclude:    []string{"rate", "amount", "amt", "percent", "exempt", "exemption", "type", "status", "total", "code", "class"},
			Strong:     []string{"taxid", "taxnumber", "taxidentification", "taxregistration", "vatnumber", "vatid", "employeridentification"},
			Combos:     [][]string{{"tax", "id"}, {"tax", "no"}, {"tax", "num"}, {"tax", "number"}, {"vat", "no"}},
			Tokens:     []string{"ein", "fein", "tin"},
		},
		&Rule{
			ID:          "BankAccountNumberMatcher",
			Key:         keys.BankAccountNumber,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   6,
			StopSchemas: true,
			Exclude:     []string{"type", "name", "status", "holder", "manager", "owner"},
			Strong:      []string{"bankaccount", "accountnumber", "iban", "acctnumber", "acctno", "accountno"},
			Combos:      [][]string{{"account", "number"}, {"acct", "number"}, {"account", "no"}, {"acct", "no"}, {"account", "num"}},
			Tokens:      []string{"iban"},
		},
		&Rule{
			ID:          "RoutingNumberMatcher",
			Key:         keys.RoutingNumber,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   6,
			StopSchemas: true,
			Strong:      []string{"routingnumber", "routingno", "abanumber", "sortcode", "swiftcode", "bankcode", "transitnumber"},
			Combos:      [][]string{{"routing", "number"}, {"routing", "no"}, {"aba", "number"}, {"sort", "code"}},
			Tokens:      []string{"aba", "swift", "bic", "routing"},
		},
	}
}
