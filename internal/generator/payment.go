package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/naming"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

// expiryMonths is how far ahead card expiry dates reach
const expiryMonths = 72

// integer tax IDs are EINs without the dash, a leading zero drops a digit
const (
	minEIN = 10_000_000
	maxEIN = 999_999_999
)

func digits(e *env, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + e.intn(10)))
	}
	return b.String()
}

func letters(e *env, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('A' + e.intn(26)))
	}
	return b.String()
}

// routingNumber builds a nine digit ABA number with a valid check digit
func routingNumber(e *env) string {
	d := make([]int, 9)
	for i := 0; i < 8; i++ {
		d[i] = e.intn(10)
	}
	sum := 3*(d[0]+d[3]+d[6]) + 7*(d[1]+d[4]+d[7]) + (d[2] + d[5])
	d[8] = (10 - sum%10) % 10

	var b strings.Builder
	for _, v := range d {
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}

type expiryPart int

const (
	expiryFull expiryPart = iota
	expiryMonth
	expiryYear
)

func expiryPartOf(column models.ColumnMetadata) expiryPart {
	if !sqltype.Is(column.DataType, sqltype.Integer) {
		return expiryFull
	}
	tokens := naming.ColumnTokens(column.Name)
	if tokens.Has("year") || tokens.Has("yr") || strings.Contains(naming.Normalize(column.Name), "year") {
		return expiryYear
	}
	return expiryMonth
}

func paymentStrategies(e *env) []*strategy {
	return []*strategy{
		{
			key:      keys.CreditCardNumber,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Payment().CreditCardNumber() }),
		},
		{
			key:      keys.CreditCardType,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(cardTypes)),
			draw:     listDraw(e, cardTypes),
		},
		{
			key:      keys.CreditCardExpiry,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Date, sqltype.String, sqltype.Integer},
			domain: func(column models.ColumnMetadata) int64 {
				switch expiryPartOf(column) {
				case expiryMonth:
					lo, hi := intRange(column, 1, 12)
					return hi - lo + 1
				case expiryYear:
					year := int64(e.now().UTC().Year())
					lo, hi := intRange(column, year, year+expiryMonths/12)
					return hi - lo + 1
				default:
					return expiryMonths
				}
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				now := e.now().UTC()
				start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
				expiry := start.AddDate(0, 1+e.intn(expiryMonths), 0)

				switch {
				case sqltype.Is(column.DataType, sqltype.Date):
					return models.Timestamp(expiry), nil
				case expiryPartOf(column) == expiryMonth:
					return models.Int(e.between(intRange(column, 1, 12))), nil
				case expiryPartOf(column) == expiryYear:
					return models.Int(e.between(intRange(column, int64(now.Year()), int64(now.Year())+expiryMonths/12))), nil
				case column.HasMaxLength() && column.MaxLength == 4:
					return models.Text(expiry.Format("0106")), nil
				default:
					return models.Text(expiry.Format("01/06")), nil
				}
			},
		},
		{
			key:      keys.CreditCardCVV,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOrInt,
			domain: func(column models.ColumnMetadata) int64 {
				if sqltype.Is(column.DataType, sqltype.Integer) {
					lo, hi := intRange(column, 100, 999)
					return hi - lo + 1
				}
				return 1000
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				if sqltype.Is(column.DataType, sqltype.Integer) {
					return models.Int(e.between(intRange(column, 100, 999))), nil
				}
				return models.Text(digits(e, 3)), nil
			},
		},
		{
			key:      keys.TaxID,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOrInt,
			domain: func(column models.ColumnMetadata) int64 {
				if sqltype.Is(column.DataType, sqltype.Integer) {
					lo, hi := intRange(column, minEIN, maxEIN)
					return hi - lo + 1
				}
				return maxEIN - minEIN + 1
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				if sqltype.Is(column.DataType, sqltype.Integer) {
					return models.Int(e.between(intRange(column, minEIN, maxEIN))), nil
				}
				// EIN layout NN-NNNNNNN
				ein := fmt.Sprintf("%02d-%07d", e.faker.Company().EIN(), e.between(0, 9999999))
				if column.HasMaxLength() && column.MaxLength < int64(len(ein)) {
					ein = strings.Replace(ein, "-", "", 1)
				}
				return models.Text(ein), nil
			},
		},
		{
			key:      keys.BankAccountNumber,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(column models.ColumnMetadata) string {
				if naming.ColumnTokens(column.Name).Has("iban") && (!column.HasMaxLength() || column.MaxLength >= 22) {
					return fmt.Sprintf("GB%02d%s%s", e.between(10, 99), letters(e, 4), digits(e, 14))
				}
				n := 10 + e.intn(3)
				if column.HasMaxLength() && int64(n) > column.MaxLength {
					n = int(column.MaxLength)
				}
				return digits(e, n)
			}),
		},
		{
			key:      keys.RoutingNumber,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(100000000),
			draw:     textDraw(func(models.ColumnMetadata) string { return routingNumber(e) }),
		},
	}
}
