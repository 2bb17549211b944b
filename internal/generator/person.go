package generator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

var (
	textOnly    = []sqltype.Category{sqltype.String}
	intOnly     = []sqltype.Category{sqltype.Integer}
	dateOnly    = []sqltype.Category{sqltype.Date}
	textOrInt   = []sqltype.Category{sqltype.String, sqltype.Integer}
	textOrFloat = []sqltype.Category{sqltype.String, sqltype.Decimal}
)

// codeOrName picks the short code list for single-character columns
func codeOrName(column models.ColumnMetadata, codes, names []string) []string {
	if column.HasMaxLength() && column.MaxLength < 3 {
		return codes
	}
	return names
}

func personStrategies(e *env) []*strategy {
	return []*strategy{
		{
			key:      keys.FirstName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Person().FirstName() }),
		},
		{
			key:      keys.MiddleName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(column models.ColumnMetadata) string {
				name := e.faker.Person().FirstName()
				// short columns hold an initial
				if column.HasMaxLength() && column.MaxLength < 3 && name != "" {
					return name[:1]
				}
				return name
			}),
		},
		{
			key:      keys.LastName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Person().LastName() }),
		},
		{
			key:      keys.FullName,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(models.ColumnMetadata) string {
				return e.faker.Person().FirstName() + " " + e.faker.Person().LastName()
			}),
		},
		{
			key:      keys.NameTitle,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   fixedDomain(len(nameTitles)),
			draw:     listDraw(e, nameTitles),
		},
		{
			key:      keys.NameSuffix,
			env:      e,
			nullRate: 0.5,
			accepts:  textOnly,
			domain:   fixedDomain(len(nameSuffixes)),
			draw:     listDraw(e, nameSuffixes),
		},
		{
			key:      keys.Gender,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain: func(column models.ColumnMetadata) int64 {
				return int64(len(codeOrName(column, genderCodes, genders)))
			},
			draw: textDraw(func(column models.ColumnMetadata) string {
				return e.pick(codeOrName(column, genderCodes, genders))
			}),
		},
		{
			key:      keys.BirthDate,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  dateOnly,
			domain: func(models.ColumnMetadata) int64 {
				from, to := birthWindow(e)
				return daysBetween(from, to)
			},
			draw: func(models.ColumnMetadata) (models.Value, error) {
				from, to := birthWindow(e)
				return models.Timestamp(randomDay(e, from, to)), nil
			},
		},
		{
			key:      keys.NationalID,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			// areas 1..899 less 666, groups 1..99, serials 1..9999
			domain: fixedDomain(898 * 99 * 9999),
			draw: textDraw(func(column models.ColumnMetadata) string {
				area := e.between(1, 898)
				if area >= 666 {
					area++
				}
				group, serial := e.between(1, 99), e.between(1, 9999)
				if column.HasMaxLength() && column.MaxLength < 11 {
					return fmt.Sprintf("%03d%02d%04d", area, group, serial)
				}
				return fmt.Sprintf("%03d-%02d-%04d", area, group, serial)
			}),
		},
		{
			key:      keys.Username,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(models.ColumnMetadata) string {
				user := strings.ToLower(e.faker.Internet().User())
				if e.intn(2) == 0 {
					user += strconv.FormatInt(e.between(1, 9999), 10)
				}
				return user
			}),
		},
		{
			key:      keys.JobTitle,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Company().JobTitle() }),
		},
		{
			key:      keys.MaritalStatus,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain: func(column models.ColumnMetadata) int64 {
				return int64(len(codeOrName(column, maritalCodes, maritalStatuses)))
			},
			draw: textDraw(func(column models.ColumnMetadata) string {
				return e.pick(codeOrName(column, maritalCodes, maritalStatuses))
			}),
		},
		{
			key:      keys.Age,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  intOnly,
			domain: func(column models.ColumnMetadata) int64 {
				lo, hi := intRange(column, 18, 90)
				return hi - lo + 1
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				return models.Int(e.between(intRange(column, 18, 90))), nil
			},
		},
	}
}
