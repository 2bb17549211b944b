package generator

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/naming"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

func contactStrategies(e *env) []*strategy {
	return []*strategy{
		{
			key:      keys.Email,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(models.ColumnMetadata) string {
				first := naming.Normalize(e.faker.Person().FirstName())
				last := naming.Normalize(e.faker.Person().LastName())
				return fmt.Sprintf("%s.%s%d@%s", first, last, e.between(1, 999), e.pick(emailDomains))
			}),
			shape: truncateEmail,
		},
		{
			key:      keys.PhoneNumber,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Phone().Number() }),
		},
		{
			key:      keys.URL,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw:     textDraw(func(models.ColumnMetadata) string { return e.faker.Internet().URL() }),
		},
		{
			key:       keys.IPAddress,
			env:       e,
			nullRate:  defaultNullRate,
			accepts:   textOnly,
			typeNames: []string{"inet", "cidr"},
			domain:    fixedDomain(1 << 32),
			draw: textDraw(func(column models.ColumnMetadata) string {
				// one in ten is v6 when the column can hold it
				if (!column.HasMaxLength() || column.MaxLength >= 39) && e.intn(10) == 0 {
					return e.faker.Internet().Ipv6()
				}
				return e.faker.Internet().Ipv4()
			}),
		},
		{
			key:      keys.Hostname,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			draw: textDraw(func(column models.ColumnMetadata) string {
				label := fmt.Sprintf("%s-%02d", e.pick(hostRoles), e.between(1, 99))
				fqdn := label + "." + e.faker.Internet().Domain()
				if column.HasMaxLength() && int64(len(fqdn)) > column.MaxLength {
					return label
				}
				return fqdn
			}),
		},
		{
			key:       keys.MACAddress,
			env:       e,
			nullRate:  defaultNullRate,
			accepts:   textOnly,
			typeNames: []string{"macaddr", "macaddr8"},
			draw:      textDraw(func(models.ColumnMetadata) string { return strings.ToUpper(e.faker.Internet().MacAddress()) }),
		},
		{
			key:      keys.PasswordHash,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.String, sqltype.Binary},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				sum := sha256.Sum256([]byte(e.faker.Internet().Password() + e.faker.RandomStringWithLength(16)))
				if sqltype.Is(column.DataType, sqltype.Binary) {
					n := len(sum)
					if column.HasMaxLength() && column.MaxLength < int64(n) {
						n = int(column.MaxLength)
					}
					return models.Bytes(sum[:n]), nil
				}
				return models.Text(hex.EncodeToString(sum[:])), nil
			},
		},
	}
}
