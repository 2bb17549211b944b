package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

func contactMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:         "EmailMatcher",
			Key:        keys.Email,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  5,
			Exclude: []string{
				"verified", "confirmed", "sent", "opt", "optin", "template", "subscription",
				"bounce", "bounced", "status", "flag", "count", "type", "format", "promotion",
				"enabled", "preference", "frequency", "body", "subject", "queue", "log",
			},
			Strong: []string{"email", "emailaddress", "mailaddress"},
			Tokens: []string{"mail"},
			Combos: [][]string{{"e", "mail"}},
		},
		&Rule{
			ID:         "PhoneNumberMatcher",
			Key:        keys.PhoneNumber,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  7,
			Exclude: []string{
				"headphone", "headphones", "earphone", "earphones", "microphone", "microphones",
				"smartphone", "smartphones", "iphone", "type", "extension", "ext", "verified",
				"country", "model", "brand",
			},
			Strong: []string{"phonenumber", "telephone", "mobilenumber", "cellnumber", "faxnumber", "phone"},
			Tokens: []string{"phone", "telephone", "mobile", "cell", "fax", "tel", "cellphone"},
		},
		&Rule{
			ID:         "URLMatcher",
			Key:        keys.URL,
			Rank:       PriorityHigh,
			Categories: text,
			MinLength:  10,
			Exclude:    []string{"curl", "shortener", "status", "type", "count", "valid"},
			Strong:     []string{"url", "website", "webpage", "homepage", "weburl", "webaddress", "permalink"},
			Tokens:     []string{"url", "uri", "website", "link", "href", "site"},
		},
		&Rule{
			ID:         "IPAddressMatcher",
			Key:        keys.IPAddress,
			Rank:       PriorityHigh,
			Categories: text,
			TypeNames:  []string{"inet", "cidr"},
			MinLength:  7,
			Exclude:    []string{"range", "type", "version", "count", "allowed", "blocked"},
			Strong:     []string{"ipaddress", "ipv4", "ipv6", "ipaddr", "clientip", "remoteip", "hostip", "sourceip", "serverip"},
			Combos:     [][]string{{"ip", "address"}, {"ip", "addr"}},
			Tokens:     []string{"ip"},
			Check:      hasTypeName("inet", "cidr"),
		},
		&Rule{
			ID:         "HostnameMatcher",
			Key:        keys.Hostname,
			Rank:       PriorityDefault,
			Categories: text,
			MinLength:  4,
			Exclude:    []string{"ip", "id", "port", "type", "count", "group", "os", "user", "status"},
			Strong:     []string{"hostname", "fqdn", "servername", "machinename", "computername", "nodename"},
			Tokens:     []string{"host", "server"},
		},
		&Rule{
			ID:         "MACAddressMatcher",
			Key:        keys.MACAddress,
			Rank:       PriorityHigh,
			Categories: text,
			TypeNames:  []string{"macaddr", "macaddr8"},
			MinLength:  12,
			Strong:     []string{"macaddress", "macaddr", "hardwareaddress"},
			Combos:     [][]string{{"mac", "address"}, {"mac", "addr"}},
			Check:      hasTypeName("macaddr", "macaddr8"),
		},
		&Rule{
			ID:         "PasswordHashMatcher",
			Key:        keys.PasswordHash,
			Rank:       PriorityDefault,
			Categories: []sqltype.Category{sqltype.String, sqltype.Binary},
			MinLength:  8,
			Exclude:    []string{"date", "changed", "expires", "expiry", "expiration", "policy", "hint", "question", "reset", "attempts", "count", "required"},
			Strong:     []string{"passwordhash", "passwordsalt", "passwd", "password", "pwdhash", "secrethash"},
			Tokens:     []string{"password", "pwd", "passwd", "salt"},
			Combos:     [][]string{{"pass", "hash"}, {"pin", "hash"}},
		},
	}
}

// hasTypeName accepts columns whose engine type already says what they hold
func hasTypeName(names ...string) func(models.ColumnMetadata, models.TableMetadata) bool {
	return func(column models.ColumnMetadata, _ models.TableMetadata) bool {
		return sqltype.IsNamed(column.DataType, names...)
	}
}
