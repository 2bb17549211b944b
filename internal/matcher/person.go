package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
)

var text = []sqltype.Category{sqltype.String}

// nonPersonNames rules out "name" columns that describe things rather than people
var nonPersonNames = []string{
	"company", "business", "file", "product", "server", "host", "table",
	"column", "schema", "database", "db", "domain", "brand", "item",
	"category", "department", "dept", "project", "app", "application",
	"device", "machine", "service", "queue", "topic", "bucket", "folder",
	"directory", "path", "class", "type", "model", "sku", "store",
}

func personMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:          "FirstNameMatcher",
			Key:         keys.FirstName,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   2,
			StopSchemas: true,
			Exclude:     nonPersonNames,
			Strong:      []string{"firstname", "givenname", "forename", "christianname"},
			Combos:      [][]string{{"first", "name"}, {"given", "name"}, {"f", "name"}},
			Tokens:      []string{"fname"},
			Context:     personContext,
			GatedExactly: []string{
				"first", "given",
			},
		},
		&Rule{
			ID:           "MiddleNameMatcher",
			Key:          keys.MiddleName,
			Rank:         PriorityDefault,
			Categories:   text,
			StopSchemas:  true,
			Exclude:      nonPersonNames,
			Strong:       []string{"middlename", "middleinitial"},
			Combos:       [][]string{{"middle", "name"}, {"middle", "initial"}},
			Tokens:       []string{"mname"},
			Context:      personContext,
			GatedExactly: []string{"mi", "middle"},
		},
		&Rule{
			ID:           "LastNameMatcher",
			Key:          keys.LastName,
			Rank:         PriorityDefault,
			Categories:   text,
			MinLength:    2,
			StopSchemas:  true,
			Exclude:      append([]string{"modified", "updated", "login", "logon", "changed", "seen", "activity", "run", "sync"}, nonPersonNames...),
			Strong:       []string{"lastname", "surname", "familyname", "maidenname"},
			Combos:       [][]string{{"last", "name"}, {"family", "name"}, {"sur", "name"}, {"l", "name"}},
			Tokens:       []string{"lname", "surname"},
			Context:      personContext,
			GatedExactly: []string{"last", "family"},
		},
		&Rule{
			ID:          "FullNameMatcher",
			Key:         keys.FullName,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   5,
			StopSchemas: true,
			Exclude:     append([]string{"login", "first", "last", "middle", "nick", "screen"}, nonPersonNames...),
			Strong: []string{
				"fullname", "personname", "customername", "contactname", "employeename",
				"membername", "patientname", "studentname", "authorname", "ownername",
				"recipientname", "cardholdername", "cardholder", "accountholder",
				"guestname", "passengername", "managername", "representativename",
			},
			Combos:      [][]string{{"full", "name"}, {"person", "name"}, {"display", "name"}, {"legal", "name"}},
			Context:     personContext,
			GatedCombos: [][]string{{"name", "full"}},
		},
		&Rule{
			ID:           "NameTitleMatcher",
			Key:          keys.NameTitle,
			Rank:         PriorityDefault,
			Categories:   text,
			MaxLength:    20,
			StopSchemas:  true,
			Exclude:      []string{"job", "book", "song", "movie", "page", "article", "document", "post", "product", "course"},
			Strong:       []string{"nametitle", "honorific", "salutation", "courtesytitle", "titleofcourtesy", "nameprefix"},
			Combos:       [][]string{{"name", "prefix"}},
			Context:      honorificContext,
			GatedExactly: []string{"title", "prefix"},
		},
		&Rule{
			ID:          "NameSuffixMatcher",
			Key:         keys.NameSuffix,
			Rank:        PriorityDefault,
			Categories:  text,
			MaxLength:   15,
			StopSchemas: true,
			Exclude:     []string{"file", "url", "domain", "street", "address", "phone", "dns", "table", "code", "version"},
			Strong:      []string{"namesuffix", "generationsuffix", "generationalsuffix"},
			Combos:      [][]string{{"name", "suffix"}},
			Context:     personContext,
			GatedTokens: []string{"suffix"},
		},
		&Rule{
			ID:          "GenderMatcher",
			Key:         keys.Gender,
			Rank:        PriorityDefault,
			Categories:  text,
			StopSchemas: true,
			Exclude:     []string{"preference", "preferred", "target", "id", "code", "pronoun"},
			Tokens:      []string{"gender", "sex"},
			Strong:      []string{"gender"},
		},
		&Rule{
			ID:         "BirthDateMatcher",
			Key:        keys.BirthDate,
			Rank:       PriorityDefault,
			Categories: []sqltype.Category{sqltype.Date},
			Strong:     []string{"birthdate", "dateofbirth", "birthday", "dob"},
			Combos:     [][]string{{"birth", "date"}, {"birth", "day"}, {"born", "on"}},
			Tokens:     []string{"dob"},
		},
		&Rule{
			ID:          "NationalIDMatcher",
			Key:         keys.NationalID,
			Rank:        PriorityHigh,
			Categories:  text,
			MinLength:   9,
			StopSchemas: true,
			Exclude:     []string{"type", "issuer", "country", "expiry", "expiration"},
			Strong: []string{
				"socialsecurity", "nationalid", "nationalidentification",
				"nationalinsurance", "taxpayerid", "socialinsurance",
			},
			Tokens: []string{"ssn", "nin", "sin"},
		},
		&Rule{
			ID:          "UsernameMatcher",
			Key:         keys.Username,
			Rank:        PriorityDefault,
			Categories:  text,
			MinLength:   4,
			StopSchemas: false,
			Exclude: []string{
				"password", "attempt", "attempts", "count", "date", "time", "failed",
				"last", "type", "status", "enabled", "disabled", "at", "on",
			},
			Strong: []string{"username", "userlogin", "loginname", "loginid", "screenname", "nickname", "userhandle"},
			Combos: [][]string{{"user", "name"}, {"login", "name"}, {"login", "id"}, {"screen", "name"}, {"nick", "name"}},
			Tokens: []string{"login", "username", "nickname", "handle"},
		},
		&Rule{
			ID:           "JobTitleMatcher",
			Key:          keys.JobTitle,
			Rank:         PriorityDefault,
			Categories:   text,
			MinLength:    10,
			Exclude:      []string{"id", "code", "level", "grade"},
			Strong:       []string{"jobtitle", "occupation", "jobname", "designation", "jobposition"},
			Combos:       [][]string{{"job", "title"}, {"job", "name"}, {"position", "title"}},
			Tokens:       []string{"occupation", "profession"},
			Context:      employeeContext,
			GatedExactly: []string{"title", "position", "role"},
		},
		&Rule{
			ID:          "MaritalStatusMatcher",
			Key:         keys.MaritalStatus,
			Rank:        PriorityDefault,
			Categories:  text,
			StopSchemas: true,
			Strong:      []string{"maritalstatus", "civilstatus", "marriagestatus"},
			Combos:      [][]string{{"marital", "status"}, {"civil", "status"}},
			Tokens:      []string{"marital"},
		},
		&Rule{
			ID:          "AgeMatcher",
			Key:         keys.Age,
			Rank:        PriorityDefault,
			Categories:  []sqltype.Category{sqltype.Integer},
			StopSchemas: true,
			Exclude:     []string{"min", "max", "minimum", "maximum", "limit", "group", "bucket", "days", "hours", "seconds", "cache"},
			Tokens:      []string{"age"},
			Combos:      [][]string{{"age", "years"}},
		},
	}
}
