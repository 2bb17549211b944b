package matcher

import (
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

func temporalMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:         "AuditTimestampMatcher",
			Key:        keys.AuditTimestamp,
			Rank:       PriorityWeak,
			Categories: []sqltype.Category{sqltype.Date},
			Strong: []string{
				"createdat", "createddate", "createdon", "modifieddate", "modifiedat",
				"modifiedon", "updatedat", "updatedon", "lastmodified", "lastupdated",
				"insertdate", "inserteddate", "datecreated", "datemodified", "dateupdated",
				"creationdate", "changedate", "changeddate", "deletedat", "archivedat",
			},
			Tokens: []string{"created", "modified", "updated", "inserted", "changed", "deleted"},
		},
		&Rule{
			ID:         "YearNameMatcher",
			Key:        keys.Year,
			Rank:       PriorityDefault,
			Categories: []sqltype.Category{sqltype.Integer},
			Exclude:    []string{"id", "count", "days", "age", "years", "number"},
			Strong:     []string{"fiscalyear", "modelyear", "calendaryear", "schoolyear", "academicyear"},
			Tokens:     []string{"year", "yr", "yyyy"},
		},
	}
}

// typeDrivenMatchers fire on engine types whose values are fixed by the type itself
func typeDrivenMatchers() []Matcher {
	return []Matcher{
		&Rule{
			ID:         "EnumTypeMatcher",
			Key:        keys.EnumValue,
			Rank:       PriorityTypeDriven,
			Categories: []sqltype.Category{sqltype.Enum},
			Check:      hasEnumValues,
		},
		&Rule{
			ID:         "SetTypeMatcher",
			Key:        keys.SetValue,
			Rank:       PriorityTypeDriven,
			Categories: []sqltype.Category{sqltype.Set},
			Check:      hasEnumValues,
		},
		&Rule{
			ID:        "YearTypeMatcher",
			Key:       keys.Year,
			Rank:      PriorityTypeDriven,
			TypeNames: []string{"year"},
			Check:     hasTypeName("year"),
		},
	}
}

func hasEnumValues(column models.ColumnMetadata, _ models.TableMetadata) bool {
	return len(sqltype.EnumValues(column.ColumnType)) > 0
}
