// Package sqltype maps engine-specific data type names onto the small set of
// categories the matchers and generators reason about.
package sqltype

import (
	"math"
	"regexp"
	"strings"
)

// Category is an engine-neutral SQL type family
type Category int

const (
	Unknown Category = iota
	String
	Integer
	Decimal
	Date
	Time
	Binary
	Boolean
	GUID
	Spatial
	JSON
	XML
	Hierarchy
	Enum
	Set
)

var categoryNames = map[Category]string{
	Unknown:   "unknown",
	String:    "string",
	Integer:   "integer",
	Decimal:   "decimal",
	Date:      "date",
	Time:      "time",
	Binary:    "binary",
	Boolean:   "boolean",
	GUID:      "guid",
	Spatial:   "spatial",
	JSON:      "json",
	XML:       "xml",
	Hierarchy: "hierarchy",
	Enum:      "enum",
	Set:       "set",
}

func (c Category) String() string {
	return categoryNames[c]
}

// Categories lists every category, Unknown last
func Categories() []Category {
	return []Category{String, Integer, Decimal, Date, Time, Binary, Boolean, GUID, Spatial, JSON, XML, Hierarchy, Enum, Set, Unknown}
}

var typeCategories = map[string]Category{
	"char":     String, "varchar": String, "nchar": String, "nvarchar": String,
	"text":     String, "ntext": String, "tinytext": String, "mediumtext": String,
	"longtext": String, "character varying": String, "character": String,
	"bpchar":   String, "citext": String, "name": String, "sysname": String,
	"string":   String, "clob": String,

	"tinyint": Integer, "smallint": Integer, "mediumint": Integer, "int": Integer,
	"integer": Integer, "bigint": Integer, "int2": Integer, "int4": Integer,
	"int8":    Integer, "smallserial": Integer, "serial": Integer, "bigserial": Integer,
	"year":    Integer,

	"decimal": Decimal, "numeric": Decimal, "money": Decimal, "smallmoney": Decimal,
	"float":   Decimal, "real": Decimal, "double": Decimal, "double precision": Decimal,
	"float4":  Decimal, "float8": Decimal,

	"date":           Date, "datetime": Date, "datetime2": Date, "smalldatetime": Date,
	"datetimeoffset": Date, "timestamp": Date,
	"timestamptz":    Date, "timestamp without time zone": Date, "timestamp with time zone": Date,

	"time": Time, "timetz": Time, "time without time zone": Time, "time with time zone": Time,

	"binary":   Binary, "varbinary": Binary, "image": Binary, "blob": Binary,
	"tinyblob": Binary, "mediumblob": Binary, "longblob": Binary, "bytea": Binary,

	"bit": Boolean, "bool": Boolean, "boolean": Boolean,

	"uniqueidentifier": GUID, "uuid": GUID,

	"geometry":     Spatial, "geography": Spatial, "point": Spatial, "linestring": Spatial,
	"polygon":      Spatial, "multipoint": Spatial, "multilinestring": Spatial,
	"multipolygon": Spatial, "geometrycollection": Spatial,

	"json":        JSON, "jsonb": JSON,
	"xml":         XML,
	"hierarchyid": Hierarchy,
	"enum":        Enum,
	"set":         Set,
}

// BaseName lowercases a data type and strips length arguments and modifiers,
// so "NVARCHAR(50)" gives "nvarchar" and "int unsigned" gives "int".
func BaseName(dataType string) string {
	name := strings.ToLower(strings.TrimSpace(dataType))
	if i := strings.IndexByte(name, '('); i >= 0 {
		name = strings.TrimSpace(name[:i])
	}
	for _, modifier := range []string{" unsigned", " zerofill", " signed", " identity"} {
		name = strings.TrimSuffix(name, modifier)
	}
	return strings.TrimSpace(name)
}

// Categorize returns the category of a data type name. Empty or unrecognized
// names are Unknown.
func Categorize(dataType string) Category {
	if c, ok := typeCategories[BaseName(dataType)]; ok {
		return c
	}
	return Unknown
}

// Is reports whether the data type falls into one of the categories
func Is(dataType string, categories ...Category) bool {
	c := Categorize(dataType)
	for _, want := range categories {
		if c == want {
			return true
		}
	}
	return false
}

// IsNamed reports whether the base name of the data type is one of names
func IsNamed(dataType string, names ...string) bool {
	base := BaseName(dataType)
	for _, n := range names {
		if base == n {
			return true
		}
	}
	return false
}

// HasTimeOfDay reports whether a Date category type also stores a time of day
func HasTimeOfDay(dataType string) bool {
	return Categorize(dataType) == Date && BaseName(dataType) != "date"
}

// IsUnicode reports whether a string type stores national characters
func IsUnicode(dataType string) bool {
	return IsNamed(dataType, "nchar", "nvarchar", "ntext")
}

var integerCeilings = map[string]int64{
	"tinyint":     math.MaxUint8,
	"smallint":    math.MaxInt16,
	"int2":        math.MaxInt16,
	"smallserial": math.MaxInt16,
	"mediumint":   8388607,
	"int":         math.MaxInt32,
	"integer":     math.MaxInt32,
	"int4":        math.MaxInt32,
	"serial":      math.MaxInt32,
	"bigint":      math.MaxInt64,
	"int8":        math.MaxInt64,
	"bigserial":   math.MaxInt64,
}

// IntegerCeiling returns the largest synthetic value for an integer subtype.
// Synthetic integers never go below zero. ok is false when the type is not
// an integer subtype.
func IntegerCeiling(dataType string) (int64, bool) {
	ceiling, ok := integerCeilings[BaseName(dataType)]
	return ceiling, ok
}

var (
	memberListRegex = regexp.MustCompile(`(?i)^\s*(?:enum|set)\s*\((.*)\)\s*$`)
	memberRegex     = regexp.MustCompile(`'((?:[^']|'')*)'`)
)

// EnumValues extracts the members of an enum or set column type such as
// "enum('small','medium','large')". Doubled quotes inside a member unescape.
func EnumValues(columnType string) []string {
	matches := memberListRegex.FindStringSubmatch(columnType)
	if len(matches) < 2 {
		return nil
	}

	var values []string
	for _, m := range memberRegex.FindAllStringSubmatch(matches[1], -1) {
		values = append(values, strings.ReplaceAll(m[1], "''", "'"))
	}
	return values
}
