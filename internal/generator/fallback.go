package generator

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

const (
	// maxGeneratedText caps free text drawn for unbounded columns
	maxGeneratedText = 100

	// maxGeneratedBytes caps binary payloads
	maxGeneratedBytes = 100

	alphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"
)

var bitWidthRegex = regexp.MustCompile(`(?i)bit\s*\((\d+)\)`)

// bitWidth returns n for bit(n) column types, 1 otherwise
func bitWidth(column models.ColumnMetadata) int {
	matches := bitWidthRegex.FindStringSubmatch(column.ColumnType)
	if len(matches) < 2 {
		return 1
	}
	n, err := strconv.Atoi(matches[1])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// isFlag reports whether an integer column is really a MySQL boolean
func isFlag(column models.ColumnMetadata) bool {
	return strings.HasPrefix(strings.ToLower(column.ColumnType), "tinyint(1)")
}

func integerCeiling(column models.ColumnMetadata) int64 {
	if isFlag(column) {
		return 1
	}
	if ceiling, ok := sqltype.IntegerCeiling(column.DataType); ok {
		return ceiling
	}
	return math.MaxInt32
}

// intRange narrows [lo, hi] to what an integer column can store. A range
// lying wholly above the ceiling collapses to [0, ceiling].
func intRange(column models.ColumnMetadata, lo, hi int64) (int64, int64) {
	if !sqltype.Is(column.DataType, sqltype.Integer) {
		return lo, hi
	}
	ceiling := integerCeiling(column)
	if hi > ceiling {
		hi = ceiling
	}
	if lo > hi {
		lo = 0
	}
	return lo, hi
}

func binaryLength(column models.ColumnMetadata) int {
	if column.HasMaxLength() && column.MaxLength < maxGeneratedBytes {
		return int(column.MaxLength)
	}
	if sqltype.IsNamed(column.DataType, "tinyblob") {
		return 64
	}
	return maxGeneratedBytes
}

func randomString(e *env, n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphanumeric[e.intn(len(alphanumeric))])
	}
	return b.String()
}

// anyString sizes free text to the declared length. Short columns get random
// alphanumerics so that unique requests have room, longer ones get lorem text.
func anyString(e *env, column models.ColumnMetadata) string {
	length := int64(maxGeneratedText)
	if column.HasMaxLength() && column.MaxLength < length {
		length = column.MaxLength
	}
	switch {
	case length <= 10:
		return randomString(e, int(length))
	case length <= 50:
		return e.faker.Lorem().Sentence(int(length / 10))
	default:
		return e.faker.Lorem().Paragraph(int(length / 30))
	}
}

func anyStringDomain(column models.ColumnMetadata) int64 {
	if column.HasMaxLength() && column.MaxLength <= 10 {
		return pow(int64(len(alphanumeric)), column.MaxLength)
	}
	return Unbounded
}

// anyJSON picks a document shape from the column name
func anyJSON(e *env, column models.ColumnMetadata) (string, error) {
	name := strings.ToLower(column.Name)

	var data interface{}
	switch {
	case strings.Contains(name, "address"):
		data = map[string]interface{}{
			"street":  e.faker.Address().StreetAddress(),
			"city":    e.faker.Address().City(),
			"state":   e.pick(stateNames()),
			"zipCode": e.faker.Address().PostCode(),
			"country": countries[e.intn(len(countries))].name,
		}
	case strings.Contains(name, "person") || strings.Contains(name, "user") || strings.Contains(name, "contact"):
		data = map[string]interface{}{
			"firstName": e.faker.Person().FirstName(),
			"lastName":  e.faker.Person().LastName(),
			"phone":     e.faker.Phone().Number(),
		}
	case strings.Contains(name, "product"):
		data = map[string]interface{}{
			"name":        titleCase(e.pick(productAdjectives) + " " + e.pick(productNouns)),
			"price":       fmt.Sprintf("%.2f", e.rng.Float64()*1000),
			"description": e.faker.Lorem().Sentence(10),
			"category":    e.pick(jsonTags.categories),
		}
	case strings.Contains(name, "meta") || strings.Contains(name, "attributes"):
		from, to := dateWindow(e)
		data = map[string]interface{}{
			"created": randomDay(e, from, to).Format("2006-01-02T15:04:05Z"),
			"author":  e.faker.Person().FirstName() + " " + e.faker.Person().LastName(),
			"version": fmt.Sprintf("%d.%d.%d", e.intn(10), e.intn(10), e.intn(10)),
		}
	case strings.Contains(name, "dimension"):
		data = map[string]interface{}{
			"width":  roundTo(e.rng.Float64()*100, 2),
			"height": roundTo(e.rng.Float64()*100, 2),
			"depth":  roundTo(e.rng.Float64()*50, 2),
			"unit":   "cm",
		}
	case strings.Contains(name, "tags"):
		var tags []string
		for i, n := 0, e.intn(3)+1; i < n; i++ {
			tags = append(tags, e.pick(jsonTags.categories))
		}
		for i, n := 0, e.intn(2)+1; i < n; i++ {
			tags = append(tags, e.pick(jsonTags.features))
		}
		data = tags
	default:
		data = map[string]interface{}{
			"id":      e.intn(1000),
			"name":    e.faker.Lorem().Word(),
			"value":   e.faker.Lorem().Sentence(5),
			"enabled": e.intn(2) == 1,
		}
	}

	out, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("marshal json document: %w", err)
	}
	return string(out), nil
}

type xmlItem struct {
	ID    int    `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlDocument struct {
	XMLName xml.Name  `xml:"root"`
	Items   []xmlItem `xml:"item"`
}

func anyXML(e *env) (string, error) {
	doc := xmlDocument{}
	for i, n := 0, e.intn(3)+1; i < n; i++ {
		doc.Items = append(doc.Items, xmlItem{ID: i + 1, Value: e.faker.Lorem().Word()})
	}
	out, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("marshal xml document: %w", err)
	}
	return string(out), nil
}

func lngLat(e *env, latLimit, lngLimit float64) (float64, float64) {
	lat := e.rng.Float64()*2*latLimit - latLimit
	lng := e.rng.Float64()*2*lngLimit - lngLimit
	return lng, lat
}

// anySpatial draws a WKT geometry of the column's type
func anySpatial(e *env, column models.ColumnMetadata) string {
	switch sqltype.BaseName(column.DataType) {
	case "linestring":
		points := make([]string, e.intn(4)+2)
		for i := range points {
			lng, lat := lngLat(e, 90, 180)
			points[i] = fmt.Sprintf("%f %f", lng, lat)
		}
		return fmt.Sprintf("LINESTRING(%s)", strings.Join(points, ", "))
	case "polygon":
		// a small rectangle kept well inside the valid range
		lng1, lat1 := lngLat(e, 40, 40)
		lng2, lat2 := lng1+e.rng.Float64()*10, lat1+e.rng.Float64()*10
		return fmt.Sprintf("POLYGON((%f %f, %f %f, %f %f, %f %f, %f %f))",
			lng1, lat1, lng2, lat1, lng2, lat2, lng1, lat2, lng1, lat1)
	default:
		lng, lat := lngLat(e, 90, 180)
		return fmt.Sprintf("POINT(%f %f)", lng, lat)
	}
}

// anyHierarchy draws a hierarchyid path such as /1/4/2/
func anyHierarchy(e *env) string {
	var b strings.Builder
	b.WriteString("/")
	for i, n := 0, e.intn(3)+1; i < n; i++ {
		b.WriteString(strconv.Itoa(e.intn(20) + 1))
		b.WriteString("/")
	}
	return b.String()
}

// memberDomain sizes enum and set generators
func memberDomain(set bool) func(models.ColumnMetadata) int64 {
	return func(column models.ColumnMetadata) int64 {
		n := int64(len(sqltype.EnumValues(column.ColumnType)))
		if n == 0 {
			return Unbounded
		}
		if set {
			return pow(2, n) - 1
		}
		return n
	}
}

func enumDraw(e *env) drawFunc {
	return func(column models.ColumnMetadata) (models.Value, error) {
		values := sqltype.EnumValues(column.ColumnType)
		if len(values) == 0 {
			return truncate(column, models.Text(e.faker.Lorem().Word())), nil
		}
		return models.Text(e.pick(values)), nil
	}
}

// setDraw picks a non-empty subset, kept in declaration order
func setDraw(e *env) drawFunc {
	return func(column models.ColumnMetadata) (models.Value, error) {
		values := sqltype.EnumValues(column.ColumnType)
		if len(values) == 0 {
			return truncate(column, models.Text(e.faker.Lorem().Word())), nil
		}
		chosen := e.rng.Perm(len(values))[:e.intn(len(values))+1]
		picked := make([]bool, len(values))
		for _, i := range chosen {
			picked[i] = true
		}
		var selected []string
		for i, v := range values {
			if picked[i] {
				selected = append(selected, v)
			}
		}
		return models.Text(strings.Join(selected, ",")), nil
	}
}

func fallbackStrategies(e *env) []*strategy {
	enumKinds := []sqltype.Category{sqltype.Enum, sqltype.String}
	setKinds := []sqltype.Category{sqltype.Set, sqltype.String}

	return []*strategy{
		{
			key:      keys.AnyString,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOnly,
			domain:   anyStringDomain,
			draw:     textDraw(func(column models.ColumnMetadata) string { return anyString(e, column) }),
		},
		{
			key:      keys.AnyInteger,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  intOnly,
			domain: func(column models.ColumnMetadata) int64 {
				ceiling := integerCeiling(column)
				if ceiling == Unbounded {
					return Unbounded
				}
				return ceiling + 1
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				return models.Int(e.between(0, integerCeiling(column))), nil
			},
		},
		{
			key:      keys.AnyDecimal,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Decimal},
			domain: func(column models.ColumnMetadata) int64 {
				scale, limit := decimalBounds(column, 1000)
				return mul(int64(limit)+1, pow(10, scale))
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				scale, limit := decimalBounds(column, 1000)
				return models.Decimal(roundTo(e.rng.Float64()*limit, scale), int(scale)), nil
			},
		},
		{
			key:      keys.AnyDate,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  dateOnly,
			domain: func(column models.ColumnMetadata) int64 {
				from, to := dateWindow(e)
				return dateDomain(column, from, to)
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				from, to := dateWindow(e)
				return dateValue(e, column, from, to), nil
			},
		},
		{
			key:      keys.AnyTime,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Time},
			domain:   fixedDomain(secondsPerDay),
			draw: textDraw(func(models.ColumnMetadata) string {
				s := e.intn(secondsPerDay)
				return fmt.Sprintf("%02d:%02d:%02d", s/3600, s/60%60, s%60)
			}),
		},
		{
			key:      keys.AnyBinary,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Binary},
			domain: func(column models.ColumnMetadata) int64 {
				return pow(256, int64(binaryLength(column)))
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				data := make([]byte, binaryLength(column))
				if _, err := e.src.Read(data); err != nil {
					return models.Value{}, err
				}
				return models.Bytes(data), nil
			},
		},
		{
			key:      keys.AnyBoolean,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Boolean},
			domain: func(column models.ColumnMetadata) int64 {
				if w := bitWidth(column); w > 1 {
					return pow(2, int64(w))
				}
				return 2
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				if sqltype.IsNamed(column.DataType, "bool", "boolean") {
					return models.Bool(e.intn(2) == 1), nil
				}
				if w := bitWidth(column); w > 1 {
					data := make([]byte, (w+7)/8)
					if _, err := e.src.Read(data); err != nil {
						return models.Value{}, err
					}
					// clear the bits above the declared width
					if extra := len(data)*8 - w; extra > 0 {
						data[0] &= 0xFF >> extra
					}
					return models.Bytes(data), nil
				}
				return models.Int(int64(e.intn(2))), nil
			},
		},
		{
			key:      keys.AnyGUID,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.GUID},
			draw: func(models.ColumnMetadata) (models.Value, error) {
				id, err := uuid.NewRandomFromReader(e.src)
				if err != nil {
					return models.Value{}, fmt.Errorf("new uuid: %w", err)
				}
				return models.GUID(id), nil
			},
		},
		{
			key:      keys.AnySpatial,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Spatial},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				return models.WellKnownText(anySpatial(e, column)), nil
			},
		},
		{
			key:      keys.AnyJSON,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.JSON},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				doc, err := anyJSON(e, column)
				if err != nil {
					return models.Value{}, err
				}
				return models.Text(doc), nil
			},
			shape: keepWhole,
		},
		{
			key:      keys.AnyXML,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.XML},
			draw: func(models.ColumnMetadata) (models.Value, error) {
				doc, err := anyXML(e)
				if err != nil {
					return models.Value{}, err
				}
				return models.Text(doc), nil
			},
			shape: keepWhole,
		},
		{
			key:      keys.AnyHierarchy,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  []sqltype.Category{sqltype.Hierarchy},
			draw:     textDraw(func(models.ColumnMetadata) string { return anyHierarchy(e) }),
		},
		{
			key:      keys.EnumValue,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  enumKinds,
			domain:   memberDomain(false),
			draw:     enumDraw(e),
			shape:    keepWhole,
		},
		{
			key:      keys.AnyEnum,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  enumKinds,
			domain:   memberDomain(false),
			draw:     enumDraw(e),
			shape:    keepWhole,
		},
		{
			key:      keys.SetValue,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  setKinds,
			domain:   memberDomain(true),
			draw:     setDraw(e),
			shape:    keepWhole,
		},
		{
			key:      keys.AnySet,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  setKinds,
			domain:   memberDomain(true),
			draw:     setDraw(e),
			shape:    keepWhole,
		},
		{
			// any_value serves types nothing else understands, so it accepts all of them
			key:      keys.AnyValue,
			env:      e,
			nullRate: defaultNullRate,
			draw:     textDraw(func(column models.ColumnMetadata) string { return anyString(e, column) }),
		},
	}
}

// keepWhole leaves structured text alone, a truncated document or member is invalid
func keepWhole(_ models.ColumnMetadata, v models.Value) models.Value {
	return v
}
