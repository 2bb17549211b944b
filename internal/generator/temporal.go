package generator

import (
	"strconv"
	"time"

	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/sqltype"
	"github.com/vitebski/schema-synth/pkg/models"
)

const (
	secondsPerDay = 24 * 60 * 60

	// firstYear opens the MySQL year range
	firstYear = 1970

	// auditWindow is how far back audit timestamps reach
	auditWindow = 2 * 365 * 24 * time.Hour
)

// windowStart opens the generic date window
var windowStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween counts the calendar days from..to inclusive
func daysBetween(from, to time.Time) int64 {
	days := int64(midnight(to).Sub(midnight(from)).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

// randomDay returns midnight of a day in from..to inclusive
func randomDay(e *env, from, to time.Time) time.Time {
	offset := e.between(0, daysBetween(from, to)-1)
	return midnight(from).AddDate(0, 0, int(offset))
}

// randomInstant returns a second-resolution instant in from..to
func randomInstant(e *env, from, to time.Time) time.Time {
	span := int64(to.Sub(from) / time.Second)
	return from.Add(time.Duration(e.between(0, span)) * time.Second).UTC()
}

// dateWindow is 2000-01-01 up to today
func dateWindow(e *env) (time.Time, time.Time) {
	return windowStart, midnight(e.now())
}

// birthWindow covers people between 18 and 90 years old
func birthWindow(e *env) (time.Time, time.Time) {
	today := midnight(e.now())
	return today.AddDate(-90, 0, 0), today.AddDate(-18, 0, 0)
}

// dateValue draws a day, or an instant when the type stores a time of day
func dateValue(e *env, column models.ColumnMetadata, from, to time.Time) models.Value {
	if sqltype.HasTimeOfDay(column.DataType) {
		return models.Timestamp(randomInstant(e, from, to.Add(secondsPerDay*time.Second-time.Second)))
	}
	return models.Timestamp(randomDay(e, from, to))
}

// dateDomain counts days, or seconds for types with a time of day
func dateDomain(column models.ColumnMetadata, from, to time.Time) int64 {
	days := daysBetween(from, to)
	if sqltype.HasTimeOfDay(column.DataType) {
		return mul(days, secondsPerDay)
	}
	return days
}

func temporalStrategies(e *env) []*strategy {
	return []*strategy{
		{
			key:      keys.AuditTimestamp,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  dateOnly,
			domain: func(column models.ColumnMetadata) int64 {
				now := e.now()
				return dateDomain(column, now.Add(-auditWindow), now)
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				now := e.now().UTC()
				from := now.Add(-auditWindow)
				if sqltype.HasTimeOfDay(column.DataType) {
					return models.Timestamp(randomInstant(e, from, now)), nil
				}
				return models.Timestamp(randomDay(e, from, now)), nil
			},
		},
		{
			key:      keys.Year,
			env:      e,
			nullRate: defaultNullRate,
			accepts:  textOrInt,
			domain: func(column models.ColumnMetadata) int64 {
				lo, hi := intRange(column, firstYear, int64(e.now().Year()))
				return hi - lo + 1
			},
			draw: func(column models.ColumnMetadata) (models.Value, error) {
				year := e.between(intRange(column, firstYear, int64(e.now().Year())))
				if sqltype.Is(column.DataType, sqltype.String) {
					return models.Text(strconv.FormatInt(year, 10)), nil
				}
				return models.Int(year), nil
			},
		},
	}
}
