package models

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind tags the variant held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindInt
	KindDecimal
	KindText
	KindBytes
	KindTimestamp
	KindGUID
	KindWKT
	KindBool
)

var kindNames = map[Kind]string{
	KindNull:      "null",
	KindInt:       "int",
	KindDecimal:   "decimal",
	KindText:      "text",
	KindBytes:     "bytes",
	KindTimestamp: "timestamp",
	KindGUID:      "guid",
	KindWKT:       "wkt",
	KindBool:      "bool",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Value is a generated cell. The zero Value is Null.
type Value struct {
	kind  Kind
	i     int64
	f     float64
	scale int
	s     string
	b     []byte
	bit   bool
	t     time.Time
	g     uuid.UUID
}

// Null returns the null value
func Null() Value { return Value{} }

// Int wraps an integer
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Decimal wraps a number that is rendered with a fixed number of fractional digits
func Decimal(v float64, scale int) Value {
	if scale < 0 {
		scale = 0
	}
	return Value{kind: KindDecimal, f: v, scale: scale}
}

// Text wraps a string
func Text(v string) Value { return Value{kind: KindText, s: v} }

// Bytes wraps a byte slice. The slice is not copied.
func Bytes(v []byte) Value { return Value{kind: KindBytes, b: v} }

// Timestamp wraps a point in time
func Timestamp(v time.Time) Value { return Value{kind: KindTimestamp, t: v} }

// GUID wraps a uuid
func GUID(v uuid.UUID) Value { return Value{kind: KindGUID, g: v} }

// Bool wraps a boolean for engines with a native boolean type
func Bool(v bool) Value { return Value{kind: KindBool, bit: v} }

// WellKnownText wraps a WKT geometry string such as POINT(1 2)
func WellKnownText(v string) Value { return Value{kind: KindWKT, s: v} }

func (v Value) Kind() Kind   { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsInt returns the integer payload
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsDecimal returns the decimal payload and its scale
func (v Value) AsDecimal() (float64, int, bool) { return v.f, v.scale, v.kind == KindDecimal }

// AsText returns the payload of Text and WKT values
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText || v.kind == KindWKT }

// AsBool returns the boolean payload
func (v Value) AsBool() (bool, bool) { return v.bit, v.kind == KindBool }

// AsBytes returns the byte payload
func (v Value) AsBytes() ([]byte, bool) { return v.b, v.kind == KindBytes }

// AsTime returns the timestamp payload
func (v Value) AsTime() (time.Time, bool) { return v.t, v.kind == KindTimestamp }

// AsGUID returns the uuid payload
func (v Value) AsGUID() (uuid.UUID, bool) { return v.g, v.kind == KindGUID }

// String renders the value for previews and logs
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDecimal:
		return strconv.FormatFloat(v.f, 'f', v.scale, 64)
	case KindText, KindWKT:
		return v.s
	case KindBytes:
		return "0x" + hex.EncodeToString(v.b)
	case KindTimestamp:
		return v.t.Format("2006-01-02 15:04:05")
	case KindGUID:
		return v.g.String()
	case KindBool:
		return strconv.FormatBool(v.bit)
	default:
		return "NULL"
	}
}

// Key returns an equality key. Two values are equal for uniqueness purposes
// exactly when their keys are equal.
func (v Value) Key() string {
	switch v.kind {
	case KindTimestamp:
		return "timestamp:" + v.t.UTC().Format(time.RFC3339Nano)
	default:
		return v.kind.String() + ":" + v.String()
	}
}

// Arg converts the value into a database/sql argument
func (v Value) Arg() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindDecimal:
		return strconv.FormatFloat(v.f, 'f', v.scale, 64)
	case KindText, KindWKT:
		return v.s
	case KindBytes:
		return v.b
	case KindTimestamp:
		return v.t
	case KindGUID:
		return v.g.String()
	case KindBool:
		return v.bit
	default:
		return nil
	}
}
