package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValueKeys(t *testing.T) {
	assert.Equal(t, Int(5).Key(), Int(5).Key())
	assert.NotEqual(t, Int(5).Key(), Text("5").Key(), "kinds never collide")
	assert.NotEqual(t, Null().Key(), Text("NULL").Key())

	utc := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	local := utc.In(time.FixedZone("X", 3600))
	assert.Equal(t, Timestamp(utc).Key(), Timestamp(local).Key())
	assert.NotEqual(t, Timestamp(utc).Key(), Timestamp(utc.Add(time.Nanosecond)).Key())
}

func TestValueArg(t *testing.T) {
	id := uuid.MustParse("8c2a0f0e-0f9a-4b8e-9d7b-2a4f1c3e5d6a")
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		value Value
		want  interface{}
	}{
		{Null(), nil},
		{Int(42), int64(42)},
		{Decimal(12.5, 2), "12.50"},
		{Text("abc"), "abc"},
		{Bytes([]byte{1, 2}), []byte{1, 2}},
		{Timestamp(ts), ts},
		{GUID(id), "8c2a0f0e-0f9a-4b8e-9d7b-2a4f1c3e5d6a"},
		{Bool(true), true},
		{WellKnownText("POINT(1 2)"), "POINT(1 2)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.Arg(), tt.value.Kind().String())
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "NULL", Value{}.String())
	assert.True(t, Value{}.IsNull())
	assert.Equal(t, "0x0102", Bytes([]byte{1, 2}).String())
	assert.Equal(t, "2024-01-02 03:04:05", Timestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)).String())
	assert.Equal(t, "false", Bool(false).String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

func TestColumnHelpers(t *testing.T) {
	c := ColumnMetadata{Schema: "Person", Table: "Person", Name: "FirstName", MaxLength: Unbounded}
	assert.Equal(t, "Person.Person.FirstName", c.QualifiedName())
	assert.True(t, c.IsUnboundedLength())
	assert.False(t, c.HasMaxLength())
	assert.True(t, c.Insertable())

	c.IsComputed = true
	assert.False(t, c.Insertable())

	assert.Equal(t, "orders", ColumnMetadata{Table: "orders"}.QualifiedName())
}

func TestTableLookups(t *testing.T) {
	table := TableMetadata{
		Schema:  "Sales",
		Name:    "SalesOrderHeader",
		Columns: []ColumnMetadata{{Name: "CustomerID"}, {Name: "OrderDate"}},
		ForeignKeys: []ForeignKey{{
			Column: "CustomerID", ReferencedSchema: "Sales", ReferencedTable: "Customer", ReferencedColumn: "CustomerID",
		}},
	}

	assert.Equal(t, "Sales.SalesOrderHeader", table.Key())

	c, ok := table.Column("orderdate")
	assert.True(t, ok)
	assert.Equal(t, "OrderDate", c.Name)

	fk, ok := table.ForeignKeyFor("customerid")
	assert.True(t, ok)
	assert.Equal(t, "Sales.Customer", fk.ReferencedKey())

	_, ok = table.ForeignKeyFor("OrderDate")
	assert.False(t, ok)

	schema := &SchemaInfo{Tables: []TableMetadata{table}}
	_, ok = schema.Table("Sales.SalesOrderHeader")
	assert.True(t, ok)
	assert.Equal(t, "t", TableKey("", "t"))
}
