package orchestrator

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitebski/schema-synth/internal/classifier"
	"github.com/vitebski/schema-synth/internal/generator"
	"github.com/vitebski/schema-synth/internal/keys"
	"github.com/vitebski/schema-synth/internal/randsrc"
	"github.com/vitebski/schema-synth/pkg/models"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.FatalLevel)
	return logger
}

func newTestOrchestrator(seed int64, workers int, logger logrus.FieldLogger) *Orchestrator {
	src := randsrc.New(seed)
	now := func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }
	return New(
		classifier.NewDefault(quietLogger()),
		generator.NewDefault(src, quietLogger(), generator.Options{Now: now}),
		src,
		workers,
		logger,
	)
}

func personTable() models.TableMetadata {
	return models.TableMetadata{
		Schema: "Person",
		Name:   "Person",
		Columns: []models.ColumnMetadata{
			{Schema: "Person", Table: "Person", Name: "BusinessEntityID", DataType: "int", IsIdentity: true, IsPrimaryKey: true},
			{Schema: "Person", Table: "Person", Name: "FirstName", DataType: "nvarchar", MaxLength: 50},
			{Schema: "Person", Table: "Person", Name: "LastName", DataType: "nvarchar", MaxLength: 50, IsNullable: true},
			{Schema: "Person", Table: "Person", Name: "EmailAddress", DataType: "nvarchar", MaxLength: 50, IsUnique: true},
			{Schema: "Person", Table: "Person", Name: "FullName", DataType: "nvarchar", MaxLength: 101, IsComputed: true},
		},
	}
}

func intColumn(table, name string) models.ColumnMetadata {
	return models.ColumnMetadata{Schema: "dbo", Table: table, Name: name, DataType: "int"}
}

func TestPlanSkipsIdentityAndComputedColumns(t *testing.T) {
	o := newTestOrchestrator(1, 1, quietLogger())

	plans, err := o.Plan(personTable())
	require.NoError(t, err)
	require.Len(t, plans, 3)

	assert.Equal(t, "FirstName", plans[0].Column.Name)
	assert.Equal(t, keys.FirstName, plans[0].Key)
	assert.NotEmpty(t, plans[0].Matcher)
	assert.False(t, plans[0].Unique)

	assert.Equal(t, "EmailAddress", plans[2].Column.Name)
	assert.Equal(t, keys.Email, plans[2].Key)
	assert.True(t, plans[2].Unique)
}

func TestPlanUniqueness(t *testing.T) {
	o := newTestOrchestrator(1, 1, quietLogger())

	single := models.TableMetadata{Schema: "dbo", Name: "Code", Columns: []models.ColumnMetadata{
		{Schema: "dbo", Table: "Code", Name: "CodeID", DataType: "int", IsPrimaryKey: true},
	}}
	plans, err := o.Plan(single)
	require.NoError(t, err)
	assert.True(t, plans[0].Unique)

	composite := models.TableMetadata{Schema: "dbo", Name: "Link", Columns: []models.ColumnMetadata{
		{Schema: "dbo", Table: "Link", Name: "LeftID", DataType: "int", IsPrimaryKey: true},
		{Schema: "dbo", Table: "Link", Name: "RightID", DataType: "int", IsPrimaryKey: true},
	}}
	plans, err = o.Plan(composite)
	require.NoError(t, err)
	for _, p := range plans {
		assert.False(t, p.Unique, "composite key columns repeat individually")
	}
}

func TestGenerateProducesAlignedRows(t *testing.T) {
	o := newTestOrchestrator(2, 4, quietLogger())

	batch, err := o.Generate(context.Background(), personTable(), 40)
	require.NoError(t, err)
	assert.Equal(t, 40, batch.Rows)
	assert.Equal(t, []string{"FirstName", "LastName", "EmailAddress"}, batch.ColumnNames())
	for _, values := range batch.Columns {
		assert.Len(t, values, 40)
	}

	first, ok := batch.Values("firstname")
	require.True(t, ok)
	for _, v := range first {
		assert.False(t, v.IsNull())
	}
	assert.Len(t, batch.Row(0), 3)
}

func TestGenerateTruncatesToShortestUniqueColumn(t *testing.T) {
	logger, hook := test.NewNullLogger()
	o := newTestOrchestrator(3, 2, logger)

	table := models.TableMetadata{Schema: "dbo", Name: "Slots", Columns: []models.ColumnMetadata{
		{Schema: "dbo", Table: "Slots", Name: "Slot", DataType: "tinyint", IsUnique: true},
		{Schema: "dbo", Table: "Slots", Name: "FirstName", DataType: "nvarchar", MaxLength: 50},
	}}

	batch, err := o.Generate(context.Background(), table, 300)
	require.NoError(t, err)
	assert.LessOrEqual(t, batch.Rows, 256)
	assert.Len(t, batch.Columns[0], batch.Rows)
	assert.Len(t, batch.Columns[1], batch.Rows)

	var warned bool
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel && entry.Data["table"] == "dbo.Slots" {
			warned = true
			assert.Equal(t, 300, entry.Data["requested"])
		}
	}
	assert.True(t, warned)
}

func TestForeignKeysReuseParentValues(t *testing.T) {
	o := newTestOrchestrator(4, 2, quietLogger())
	ctx := context.Background()

	parent := models.TableMetadata{Schema: "dbo", Name: "Customer", Columns: []models.ColumnMetadata{
		{Schema: "dbo", Table: "Customer", Name: "CustomerID", DataType: "int", IsPrimaryKey: true},
	}}
	parentBatch, err := o.Generate(ctx, parent, 20)
	require.NoError(t, err)
	require.Equal(t, 20, parentBatch.Rows)

	ids := make(map[string]bool)
	for _, v := range parentBatch.Columns[0] {
		ids[v.Key()] = true
	}

	fk := models.ForeignKey{Schema: "dbo", Table: "Orders", Column: "CustomerID", ReferencedSchema: "dbo", ReferencedTable: "Customer", ReferencedColumn: "CustomerID"}
	child := models.TableMetadata{
		Schema:      "dbo",
		Name:        "Orders",
		Columns:     []models.ColumnMetadata{intColumn("Orders", "CustomerID")},
		ForeignKeys: []models.ForeignKey{fk},
	}
	childBatch, err := o.Generate(ctx, child, 100)
	require.NoError(t, err)
	assert.Equal(t, 100, childBatch.Rows)
	for _, v := range childBatch.Columns[0] {
		assert.True(t, ids[v.Key()], "%s is not a parent key", v)
	}

	// a unique foreign key is drawn without replacement
	unique := intColumn("Profile", "CustomerID")
	unique.IsUnique = true
	fk.Table = "Profile"
	profile := models.TableMetadata{Schema: "dbo", Name: "Profile", Columns: []models.ColumnMetadata{unique}, ForeignKeys: []models.ForeignKey{fk}}
	profileBatch, err := o.Generate(ctx, profile, 50)
	require.NoError(t, err)
	assert.Equal(t, 20, profileBatch.Rows)
	seen := make(map[string]bool)
	for _, v := range profileBatch.Columns[0] {
		assert.False(t, seen[v.Key()])
		seen[v.Key()] = true
	}
}

func TestNullableForeignKeyWithoutParentStaysEmpty(t *testing.T) {
	o := newTestOrchestrator(5, 1, quietLogger())

	column := intColumn("Employee", "ManagerID")
	column.IsNullable = true
	table := models.TableMetadata{
		Schema:  "dbo",
		Name:    "Employee",
		Columns: []models.ColumnMetadata{column},
		ForeignKeys: []models.ForeignKey{{
			Table: "Employee", Column: "ManagerID", ReferencedSchema: "dbo", ReferencedTable: "Manager", ReferencedColumn: "ID",
		}},
	}

	batch, err := o.Generate(context.Background(), table, 10)
	require.NoError(t, err)
	require.Equal(t, 10, batch.Rows)
	for _, v := range batch.Columns[0] {
		assert.True(t, v.IsNull())
	}
}

func TestCompositeKeyRowsAreDistinct(t *testing.T) {
	o := newTestOrchestrator(6, 2, quietLogger())

	for _, parent := range []string{"dbo.Left", "dbo.Right"} {
		o.AddReferences(parent, "ID", []models.Value{models.Int(1), models.Int(2), models.Int(3), models.Null()})
	}
	assert.Len(t, o.References("DBO.LEFT", "id"), 3, "lookups ignore case and nulls are skipped")

	left := intColumn("Link", "LeftID")
	left.IsPrimaryKey = true
	right := intColumn("Link", "RightID")
	right.IsPrimaryKey = true
	table := models.TableMetadata{
		Schema:  "dbo",
		Name:    "Link",
		Columns: []models.ColumnMetadata{left, right},
		ForeignKeys: []models.ForeignKey{
			{Table: "Link", Column: "LeftID", ReferencedSchema: "dbo", ReferencedTable: "Left", ReferencedColumn: "ID"},
			{Table: "Link", Column: "RightID", ReferencedSchema: "dbo", ReferencedTable: "Right", ReferencedColumn: "ID"},
		},
	}

	batch, err := o.Generate(context.Background(), table, 50)
	require.NoError(t, err)
	assert.LessOrEqual(t, batch.Rows, 9)
	seen := make(map[string]bool)
	for i := 0; i < batch.Rows; i++ {
		row := batch.Row(i)
		key := row[0].Key() + "|" + row[1].Key()
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}

func TestSameSeedSameBatch(t *testing.T) {
	a, err := newTestOrchestrator(7, 1, quietLogger()).Generate(context.Background(), personTable(), 25)
	require.NoError(t, err)
	b, err := newTestOrchestrator(7, 1, quietLogger()).Generate(context.Background(), personTable(), 25)
	require.NoError(t, err)
	assert.Equal(t, a.Columns, b.Columns)
}

func TestCancelledContext(t *testing.T) {
	o := newTestOrchestrator(8, 2, quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Generate(ctx, personTable(), 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestZeroRows(t *testing.T) {
	o := newTestOrchestrator(9, 2, quietLogger())
	batch, err := o.Generate(context.Background(), personTable(), 0)
	require.NoError(t, err)
	assert.Zero(t, batch.Rows)
	assert.Len(t, batch.Plans, 3)
}

func TestForgetDropsOnlyThatTable(t *testing.T) {
	o := newTestOrchestrator(1, 1, quietLogger())
	o.AddReferences("dbo.Orders", "Id", []models.Value{models.Int(1)})
	o.AddReferences("dbo.OrdersArchive", "Id", []models.Value{models.Int(2)})

	o.Forget("DBO.ORDERS")
	assert.Empty(t, o.References("dbo.Orders", "Id"))
	assert.Len(t, o.References("dbo.OrdersArchive", "Id"), 1)
}
