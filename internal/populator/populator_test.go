package populator

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitebski/schema-synth/internal/analyzer"
	"github.com/vitebski/schema-synth/internal/classifier"
	"github.com/vitebski/schema-synth/internal/connector"
	"github.com/vitebski/schema-synth/internal/generator"
	"github.com/vitebski/schema-synth/internal/orchestrator"
	"github.com/vitebski/schema-synth/internal/randsrc"
	"github.com/vitebski/schema-synth/pkg/models"
)

// oneOf matches an int64 argument from a fixed set
type oneOf []int64

func (o oneOf) Match(v driver.Value) bool {
	n, ok := v.(int64)
	if !ok {
		return false
	}
	for _, want := range o {
		if n == want {
			return true
		}
	}
	return false
}

func newTestPopulator(t *testing.T, dialect connector.Dialect, tables ...models.TableMetadata) (*DatabasePopulator, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger, _ := test.NewNullLogger()
	conn := connector.NewWithDB(dialect, db, logger)

	sa := analyzer.NewSchemaAnalyzer(conn, []string{"dbo"}, logger)
	sa.LoadTables(tables)

	src := randsrc.New(7)
	now := func() time.Time { return time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC) }
	orch := orchestrator.New(
		classifier.NewDefault(logger),
		generator.NewDefault(src, logger, generator.Options{Now: now}),
		src, 1, logger,
	)
	return NewDatabasePopulator(conn, sa, orch, 3, logger), mock
}

func departmentTable() models.TableMetadata {
	return models.TableMetadata{
		Schema: "dbo",
		Name:   "Department",
		Columns: []models.ColumnMetadata{
			{Schema: "dbo", Table: "Department", Name: "Id", DataType: "int", IsIdentity: true, IsPrimaryKey: true},
			{Schema: "dbo", Table: "Department", Name: "Name", DataType: "varchar", MaxLength: 50},
		},
	}
}

func employeeTable() models.TableMetadata {
	return models.TableMetadata{
		Schema: "dbo",
		Name:   "Employee",
		Columns: []models.ColumnMetadata{
			{Schema: "dbo", Table: "Employee", Name: "Id", DataType: "int", IsIdentity: true, IsPrimaryKey: true},
			{Schema: "dbo", Table: "Employee", Name: "DepartmentId", DataType: "int"},
			{Schema: "dbo", Table: "Employee", Name: "FirstName", DataType: "varchar", MaxLength: 50},
		},
		ForeignKeys: []models.ForeignKey{{
			Schema:           "dbo", Table: "Employee", Column: "DepartmentId",
			ReferencedSchema: "dbo", ReferencedTable: "Department", ReferencedColumn: "Id",
		}},
	}
}

func textBatch(table models.TableMetadata, rows int) *orchestrator.Batch {
	batch := &orchestrator.Batch{Table: table, Rows: rows}
	for _, c := range table.Columns {
		if !c.Insertable() {
			continue
		}
		batch.Plans = append(batch.Plans, orchestrator.ColumnPlan{Column: c})
		values := make([]models.Value, rows)
		for i := range values {
			values[i] = models.Int(int64(i + 1))
		}
		batch.Columns = append(batch.Columns, values)
	}
	return batch
}

func TestInsertStatementPerDialect(t *testing.T) {
	table := models.TableMetadata{
		Schema: "dbo",
		Name:   "Places",
		Columns: []models.ColumnMetadata{
			{Name: "Location", DataType: "geography"},
			{Name: "Shape", DataType: "geometry"},
			{Name: "Node", DataType: "hierarchyid"},
			{Name: "Label", DataType: "nvarchar", MaxLength: 20},
		},
	}

	tests := []struct {
		dialect connector.Dialect
		want    string
	}{
		{connector.SQLServer, "INSERT INTO [dbo].[Places] ([Location], [Shape], [Node], [Label]) VALUES " +
			"(geography::STGeomFromText(@p1, 4326), geometry::STGeomFromText(@p2, 0), hierarchyid::Parse(@p3), @p4)"},
		{connector.Postgres, `INSERT INTO "dbo"."Places" ("Location", "Shape", "Node", "Label") VALUES ` +
			"(ST_GeomFromText($1), ST_GeomFromText($2), $3, $4)"},
		{connector.MySQL, "INSERT INTO `dbo`.`Places` (`Location`, `Shape`, `Node`, `Label`) VALUES " +
			"(ST_GeomFromText(?), ST_GeomFromText(?), ?, ?)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			dp, _ := newTestPopulator(t, tt.dialect)
			assert.Equal(t, tt.want, dp.insertStatement(textBatch(table, 1)))
		})
	}
}

func TestInsertBatchChunks(t *testing.T) {
	dp, mock := newTestPopulator(t, connector.MySQL)
	dp.BatchSize = 2
	batch := textBatch(departmentTable(), 5)
	query := regexp.QuoteMeta("INSERT INTO `dbo`.`Department` (`Name`) VALUES (?)")

	for _, chunk := range [][]int64{{1, 2}, {3, 4}, {5}} {
		mock.ExpectBegin()
		prep := mock.ExpectPrepare(query)
		for _, v := range chunk {
			prep.ExpectExec().WithArgs(v).WillReturnResult(sqlmock.NewResult(0, 1))
		}
		mock.ExpectCommit()
	}

	inserted, err := dp.InsertBatch(batch)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBatchReportsCommittedRows(t *testing.T) {
	dp, mock := newTestPopulator(t, connector.MySQL)
	dp.BatchSize = 2
	batch := textBatch(departmentTable(), 4)
	query := regexp.QuoteMeta("INSERT INTO `dbo`.`Department`")
	boom := errors.New("duplicate entry")

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(query)
	prep.ExpectExec().WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	prep.ExpectExec().WithArgs(int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	prep = mock.ExpectPrepare(query)
	prep.ExpectExec().WithArgs(int64(3)).WillReturnError(boom)
	mock.ExpectRollback()

	inserted, err := dp.InsertBatch(batch)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPopulateDatabase(t *testing.T) {
	dp, mock := newTestPopulator(t, connector.MySQL, employeeTable(), departmentTable())

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO `dbo`.`Department` (`Name`) VALUES (?)"))
	for i := 0; i < 3; i++ {
		prep.ExpectExec().WithArgs(sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `Id` FROM `dbo`.`Department`")).
		WillReturnRows(sqlmock.NewRows([]string{"Id"}).AddRow(int64(10)).AddRow(int64(11)).AddRow(int64(12)))

	mock.ExpectBegin()
	prep = mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO `dbo`.`Employee` (`DepartmentId`, `FirstName`) VALUES (?, ?)"))
	for i := 0; i < 3; i++ {
		prep.ExpectExec().WithArgs(oneOf{10, 11, 12}, sqlmock.AnyArg()).WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()

	ok := dp.PopulateDatabase(context.Background())
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())

	result := dp.Result()
	assert.Equal(t, []string{"dbo.Department", "dbo.Employee"}, result.SuccessfulTables)
	assert.Empty(t, result.FailedTables)
	assert.Equal(t, 6, result.TotalRecords)
}

func TestFailedTableIsRecorded(t *testing.T) {
	dp, mock := newTestPopulator(t, connector.MySQL, departmentTable())
	mock.ExpectBegin().WillReturnError(errors.New("connection reset"))

	ok := dp.PopulateDatabase(context.Background())
	assert.False(t, ok)
	assert.True(t, dp.FailedTables["dbo.Department"])
	assert.Empty(t, dp.Orchestrator.References("dbo.Department", "Name"))

	result := dp.Result()
	assert.Empty(t, result.SuccessfulTables)
	assert.Equal(t, []string{"dbo.Department"}, result.FailedTables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelledContextFailsRemainingTables(t *testing.T) {
	dp, mock := newTestPopulator(t, connector.MySQL, departmentTable(), employeeTable())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, dp.PopulateDatabase(ctx))
	assert.Len(t, dp.FailedTables, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveSelfReferences(t *testing.T) {
	employees := models.TableMetadata{
		Schema: "dbo",
		Name:   "Employee",
		Columns: []models.ColumnMetadata{
			{Schema: "dbo", Table: "Employee", Name: "Id", DataType: "int", IsIdentity: true, IsPrimaryKey: true},
			{Schema: "dbo", Table: "Employee", Name: "ManagerId", DataType: "int", IsNullable: true},
		},
		ForeignKeys: []models.ForeignKey{{
			Schema:           "dbo", Table: "Employee", Column: "ManagerId", IsNullable: true,
			ReferencedSchema: "dbo", ReferencedTable: "Employee", ReferencedColumn: "Id",
		}},
	}
	dp, mock := newTestPopulator(t, connector.MySQL, employees)
	dp.InsertedRows["dbo.Employee"] = 2
	dp.Orchestrator.AddReferences("dbo.Employee", "Id", []models.Value{models.Int(1), models.Int(2)})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `Id` FROM `dbo`.`Employee` WHERE `ManagerId` IS NULL")).
		WillReturnRows(sqlmock.NewRows([]string{"Id"}).AddRow(int64(1)).AddRow(int64(2)))
	update := regexp.QuoteMeta("UPDATE `dbo`.`Employee` SET `ManagerId` = ? WHERE `Id` = ?")
	mock.ExpectExec(update).WithArgs(oneOf{1, 2}, int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(update).WithArgs(oneOf{1, 2}, int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

	dp.resolveDeferredReferences(map[string]bool{})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCalculateManyToManyRecords(t *testing.T) {
	junction := models.TableMetadata{
		Schema: "dbo",
		Name:   "ProductTag",
		ForeignKeys: []models.ForeignKey{
			{Column: "ProductId", ReferencedSchema: "dbo", ReferencedTable: "Product", ReferencedColumn: "Id"},
			{Column: "TagId", ReferencedSchema: "dbo", ReferencedTable: "Tag", ReferencedColumn: "Id"},
		},
	}
	dp, _ := newTestPopulator(t, connector.MySQL)
	assert.Equal(t, 0, dp.calculateManyToManyRecords(junction))

	dp.Orchestrator.AddReferences("dbo.Product", "Id", []models.Value{models.Int(1), models.Int(2)})
	assert.Equal(t, 0, dp.calculateManyToManyRecords(junction), "a parent without rows allows no pairs")

	dp.Orchestrator.AddReferences("dbo.Tag", "Id", []models.Value{models.Int(1)})
	assert.Equal(t, 2, dp.calculateManyToManyRecords(junction))

	dp.Orchestrator.AddReferences("dbo.Tag", "Id", []models.Value{models.Int(2), models.Int(3), models.Int(4), models.Int(5)})
	assert.Equal(t, 6, dp.calculateManyToManyRecords(junction), "capped at twice the requested rows")
}

func TestDriverValue(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		in   interface{}
		want models.Value
	}{
		{nil, models.Null()},
		{int64(7), models.Int(7)},
		{int32(7), models.Int(7)},
		{"abc", models.Text("abc")},
		{true, models.Bool(true)},
		{now, models.Timestamp(now)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want.Key(), driverValue(tt.in).Key())
	}
}
