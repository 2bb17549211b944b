package analyzer

import (
	"fmt"

	"github.com/vitebski/schema-synth/internal/connector"
)

// Every dialect returns the same column aliases so one parser reads them all.
// The %s verb receives the schema filter placeholders.

const mysqlColumnsQuery = `
	SELECT
		c.table_schema AS table_schema,
		c.table_name AS table_name,
		c.column_name AS column_name,
		c.ordinal_position AS ordinal_position,
		c.data_type AS data_type,
		c.column_type AS column_type,
		c.character_maximum_length AS max_length,
		c.numeric_precision AS numeric_precision,
		c.numeric_scale AS numeric_scale,
		c.is_nullable AS is_nullable,
		c.extra LIKE '%%auto_increment%%' AS is_identity,
		c.extra LIKE '%%GENERATED%%' AS is_computed,
		c.column_key = 'PRI' AS is_primary_key,
		c.column_key = 'UNI' AS is_unique
	FROM information_schema.columns c
	JOIN information_schema.tables t
		ON t.table_schema = c.table_schema
		AND t.table_name = c.table_name
	WHERE t.table_type = 'BASE TABLE'
		AND c.table_schema IN (%s)
	ORDER BY c.table_schema, c.table_name, c.ordinal_position
`

const mysqlForeignKeysQuery = `
	SELECT
		k.constraint_name AS constraint_name,
		k.table_schema AS table_schema,
		k.table_name AS table_name,
		k.column_name AS column_name,
		k.referenced_table_schema AS referenced_schema,
		k.referenced_table_name AS referenced_table,
		k.referenced_column_name AS referenced_column
	FROM information_schema.key_column_usage k
	WHERE k.referenced_table_name IS NOT NULL
		AND k.table_schema IN (%s)
	ORDER BY k.table_schema, k.table_name, k.column_name
`

const postgresColumnsQuery = `
	SELECT
		c.table_schema AS table_schema,
		c.table_name AS table_name,
		c.column_name AS column_name,
		c.ordinal_position AS ordinal_position,
		CASE
			WHEN e.labels IS NOT NULL THEN 'enum'
			WHEN c.data_type IN ('USER-DEFINED', 'ARRAY') THEN c.udt_name
			ELSE c.data_type
		END AS data_type,
		COALESCE('enum(' || e.labels || ')', c.udt_name) AS column_type,
		c.character_maximum_length AS max_length,
		c.numeric_precision AS numeric_precision,
		c.numeric_scale AS numeric_scale,
		c.is_nullable AS is_nullable,
		(c.is_identity = 'YES' OR COALESCE(c.column_default, '') LIKE 'nextval(%%') AS is_identity,
		(c.is_generated = 'ALWAYS') AS is_computed,
		EXISTS (
			SELECT 1
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage k
				ON k.constraint_schema = tc.constraint_schema
				AND k.constraint_name = tc.constraint_name
			WHERE tc.constraint_type = 'PRIMARY KEY'
				AND k.table_schema = c.table_schema
				AND k.table_name = c.table_name
				AND k.column_name = c.column_name
		) AS is_primary_key,
		EXISTS (
			SELECT 1
			FROM information_schema.table_constraints tc
			JOIN information_schema.key_column_usage k
				ON k.constraint_schema = tc.constraint_schema
				AND k.constraint_name = tc.constraint_name
			WHERE tc.constraint_type = 'UNIQUE'
				AND k.table_schema = c.table_schema
				AND k.table_name = c.table_name
				AND k.column_name = c.column_name
				AND (
					SELECT COUNT(*)
					FROM information_schema.key_column_usage k2
					WHERE k2.constraint_schema = tc.constraint_schema
						AND k2.constraint_name = tc.constraint_name
				) = 1
		) AS is_unique
	FROM information_schema.columns c
	JOIN information_schema.tables t
		ON t.table_schema = c.table_schema
		AND t.table_name = c.table_name
	LEFT JOIN (
		SELECT ty.typname, string_agg(quote_literal(en.enumlabel), ',' ORDER BY en.enumsortorder) AS labels
		FROM pg_type ty
		JOIN pg_enum en ON en.enumtypid = ty.oid
		GROUP BY ty.typname
	) e ON e.typname = c.udt_name
	WHERE t.table_type = 'BASE TABLE'
		AND c.table_schema IN (%s)
	ORDER BY c.table_schema, c.table_name, c.ordinal_position
`

const postgresForeignKeysQuery = `
	SELECT
		con.conname AS constraint_name,
		cn.nspname AS table_schema,
		cc.relname AS table_name,
		ca.attname AS column_name,
		pn.nspname AS referenced_schema,
		pc.relname AS referenced_table,
		pa.attname AS referenced_column
	FROM pg_constraint con
	JOIN pg_class cc ON cc.oid = con.conrelid
	JOIN pg_namespace cn ON cn.oid = cc.relnamespace
	JOIN pg_class pc ON pc.oid = con.confrelid
	JOIN pg_namespace pn ON pn.oid = pc.relnamespace
	CROSS JOIN LATERAL unnest(con.conkey, con.confkey) WITH ORDINALITY AS u(child_attnum, parent_attnum, ord)
	JOIN pg_attribute ca ON ca.attrelid = cc.oid AND ca.attnum = u.child_attnum
	JOIN pg_attribute pa ON pa.attrelid = pc.oid AND pa.attnum = u.parent_attnum
	WHERE con.contype = 'f'
		AND cn.nspname IN (%s)
	ORDER BY cn.nspname, cc.relname, u.ord
`

const sqlserverColumnsQuery = `
	SELECT
		SCHEMA_NAME(t.schema_id) AS table_schema,
		t.name AS table_name,
		c.name AS column_name,
		c.column_id AS ordinal_position,
		CASE WHEN tp.is_user_defined = 1 THEN TYPE_NAME(c.system_type_id) ELSE tp.name END AS data_type,
		tp.name AS column_type,
		CASE
			WHEN c.max_length = -1 THEN -1
			WHEN TYPE_NAME(c.system_type_id) IN ('nchar', 'nvarchar') THEN c.max_length / 2
			WHEN TYPE_NAME(c.system_type_id) IN ('char', 'varchar', 'binary', 'varbinary') THEN c.max_length
			ELSE NULL
		END AS max_length,
		c.precision AS numeric_precision,
		c.scale AS numeric_scale,
		c.is_nullable AS is_nullable,
		c.is_identity AS is_identity,
		c.is_computed AS is_computed,
		CASE WHEN EXISTS (
			SELECT 1
			FROM sys.index_columns ic
			INNER JOIN sys.indexes i ON ic.object_id = i.object_id AND ic.index_id = i.index_id
			WHERE i.is_primary_key = 1 AND ic.object_id = c.object_id AND ic.column_id = c.column_id
		) THEN 1 ELSE 0 END AS is_primary_key,
		CASE WHEN EXISTS (
			SELECT 1
			FROM sys.index_columns ic
			INNER JOIN sys.indexes i ON ic.object_id = i.object_id AND ic.index_id = i.index_id
			WHERE i.is_unique = 1 AND i.is_primary_key = 0
				AND ic.object_id = c.object_id AND ic.column_id = c.column_id
				AND (SELECT COUNT(*) FROM sys.index_columns ic2
					WHERE ic2.object_id = i.object_id AND ic2.index_id = i.index_id AND ic2.is_included_column = 0) = 1
		) THEN 1 ELSE 0 END AS is_unique
	FROM sys.columns c
	INNER JOIN sys.tables t ON t.object_id = c.object_id
	INNER JOIN sys.types tp ON c.user_type_id = tp.user_type_id
	WHERE t.is_ms_shipped = 0
		AND SCHEMA_NAME(t.schema_id) IN (%s)
	ORDER BY table_schema, table_name, ordinal_position
`

const sqlserverForeignKeysQuery = `
	SELECT
		fk.name AS constraint_name,
		SCHEMA_NAME(fk.schema_id) AS table_schema,
		OBJECT_NAME(fk.parent_object_id) AS table_name,
		COL_NAME(fkc.parent_object_id, fkc.parent_column_id) AS column_name,
		SCHEMA_NAME(rt.schema_id) AS referenced_schema,
		OBJECT_NAME(fk.referenced_object_id) AS referenced_table,
		COL_NAME(fkc.referenced_object_id, fkc.referenced_column_id) AS referenced_column
	FROM sys.foreign_keys fk
	INNER JOIN sys.foreign_key_columns fkc ON fk.object_id = fkc.constraint_object_id
	INNER JOIN sys.tables rt ON fk.referenced_object_id = rt.object_id
	WHERE fk.is_ms_shipped = 0
		AND SCHEMA_NAME(fk.schema_id) IN (%s)
	ORDER BY table_schema, table_name, column_name
`

// introspectionQueries returns the columns and foreign key queries for the
// dialect, filtered to n schemas
func introspectionQueries(dialect connector.Dialect, n int) (string, string, error) {
	var columns, foreignKeys string
	switch dialect {
	case connector.MySQL:
		columns, foreignKeys = mysqlColumnsQuery, mysqlForeignKeysQuery
	case connector.Postgres:
		columns, foreignKeys = postgresColumnsQuery, postgresForeignKeysQuery
	case connector.SQLServer:
		columns, foreignKeys = sqlserverColumnsQuery, sqlserverForeignKeysQuery
	default:
		return "", "", fmt.Errorf("no introspection queries for dialect %q", dialect)
	}
	placeholders := dialect.Placeholders(1, n)
	return fmt.Sprintf(columns, placeholders), fmt.Sprintf(foreignKeys, placeholders), nil
}
