package dialect

import (
	"database/sql"
	"fmt"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string { return "postgres" }

// BeforeTable defers deferrable constraints to commit time. Non-deferrable
// foreign keys are still checked per statement.
func (d *PostgresDialect) BeforeTable(tx *sql.Tx, table string) error {
	_, err := tx.Exec("SET CONSTRAINTS ALL DEFERRED")
	return err
}

func (d *PostgresDialect) AfterTable(tx *sql.Tx, table string) error {
	return nil
}

func (d *PostgresDialect) CreateTableQuery(table string, cols []Column) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", d.QuoteIdent(table), columnDefs(cols, d.QuoteIdent, d.columnType))
}

func (d *PostgresDialect) columnType(k ColumnKind) string {
	switch k {
	case KindInteger:
		return "BIGINT"
	case KindDecimal:
		return "DOUBLE PRECISION"
	case KindBoolean:
		return "BOOLEAN"
	case KindDate:
		return "DATE"
	case KindJSON:
		return "JSONB"
	}
	return "TEXT"
}

func (d *PostgresDialect) InsertQuery(table string, cols []string) string {
	return insertQuery(table, cols, d)
}

func (d *PostgresDialect) CleanQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *PostgresDialect) BindValue(v any) any { return v }
