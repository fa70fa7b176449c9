package dialect

import (
	"database/sql"
	"fmt"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string { return "mysql" }

func (d *MysqlDialect) BeforeTable(tx *sql.Tx, table string) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 0")
	return err
}

func (d *MysqlDialect) AfterTable(tx *sql.Tx, table string) error {
	_, err := tx.Exec("SET FOREIGN_KEY_CHECKS = 1")
	return err
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []Column) string {
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", d.QuoteIdent(table), columnDefs(cols, d.QuoteIdent, d.columnType))
}

func (d *MysqlDialect) columnType(k ColumnKind) string {
	switch k {
	case KindInteger:
		return "BIGINT"
	case KindDecimal:
		return "DOUBLE"
	case KindBoolean:
		return "BOOLEAN"
	case KindDate:
		return "DATE"
	case KindJSON:
		return "JSON"
	}
	return "TEXT"
}

func (d *MysqlDialect) InsertQuery(table string, cols []string) string {
	return insertQuery(table, cols, d)
}

func (d *MysqlDialect) CleanQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return quoteWith(name, "`", "`")
}

func (d *MysqlDialect) BindValue(v any) any { return v }
