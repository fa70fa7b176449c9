package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

// MSSQLDialect targets go-mssqldb, which binds @p1, @p2 ... parameters.
type MSSQLDialect struct{}

func (d *MSSQLDialect) Name() string { return "sqlserver" }

func (d *MSSQLDialect) BeforeTable(tx *sql.Tx, table string) error {
	_, err := tx.Exec(fmt.Sprintf("ALTER TABLE %s NOCHECK CONSTRAINT all", d.QuoteIdent(table)))
	return err
}

func (d *MSSQLDialect) AfterTable(tx *sql.Tx, table string) error {
	if _, err := tx.Exec(fmt.Sprintf("ALTER TABLE %s WITH CHECK CHECK CONSTRAINT all", d.QuoteIdent(table))); err != nil {
		return fmt.Errorf("failed to enable constraints on %s: %w", table, err)
	}
	return nil
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []Column) string {
	return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NULL CREATE TABLE %s (%s)",
		strings.ReplaceAll(table, "'", "''"), d.QuoteIdent(table), columnDefs(cols, d.QuoteIdent, d.columnType))
}

func (d *MSSQLDialect) columnType(k ColumnKind) string {
	switch k {
	case KindInteger:
		return "BIGINT"
	case KindDecimal:
		return "FLOAT"
	case KindBoolean:
		return "BIT"
	case KindDate:
		return "DATE"
	}
	return "NVARCHAR(MAX)"
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string) string {
	return insertQuery(table, cols, d)
}

// CleanQuery uses DELETE since TRUNCATE fails on tables referenced by a foreign key.
func (d *MSSQLDialect) CleanQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return quoteWith(name, "[", "]")
}

func (d *MSSQLDialect) BindValue(v any) any { return v }
