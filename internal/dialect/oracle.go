package dialect

import (
	"database/sql"
	"fmt"
	"strings"
)

type OracleDialect struct{}

func (d *OracleDialect) Name() string { return "oracle" }

// BeforeTable aligns the session date format with the generator's YYYY-MM-DD dates.
func (d *OracleDialect) BeforeTable(tx *sql.Tx, table string) error {
	if _, err := tx.Exec("ALTER SESSION SET NLS_DATE_FORMAT = 'YYYY-MM-DD'"); err != nil {
		return fmt.Errorf("failed to set NLS_DATE_FORMAT: %w", err)
	}
	return nil
}

func (d *OracleDialect) AfterTable(tx *sql.Tx, table string) error {
	return nil
}

// CreateTableQuery wraps the DDL in a block that ignores ORA-00955 (name already used).
func (d *OracleDialect) CreateTableQuery(table string, cols []Column) string {
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), columnDefs(cols, d.QuoteIdent, d.columnType))
	return fmt.Sprintf("BEGIN EXECUTE IMMEDIATE '%s'; EXCEPTION WHEN OTHERS THEN IF SQLCODE != -955 THEN RAISE; END IF; END;",
		strings.ReplaceAll(ddl, "'", "''"))
}

func (d *OracleDialect) columnType(k ColumnKind) string {
	switch k {
	case KindInteger:
		return "NUMBER(19)"
	case KindDecimal:
		return "BINARY_DOUBLE"
	case KindBoolean:
		return "NUMBER(1)"
	case KindDate:
		return "DATE"
	case KindJSON:
		return "CLOB"
	}
	return "VARCHAR2(4000)"
}

func (d *OracleDialect) InsertQuery(table string, cols []string) string {
	return insertQuery(table, cols, d)
}

func (d *OracleDialect) CleanQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", d.QuoteIdent(table))
}

func (d *OracleDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

// BindValue stores booleans as 0/1 to match the NUMBER(1) column type.
func (d *OracleDialect) BindValue(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	return v
}
