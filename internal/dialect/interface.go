package dialect

import "database/sql"

// ColumnKind is the storage class of a pumped column.
type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInteger
	KindDecimal
	KindBoolean
	KindDate
	KindJSON
)

// Column describes one column of a table created for generated records.
type Column struct {
	Name     string
	Kind     ColumnKind
	Nullable bool
}

// Dialect abstracts database-specific operations.
type Dialect interface {
	Name() string

	// Execution Hooks (Table Level) - constraint checks, session formats etc.
	BeforeTable(tx *sql.Tx, table string) error
	AfterTable(tx *sql.Tx, table string) error

	// Query Generation
	CreateTableQuery(table string, cols []Column) string
	InsertQuery(table string, cols []string) string
	CleanQuery(table string) string
	CountQuery(table string) string
	Placeholder(index int) string // Returns ?, $1, @p1, etc.
	QuoteIdent(name string) string

	// BindValue converts a generated value into something the driver accepts.
	BindValue(v any) any
}
