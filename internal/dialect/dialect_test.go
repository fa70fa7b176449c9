package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDialect(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"mysql", "mysql"},
		{"postgres", "postgres"},
		{"sqlserver", "sqlserver"},
		{"mssql", "sqlserver"},
		{"oracle", "oracle"},
		{"ORACLE", "oracle"},
	}
	for _, tt := range tests {
		d, err := GetDialect(tt.driver)
		require.NoError(t, err, tt.driver)
		assert.Equal(t, tt.want, d.Name())
	}

	_, err := GetDialect("sqlite3")
	assert.Error(t, err)
}

func TestInsertQuery(t *testing.T) {
	cols := []string{"id", "email"}
	tests := []struct {
		d    Dialect
		want string
	}{
		{&MysqlDialect{}, "INSERT INTO `users` (`id`, `email`) VALUES (?, ?)"},
		{&PostgresDialect{}, `INSERT INTO "users" ("id", "email") VALUES ($1, $2)`},
		{&MSSQLDialect{}, "INSERT INTO [users] ([id], [email]) VALUES (@p1, @p2)"},
		{&OracleDialect{}, `INSERT INTO "users" ("id", "email") VALUES (:1, :2)`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.d.InsertQuery("users", cols), tt.d.Name())
	}
}

func TestQuoteIdent_EscapesDelimiter(t *testing.T) {
	assert.Equal(t, "`we``ird`", (&MysqlDialect{}).QuoteIdent("we`ird"))
	assert.Equal(t, `"we""ird"`, (&PostgresDialect{}).QuoteIdent(`we"ird`))
	assert.Equal(t, "[we]]ird]", (&MSSQLDialect{}).QuoteIdent("we]ird"))
}

func TestCreateTableQuery(t *testing.T) {
	cols := []Column{
		{Name: "id", Kind: KindInteger},
		{Name: "note", Kind: KindText, Nullable: true},
		{Name: "tags", Kind: KindJSON},
	}

	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS `t` (`id` BIGINT NOT NULL, `note` TEXT NULL, `tags` JSON NOT NULL)",
		(&MysqlDialect{}).CreateTableQuery("t", cols))
	assert.Equal(t,
		`CREATE TABLE IF NOT EXISTS "t" ("id" BIGINT NOT NULL, "note" TEXT NULL, "tags" JSONB NOT NULL)`,
		(&PostgresDialect{}).CreateTableQuery("t", cols))
	assert.Equal(t,
		"IF OBJECT_ID(N't', N'U') IS NULL CREATE TABLE [t] ([id] BIGINT NOT NULL, [note] NVARCHAR(MAX) NULL, [tags] NVARCHAR(MAX) NOT NULL)",
		(&MSSQLDialect{}).CreateTableQuery("t", cols))

	oracle := (&OracleDialect{}).CreateTableQuery("t", cols)
	assert.Contains(t, oracle, `EXECUTE IMMEDIATE 'CREATE TABLE "t" ("id" NUMBER(19) NOT NULL`)
	assert.Contains(t, oracle, "SQLCODE != -955")
}

func TestCleanQuery(t *testing.T) {
	assert.Equal(t, "TRUNCATE TABLE `t`", (&MysqlDialect{}).CleanQuery("t"))
	assert.Equal(t, "DELETE FROM [t]", (&MSSQLDialect{}).CleanQuery("t"))
}

func TestOracleBindValue(t *testing.T) {
	d := &OracleDialect{}
	assert.Equal(t, 1, d.BindValue(true))
	assert.Equal(t, 0, d.BindValue(false))
	assert.Equal(t, "x", d.BindValue("x"))
	assert.Equal(t, true, (&MysqlDialect{}).BindValue(true))
}

func TestGeneratePlaceholders(t *testing.T) {
	assert.Equal(t, "$1, $2, $3", GeneratePlaceholders(3, (&PostgresDialect{}).Placeholder))
	assert.Equal(t, "", GeneratePlaceholders(0, (&MysqlDialect{}).Placeholder))
}
