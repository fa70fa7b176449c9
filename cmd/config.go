package cmd

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dto-pump/internal/engine"
	"dto-pump/internal/schema"
)

type DBConfig struct {
	Name   string `mapstructure:"name"`
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Active bool   `mapstructure:"active"`
}

// GetActiveDBConfig returns the currently active database configuration.
func GetActiveDBConfig() (*DBConfig, error) {
	var configs []DBConfig

	if err := viper.UnmarshalKey("databases", &configs); err != nil {
		return nil, fmt.Errorf("failed to parse databases config: %w", err)
	}

	var activeConfig *DBConfig
	count := 0

	for i := range configs {
		if configs[i].Active {
			activeConfig = &configs[i]
			count++
		}
	}

	if count == 0 {
		return nil, fmt.Errorf("no active database found in config (set active: true)")
	}
	if count > 1 {
		return nil, fmt.Errorf("multiple active databases found (only one can be active)")
	}

	return activeConfig, nil
}

// openDB connects using --driver/--dsn when both are given, otherwise the
// active entry of the databases list.
func openDB(ctx context.Context, driver, dsn string) (*sql.DB, *DBConfig, error) {
	config := &DBConfig{Name: "command line", Driver: driver, DSN: dsn, Active: true}
	if driver == "" || dsn == "" {
		active, err := GetActiveDBConfig()
		if err != nil {
			return nil, nil, err
		}
		config = active
	}

	db, err := sql.Open(config.Driver, config.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return db, config, nil
}

// readInput returns the contents of the named file, or stdin for "" and "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// loadSchema parses the input as a sample payload or, with fromSchema, as a
// JSON or YAML schema document previously written by the parse command.
func loadSchema(args []string, inputType string, fromSchema bool) (schema.ParsedSchema, error) {
	input, err := readInput(args)
	if err != nil {
		return schema.ParsedSchema{}, err
	}

	if fromSchema {
		return schema.DecodeDocument([]byte(input))
	}

	mode, err := schema.ParseMode(inputType)
	if err != nil {
		return schema.ParsedSchema{}, err
	}
	ps := schema.Parse(input, mode)
	if len(ps.Fields) == 0 {
		if ps.HasErrors() {
			return ps, errors.New(strings.Join(ps.ParseErrors, "; "))
		}
		return ps, errors.New("no fields found in input")
	}
	for _, e := range ps.ParseErrors {
		logrus.Warn(e)
	}
	return ps, nil
}

func generatorOptions() (engine.Options, error) {
	locale, err := engine.ParseLocale(viper.GetString("settings.locale"))
	if err != nil {
		return engine.Options{}, err
	}
	opts := engine.Options{
		Seed:   viper.GetInt64("settings.seed"),
		Locale: locale,
	}
	if viper.IsSet("settings.nullable_percent") {
		pct := viper.GetInt("settings.nullable_percent")
		opts.NullablePercent = &pct
	}
	return opts, nil
}

// bindFlags binds flags to config keys when the command runs. Several
// commands share a key and viper keeps only one flag binding per key.
func bindFlags(bindings map[string]string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		for key, name := range bindings {
			if err := viper.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return fmt.Errorf("failed to bind --%s: %w", name, err)
			}
		}
		return nil
	}
}
