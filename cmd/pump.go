package cmd

import (
	"fmt"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dto-pump/internal/dialect"
	"dto-pump/internal/engine"
)

var (
	clean       bool
	createTable bool
	dsn         string
	driverName  string
)

var pumpCmd = &cobra.Command{
	Use:   "pump [file]",
	Short: "Generate records and insert them into a database table",
	Long: `Infers a schema like "generate" does, then inserts the generated records into
a table of the active database (or the one given by --driver and --dsn) in a
single transaction. Arrays and nested objects are stored as JSON text.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: bindFlags(map[string]string{
		"settings.input_type":    "type",
		"settings.default_count": "count",
		"settings.table":         "table",
		"settings.seed":          "seed",
		"settings.locale":        "locale",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		count := viper.GetInt("settings.default_count")
		if err := engine.ValidateCount(count); err != nil {
			return err
		}
		table := viper.GetString("settings.table")

		ps, err := loadSchema(args, viper.GetString("settings.input_type"), fromSchema)
		if err != nil {
			return err
		}
		opts, err := generatorOptions()
		if err != nil {
			return err
		}

		db, config, err := openDB(ctx, driverName, dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		d, err := dialect.GetDialect(config.Driver)
		if err != nil {
			return err
		}
		fmt.Printf("🦅 Connected to %s (%s)\n", config.Name, config.Driver)
		logrus.WithFields(logrus.Fields{"dialect": d.Name(), "table": table, "count": count}).Info("starting pump")

		records, err := engine.NewGenerator(opts).Records(ps.Fields, count, nil)
		if err != nil {
			return err
		}

		start := time.Now()
		uiprogress.Start()
		bar := uiprogress.AddBar(count).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return "Inserting: "
		})

		res, err := engine.Pump(ctx, db, d, engine.PumpOptions{Table: table, Clean: clean, Create: createTable}, ps.Fields, records, func() {
			bar.Incr()
		})
		uiprogress.Stop()
		if err != nil {
			return err
		}

		icon := "✓"
		if res.Status != engine.StatusOK {
			icon = "!"
		}
		fmt.Println("\n📊 Summary Report:")
		fmt.Printf("[%s] %-20s : %d rows (Target: %d) - %s\n", icon, res.Table, res.Actual, res.Target, res.Status)
		if res.ErrorMsg != "" {
			fmt.Printf("    └ Error: %s\n", res.ErrorMsg)
		}
		fmt.Println("--------------------------------------------------")
		logrus.Infof("Pump Done! Time Elapsed: %s", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pumpCmd)

	pumpCmd.Flags().String("type", "", "input type: json, typescript or auto (overrides config)")
	pumpCmd.Flags().Int("count", 0, "number of records to insert, 1-100000 (overrides config)")
	pumpCmd.Flags().String("table", "", "target table (overrides config)")
	pumpCmd.Flags().Int64("seed", 0, "random seed, 0 for time based (overrides config)")
	pumpCmd.Flags().String("locale", "", "value locale: en or ko (overrides config)")
	pumpCmd.Flags().BoolVar(&fromSchema, "schema", false, "treat the input as a schema document from the parse command")
	pumpCmd.Flags().BoolVar(&clean, "clean", false, "empty the table before inserting")
	pumpCmd.Flags().BoolVar(&createTable, "create", false, "create the table when it does not exist")
	pumpCmd.Flags().StringVar(&driverName, "driver", "", "database/sql driver: mysql, postgres, sqlserver or oracle")
	pumpCmd.Flags().StringVar(&dsn, "dsn", "", "Database Source Name (DSN)")
}
