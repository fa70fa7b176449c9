package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dto-pump/internal/engine"
	"dto-pump/internal/export"
)

var (
	preview    bool
	outputPath string
	fromSchema bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [file]",
	Short: "Generate records from a sample payload and render them",
	Long: `Infers a schema from a JSON sample or type declaration (or reads a schema
written by "parse" with --schema), generates records and renders them as
json, csv, sql or xml.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: bindFlags(map[string]string{
		"settings.input_type":    "type",
		"settings.default_count": "count",
		"settings.format":        "format",
		"settings.seed":          "seed",
		"settings.locale":        "locale",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(viper.GetString("settings.format"))
		if err != nil {
			return err
		}
		count := viper.GetInt("settings.default_count")
		if err := engine.ValidateCount(count); err != nil {
			return err
		}
		count = engine.EffectiveCount(count, preview)

		ps, err := loadSchema(args, viper.GetString("settings.input_type"), fromSchema)
		if err != nil {
			return err
		}
		opts, err := generatorOptions()
		if err != nil {
			return err
		}

		start := time.Now()
		var onProgress func()
		if outputPath != "" {
			uiprogress.Start()
			bar := uiprogress.AddBar(count).AppendCompleted().PrependElapsed()
			bar.PrependFunc(func(b *uiprogress.Bar) string {
				return "Generating: "
			})
			onProgress = func() { bar.Incr() }
		}

		records, err := engine.NewGenerator(opts).Records(ps.Fields, count, onProgress)
		if onProgress != nil {
			uiprogress.Stop()
		}
		if err != nil {
			return err
		}

		res, err := export.Serialize(records, format)
		if err != nil {
			return err
		}

		log := logrus.WithFields(logrus.Fields{"records": len(records), "format": format, "elapsed": time.Since(start)})
		if outputPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), res.Content)
			log.Debug("generation done")
			return nil
		}

		if err := os.WriteFile(outputPath, []byte(res.Content), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		log.WithField("file", outputPath).Info("generation done")
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s (%s)\n", len(records), outputPath, res.MimeType)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().String("type", "", "input type: json, typescript or auto (overrides config)")
	generateCmd.Flags().Int("count", 0, "number of records to generate, 1-100000 (overrides config)")
	generateCmd.Flags().String("format", "", "output format: json, csv, sql or xml (overrides config)")
	generateCmd.Flags().Int64("seed", 0, "random seed, 0 for time based (overrides config)")
	generateCmd.Flags().String("locale", "", "value locale: en or ko (overrides config)")
	generateCmd.Flags().BoolVar(&preview, "preview", false, "render at most 10 records")
	generateCmd.Flags().BoolVar(&fromSchema, "schema", false, "treat the input as a schema document from the parse command")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write to a file instead of stdout")
}
