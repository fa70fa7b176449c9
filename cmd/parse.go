package cmd

import (
	"fmt"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dto-pump/internal/schema"
)

var (
	asJSONSchema bool
	asYAML       bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Infer a field schema from a JSON sample or type declaration",
	Long: `Reads a JSON sample or a TypeScript-style interface/type declaration from
a file (or stdin when omitted or "-") and prints the inferred field schema.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindFlags(map[string]string{"settings.input_type": "type"}),
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := loadSchema(args, viper.GetString("settings.input_type"), false)
		if err != nil {
			return err
		}

		var out []byte
		switch {
		case asJSONSchema:
			out, err = gojson.MarshalIndent(schema.ToJSONSchema(ps), "", "  ")
		case asYAML:
			out, err = schema.EncodeYAML(ps)
		default:
			out, err = gojson.MarshalIndent(ps, "", "  ")
		}
		if err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(parseCmd)

	parseCmd.Flags().String("type", "", "input type: json, typescript or auto (overrides config)")
	parseCmd.Flags().BoolVar(&asJSONSchema, "jsonschema", false, "print a JSON Schema document instead of the field list")
	parseCmd.Flags().BoolVar(&asYAML, "yaml", false, "print the field list as YAML")
}
