package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dto-pump/internal/export"
	"dto-pump/internal/schema"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output formats",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, f := range export.AvailableFormats() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-5s %s\n", f.Format, f.Label)
		}
	},
}

var fieldTypesCmd = &cobra.Command{
	Use:   "field-types",
	Short: "List the field types a schema can use",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range schema.FieldTypes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-12s %s\n", t.Type, t.Label, t.Description)
		}
	},
}

func init() {
	RootCmd.AddCommand(formatsCmd)
	RootCmd.AddCommand(fieldTypesCmd)
}
