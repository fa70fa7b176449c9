package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dto-pump/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the parse and generate operations over HTTP",
	Args:  cobra.NoArgs,
	PreRunE: bindFlags(map[string]string{
		"server.addr":     "addr",
		"settings.seed":   "seed",
		"settings.locale": "locale",
	}),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := generatorOptions()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := api.NewServer(api.Options{
			Seed:            opts.Seed,
			Locale:          opts.Locale,
			NullablePercent: opts.NullablePercent,
		})
		return srv.ListenAndServe(ctx, viper.GetString("server.addr"))
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (overrides config, default :3001)")
	serveCmd.Flags().Int64("seed", 0, "random seed, 0 for time based (overrides config)")
	serveCmd.Flags().String("locale", "", "value locale: en or ko (overrides config)")
}
