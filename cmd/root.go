package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dto-pump/internal/logging"
)

var (
	cfgFile    string
	logCleanup func() error
)

var RootCmd = &cobra.Command{
	Use:   "dto-pump",
	Short: "Infer a schema from a sample payload and generate test data",
	Long: `
  ____ _____ ___    ____  _   _ __  __ ____
 |  _ \_   _/ _ \  |  _ \| | | |  \/  |  _ \
 | | | || || | | | | |_) | | | | |\/| | |_) |
 | |_| || || |_| | |  __/| |_| | |  | |  __/
 |____/ |_| \___/  |_|    \___/|_|  |_|_|

DTO PUMP - Test Data Generator from JSON samples and type declarations
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := logging.DefaultConfig()
		if err := viper.UnmarshalKey("log", &cfg); err != nil {
			return fmt.Errorf("failed to parse log config: %w", err)
		}
		cleanup, err := logging.Setup(cfg)
		if err != nil {
			return err
		}
		logCleanup = cleanup

		if f := viper.ConfigFileUsed(); f != "" {
			logrus.WithField("file", f).Debug("using config file")
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logCleanup != nil {
			return logCleanup()
		}
		return nil
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./dto-pump.yaml)")
	RootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	RootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format"))

	defaults := logging.DefaultConfig()
	viper.SetDefault("log.level", defaults.Level)
	viper.SetDefault("log.format", defaults.Format)
	viper.SetDefault("log.max_size_mb", defaults.MaxSizeMB)
	viper.SetDefault("log.max_backups", defaults.MaxBackups)
	viper.SetDefault("log.max_age_days", defaults.MaxAgeDays)
	viper.SetDefault("log.compress", defaults.Compress)

	viper.SetDefault("settings.default_count", 10)
	viper.SetDefault("settings.format", "json")
	viper.SetDefault("settings.input_type", "auto")
	viper.SetDefault("settings.seed", 0)
	viper.SetDefault("settings.locale", "en")
	viper.SetDefault("settings.nullable_percent", 10)
	viper.SetDefault("settings.table", "generated_data")
	viper.SetDefault("server.addr", ":3001")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("dto-pump")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DTO_PUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Warning: failed to read config:", err)
		}
	}
}
