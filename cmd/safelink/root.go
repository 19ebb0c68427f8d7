package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"safelink/backend/internal/config"
	"safelink/backend/pkg/logger"
)

func newRootCmd() *cobra.Command {
	var envFile string
	var cfg config.Config

	root := &cobra.Command{
		Use:           "safelink",
		Short:         "SafeLink construction-site interpreter backend",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			cfg = config.Load()
			logger.Init(logger.ParseLevel(cfg.LogLevel))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	cfgFn := func() config.Config { return cfg }
	root.AddCommand(newServeCmd(cfgFn), newMigrateCmd(cfgFn), newStandardizeCmd())
	return root
}
