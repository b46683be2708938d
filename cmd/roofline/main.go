package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Veraticus/roofline/internal/cli"
	"github.com/Veraticus/roofline/internal/common"
	"github.com/Veraticus/roofline/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// newRootCmd builds the command tree. interrupts is consulted by long-running
// commands to tell a signal apart from other cancellations.
func newRootCmd(interrupts *cli.InterruptHandler) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "roofline",
		Short: "Roofing product classifier and warranty eligibility engine",
		Long: `roofline classifies roofing invoice line items into system categories and
decides which manufacturer warranty tiers the purchase qualifies for.

Line items are read as JSON from stdin.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initConfig(cfgFile)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/roofline/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(evaluateCmd())
	rootCmd.AddCommand(batchCmd(interrupts))
	rootCmd.AddCommand(formCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(tiersCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := interrupts.HandleInterrupts(context.Background())

	err := newRootCmd(interrupts).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		for _, dir := range config.SearchPaths() {
			viper.AddConfigPath(dir)
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// ROOFLINE_RULES_PREMIUM_SUBTYPES maps to rules.premium_subtypes
	viper.SetEnvPrefix("ROOFLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
		switch {
		case missing && cfgFile == "":
		case missing:
			return common.NewUserError("config file not found", fmt.Errorf("%w: %w", common.ErrMissingConfig, err))
		default:
			return common.NewUserError("failed to read config", fmt.Errorf("%w: %w", common.ErrInvalidConfig, err))
		}
	}

	if err := common.SetupLogger(viper.GetString("logging.level"), viper.GetString("logging.format")); err != nil {
		return common.NewUserError("failed to setup logging", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "roofline %s\n", version)
			return err
		},
	}
}
