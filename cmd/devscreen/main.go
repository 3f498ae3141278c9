// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the devscreen CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/devscreen/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the process-wide diagnostic logger, built once flags are parsed.
var log = zap.NewNop()

// rootCmd is the base command for the devscreen CLI.
var rootCmd = &cobra.Command{
	Use:   "devscreen",
	Short: "Resume screening and weekly reporting for game dev teams",
	Long: `devscreen turns game developer resumes into structured skill assessments
and tailored interview question lists, records interview evaluations, and
generates weekly work reports from git history.

Each task is a subcommand: analyze, questions, evaluate, and gitreport.
Reports are plain Markdown, written for humans first.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonOut, _ := cmd.Flags().GetBool("log-json")
		debug, _ := cmd.Flags().GetBool("debug")
		l, err := logger.New(jsonOut, debug)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		log = l
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./devscreen.yaml or ~/.config/devscreen/config.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "log as JSON instead of console lines")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("devscreen")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "devscreen"))
		}
	}

	viper.SetEnvPrefix("DEVSCREEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// stringSetting resolves a string option: an explicitly set flag wins,
// then the config file, then the flag default.
func stringSetting(cmd *cobra.Command, flagName, viperKey string) string {
	if cmd.Flags().Changed(flagName) || !viper.IsSet(viperKey) {
		v, _ := cmd.Flags().GetString(flagName)
		return v
	}
	return viper.GetString(viperKey)
}

func main() {
	err := rootCmd.Execute()
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}
