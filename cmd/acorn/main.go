package main

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	verbose    bool
	logFile    string
	configFile string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "acorn",
		Short: "acorn is a tool to grow ID3 decision trees",
		Long:  `A tool to grow decision trees that predict a binary outcome from your data, and test them`,
	}
	config := &rootCmdConfig{}
	rootCmd.PersistentFlags().BoolVarP(&(config.verbose), "verbose", "v", false, "log the progress of the tree growth")
	rootCmd.PersistentFlags().StringVar(&(config.logFile), "log-file", "", "path to a file to write logs to, rotated when it grows (defaults to STDERR)")
	rootCmd.PersistentFlags().StringVar(&(config.configFile), "config", "", "path to a YAML file with values for the command flags")
	rootCmd.AddCommand(versionCmd(), growCmd(config), testCmd(config))
	return rootCmd
}
