package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long:  `Grow an ID3 decision tree from a set of data to predict a binary outcome feature.`,
		Run: func(cmd *cobra.Command, args []string) {
			config := &growConfig{}
			err := loadConfig(cmd, rootConfig.configFile, config)
			if err != nil {
				exit(1, err)
			}
			err = config.Validate()
			if err != nil {
				exit(1, err)
			}
			logger := rootConfig.logger()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			data, err := config.prepare(ctx, logger, "")
			if err != nil {
				exit(2, err)
			}
			t, err := config.growTree(ctx, logger, data)
			if err != nil {
				exit(3, fmt.Errorf("growing the tree: %v", err))
			}
			err = outputTree(cmd.OutOrStdout(), config.Output, t, config.Format)
			if err != nil {
				exit(4, err)
			}
		},
	}
	addGrowFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "path to a file to which the generated tree will be written (defaults to STDOUT)")
	cmd.Flags().StringP("format", "f", "text", "format of the generated tree: text or dot")
	return cmd
}

func exit(code int, err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(code)
}
