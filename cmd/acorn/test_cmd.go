package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type testConfig struct {
	growConfig `mapstructure:",squash"`
	TestInput  string `mapstructure:"test-input" validate:"required"`
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long:  `Grow a tree from a set of data and test its performance against a testing set`,
		Run: func(cmd *cobra.Command, args []string) {
			config := &testConfig{}
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
			data, err := config.prepare(ctx, logger, config.TestInput)
			if err != nil {
				exit(2, err)
			}
			t, err := config.growTree(ctx, logger, data)
			if err != nil {
				exit(3, fmt.Errorf("growing the tree: %v", err))
			}
			logger.WithField("records", data.test.Count()).Info("Testing tree")
			successRate, errorCount, err := t.Test(ctx, data.test)
			if err != nil {
				exit(5, fmt.Errorf("testing tree: %v", err))
			}
			logger.WithFields(log.Fields{"successRate": successRate, "failed": errorCount}).Debug("Done")
			fmt.Fprintf(cmd.OutOrStdout(), "%f success rate, failed to make a prediction for %d samples\n", successRate, errorCount)
		},
	}
	addGrowFlags(cmd)
	cmd.Flags().StringP("test-input", "t", "", "path to an input CSV or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to test the tree with (required)")
	return cmd
}

func (tc *testConfig) Validate() error {
	err := validate.Struct(tc)
	if err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}
	err = tc.validateSource(tc.Input)
	if err != nil {
		return err
	}
	return tc.validateSource(tc.TestInput)
}
