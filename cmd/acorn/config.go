package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pbanos/acorn"
	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/dataset/csv"
	"github.com/pbanos/acorn/dataset/mongodataset"
	"github.com/pbanos/acorn/dataset/sqldataset"
	"github.com/pbanos/acorn/feature"
	fyaml "github.com/pbanos/acorn/feature/yaml"
	"github.com/pbanos/acorn/tree"
	"github.com/pbanos/acorn/tree/dot"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validate = validator.New()

type sourceKind int

const (
	csvSource sourceKind = iota
	sqlite3Source
	postgresqlSource
	mongodbSource
)

func source(input string) sourceKind {
	switch {
	case strings.HasPrefix(input, "postgresql://"), strings.HasPrefix(input, "postgres://"):
		return postgresqlSource
	case strings.HasPrefix(input, "mongodb://"), strings.HasPrefix(input, "mongodb+srv://"):
		return mongodbSource
	case strings.HasSuffix(input, ".db"):
		return sqlite3Source
	}
	return csvSource
}

type growConfig struct {
	Input        string `mapstructure:"input"`
	Metadata     string `mapstructure:"metadata" validate:"required"`
	Outcome      string `mapstructure:"outcome" validate:"required"`
	Bins         int    `mapstructure:"bins" validate:"min=1"`
	Delimiter    string `mapstructure:"delimiter" validate:"len=1"`
	Header       bool   `mapstructure:"header"`
	Table        string `mapstructure:"table"`
	Database     string `mapstructure:"database"`
	Collection   string `mapstructure:"collection"`
	BranchDomain string `mapstructure:"branch-domain" validate:"oneof=dataset subset"`
	Format       string `mapstructure:"format" validate:"omitempty,oneof=text dot"`
	Output       string `mapstructure:"output"`
}

func addGrowFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("input", "i", "", "path to an input CSV or SQLite3 (.db) file, or a PostgreSQL or MongoDB connection URL with data to use to grow the tree (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringP("metadata", "m", "", "path to a YML file describing the features available on the input, in column order (required)")
	cmd.Flags().StringP("outcome", "c", "", "name of the binary feature the generated tree should predict (required)")
	cmd.Flags().IntP("bins", "b", dataset.DefaultBins, "number of equal-width ranges continuous features are split into")
	cmd.Flags().String("delimiter", ",", "field delimiter of CSV input")
	cmd.Flags().Bool("header", false, "skip the first row of CSV input")
	cmd.Flags().String("table", "", "table holding the records on SQL inputs")
	cmd.Flags().String("database", "", "database holding the records on MongoDB inputs")
	cmd.Flags().String("collection", "", "collection holding the records on MongoDB inputs")
	cmd.Flags().String("branch-domain", acorn.DatasetDomain.String(), "values a node gets branches for: dataset (every value of the feature) or subset (only the values of the node's records)")
}

// loadConfig fills out with the flags set on the command line, then
// ACORN_* environment variables, then the config file if any, and
// finally the flag defaults.
func loadConfig(cmd *cobra.Command, configFile string, out interface{}) error {
	v := viper.New()
	v.SetEnvPrefix("acorn")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return fmt.Errorf("binding flags: %v", err)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		err = v.ReadInConfig()
		if err != nil {
			return fmt.Errorf("reading config file %s: %v", configFile, err)
		}
	}
	err = v.Unmarshal(out)
	if err != nil {
		return fmt.Errorf("parsing configuration: %v", err)
	}
	return nil
}

func (gc *growConfig) Validate() error {
	err := validate.Struct(gc)
	if err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}
	return gc.validateSource(gc.Input)
}

func (gc *growConfig) validateSource(input string) error {
	switch source(input) {
	case sqlite3Source, postgresqlSource:
		if gc.Table == "" {
			return fmt.Errorf("table flag is required to read records from %s", input)
		}
	case mongodbSource:
		if gc.Database == "" || gc.Collection == "" {
			return fmt.Errorf("database and collection flags are required to read records from a MongoDB input")
		}
	}
	return nil
}

func (gc *growConfig) branchDomain() acorn.BranchDomain {
	if gc.BranchDomain == acorn.SubsetDomain.String() {
		return acorn.SubsetDomain
	}
	return acorn.DatasetDomain
}

// schema reads the features from the metadata file and checks
// the outcome is a discrete one among them.
func (gc *growConfig) schema() ([]feature.Feature, error) {
	features, err := fyaml.ReadFeaturesFromFile(gc.Metadata)
	if err != nil {
		return nil, err
	}
	f := feature.Find(features, gc.Outcome)
	if f == nil {
		return nil, fmt.Errorf("outcome feature '%s' is not defined", gc.Outcome)
	}
	if _, ok := f.(*feature.DiscreteFeature); !ok {
		return nil, fmt.Errorf("outcome feature '%s' must be discrete", gc.Outcome)
	}
	return features, nil
}

func (gc *growConfig) readRecords(ctx context.Context, logger log.FieldLogger, input string, features []feature.Feature) (*dataset.Dataset, error) {
	var records []*dataset.Record
	var err error
	switch source(input) {
	case postgresqlSource:
		logger.WithField("table", gc.Table).Info("Reading records from PostgreSQL")
		records, err = gc.readSQLRecords(ctx, sqldataset.OpenPostgreSQL, input, features)
	case sqlite3Source:
		logger.WithFields(log.Fields{"file": input, "table": gc.Table}).Info("Reading records from SQLite3")
		records, err = gc.readSQLRecords(ctx, sqldataset.OpenSQLite3, input, features)
	case mongodbSource:
		logger.WithFields(log.Fields{"database": gc.Database, "collection": gc.Collection}).Info("Reading records from MongoDB")
		records, err = gc.readMongoDBRecords(ctx, input, features)
	default:
		logger.WithField("file", input).Info("Reading records from CSV")
		records, err = csv.ReadRecordsFromFilePath(input, features, csv.Options{Header: gc.Header, Delimiter: []rune(gc.Delimiter)[0]})
	}
	if err != nil {
		return nil, err
	}
	return dataset.New(records), nil
}

func (gc *growConfig) readSQLRecords(ctx context.Context, open func(string) (*sql.DB, error), input string, features []feature.Feature) ([]*dataset.Record, error) {
	db, err := open(input)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return sqldataset.ReadRecords(ctx, db, gc.Table, features)
}

func (gc *growConfig) readMongoDBRecords(ctx context.Context, uri string, features []feature.Feature) ([]*dataset.Record, error) {
	client, collection, err := mongodataset.Connect(ctx, uri, gc.Database, gc.Collection)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect(ctx)
	return mongodataset.ReadRecords(ctx, collection, features)
}

// training holds the data to grow a tree, with every
// continuous feature already discretized.
type training struct {
	features []feature.Feature
	outcome  *feature.DiscreteFeature
	train    *dataset.Dataset
	test     *dataset.Dataset
}

// prepare reads the schema and the records to grow a tree from, and those
// to test it with if testInput is not empty. Continuous features are split
// into the ranges of the training records on both datasets.
func (gc *growConfig) prepare(ctx context.Context, logger log.FieldLogger, testInput string) (*training, error) {
	features, err := gc.schema()
	if err != nil {
		return nil, err
	}
	train, err := gc.readRecords(ctx, logger, gc.Input, features)
	if err != nil {
		return nil, fmt.Errorf("reading training records: %v", err)
	}
	var test *dataset.Dataset
	if testInput != "" {
		test, err = gc.readRecords(ctx, logger, testInput, features)
		if err != nil {
			return nil, fmt.Errorf("reading testing records: %v", err)
		}
	}
	features, err = dataset.CollectValues(ctx, train, features)
	if err != nil {
		return nil, err
	}
	d := dataset.NewDiscretizer(gc.Bins)
	for i, f := range features {
		cf, ok := f.(*feature.ContinuousFeature)
		if !ok {
			continue
		}
		b, err := d.Binning(ctx, train, cf)
		if err != nil {
			return nil, err
		}
		err = b.Apply(ctx, train)
		if err != nil {
			return nil, err
		}
		if test != nil {
			err = b.Apply(ctx, test)
			if err != nil {
				return nil, err
			}
		}
		features[i] = b.Feature
		logger.WithFields(log.Fields{
			"feature": f.Name(),
			"ranges":  b.Feature.AvailableValues(),
		}).Debug("Feature discretized")
	}
	outcome := feature.Find(features, gc.Outcome).(*feature.DiscreteFeature)
	return &training{features: features, outcome: outcome, train: train, test: test}, nil
}

func (gc *growConfig) growTree(ctx context.Context, logger log.FieldLogger, data *training) (*tree.Tree, error) {
	logger.WithFields(log.Fields{
		"records":  data.train.Count(),
		"features": len(data.features) - 1,
		"outcome":  data.outcome.Name(),
	}).Info("Growing tree")
	b := acorn.NewBuilder(data.features, data.outcome, acorn.WithBranchDomain(gc.branchDomain()), acorn.WithLogger(logger))
	return b.Build(ctx, data.train)
}

func writeTree(w io.Writer, t *tree.Tree, format string) error {
	if format == "dot" {
		return dot.Write(w, t)
	}
	_, err := io.WriteString(w, t.String())
	return err
}

func outputTree(stdout io.Writer, outputPath string, t *tree.Tree, format string) error {
	if outputPath == "" {
		return writeTree(stdout, t, format)
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %v", err)
	}
	defer f.Close()
	return writeTree(f, t, format)
}
