/*
Package csv reads dataset records from delimited text streams whose
columns are the features of a schema, in the same order.
*/
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
)

/*
Options holds the configuration to read a CSV stream.

Header indicates whether the first row of the stream is a header that must
be skipped. Delimiter is the field separator, ',' if zero.
*/
type Options struct {
	Header    bool
	Delimiter rune
}

/*
ReadRecords takes an io.Reader for a CSV stream, a slice of features and
options, and returns the records parsed from the reader or an error.

Every row must have one field for each of the given features, in the same
order, with a valid value for the feature: a number for continuous features,
one of the available values for discrete features declared with them.
*/
func ReadRecords(reader io.Reader, features []feature.Feature, opts Options) ([]*dataset.Record, error) {
	records := []*dataset.Record{}
	err := ReadRecordsByRecord(reader, features, opts, func(_ int, r *dataset.Record) (bool, error) {
		records = append(records, r)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

/*
ReadRecordsByRecord takes an io.Reader for a CSV stream, a slice of features,
options and a lambda function on an integer and a record that returns a boolean
value. It parses the records from the reader and for each it calls the lambda
function with the record and its index as parameters. If the lambda function
returns true, it will continue processing the next record, otherwise it will
stop. An error is returned if something goes wrong when reading the stream or
parsing a record.
*/
func ReadRecordsByRecord(reader io.Reader, features []feature.Feature, opts Options, lambda func(int, *dataset.Record) (bool, error)) error {
	if len(features) == 0 {
		return fmt.Errorf("reading records: no features given")
	}
	r := csv.NewReader(reader)
	r.FieldsPerRecord = len(features)
	if opts.Delimiter != 0 {
		r.Comma = opts.Delimiter
	}
	l := 1
	if opts.Header {
		_, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading header: %v", err)
		}
		l++
	}
	for i := 0; ; i, l = i+1, l+1 {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading body: %v", err)
		}
		record, err := parseRecordFromCSVRow(row, features)
		if err != nil {
			return fmt.Errorf("parsing line %d: %v", l, err)
		}
		ok, err := lambda(i, record)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	return nil
}

/*
ReadRecordsFromFilePath takes a filepath string, a slice of features and
options, opens the file to which the filepath points to and uses ReadRecords
to return the records read from it or an error. If the filepath is "",
os.Stdin is read instead.
*/
func ReadRecordsFromFilePath(filepath string, features []feature.Feature, opts Options) ([]*dataset.Record, error) {
	var f *os.File
	var err error
	if filepath == "" {
		f = os.Stdin
	} else {
		f, err = os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("reading records: %v", err)
		}
		defer f.Close()
	}
	records, err := ReadRecords(f, features, opts)
	if err != nil {
		err = fmt.Errorf("parsing CSV file %s: %v", filepath, err)
	}
	return records, err
}

func parseRecordFromCSVRow(row []string, features []feature.Feature) (*dataset.Record, error) {
	values := make(map[string]interface{})
	for i, f := range features {
		value, err := dataset.ParseValue(f, row[i])
		if err != nil {
			return nil, err
		}
		values[f.Name()] = value
	}
	return dataset.NewRecord(values), nil
}
