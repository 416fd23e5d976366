/*
Package sqldataset loads dataset records from a table of a SQL database.
SQLite3 and PostgreSQL databases are supported.
*/
package sqldataset

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"

	// Import of PostgreSQL driver
	_ "github.com/lib/pq"
	// Import of SQLite3 driver
	_ "github.com/mattn/go-sqlite3"
)

/*
OpenSQLite3 takes the path to a SQLite3 database file and returns
a connection to it or an error.
*/
func OpenSQLite3(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite3 database %s: %v", path, err)
	}
	return db, nil
}

/*
OpenPostgreSQL takes a PostgreSQL database connection URL and returns
a connection to it or an error.
*/
func OpenPostgreSQL(url string) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("opening postgresql database: %v", err)
	}
	return db, nil
}

/*
ReadRecords takes a context.Context, a database connection, a table name and a
slice of features and returns a record for each row in the table, built with
the values of the columns named as the features, or an error. Rows are read in
the order the database returns them.
*/
func ReadRecords(ctx context.Context, db *sql.DB, table string, features []feature.Feature) ([]*dataset.Record, error) {
	query, err := selectQuery(table, features)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying records from %s: %v", table, err)
	}
	defer rows.Close()
	var records []*dataset.Record
	for line := 1; rows.Next(); line++ {
		values := make([]interface{}, len(features))
		pointers := make([]interface{}, len(features))
		for i := range values {
			pointers[i] = &values[i]
		}
		err = rows.Scan(pointers...)
		if err != nil {
			return nil, fmt.Errorf("scanning row %d from %s: %v", line, table, err)
		}
		featureValues := make(map[string]interface{})
		for i, f := range features {
			v, err := dataset.ConvertValue(f, values[i])
			if err != nil {
				return nil, fmt.Errorf("parsing row %d from %s: %v", line, table, err)
			}
			featureValues[f.Name()] = v
		}
		records = append(records, dataset.NewRecord(featureValues))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("reading records from %s: %v", table, err)
	}
	return records, nil
}

func selectQuery(table string, features []feature.Feature) (string, error) {
	if len(features) == 0 {
		return "", fmt.Errorf("reading records from %s: no features given", table)
	}
	columns := make([]string, 0, len(features))
	for _, f := range features {
		columns = append(columns, quoteIdentifier(f.Name()))
	}
	return fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), quoteIdentifier(table)), nil
}

func quoteIdentifier(name string) string {
	return `"` + strings.Replace(name, `"`, `""`, -1) + `"`
}
