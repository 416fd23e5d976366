/*
Package mongodataset loads dataset records from the documents of a MongoDB
collection.
*/
package mongodataset

import (
	"context"
	"fmt"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/feature"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
Connect takes a context.Context, a MongoDB connection URI and the names of a
database and a collection, and returns a connected client and the collection or
an error. Callers must disconnect the client when done.
*/
func Connect(ctx context.Context, uri, database, collection string) (*mongo.Client, *mongo.Collection, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to mongodb: %v", err)
	}
	return client, client.Database(database).Collection(collection), nil
}

/*
ReadRecords takes a context.Context, a MongoDB collection and a slice of
features and returns a record for each document in the collection, built with
the values of the fields named as the features, or an error. Documents are
read in natural order.
*/
func ReadRecords(ctx context.Context, collection *mongo.Collection, features []feature.Feature) ([]*dataset.Record, error) {
	projection := bson.D{{Key: "_id", Value: 0}}
	for _, f := range features {
		projection = append(projection, bson.E{Key: f.Name(), Value: 1})
	}
	cursor, err := collection.Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, fmt.Errorf("querying records from %s: %v", collection.Name(), err)
	}
	defer cursor.Close(ctx)
	var records []*dataset.Record
	for i := 0; cursor.Next(ctx); i++ {
		var doc bson.M
		err = cursor.Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("decoding document %d from %s: %v", i, collection.Name(), err)
		}
		r, err := recordFromDocument(doc, features)
		if err != nil {
			return nil, fmt.Errorf("parsing document %d from %s: %v", i, collection.Name(), err)
		}
		records = append(records, r)
	}
	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("reading records from %s: %v", collection.Name(), err)
	}
	return records, nil
}

func recordFromDocument(doc bson.M, features []feature.Feature) (*dataset.Record, error) {
	values := make(map[string]interface{})
	for _, f := range features {
		v, err := dataset.ConvertValue(f, doc[f.Name()])
		if err != nil {
			return nil, err
		}
		values[f.Name()] = v
	}
	return dataset.NewRecord(values), nil
}
