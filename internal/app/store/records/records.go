// Package records is the generic gateway to named Mongo collections. Each
// entity store wraps a Collection with its document type; all predicate,
// sort, and limit plumbing funnels through here so error classification
// stays in one place.
//
// Update and delete report zero affected documents as a normal outcome,
// not an error — callers decide whether zero means "not found".
package records

import (
	"context"
	"errors"

	"github.com/aivista/aivista/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection is typed access to one named collection.
type Collection[T any] struct {
	c *mongo.Collection
}

// New wraps the named collection of db.
func New[T any](db *mongo.Database, name string) *Collection[T] {
	return &Collection[T]{c: db.Collection(name)}
}

// Raw exposes the underlying mongo collection for index creation and the
// occasional operation the typed surface does not cover.
func (c *Collection[T]) Raw() *mongo.Collection {
	return c.c
}

// Find returns all documents matching filter, honoring any find options.
func (c *Collection[T]) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]T, error) {
	cur, err := c.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "find failed", err)
	}
	defer cur.Close(ctx)

	var out []T
	if err := cur.All(ctx, &out); err != nil {
		return nil, apperr.Wrap(apperr.Storage, "decode failed", err)
	}
	return out, nil
}

// FindOne returns the first document matching filter. A missing document is
// a NotFound error.
func (c *Collection[T]) FindOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	if err := c.c.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.Wrap(apperr.NotFound, "record not found", err)
		}
		return nil, apperr.Wrap(apperr.Storage, "find failed", err)
	}
	return &doc, nil
}

// Insert writes doc and returns the generated id. The raw driver error is
// returned unwrapped so callers can detect duplicate-key violations.
func (c *Collection[T]) Insert(ctx context.Context, doc T) (primitive.ObjectID, error) {
	res, err := c.c.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateByID applies a $set patch to the document with the given id,
// optionally narrowed by extra filter fields (for conditional updates).
// Returns the number of matched documents; zero is not an error.
func (c *Collection[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, extra bson.M, set bson.M) (int64, error) {
	filter := bson.M{"_id": id}
	for k, v := range extra {
		filter[k] = v
	}
	res, err := c.c.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return 0, apperr.Wrap(apperr.Storage, "update failed", err)
	}
	return res.MatchedCount, nil
}

// DeleteByID removes the document with the given id. Returns the number of
// deleted documents; zero is not an error.
func (c *Collection[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := c.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, apperr.Wrap(apperr.Storage, "delete failed", err)
	}
	return res.DeletedCount, nil
}

// Distinct returns the distinct string values of field across documents
// matching filter.
func (c *Collection[T]) Distinct(ctx context.Context, field string, filter bson.M) ([]string, error) {
	vals, err := c.c.Distinct(ctx, field, filter)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "distinct failed", err)
	}
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

// Count returns the number of documents matching filter.
func (c *Collection[T]) Count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := c.c.CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperr.Wrap(apperr.Storage, "count failed", err)
	}
	return n, nil
}
