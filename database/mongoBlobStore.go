package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type blobDocument struct {
	Key       string    `bson:"_id"`
	Data      []byte    `bson:"data"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBlobStore keeps one document per key. Writes replace the whole
// document; there is no partial update and no version field.
type MongoBlobStore struct {
	collection *mongo.Collection
}

func NewMongoBlobStore(collection *mongo.Collection) *MongoBlobStore {
	return &MongoBlobStore{collection: collection}
}

func (m *MongoBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	var doc blobDocument
	err := m.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, unavailable("get", key, err)
	}
	return doc.Data, nil
}

func (m *MongoBlobStore) Put(ctx context.Context, key string, data []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	doc := blobDocument{Key: key, Data: data, UpdatedAt: time.Now().UTC()}
	_, err := m.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return unavailable("put", key, err)
	}
	return nil
}

func (m *MongoBlobStore) Delete(ctx context.Context, key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	result, err := m.collection.DeleteOne(ctx, bson.M{"_id": key})
	if err != nil {
		return unavailable("delete", key, err)
	}
	if result.DeletedCount == 0 {
		return notFound(key)
	}
	return nil
}

func (m *MongoBlobStore) List(ctx context.Context) ([]string, error) {
	opts := options.Find().
		SetProjection(bson.M{"_id": 1}).
		SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := m.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, unavailable("list", "", err)
	}
	defer cursor.Close(ctx)

	var keys []string
	for cursor.Next(ctx) {
		var doc struct {
			Key string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, unavailable("list", "", err)
		}
		keys = append(keys, doc.Key)
	}
	if err := cursor.Err(); err != nil {
		return nil, unavailable("list", "", err)
	}
	return keys, nil
}

func (m *MongoBlobStore) Stat(ctx context.Context, key string) (time.Time, error) {
	if err := ValidateKey(key); err != nil {
		return time.Time{}, err
	}
	var doc struct {
		UpdatedAt time.Time `bson:"updated_at"`
	}
	opts := options.FindOne().SetProjection(bson.M{"updated_at": 1})
	err := m.collection.FindOne(ctx, bson.M{"_id": key}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return time.Time{}, notFound(key)
	}
	if err != nil {
		return time.Time{}, unavailable("stat", key, err)
	}
	return doc.UpdatedAt.UTC(), nil
}
