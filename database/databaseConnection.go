package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	BackendMongo  = "mongo"
	BackendMySQL  = "mysql"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config selects and parameterizes the blob backend.
type Config struct {
	Backend         string
	MongoURL        string
	MongoDatabase   string
	MongoCollection string
	MySQL           MySQLConfig
	Dir             string
}

// MySQLConfig captures the connection parameters for a MySQL instance.
type MySQLConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
	Params   string
}

// FromEnv populates a Config using defaults that can be overridden via environment variables.
func FromEnv() Config {
	return Config{
		Backend:         getEnv("BLOB_BACKEND", BackendMongo),
		MongoURL:        getEnv("MONGODB_URL", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGODB_DATABASE", "street-kiosk"),
		MongoCollection: getEnv("MONGODB_COLLECTION", "blobs"),
		MySQL: MySQLConfig{
			User:     getEnv("MYSQL_USER", "kiosk"),
			Password: getEnv("MYSQL_PASSWORD", "kiosk"),
			Host:     getEnv("MYSQL_HOST", "127.0.0.1"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			Database: getEnv("MYSQL_DATABASE", "kiosk"),
			Params:   getEnv("MYSQL_PARAMS", "charset=utf8mb4&parseTime=True&loc=UTC"),
		},
		Dir: getEnv("BLOB_DIR", "./data"),
	}
}

// DBinstance connects to MongoDB and verifies the server answers a ping.
func DBinstance(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}
	log.Println("connected to mongodb")
	return client, nil
}

func OpenCollection(client *mongo.Client, databaseName, collectionName string) *mongo.Collection {
	return client.Database(databaseName).Collection(collectionName)
}

// Open builds the configured backend. The returned close function is never nil.
func Open(ctx context.Context, cfg Config) (BlobStore, func(), error) {
	noop := func() {}
	switch cfg.Backend {
	case BackendMongo:
		client, err := DBinstance(ctx, cfg.MongoURL)
		if err != nil {
			return nil, noop, unavailable("connect", cfg.MongoURL, err)
		}
		store := NewMongoBlobStore(OpenCollection(client, cfg.MongoDatabase, cfg.MongoCollection))
		return store, func() { client.Disconnect(context.Background()) }, nil
	case BackendMySQL:
		store, closeFn, err := OpenGormBlobStore(cfg.MySQL)
		if err != nil {
			return nil, noop, unavailable("connect", cfg.MySQL.Host, err)
		}
		return store, closeFn, nil
	case BackendFile:
		store, err := NewFileBlobStore(cfg.Dir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil
	case BackendMemory:
		return NewMemoryBlobStore(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown blob backend %q", cfg.Backend)
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
