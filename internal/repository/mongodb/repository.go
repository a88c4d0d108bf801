package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adiouf/finsight/internal/domain/models"
)

const (
	exchangesCollection = "exchanges"
	digestsCollection   = "digests"
)

// Repository defines the interface for chat history and digest storage.
type Repository interface {
	SaveExchange(ctx context.Context, exchange models.Exchange) error
	SaveDigest(ctx context.Context, digest models.Digest) error
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client *mongo.Client
	dbName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{client: client, dbName: dbName}, nil
}

// SaveExchange archives one question/answer pair.
func (r *MongoDBRepository) SaveExchange(ctx context.Context, exchange models.Exchange) error {
	collection := r.client.Database(r.dbName).Collection(exchangesCollection)
	if _, err := collection.InsertOne(ctx, exchange); err != nil {
		return fmt.Errorf("failed to insert exchange: %w", err)
	}
	return nil
}

// SaveDigest archives a scheduled digest.
func (r *MongoDBRepository) SaveDigest(ctx context.Context, digest models.Digest) error {
	collection := r.client.Database(r.dbName).Collection(digestsCollection)
	if _, err := collection.InsertOne(ctx, digest); err != nil {
		return fmt.Errorf("failed to insert digest: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
