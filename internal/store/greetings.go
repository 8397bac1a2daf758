package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"user-api/internal/models"
)

// greetingKey identifies the single hello-message document.
const greetingKey = "helloMessage"

// GreetingStore persists the single greeting document.
type GreetingStore struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewGreetingStore(db *mongo.Database, log *logrus.Logger) *GreetingStore {
	return &GreetingStore{col: db.Collection("greetings"), log: log}
}

// Get returns the stored greeting text, or ErrNotFound if none has been
// written yet.
func (s *GreetingStore) Get(ctx context.Context) (string, error) {
	var g models.Greeting
	err := s.col.FindOne(ctx, bson.M{"name": greetingKey}).Decode(&g)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrNotFound
		}
		s.log.WithError(err).Error("find greeting failed")
		return "", fmt.Errorf("mongo find greeting: %w", err)
	}
	return g.Text, nil
}

// Set upserts the greeting document and returns the stored text.
func (s *GreetingStore) Set(ctx context.Context, text string) (string, error) {
	_, err := s.col.UpdateOne(
		ctx,
		bson.M{"name": greetingKey},
		bson.M{"$set": bson.M{"text": text}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		s.log.WithError(err).Error("save greeting failed")
		return "", fmt.Errorf("mongo save greeting: %w", err)
	}
	return text, nil
}
