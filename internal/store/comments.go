package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"user-api/internal/models"
)

// CommentStore handles comment document CRUD in MongoDB.
type CommentStore struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewCommentStore(db *mongo.Database, log *logrus.Logger) *CommentStore {
	return &CommentStore{col: db.Collection("comments"), log: log}
}

// Insert stores a new comment and returns it with the generated id.
func (s *CommentStore) Insert(ctx context.Context, req models.CreateCommentRequest) (*models.Comment, error) {
	c := &models.Comment{
		UserID:    req.UserID,
		Text:      req.Text,
		CreatedAt: time.Now().UTC(),
	}
	res, err := s.col.InsertOne(ctx, c)
	if err != nil {
		s.log.WithError(err).Error("insert comment failed")
		return nil, fmt.Errorf("mongo insert comment: %w", err)
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return c, nil
}

// FindByUser returns all comments left by one user.
func (s *CommentStore) FindByUser(ctx context.Context, userID string) ([]models.Comment, error) {
	cur, err := s.col.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		s.log.WithError(err).WithField("userId", userID).Error("find comments failed")
		return nil, fmt.Errorf("mongo find comments: %w", err)
	}
	defer cur.Close(ctx)

	var comments []models.Comment
	if err := cur.All(ctx, &comments); err != nil {
		return nil, fmt.Errorf("mongo decode comments: %w", err)
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Delete hard-deletes a comment by id.
func (s *CommentStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("delete comment failed")
		return fmt.Errorf("mongo delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
