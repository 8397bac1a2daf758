package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is a user comment document stored in MongoDB.
type Comment struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    string             `json:"userId"    bson:"userId"`
	Text      string             `json:"text"      bson:"text"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateCommentRequest is the JSON body for POST /api/comments.
type CreateCommentRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}
