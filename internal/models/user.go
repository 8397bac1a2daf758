package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a single user document stored in MongoDB.
//
// Name, Email and Password are pointers because a full update (PUT) nulls out
// any field omitted from the request body, and those nulls must round-trip
// through both bson and the JSON responses.
type User struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name      *string            `json:"name"      bson:"name"`
	Email     *string            `json:"email"     bson:"email"`
	Password  *string            `json:"password"  bson:"password"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// CreateUserRequest is the JSON body for POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserPatch is the JSON body for PATCH and PUT /api/users/{id}. A nil field
// means "absent from the request": PATCH leaves it untouched, PUT sets it to
// null.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UserPage is the response body for GET /api/users.
type UserPage struct {
	Users       []User `json:"users"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalUsers  int64  `json:"totalUsers"`
}
