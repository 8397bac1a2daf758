package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"user-api/internal/models"
)

// UserStore handles user document CRUD in MongoDB.
type UserStore struct {
	col *mongo.Collection
	log *logrus.Logger
}

func NewUserStore(db *mongo.Database, log *logrus.Logger) *UserStore {
	return &UserStore{col: db.Collection("users"), log: log}
}

// Insert stores a new user and returns it with the generated id.
func (s *UserStore) Insert(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	u := &models.User{
		Name:      &req.Name,
		Email:     &req.Email,
		Password:  &req.Password,
		CreatedAt: time.Now().UTC(),
	}
	res, err := s.col.InsertOne(ctx, u)
	if err != nil {
		s.log.WithError(err).Error("insert user failed")
		return nil, fmt.Errorf("mongo insert user: %w", err)
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return u, nil
}

// FindByID resolves a user by id. Unparsable ids count as not found, matching
// how the store treats any identifier that cannot name a document.
func (s *UserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var u models.User
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		s.log.WithError(err).WithField("id", id).Error("find user failed")
		return nil, fmt.Errorf("mongo find user: %w", err)
	}
	return &u, nil
}

// FindPage returns one page of users sorted by creation time.
//
// The count and the page are two independent reads, not a snapshot: an insert
// landing between them can shift results across pages. Accepted at this scale.
func (s *UserStore) FindPage(ctx context.Context, page, limit int, sort string) (*models.UserPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		s.log.WithError(err).Error("count users failed")
		return nil, fmt.Errorf("mongo count users: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: sortDirection(sort)}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))
	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		s.log.WithError(err).Error("find users failed")
		return nil, fmt.Errorf("mongo find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("mongo decode users: %w", err)
	}
	if users == nil {
		users = []models.User{}
	}

	return &models.UserPage{
		Users:       users,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		TotalUsers:  total,
	}, nil
}

// Patch merges only the supplied fields into an existing user and returns the
// post-mutation document.
func (s *UserStore) Patch(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	set := patchDocument(patch)
	if len(set) == 0 {
		return s.FindByID(ctx, id)
	}
	return s.findAndSet(ctx, id, set, "patch")
}

// Replace applies full-replace semantics: every mutable field is written,
// with an explicit null for fields absent from the request. The id and
// creation timestamp are never touched.
func (s *UserStore) Replace(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	return s.findAndSet(ctx, id, replaceDocument(patch), "update")
}

func (s *UserStore) findAndSet(ctx context.Context, id string, set bson.M, op string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var u models.User
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		s.log.WithError(err).WithField("id", id).Errorf("%s user failed", op)
		return nil, fmt.Errorf("mongo %s user: %w", op, err)
	}
	return &u, nil
}

// Delete hard-deletes a user. Deleting an id that matches nothing returns
// ErrNotFound, never an error from the driver.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		s.log.WithError(err).WithField("id", id).Error("delete user failed")
		return fmt.Errorf("mongo delete user: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func sortDirection(sort string) int {
	if sort == "desc" {
		return -1
	}
	return 1
}

func totalPages(total int64, limit int) int {
	return int((total + int64(limit) - 1) / int64(limit))
}

// patchDocument keeps only the fields present in the request body.
func patchDocument(p models.UserPatch) bson.M {
	set := bson.M{}
	if p.Name != nil {
		set["name"] = p.Name
	}
	if p.Email != nil {
		set["email"] = p.Email
	}
	if p.Password != nil {
		set["password"] = p.Password
	}
	return set
}

// replaceDocument covers every mutable field; nil pointers become bson nulls,
// so omitted fields are overwritten rather than left at their old values.
func replaceDocument(p models.UserPatch) bson.M {
	return bson.M{
		"name":     p.Name,
		"email":    p.Email,
		"password": p.Password,
	}
}
