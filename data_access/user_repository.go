package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/narbehner/Movie-Watchlist/models"
)

type UserRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewUserRepository(db *MongoDB) *UserRepository {
	return &UserRepository{
		db:         db,
		collection: db.Collection("users"),
	}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// FindByEmail returns (nil, nil) when no user has the given email, so
// callers can distinguish "absent" from a store failure.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AppendMovie pushes a movie id onto the user's watchlist. The push is
// a single-document update and relies on the store's per-document
// atomicity only.
func (r *UserRepository) AppendMovie(ctx context.Context, userID, movieID string) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"movies": movieID}},
	)
	return err
}

func (r *UserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"last_login": at}},
	)
	return err
}
