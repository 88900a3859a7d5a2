package data_access

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/narbehner/Movie-Watchlist/models"
)

type MovieRepository struct {
	db         *MongoDB
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{
		db:         db,
		collection: db.Collection("movies"),
	}
}

func (r *MovieRepository) InsertMovie(ctx context.Context, movie *models.Movie) error {
	_, err := r.collection.InsertOne(ctx, movie)
	return err
}

// FindByID returns (nil, nil) when no movie has the given id.
func (r *MovieRepository) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindByIDs fetches every movie whose id is in the given set, sorted by
// title so listings are stable across requests. Ids with no matching
// document are simply absent from the result.
func (r *MovieRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	if len(ids) == 0 {
		return []models.Movie{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	movies := []models.Movie{}
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// ExistsByTitleYear is used by seeding to avoid duplicate inserts.
func (r *MovieRepository) ExistsByTitleYear(ctx context.Context, title string, year int) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"title": title, "year": year})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MovieRepository) SetRating(ctx context.Context, id string, rating int) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"rating": rating}},
	)
	return err
}

func (r *MovieRepository) SetLastWatched(ctx context.Context, id string, at time.Time) error {
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_watched": at}},
	)
	return err
}

// UpdateDetails merge-overwrites only the fields the caller provided.
// Required core fields never appear in the $set document.
func (r *MovieRepository) UpdateDetails(ctx context.Context, id string, update models.MovieDetailsUpdate) error {
	set := bson.M{}
	if update.Cast != nil {
		set["cast"] = *update.Cast
	}
	if update.Series != nil {
		set["series"] = *update.Series
	}
	if update.Tags != nil {
		set["tags"] = *update.Tags
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.VideoLink != nil {
		set["video_link"] = *update.VideoLink
	}
	if len(set) == 0 {
		return nil
	}

	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}
