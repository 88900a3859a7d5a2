package services

import (
	"context"
	"time"

	"github.com/narbehner/Movie-Watchlist/models"
)

// UserStore is the slice of the user collection the services need.
// data_access.UserRepository implements it; tests use in-memory fakes.
// Find methods return (nil, nil) for an absent document.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	AppendMovie(ctx context.Context, userID, movieID string) error
	TouchLastLogin(ctx context.Context, userID string, at time.Time) error
}

// MovieStore is the slice of the movie collection the services need.
type MovieStore interface {
	InsertMovie(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id string) (*models.Movie, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error)
	SetRating(ctx context.Context, id string, rating int) error
	SetLastWatched(ctx context.Context, id string, at time.Time) error
	UpdateDetails(ctx context.Context, id string, update models.MovieDetailsUpdate) error
}

// MovieLookup is an optional external metadata source for prefilling
// the add-movie form.
type MovieLookup interface {
	Enabled() bool
	FetchMovie(ctx context.Context, title string) (*models.MovieLookupResult, error)
}
