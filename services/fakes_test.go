package services

import (
	"context"
	"time"

	"github.com/narbehner/Movie-Watchlist/models"
)

// -------- test fakes --------

type fakeUserStore struct {
	users map[string]*models.User

	createErr error
	appendErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) AppendMovie(ctx context.Context, userID, movieID string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	if u, ok := f.users[userID]; ok {
		u.Movies = append(u.Movies, movieID)
	}
	return nil
}

func (f *fakeUserStore) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	if u, ok := f.users[userID]; ok {
		u.LastLogin = at
	}
	return nil
}

type fakeMovieStore struct {
	movies map[string]*models.Movie

	insertErr error
}

func newFakeMovieStore() *fakeMovieStore {
	return &fakeMovieStore{movies: map[string]*models.Movie{}}
}

func (f *fakeMovieStore) InsertMovie(ctx context.Context, movie *models.Movie) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	stored := *movie
	f.movies[movie.ID] = &stored
	return nil
}

func (f *fakeMovieStore) FindByID(ctx context.Context, id string) (*models.Movie, error) {
	m, ok := f.movies[id]
	if !ok {
		return nil, nil
	}
	found := *m
	return &found, nil
}

func (f *fakeMovieStore) FindByIDs(ctx context.Context, ids []string) ([]models.Movie, error) {
	found := []models.Movie{}
	for _, id := range ids {
		if m, ok := f.movies[id]; ok {
			found = append(found, *m)
		}
	}
	return found, nil
}

func (f *fakeMovieStore) SetRating(ctx context.Context, id string, rating int) error {
	if m, ok := f.movies[id]; ok {
		m.Rating = rating
	}
	return nil
}

func (f *fakeMovieStore) SetLastWatched(ctx context.Context, id string, at time.Time) error {
	if m, ok := f.movies[id]; ok {
		m.LastWatched = &at
	}
	return nil
}

func (f *fakeMovieStore) UpdateDetails(ctx context.Context, id string, update models.MovieDetailsUpdate) error {
	m, ok := f.movies[id]
	if !ok {
		return nil
	}
	if update.Cast != nil {
		m.Cast = *update.Cast
	}
	if update.Series != nil {
		m.Series = *update.Series
	}
	if update.Tags != nil {
		m.Tags = *update.Tags
	}
	if update.Description != nil {
		m.Description = *update.Description
	}
	if update.VideoLink != nil {
		m.VideoLink = *update.VideoLink
	}
	return nil
}
