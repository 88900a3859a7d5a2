package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/narbehner/Movie-Watchlist/models"
)

// WatchlistService owns the movie collection mutations and the
// user-to-movie association rules.
type WatchlistService struct {
	movieRepo MovieStore
	userRepo  UserStore
	lookup    MovieLookup
	log       logrus.FieldLogger
}

func NewWatchlistService(movieRepo MovieStore, userRepo UserStore, lookup MovieLookup, log logrus.FieldLogger) *WatchlistService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &WatchlistService{
		movieRepo: movieRepo,
		userRepo:  userRepo,
		lookup:    lookup,
		log:       log,
	}
}

// ListMovies returns the movies on the given user's watchlist, title
// order. Watchlist entries with no matching movie document are skipped
// and logged rather than failing the whole listing.
func (s *WatchlistService) ListMovies(ctx context.Context, userID string) ([]models.Movie, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	movies, err := s.movieRepo.FindByIDs(ctx, user.Movies)
	if err != nil {
		return nil, fmt.Errorf("loading watchlist movies: %w", err)
	}

	if missing := len(user.Movies) - len(movies); missing > 0 {
		s.log.WithFields(logrus.Fields{
			"user_id": userID,
			"missing": missing,
		}).Warn("watchlist references movies that no longer exist")
	}

	return movies, nil
}

// AddMovie validates the required fields, persists the movie, then
// appends its id to the user's watchlist. The two writes are not
// atomic: a failure between them leaves a movie document no watchlist
// references, which is logged for cleanup rather than rolled back.
func (s *WatchlistService) AddMovie(ctx context.Context, userID string, req *models.AddMovieRequest) (*models.Movie, error) {
	if errs := ValidateNewMovie(req.Title, req.Director, req.Year); len(errs) > 0 {
		return nil, errs
	}

	movie := models.NewMovie(NewEntityID(), req.Title, req.Director, req.Year)
	if err := s.movieRepo.InsertMovie(ctx, movie); err != nil {
		return nil, fmt.Errorf("inserting movie: %w", err)
	}

	if err := s.userRepo.AppendMovie(ctx, userID, movie.ID); err != nil {
		s.log.WithFields(logrus.Fields{
			"user_id":  userID,
			"movie_id": movie.ID,
		}).WithError(err).Error("movie inserted but not attached to user watchlist")
		return nil, fmt.Errorf("attaching movie %s to watchlist: %w", movie.ID, err)
	}

	return movie, nil
}

// GetMovie fetches one movie and gates it on watchlist membership: a
// user can only view movies their own list references.
func (s *WatchlistService) GetMovie(ctx context.Context, userID, movieID string) (*models.Movie, error) {
	if err := s.checkOwnership(ctx, userID, movieID); err != nil {
		return nil, err
	}

	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("loading movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// RateMovie overwrites the rating. Rating twice with the same value is
// a no-op on the stored state.
func (s *WatchlistService) RateMovie(ctx context.Context, userID, movieID string, rating int) error {
	if errs := ValidateRating(rating); len(errs) > 0 {
		return errs
	}
	if err := s.checkOwnership(ctx, userID, movieID); err != nil {
		return err
	}
	if err := s.movieRepo.SetRating(ctx, movieID, rating); err != nil {
		return fmt.Errorf("setting rating: %w", err)
	}
	return nil
}

// WatchToday stamps the movie as watched now.
func (s *WatchlistService) WatchToday(ctx context.Context, userID, movieID string) error {
	if err := s.checkOwnership(ctx, userID, movieID); err != nil {
		return err
	}
	if err := s.movieRepo.SetLastWatched(ctx, movieID, time.Now()); err != nil {
		return fmt.Errorf("setting last watched: %w", err)
	}
	return nil
}

// EditDetails merge-overwrites the extended metadata fields that were
// provided, leaving title, director and year untouched.
func (s *WatchlistService) EditDetails(ctx context.Context, userID, movieID string, update models.MovieDetailsUpdate) error {
	if err := s.checkOwnership(ctx, userID, movieID); err != nil {
		return err
	}

	movie, err := s.movieRepo.FindByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("loading movie: %w", err)
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	if update.IsEmpty() {
		return nil
	}
	if err := s.movieRepo.UpdateDetails(ctx, movieID, update); err != nil {
		return fmt.Errorf("updating movie details: %w", err)
	}
	return nil
}

// LookupMovie asks the external metadata source for prefill data.
func (s *WatchlistService) LookupMovie(ctx context.Context, title string) (*models.MovieLookupResult, error) {
	if s.lookup == nil || !s.lookup.Enabled() {
		return nil, fmt.Errorf("movie lookup is not configured")
	}
	return s.lookup.FetchMovie(ctx, title)
}

// checkOwnership enforces the access rule: a movie is visible to a
// user only while its id appears in that user's watchlist. A movie the
// list does not reference is reported as not found, not as forbidden,
// so ids cannot be probed across users.
func (s *WatchlistService) checkOwnership(ctx context.Context, userID, movieID string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("loading user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	for _, id := range user.Movies {
		if id == movieID {
			return nil
		}
	}
	return ErrMovieNotFound
}
