package services

import (
	"fmt"
	"strings"
	"time"
)

// EarliestMovieYear is the first year a film could plausibly have been
// made (Muybridge's motion studies).
const EarliestMovieYear = 1878

// Rating bounds. The watchlist UI renders five stars; zero means
// unrated.
const (
	MinRating = 0
	MaxRating = 5
)

// ValidateNewMovie checks the required movie fields and returns every
// failure in declared order. A blank year check is pointless for an
// int, so required-ness for year means "non-zero".
func ValidateNewMovie(title, director string, year int) ValidationErrors {
	var errs ValidationErrors
	currentYear := time.Now().Year()

	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(director) == "" {
		errs = append(errs, FieldError{Field: "director", Message: "director is required"})
	}
	if year == 0 {
		errs = append(errs, FieldError{Field: "year", Message: "year is required"})
	} else if year < EarliestMovieYear || year > currentYear {
		errs = append(errs, FieldError{
			Field:   "year",
			Message: fmt.Sprintf("year must be between %d and %d", EarliestMovieYear, currentYear),
		})
	}

	return errs
}

// ValidateRating bounds a rating to the star scale.
func ValidateRating(rating int) ValidationErrors {
	if rating < MinRating || rating > MaxRating {
		return ValidationErrors{{
			Field:   "rating",
			Message: fmt.Sprintf("rating must be between %d and %d", MinRating, MaxRating),
		}}
	}
	return nil
}
