package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateNewMovieAcceptsBoundaryYears(t *testing.T) {
	for _, year := range []int{EarliestMovieYear, time.Now().Year()} {
		errs := ValidateNewMovie("Title", "Director", year)
		assert.Empty(t, errs, "year %d should be valid", year)
	}
}

func TestValidateNewMovieRequiredBeforeRange(t *testing.T) {
	errs := ValidateNewMovie("  ", "Director", 1700)
	assert.Equal(t, ValidationErrors{
		{Field: "title", Message: "title is required"},
		{Field: "year", Message: "year must be between 1878 and " + time.Now().Format("2006")},
	}, errs)
}

func TestValidateRatingBounds(t *testing.T) {
	assert.Empty(t, ValidateRating(MinRating))
	assert.Empty(t, ValidateRating(MaxRating))
	assert.NotEmpty(t, ValidateRating(MinRating-1))
	assert.NotEmpty(t, ValidateRating(MaxRating+1))
}
