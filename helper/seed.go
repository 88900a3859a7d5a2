package helper

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/narbehner/Movie-Watchlist/models"
	"github.com/narbehner/Movie-Watchlist/services"
)

// LoadSeedMovies reads a CSV with Title, Director and Year columns and
// returns one movie per row. Rows that fail the domain validation are
// reported back so the caller can log and skip them.
func LoadSeedMovies(path string) ([]*models.Movie, []error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, nil, err
	}

	titleIdx, directorIdx, yearIdx := -1, -1, -1
	for i, column := range header {
		switch column {
		case "Title":
			titleIdx = i
		case "Director":
			directorIdx = i
		case "Year":
			yearIdx = i
		}
	}
	if titleIdx == -1 || directorIdx == -1 || yearIdx == -1 {
		return nil, nil, errors.New("seed CSV must have Title, Director and Year columns")
	}

	var movies []*models.Movie
	var skipped []error
	line := 1

	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, nil, err
		}
		line++

		year, err := strconv.Atoi(row[yearIdx])
		if err != nil {
			skipped = append(skipped, fmt.Errorf("line %d: bad year %q", line, row[yearIdx]))
			continue
		}

		title, director := row[titleIdx], row[directorIdx]
		if errs := services.ValidateNewMovie(title, director, year); len(errs) > 0 {
			skipped = append(skipped, fmt.Errorf("line %d: %w", line, errs))
			continue
		}

		movies = append(movies, models.NewMovie(services.NewEntityID(), title, director, year))
	}

	return movies, skipped, nil
}
