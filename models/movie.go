package models

import (
	"time"
)

type Movie struct {
	ID          string     `bson:"_id" json:"id"`
	Title       string     `bson:"title" json:"title"`
	Director    string     `bson:"director" json:"director"`
	Year        int        `bson:"year" json:"year"`
	Cast        []string   `bson:"cast" json:"cast"`
	Series      []string   `bson:"series" json:"series"`
	Tags        []string   `bson:"tags" json:"tags"`
	LastWatched *time.Time `bson:"last_watched,omitempty" json:"last_watched,omitempty"`
	Rating      int        `bson:"rating" json:"rating"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	VideoLink   string     `bson:"video_link,omitempty" json:"video_link,omitempty"`
}

// NewMovie builds a movie with the required fields set and every
// optional field at its documented default: empty slices, zero rating,
// no last-watched timestamp.
func NewMovie(id, title, director string, year int) *Movie {
	return &Movie{
		ID:       id,
		Title:    title,
		Director: director,
		Year:     year,
		Cast:     []string{},
		Series:   []string{},
		Tags:     []string{},
	}
}

// MovieDetailsUpdate carries the optional extended-metadata fields of a
// movie. A nil field means "leave the stored value alone"; a non-nil
// field overwrites it, even with an empty value. Title, director and
// year are never touched through this path.
type MovieDetailsUpdate struct {
	Cast        *[]string `json:"cast"`
	Series      *[]string `json:"series"`
	Tags        *[]string `json:"tags"`
	Description *string   `json:"description"`
	VideoLink   *string   `json:"video_link"`
}

// IsEmpty reports whether no field was provided at all.
func (u *MovieDetailsUpdate) IsEmpty() bool {
	return u.Cast == nil && u.Series == nil && u.Tags == nil &&
		u.Description == nil && u.VideoLink == nil
}
