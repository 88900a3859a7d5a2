package models

// AddMovieRequest carries the three required movie fields. Field-level
// validation (non-empty strings, year range) happens in the service so
// the errors come back in declared order; binding only checks shape.
type AddMovieRequest struct {
	Title    string `json:"title"`
	Director string `json:"director"`
	Year     int    `json:"year"`
}

type RateMovieRequest struct {
	Rating int `json:"rating"`
}

type ListMoviesResponse struct {
	Movies []Movie `json:"movies"`
}
