package models

// OmdbResponse represents the response from the OMDB API
type OmdbResponse struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
	Title    string `json:"Title"`
	Year     string `json:"Year"`
	Plot     string `json:"Plot"`
	Director string `json:"Director"`
	Actors   string `json:"Actors"`
}

// MovieLookupResult is the prefill payload returned by the lookup
// endpoint: the required add-movie fields plus a description and cast
// the user may keep or discard.
type MovieLookupResult struct {
	Title       string   `json:"title"`
	Director    string   `json:"director"`
	Year        int      `json:"year"`
	Description string   `json:"description,omitempty"`
	Cast        []string `json:"cast,omitempty"`
}
