package tmdb

import "github.com/lepinkainen/marquee/internal/media"

// detailsResponse is the union of the movie and tv detail payloads. Which
// fields are filled depends on the endpoint.
type detailsResponse struct {
	ID               int           `json:"id"`
	Title            string        `json:"title"`
	Name             string        `json:"name"`
	OriginalTitle    string        `json:"original_title"`
	OriginalName     string        `json:"original_name"`
	Genres           []media.Genre `json:"genres"`
	Overview         string        `json:"overview"`
	PosterPath       string        `json:"poster_path"`
	VoteAverage      float64       `json:"vote_average"`
	VoteCount        int           `json:"vote_count"`
	ReleaseDate      string        `json:"release_date"`
	FirstAirDate     string        `json:"first_air_date"`
	Runtime          int           `json:"runtime"`
	EpisodeRunTime   []int         `json:"episode_run_time"`
	NumberOfSeasons  int           `json:"number_of_seasons"`
	NumberOfEpisodes int           `json:"number_of_episodes"`
}

type videosResponse struct {
	ID      int                    `json:"id"`
	Results []media.VideoCandidate `json:"results"`
}

// CastMember is one entry of a credits cast list.
type CastMember struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Character   string `json:"character" yaml:"character"`
	ProfilePath string `json:"profile_path,omitempty" yaml:"profile_path,omitempty"`
	Order       int    `json:"order" yaml:"order"`
}

type creditsResponse struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
}

// Review is a user review of a movie or show.
type Review struct {
	ID        string `json:"id" yaml:"id"`
	Author    string `json:"author" yaml:"author"`
	Content   string `json:"content" yaml:"content"`
	URL       string `json:"url" yaml:"url"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

type reviewsResponse struct {
	ID           int      `json:"id"`
	Page         int      `json:"page"`
	Results      []Review `json:"results"`
	TotalResults int      `json:"total_results"`
}

// firstNonEmpty returns primary unless it is empty.
func firstNonEmpty(primary, alternate string) string {
	if primary != "" {
		return primary
	}
	return alternate
}

// record converts the wire payload into the variant for kind. Title, original
// title and date fall back to their alternate field, whichever the API filled.
func (d *detailsResponse) record(kind media.Kind) media.Record {
	common := media.Common{
		ID:            d.ID,
		Title:         firstNonEmpty(d.Title, d.Name),
		OriginalTitle: firstNonEmpty(d.OriginalTitle, d.OriginalName),
		Genres:        d.Genres,
		Overview:      d.Overview,
		PosterPath:    d.PosterPath,
		VoteAverage:   d.VoteAverage,
		VoteCount:     d.VoteCount,
	}

	if kind == media.Show {
		return &media.ShowRecord{
			Common:           common,
			FirstAirDate:     firstNonEmpty(d.FirstAirDate, d.ReleaseDate),
			NumberOfSeasons:  d.NumberOfSeasons,
			NumberOfEpisodes: d.NumberOfEpisodes,
			EpisodeRunTime:   d.EpisodeRunTime,
		}
	}
	return &media.MovieRecord{
		Common:   common,
		Released: firstNonEmpty(d.ReleaseDate, d.FirstAirDate),
		Runtime:  d.Runtime,
	}
}
