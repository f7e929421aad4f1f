package media

import "strings"

// Genre is a catalog genre entry.
type Genre struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Common holds the fields every catalog entry carries.
type Common struct {
	ID            int     `json:"id" yaml:"id"`
	Title         string  `json:"title" yaml:"title"`
	OriginalTitle string  `json:"original_title" yaml:"original_title"`
	Genres        []Genre `json:"genres" yaml:"genres"`
	Overview      string  `json:"overview" yaml:"overview"`
	PosterPath    string  `json:"poster_path,omitempty" yaml:"poster_path,omitempty"`
	VoteAverage   float64 `json:"vote_average" yaml:"vote_average"`
	VoteCount     int     `json:"vote_count" yaml:"vote_count"`
}

// Record is the metadata for one movie or show. The concrete type is
// either *MovieRecord or *ShowRecord.
type Record interface {
	Kind() Kind
	Base() *Common
	// ReleaseDate is the release date for movies, first air date for shows.
	ReleaseDate() string
	isRecord()
}

// MovieRecord is the movie variant of Record.
type MovieRecord struct {
	Common   `yaml:",inline"`
	Released string `json:"release_date" yaml:"release_date"`
	Runtime  int    `json:"runtime" yaml:"runtime"`
}

// ShowRecord is the show variant of Record.
type ShowRecord struct {
	Common           `yaml:",inline"`
	FirstAirDate     string `json:"first_air_date" yaml:"first_air_date"`
	NumberOfSeasons  int    `json:"number_of_seasons" yaml:"number_of_seasons"`
	NumberOfEpisodes int    `json:"number_of_episodes" yaml:"number_of_episodes"`
	EpisodeRunTime   []int  `json:"episode_run_time" yaml:"episode_run_time"`
}

// Kind implements Record.
func (*MovieRecord) Kind() Kind { return Movie }

// Base implements Record.
func (m *MovieRecord) Base() *Common { return &m.Common }

// ReleaseDate implements Record.
func (m *MovieRecord) ReleaseDate() string { return m.Released }

func (*MovieRecord) isRecord() {}

// Kind implements Record.
func (*ShowRecord) Kind() Kind { return Show }

// Base implements Record.
func (s *ShowRecord) Base() *Common { return &s.Common }

// ReleaseDate implements Record.
func (s *ShowRecord) ReleaseDate() string { return s.FirstAirDate }

func (*ShowRecord) isRecord() {}

// GenreNames joins the genre names of rec with ", ".
func GenreNames(rec Record) string {
	genres := rec.Base().Genres
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// RuntimeMinutes returns the single runtime figure shown for rec: the first
// episode runtime for shows, the feature runtime for movies. Only a show
// without episode runtimes has none.
func RuntimeMinutes(rec Record) (int, bool) {
	switch r := rec.(type) {
	case *MovieRecord:
		return r.Runtime, true
	case *ShowRecord:
		if len(r.EpisodeRunTime) == 0 {
			return 0, false
		}
		return r.EpisodeRunTime[0], true
	default:
		return 0, false
	}
}
