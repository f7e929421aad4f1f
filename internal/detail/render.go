package detail

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/subview"
)

const defaultEmbedBaseURL = "https://www.youtube.com/embed/"

//go:embed templates/detail.html
var detailTemplate string

// ImageResolver turns a catalog poster path into an absolute URL.
type ImageResolver interface {
	PosterURL(posterPath string) string
}

// Renderer writes a detail page as HTML.
type Renderer struct {
	tpl          *template.Template
	images       ImageResolver
	embedBaseURL string
	noImage      string
	noVideo      string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithEmbedBaseURL sets the URL prefix the trailer key is appended to.
func WithEmbedBaseURL(base string) RendererOption {
	return func(r *Renderer) {
		if base != "" {
			r.embedBaseURL = base
		}
	}
}

// WithPlaceholders sets the images shown for a missing poster and a
// missing trailer.
func WithPlaceholders(noImage, noVideo string) RendererOption {
	return func(r *Renderer) {
		if noImage != "" {
			r.noImage = noImage
		}
		if noVideo != "" {
			r.noVideo = noVideo
		}
	}
}

// NewRenderer parses the page template.
func NewRenderer(images ImageResolver, opts ...RendererOption) *Renderer {
	r := &Renderer{
		tpl:          template.Must(template.New("detail").Parse(detailTemplate)),
		images:       images,
		embedBaseURL: defaultEmbedBaseURL,
		noImage:      "/static/no_image.svg",
		noVideo:      "/static/no_video.svg",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Page is everything a single render needs.
type Page struct {
	State  State
	Params Params
	Region subview.Region
}

type cardData struct {
	Title           string
	OriginalTitle   string
	Genres          string
	ReleaseDate     string
	IsShow          bool
	SeasonsEpisodes string
	RuntimeLabel    string
	Runtime         string
	Rating          string
	Votes           int
	Overview        string
	PosterURL       string
	TrailerURL      string
	TrailerKey      string
	NoVideoURL      string
	CastURL         string
	ReviewsURL      string
	Active          subview.Name
}

type pageData struct {
	Card   *cardData
	Region subview.Region
	Error  string
}

// Render writes page to w. A page without a record renders no card at all;
// an error line is added whenever the state carries one.
func (r *Renderer) Render(w io.Writer, page Page) error {
	data := pageData{Region: page.Region}
	if page.State.Record != nil {
		data.Card = r.card(page)
	}
	if page.State.LastError != nil {
		data.Error = ErrorMessage(page.State.LastError)
	}
	return r.tpl.Execute(w, data)
}

func (r *Renderer) card(page Page) *cardData {
	rec := page.State.Record
	base := rec.Base()

	card := &cardData{
		Title:         base.Title,
		OriginalTitle: base.OriginalTitle,
		Genres:        media.GenreNames(rec),
		ReleaseDate:   rec.ReleaseDate(),
		RuntimeLabel:  "Runtime:",
		Runtime:       FormatRuntime(rec),
		Rating:        strconv.FormatFloat(base.VoteAverage, 'f', -1, 64),
		Votes:         base.VoteCount,
		Overview:      base.Overview,
		PosterURL:     r.noImage,
		NoVideoURL:    r.noVideo,
		CastURL:       page.Params.BasePath + "/" + string(subview.Cast),
		ReviewsURL:    page.Params.BasePath + "/" + string(subview.Reviews),
		Active:        page.Region.Name,
	}

	if show, ok := rec.(*media.ShowRecord); ok {
		card.IsShow = true
		card.SeasonsEpisodes = SeasonsEpisodes(show)
		card.RuntimeLabel = "Episode runtime:"
	}
	if r.images != nil {
		if url := r.images.PosterURL(base.PosterPath); url != "" {
			card.PosterURL = url
		}
	}
	if page.State.HasTrailer {
		card.TrailerKey = page.State.TrailerKey
		card.TrailerURL = r.embedBaseURL + page.State.TrailerKey
	}
	return card
}

// FormatRuntime renders the single runtime figure of rec as "N minutes".
func FormatRuntime(rec media.Record) string {
	minutes, ok := media.RuntimeMinutes(rec)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%d minutes", minutes)
}

// SeasonsEpisodes renders the "seasons/episodes" line for a show.
func SeasonsEpisodes(show *media.ShowRecord) string {
	return fmt.Sprintf("%d/%d", show.NumberOfSeasons, show.NumberOfEpisodes)
}

// ErrorMessage is the user-facing line for a failed request.
func ErrorMessage(err error) string {
	return "Woops. Something went wrong - " + err.Error()
}
