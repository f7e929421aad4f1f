package subview

import (
	"bytes"
	"context"
	"html/template"
	"strings"

	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/tmdb"
)

// CastSource is the catalog surface the cast loader needs.
type CastSource interface {
	Credits(ctx context.Context, id string, kind media.Kind) ([]tmdb.CastMember, error)
	ProfileURL(profilePath string) string
}

// ReviewSource is the catalog surface the reviews loader needs.
type ReviewSource interface {
	Reviews(ctx context.Context, id string, kind media.Kind) ([]tmdb.Review, error)
}

var castTemplate = template.Must(template.New("cast").Parse(`<ul class="cast">
{{- range . }}
  <li class="cast-member">
    {{- if .Photo }}<img src="{{ .Photo }}" alt="{{ .Name }}">{{ else }}<img src="/static/no_image.svg" alt="no photo">{{ end }}
    <p class="cast-name">{{ .Name }}</p>
    {{- if .Character }}<p class="cast-character">Character: {{ .Character }}</p>{{ end }}
  </li>
{{- else }}
  <li class="empty">We don't have any cast information for this title.</li>
{{- end }}
</ul>`))

var reviewsTemplate = template.Must(template.New("reviews").Parse(`<ul class="reviews">
{{- range . }}
  <li class="review">
    <h3 class="review-author">Author: {{ .Author }}</h3>
    {{- range .Paragraphs }}
    <p>{{ . }}</p>
    {{- end }}
  </li>
{{- else }}
  <li class="empty">We don't have any reviews for this title.</li>
{{- end }}
</ul>`))

type castEntry struct {
	Name      string
	Character string
	Photo     string
}

type reviewEntry struct {
	Author     string
	Paragraphs []string
}

// CastLoader renders the credited cast of an item.
func CastLoader(src CastSource) Loader {
	return func(ctx context.Context, id string, kind media.Kind) (template.HTML, error) {
		cast, err := src.Credits(ctx, id, kind)
		if err != nil {
			return "", err
		}

		entries := make([]castEntry, 0, len(cast))
		for _, m := range cast {
			entries = append(entries, castEntry{
				Name:      m.Name,
				Character: m.Character,
				Photo:     src.ProfileURL(m.ProfilePath),
			})
		}
		return execute(castTemplate, entries)
	}
}

// ReviewsLoader renders the first page of reviews of an item.
func ReviewsLoader(src ReviewSource) Loader {
	return func(ctx context.Context, id string, kind media.Kind) (template.HTML, error) {
		reviews, err := src.Reviews(ctx, id, kind)
		if err != nil {
			return "", err
		}

		entries := make([]reviewEntry, 0, len(reviews))
		for _, r := range reviews {
			entries = append(entries, reviewEntry{
				Author:     r.Author,
				Paragraphs: paragraphs(r.Content),
			})
		}
		return execute(reviewsTemplate, entries)
	}
}

// paragraphs splits review text on blank lines.
func paragraphs(content string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func execute(tpl *template.Template, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
