package server

import (
	"bytes"
	stdErrors "errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lepinkainen/marquee/internal/detail"
	"github.com/lepinkainen/marquee/internal/errors"
	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/subview"
)

// handlePage mounts a fresh detail view for the request, loads it together
// with the requested sub-view and renders the result.
func (s *Server) handlePage(kind media.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := chi.URLParam(r, "id")
		if _, err := media.ParseID(id); err != nil {
			http.NotFound(w, r)
			return
		}
		params := detail.NewParams(id, kind)
		name := subview.Name(chi.URLParam(r, "sub"))

		pending, err := s.subviews.Start(ctx, name, params.ID, kind)
		if err != nil {
			http.NotFound(w, r)
			return
		}

		view := detail.NewView(s.catalog,
			detail.WithStaleGuard(s.cfg.GuardStale),
			detail.WithLogger(loggerFrom(ctx, s.logger)),
		)
		defer view.Close()

		state := view.Load(ctx, params)
		region := pending.Await(ctx)

		var buf bytes.Buffer
		if err := s.renderer.Render(&buf, detail.Page{State: state, Params: params, Region: region}); err != nil {
			loggerFrom(ctx, s.logger).Error("Failed to render page", "path", r.URL.Path, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(pageStatus(state))
		_, _ = w.Write(buf.Bytes())
	}
}

// pageStatus is 200 whenever the card rendered. Without a record the
// catalog's own 404 is passed through and anything else is a bad gateway.
func pageStatus(state detail.State) int {
	if state.Record != nil || state.LastError == nil {
		return http.StatusOK
	}
	var reqErr *errors.RequestError
	if stdErrors.As(state.LastError, &reqErr) && reqErr.Status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
