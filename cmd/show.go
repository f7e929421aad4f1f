package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lepinkainen/marquee/internal/config"
	"github.com/lepinkainen/marquee/internal/detail"
	"github.com/lepinkainen/marquee/internal/fileutil"
	"github.com/lepinkainen/marquee/internal/media"
	"github.com/lepinkainen/marquee/internal/subview"
	"gopkg.in/yaml.v3"
)

var stdout io.Writer = os.Stdout

// pageDump is the structured form of a rendered page.
type pageDump struct {
	Path          string       `json:"path" yaml:"path"`
	Kind          string       `json:"kind" yaml:"kind"`
	ID            string       `json:"id" yaml:"id"`
	Record        media.Record `json:"record,omitempty" yaml:"record,omitempty"`
	TrailerKey    string       `json:"trailer_key,omitempty" yaml:"trailer_key,omitempty"`
	Error         string       `json:"error,omitempty" yaml:"error,omitempty"`
	Subview       string       `json:"subview,omitempty" yaml:"subview,omitempty"`
	SubviewStatus string       `json:"subview_status,omitempty" yaml:"subview_status,omitempty"`
}

// Run renders one page the same way the server does.
func (s *ShowCmd) Run(ctx context.Context) error {
	if err := requireAPIKey(); err != nil {
		return err
	}

	params, rest, err := detail.ParamsFromPath(s.Path)
	if err != nil {
		return err
	}

	client := newCatalog()
	pending, err := newRegistry(client).Start(ctx, subview.Name(rest), params.ID, params.Kind)
	if err != nil {
		return err
	}

	view := detail.NewView(client, detail.WithStaleGuard(config.GuardStale))
	defer view.Close()

	page := detail.Page{
		State:  view.Load(ctx, params),
		Params: params,
		Region: pending.Await(ctx),
	}

	var buf bytes.Buffer
	switch s.Format {
	case "yaml":
		err = yaml.NewEncoder(&buf).Encode(dump(s.Path, page))
	case "json":
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(dump(s.Path, page))
	default:
		err = detail.NewRenderer(client).Render(&buf, page)
	}
	if err != nil {
		return fmt.Errorf("render %s as %s: %w", s.Path, s.Format, err)
	}

	if s.Output == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	written, err := fileutil.WriteFileWithOverwrite(s.Output, buf.Bytes(), 0o644, s.Overwrite)
	if err != nil {
		return fmt.Errorf("write %s: %w", s.Output, err)
	}
	if !written {
		slog.Info("Output file already exists, skipping", "filename", s.Output, "overwrite", s.Overwrite)
	}
	return nil
}

func dump(path string, page detail.Page) pageDump {
	d := pageDump{
		Path:   path,
		Kind:   page.Params.Kind.String(),
		ID:     page.Params.ID,
		Record: page.State.Record,
	}
	if page.State.HasTrailer {
		d.TrailerKey = page.State.TrailerKey
	}
	if page.State.LastError != nil {
		d.Error = page.State.LastError.Error()
	}
	if page.Region.Name != "" {
		d.Subview = string(page.Region.Name)
		d.SubviewStatus = page.Region.Status.String()
	}
	return d
}
