// Package web serves the dashboard page: one route that filters the unified
// table per request and embeds the rendered chart plus the selectable
// athlete and metric lists.
package web

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/chart"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/config"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/dataset"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/httpx"
	"github.com/Sanddmann/PLNU-MBA-Performance-Dashboard/pkg/metrics"
)

//go:embed index.html
var pageFS embed.FS

const dateLayout = "2006-01-02"

// Handler answers dashboard requests against the immutable unified table.
// No locking: nothing mutates the table after startup.
type Handler struct {
	table    *dataset.Table
	cfg      *config.Config
	tmpl     *template.Template
	started  time.Time
	defaults Params
}

// Params are the resolved request parameters for one chart.
type Params struct {
	Athlete string
	Metric1 string
	Metric2 string
	Start   time.Time
	End     time.Time
}

// NewHandler builds the handler and resolves the startup defaults: first
// athlete in table order, the two configured metric names, and the table's
// full date span.
func NewHandler(table *dataset.Table, cfg *config.Config) (*Handler, error) {
	tmpl, err := template.ParseFS(pageFS, "index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	subjects := table.Subjects()
	if len(subjects) == 0 {
		return nil, errors.New("unified table has no subjects")
	}
	start, end := table.Span()

	return &Handler{
		table:   table,
		cfg:     cfg,
		tmpl:    tmpl,
		started: time.Now(),
		defaults: Params{
			Athlete: subjects[0],
			Metric1: cfg.Metric1,
			Metric2: cfg.Metric2,
			Start:   start,
			End:     end,
		},
	}, nil
}

// resolve substitutes a default for every absent form field. Unparseable
// request dates fall back to the table's full span so a malformed input
// widens the range instead of failing the request.
func (h *Handler) resolve(r *http.Request) Params {
	p := h.defaults

	if v := r.FormValue("athlete"); v != "" {
		p.Athlete = v
	}
	if v := r.FormValue("var1"); v != "" {
		p.Metric1 = v
	}
	if v := r.FormValue("var2"); v != "" {
		p.Metric2 = v
	}
	if v := r.FormValue("start_date"); v != "" {
		if t := dataset.ParseDate(v); !t.IsZero() {
			p.Start = t
		}
	}
	if v := r.FormValue("end_date"); v != "" {
		if t := dataset.ParseDate(v); !t.IsZero() {
			p.End = t
		}
	}
	return p
}

// pageData feeds the dashboard template.
type pageData struct {
	PlotHTML  template.HTML
	Athletes  []string
	Variables []string
	Selected  Params
	StartDate string
	EndDate   string
}

// HandleIndex serves the dashboard for GET (defaults) and POST (form
// overrides). A missing metric column is a request failure, never a crash.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.RespondError(w, http.StatusBadRequest, fmt.Errorf("parse form: %w", err))
		return
	}

	params := h.resolve(r)
	log.Printf("🔄 Dashboard request: athlete=%q vars=%q/%q range=%s..%s",
		params.Athlete, params.Metric1, params.Metric2,
		params.Start.Format(dateLayout), params.End.Format(dateLayout))

	view := h.table.Filter(params.Athlete, params.Start, params.End)
	markup, err := chart.Render(view, params.Metric1, params.Metric2)
	if err != nil {
		metrics.RecordRenderError()
		status := http.StatusInternalServerError
		if errors.Is(err, dataset.ErrColumnNotFound) {
			status = http.StatusBadRequest
		}
		httpx.RespondError(w, status, err)
		return
	}

	data := pageData{
		PlotHTML:  template.HTML(markup),
		Athletes:  h.table.Subjects(),
		Variables: h.table.Columns,
		Selected:  params,
		StartDate: params.Start.Format(dateLayout),
		EndDate:   params.End.Format(dateLayout),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Execute(w, data); err != nil {
		log.Printf("❌ Failed to render page: %v", err)
	}
}

// HandleHealth reports service status and dataset shape.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httpx.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"uptime": time.Since(h.started).String(),
		"rows":   len(h.table.Rows),
	})
}
