package web

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/healthtech/healthtech/pkg/types"
	"github.com/healthtech/healthtech/pkg/vitals"
	"github.com/healthtech/healthtech/server/internal/api"
	"github.com/healthtech/healthtech/server/internal/store"
)

//go:embed templates/page.html
var templates embed.FS

var pageTmpl = template.Must(template.ParseFS(templates, "templates/page.html"))

// maxFormBytes caps the size of a submitted form.
const maxFormBytes = 1 << 16

// Handler serves the form page.
type Handler struct {
	title  string
	submit *api.Submitter
	log    *store.Log
}

type result struct {
	Lines []string
	Final string
	Chart chartView
}

type page struct {
	Title       string
	Genders     []string
	Form        map[string]string
	Errors      map[string]string
	Result      *result
	Columns     []string
	Rows        [][]string
	Daily       []types.DailyCount
	RecordCount int
}

// New creates the form handler.
func New(title string, sub *api.Submitter, log *store.Log) *Handler {
	return &Handler{title: title, submit: sub, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.render(w, http.StatusOK, h.page(formValues(nil), nil, nil))
	case http.MethodPost:
		h.post(w, r)
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form: "+err.Error(), http.StatusBadRequest)
		return
	}
	values := formValues(r.PostForm)

	reading, errs := parseForm(r.PostForm)
	if len(errs) > 0 {
		h.render(w, http.StatusUnprocessableEntity, h.page(values, errs, nil))
		return
	}

	resp, err := h.submit.Submit(reading)
	if err != nil {
		var verr *vitals.ValidationError
		if errors.As(err, &verr) {
			h.render(w, http.StatusUnprocessableEntity, h.page(values, verr.Fields, nil))
			return
		}
		slog.Error("web: submit failed", "err", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	res := &result{
		Lines: resp.Insights[:len(resp.Insights)-1],
		Final: vitals.FinalLine(resp.Assessment),
		Chart: layoutChart(resp.Chart),
	}
	h.render(w, http.StatusOK, h.page(values, nil, res))
}

// page assembles the view; records and daily counts are read from the log
// on every render.
func (h *Handler) page(form, errs map[string]string, res *result) page {
	records := h.log.All()
	rows := make([][]string, len(records))
	for i, rec := range records {
		rows[i] = rec.Cells()
	}
	return page{
		Title:       h.title,
		Genders:     types.Genders,
		Form:        form,
		Errors:      errs,
		Result:      res,
		Columns:     types.RecordColumns,
		Rows:        rows,
		Daily:       h.log.DailyCounts(),
		RecordCount: len(records),
	}
}

func (h *Handler) render(w http.ResponseWriter, code int, p page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := pageTmpl.Execute(w, p); err != nil {
		slog.Error("web: render page failed", "err", err)
	}
}
