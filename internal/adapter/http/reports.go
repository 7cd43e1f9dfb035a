package httpadapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"campaign-analytics/internal/adapter/render"
	"campaign-analytics/internal/core/engine"
	"campaign-analytics/internal/core/port"
)

// Output formats accepted by the format query parameter.
const (
	formatJSON = "json"
	formatText = "text"
	formatCSV  = "csv"
)

// maxQueryBody bounds the size of an ad-hoc spec.
const maxQueryBody = 1 << 20

var textLanguages = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
})

// handleListReports returns the catalog specs in presentation order.
func (h *Handler) handleListReports(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Reports())
}

// handleReport runs the catalog report bound to {name}. It accepts
// optional `limit` (non-negative integer), `include_undefined` (bool) and
// `format` (json, text or csv) query parameters. Invalid parameters
// result in HTTP 400.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	var (
		q    = r.URL.Query()
		name = chi.URLParam(r, "name")
		o    port.Overrides
	)

	if s := q.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.badRequest(w, "invalid 'limit'")
			return
		}
		o.Limit = &n
	}
	if s := q.Get("include_undefined"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			h.badRequest(w, "invalid 'include_undefined'")
			return
		}
		o.IncludeUndefined = &b
	}
	format, err := parseFormat(q.Get("format"))
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	res, err := h.svc.Run(r.Context(), name, o)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResult(w, r, format, res)
}

// handleQuery runs an ad-hoc spec decoded from the JSON body. Unknown
// fields are rejected so that typos do not silently change a report.
func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	format, err := parseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.badRequest(w, err.Error())
		return
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxQueryBody))
	dec.DisallowUnknownFields()
	var spec engine.Spec
	if err = dec.Decode(&spec); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if spec.Name == "" {
		spec.Name = "query"
	}

	res, err := h.svc.Query(r.Context(), spec)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeResult(w, r, format, res)
}

func parseFormat(s string) (string, error) {
	switch s {
	case "", formatJSON:
		return formatJSON, nil
	case formatText, formatCSV:
		return s, nil
	default:
		return "", fmt.Errorf("invalid 'format' %q", s)
	}
}

func (h *Handler) writeResult(w http.ResponseWriter, r *http.Request, format string, res *engine.Result) {
	var err error
	switch format {
	case formatText:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		err = render.Table(w, res, textLanguage(r))
	case formatCSV:
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Report+".csv"))
		err = render.CSV(w, res)
	default:
		h.writeJSON(w, http.StatusOK, res)
		return
	}
	if err != nil {
		h.logger.Error("render response error", slog.String("report", res.Report), slog.Any("error", err))
	}
}

// textLanguage picks the number formatting locale from the lang query
// parameter or the Accept-Language header.
func textLanguage(r *http.Request) language.Tag {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		tag, _ := language.MatchStrings(textLanguages, lang)
		return tag
	}
	tag, _ := language.MatchStrings(textLanguages, r.Header.Get("Accept-Language"))
	return tag
}
