package ui

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"solvestats/domain/core"
	"solvestats/internal/errors"
)

// pageTemplate is the single-page view: the SVG chart plus the rendered
// markdown report.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2rem auto; }
.report { color: #333; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{.Chart}}
<div class="report">{{.Report}}</div>
</body>
</html>`

type pageData struct {
	Title  string
	Chart  template.HTML
	Report template.HTML
}

func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.analyze()
	if err != nil {
		a.renderError(w, err)
		return
	}

	data := pageData{
		Title:  a.cfg.Chart.Title,
		Chart:  template.HTML(renderSVG(analysis.PlotData(), analysis.Curve, a.cfg.Chart.NormalCurve)),
		Report: template.HTML(renderReport(analysis)),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "page", data); err != nil {
		log.Printf("[UI] Template render failed: %v", err)
	}
}

func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.analyze()
	if err != nil {
		a.renderJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

func (a *App) handleHistogram(w http.ResponseWriter, r *http.Request) {
	analysis, err := a.analyze()
	if err != nil {
		a.renderJSONError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analysis.PlotData())
}

func (a *App) renderError(w http.ResponseWriter, err error) {
	log.Printf("[UI] Request failed: %v", err)
	http.Error(w, err.Error(), statusFor(err))
}

func (a *App) renderJSONError(w http.ResponseWriter, err error) {
	log.Printf("[UI] Request failed: %v", err)
	writeJSON(w, statusFor(err), map[string]string{
		"error": err.Error(),
		"code":  codeFor(err),
	})
}

// codeFor maps domain sentinels onto stable API error codes; structured
// application errors already carry their own.
func codeFor(err error) string {
	switch {
	case core.IsSourceReadError(err):
		return errors.CodeSourceRead
	case core.IsMalformedTimeError(err):
		return errors.CodeParseError
	case core.IsNoValidSolvesError(err):
		return errors.CodeNoValidSolves
	default:
		return errors.GetCode(err)
	}
}

// statusFor maps domain errors onto HTTP statuses. A missing or unreadable
// export and an all-DNF session are both client-fixable conditions.
func statusFor(err error) int {
	switch {
	case core.IsSourceReadError(err):
		return http.StatusNotFound
	case core.IsMalformedTimeError(err), core.IsNoValidSolvesError(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[UI] JSON encode failed: %v", err)
	}
}
