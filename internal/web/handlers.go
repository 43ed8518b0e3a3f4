package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ligabolo/torneos/internal/importer"
	"github.com/ligabolo/torneos/internal/logging"
)

// ImportService is the import pipeline consumed by the handlers.
type ImportService interface {
	ImportResults(ctx context.Context, file io.Reader, uploaderID int64, validateOnly bool) (*importer.Report, error)
}

// templateHeader is the mandatory header row of the import file, in column
// order.
const templateHeader = "documento,torneo,categoria,modalidad,rama,equipo,ronda,carril,linea,puntaje"

// handleImport accepts a multipart upload ("file" field) and runs one import
// call. The query parameter validate=1 requests a dry run. Row-level
// failures are a normal response: the report is always returned with status
// 200; only storage failures produce a 5xx.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Import.MaxFileSize)

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "se requiere el campo de archivo \"file\"")
		return
	}
	defer file.Close()

	validateOnly := false
	switch strings.ToLower(r.URL.Query().Get("validate")) {
	case "1", "true", "yes":
		validateOnly = true
	}

	uploaderID, _ := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)

	report, err := s.importer.ImportResults(r.Context(), file, uploaderID, validateOnly)
	if err != nil {
		logging.FromContext(r.Context()).Error("importación fallida", "error", err)
		writeError(w, r, http.StatusInternalServerError, "error interno al procesar la importación")
		return
	}

	writeJSON(w, r, http.StatusOK, report)
}

// handleTemplate serves a CSV template with the expected header row.
func (s *Server) handleTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="resultados.csv"`)
	io.WriteString(w, templateHeader+"\n")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.pinger.Ping(r.Context()); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "base de datos no disponible")
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON encodes v as JSON with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).Error("json encode error", "error", err)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, map[string]string{"error": message})
}
