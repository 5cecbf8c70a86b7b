// Package api exposes the identifier pipeline over HTTP: thin JSON
// handlers routed with gorilla/mux, covering document processing,
// verification, comparison, and batch endpoints rather than invoice
// CRUD or client-portal routes.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/facturaIA/docid-service/internal/config"
	"github.com/facturaIA/docid-service/internal/pipeline"
	"github.com/facturaIA/docid-service/internal/universal"
)

const (
	// MaxUploadSize bounds a single multipart upload.
	MaxUploadSize = 20 * 1024 * 1024
	// Version is the service's API version string.
	Version = "1.0.0"
)

// Handler serves the identifier pipeline's HTTP surface.
type Handler struct {
	cfg      *config.Config
	pipeline *pipeline.Pipeline
}

// NewHandler builds a Handler bound to a configured Pipeline.
func NewHandler(cfg *config.Config, p *pipeline.Pipeline) *Handler {
	return &Handler{cfg: cfg, pipeline: p}
}

// SetupRoutes configures and returns the HTTP route table.
func (h *Handler) SetupRoutes() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware)

	router.HandleFunc("/api/process", h.Process).Methods("POST")
	router.HandleFunc("/api/verify", h.Verify).Methods("POST")
	router.HandleFunc("/api/compare", h.Compare).Methods("POST")
	router.HandleFunc("/api/universal", h.Universal).Methods("POST")
	router.HandleFunc("/api/batch", h.Batch).Methods("POST")
	router.HandleFunc("/health", h.Health).Methods("GET")

	return router
}

// requestIDMiddleware stamps every request with a correlation id,
// returned to the caller via the X-Request-Id response header.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status    string      `json:"status"`
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Uptime    string      `json:"uptime"`
	Memory    MemoryStats `json:"memory"`
}

// MemoryStats reports coarse runtime memory usage.
type MemoryStats struct {
	AllocatedMB string `json:"allocatedMb"`
	SystemMB    string `json:"systemMb"`
}

var startTime = time.Now()

// Health reports service liveness and uptime.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(startTime).String(),
		Memory: MemoryStats{
			AllocatedMB: fmt.Sprintf("%.1f", float64(m.Alloc)/1024/1024),
			SystemMB:    fmt.Sprintf("%.1f", float64(m.Sys)/1024/1024),
		},
	})
}

// ProcessResponse is the /api/process payload.
type ProcessResponse struct {
	DocumentID      string            `json:"documentId"`
	CanonicalString string            `json:"canonicalString"`
	Kind            string            `json:"kind"`
	Confidence      float64           `json:"confidence"`
	Fields          map[string]string `json:"fields"`
	Warnings        []string          `json:"warnings,omitempty"`
	Duplicate       bool              `json:"duplicate"`
}

// Process accepts a multipart file upload ("file" field) and returns
// its derived DocumentId.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := h.receiveUpload(w, r)
	if err != nil {
		return
	}
	defer cleanup()

	doc, err := h.pipeline.Process(r.Context(), path)
	if err != nil {
		h.sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toProcessResponse(doc))
}

// VerifyResponse is the /api/verify payload.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// Verify accepts a multipart file upload plus an "expectedId" form
// value and reports whether the file's derived identifier matches it.
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := h.receiveUpload(w, r)
	if err != nil {
		return
	}
	defer cleanup()

	expectedID := r.FormValue("expectedId")
	if expectedID == "" {
		h.sendError(w, http.StatusBadRequest, "missing expectedId form value")
		return
	}

	ok, err := h.pipeline.Verify(r.Context(), path, expectedID)
	if err != nil {
		h.sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, VerifyResponse{Valid: ok})
}

// CompareResponse is the /api/compare payload.
type CompareResponse struct {
	DocumentA ProcessResponse `json:"documentA"`
	DocumentB ProcessResponse `json:"documentB"`
	Identical bool            `json:"identical"`
}

// Compare accepts two multipart file uploads ("fileA", "fileB") and
// reports whether they resolve to the same DocumentId.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 2*MaxUploadSize)
	if err := r.ParseMultipartForm(2 * MaxUploadSize); err != nil {
		h.sendError(w, http.StatusBadRequest, "file too large or invalid form data")
		return
	}

	pathA, cleanupA, err := h.saveFormFile(r, "fileA")
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanupA()

	pathB, cleanupB, err := h.saveFormFile(r, "fileB")
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return
	}
	defer cleanupB()

	docA, docB, identical, err := h.pipeline.Compare(r.Context(), pathA, pathB)
	if err != nil {
		h.sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, CompareResponse{
		DocumentA: toProcessResponse(docA),
		DocumentB: toProcessResponse(docB),
		Identical: identical,
	})
}

// UniversalResponse is the /api/universal payload.
type UniversalResponse struct {
	DocumentID string `json:"documentId"`
}

// Universal accepts a multipart file upload and returns the
// format-sensitive (non content-canonical) universal identifier. PDF
// uploads are rejected: this deployment has no PDF-rasterization
// collaborator wired in; that boundary is an injected dependency.
func (h *Handler) Universal(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := h.receiveUpload(w, r)
	if err != nil {
		return
	}
	defer cleanup()

	features, err := universal.GetDocumentFeatures(path, nil)
	if err != nil {
		h.sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	gen := universal.NewGeneratorWithPrefix(h.cfg.IDPrefix)
	writeJSON(w, http.StatusOK, UniversalResponse{DocumentID: gen.GenerateID(features)})
}

// BatchResponse is the /api/batch payload.
type BatchResponse struct {
	Results []BatchFileResult `json:"results"`
}

// BatchFileResult is one file's outcome within a batch response.
type BatchFileResult struct {
	Path     string           `json:"path"`
	Document *ProcessResponse `json:"document,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Batch accepts a directory path (form value "dir") reachable on the
// server's filesystem and processes every file within it.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.sendError(w, http.StatusBadRequest, "invalid form data")
		return
	}
	dir := r.FormValue("dir")
	if dir == "" {
		h.sendError(w, http.StatusBadRequest, "missing dir form value")
		return
	}

	results, err := h.pipeline.Batch(r.Context(), dir)
	if err != nil {
		h.sendError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := BatchResponse{Results: make([]BatchFileResult, 0, len(results))}
	for _, res := range results {
		item := BatchFileResult{Path: res.Path}
		if res.Err != nil {
			item.Error = res.Err.Error()
		} else {
			pr := toProcessResponse(res.Document)
			item.Document = &pr
		}
		resp.Results = append(resp.Results, item)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) receiveUpload(w http.ResponseWriter, r *http.Request) (path string, cleanup func(), err error) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err = r.ParseMultipartForm(MaxUploadSize); err != nil {
		h.sendError(w, http.StatusBadRequest, "file too large or invalid form data")
		return "", nil, err
	}
	path, cleanup, err = h.saveFormFile(r, "file")
	if err != nil {
		h.sendError(w, http.StatusBadRequest, err.Error())
		return "", nil, err
	}
	return path, cleanup, nil
}

func (h *Handler) saveFormFile(r *http.Request, field string) (path string, cleanup func(), err error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("missing file field %q", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	tmp, err := os.CreateTemp("", "docid-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", nil, fmt.Errorf("failed to stage uploaded file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", nil, fmt.Errorf("failed to stage uploaded file: %w", err)
	}
	tmp.Close()

	return tmp.Name(), func() { os.Remove(tmp.Name()) }, nil
}

func toProcessResponse(doc *pipeline.ProcessedDocument) ProcessResponse {
	return ProcessResponse{
		DocumentID:      doc.DocumentID,
		CanonicalString: doc.CanonicalString,
		Kind:            string(doc.Kind),
		Confidence:      doc.Confidence,
		Fields:          map[string]string(doc.Fields),
		Warnings:        doc.Warnings,
		Duplicate:       doc.Duplicate,
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
