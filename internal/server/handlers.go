package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/vitalis-health/labparse/constants"
	"github.com/vitalis-health/labparse/internal/common"
	"github.com/vitalis-health/labparse/internal/markers"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type parseRequest struct {
	Text   string `json:"text"`
	Locale string `json:"locale,omitempty"`
}

type parseResponse struct {
	Markers    []markers.ValidatedMarker `json:"markers"`
	Extraction any                       `json:"extractionDebug,omitempty"`
}

// POST /labs/parse
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, common.NewAppError(common.CodeBadRequest, "invalid JSON body", err))
		return
	}
	if req.Text == "" {
		writeError(w, r, common.NewAppError(common.CodeBadRequest, "text is required", nil))
		return
	}

	valid, debug, err := s.parse.Run(r.Context(), req.Text, req.Locale)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Markers: valid, Extraction: debug})
}

type summaryRequest struct {
	Markers  []markers.RawMarker `json:"markers"`
	Language string              `json:"language,omitempty"`
}

// POST /nlp/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req summaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, common.NewAppError(common.CodeBadRequest, "invalid JSON body", err))
		return
	}

	doc, err := s.summary.Run(r.Context(), req.Markers, req.Language)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// POST /labs/upload takes a multipart file field "file" plus an
// optional "locale" field.
// The upload is spooled to a temp file for the OCR toolchain and removed
// when the request finishes.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, r, common.NewAppError(common.CodeBadRequest, "failed to parse multipart form", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, common.NewAppError(common.CodeBadRequest, "missing file field 'file'", err))
		return
	}
	defer func() { _ = file.Close() }()

	ext := constants.NormalizeExt(filepath.Ext(header.Filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		writeError(w, r, common.NewAppError(common.CodeUnsupportedFile,
			"unsupported file extension: "+ext, nil))
		return
	}

	tmp, err := os.CreateTemp("", "labparse-upload-*."+ext)
	if err != nil {
		writeError(w, r, common.NewAppError(common.CodeInternal, "create temp file", err))
		return
	}
	tmpPath := tmp.Name()
	defer func() {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			s.logger.Warn("upload.tmpfile.remove_failed", "path", tmpPath, "error", rmErr)
		}
	}()

	if _, err := io.Copy(tmp, file); err != nil {
		_ = tmp.Close()
		writeError(w, r, common.NewAppError(common.CodeInternal, "spool upload", err))
		return
	}
	if err := tmp.Close(); err != nil {
		writeError(w, r, common.NewAppError(common.CodeInternal, "spool upload", err))
		return
	}

	res, err := s.processor.ProcessFile(r.Context(), tmpPath, r.FormValue("locale"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	engine := "pdftotext"
	if res.Extraction.Method != "pdf-text" {
		engine = "tesseract"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"markers":         res.Markers,
		"extractionDebug": res.Debug,
		"extraction": map[string]any{
			"method": res.Extraction.Method,
			"pages":  res.Extraction.Pages,
			"engine": engine,
		},
	})
}
