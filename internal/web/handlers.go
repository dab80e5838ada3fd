package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/JonMunkholm/PGTReport/internal/audit"
	"github.com/JonMunkholm/PGTReport/internal/engine"
	"github.com/JonMunkholm/PGTReport/internal/logging"
	"github.com/JonMunkholm/PGTReport/internal/reader"
	"github.com/JonMunkholm/PGTReport/internal/report"
	"github.com/JonMunkholm/PGTReport/internal/schema"
	"github.com/go-chi/chi/v5"
)

// validateResponse is the JSON body returned by POST /api/validate.
type validateResponse struct {
	IsValid        bool               `json:"is_valid"`
	ExchangeType   string             `json:"exchange_type"`
	FirmID         string             `json:"firm_id"`
	SubmissionDate string             `json:"submission_date"`
	Report         string             `json:"report"`
	Summary        validateSummary    `json:"summary"`
	RowResults     []engine.RowResult `json:"row_results"`
	Errors         []engine.Issue     `json:"errors"`
}

type validateSummary struct {
	TotalRows     int `json:"total_rows"`
	ValidRows     int `json:"valid_rows"`
	InvalidRows   int `json:"invalid_rows"`
	TotalErrors   int `json:"total_errors"`
	TotalWarnings int `json:"total_warnings"`
}

// handleHealth reports service liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// handleListVariants returns the supported schema variants.
func (s *Server) handleListVariants(w http.ResponseWriter, r *http.Request) {
	type variantInfo struct {
		Key        string `json:"key"`
		FieldCount int    `json:"field_count"`
	}

	var out []variantInfo
	for _, key := range schema.Keys() {
		v, err := schema.Get(key)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "variant registry inconsistent")
			return
		}
		out = append(out, variantInfo{Key: string(key), FieldCount: v.FieldCount()})
	}
	writeJSON(w, map[string]any{"variants": out})
}

// handleVariantDetail returns the full field list for one variant.
func (s *Server) handleVariantDetail(w http.ResponseWriter, r *http.Request) {
	key := schema.VariantKey(strings.ToUpper(chi.URLParam(r, "key")))
	v, err := schema.Get(key)
	if err != nil {
		if errors.Is(err, schema.ErrUnknownVariant) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("unknown variant: %s", key))
			return
		}
		writeError(w, http.StatusInternalServerError, "variant lookup failed")
		return
	}

	type fieldInfo struct {
		Position  int    `json:"position"`
		NameCN    string `json:"name_cn"`
		NameEN    string `json:"name_en"`
		Kind      string `json:"kind"`
		MaxLength int    `json:"max_length"`
		Required  bool   `json:"required"`
	}

	fields := make([]fieldInfo, 0, v.FieldCount())
	for i := 0; i < v.FieldCount(); i++ {
		f, ok := v.Field(i)
		if !ok {
			continue
		}
		fields = append(fields, fieldInfo{
			Position:  f.Position,
			NameCN:    f.NameCN,
			NameEN:    f.NameEN,
			Kind:      f.Kind.String(),
			MaxLength: f.MaxLength,
			Required:  f.Require == schema.Always,
		})
	}
	writeJSON(w, map[string]any{
		"key":    string(v.Key),
		"fields": fields,
	})
}

// handleValidate accepts a multipart submission file, validates every row,
// and returns the full validation result.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Upload.MaxFileSize)
	if err := r.ParseMultipartForm(s.cfg.Upload.MaxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request or file too large")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing 'file' form field")
		return
	}
	defer file.Close()

	meta, err := reader.ParseFilename(header.Filename, time.Now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	variant, err := schema.Get(meta.Variant)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "variant lookup failed")
		return
	}

	rows, err := reader.ReadRows(file, variant)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(rows) > s.cfg.Upload.MaxRows {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("submission has %d rows, maximum is %d", len(rows), s.cfg.Upload.MaxRows))
		return
	}

	rep := engine.New(variant).Validate(rows, engine.RunContext{
		FirmID:         meta.FirmID,
		SubmissionDate: meta.SubmissionDate,
	})

	logger := logging.WithFields(r.Context(),
		"file", header.Filename,
		"variant", string(meta.Variant),
	)
	logger.Info("validation completed",
		"rows", rep.TotalRows,
		"errors", rep.TotalErrors,
		"warnings", rep.TotalWarnings,
		"passed", rep.Passed,
		"duration", time.Since(started),
	)

	if err := s.store.Record(r.Context(), audit.Entry{
		FileName:       header.Filename,
		Variant:        string(meta.Variant),
		FirmID:         meta.FirmID,
		TotalRows:      rep.TotalRows,
		InvalidRows:    rep.InvalidRows,
		TotalErrors:    rep.TotalErrors,
		TotalWarnings:  rep.TotalWarnings,
		Passed:         rep.Passed,
		DurationMillis: time.Since(started).Milliseconds(),
	}); err != nil {
		// Validation already succeeded; the audit log is best-effort
		logger.Error("audit record failed", "error", err)
	}

	issues := rep.Issues
	if issues == nil {
		issues = []engine.Issue{}
	}
	writeJSON(w, validateResponse{
		IsValid:        rep.Passed,
		ExchangeType:   string(meta.Variant),
		FirmID:         meta.FirmID,
		SubmissionDate: meta.SubmissionDate.Format("20060102"),
		Report:         report.Text(rep),
		Summary: validateSummary{
			TotalRows:     rep.TotalRows,
			ValidRows:     rep.ValidRows,
			InvalidRows:   rep.InvalidRows,
			TotalErrors:   rep.TotalErrors,
			TotalWarnings: rep.TotalWarnings,
		},
		RowResults: rep.Rows,
		Errors:     issues,
	})
}

// handleRecentRuns returns the latest entries from the validation audit log.
func (s *Server) handleRecentRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "audit log is not configured")
		return
	}

	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	entries, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load run history")
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}
	writeJSON(w, map[string]any{"runs": entries})
}
