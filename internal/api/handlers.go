package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"dto-pump/internal/engine"
	"dto-pump/internal/export"
	"dto-pump/internal/schema"
)

type parseRequest struct {
	Input     string `json:"input"`
	InputType string `json:"inputType"`
}

type parseResponse struct {
	Success bool                 `json:"success"`
	Schema  *schema.ParsedSchema `json:"schema,omitempty"`
	Error   string               `json:"error,omitempty"`
}

type generateRequest struct {
	Schema  schema.ParsedSchema `json:"schema"`
	Count   int                 `json:"count"`
	Format  string              `json:"format"`
	Preview bool                `json:"preview"`
}

type generateResponse struct {
	Success     bool   `json:"success"`
	Data        string `json:"data,omitempty"`
	RecordCount int    `json:"recordCount,omitempty"`
	Error       string `json:"error,omitempty"`
}

var errValidation = errors.New("invalid request")

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, parseResponse{Error: "Invalid request body: " + err.Error()})
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		writeJSON(w, http.StatusBadRequest, parseResponse{Error: "Input is required"})
		return
	}
	mode, err := schema.ParseMode(req.InputType)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, parseResponse{Error: err.Error()})
		return
	}

	parsed := schema.Parse(req.Input, mode)
	if len(parsed.Fields) == 0 && parsed.HasErrors() {
		writeJSON(w, http.StatusBadRequest, parseResponse{Error: strings.Join(parsed.ParseErrors, "; ")})
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Success: true, Schema: &parsed})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, generateResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	data, n, err := s.generate(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errValidation) || errors.Is(err, engine.ErrInvalidCount) || errors.Is(err, export.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		} else {
			logrus.WithError(err).Error("generation failed")
		}
		writeJSON(w, status, generateResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Success: true, Data: data, RecordCount: n})
}

func (s *Server) generate(req generateRequest) (string, int, error) {
	if len(req.Schema.Fields) == 0 {
		return "", 0, fmt.Errorf("%w: schema has no fields", errValidation)
	}
	if err := engine.ValidateCount(req.Count); err != nil {
		return "", 0, err
	}
	format, err := export.ParseFormat(req.Format)
	if err != nil {
		return "", 0, err
	}

	count := engine.EffectiveCount(req.Count, req.Preview)
	g := engine.NewGenerator(engine.Options{
		Seed:            s.opts.Seed,
		Locale:          s.opts.Locale,
		NullablePercent: s.opts.NullablePercent,
	})
	records, err := g.Records(req.Schema.Fields, count, nil)
	if err != nil {
		return "", 0, err
	}

	res, err := export.Serialize(records, format)
	if err != nil {
		return "", 0, err
	}
	return res.Content, len(records), nil
}

func (s *Server) handleFieldTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, schema.FieldTypes())
}

func (s *Server) handleFormats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, export.AvailableFormats())
}
