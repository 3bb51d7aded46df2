package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	stderrors "errors"

	"github.com/arthik444/procheck/internal/common/errors"
	"github.com/arthik444/procheck/internal/intelligence/pipeline"
	"github.com/arthik444/procheck/internal/intelligence/riskassessor"
)

type riskAssessmentRequest struct {
	PatientContext  riskassessor.PatientContext `json:"patientContext"`
	ProtocolContent string                      `json:"protocolContent"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (s *Server) handleIntelligentSearch(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readAndValidate(w, r, intelligentSearchSchema)
	if !ok {
		return
	}

	var req pipeline.SearchRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, errors.NewInvalidRequestFormatError(err.Error()))
		return
	}

	response, err := s.pipeline.IntelligentSearch(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readAndValidate(w, r, suggestionsSchema)
	if !ok {
		return
	}

	var req queryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, errors.NewInvalidRequestFormatError(err.Error()))
		return
	}

	s.writeJSON(w, http.StatusOK, s.pipeline.Suggestions(r.Context(), req.Query))
}

func (s *Server) handleRiskAssessment(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readAndValidate(w, r, riskAssessmentSchema)
	if !ok {
		return
	}

	var req riskAssessmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, errors.NewInvalidRequestFormatError(err.Error()))
		return
	}

	assessment := s.pipeline.AssessRisk(r.Context(), req.PatientContext, req.ProtocolContent)
	recommendations := s.pipeline.PatientRecommendations(req.PatientContext, "")

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"riskAssessment":  assessment,
		"recommendations": recommendations,
	})
}

func (s *Server) handleKnowledgeGraph(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readAndValidate(w, r, knowledgeGraphSchema)
	if !ok {
		return
	}

	var req queryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, errors.NewInvalidRequestFormatError(err.Error()))
		return
	}

	s.writeJSON(w, http.StatusOK, s.pipeline.GraphContext(r.Context(), req.Query))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// readAndValidate reads the request body and checks it against the given
// schema, writing the error response itself on failure.
func (s *Server) readAndValidate(w http.ResponseWriter, r *http.Request, schema string) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, errors.NewInvalidRequestFormatError(err.Error()))
		return nil, false
	}

	if err := validateAgainstSchema(schema, body); err != nil {
		s.writeError(w, err)
		return nil, false
	}

	return body, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("response encode failed", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var stdErr *errors.StandardError
	if !stderrors.As(err, &stdErr) {
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{
			Code:    "INTERNAL_ERROR",
			Message: err.Error(),
		})
		return
	}

	s.writeJSON(w, statusForCode(stdErr.Code), errorResponse{
		Code:    string(stdErr.Code),
		Message: stdErr.Message,
		Details: stdErr.Details,
	})
}

func statusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidRequestFormat, errors.ErrCodeRequestValidation:
		return http.StatusBadRequest
	case errors.ErrCodeIndexNotFound:
		return http.StatusNotFound
	case errors.ErrCodeSearchTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeElasticsearchConnectionFailed, errors.ErrCodeCacheUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
