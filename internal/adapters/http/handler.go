package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/razeenr05/GenVis/internal/adapters/integrations"
	"github.com/razeenr05/GenVis/internal/app/activity"
	"github.com/razeenr05/GenVis/internal/app/workflow"
	"github.com/razeenr05/GenVis/internal/domain"
	"github.com/razeenr05/GenVis/internal/observability"
)

const apiVersion = "1.0.0"

type Server struct {
	workflows *workflow.Service
	tracker   *activity.Tracker
	jira      domain.TicketClient
	slack     domain.MessengerClient
}

func NewServer(
	workflows *workflow.Service,
	tracker *activity.Tracker,
	jira domain.TicketClient,
	slack domain.MessengerClient,
) http.Handler {
	s := &Server{
		workflows: workflows,
		tracker:   tracker,
		jira:      jira,
		slack:     slack,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ideate", s.handleIdeate).Methods(http.MethodPost)
	api.HandleFunc("/requirements", s.handleRequirements).Methods(http.MethodPost)
	api.HandleFunc("/report", s.handleReport).Methods(http.MethodPost)
	api.HandleFunc("/jira/push", s.handleJiraPush).Methods(http.MethodPost)
	api.HandleFunc("/slack/send", s.handleSlackSend).Methods(http.MethodPost)
	api.HandleFunc("/activity", s.handleActivity).Methods(http.MethodGet)

	// CORS must sit outermost so preflights never hit method matching;
	// the request id is assigned before logging so request logs carry it.
	return chainMiddlewares(r, withLogging, withRequestID, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type ideationRequest struct {
	Industry    string `json:"industry"`
	ProblemArea string `json:"problem_area"`
}

type requirementsRequest struct {
	FeatureName   string `json:"feature_name"`
	TargetPersona string `json:"target_persona"`
}

type reportingRequest struct {
	SprintName     string   `json:"sprint_name"`
	CompletedItems []string `json:"completed_items"`
}

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "GenVis API is running",
		"version": apiVersion,
	})
}

func (s *Server) handleIdeate(w http.ResponseWriter, r *http.Request) {
	var req ideationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Industry) == "" {
		badRequest(w, "industry is required")
		return
	}
	if strings.TrimSpace(req.ProblemArea) == "" {
		badRequest(w, "problem_area is required")
		return
	}

	payload, err := s.workflows.Ideate(r.Context(), req.Industry, req.ProblemArea)
	if err != nil {
		workflowError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: payload})
}

func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	var req requirementsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.FeatureName) == "" {
		badRequest(w, "feature_name is required")
		return
	}
	if strings.TrimSpace(req.TargetPersona) == "" {
		badRequest(w, "target_persona is required")
		return
	}

	payload, err := s.workflows.Requirements(r.Context(), req.FeatureName, req.TargetPersona)
	if err != nil {
		workflowError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: payload})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req reportingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.SprintName) == "" {
		badRequest(w, "sprint_name is required")
		return
	}

	payload, err := s.workflows.Report(r.Context(), req.SprintName, req.CompletedItems)
	if err != nil {
		workflowError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: payload})
}

func (s *Server) handleJiraPush(w http.ResponseWriter, r *http.Request) {
	var stories []domain.Payload
	if err := json.NewDecoder(r.Body).Decode(&stories); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	created, err := s.jira.BulkCreateStories(r.Context(), stories)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error("jira push failed", "error", err, "stories", len(stories))
		internalError(w, err)
		return
	}

	s.tracker.RecordJiraPush(len(created))
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: created})
}

func (s *Server) handleSlackSend(w http.ResponseWriter, r *http.Request) {
	var report domain.Payload
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	result, err := s.slack.SendSprintSummary(r.Context(), report)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Error("slack send failed", "error", err)
		internalError(w, err)
		return
	}

	s.tracker.RecordSlackPost(integrations.ExecutiveSummary(report))
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: result})
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Snapshot())
}

// workflowError maps workflow failures to the error envelope. A malformed
// model response surfaces with its description; the raw content was already
// logged where the extraction failed.
func workflowError(w http.ResponseWriter, r *http.Request, err error) {
	log := observability.LoggerFromContext(r.Context())

	var malformed *domain.MalformedResponseError
	if errors.As(err, &malformed) {
		log.Error("workflow returned malformed response", "workflow", malformed.Workflow)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: malformed.Error()})
		return
	}

	log.Error("workflow failed", "error", err)
	internalError(w, err)
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
