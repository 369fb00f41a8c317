package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"recruitflow/internal/errors"
	"recruitflow/internal/observability"
	"recruitflow/internal/types"
	"recruitflow/internal/workflow"

	"go.opentelemetry.io/otel/attribute"
)

// statusForErrorKind maps workflow error kinds to HTTP status codes
func statusForErrorKind(kind string) int {
	switch kind {
	case errors.ErrCodeCandidateNotFound, errors.ErrCodeOpeningNotFound, errors.ErrCodeStageNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidDecision, errors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case errors.ErrCodeScreeningFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeResult encodes a workflow result, choosing the HTTP status from its outcome
func writeResult[T any](w http.ResponseWriter, result workflow.Result[T], successStatus int) {
	w.Header().Set("Content-Type", "application/json")
	if result.IsError() {
		w.WriteHeader(statusForErrorKind(result.ErrorKind))
	} else {
		w.WriteHeader(successStatus)
	}
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createApplyHandler wraps candidate intake with observability
func (s *Server) createApplyHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("recruitflow.api")
		ctx, span := tracer.Start(ctx, "api.apply")
		defer span.End()

		var req types.CandidateInput
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Name) == "" {
			err := fmt.Errorf("missing candidate name")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing candidate name", "name field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Position) == "" {
			err := fmt.Errorf("missing position")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing position", "position field is required", http.StatusBadRequest)
			return
		}
		if len(req.ResumeText) > int(s.MaxRequestSize/2) {
			err := fmt.Errorf("resume too large: %d chars", len(req.ResumeText))
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Resume too large", fmt.Sprintf("resumeText exceeds recommended size limit of %d characters", s.MaxRequestSize/2), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("candidate.position", req.Position),
			attribute.Int("request.resume_length", len(req.ResumeText)),
			attribute.String("operation", "apply"),
		)

		metrics := om.GetMetrics()

		// Screening runs feedback and question generation, the AI-backed
		// portion of the pipeline.
		var result workflow.Result[*types.Candidate]
		_ = metrics.TrackAIOperationWithTokens(ctx, "screening", func(ctx context.Context) *observability.AIOperationResult {
			result = s.Engine.Apply(ctx, req)
			return &observability.AIOperationResult{}
		}, om)

		metrics.RecordBusinessMetric(ctx, "candidate_screened", !result.IsError(), om,
			attribute.String("position", req.Position))

		if result.IsError() {
			span.SetAttributes(
				attribute.String("error.type", result.ErrorKind),
				attribute.Bool("success", false),
			)
		} else {
			span.SetAttributes(
				attribute.Bool("success", true),
				attribute.String("candidate.status", result.Payload.Status),
				attribute.Float64("screening.score", result.Payload.Screening.OverallScore),
			)
		}

		writeResult(w, result, http.StatusCreated)
	}
}

// createStageCompleteHandler records interview stage completion
func (s *Server) createStageCompleteHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("recruitflow.api")
		ctx, span := tracer.Start(ctx, "api.stage_complete")
		defer span.End()

		candidateID := r.PathValue("id")
		stage := r.PathValue("stage")

		var req StageCompleteRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("candidate.id", candidateID),
			attribute.String("interview.stage", stage),
			attribute.String("operation", "stage_complete"),
		)

		result := s.Engine.CompleteInterviewStage(candidateID, stage, req.Feedback)

		metrics := om.GetMetrics()
		metrics.RecordBusinessMetric(ctx, "interview_stage_completed", !result.IsError(), om,
			attribute.String("stage", stage))

		if result.IsError() {
			span.SetAttributes(attribute.String("error.type", result.ErrorKind))
		} else {
			span.SetAttributes(
				attribute.Bool("success", true),
				attribute.String("candidate.status", result.Payload.CandidateStatus),
			)
		}

		writeResult(w, result, http.StatusOK)
	}
}

// createFinalizeHandler records the terminal hiring decision
func (s *Server) createFinalizeHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("recruitflow.api")
		ctx, span := tracer.Start(ctx, "api.finalize")
		defer span.End()

		candidateID := r.PathValue("id")

		var req FinalizeRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.String("candidate.id", candidateID),
			attribute.String("decision", req.Decision),
			attribute.String("operation", "finalize"),
		)

		result := s.Engine.Finalize(candidateID, req.Decision, req.Notes)

		if !result.IsError() && req.Decision == workflow.DecisionHired {
			metrics := om.GetMetrics()
			metrics.RecordBusinessMetric(ctx, "candidate_hired", true, om,
				attribute.String("position", result.Payload.Position))
		}

		if result.IsError() {
			span.SetAttributes(attribute.String("error.type", result.ErrorKind))
		} else {
			span.SetAttributes(attribute.Bool("success", true))
		}

		writeResult(w, result, http.StatusOK)
	}
}

// createCandidateHandler returns the full record for one candidate
func (s *Server) createCandidateHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("recruitflow.api").Start(r.Context(), "api.candidate")
		defer span.End()

		candidateID := r.PathValue("id")
		span.SetAttributes(attribute.String("candidate.id", candidateID))

		writeResult(w, s.Engine.Candidate(candidateID), http.StatusOK)
	}
}

// createSummaryHandler returns the aggregate recruitment summary
func (s *Server) createSummaryHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("recruitflow.api").Start(r.Context(), "api.summary")
		defer span.End()

		summary := s.Engine.GenerateSummary()
		span.SetAttributes(attribute.Int("summary.total_candidates", summary.TotalCandidates))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createOpeningsHandler lists the registered job openings
func (s *Server) createOpeningsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := om.Tracer("recruitflow.api").Start(r.Context(), "api.openings")
		defer span.End()

		openings := s.Engine.Openings()
		span.SetAttributes(attribute.Int("openings.count", len(openings)))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(openings); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		return originalMiddleware(func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			next(wrapper, r)

			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		})
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
