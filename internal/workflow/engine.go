package workflow

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"recruitflow/internal/errors"
	"recruitflow/internal/interview"
	"recruitflow/internal/scoring"
	"recruitflow/internal/summary"
	"recruitflow/internal/types"

	"github.com/google/uuid"
)

// Terminal hiring decisions accepted by Finalize.
const (
	DecisionHired    = types.StatusHired
	DecisionNotHired = types.StatusNotHired
	DecisionRejected = types.StatusRejected
)

// StageCompletion is the payload returned when an interview stage completes.
type StageCompletion struct {
	CandidateID     string                 `json:"candidateId"`
	Stage           string                 `json:"stage"`
	CandidateStatus string                 `json:"candidateStatus"`
	Final           *types.FinalEvaluation `json:"finalEvaluation,omitempty"`
	NextSteps       []string               `json:"nextSteps"`
}

// Engine drives the candidate lifecycle. All recruitment state lives on the
// engine instance behind a mutex; candidates are appended in application
// order and never removed.
type Engine struct {
	mu         sync.RWMutex
	openings   []types.JobRequirement
	candidates []*types.Candidate
	byID       map[string]*types.Candidate
	selections []types.HiringRecord

	scorer  *scoring.Engine
	planner *interview.Planner
	logger  *errors.Logger
	now     func() time.Time
	newID   func() string
}

// NewEngine creates a workflow engine with empty state.
func NewEngine(scorer *scoring.Engine, planner *interview.Planner, logger *errors.Logger) *Engine {
	return &Engine{
		byID:    make(map[string]*types.Candidate),
		scorer:  scorer,
		planner: planner,
		logger:  logger,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// RegisterOpening adds a job opening, assigning an ID when absent.
func (e *Engine) RegisterOpening(req types.JobRequirement) types.JobRequirement {
	if req.OpeningID == "" {
		req.OpeningID = e.newID()
	}

	e.mu.Lock()
	e.openings = append(e.openings, req)
	e.mu.Unlock()

	if e.logger != nil {
		e.logger.Info("Job opening registered",
			"opening_id", req.OpeningID,
			"position", req.Position,
			"department", req.Department,
			"priority", req.Priority)
	}
	return req
}

// Openings returns a snapshot of the registered openings.
func (e *Engine) Openings() []types.JobRequirement {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]types.JobRequirement, len(e.openings))
	copy(out, e.openings)
	return out
}

// Apply processes a candidate application: screens against the matching
// opening, then either schedules interviews or rejects. The candidate record
// is stored in both cases.
func (e *Engine) Apply(ctx context.Context, input types.CandidateInput) Result[*types.Candidate] {
	e.mu.Lock()
	defer e.mu.Unlock()

	req, ok := e.findOpening(input.Position)
	if !ok {
		return Err[*types.Candidate](errors.ErrCodeOpeningNotFound,
			fmt.Sprintf("Job position '%s' not found", input.Position))
	}

	cand := &types.Candidate{
		CandidateID:     e.newID(),
		Name:            input.Name,
		Position:        req.Position,
		ResumeText:      input.ResumeText,
		CoverLetter:     input.CoverLetter,
		ExperienceYears: input.ExperienceYears,
		Status:          types.StatusApplied,
		AppliedAt:       e.now(),
	}

	cand.Screening = e.scorer.Screen(ctx, cand, req)
	e.candidates = append(e.candidates, cand)
	e.byID[cand.CandidateID] = cand

	if cand.Screening.Status == "error" {
		return Err[*types.Candidate](errors.ErrCodeScreeningFailed, cand.Screening.Error)
	}

	if scoring.Advances(cand.Screening.Recommendation) {
		cand.Schedule = e.planner.CreateSchedule(ctx, cand, req)
		cand.Status = types.StatusInterviewScheduled
		cand.InterviewStatus = make(map[string]*types.InterviewStatus, len(cand.Schedule.Stages))
		for _, stage := range cand.Schedule.Stages {
			cand.InterviewStatus[stage] = &types.InterviewStatus{
				Status:    types.StageScheduled,
				UpdatedAt: cand.AppliedAt,
			}
		}
		if e.logger != nil {
			e.logger.Info("Candidate passed screening",
				"candidate_id", cand.CandidateID,
				"overall_score", cand.Screening.OverallScore,
				"stages", len(cand.Schedule.Stages))
		}
		return OK(cand, "Candidate passed screening and interview scheduled")
	}

	cand.Status = types.StatusRejected
	if e.logger != nil {
		e.logger.Info("Candidate rejected at screening",
			"candidate_id", cand.CandidateID,
			"overall_score", cand.Screening.OverallScore)
	}
	return OK(cand, "Candidate screened but did not meet requirements")
}

// CompleteInterviewStage records one completed interview stage. When the
// number of completed stages reaches the number of scheduled stages the
// candidate moves to all_interviews_completed and gets a final evaluation.
// Completion is counted, not matched by stage name, so completing a stage
// under a name outside the schedule still advances the count.
func (e *Engine) CompleteInterviewStage(candidateID, stage, feedback string) Result[*StageCompletion] {
	e.mu.Lock()
	defer e.mu.Unlock()

	cand, ok := e.byID[candidateID]
	if !ok {
		return Err[*StageCompletion](errors.ErrCodeCandidateNotFound,
			fmt.Sprintf("Candidate with ID %s not found", candidateID))
	}

	if isTerminal(cand.Status) {
		return Err[*StageCompletion](errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Candidate %s is already %s", candidateID, cand.Status))
	}

	if cand.InterviewStatus == nil {
		cand.InterviewStatus = make(map[string]*types.InterviewStatus)
	}
	cand.InterviewStatus[stage] = &types.InterviewStatus{
		Status:    types.StageCompleted,
		Feedback:  feedback,
		UpdatedAt: e.now(),
	}

	if e.allInterviewsCompleted(cand) {
		cand.Status = types.StatusAllInterviewsCompleted
		cand.Final = e.evaluateFinal(cand)
	} else {
		cand.Status = types.StatusInterviewsInProgress
	}

	if e.logger != nil {
		e.logger.Info("Interview stage completed",
			"candidate_id", candidateID,
			"stage", stage,
			"candidate_status", cand.Status)
	}

	return OK(&StageCompletion{
		CandidateID:     candidateID,
		Stage:           stage,
		CandidateStatus: cand.Status,
		Final:           cand.Final,
		NextSteps:       e.nextSteps(cand, stage),
	}, fmt.Sprintf("Interview stage '%s' completed", stage))
}

// Finalize records the terminal hiring decision. A hired decision appends a
// hiring record to the selections list.
func (e *Engine) Finalize(candidateID, decision, notes string) Result[*types.Candidate] {
	if decision != DecisionHired && decision != DecisionNotHired && decision != DecisionRejected {
		return Err[*types.Candidate](errors.ErrCodeInvalidDecision,
			fmt.Sprintf("Invalid decision '%s': must be hired, not_hired, or rejected", decision))
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	cand, ok := e.byID[candidateID]
	if !ok {
		return Err[*types.Candidate](errors.ErrCodeCandidateNotFound,
			fmt.Sprintf("Candidate with ID %s not found", candidateID))
	}

	decidedAt := e.now()
	cand.Status = decision
	cand.Decision = &types.DecisionRecord{
		Decision:  decision,
		Notes:     notes,
		DecidedAt: decidedAt,
	}

	if decision == DecisionHired {
		var finalScore float64
		if cand.Final != nil {
			finalScore = cand.Final.FinalScore
		} else if cand.Screening != nil {
			finalScore = cand.Screening.OverallScore
		}
		e.selections = append(e.selections, types.HiringRecord{
			CandidateID: cand.CandidateID,
			Name:        cand.Name,
			Position:    cand.Position,
			FinalScore:  finalScore,
			HiredAt:     decidedAt,
		})
	}

	if e.logger != nil {
		e.logger.Info("Final selection made",
			"candidate_id", candidateID,
			"decision", decision)
	}

	return OK(cand, fmt.Sprintf("Final selection made: %s", decision))
}

// Candidate looks up one candidate by ID.
func (e *Engine) Candidate(candidateID string) Result[*types.Candidate] {
	e.mu.RLock()
	defer e.mu.RUnlock()

	cand, ok := e.byID[candidateID]
	if !ok {
		return Err[*types.Candidate](errors.ErrCodeCandidateNotFound,
			fmt.Sprintf("Candidate with ID %s not found", candidateID))
	}
	return OK(cand, "")
}

// Candidates returns the candidate records in application order.
func (e *Engine) Candidates() []*types.Candidate {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*types.Candidate, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// GenerateSummary aggregates the current recruitment state. Computed under
// the read lock so mutating operations cannot interleave.
func (e *Engine) GenerateSummary() *types.RecruitmentSummary {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return summary.Aggregate(e.candidates, e.selections, e.now())
}

func (e *Engine) findOpening(position string) (types.JobRequirement, bool) {
	for _, opening := range e.openings {
		if strings.EqualFold(opening.Position, position) {
			return opening, true
		}
	}
	return types.JobRequirement{}, false
}

func (e *Engine) allInterviewsCompleted(cand *types.Candidate) bool {
	if cand.Schedule == nil {
		return false
	}

	completed := 0
	for _, status := range cand.InterviewStatus {
		if status.Status == types.StageCompleted {
			completed++
		}
	}
	return completed == len(cand.Schedule.Stages)
}

// evaluateFinal blends the screening score with interview performance.
// Each completed stage scores two points per feedback word, capped at 100.
func (e *Engine) evaluateFinal(cand *types.Candidate) *types.FinalEvaluation {
	var screeningScore float64
	if cand.Screening != nil {
		screeningScore = cand.Screening.OverallScore
	}

	var interviewScores []float64
	for _, status := range cand.InterviewStatus {
		if status.Status == types.StageCompleted {
			score := math.Min(100, float64(len(strings.Fields(status.Feedback))*2))
			interviewScores = append(interviewScores, score)
		}
	}

	finalScore := screeningScore
	if len(interviewScores) > 0 {
		var sum float64
		for _, s := range interviewScores {
			sum += s
		}
		average := sum / float64(len(interviewScores))
		finalScore = screeningScore*0.6 + average*0.4
	}
	finalScore = math.Round(finalScore*100) / 100

	return &types.FinalEvaluation{
		FinalScore:           finalScore,
		ScreeningScore:       screeningScore,
		InterviewPerformance: interviewScores,
		Recommendation:       finalRecommendation(finalScore),
	}
}

func finalRecommendation(finalScore float64) string {
	switch {
	case finalScore >= 80:
		return "Strongly Recommend Hiring"
	case finalScore >= 70:
		return "Recommend Hiring"
	case finalScore >= 60:
		return "Consider Hiring"
	default:
		return "Do Not Recommend Hiring"
	}
}

func (e *Engine) nextSteps(cand *types.Candidate, currentStage string) []string {
	if cand.Schedule == nil {
		return []string{"Review interview schedule"}
	}

	stages := cand.Schedule.Stages
	for i, stage := range stages {
		if stage != currentStage {
			continue
		}
		if i+1 < len(stages) {
			return []string{fmt.Sprintf("Schedule %s interview", stages[i+1])}
		}
		return []string{"Complete final evaluation", "Make hiring decision"}
	}
	return []string{"Review interview schedule"}
}

func isTerminal(status string) bool {
	switch status {
	case types.StatusHired, types.StatusNotHired, types.StatusRejected:
		return true
	}
	return false
}
