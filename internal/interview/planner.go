package interview

import (
	"context"
	"slices"
	"strings"
	"time"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

// Canonical interview stage names. These match the configured stage catalog.
const (
	StageInitialScreening    = "Initial Screening"
	StageTechnicalAssessment = "Technical Assessment"
	StageHRInterview         = "HR Interview"
	StageFinalRound          = "Final Round"
	StageReferenceCheck      = "Reference Check"
)

// Planner builds interview schedules for advancing candidates. The stage
// catalog and the technical-position set come from configuration, the clock
// is injected for deterministic scheduling in tests.
type Planner struct {
	recruitment *config.RecruitmentConfig
	questions   *QuestionGenerator
	logger      *errors.Logger
	now         func() time.Time
}

// NewPlanner creates an interview planner. The question generator may be nil,
// in which case schedules carry no stage questions.
func NewPlanner(rc *config.RecruitmentConfig, questions *QuestionGenerator, logger *errors.Logger) *Planner {
	return &Planner{
		recruitment: rc,
		questions:   questions,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateSchedule assembles the full interview plan for one candidate:
// stage selection, dated schedule, and per-stage question lists.
func (p *Planner) CreateSchedule(ctx context.Context, cand *types.Candidate, req types.JobRequirement) *types.InterviewSchedule {
	stages := p.DetermineStages(req.Position, req.Priority)
	schedule, total := p.buildSchedule(stages, req.Priority)

	stageQuestions := make(map[string][]string, len(stages))
	if p.questions != nil {
		for _, stage := range stages {
			stageQuestions[stage] = p.questions.ForStage(ctx, stage, req.Position, req.Department)
		}
	}

	if p.logger != nil {
		p.logger.Info("Interview schedule created",
			"candidate_id", cand.CandidateID,
			"position", req.Position,
			"stages", len(stages),
			"total_duration_minutes", total)
	}

	return &types.InterviewSchedule{
		Stages:               stages,
		Schedule:             schedule,
		StageQuestions:       stageQuestions,
		TotalDurationMinutes: total,
	}
}

// DetermineStages selects the interview stages for a position. Every
// candidate gets Initial Screening, HR Interview, and Reference Check;
// technical roles add Technical Assessment, and senior or high-priority
// roles add Final Round before the reference check.
func (p *Planner) DetermineStages(position, priority string) []string {
	stages := []string{StageInitialScreening}

	if slices.Contains(p.recruitment.TechnicalPositions, position) {
		stages = append(stages, StageTechnicalAssessment)
	}

	stages = append(stages, StageHRInterview)

	if strings.Contains(position, "Senior") || strings.Contains(position, "Manager") || priority == types.PriorityHigh {
		stages = append(stages, StageFinalRound)
	}

	return append(stages, StageReferenceCheck)
}

// buildSchedule assigns dates and stage details. The first stage lands two
// days out, later stages are spaced by a priority-dependent interval.
func (p *Planner) buildSchedule(stages []string, priority string) (map[string]types.StageDetail, int) {
	var daysBetween int
	switch priority {
	case types.PriorityHigh:
		daysBetween = 1
	case types.PriorityMedium:
		daysBetween = 2
	default:
		daysBetween = 3
	}

	now := p.now()
	schedule := make(map[string]types.StageDetail, len(stages))
	total := 0

	for i, stage := range stages {
		offsetDays := 2
		if i > 0 {
			offsetDays = 2 + i*daysBetween
		}

		profile := p.recruitment.StageProfileFor(stage)
		schedule[stage] = types.StageDetail{
			Date:            now.AddDate(0, 0, offsetDays),
			DurationMinutes: profile.DurationMinutes,
			InterviewType:   profile.InterviewType,
			Participants:    profile.Participants,
		}
		total += profile.DurationMinutes
	}

	return schedule, total
}
