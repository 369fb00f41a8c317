package interview

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelError)

func testRecruitmentConfig() *config.RecruitmentConfig {
	return &config.RecruitmentConfig{
		TechnicalPositions: []string{
			"Software Engineer", "DevOps Engineer", "Data Analyst",
			"QA Engineer", "Cloud Architect", "Network Engineer",
		},
		Stages: []config.StageProfile{
			{Name: StageInitialScreening, DurationMinutes: 30, InterviewType: "Phone/Video Call", Participants: []string{"HR Recruiter"}},
			{Name: StageTechnicalAssessment, DurationMinutes: 60, InterviewType: "Technical Test + Discussion", Participants: []string{"Technical Lead", "Team Member"}},
			{Name: StageHRInterview, DurationMinutes: 45, InterviewType: "In-person/Video Call", Participants: []string{"HR Manager"}},
			{Name: StageFinalRound, DurationMinutes: 90, InterviewType: "Panel Interview", Participants: []string{"Department Head", "HR Manager", "Technical Lead"}},
			{Name: StageReferenceCheck, DurationMinutes: 20, InterviewType: "Phone Call", Participants: []string{"HR Recruiter"}},
		},
	}
}

func TestDetermineStages(t *testing.T) {
	p := NewPlanner(testRecruitmentConfig(), nil, testLogger)

	tests := []struct {
		name     string
		position string
		priority string
		want     []string
	}{
		{
			name:     "NonTechnicalNormalPriority",
			position: "HR Specialist",
			priority: types.PriorityNormal,
			want:     []string{StageInitialScreening, StageHRInterview, StageReferenceCheck},
		},
		{
			name:     "TechnicalRole",
			position: "Software Engineer",
			priority: types.PriorityNormal,
			want:     []string{StageInitialScreening, StageTechnicalAssessment, StageHRInterview, StageReferenceCheck},
		},
		{
			name:     "SeniorGetsFinalRound",
			position: "Senior Accountant",
			priority: types.PriorityNormal,
			want:     []string{StageInitialScreening, StageHRInterview, StageFinalRound, StageReferenceCheck},
		},
		{
			name:     "ManagerGetsFinalRound",
			position: "Marketing Manager",
			priority: types.PriorityMedium,
			want:     []string{StageInitialScreening, StageHRInterview, StageFinalRound, StageReferenceCheck},
		},
		{
			name:     "HighPriorityGetsFinalRound",
			position: "HR Specialist",
			priority: types.PriorityHigh,
			want:     []string{StageInitialScreening, StageHRInterview, StageFinalRound, StageReferenceCheck},
		},
		{
			name:     "TechnicalHighPriorityFullTrack",
			position: "DevOps Engineer",
			priority: types.PriorityHigh,
			want:     []string{StageInitialScreening, StageTechnicalAssessment, StageHRInterview, StageFinalRound, StageReferenceCheck},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.DetermineStages(tt.position, tt.priority)
			if len(got) != len(tt.want) {
				t.Fatalf("stages = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("stage[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildSchedule(t *testing.T) {
	p := NewPlanner(testRecruitmentConfig(), nil, testLogger)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return base }

	stages := []string{StageInitialScreening, StageTechnicalAssessment, StageHRInterview, StageReferenceCheck}

	t.Run("HighPrioritySpacing", func(t *testing.T) {
		schedule, total := p.buildSchedule(stages, types.PriorityHigh)

		wantDays := map[string]int{
			StageInitialScreening:    2,
			StageTechnicalAssessment: 3,
			StageHRInterview:         4,
			StageReferenceCheck:      5,
		}
		for stage, days := range wantDays {
			detail, ok := schedule[stage]
			if !ok {
				t.Fatalf("stage %q missing from schedule", stage)
			}
			want := base.AddDate(0, 0, days)
			if !detail.Date.Equal(want) {
				t.Errorf("%s date = %v, want %v", stage, detail.Date, want)
			}
		}
		if total != 30+60+45+20 {
			t.Errorf("total duration = %d, want 155", total)
		}
	})

	t.Run("NormalPrioritySpacing", func(t *testing.T) {
		schedule, _ := p.buildSchedule(stages, types.PriorityNormal)

		want := base.AddDate(0, 0, 2+3*3)
		if got := schedule[StageReferenceCheck].Date; !got.Equal(want) {
			t.Errorf("last stage date = %v, want %v", got, want)
		}
	})

	t.Run("StageProfilesApplied", func(t *testing.T) {
		schedule, _ := p.buildSchedule(stages, types.PriorityMedium)

		tech := schedule[StageTechnicalAssessment]
		if tech.DurationMinutes != 60 {
			t.Errorf("technical duration = %d, want 60", tech.DurationMinutes)
		}
		if tech.InterviewType != "Technical Test + Discussion" {
			t.Errorf("technical type = %q", tech.InterviewType)
		}
		if len(tech.Participants) != 2 {
			t.Errorf("technical participants = %v", tech.Participants)
		}
	})

	t.Run("UnknownStageGetsDefaultProfile", func(t *testing.T) {
		schedule, total := p.buildSchedule([]string{"Culture Chat"}, types.PriorityNormal)
		detail := schedule["Culture Chat"]
		if detail.DurationMinutes != 45 {
			t.Errorf("default duration = %d, want 45", detail.DurationMinutes)
		}
		if total != 45 {
			t.Errorf("total = %d, want 45", total)
		}
	})
}

func TestCreateSchedule(t *testing.T) {
	questions := NewQuestionGenerator(nil, testLogger)
	p := NewPlanner(testRecruitmentConfig(), questions, testLogger)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return base }

	cand := &types.Candidate{CandidateID: "cand-1", Name: "Lena Fischer"}
	req := types.JobRequirement{
		Position:   "Software Engineer",
		Department: "Engineering",
		Priority:   types.PriorityHigh,
	}

	schedule := p.CreateSchedule(context.Background(), cand, req)

	wantStages := []string{StageInitialScreening, StageTechnicalAssessment, StageHRInterview, StageFinalRound, StageReferenceCheck}
	if len(schedule.Stages) != len(wantStages) {
		t.Fatalf("stages = %v, want %v", schedule.Stages, wantStages)
	}
	if schedule.TotalDurationMinutes != 30+60+45+90+20 {
		t.Errorf("total duration = %d, want 245", schedule.TotalDurationMinutes)
	}
	for _, stage := range wantStages {
		if len(schedule.StageQuestions[stage]) == 0 {
			t.Errorf("stage %q has no questions", stage)
		}
		if _, ok := schedule.Schedule[stage]; !ok {
			t.Errorf("stage %q missing from dated schedule", stage)
		}
	}
}
