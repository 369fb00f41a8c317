package scoring

import (
	"context"
	"strings"
	"testing"

	"recruitflow/internal/ai"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, *ai.TokenUsage, error) {
	if s.err != nil {
		return "", nil, s.err
	}
	return s.text, &ai.TokenUsage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30}, nil
}

func (s *stubGenerator) GetModelInfo(ctx context.Context) *ai.ModelInfo {
	return &ai.ModelInfo{Name: "stub", Available: true}
}

func (s *stubGenerator) Close() error { return nil }

func feedbackFixture() (*types.Candidate, types.JobRequirement, *types.ScreeningResult) {
	cand := &types.Candidate{
		CandidateID:     "cand-1",
		Name:            "Arun Mehta",
		ExperienceYears: 6,
	}
	req := types.JobRequirement{
		Position:        "Data Engineer",
		RequiredSkills:  []string{"Python", "SQL", "ETL"},
		ExperienceLevel: "5+ years",
	}
	result := &types.ScreeningResult{
		CandidateID:   "cand-1",
		CandidateName: "Arun Mehta",
		Position:      "Data Engineer",
		SkillMatch: types.SkillMatch{
			Score:         66.67,
			MatchedSkills: []string{"Python", "SQL"},
			MissingSkills: []string{"ETL"},
		},
		Experience:  types.ExperienceMatch{Assessment: "Well Qualified"},
		CulturalFit: types.CulturalFit{Assessment: "Good Cultural Fit"},
	}
	return cand, req, result
}

func TestBuildFeedbackPrompt(t *testing.T) {
	cand, req, result := feedbackFixture()
	prompt := BuildFeedbackPrompt(cand, req, result)

	wantFragments := []string{
		"applying for Data Engineer position",
		"- Name: Arun Mehta",
		"- Experience: 6 years",
		"- Skills Match: 66.7%",
		"- Experience Assessment: Well Qualified",
		"- Cultural Fit: Good Cultural Fit",
		"Required Skills: Python, SQL, ETL",
		"Matched Skills: Python, SQL",
		"Missing Skills: ETL",
		"1. Overall assessment (2-3 sentences)",
		"Keep it professional, constructive, and actionable.",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(prompt, fragment) {
			t.Errorf("prompt missing %q", fragment)
		}
	}
}

func TestFallbackFeedback(t *testing.T) {
	t.Run("WithScreeningData", func(t *testing.T) {
		cand, req, result := feedbackFixture()
		got := FallbackFeedback(cand, req, result)

		wantLines := []string{
			"Candidate Arun Mehta shows a 66.7% skills match for the Data Engineer role. Experience is assessed as Well Qualified with cultural fit being Good Cultural Fit.",
			"- Strengths: Python, SQL",
			"- Areas to improve: ETL",
			"- Next steps: Proceed to HR interview if role requires, or assign a short technical assessment.",
		}
		for _, line := range wantLines {
			if !strings.Contains(got, line) {
				t.Errorf("fallback feedback missing %q", line)
			}
		}
	})

	t.Run("EmptySkillListsUseDefaults", func(t *testing.T) {
		cand, req, result := feedbackFixture()
		result.SkillMatch.MatchedSkills = nil
		result.SkillMatch.MissingSkills = nil

		got := FallbackFeedback(cand, req, result)
		if !strings.Contains(got, "- Strengths: Communication, Collaboration") {
			t.Errorf("default strengths missing from %q", got)
		}
		if !strings.Contains(got, "- Areas to improve: Advanced system design") {
			t.Errorf("default growth areas missing from %q", got)
		}
	})
}

func TestFeedbackGeneratorUsesAIWhenAvailable(t *testing.T) {
	cand, req, result := feedbackFixture()
	service := &ai.Service{Generator: &stubGenerator{text: "Model feedback text"}}
	gen := NewFeedbackGenerator(service, testLogger)

	got := gen.Generate(context.Background(), cand, req, result)
	if got != "Model feedback text" {
		t.Errorf("Generate = %q, want model output", got)
	}
}

func TestFeedbackGeneratorFallsBack(t *testing.T) {
	cand, req, result := feedbackFixture()
	want := FallbackFeedback(cand, req, result)

	t.Run("NilService", func(t *testing.T) {
		gen := NewFeedbackGenerator(nil, testLogger)
		if got := gen.Generate(context.Background(), cand, req, result); got != want {
			t.Errorf("nil service should produce fallback feedback, got %q", got)
		}
	})

	t.Run("GeneratorError", func(t *testing.T) {
		service := &ai.Service{Generator: &stubGenerator{
			err: errors.NewAIError(errors.ErrCodeAIServiceFailed, "boom", nil),
		}}
		gen := NewFeedbackGenerator(service, testLogger)
		if got := gen.Generate(context.Background(), cand, req, result); got != want {
			t.Errorf("failing generator should produce fallback feedback, got %q", got)
		}
	})
}
