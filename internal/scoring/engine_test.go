package scoring

import (
	"context"
	"log/slog"
	"testing"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelError)

func testRecruitmentConfig() *config.RecruitmentConfig {
	return &config.RecruitmentConfig{
		Weights: config.ScoringWeights{
			TechnicalSkills: 0.30,
			Experience:      0.20,
			CulturalFit:     0.15,
		},
		Thresholds: config.RecommendationThresholds{
			StrongRecommend: 85,
			Recommend:       70,
			Consider:        55,
		},
		CulturalCategories: []config.CulturalCategory{
			{Name: "teamwork", Keywords: []string{"team", "collaboration", "cooperation", "partnership"}},
			{Name: "leadership", Keywords: []string{"lead", "manage", "supervise", "mentor", "guide"}},
			{Name: "innovation", Keywords: []string{"innovate", "creative", "problem-solving", "improve"}},
			{Name: "communication", Keywords: []string{"communicate", "present", "write", "speak", "explain"}},
			{Name: "adaptability", Keywords: []string{"adapt", "flexible", "change", "learn", "grow"}},
		},
	}
}

func newTestEngine() *Engine {
	return NewEngine(testRecruitmentConfig(), nil, testLogger)
}

func TestMatchSkills(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name        string
		resume      string
		skills      []string
		wantScore   float64
		wantMatched []string
		wantMissing []string
	}{
		{
			name:        "ExactPhraseMatch",
			resume:      "Built services in Python and PostgreSQL",
			skills:      []string{"Python", "PostgreSQL"},
			wantScore:   100,
			wantMatched: []string{"Python", "PostgreSQL"},
			wantMissing: []string{},
		},
		{
			name:        "CaseInsensitive",
			resume:      "experienced with PYTHON and sql",
			skills:      []string{"python", "SQL"},
			wantScore:   100,
			wantMatched: []string{"python", "SQL"},
			wantMissing: []string{},
		},
		{
			name:        "WhitespaceStrippedMatch",
			resume:      "Deployed apps with nodejs runtimes",
			skills:      []string{"node js"},
			wantScore:   100,
			wantMatched: []string{"node js"},
			wantMissing: []string{},
		},
		{
			name:        "WordLevelMatch",
			resume:      "Hands-on machine operations background",
			skills:      []string{"machine learning"},
			wantScore:   100,
			wantMatched: []string{"machine learning"},
			wantMissing: []string{},
		},
		{
			name:        "PartialMatch",
			resume:      "Experienced in python and sql development",
			skills:      []string{"Python", "SQL", "Docker"},
			wantScore:   66.67,
			wantMatched: []string{"Python", "SQL"},
			wantMissing: []string{"Docker"},
		},
		{
			name:        "EmptyResume",
			resume:      "",
			skills:      []string{"Python", "SQL"},
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{"Python", "SQL"},
		},
		{
			name:        "NoRequiredSkills",
			resume:      "Anything at all",
			skills:      nil,
			wantScore:   0,
			wantMatched: []string{},
			wantMissing: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.matchSkills(tt.resume, tt.skills)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if !equalStrings(got.MatchedSkills, tt.wantMatched) {
				t.Errorf("MatchedSkills = %v, want %v", got.MatchedSkills, tt.wantMatched)
			}
			if !equalStrings(got.MissingSkills, tt.wantMissing) {
				t.Errorf("MissingSkills = %v, want %v", got.MissingSkills, tt.wantMissing)
			}
		})
	}
}

func TestEvaluateExperience(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name           string
		years          int
		level          string
		wantScore      float64
		wantRequired   float64
		wantAssessment string
	}{
		{"SeniorExactMatch", 5, "5+ years", 100, 5, "Well Qualified"},
		{"SeniorOverqualified", 8, "5+ years", 100, 5, "Overqualified"},
		{"SeniorModerate", 4, "5+ years", 80, 5, "Moderately Qualified"},
		{"SeniorUnderqualified", 3, "5+ years", 60, 5, "Underqualified"},
		{"JuniorBand", 1, "0-2 years", 100, 1, "Well Qualified"},
		{"JuniorOverqualified", 2, "0-2 years", 100, 1, "Overqualified"},
		{"MidBand", 3, "2-5 years", 85.71, 3.5, "Moderately Qualified"},
		{"MidWellQualified", 4, "2-5 years", 100, 3.5, "Well Qualified"},
		{"ZeroYears", 0, "2-5 years", 0, 3.5, "Underqualified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.evaluateExperience(tt.years, tt.level)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.RequiredYears != tt.wantRequired {
				t.Errorf("RequiredYears = %v, want %v", got.RequiredYears, tt.wantRequired)
			}
			if got.Assessment != tt.wantAssessment {
				t.Errorf("Assessment = %q, want %q", got.Assessment, tt.wantAssessment)
			}
			wantGap := float64(tt.years) - tt.wantRequired
			if got.GapYears != wantGap {
				t.Errorf("GapYears = %v, want %v", got.GapYears, wantGap)
			}
		})
	}
}

func TestAssessCulturalFit(t *testing.T) {
	e := newTestEngine()

	t.Run("KeywordCounting", func(t *testing.T) {
		got := e.assessCulturalFit(
			"I thrive in team settings and value collaboration.",
			"Led cross-functional partnership efforts.")

		if got.CategoryScores["teamwork"] != 60 {
			t.Errorf("teamwork score = %v, want 60", got.CategoryScores["teamwork"])
		}
		// "Led" does not contain the substring "lead"
		if got.CategoryScores["leadership"] != 0 {
			t.Errorf("leadership score = %v, want 0", got.CategoryScores["leadership"])
		}
	})

	t.Run("NoKeywords", func(t *testing.T) {
		got := e.assessCulturalFit("", "Plain text with none of the markers.")
		if got.Score != 0 {
			t.Errorf("Score = %v, want 0", got.Score)
		}
		if got.Assessment != "Limited Cultural Fit" {
			t.Errorf("Assessment = %q", got.Assessment)
		}
		if len(got.GrowthAreas) != 5 {
			t.Errorf("GrowthAreas = %v, want all 5 categories", got.GrowthAreas)
		}
	})

	t.Run("StrengthsAndGrowthPartition", func(t *testing.T) {
		// teamwork gets 4 keywords (80), others 0.
		got := e.assessCulturalFit(
			"team collaboration cooperation partnership", "")
		if got.CategoryScores["teamwork"] != 80 {
			t.Errorf("teamwork score = %v, want 80", got.CategoryScores["teamwork"])
		}
		if len(got.Strengths) != 1 || got.Strengths[0] != "teamwork" {
			t.Errorf("Strengths = %v, want [teamwork]", got.Strengths)
		}
		if len(got.GrowthAreas) != 4 {
			t.Errorf("GrowthAreas = %v, want the other 4 categories", got.GrowthAreas)
		}
		if got.Score != 16 {
			t.Errorf("overall Score = %v, want 16", got.Score)
		}
	})

	t.Run("AssessmentTiers", func(t *testing.T) {
		tiers := []struct {
			name        string
			text        string
			wantOverall float64
			wantLabel   string
		}{
			{
				name: "Excellent",
				text: "team collaboration cooperation partnership lead manage supervise mentor " +
					"innovate creative problem-solving improve communicate present write speak " +
					"adapt flexible change learn",
				wantOverall: 80,
				wantLabel:   "Excellent Cultural Fit",
			},
			{
				name: "Good",
				text: "team collaboration cooperation lead manage supervise innovate creative " +
					"improve communicate present write adapt flexible change",
				wantOverall: 60,
				wantLabel:   "Good Cultural Fit",
			},
			{
				name: "Moderate",
				text: "team collaboration lead manage innovate creative communicate present " +
					"adapt flexible",
				wantOverall: 40,
				wantLabel:   "Moderate Cultural Fit",
			},
			{
				name:        "Limited",
				text:        "team lead innovate communicate adapt",
				wantOverall: 20,
				wantLabel:   "Limited Cultural Fit",
			},
		}
		for _, tier := range tiers {
			t.Run(tier.name, func(t *testing.T) {
				got := e.assessCulturalFit(tier.text, "")
				if got.Score != tier.wantOverall {
					t.Errorf("Score = %v, want %v", got.Score, tier.wantOverall)
				}
				if got.Assessment != tier.wantLabel {
					t.Errorf("Assessment = %q, want %q", got.Assessment, tier.wantLabel)
				}
			})
		}
	})
}

func TestRecommendationBoundaries(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		score float64
		want  string
	}{
		{100, "Strongly Recommend - Move to Technical Assessment"},
		{85, "Strongly Recommend - Move to Technical Assessment"},
		{84.99, "Recommend - Move to HR Interview"},
		{70, "Recommend - Move to HR Interview"},
		{69.99, "Consider - Additional Screening Required"},
		{55, "Consider - Additional Screening Required"},
		{54.99, "Not Recommended - Does Not Meet Requirements"},
		{0, "Not Recommended - Does Not Meet Requirements"},
	}

	for _, tt := range tests {
		if got := e.Recommendation(tt.score); got != tt.want {
			t.Errorf("Recommendation(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestAdvances(t *testing.T) {
	if !Advances("Strongly Recommend - Move to Technical Assessment") {
		t.Error("strong recommendation should advance")
	}
	if !Advances("Recommend - Move to HR Interview") {
		t.Error("recommendation should advance")
	}
	if Advances("Consider - Additional Screening Required") {
		t.Error("consider tier should not advance")
	}
	if Advances("Not Recommended - Does Not Meet Requirements") {
		t.Error("rejection should not advance")
	}
}

func TestScreen(t *testing.T) {
	e := newTestEngine()

	cand := &types.Candidate{
		CandidateID:     "cand-1",
		Name:            "Priya Sharma",
		ExperienceYears: 5,
		ResumeText:      "Experienced in python and sql development",
	}
	req := types.JobRequirement{
		Position:        "Backend Engineer",
		RequiredSkills:  []string{"Python", "SQL", "Docker"},
		ExperienceLevel: "5+ years",
	}

	result := e.Screen(context.Background(), cand, req)

	if result.Status != "completed" {
		t.Fatalf("Status = %q, want completed", result.Status)
	}
	if result.SkillMatch.Score != 66.67 {
		t.Errorf("SkillMatch.Score = %v, want 66.67", result.SkillMatch.Score)
	}
	if result.Experience.Score != 100 {
		t.Errorf("Experience.Score = %v, want 100", result.Experience.Score)
	}
	if result.Experience.Assessment != "Well Qualified" {
		t.Errorf("Experience.Assessment = %q", result.Experience.Assessment)
	}
	if result.CulturalFit.Score != 0 {
		t.Errorf("CulturalFit.Score = %v, want 0", result.CulturalFit.Score)
	}
	// 66.67*0.30 + 100*0.20 + 0*0.15 rounded to two decimals
	if result.OverallScore != 40 {
		t.Errorf("OverallScore = %v, want 40", result.OverallScore)
	}
	if result.Recommendation != "Not Recommended - Does Not Meet Requirements" {
		t.Errorf("Recommendation = %q", result.Recommendation)
	}
}

func TestScreenTypicalCandidate(t *testing.T) {
	e := newTestEngine()

	cand := &types.Candidate{
		CandidateID:     "cand-2",
		Name:            "Jonas Weber",
		ExperienceYears: 5,
		ResumeText:      "5 years building Python services with Git workflows",
	}
	req := types.JobRequirement{
		Position:        "Software Engineer",
		RequiredSkills:  []string{"Python", "SQL", "Git"},
		ExperienceLevel: "2-5 years",
	}

	result := e.Screen(context.Background(), cand, req)

	if !equalStrings(result.SkillMatch.MatchedSkills, []string{"Python", "Git"}) {
		t.Errorf("MatchedSkills = %v", result.SkillMatch.MatchedSkills)
	}
	if !equalStrings(result.SkillMatch.MissingSkills, []string{"SQL"}) {
		t.Errorf("MissingSkills = %v", result.SkillMatch.MissingSkills)
	}
	if result.SkillMatch.Score != 66.67 {
		t.Errorf("SkillMatch.Score = %v, want 66.67", result.SkillMatch.Score)
	}
	if result.Experience.RequiredYears != 3.5 {
		t.Errorf("RequiredYears = %v, want 3.5", result.Experience.RequiredYears)
	}
	// 5/3.5*100 caps at 100; 5 years is below the 1.5x overqualified bar
	if result.Experience.Score != 100 {
		t.Errorf("Experience.Score = %v, want 100", result.Experience.Score)
	}
	if result.Experience.Assessment != "Well Qualified" {
		t.Errorf("Experience.Assessment = %q, want Well Qualified", result.Experience.Assessment)
	}
}

func TestScreenErrorIsolation(t *testing.T) {
	e := newTestEngine()

	bad := &types.Candidate{
		CandidateID:     "cand-bad",
		Name:            "Broken Record",
		ExperienceYears: -3,
	}
	req := types.JobRequirement{Position: "Backend Engineer", ExperienceLevel: "2-5 years"}

	result := e.Screen(context.Background(), bad, req)
	if result.Status != "error" {
		t.Fatalf("Status = %q, want error", result.Status)
	}
	if result.Error == "" {
		t.Error("error result should carry a message")
	}
	if result.CandidateID != "cand-bad" {
		t.Errorf("CandidateID = %q", result.CandidateID)
	}
}

func TestScreenBatchOrdering(t *testing.T) {
	e := newTestEngine()

	req := types.JobRequirement{
		Position:        "Backend Engineer",
		RequiredSkills:  []string{"Python", "SQL"},
		ExperienceLevel: "2-5 years",
	}
	cands := []*types.Candidate{
		{CandidateID: "low", Name: "Low", ExperienceYears: 0, ResumeText: "nothing relevant here"},
		{CandidateID: "bad", Name: "Bad", ExperienceYears: -1, ResumeText: "python sql"},
		{CandidateID: "high", Name: "High", ExperienceYears: 4,
			ResumeText:  "python sql team collaboration",
			CoverLetter: "I lead and mentor, adapt and learn, communicate and present clearly."},
	}

	results := e.ScreenBatch(context.Background(), cands, req)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if results[0].CandidateID != "high" {
		t.Errorf("first result = %q, want high", results[0].CandidateID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].OverallScore > results[i-1].OverallScore {
			t.Errorf("results not sorted descending at index %d", i)
		}
	}
	// The errored record sorts with score 0 rather than aborting the batch.
	found := false
	for _, r := range results {
		if r.CandidateID == "bad" && r.Status == "error" {
			found = true
		}
	}
	if !found {
		t.Error("errored candidate missing from batch results")
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
