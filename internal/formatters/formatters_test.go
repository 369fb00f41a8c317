package formatters

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"recruitflow/internal/analyzer"
	"recruitflow/internal/types"
)

func sampleScreening() types.ScreeningResult {
	return types.ScreeningResult{
		CandidateName: "Priya Sharma",
		Position:      "Software Engineer",
		Status:        "completed",
		SkillMatch: types.SkillMatch{
			Score:         66.67,
			MatchedSkills: []string{"Python", "Git"},
			MissingSkills: []string{"SQL"},
		},
		Experience: types.ExperienceMatch{
			Score:         100,
			RequiredYears: 3.5,
			Assessment:    "Well Qualified",
		},
		CulturalFit: types.CulturalFit{
			Score:      60,
			Assessment: "Good Cultural Fit",
			Strengths:  []string{"teamwork"},
		},
		OverallScore:   75.33,
		Recommendation: "Recommend - Proceed to Interview",
		AIFeedback:     "Solid profile overall.",
	}
}

func sampleSummary() types.RecruitmentSummary {
	return types.RecruitmentSummary{
		TotalCandidates: 3,
		StatusCounts:    map[string]int{"hired": 1, "rejected": 2},
		CompletionRate:  33.33,
		HireRate:        33.33,
		AvgTimeToHire:   "12.0 days",
		TopCandidates: []types.TopCandidate{
			{CandidateID: "c1", Name: "Priya Sharma", Position: "Software Engineer", OverallScore: 88.5, Status: "hired"},
		},
		Insights: types.SummaryInsights{
			TopMissingSkills:       []types.SkillFrequency{{Skill: "Kubernetes", Count: 2}},
			ExperienceDistribution: map[string]int{"Well Qualified": 2},
		},
		GeneratedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
}

func TestFormatScreeningText(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleScreening(), "text")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	wantFragments := []string{
		"=== CANDIDATE SCREENING ===",
		"Candidate: Priya Sharma",
		"Overall Score: 75.33/100",
		"Recommendation: Recommend - Proceed to Interview",
		"Matched: Python, Git",
		"Missing: SQL",
		"Strengths: teamwork",
		"Solid profile overall.",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(output, fragment) {
			t.Errorf("output missing %q", fragment)
		}
	}
}

func TestFormatScreeningMarkdown(t *testing.T) {
	output, err := GlobalRegistry.Format(&types.ScreeningResult{
		CandidateName: "Priya Sharma",
		Position:      "Software Engineer",
		Status:        "error",
		Error:         "experience years cannot be negative",
	}, "markdown")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	if !strings.Contains(output, "# Candidate Screening") {
		t.Error("missing heading")
	}
	if !strings.Contains(output, "## Screening Failed") {
		t.Error("missing error section")
	}
	if !strings.Contains(output, "experience years cannot be negative") {
		t.Error("missing error message")
	}
}

func TestFormatSummary(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		output, err := GlobalRegistry.Format(sampleSummary(), "text")
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		wantFragments := []string{
			"=== RECRUITMENT SUMMARY ===",
			"Total Candidates: 3",
			"Average Time to Hire: 12.0 days",
			"1. Priya Sharma (Software Engineer) - 88.50 [hired]",
			"- Kubernetes (2 candidates)",
		}
		for _, fragment := range wantFragments {
			if !strings.Contains(output, fragment) {
				t.Errorf("output missing %q", fragment)
			}
		}
	})

	t.Run("Markdown", func(t *testing.T) {
		output, err := GlobalRegistry.Format(sampleSummary(), "markdown")
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		for _, fragment := range []string{"# Recruitment Summary", "## Top Candidates", "## Most Commonly Missing Skills"} {
			if !strings.Contains(output, fragment) {
				t.Errorf("output missing %q", fragment)
			}
		}
	})
}

func TestFormatAnalysis(t *testing.T) {
	analysis := &analyzer.Analysis{
		Status: analyzer.StatusOpeningsFound,
		Openings: []analyzer.Opening{
			{
				EmployeeID:   "EMP001",
				EmployeeName: "Rahul Verma",
				SalaryRange:  "₹18–35 LPA",
				Requirement: types.JobRequirement{
					OpeningID:       "job_EMP001",
					Position:        "Senior Software Engineer",
					Department:      "Engineering",
					RequiredSkills:  []string{"Python", "SQL"},
					ExperienceLevel: "5+ years",
					Priority:        types.PriorityHigh,
					LastWorkingDay:  "2026-09-30",
				},
			},
		},
	}

	t.Run("Text", func(t *testing.T) {
		output, err := GlobalRegistry.Format(analysis, "text")
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		wantFragments := []string{
			"=== ROSTER ANALYSIS ===",
			"Openings: 1",
			"Senior Software Engineer - Engineering",
			"Departing: Rahul Verma (ID: EMP001)",
			"Skills: Python, SQL",
		}
		for _, fragment := range wantFragments {
			if !strings.Contains(output, fragment) {
				t.Errorf("output missing %q", fragment)
			}
		}
	})

	t.Run("Markdown", func(t *testing.T) {
		output, err := GlobalRegistry.Format(analysis, "markdown")
		if err != nil {
			t.Fatalf("Format failed: %v", err)
		}
		for _, fragment := range []string{"# Recruitment Analysis Report", "### Senior Software Engineer - Engineering", "**Last Working Day**: 2026-09-30"} {
			if !strings.Contains(output, fragment) {
				t.Errorf("output missing %q", fragment)
			}
		}
	})
}

func TestScreeningResultJSONRoundTrip(t *testing.T) {
	original := sampleScreening()

	encoded, err := GlobalRegistry.Format(original, "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	var decoded types.ScreeningResult
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if decoded.SkillMatch.Score != original.SkillMatch.Score {
		t.Errorf("SkillMatch.Score = %v, want %v", decoded.SkillMatch.Score, original.SkillMatch.Score)
	}
	if decoded.Experience.Score != original.Experience.Score {
		t.Errorf("Experience.Score = %v, want %v", decoded.Experience.Score, original.Experience.Score)
	}
	if decoded.CulturalFit.Score != original.CulturalFit.Score {
		t.Errorf("CulturalFit.Score = %v, want %v", decoded.CulturalFit.Score, original.CulturalFit.Score)
	}
	if decoded.OverallScore != original.OverallScore {
		t.Errorf("OverallScore = %v, want %v", decoded.OverallScore, original.OverallScore)
	}
	if decoded.Recommendation != original.Recommendation {
		t.Errorf("Recommendation = %q, want %q", decoded.Recommendation, original.Recommendation)
	}
	if !reflect.DeepEqual(decoded.SkillMatch.MatchedSkills, original.SkillMatch.MatchedSkills) ||
		!reflect.DeepEqual(decoded.SkillMatch.MissingSkills, original.SkillMatch.MissingSkills) {
		t.Errorf("skill partition changed: %+v vs %+v", decoded.SkillMatch, original.SkillMatch)
	}
}

func TestFormatJSONFallback(t *testing.T) {
	output, err := GlobalRegistry.Format(map[string]string{"status": "ok"}, "json")
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(output, `"status": "ok"`) {
		t.Errorf("output = %q", output)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleScreening(), "yaml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	want := map[string]bool{"json": false, "text": false, "markdown": false}
	for _, f := range formats {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("format %q not registered", f)
		}
	}
}
