package export

import (
	"path/filepath"
	"testing"
	"time"

	"recruitflow/internal/types"

	"github.com/xuri/excelize/v2"
)

func TestExportWorkbook(t *testing.T) {
	summary := &types.RecruitmentSummary{
		TotalCandidates: 2,
		StatusCounts:    map[string]int{"hired": 1, "rejected": 1},
		CompletionRate:  50,
		HireRate:        50,
		AvgTimeToHire:   "10.0 days",
		GeneratedAt:     time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	}
	candidates := []*types.Candidate{
		{
			CandidateID: "c1",
			Name:        "Priya Sharma",
			Position:    "Software Engineer",
			Status:      types.StatusHired,
			Screening: &types.ScreeningResult{
				OverallScore:   88.5,
				SkillMatch:     types.SkillMatch{Score: 100},
				Experience:     types.ExperienceMatch{Score: 90},
				CulturalFit:    types.CulturalFit{Score: 70},
				Recommendation: "Strongly Recommend - Move to Technical Assessment",
			},
		},
		{CandidateID: "c2", Name: "Unscreened", Position: "Software Engineer", Status: types.StatusApplied},
	}

	path := filepath.Join(t.TempDir(), "report")
	if err := ExportWorkbook(summary, candidates, path); err != nil {
		t.Fatalf("ExportWorkbook failed: %v", err)
	}

	// The .xlsx extension is appended when missing.
	f, err := excelize.OpenFile(path + ".xlsx")
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	wantSheets := map[string]bool{summarySheet: false, candidatesSheet: false}
	for _, s := range sheets {
		if _, ok := wantSheets[s]; ok {
			wantSheets[s] = true
		}
	}
	for s, seen := range wantSheets {
		if !seen {
			t.Errorf("sheet %q missing from workbook", s)
		}
	}

	title, err := f.GetCellValue(summarySheet, "A1")
	if err != nil {
		t.Fatal(err)
	}
	if title != "Recruitment Summary Report" {
		t.Errorf("summary title = %q", title)
	}

	name, err := f.GetCellValue(candidatesSheet, "B2")
	if err != nil {
		t.Fatal(err)
	}
	if name != "Priya Sharma" {
		t.Errorf("candidate name cell = %q", name)
	}

	score, err := f.GetCellValue(candidatesSheet, "E2")
	if err != nil {
		t.Fatal(err)
	}
	if score != "88.50" {
		t.Errorf("overall score cell = %q", score)
	}

	// Unscreened candidates keep their score columns empty.
	empty, err := f.GetCellValue(candidatesSheet, "E3")
	if err != nil {
		t.Fatal(err)
	}
	if empty != "" {
		t.Errorf("unscreened score cell = %q, want empty", empty)
	}
}
