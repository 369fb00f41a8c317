package analyzer

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

var testLogger = errors.NewLogger(slog.LevelError)

func testAnalyzerConfig() *config.AnalyzerConfig {
	return &config.AnalyzerConfig{
		DepartmentSkills: []config.DepartmentSkills{
			{Department: "Engineering", Skills: []string{"Programming", "Problem Solving", "Git"}},
			{Department: "Marketing", Skills: []string{"Digital Marketing", "Analytics"}},
		},
		PositionSkills: []config.PositionSkills{
			{Position: "Software Engineer", Skills: []string{"Python", "JavaScript", "SQL", "Git", "Agile"}},
			{Position: "Marketing Specialist", Skills: []string{"Digital Marketing", "Social Media", "Content Creation"}},
		},
		HighPriorityDeps:   []string{"Engineering", "IT", "Finance"},
		MediumPriorityDeps: []string{"Marketing", "Sales"},
	}
}

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(testAnalyzerConfig(), nil, testLogger)
}

func writeRoster(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "employees.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadRoster(t *testing.T) {
	t.Run("ParsesRecords", func(t *testing.T) {
		path := writeRoster(t, `id,name,position,department,salary,last_working_day
101,Ravi Kumar,Software Engineer,Engineering,85000,2026-03-31
102,Anna Silva,Marketing Specialist,Marketing,55000,
`)
		records, err := LoadRoster(path)
		if err != nil {
			t.Fatalf("LoadRoster failed: %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("got %d records, want 2", len(records))
		}
		if records[0].EmployeeID != "101" || records[0].Salary != 85000 || records[0].LastWorkingDay != "2026-03-31" {
			t.Errorf("first record = %+v", records[0])
		}
		if records[1].LastWorkingDay != "" {
			t.Errorf("second record should have no departure date: %+v", records[1])
		}
	})

	t.Run("MissingColumn", func(t *testing.T) {
		path := writeRoster(t, "id,name,position\n1,X,Y\n")
		if _, err := LoadRoster(path); err == nil {
			t.Fatal("expected error for missing columns")
		}
	})

	t.Run("BadSalary", func(t *testing.T) {
		path := writeRoster(t, "id,name,position,department,salary\n1,X,Y,Z,not-a-number\n")
		if _, err := LoadRoster(path); err == nil {
			t.Fatal("expected error for unparseable salary")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadRoster(filepath.Join(t.TempDir(), "absent.csv"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		appErr, ok := err.(*errors.AppError)
		if !ok || appErr.Code != errors.ErrCodeFileNotReadable {
			t.Errorf("err = %v, want %s", err, errors.ErrCodeFileNotReadable)
		}
	})
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer()

	t.Run("NoDepartures", func(t *testing.T) {
		analysis := a.Analyze(context.Background(), []types.EmployeeRecord{
			{EmployeeID: "1", Name: "Stays", Position: "Software Engineer", Department: "Engineering", Salary: 80000},
		})
		if analysis.Status != StatusNoOpenings {
			t.Errorf("Status = %q, want %q", analysis.Status, StatusNoOpenings)
		}
	})

	t.Run("DeparturesBecomeOpenings", func(t *testing.T) {
		analysis := a.Analyze(context.Background(), []types.EmployeeRecord{
			{EmployeeID: "101", Name: "Ravi Kumar", Position: "Software Engineer", Department: "Engineering", Salary: 85000, LastWorkingDay: "2026-03-31"},
			{EmployeeID: "102", Name: "Stays Put", Position: "Data Analyst", Department: "Engineering", Salary: 70000},
		})

		if analysis.Status != StatusOpeningsFound {
			t.Fatalf("Status = %q", analysis.Status)
		}
		if len(analysis.Openings) != 1 {
			t.Fatalf("openings = %d, want 1", len(analysis.Openings))
		}

		opening := analysis.Openings[0]
		req := opening.Requirement
		if req.OpeningID != "job_101" {
			t.Errorf("OpeningID = %q", req.OpeningID)
		}
		if req.Priority != types.PriorityHigh {
			t.Errorf("Priority = %q, want High", req.Priority)
		}
		if req.ExperienceLevel != "2-5 years" {
			t.Errorf("ExperienceLevel = %q", req.ExperienceLevel)
		}
		if req.LastWorkingDay != "2026-03-31" {
			t.Errorf("LastWorkingDay = %q", req.LastWorkingDay)
		}

		// Department skills first, then position skills, deduplicated
		// (Git appears in both tables).
		want := []string{"Programming", "Problem Solving", "Git", "Python", "JavaScript", "SQL", "Agile"}
		if len(req.RequiredSkills) != len(want) {
			t.Fatalf("RequiredSkills = %v, want %v", req.RequiredSkills, want)
		}
		for i := range want {
			if req.RequiredSkills[i] != want[i] {
				t.Errorf("skill[%d] = %q, want %q", i, req.RequiredSkills[i], want[i])
			}
		}
	})
}

func TestPriority(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		department string
		position   string
		want       string
	}{
		{"Engineering", "Software Engineer", types.PriorityHigh},
		{"HR", "Senior HR Specialist", types.PriorityHigh},
		{"Marketing", "Marketing Manager", types.PriorityHigh},
		{"Marketing", "Marketing Specialist", types.PriorityMedium},
		{"Sales", "Sales Executive", types.PriorityMedium},
		{"HR", "HR Specialist", types.PriorityNormal},
	}
	for _, tt := range tests {
		if got := a.priority(tt.department, tt.position); got != tt.want {
			t.Errorf("priority(%q, %q) = %q, want %q", tt.department, tt.position, got, tt.want)
		}
	}
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		position string
		want     string
	}{
		{"Senior Software Engineer", "5+ years"},
		{"HR Manager", "5+ years"},
		{"Junior Developer", "0-2 years"},
		{"Data Analyst", "2-5 years"},
	}
	for _, tt := range tests {
		if got := ExperienceLevel(tt.position); got != tt.want {
			t.Errorf("ExperienceLevel(%q) = %q, want %q", tt.position, got, tt.want)
		}
	}
}

func TestSalaryRange(t *testing.T) {
	tests := []struct {
		name     string
		position string
		salary   float64
		want     string
	}{
		{"EngineerBandNoSalary", "Software Engineer", 0, "₹8–18 LPA"},
		{"PositiveInfluence", "Software Engineer", 100000, "₹9–20 LPA"},
		{"NegativeInfluence", "Software Engineer", 20000, "₹7–16 LPA"},
		{"DirectorBand", "Director of Operations", 0, "₹55–90 LPA"},
		{"UnknownRoleDefaultsToEngineerBand", "HR Specialist", 0, "₹8–18 LPA"},
		// "Engineer" precedes "Senior" in the band table, so a senior
		// engineer still lands in the Engineer band.
		{"SeniorEngineerMatchesEngineerBandFirst", "Senior Software Engineer", 0, "₹8–18 LPA"},
		{"SeniorNonEngineerMatchesSeniorBand", "Senior Accountant", 0, "₹18–35 LPA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SalaryRange(tt.position, tt.salary); got != tt.want {
				t.Errorf("SalaryRange(%q, %v) = %q, want %q", tt.position, tt.salary, got, tt.want)
			}
		})
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{85000, "85,000.00"},
		{1234567.5, "1,234,567.50"},
		{999, "999.00"},
		{0, "0.00"},
	}
	for _, tt := range tests {
		if got := formatUSD(tt.amount); got != tt.want {
			t.Errorf("formatUSD(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestMarkdownReport(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := MarkdownReport(nil); got != "No recruitment needs identified." {
			t.Errorf("MarkdownReport(nil) = %q", got)
		}
	})

	t.Run("SectionsPerOpening", func(t *testing.T) {
		report := MarkdownReport([]Opening{{
			EmployeeID:   "101",
			EmployeeName: "Ravi Kumar",
			SalaryRange:  "₹8–18 LPA",
			Requirement: types.JobRequirement{
				Position:        "Software Engineer",
				Department:      "Engineering",
				RequiredSkills:  []string{"Python", "SQL"},
				ExperienceLevel: "2-5 years",
				Priority:        types.PriorityHigh,
				LastWorkingDay:  "2026-03-31",
				JobPosting:      "Posting body here.",
			},
		}})

		wantFragments := []string{
			"# Recruitment Analysis Report",
			"Total job openings: 1",
			"### Software Engineer - Engineering",
			"- **Employee**: Ravi Kumar (ID: 101)",
			"- **Salary Range**: ₹8–18 LPA",
			"- Python",
			"#### Job Description:",
			"Posting body here.",
		}
		for _, fragment := range wantFragments {
			if !strings.Contains(report, fragment) {
				t.Errorf("report missing %q", fragment)
			}
		}
	})
}
