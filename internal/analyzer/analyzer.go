package analyzer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"recruitflow/internal/config"
	"recruitflow/internal/errors"
	"recruitflow/internal/types"
)

// Analysis outcomes.
const (
	StatusNoOpenings    = "no_openings"
	StatusOpeningsFound = "openings_found"
)

// Opening is one detected vacancy: the departing employee plus the derived
// job requirement.
type Opening struct {
	EmployeeID   string               `json:"employeeId"`
	EmployeeName string               `json:"employeeName"`
	SalaryRange  string               `json:"salaryRange"`
	Requirement  types.JobRequirement `json:"requirement"`
}

// Analysis is the result of one roster pass.
type Analysis struct {
	Status   string    `json:"status"`
	Openings []Opening `json:"openings"`
}

// Analyzer turns employee-departure records into job openings. Skill and
// priority tables come from configuration; posting text comes from the
// posting generator.
type Analyzer struct {
	cfg     *config.AnalyzerConfig
	posting *PostingGenerator
	logger  *errors.Logger
}

// Position keywords that mark an opening as critical regardless of department.
var criticalPositionMarkers = []string{"Manager", "Senior", "Lead", "Architect"}

// NewAnalyzer creates a roster analyzer. The posting generator may be nil,
// in which case openings carry no job-posting text.
func NewAnalyzer(cfg *config.AnalyzerConfig, posting *PostingGenerator, logger *errors.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, posting: posting, logger: logger}
}

// AnalyzeFile loads the roster CSV and runs the opening analysis.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (*Analysis, error) {
	records, err := LoadRoster(path)
	if err != nil {
		return nil, err
	}
	return a.Analyze(ctx, records), nil
}

// Analyze derives openings from roster records. Rows with a last working day
// represent departing employees and become openings.
func (a *Analyzer) Analyze(ctx context.Context, records []types.EmployeeRecord) *Analysis {
	var openings []Opening
	for _, rec := range records {
		if rec.LastWorkingDay == "" {
			continue
		}
		openings = append(openings, a.analyzeOpening(ctx, rec))
	}

	if len(openings) == 0 {
		return &Analysis{Status: StatusNoOpenings}
	}

	if a.logger != nil {
		a.logger.Info("Roster analysis complete",
			"records", len(records),
			"openings", len(openings))
	}
	return &Analysis{Status: StatusOpeningsFound, Openings: openings}
}

func (a *Analyzer) analyzeOpening(ctx context.Context, rec types.EmployeeRecord) Opening {
	salaryRange := SalaryRange(rec.Position, rec.Salary)
	experienceLevel := ExperienceLevel(rec.Position)

	req := types.JobRequirement{
		OpeningID:       "job_" + rec.EmployeeID,
		Position:        rec.Position,
		Department:      rec.Department,
		RequiredSkills:  a.requiredSkills(rec.Position, rec.Department),
		ExperienceLevel: experienceLevel,
		Priority:        a.priority(rec.Department, rec.Position),
		Salary:          rec.Salary,
		LastWorkingDay:  rec.LastWorkingDay,
	}

	if a.posting != nil {
		req.JobPosting = a.posting.Generate(ctx, rec.Position, rec.Department, rec.Salary, salaryRange, experienceLevel)
	}

	return Opening{
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.Name,
		SalaryRange:  salaryRange,
		Requirement:  req,
	}
}

// requiredSkills merges department and position skill tables, deduplicated
// in first-seen order.
func (a *Analyzer) requiredSkills(position, department string) []string {
	var skills []string
	seen := make(map[string]bool)

	add := func(list []string) {
		for _, skill := range list {
			if !seen[skill] {
				seen[skill] = true
				skills = append(skills, skill)
			}
		}
	}

	for _, ds := range a.cfg.DepartmentSkills {
		if ds.Department == department {
			add(ds.Skills)
			break
		}
	}
	for _, ps := range a.cfg.PositionSkills {
		if ps.Position == position {
			add(ps.Skills)
			break
		}
	}

	return skills
}

func (a *Analyzer) priority(department, position string) string {
	for _, marker := range criticalPositionMarkers {
		if strings.Contains(position, marker) {
			return types.PriorityHigh
		}
	}
	for _, dep := range a.cfg.HighPriorityDeps {
		if dep == department {
			return types.PriorityHigh
		}
	}
	for _, dep := range a.cfg.MediumPriorityDeps {
		if dep == department {
			return types.PriorityMedium
		}
	}
	return types.PriorityNormal
}

// ExperienceLevel maps a position title to its required experience band.
func ExperienceLevel(position string) string {
	switch {
	case strings.Contains(position, "Senior") || strings.Contains(position, "Manager"):
		return "5+ years"
	case strings.Contains(position, "Junior"):
		return "0-2 years"
	default:
		return "2-5 years"
	}
}

// salary bands in INR LPA by role seniority, first keyword match wins
var roleBandsLPA = []struct {
	keyword string
	min     float64
	max     float64
}{
	{"Intern", 3, 6},
	{"Junior", 4, 8},
	{"Associate", 6, 12},
	{"Engineer", 8, 18},
	{"Senior", 18, 35},
	{"Lead", 28, 45},
	{"Manager", 30, 55},
	{"Architect", 35, 60},
	{"Director", 55, 90},
}

// SalaryRange estimates an annual CTC range in INR LPA from role bands, with
// the previous employee's USD salary nudging the band by at most ±15%.
func SalaryRange(position string, currentSalaryUSD float64) string {
	normalized := strings.ToLower(strings.TrimSpace(position))

	minLPA, maxLPA := 8.0, 18.0
	for _, band := range roleBandsLPA {
		if strings.Contains(normalized, strings.ToLower(band.keyword)) {
			minLPA, maxLPA = band.min, band.max
			break
		}
	}

	if currentSalaryUSD > 0 {
		influence := math.Min(0.15, math.Max(-0.15, (currentSalaryUSD-60000)/400000))
		minLPA = math.Round(minLPA * (1 + influence))
		maxLPA = math.Round(maxLPA * (1 + influence))
		if minLPA > maxLPA {
			minLPA = maxLPA - 1
		}
	}

	return fmt.Sprintf("₹%d–%d LPA", int(minLPA), int(maxLPA))
}

// LoadRoster reads the employee roster CSV. Expected header columns: id,
// name, position, department, salary, last_working_day.
func LoadRoster(path string) ([]types.EmployeeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Failed to open roster file: %s", path), err)
	}
	defer f.Close()

	return ParseRoster(f)
}

// ParseRoster reads roster records from CSV data.
func ParseRoster(r io.Reader) ([]types.EmployeeRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeInvalidFormat,
			"Failed to read roster header", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"id", "name", "position", "department", "salary"} {
		if _, ok := col[required]; !ok {
			return nil, errors.NewIOError(errors.ErrCodeInvalidFormat,
				fmt.Sprintf("Roster is missing required column: %s", required), nil)
		}
	}

	var records []types.EmployeeRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewIOError(errors.ErrCodeInvalidFormat,
				"Failed to parse roster row", err)
		}

		field := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}

		salary, err := strconv.ParseFloat(field("salary"), 64)
		if err != nil && field("salary") != "" {
			return nil, errors.NewIOError(errors.ErrCodeInvalidFormat,
				fmt.Sprintf("Invalid salary for employee %s: %q", field("id"), field("salary")), err)
		}

		records = append(records, types.EmployeeRecord{
			EmployeeID:     field("id"),
			Name:           field("name"),
			Position:       field("position"),
			Department:     field("department"),
			Salary:         salary,
			LastWorkingDay: field("last_working_day"),
		})
	}

	return records, nil
}
