package config

import "fmt"

// RecruitmentConfig holds the scoring and planning data tables. Everything
// here is plain configuration so deployments can tune weights, thresholds,
// and keyword heuristics without code changes.
type RecruitmentConfig struct {
	Weights            ScoringWeights           `mapstructure:"weights"`
	Thresholds         RecommendationThresholds `mapstructure:"thresholds"`
	CulturalCategories []CulturalCategory       `mapstructure:"culturalCategories"`
	TechnicalPositions []string                 `mapstructure:"technicalPositions"`
	Stages             []StageProfile           `mapstructure:"stages"`
	Analyzer           AnalyzerConfig           `mapstructure:"analyzer"`
}

// ScoringWeights are the multipliers applied to the three sub-scores when
// computing the overall screening score. They must be non-negative but are
// not required to sum to 1.
type ScoringWeights struct {
	TechnicalSkills float64 `mapstructure:"technicalSkills"`
	Experience      float64 `mapstructure:"experience"`
	CulturalFit     float64 `mapstructure:"culturalFit"`
}

// RecommendationThresholds are the lower bounds of the screening
// recommendation tiers.
type RecommendationThresholds struct {
	StrongRecommend float64 `mapstructure:"strongRecommend"`
	Recommend       float64 `mapstructure:"recommend"`
	Consider        float64 `mapstructure:"consider"`
}

// CulturalCategory is one cultural-fit dimension with its keyword list.
// This is an auditable heuristic table, not learned behavior.
type CulturalCategory struct {
	Name     string   `mapstructure:"name"`
	Keywords []string `mapstructure:"keywords"`
}

// StageProfile describes the fixed properties of one interview stage.
type StageProfile struct {
	Name            string   `mapstructure:"name"`
	DurationMinutes int      `mapstructure:"durationMinutes"`
	InterviewType   string   `mapstructure:"interviewType"`
	Participants    []string `mapstructure:"participants"`
}

// AnalyzerConfig holds the employee-roster analysis tables.
type AnalyzerConfig struct {
	DepartmentSkills   []DepartmentSkills `mapstructure:"departmentSkills"`
	PositionSkills     []PositionSkills   `mapstructure:"positionSkills"`
	HighPriorityDeps   []string           `mapstructure:"highPriorityDepartments"`
	MediumPriorityDeps []string           `mapstructure:"mediumPriorityDepartments"`
}

// DepartmentSkills maps a department to its baseline skill requirements.
type DepartmentSkills struct {
	Department string   `mapstructure:"department"`
	Skills     []string `mapstructure:"skills"`
}

// PositionSkills maps a position title to its specific skill requirements.
type PositionSkills struct {
	Position string   `mapstructure:"position"`
	Skills   []string `mapstructure:"skills"`
}

// Validate checks the recruitment data tables for internally consistent values.
func (r *RecruitmentConfig) Validate() error {
	if r.Weights.TechnicalSkills < 0 || r.Weights.Experience < 0 || r.Weights.CulturalFit < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}

	if !(r.Thresholds.StrongRecommend > r.Thresholds.Recommend &&
		r.Thresholds.Recommend > r.Thresholds.Consider) {
		return fmt.Errorf("recommendation thresholds must be strictly descending (strongRecommend > recommend > consider)")
	}

	for _, cat := range r.CulturalCategories {
		if cat.Name == "" {
			return fmt.Errorf("cultural category name cannot be empty")
		}
		if len(cat.Keywords) == 0 {
			return fmt.Errorf("cultural category %q has no keywords", cat.Name)
		}
	}

	seen := make(map[string]bool)
	for _, stage := range r.Stages {
		if stage.Name == "" {
			return fmt.Errorf("stage name cannot be empty")
		}
		if seen[stage.Name] {
			return fmt.Errorf("duplicate stage profile: %s", stage.Name)
		}
		seen[stage.Name] = true
		if stage.DurationMinutes <= 0 {
			return fmt.Errorf("stage %q must have a positive duration", stage.Name)
		}
	}

	return nil
}

// StageProfileFor returns the profile for a stage name, or a generic profile
// when the stage is not in the catalog.
func (r *RecruitmentConfig) StageProfileFor(name string) StageProfile {
	for _, stage := range r.Stages {
		if stage.Name == name {
			return stage
		}
	}
	return StageProfile{
		Name:            name,
		DurationMinutes: 45,
		InterviewType:   "Video Call",
		Participants:    []string{"HR Recruiter"},
	}
}
