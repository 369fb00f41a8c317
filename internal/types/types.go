package types

import "time"

// Priority levels for job openings
const (
	PriorityNormal = "Normal"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Candidate lifecycle statuses
const (
	StatusApplied                = "applied"
	StatusRejected               = "rejected"
	StatusInterviewScheduled     = "interview_scheduled"
	StatusInterviewsInProgress   = "interviews_in_progress"
	StatusAllInterviewsCompleted = "all_interviews_completed"
	StatusHired                  = "hired"
	StatusNotHired               = "not_hired"
)

// Per-stage interview statuses
const (
	StageScheduled  = "scheduled"
	StageInProgress = "in_progress"
	StageCompleted  = "completed"
	StageCancelled  = "cancelled"
)

// JobRequirement identifies a position to be filled. Immutable once created
// for a recruitment cycle.
type JobRequirement struct {
	OpeningID       string   `json:"openingId,omitempty"`
	Position        string   `json:"position"`
	Department      string   `json:"department"`
	RequiredSkills  []string `json:"requiredSkills"`
	ExperienceLevel string   `json:"experienceLevel"` // e.g. "0-2 years", "2-5 years", "5+ years"
	Priority        string   `json:"priority"`
	Salary          float64  `json:"salary,omitempty"`
	LastWorkingDay  string   `json:"lastWorkingDay,omitempty"`
	JobPosting      string   `json:"jobPosting,omitempty"`
}

// CandidateInput is the caller-supplied application payload.
type CandidateInput struct {
	Name            string `json:"name"`
	Position        string `json:"position"`
	ResumeText      string `json:"resumeText"`
	CoverLetter     string `json:"coverLetter"`
	ExperienceYears int    `json:"experienceYears"`
}

// Candidate is the full lifecycle record. Created on application, mutated
// through every workflow stage, never deleted.
type Candidate struct {
	CandidateID     string                      `json:"candidateId"`
	Name            string                      `json:"name"`
	Position        string                      `json:"position"`
	ResumeText      string                      `json:"resumeText"`
	CoverLetter     string                      `json:"coverLetter"`
	ExperienceYears int                         `json:"experienceYears"`
	Status          string                      `json:"status"`
	AppliedAt       time.Time                   `json:"appliedAt"`
	Screening       *ScreeningResult            `json:"screening,omitempty"`
	Schedule        *InterviewSchedule          `json:"schedule,omitempty"`
	InterviewStatus map[string]*InterviewStatus `json:"interviewStatus,omitempty"`
	Final           *FinalEvaluation            `json:"finalEvaluation,omitempty"`
	Decision        *DecisionRecord             `json:"decision,omitempty"`
}

// SkillMatch holds the skill-coverage sub-score.
type SkillMatch struct {
	Score         float64  `json:"score"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}

// ExperienceMatch holds the experience sub-score.
type ExperienceMatch struct {
	Score         float64 `json:"score"`
	RequiredYears float64 `json:"requiredYears"`
	Assessment    string  `json:"assessment"`
	GapYears      float64 `json:"gapYears"`
}

// CulturalFit holds the keyword-based cultural fit sub-score.
type CulturalFit struct {
	Score          float64            `json:"score"`
	CategoryScores map[string]float64 `json:"categoryScores"`
	Assessment     string             `json:"assessment"`
	Strengths      []string           `json:"strengths"`
	GrowthAreas    []string           `json:"growthAreas"`
}

// ScreeningResult is the complete scoring outcome for one candidate.
type ScreeningResult struct {
	CandidateID    string          `json:"candidateId,omitempty"`
	CandidateName  string          `json:"candidateName,omitempty"`
	Position       string          `json:"position,omitempty"`
	Status         string          `json:"status"` // "completed" or "error"
	Error          string          `json:"error,omitempty"`
	SkillMatch     SkillMatch      `json:"skillMatch"`
	Experience     ExperienceMatch `json:"experienceMatch"`
	CulturalFit    CulturalFit     `json:"culturalFit"`
	OverallScore   float64         `json:"overallScore"`
	Recommendation string          `json:"recommendation"`
	AIFeedback     string          `json:"aiFeedback,omitempty"`
}

// StageDetail describes one scheduled interview stage.
type StageDetail struct {
	Date            time.Time `json:"date"`
	DurationMinutes int       `json:"durationMinutes"`
	InterviewType   string    `json:"interviewType"`
	Participants    []string  `json:"participants"`
}

// InterviewSchedule is the ordered interview plan for one candidate.
type InterviewSchedule struct {
	Stages               []string               `json:"stages"`
	Schedule             map[string]StageDetail `json:"schedule"`
	StageQuestions       map[string][]string    `json:"stageQuestions"`
	TotalDurationMinutes int                    `json:"totalDurationMinutes"`
}

// InterviewStatus tracks progress of one interview stage.
type InterviewStatus struct {
	Status    string    `json:"status"`
	Feedback  string    `json:"feedback,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FinalEvaluation blends the screening score with interview-derived scores.
type FinalEvaluation struct {
	FinalScore           float64   `json:"finalScore"`
	ScreeningScore       float64   `json:"screeningScore"`
	InterviewPerformance []float64 `json:"interviewPerformance"`
	Recommendation       string    `json:"recommendation"`
}

// DecisionRecord captures the terminal hiring decision for a candidate.
type DecisionRecord struct {
	Decision  string    `json:"decision"`
	Notes     string    `json:"notes,omitempty"`
	DecidedAt time.Time `json:"decidedAt"`
}

// HiringRecord is appended to the selections list when a candidate is hired.
type HiringRecord struct {
	CandidateID string    `json:"candidateId"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	FinalScore  float64   `json:"finalScore"`
	HiredAt     time.Time `json:"hiredAt"`
}

// TopCandidate is a summary row for the highest scoring candidates.
type TopCandidate struct {
	CandidateID  string  `json:"candidateId"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	OverallScore float64 `json:"overallScore"`
	Status       string  `json:"status"`
}

// SummaryInsights holds cross-candidate observations.
type SummaryInsights struct {
	TopMissingSkills       []SkillFrequency `json:"topMissingSkills"`
	ExperienceDistribution map[string]int   `json:"experienceDistribution"`
}

// SkillFrequency pairs a skill name with how often it was missing.
type SkillFrequency struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// RecruitmentSummary is the aggregate snapshot over all candidates.
type RecruitmentSummary struct {
	TotalCandidates int             `json:"totalCandidates"`
	StatusCounts    map[string]int  `json:"statusCounts"`
	CompletionRate  float64         `json:"completionRate"`
	HireRate        float64         `json:"hireRate"`
	AvgTimeToHire   string          `json:"avgTimeToHire"`
	TopCandidates   []TopCandidate  `json:"topCandidates"`
	Insights        SummaryInsights `json:"insights"`
	GeneratedAt     time.Time       `json:"generatedAt"`
}

// EmployeeRecord is one row of the employee roster dataset.
type EmployeeRecord struct {
	EmployeeID     string  `json:"employeeId"`
	Name           string  `json:"name"`
	Position       string  `json:"position"`
	Department     string  `json:"department"`
	Salary         float64 `json:"salary"`
	LastWorkingDay string  `json:"lastWorkingDay,omitempty"`
}
