package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"recruitflow/internal/types"
)

// Aggregate computes the recruitment snapshot over the candidate collection.
// Pure read-only function: callers own locking and pass consistent state.
func Aggregate(candidates []*types.Candidate, selections []types.HiringRecord, now time.Time) *types.RecruitmentSummary {
	return &types.RecruitmentSummary{
		TotalCandidates: len(candidates),
		StatusCounts:    countByStatus(candidates),
		CompletionRate:  completionRate(candidates),
		HireRate:        hireRate(candidates),
		AvgTimeToHire:   averageTimeToHire(candidates, selections),
		TopCandidates:   topCandidates(candidates, 5),
		Insights: types.SummaryInsights{
			TopMissingSkills:       topMissingSkills(candidates, 3),
			ExperienceDistribution: experienceDistribution(candidates),
		},
		GeneratedAt: now,
	}
}

func countByStatus(candidates []*types.Candidate) map[string]int {
	counts := make(map[string]int)
	for _, cand := range candidates {
		status := cand.Status
		if status == "" {
			status = "unknown"
		}
		counts[status]++
	}
	return counts
}

// completionRate is the share of candidates that finished all interviews,
// including those already hired.
func completionRate(candidates []*types.Candidate) float64 {
	if len(candidates) == 0 {
		return 0
	}
	completed := 0
	for _, cand := range candidates {
		if cand.Status == types.StatusAllInterviewsCompleted || cand.Status == types.StatusHired {
			completed++
		}
	}
	return round2(float64(completed) / float64(len(candidates)) * 100)
}

func hireRate(candidates []*types.Candidate) float64 {
	if len(candidates) == 0 {
		return 0
	}
	hired := 0
	for _, cand := range candidates {
		if cand.Status == types.StatusHired {
			hired++
		}
	}
	return round2(float64(hired) / float64(len(candidates)) * 100)
}

// averageTimeToHire reports the mean whole days from application to hiring
// record, "N/A" when nobody has been hired yet. Records without a matching
// candidate are skipped.
func averageTimeToHire(candidates []*types.Candidate, selections []types.HiringRecord) string {
	appliedAt := make(map[string]time.Time, len(candidates))
	for _, cand := range candidates {
		appliedAt[cand.CandidateID] = cand.AppliedAt
	}

	totalDays := 0
	hired := 0
	for _, sel := range selections {
		applied, ok := appliedAt[sel.CandidateID]
		if !ok {
			continue
		}
		totalDays += int(sel.HiredAt.Sub(applied).Hours() / 24)
		hired++
	}
	if hired == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f days", float64(totalDays)/float64(hired))
}

func topCandidates(candidates []*types.Candidate, limit int) []types.TopCandidate {
	rows := make([]types.TopCandidate, 0, len(candidates))
	for _, cand := range candidates {
		var score float64
		if cand.Screening != nil {
			score = cand.Screening.OverallScore
		}
		rows = append(rows, types.TopCandidate{
			CandidateID:  cand.CandidateID,
			Name:         cand.Name,
			Position:     cand.Position,
			OverallScore: score,
			Status:       cand.Status,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OverallScore > rows[j].OverallScore
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func topMissingSkills(candidates []*types.Candidate, limit int) []types.SkillFrequency {
	counts := make(map[string]int)
	for _, cand := range candidates {
		if cand.Screening == nil {
			continue
		}
		for _, skill := range cand.Screening.SkillMatch.MissingSkills {
			counts[skill]++
		}
	}

	rows := make([]types.SkillFrequency, 0, len(counts))
	for skill, count := range counts {
		rows = append(rows, types.SkillFrequency{Skill: skill, Count: count})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Skill < rows[j].Skill
	})

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

func experienceDistribution(candidates []*types.Candidate) map[string]int {
	dist := make(map[string]int)
	for _, cand := range candidates {
		assessment := "Unknown"
		if cand.Screening != nil && cand.Screening.Experience.Assessment != "" {
			assessment = cand.Screening.Experience.Assessment
		}
		dist[assessment]++
	}
	return dist
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
