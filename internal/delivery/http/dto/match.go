package dto

import (
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"
	"skill-match/internal/usecase"
)

type RecommendedSkillResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewRecommendedSkills(items []skill.Skill) []RecommendedSkillResponse {
	out := make([]RecommendedSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendedSkillResponse{ID: it.ID, Name: it.Name})
	}
	return out
}

type DashboardSummary struct {
	SkillCount  int `json:"skillCount"`
	TotalJobs   int `json:"totalJobs"`
	HighMatches int `json:"highMatches"`
}

type DashboardResponse struct {
	Summary           DashboardSummary           `json:"summary"`
	Matches           []matching.RankedJob       `json:"matches"`
	RecommendedSkills []RecommendedSkillResponse `json:"recommendedSkills"`
}

func NewDashboardResponse(d usecase.Dashboard) DashboardResponse {
	matches := d.Matches
	if matches == nil {
		matches = []matching.RankedJob{}
	}
	return DashboardResponse{
		Summary: DashboardSummary{
			SkillCount:  d.SkillCount,
			TotalJobs:   d.TotalJobs,
			HighMatches: d.HighMatches,
		},
		Matches:           matches,
		RecommendedSkills: NewRecommendedSkills(d.RecommendedSkills),
	}
}
