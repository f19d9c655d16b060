package dto

import (
	"time"

	"skill-match/internal/domain/skill"
)

type CreateSkillRequest struct {
	Name     string `json:"name" validate:"skillname"`
	Category string `json:"category" validate:"max=64"`
}

type CatalogSkillResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCatalogSkillResponse(s skill.CatalogSkill) CatalogSkillResponse {
	return CatalogSkillResponse{ID: s.ID, Name: s.Name, Category: s.Category, CreatedAt: s.CreatedAt}
}

type AddCandidateSkillRequest struct {
	Name  string `json:"name" validate:"skillname"`
	Level string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type UpdateCandidateSkillRequest struct {
	Level string `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type CandidateSkillResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Level *string `json:"level"`
}

func NewCandidateSkillResponse(s skill.Skill) CandidateSkillResponse {
	out := CandidateSkillResponse{ID: s.ID, Name: s.Name}
	if s.Level != nil {
		lvl := string(*s.Level)
		out.Level = &lvl
	}
	return out
}

func NewCandidateSkillResponses(items []skill.Skill) []CandidateSkillResponse {
	out := make([]CandidateSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewCandidateSkillResponse(it))
	}
	return out
}
