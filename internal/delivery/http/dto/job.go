package dto

import (
	"skill-match/internal/domain/job"
	"skill-match/internal/usecase"
)

type SalaryRangeRequest struct {
	Min      float64 `json:"min" validate:"gte=0"`
	Max      float64 `json:"max" validate:"gtefield=Min"`
	Currency string  `json:"currency" validate:"omitempty,len=3"`
}

// JobRequest is the body of job create and update.
type JobRequest struct {
	Title           string              `json:"title" validate:"required,max=200"`
	Company         string              `json:"company" validate:"required,max=200"`
	Location        string              `json:"location" validate:"max=200"`
	Description     string              `json:"description"`
	RequiredSkills  []string            `json:"requiredSkills" validate:"max=50,dive,skillname"`
	PreferredSkills []string            `json:"preferredSkills" validate:"max=50,dive,skillname"`
	EmploymentType  string              `json:"employmentType" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel string              `json:"experienceLevel" validate:"omitempty,oneof=entry mid senior executive"`
	SalaryRange     *SalaryRangeRequest `json:"salaryRange" validate:"omitempty"`
}

func (r JobRequest) Input() usecase.JobInput {
	in := usecase.JobInput{
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		RequiredSkills:  r.RequiredSkills,
		PreferredSkills: r.PreferredSkills,
		EmploymentType:  job.EmploymentType(r.EmploymentType),
		ExperienceLevel: job.ExperienceLevel(r.ExperienceLevel),
	}
	if r.SalaryRange != nil {
		in.SalaryRange = &job.SalaryRange{
			Min:      r.SalaryRange.Min,
			Max:      r.SalaryRange.Max,
			Currency: r.SalaryRange.Currency,
		}
	}
	return in
}

type MatchSummaryResponse struct {
	JobID                  string `json:"jobId"`
	Candidates             int    `json:"candidates"`
	AverageMatchPercentage int    `json:"averageMatchPercentage"`
	HighMatches            int    `json:"highMatches"`
}

func NewMatchSummaryResponse(s usecase.MatchSummary) MatchSummaryResponse {
	return MatchSummaryResponse(s)
}
