package job

import (
	"time"

	"skill-match/internal/domain/skill"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full-time"
	EmploymentPartTime   EmploymentType = "part-time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceExecutive ExperienceLevel = "executive"
)

type SalaryRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type Job struct {
	ID              string          `json:"id"`
	EmployerID      string          `json:"employerId"`
	Title           string          `json:"title"`
	Company         string          `json:"company"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	RequiredSkills  []skill.Skill   `json:"requiredSkills"`
	PreferredSkills []skill.Skill   `json:"preferredSkills"`
	EmploymentType  EmploymentType  `json:"employmentType,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel,omitempty"`
	SalaryRange     *SalaryRange    `json:"salaryRange,omitempty"`
	Active          bool            `json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// Normalize replaces absent skill lists with empty ones so that callers never
// hand a nil requirement list to the matching engine.
func (j Job) Normalize() Job {
	if j.RequiredSkills == nil {
		j.RequiredSkills = []skill.Skill{}
	}
	if j.PreferredSkills == nil {
		j.PreferredSkills = []skill.Skill{}
	}
	return j
}

func NormalizeAll(jobs []Job) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Normalize())
	}
	return out
}

func (t EmploymentType) Valid() bool {
	switch t {
	case EmploymentFullTime, EmploymentPartTime, EmploymentContract, EmploymentInternship:
		return true
	default:
		return false
	}
}

func (l ExperienceLevel) Valid() bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive:
		return true
	default:
		return false
	}
}
