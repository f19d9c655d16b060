package skill

import (
	"strings"
	"time"
)

type ProficiencyLevel string

const (
	LevelBeginner     ProficiencyLevel = "beginner"
	LevelIntermediate ProficiencyLevel = "intermediate"
	LevelAdvanced     ProficiencyLevel = "advanced"
	LevelExpert       ProficiencyLevel = "expert"
)

// ParseLevel accepts the four level names in any case. An empty string yields
// a nil level, which means "not specified".
func ParseLevel(s string) (*ProficiencyLevel, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return nil, true
	}
	lvl := ProficiencyLevel(s)
	if !lvl.Valid() {
		return nil, false
	}
	return &lvl, true
}

func (l ProficiencyLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return true
	default:
		return false
	}
}

// Skill is the value the matching engine compares. ID is opaque and is only
// echoed back in results; identity is the folded Name.
type Skill struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Level *ProficiencyLevel `json:"level,omitempty"`
}

// CatalogSkill is an entry of the shared skill catalog used for autocompletion.
type CatalogSkill struct {
	ID        string
	Name      string
	Category  string
	CreatedAt time.Time
}
