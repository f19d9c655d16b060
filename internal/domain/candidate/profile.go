package candidate

import "skill-match/internal/domain/skill"

// Profile is the skill set a match is evaluated against.
type Profile struct {
	UserID      string        `json:"userId"`
	DisplayName string        `json:"name"`
	Skills      []skill.Skill `json:"skills"`
}

// Snapshot returns a copy that shares no backing arrays with p, so it can be
// scored while the original keeps being edited.
func (p Profile) Snapshot() Profile {
	out := Profile{UserID: p.UserID, DisplayName: p.DisplayName}
	out.Skills = make([]skill.Skill, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s.Level != nil {
			lvl := *s.Level
			s.Level = &lvl
		}
		out.Skills = append(out.Skills, s)
	}
	return out
}
