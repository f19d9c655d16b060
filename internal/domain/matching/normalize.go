package matching

import (
	"strings"

	"skill-match/internal/domain/skill"
)

// Fold returns the comparison key of a skill name: surrounding whitespace
// trimmed, then lower-cased. Two skills are the same skill iff their keys are
// equal; skill IDs play no part in identity.
func Fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FoldSkill is Fold applied to the skill's name.
func FoldSkill(s skill.Skill) string {
	return Fold(s.Name)
}

func foldSet(skills []skill.Skill) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		set[FoldSkill(s)] = struct{}{}
	}
	return set
}
