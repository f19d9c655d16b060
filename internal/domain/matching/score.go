package matching

import (
	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
)

type MatchResult struct {
	JobID           string   `json:"jobId"`
	MatchPercentage int      `json:"matchPercentage"`
	MatchedSkillIDs []string `json:"matchedSkillIds"`
	MissingSkillIDs []string `json:"missingSkillIds"`
}

// Score partitions the job's required skills into those the candidate has and
// those it lacks. Preferred skills never affect the percentage.
func Score(c candidate.Profile, j job.Job) MatchResult {
	return scoreWith(foldSet(c.Skills), j)
}

func scoreWith(owned map[string]struct{}, j job.Job) MatchResult {
	res := MatchResult{
		JobID:           j.ID,
		MatchedSkillIDs: make([]string, 0, len(j.RequiredSkills)),
		MissingSkillIDs: make([]string, 0),
	}
	for _, s := range j.RequiredSkills {
		if _, ok := owned[FoldSkill(s)]; ok {
			res.MatchedSkillIDs = append(res.MatchedSkillIDs, s.ID)
			continue
		}
		res.MissingSkillIDs = append(res.MissingSkillIDs, s.ID)
	}
	res.MatchPercentage = percentage(len(res.MatchedSkillIDs), len(j.RequiredSkills))
	return res
}

// percentage rounds half up in integer arithmetic. A job with no required
// skills is a full match. Only a complete match reports 100: with 200 or more
// required skills a single miss would otherwise round up to it.
func percentage(matched, total int) int {
	if total == 0 {
		return 100
	}
	p := (200*matched + total) / (2 * total)
	if p == 100 && matched < total {
		return 99
	}
	return p
}
