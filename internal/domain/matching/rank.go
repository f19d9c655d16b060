package matching

import (
	"sort"

	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
)

// RankedJob pairs a job with its score for one candidate.
type RankedJob struct {
	Job    job.Job     `json:"job"`
	Result MatchResult `json:"match"`
}

// Rank scores every job and orders them by descending match percentage.
// Jobs with equal scores keep their input order.
func Rank(c candidate.Profile, jobs []job.Job) []RankedJob {
	owned := foldSet(c.Skills)
	out := make([]RankedJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, RankedJob{Job: j, Result: scoreWith(owned, j)})
	}
	sortRanked(out)
	return out
}

func sortRanked(items []RankedJob) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Result.MatchPercentage > items[j].Result.MatchPercentage
	})
}
