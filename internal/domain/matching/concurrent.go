package matching

import (
	"context"

	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/skill"
	"skill-match/internal/pkg/workerpool"
)

// RankConcurrent is Rank with scoring spread over a worker pool. Each worker
// fills its own slice range, so the merged output equals Rank's.
func RankConcurrent(ctx context.Context, workers int, c candidate.Profile, jobs []job.Job) ([]RankedJob, error) {
	owned := foldSet(c.Skills)
	out := make([]RankedJob, len(jobs))

	shards := shardBounds(len(jobs), workers)
	tasks := make([]workerpool.Task, 0, len(shards))
	for _, b := range shards {
		lo, hi := b[0], b[1]
		tasks = append(tasks, func(ctx context.Context) error {
			for i := lo; i < hi; i++ {
				out[i] = RankedJob{Job: jobs[i], Result: scoreWith(owned, jobs[i])}
			}
			return nil
		})
	}

	if err := workerpool.Do(ctx, workers, tasks); err != nil {
		return nil, err
	}
	sortRanked(out)
	return out, nil
}

// RecommendConcurrent is Recommend with demand counted per shard and merged.
// Sequence numbers are global visitation positions, so tie-breaking matches
// the sequential walk.
func RecommendConcurrent(ctx context.Context, workers int, c candidate.Profile, jobs []job.Job, limit int) ([]skill.Skill, error) {
	owned := foldSet(c.Skills)

	offsets := make([]int, len(jobs))
	next := 0
	for i, j := range jobs {
		offsets[i] = next
		next += visitCount(j)
	}

	shards := shardBounds(len(jobs), workers)
	partials := make([]tally, len(shards))
	tasks := make([]workerpool.Task, 0, len(shards))
	for si, b := range shards {
		lo, hi := b[0], b[1]
		tasks = append(tasks, func(ctx context.Context) error {
			t := newTally()
			for i := lo; i < hi; i++ {
				t.addJob(owned, jobs[i], offsets[i])
			}
			partials[si] = t
			return nil
		})
	}

	if err := workerpool.Do(ctx, workers, tasks); err != nil {
		return nil, err
	}

	total := newTally()
	for _, p := range partials {
		if p.byKey == nil {
			continue
		}
		total.merge(p)
	}
	return total.top(limit), nil
}

// shardBounds splits n items into at most workers contiguous [lo, hi) ranges.
func shardBounds(n, workers int) [][2]int {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	out := make([][2]int, 0, workers)
	for lo := 0; lo < n; lo += size {
		hi := lo + size
		if hi > n {
			hi = n
		}
		out = append(out, [2]int{lo, hi})
	}
	return out
}
