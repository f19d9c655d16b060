package matching

import (
	"sort"

	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/skill"
)

const DefaultRecommendationLimit = 5

// Recommend returns up to limit skills the candidate lacks, ordered by how
// many times they are asked for across the corpus (required and preferred
// both count). Ties keep the order in which skills were first seen. A limit
// of zero or less means DefaultRecommendationLimit.
func Recommend(c candidate.Profile, jobs []job.Job, limit int) []skill.Skill {
	owned := foldSet(c.Skills)
	t := newTally()
	seq := 0
	for _, j := range jobs {
		seq = t.addJob(owned, j, seq)
	}
	return t.top(limit)
}

type demand struct {
	key   string
	skill skill.Skill
	count int
	seq   int
}

// tally counts demand per folded key. The representative of a key is the
// occurrence with the smallest sequence number, which makes merging tallies
// from disjoint shards order independent.
type tally struct {
	byKey map[string]*demand
}

func newTally() tally {
	return tally{byKey: make(map[string]*demand)}
}

// addJob visits the job's required then preferred skills, numbering each
// visited skill from seq. It returns the next free sequence number.
func (t tally) addJob(owned map[string]struct{}, j job.Job, seq int) int {
	visit := func(skills []skill.Skill) {
		for _, s := range skills {
			key := FoldSkill(s)
			cur := seq
			seq++
			if _, ok := owned[key]; ok {
				continue
			}
			t.add(key, s, 1, cur)
		}
	}
	visit(j.RequiredSkills)
	visit(j.PreferredSkills)
	return seq
}

func (t tally) add(key string, s skill.Skill, count, seq int) {
	d, ok := t.byKey[key]
	if !ok {
		t.byKey[key] = &demand{key: key, skill: s, count: count, seq: seq}
		return
	}
	d.count += count
	if seq < d.seq {
		d.seq = seq
		d.skill = s
	}
}

func (t tally) merge(other tally) {
	for key, d := range other.byKey {
		t.add(key, d.skill, d.count, d.seq)
	}
}

func (t tally) top(limit int) []skill.Skill {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	entries := make([]*demand, 0, len(t.byKey))
	for _, d := range t.byKey {
		entries = append(entries, d)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].seq < entries[j].seq
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}
	out := make([]skill.Skill, 0, len(entries))
	for _, d := range entries {
		out = append(out, d.skill)
	}
	return out
}

func visitCount(j job.Job) int {
	return len(j.RequiredSkills) + len(j.PreferredSkills)
}
