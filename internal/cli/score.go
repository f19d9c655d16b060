package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"skill-match/internal/domain/candidate"
	"skill-match/internal/domain/job"
	"skill-match/internal/domain/matching"
	"skill-match/internal/domain/skill"

	"github.com/spf13/cobra"
)

// scoreInput is the document read by the score command.
type scoreInput struct {
	Candidate candidate.Profile `json:"candidate"`
	Jobs      []job.Job         `json:"jobs"`
}

type scoreOutput struct {
	Matches         []matching.RankedJob `json:"matches"`
	Recommendations []skill.Skill        `json:"recommendations"`
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rank jobs and recommend skills for one candidate, offline",
		Long: `Reads {"candidate":{...},"jobs":[...]} from --input (or stdin when the
input is "-") and prints the ranked matches and skill recommendations as JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, _ := cmd.Flags().GetString("input")
			limit, _ := cmd.Flags().GetInt("limit")
			workers, _ := cmd.Flags().GetInt("workers")

			in, err := readScoreInput(cmd.InOrStdin(), input)
			if err != nil {
				return err
			}

			out, err := score(cmd, in, limit, workers)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringP("input", "i", "", "JSON file with the candidate and the jobs, - for stdin")
	cmd.Flags().IntP("limit", "l", matching.DefaultRecommendationLimit, "maximum number of recommended skills")
	cmd.Flags().IntP("workers", "w", 1, "score the corpus with this many workers")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func readScoreInput(stdin io.Reader, path string) (scoreInput, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return scoreInput{}, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in scoreInput
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return scoreInput{}, fmt.Errorf("decode input: %w", err)
	}
	return in, nil
}

func score(cmd *cobra.Command, in scoreInput, limit, workers int) (scoreOutput, error) {
	c := in.Candidate.Snapshot()
	jobs := job.NormalizeAll(in.Jobs)

	if workers <= 1 {
		return scoreOutput{
			Matches:         matching.Rank(c, jobs),
			Recommendations: matching.Recommend(c, jobs, limit),
		}, nil
	}

	ranked, err := matching.RankConcurrent(cmd.Context(), workers, c, jobs)
	if err != nil {
		return scoreOutput{}, err
	}
	recs, err := matching.RecommendConcurrent(cmd.Context(), workers, c, jobs, limit)
	if err != nil {
		return scoreOutput{}, err
	}
	return scoreOutput{Matches: ranked, Recommendations: recs}, nil
}
