package usecase

import (
	"sort"

	"github.com/CaioMS2000/github-activity/internal/domain"
	"github.com/montanaflynn/stats"
)

// Summary aggregates a batch of events for the --summary output: how many
// events of each kind, and basic statistics over the commit counts of the
// pushes in the batch.
type Summary struct {
	Total       int
	KindCounts  []KindCount // sorted by kind for deterministic output
	PushCount   int
	MeanCommits float64
	MaxCommits  float64
}

// KindCount is the number of events seen for one discriminator.
type KindCount struct {
	Kind  string
	Count int
}

// Summarize computes a Summary over the mapped events. With no push events
// in the batch the commit statistics are zero.
func Summarize(events []domain.Event) Summary {
	counts := make(map[string]int)
	var commitCounts stats.Float64Data
	for _, e := range events {
		counts[e.Kind]++
		if p, ok := e.Payload.(domain.PushPayload); ok {
			commitCounts = append(commitCounts, float64(p.CommitCount))
		}
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)

	s := Summary{Total: len(events), PushCount: len(commitCounts)}
	for _, kind := range kinds {
		s.KindCounts = append(s.KindCounts, KindCount{Kind: kind, Count: counts[kind]})
	}
	if len(commitCounts) > 0 {
		if mean, err := stats.Mean(commitCounts); err == nil {
			s.MeanCommits = mean
		}
		if max, err := stats.Max(commitCounts); err == nil {
			s.MaxCommits = max
		}
	}
	return s
}
