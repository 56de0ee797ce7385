package optimizer

import (
	"context"
	"math"
	"sort"

	"github.com/hunterforge/core/config"
	"github.com/hunterforge/core/evaluator"
	"github.com/hunterforge/core/hunters"
)

// compositeScore is the successive-halving within-tier ranking metric:
// mostly how deep a build survives on average, tempered by a capped,
// rescaled loot-per-hour term so loot throughput can still separate
// builds that survive to similar depths.
func compositeScore(r hunters.BuildResult) float64 {
	normalizedLoot := math.Min(r.AvgLootPerHour/1e6, 1.0) * 300
	return 0.7*r.MeanStages + 0.3*normalizedLoot
}

// successiveHalving re-simulates candidates across preset.Rounds
// rounds, doubling the per-candidate trial count each round (so
// surviving candidates get a progressively more confident estimate)
// while keeping only the top preset.SurvivalRate fraction ranked by
// compositeScore, mirroring the reference optimizer's
// evaluate_builds_successive_halving round-robin.
func successiveHalving(ctx context.Context, candidates []hunters.BuildConfig, preset config.HalvingPreset, maxWorkers int) ([]hunters.BuildResult, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	trials := preset.BaseSims
	if trials < 1 {
		trials = 1
	}
	survivors := candidates
	var results []hunters.BuildResult

	rounds := preset.Rounds
	if rounds < 1 {
		rounds = 1
	}

	for round := 0; round < rounds && len(survivors) > 0; round++ {
		var err error
		results, err = evaluator.EvaluateBatch(ctx, survivors, trials, maxWorkers)
		if err != nil {
			return nil, err
		}

		sort.Slice(results, func(i, j int) bool {
			return compositeScore(results[i]) > compositeScore(results[j])
		})

		if round == rounds-1 || len(results) <= 1 {
			break
		}
		keep := int(float64(len(results)) * preset.SurvivalRate)
		if keep < 1 {
			keep = 1
		}
		results = results[:keep]
		survivors = make([]hunters.BuildConfig, len(results))
		for i, r := range results {
			survivors[i] = r.Build
		}
		trials *= 2
	}

	return results, nil
}
