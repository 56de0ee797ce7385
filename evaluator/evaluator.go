// Package evaluator runs batches of simulations in parallel across a
// bounded worker pool, following the work-stealing errgroup pattern
// used by the reference service's parallel data-fetch layer.
package evaluator

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/hunterforge/core/hflog"
	"github.com/hunterforge/core/hunters"
	"github.com/hunterforge/core/metrics"
)

// EvaluateBatch runs runsPerCandidate simulations for every candidate
// build, in parallel across up to maxWorkers goroutines (0 means
// runtime.GOMAXPROCS), and returns one aggregated BuildResult per
// candidate in the same order they were given. Work is split per
// candidate: each candidate gets one goroutine, and its runs execute
// serially inside it.
func EvaluateBatch(ctx context.Context, candidates []hunters.BuildConfig, runsPerCandidate, maxWorkers int) ([]hunters.BuildResult, error) {
	if maxWorkers <= 0 {
		maxWorkers = runtime.GOMAXPROCS(0)
	}
	sem := semaphore.NewWeighted(int64(maxWorkers))
	g, gctx := errgroup.WithContext(ctx)

	out := make([]hunters.BuildResult, len(candidates))
	for i, build := range candidates {
		i, build := i, build
		if err := sem.Acquire(gctx, 1); err != nil {
			return nil, err
		}
		g.Go(func() error {
			defer sem.Release(1)
			result := evaluateOne(build, int64(i), runsPerCandidate)
			out[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		hflog.Error("batch evaluation failed", "error", err)
		return nil, err
	}
	return out, nil
}

// lootValue weights rarity 1/3/10 (common/uncommon/rare) into a single
// comparable scalar behind MeanLootValue and AvgLootPerHour, which the
// successive-halving composite score reads. The optimizer's loot top-K
// heap ranks on the unweighted common+uncommon+rare sum instead.
func lootValue(r hunters.RunResult) float64 {
	return r.Common + r.Uncommon*3 + r.Rare*10
}

func evaluateOne(build hunters.BuildConfig, buildIndex int64, runs int) hunters.BuildResult {
	result := hunters.BuildResult{Build: build}
	result.Runs = make([]hunters.RunResult, runs)

	var sumSurvival, sumStages, sumCommon, sumUncommon, sumRare, sumXP, sumLoot, sumDamage float64
	minStages := -1
	maxStages := 0
	survived := 0
	rejected := false

	for runIdx := 0; runIdx < runs; runIdx++ {
		r := hunters.Simulate(build, buildIndex, int64(runIdx))
		result.Runs[runIdx] = r
		if r.Error {
			rejected = true
			continue
		}
		sumSurvival += r.SurvivalSeconds
		sumStages += float64(r.StagesCleared)
		sumCommon += r.Common
		sumUncommon += r.Uncommon
		sumRare += r.Rare
		sumXP += r.XP
		sumLoot += lootValue(r)
		sumDamage += r.TotalDamage
		if r.StagesCleared > maxStages {
			maxStages = r.StagesCleared
		}
		if minStages < 0 || r.StagesCleared < minStages {
			minStages = r.StagesCleared
		}
		survived++
	}
	if minStages < 0 {
		minStages = 0
	}

	if rejected && survived == 0 {
		metrics.BuildsRejected.Inc()
	}

	if survived > 0 {
		n := float64(survived)
		result.MeanSurvival = sumSurvival / n
		result.MeanStages = sumStages / n
		result.MeanCommon = sumCommon / n
		result.MeanUncommon = sumUncommon / n
		result.MeanRare = sumRare / n
		result.MeanXP = sumXP / n
		result.MeanLootValue = sumLoot / n
		result.MeanDamage = sumDamage / n
		if result.MeanSurvival > 0 {
			result.AvgLootPerHour = result.MeanLootValue * (3600 / result.MeanSurvival)
		}
	}
	result.MinStages = minStages
	result.MaxStages = maxStages
	result.SurvivalRate = float64(survived) / float64(runs)
	return result
}
