// Package optimizer drives the progressive-curriculum evolutionary
// search: it walks a level's curriculum tiers, evaluates each tier's
// candidates with successive halving (or a fixed trial count), promotes
// elites into the next tier, and streams progress while keeping five
// running top-K leaderboards, one per ranking metric.
package optimizer

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hunterforge/core/config"
	"github.com/hunterforge/core/evaluator"
	"github.com/hunterforge/core/generator"
	"github.com/hunterforge/core/hflog"
	"github.com/hunterforge/core/hunters"
	"github.com/hunterforge/core/metrics"
)

// Mode names one of the named evaluation presets in
// config.OptimizerConfig.Presets.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeFast    Mode = "fast"
	ModeMassive Mode = "massive"
	ModeUltra   Mode = "ultra"
)

// Request describes one optimization run.
type Request struct {
	Kind                 hunters.HunterKind
	Level                int
	BaseConfig           *hunters.BuildConfig
	NumSims              int
	BuildsPerTier        int
	UseProgressive       bool
	UseSuccessiveHalving bool
	Mode                 Mode
	TopK                 int
}

// AggregateResult mirrors the language-boundary AggregateResult shape:
// a flattened view of one BuildResult's means/extrema, used for both
// the IRL baseline comparison and every BuildSummary entry.
type AggregateResult struct {
	AvgStage        float64 `json:"avg_stage"`
	MinStage        int     `json:"min_stage"`
	MaxStage        int     `json:"max_stage"`
	AvgKills        float64 `json:"avg_kills"`
	AvgDamage       float64 `json:"avg_damage"`
	AvgTime         float64 `json:"avg_time"`
	AvgXP           float64 `json:"avg_xp"`
	AvgLoot         float64 `json:"avg_loot"`
	AvgLootCommon   float64 `json:"avg_loot_common"`
	AvgLootUncommon float64 `json:"avg_loot_uncommon"`
	AvgLootRare     float64 `json:"avg_loot_rare"`
	AvgLootPerHour  float64 `json:"avg_loot_per_hour"`
	SurvivalRate    float64 `json:"survival_rate"`
}

func toAggregateResult(r hunters.BuildResult) AggregateResult {
	return AggregateResult{
		AvgStage:        r.MeanStages,
		MinStage:        r.MinStages,
		MaxStage:        r.MaxStages,
		AvgKills:        0,
		AvgDamage:       r.MeanDamage,
		AvgTime:         r.MeanSurvival,
		AvgXP:           r.MeanXP,
		AvgLoot:         r.MeanCommon + r.MeanUncommon + r.MeanRare,
		AvgLootCommon:   r.MeanCommon,
		AvgLootUncommon: r.MeanUncommon,
		AvgLootRare:     r.MeanRare,
		AvgLootPerHour:  r.AvgLootPerHour,
		SurvivalRate:    r.SurvivalRate,
	}
}

// BuildSummary is one entry in a top-10 leaderboard or the best-overall
// slot: a build's point allocation plus its aggregate performance.
type BuildSummary struct {
	Build      hunters.BuildConfig `json:"-"`
	Talents    map[string]int      `json:"talents"`
	Attributes map[string]int      `json:"attributes"`
	Metrics    AggregateResult     `json:"metrics"`
}

func toBuildSummary(r hunters.BuildResult) BuildSummary {
	return BuildSummary{
		Build:      r.Build,
		Talents:    r.Build.Talents,
		Attributes: r.Build.Attributes,
		Metrics:    toAggregateResult(r),
	}
}

// GenerationRecord is one tier's entry in FinalReport.GenerationHistory.
type GenerationRecord struct {
	Generation        int            `json:"generation"`
	TierName          string         `json:"tier_name"`
	TalentPoints      int            `json:"talent_points"`
	AttributePoints   int            `json:"attribute_points"`
	BuildsTested      int            `json:"builds_tested"`
	BestMaxStage      int            `json:"best_max_stage"`
	BestAvgStage      float64        `json:"best_avg_stage"`
	BestTalents       map[string]int `json:"best_talents"`
	BestAttributes    map[string]int `json:"best_attributes"`
	Elapsed           float64        `json:"elapsed"`
	DuplicatesSkipped int            `json:"duplicates_skipped"`
	UniqueBuildsTotal int            `json:"unique_builds_total"`
}

// Timing is FinalReport's wall-clock/throughput summary.
type Timing struct {
	TotalTime  float64 `json:"total_time"`
	SimsPerSec float64 `json:"sims_per_sec"`
	Tested     int     `json:"tested"`
}

// ProgressRecord is streamed on Progress during a run, one per tier
// completed, so a caller can render a live curriculum sweep.
type ProgressRecord struct {
	Generation         int     `json:"generation"`
	TotalGenerations   int     `json:"total_generations"`
	Progress           float64 `json:"progress"`
	BuildsTested       int     `json:"builds_tested"`
	BuildsInGen        int     `json:"builds_in_gen"`
	BuildsPerGen       int     `json:"builds_per_gen"`
	TotalSims          int     `json:"total_sims"`
	Elapsed            float64 `json:"elapsed"`
	SimsPerSec         float64 `json:"sims_per_sec"`
	TierName           string  `json:"tier_name"`
	BestStage          int     `json:"best_stage"`
	GenerationComplete bool    `json:"generation_complete"`
}

// FinalReport is Optimize's terminal output.
type FinalReport struct {
	Status            string             `json:"status"`
	Timing            Timing             `json:"timing"`
	IRLBaseline       *AggregateResult   `json:"irl_baseline"`
	BestBuild         BuildSummary       `json:"best_build"`
	Top10ByMaxStage   []BuildSummary     `json:"top_10_by_max_stage"`
	Top10ByAvgStage   []BuildSummary     `json:"top_10_by_avg_stage"`
	Top10ByLoot       []BuildSummary     `json:"top_10_by_loot"`
	Top10ByDamage     []BuildSummary     `json:"top_10_by_damage"`
	Top10ByXP         []BuildSummary     `json:"top_10_by_xp"`
	GenerationHistory []GenerationRecord `json:"generation_history"`
}

// Optimize runs the full curriculum for req, emitting a ProgressRecord
// after every tier and returning the final report once the last tier's
// evaluation completes.
func Optimize(ctx context.Context, req Request, progress chan<- ProgressRecord) (FinalReport, error) {
	start := timeNow()
	ctx = hflog.WithRunID(ctx, uuid.New().String())
	logger := hflog.FromContext(ctx)

	optCfg, err := config.LoadOptimizerConfigFromEnv()
	if err != nil {
		return FinalReport{}, err
	}
	preset := optCfg.Presets[string(req.Mode)]
	if preset.Rounds == 0 {
		preset = optCfg.Presets["normal"]
	}

	topK := req.TopK
	if topK <= 0 {
		topK = 10
	}

	var irlBaseline *AggregateResult
	if req.BaseConfig != nil && hasAnyAllocation(*req.BaseConfig) {
		results, err := evaluator.EvaluateBatch(ctx, []hunters.BuildConfig{*req.BaseConfig}, req.NumSims, optCfg.MaxWorkers)
		if err != nil {
			return FinalReport{}, err
		}
		agg := toAggregateResult(results[0])
		irlBaseline = &agg
	}

	tiers := CurriculumFor(req.Level)
	if !req.UseProgressive {
		tiers = []Tier{{1.00, "100%"}}
	}

	heapMaxStage := newTopKHeap(topK)
	heapAvgStage := newTopKHeap(topK)
	heapLoot := newTopKHeap(topK)
	heapDamage := newTopKHeap(topK)
	heapXP := newTopKHeap(topK)

	var elites []hunters.BuildConfig
	var history []GenerationRecord
	var best hunters.BuildResult
	totalTested := 0
	totalSims := 0

	for tierIdx, tier := range tiers {
		tierStart := timeNow()
		metrics.ActiveTier.Set(float64(tierIdx))

		talentPts := int(tier.Fraction * float64(req.Level))
		attrPts := int(3 * tier.Fraction * float64(req.Level))

		rng := hunters.NewRNG(int64(tierIdx), int64(len(elites)))
		candidates, duplicatesSkipped, uniqueTotal := generateTierCandidates(req, attrPts, talentPts, elites, rng, optCfg)

		var results []hunters.BuildResult
		if req.UseSuccessiveHalving {
			results, err = successiveHalving(ctx, candidates, preset, optCfg.MaxWorkers)
		} else {
			results, err = evaluator.EvaluateBatch(ctx, candidates, req.NumSims, optCfg.MaxWorkers)
			sort.Slice(results, func(i, j int) bool { return compositeScore(results[i]) > compositeScore(results[j]) })
		}
		if err != nil {
			return FinalReport{}, err
		}

		totalTested += len(results)
		for _, r := range results {
			totalSims += len(r.Runs)
		}

		isFinalTier := tierIdx == len(tiers)-1
		var tierBestMaxStage int
		var tierBestAvgStage float64
		var tierBestTalents, tierBestAttrs map[string]int

		for _, r := range results {
			if r.MaxStages > tierBestMaxStage {
				tierBestMaxStage = r.MaxStages
				tierBestTalents = r.Build.Talents
				tierBestAttrs = r.Build.Attributes
			}
			if r.MeanStages > tierBestAvgStage {
				tierBestAvgStage = r.MeanStages
			}
			if best.Build.Kind == "" || r.MeanStages > best.MeanStages {
				best = r
			}
			if isFinalTier {
				heapMaxStage.Offer(float64(r.MaxStages), r)
				heapAvgStage.Offer(r.MeanStages, r)
				heapLoot.Offer(r.MeanCommon+r.MeanUncommon+r.MeanRare, r)
				heapDamage.Offer(r.MeanDamage, r)
				heapXP.Offer(r.MeanXP, r)
				metrics.BuildsTested.Inc()
			}
		}

		elites = promoteElites(results, req.BuildsPerTier)

		history = append(history, GenerationRecord{
			Generation:        tierIdx,
			TierName:          tier.Label,
			TalentPoints:      talentPts,
			AttributePoints:   attrPts,
			BuildsTested:      len(results),
			BestMaxStage:      tierBestMaxStage,
			BestAvgStage:      tierBestAvgStage,
			BestTalents:       tierBestTalents,
			BestAttributes:    tierBestAttrs,
			Elapsed:           timeNow().Sub(tierStart).Seconds(),
			DuplicatesSkipped: duplicatesSkipped,
			UniqueBuildsTotal: uniqueTotal,
		})

		if progress != nil {
			elapsed := timeNow().Sub(start).Seconds()
			simsPerSec := 0.0
			if elapsed > 0 {
				simsPerSec = float64(totalSims) / elapsed
			}
			select {
			case progress <- ProgressRecord{
				Generation: tierIdx, TotalGenerations: len(tiers),
				Progress:     100 * float64(tierIdx+1) / float64(len(tiers)),
				BuildsTested: totalTested, BuildsInGen: len(results), BuildsPerGen: req.BuildsPerTier,
				TotalSims: totalSims, Elapsed: elapsed, SimsPerSec: simsPerSec,
				TierName: tier.Label, BestStage: tierBestMaxStage, GenerationComplete: true,
			}:
			case <-ctx.Done():
				return FinalReport{}, ctx.Err()
			}
		}
		logger.Info("tier complete", "tier", tier.Label, "candidates", len(candidates), "evaluated", len(results))
	}

	elapsed := timeNow().Sub(start).Seconds()
	simsPerSec := 0.0
	if elapsed > 0 {
		simsPerSec = float64(totalSims) / elapsed
	}

	return FinalReport{
		Status:            "complete",
		Timing:            Timing{TotalTime: elapsed, SimsPerSec: simsPerSec, Tested: totalTested},
		IRLBaseline:       irlBaseline,
		BestBuild:         toBuildSummary(best),
		Top10ByMaxStage:   sortedSummaries(heapMaxStage),
		Top10ByAvgStage:   sortedSummaries(heapAvgStage),
		Top10ByLoot:       sortedSummaries(heapLoot),
		Top10ByDamage:     sortedSummaries(heapDamage),
		Top10ByXP:         sortedSummaries(heapXP),
		GenerationHistory: history,
	}, nil
}

func sortedSummaries(h *topKHeap) []BuildSummary {
	results := h.Results()
	out := make([]BuildSummary, len(results))
	for i, r := range results {
		out[i] = toBuildSummary(r)
	}
	return out
}

func hasAnyAllocation(b hunters.BuildConfig) bool {
	for _, v := range b.Talents {
		if v != 0 {
			return true
		}
	}
	for _, v := range b.Attributes {
		if v != 0 {
			return true
		}
	}
	return false
}

// promoteElites carries forward up to max(100, 10% of buildsPerTier)
// survivors from this tier's results, sorted by max_stage, for the
// next tier's extend_elite pass.
func promoteElites(results []hunters.BuildResult, buildsPerTier int) []hunters.BuildConfig {
	sorted := make([]hunters.BuildResult, len(results))
	copy(sorted, results)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MaxStages > sorted[j].MaxStages })

	limit := buildsPerTier / 10
	if limit < 100 {
		limit = 100
	}
	if limit > len(sorted) {
		limit = len(sorted)
	}
	out := make([]hunters.BuildConfig, limit)
	for i := 0; i < limit; i++ {
		out[i] = sorted[i].Build
	}
	return out
}

// generateTierCandidates extends any prior tier's elites up to this
// tier's budget and tops up the candidate pool with fresh constrained
// random-walk builds, falling back to exhaustive enumeration for tiny
// budgets via generator.Generate. Returns the deduplicated candidates
// plus how many duplicate draws were skipped and the running unique
// total, for the tier's GenerationRecord.
func generateTierCandidates(req Request, attrPts, talentPts int, elites []hunters.BuildConfig, rng generator.RandWalkRNG, optCfg config.OptimizerConfig) ([]hunters.BuildConfig, int, int) {
	var out []hunters.BuildConfig
	seen := map[string]bool{}
	duplicatesSkipped := 0

	for _, elite := range elites {
		extended := generator.ExtendElitePattern(elite, attrPts, talentPts, rng, 0.1)
		key := extended.CanonicalKey()
		if seen[key] {
			duplicatesSkipped++
			continue
		}
		seen[key] = true
		out = append(out, extended)
	}

	remaining := req.BuildsPerTier - len(out)
	if remaining > 0 {
		fresh := generator.Generate(req.Kind, req.Level, attrPts, talentPts, remaining, rng)
		for _, b := range fresh {
			key := b.CanonicalKey()
			if seen[key] {
				duplicatesSkipped++
				continue
			}
			seen[key] = true
			out = append(out, b)
		}
	}

	if optCfg.AdaptiveLargeTier && len(out) > optCfg.AdaptiveThreshold {
		out = out[:optCfg.AdaptiveThreshold]
	}

	return out, duplicatesSkipped, len(seen)
}

// timeNow is the sole wall-clock read in the optimizer, isolated so
// Timing/GenerationRecord elapsed fields stay testable.
func timeNow() time.Time { return time.Now() }
