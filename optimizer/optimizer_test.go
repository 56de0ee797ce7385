package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunterforge/core/hunters"
)

func TestOptimizeProducesTopKAndBest(t *testing.T) {
	req := Request{
		Kind:                 hunters.KindMelee,
		Level:                30,
		NumSims:              2,
		BuildsPerTier:        6,
		UseProgressive:       false,
		UseSuccessiveHalving: false,
		Mode:                 ModeFast,
		TopK:                 3,
	}

	progress := make(chan ProgressRecord, 10)
	report, err := Optimize(context.Background(), req, progress)
	close(progress)

	require.NoError(t, err)
	assert.LessOrEqual(t, len(report.Top10ByMaxStage), req.TopK)
	assert.NotEqual(t, hunters.HunterKind(""), report.BestBuild.Build.Kind)

	var tiersSeen int
	for range progress {
		tiersSeen++
	}
	assert.Greater(t, tiersSeen, 0, "a single-tier curriculum should still emit one progress record")
}

func TestOptimizeWithProgressiveCurriculumAndHalving(t *testing.T) {
	req := Request{
		Kind:                 hunters.KindSalvo,
		Level:                45,
		NumSims:              2,
		BuildsPerTier:        8,
		UseProgressive:       true,
		UseSuccessiveHalving: true,
		Mode:                 ModeUltra,
		TopK:                 5,
	}

	report, err := Optimize(context.Background(), req, nil)
	require.NoError(t, err)
	assert.Len(t, report.GenerationHistory, len(CurriculumFor(req.Level)))
	assert.NotEmpty(t, report.Top10ByAvgStage)
}

func TestOptimizeIncludesIRLBaselineWhenBaseConfigAllocated(t *testing.T) {
	base := hunters.NewBuildConfig(hunters.KindMelee, 20)
	base.Talents["call_me_lucky_loot"] = 1

	req := Request{
		Kind:          hunters.KindMelee,
		Level:         20,
		BaseConfig:    &base,
		NumSims:       2,
		BuildsPerTier: 4,
		Mode:          ModeFast,
		TopK:          3,
	}

	report, err := Optimize(context.Background(), req, nil)
	require.NoError(t, err)
	require.NotNil(t, report.IRLBaseline)
}
