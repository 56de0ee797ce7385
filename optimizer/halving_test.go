package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunterforge/core/config"
	"github.com/hunterforge/core/hunters"
)

func buildsOf(n int, kind hunters.HunterKind, level int) []hunters.BuildConfig {
	out := make([]hunters.BuildConfig, n)
	for i := range out {
		out[i] = hunters.NewBuildConfig(kind, level)
	}
	return out
}

func TestSuccessiveHalvingNarrowsEachRound(t *testing.T) {
	candidates := buildsOf(20, hunters.KindMelee, 10)
	preset := config.HalvingPreset{BaseSims: 1, Rounds: 3, SurvivalRate: 0.5}

	results, err := successiveHalving(context.Background(), candidates, preset, 0)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
	assert.Len(t, results, 5, "20 candidates halved after rounds 1 and 2 leave 5 in the final round")
}

func TestSuccessiveHalvingNeverEmptiesOut(t *testing.T) {
	candidates := buildsOf(1, hunters.KindMelee, 10)
	preset := config.HalvingPreset{BaseSims: 1, Rounds: 4, SurvivalRate: 0.01}

	results, err := successiveHalving(context.Background(), candidates, preset, 0)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSuccessiveHalvingEmptyCandidates(t *testing.T) {
	preset := config.HalvingPreset{BaseSims: 1, Rounds: 2, SurvivalRate: 0.5}
	results, err := successiveHalving(context.Background(), nil, preset, 0)
	require.NoError(t, err)
	assert.Nil(t, results)
}
