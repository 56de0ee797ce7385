package evaluator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hunterforge/core/hunters"
)

func TestEvaluateBatchPreservesOrder(t *testing.T) {
	candidates := []hunters.BuildConfig{
		hunters.NewBuildConfig(hunters.KindMelee, 10),
		hunters.NewBuildConfig(hunters.KindMultistrike, 20),
		hunters.NewBuildConfig(hunters.KindSalvo, 30),
	}
	candidates[0].Attributes["power"] = 5
	candidates[1].Attributes["power"] = 5
	candidates[2].Attributes["power"] = 5

	results, err := EvaluateBatch(context.Background(), candidates, 3, 2)

	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, candidates[i].Kind, r.Build.Kind)
	}
}

func TestEvaluateBatchAggregatesAcrossRuns(t *testing.T) {
	b := hunters.NewBuildConfig(hunters.KindMelee, 20)
	b.Stats["power"] = 10
	b.Stats["hp"] = 10

	results, err := EvaluateBatch(context.Background(), []hunters.BuildConfig{b}, 5, 0)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.GreaterOrEqual(t, results[0].SurvivalRate, 0.0)
	assert.LessOrEqual(t, results[0].SurvivalRate, 1.0)
}

func TestEvaluateBatchMarksRejectedBuilds(t *testing.T) {
	b := hunters.NewBuildConfig(hunters.KindSalvo, 10)
	b.Talents["legacy_of_ultima"] = 1

	results, err := EvaluateBatch(context.Background(), []hunters.BuildConfig{b}, 3, 1)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].SurvivalRate)
}
