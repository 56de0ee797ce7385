package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hunterforge/core/hunters"
)

type fixedRNG struct {
	vals []float64
	i    int
}

func (f *fixedRNG) Float64() float64 {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	return v
}

func TestGenerateExhaustiveDedupes(t *testing.T) {
	builds := Generate(hunters.KindMelee, 10, 4, 2, 500, &fixedRNG{vals: []float64{0.1, 0.5, 0.9}})
	seen := map[string]bool{}
	for _, b := range builds {
		key := b.CanonicalKey()
		assert.False(t, seen[key], "exhaustive generation must not produce duplicate canonical builds")
		seen[key] = true
	}
	assert.NotEmpty(t, builds)
}

func TestGenerateExhaustiveRespectsPrerequisites(t *testing.T) {
	builds := Generate(hunters.KindMelee, 10, 4, 0, 500, &fixedRNG{vals: []float64{0.1}})
	for _, b := range builds {
		if b.Attributes["weakspot_analysis"] > 0 {
			assert.Greater(t, b.Attributes["superior_sensors"], 0, "weakspot_analysis requires superior_sensors")
		}
	}
}

func TestGenerateRandomWalkRespectsBudget(t *testing.T) {
	rng := &fixedRNG{vals: []float64{0.0, 0.25, 0.5, 0.75, 0.99}}
	builds := Generate(hunters.KindSalvo, 50, 40, 20, 30, rng)
	for _, b := range builds {
		attrSpent := 0
		for _, v := range b.Attributes {
			attrSpent += v
		}
		talentSpent := 0
		for _, v := range b.Talents {
			talentSpent += v
		}
		assert.LessOrEqual(t, attrSpent, 40)
		assert.LessOrEqual(t, talentSpent, 20)
		assert.NoError(t, hunters.Validate(b))
	}
}

func TestGenerateRandomWalkDedupes(t *testing.T) {
	rng := &fixedRNG{vals: []float64{0.05, 0.15, 0.35, 0.55, 0.75, 0.95}}
	builds := Generate(hunters.KindMultistrike, 60, 50, 30, 25, rng)
	seen := map[string]bool{}
	for _, b := range builds {
		key := b.CanonicalKey()
		assert.False(t, seen[key], "random walk generation must not yield duplicate canonical builds")
		seen[key] = true
	}
}

func TestExtendElitePatternKeepsExistingAllocationAndDoesNotMutateSource(t *testing.T) {
	elite := hunters.NewBuildConfig(hunters.KindMelee, 10)
	elite.Attributes["spartan_lineage"] = 5

	extended := ExtendElitePattern(elite, 20, 10, &fixedRNG{vals: []float64{0.3, 0.6, 0.1}}, 0)

	assert.Equal(t, 5, elite.Attributes["spartan_lineage"], "ExtendElitePattern must not mutate the source build")
	assert.GreaterOrEqual(t, extended.Attributes["spartan_lineage"], 5)
}

func TestExtendElitePatternMutationPreservesTotalSpend(t *testing.T) {
	elite := hunters.NewBuildConfig(hunters.KindMelee, 10)
	elite.Attributes["spartan_lineage"] = 5
	elite.Attributes["timeless_mastery"] = 2

	before := 0
	for _, v := range elite.Attributes {
		before += v
	}

	extended := ExtendElitePattern(elite, 7, 0, &fixedRNG{vals: []float64{0.0, 0.2, 0.4, 0.6}}, 1.0)

	after := 0
	for _, v := range extended.Attributes {
		after += v
	}
	assert.Equal(t, before, after, "a pure mutation with no extra budget must conserve total spend")
}
