package hunters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUnknownKey(t *testing.T) {
	b := NewBuildConfig(KindMelee, 1)
	b.Attributes["not_a_real_attribute"] = 1

	err := Validate(b)
	var ibErr *InvalidBuildError
	assert.ErrorAs(t, err, &ibErr)
	assert.Equal(t, "unknown_key", ibErr.Violations[0].Kind)
}

func TestValidateExclusionGroup(t *testing.T) {
	b := NewBuildConfig(KindMelee, 50)
	b.Attributes["born_for_battle"] = 1
	b.Attributes["atlas_protocol"] = 1

	err := Validate(b)
	var ibErr *InvalidBuildError
	assert.ErrorAs(t, err, &ibErr)
	found := false
	for _, v := range ibErr.Violations {
		if v.Kind == "exclusion_violation" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateMissingPrereq(t *testing.T) {
	b := NewBuildConfig(KindMelee, 10)
	b.Attributes["weakspot_analysis"] = 5 // requires superior_sensors, left unallocated

	err := Validate(b)
	var ibErr *InvalidBuildError
	assert.ErrorAs(t, err, &ibErr)
	found := false
	for _, v := range ibErr.Violations {
		if v.Kind == "missing_prereq" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateOverBudget(t *testing.T) {
	b := NewBuildConfig(KindMelee, 1)
	b.Attributes["spartan_lineage"] = 20

	err := Validate(b)
	var ibErr *InvalidBuildError
	assert.ErrorAs(t, err, &ibErr)
	found := false
	for _, v := range ibErr.Violations {
		if v.Kind == "over_budget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestValidateAcceptsWellFormedBuild(t *testing.T) {
	b := NewBuildConfig(KindMelee, 50)
	b.Attributes["spartan_lineage"] = 20
	b.Attributes["superior_sensors"] = 20
	b.Attributes["weakspot_analysis"] = 10
	b.Talents["call_me_lucky_loot"] = 10

	assert.NoError(t, Validate(b))
}
