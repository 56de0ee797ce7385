package hunters

import "math"

// gadgetMult replicates the reference's gadget_mult(level): a tiny
// linear bonus with a milestone kicker every 10 levels.
func gadgetMult(level float64) float64 {
	return (1 + level*0.003) * math.Pow(1.002, math.Floor(level/10))
}

// BuildMeleeStats ports Borge.__create__'s layered formulas verbatim:
// a flat base term, then soul_of_ares/relic/gem/gadget/legacy-of-ultima
// multiplicative layers in the reference's exact order, then flat
// inscryption adds last. The fields populated here are the PRE-GETTER
// "_power"/"_damage_reduction"/etc. base values; melee.go applies the
// reference's getter-time overrides (atlas_protocol, born_for_battle,
// the catch-up gem, fires_of_war) on top of these at combat time.
func BuildMeleeStats(b BuildConfig) DerivedStats {
	level := float64(b.Level)
	baseHP := float64(b.Stats["hp"])
	basePower := float64(b.Stats["power"])
	baseRegen := float64(b.Stats["regen"])
	baseDR := float64(b.Stats["damage_reduction"])
	baseEvade := float64(b.Stats["evade_chance"])
	baseEffect := float64(b.Stats["effect_chance"])
	baseSpecialChance := float64(b.Stats["special_chance"])
	baseSpecialDamage := float64(b.Stats["special_damage"])
	baseSpeed := float64(b.Stats["speed"])

	soulOfAres := float64(b.Attributes["soul_of_ares"])
	essenceOfYlith := float64(b.Attributes["essence_of_ylith"])
	spartanLineage := float64(b.Attributes["spartan_lineage"])
	helltouchBarrier := float64(b.Attributes["helltouch_barrier"])
	explosivePunches := float64(b.Attributes["explosive_punches"])
	bookOfBaal := float64(b.Attributes["book_of_baal"])
	superiorSensors := float64(b.Attributes["superior_sensors"])
	soulOfHermes := float64(b.Attributes["soul_of_hermes"])
	soulOfTheMinotaur := float64(b.Attributes["soul_of_the_minotaur"])

	legacyOfUltima := float64(b.Talents["legacy_of_ultima"])
	talentDumpMult := 1 + legacyOfUltima*0.01

	diskOfDawn := float64(b.Relics["disk_of_dawn"])
	lrac := float64(b.Relics["long_range_artillery_crawler"])

	creationNode1 := float64(b.Gems["creation_node_#1"])
	creationNode2 := float64(b.Gems["creation_node_#2"])
	creationNode3 := float64(b.Gems["creation_node_#3"])
	innovationNode3 := float64(b.Gems["innovation_node_#3"])

	gadgetHPMult := gadgetMult(float64(b.Gadgets["wrench_of_gore"])) *
		gadgetMult(float64(b.Gadgets["zaptron_533"])) *
		gadgetMult(float64(b.Gadgets["anchor_of_ages"]))
	gadgetPowerMult := gadgetHPMult
	gadgetRegenMult := gadgetHPMult

	hpBase := 43 + baseHP*(2.50+0.01*math.Floor(baseHP/5))
	hpMultiplied := hpBase *
		(1 + soulOfAres*0.01) *
		(1 + diskOfDawn*0.03) *
		(1 + 0.015*(level-39)*creationNode3) *
		(1 + 0.02*creationNode2) *
		(1 + 0.2*creationNode1) *
		gadgetHPMult * talentDumpMult
	maxHP := hpMultiplied + float64(b.Inscryptions["i3"])*6 + float64(b.Inscryptions["i27"])*59.15

	power := (3 + basePower*(0.5+0.01*math.Floor(basePower/10)) +
		float64(b.Inscryptions["i13"])*1 + float64(b.Talents["impeccable_impacts"])*2) *
		(1 + soulOfAres*0.002) *
		(1 + float64(b.Inscryptions["i60"])*0.03) *
		(1 + lrac*0.03) *
		(1 + 0.01*(level-39)*creationNode3) *
		(1 + 0.02*creationNode2) *
		(1 + 0.03*innovationNode3) *
		(1 + soulOfTheMinotaur*0.01) *
		gadgetPowerMult * talentDumpMult

	minotaurDR := soulOfTheMinotaur * 0.01

	regen := (0.02 + baseRegen*(0.03+0.01*math.Floor(baseRegen/30))) *
		(1 + essenceOfYlith*0.009) *
		(1 + 0.005*(level-39)*creationNode3) *
		(1 + 0.02*creationNode2) *
		gadgetRegenMult * talentDumpMult

	dr := (baseDR*0.0144 + spartanLineage*0.015 + float64(b.Inscryptions["i24"])*0.004 + soulOfHermes*0.002) *
		(1 + 0.02*creationNode2)

	evade := 0.01 + baseEvade*0.0034 + superiorSensors*0.016

	effect := (0.04 + baseEffect*0.005 + superiorSensors*0.012 + float64(b.Inscryptions["i11"])*0.02 + 0.03*innovationNode3) *
		(1 + 0.02*creationNode2)

	special := (0.05 + baseSpecialChance*0.0018 + explosivePunches*0.044 + float64(b.Inscryptions["i4"])*0.0065 + soulOfHermes*0.004) *
		(1 + 0.02*creationNode2)

	specialDamage := 1.30 + baseSpecialDamage*0.01 + explosivePunches*0.08

	speed := 5 - baseSpeed*0.03 - float64(b.Inscryptions["i23"])*0.04

	lifesteal := bookOfBaal * 0.0111

	_ = helltouchBarrier // read directly from build in melee.go's reflect-barrier proc

	return DerivedStats{
		MaxHP:             maxHP,
		Power:             power,
		RegenPerTick:      regen,
		DamageReduction:   dr,
		EvadeChance:       evade,
		EffectChance:      effect,
		SpecialChance:     special,
		SpecialDamageMult: specialDamage,
		Speed:             speed,
		Lifesteal:         lifesteal,
		MinotaurDR:        minotaurDR,
	}
}

func capPercent(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
