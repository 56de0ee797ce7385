package hunters

import "math"

// BuildMultistrikeStats ports Ozzy.__create__ verbatim: Living off the
// Land / Exo Piercers / Blessings of the Cat multiplicative layers, an
// independent Blessings of the Scarab DR layer applied separately in
// combat (see multistrike.go), and the WASM-calibrated level multiplier
// applied to power but NOT to HP or regen. Fields populated here are
// the PRE-GETTER base values; multistrike.go applies deal_with_death /
// cycle_of_death (scaled by TimesRevived) and the catch-up gem at
// combat time.
func BuildMultistrikeStats(b BuildConfig) DerivedStats {
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

	lotl := float64(b.Attributes["living_off_the_land"])
	exoPiercers := float64(b.Attributes["exo_piercers"])
	wingsOfIbu := float64(b.Attributes["wings_of_ibu"])
	extermination := float64(b.Attributes["extermination_protocol"])
	scarab := float64(b.Attributes["blessings_of_the_scarab"])
	cat := float64(b.Attributes["blessings_of_the_cat"])
	shimmeringScorpion := float64(b.Attributes["shimmering_scorpion"])

	legacyOfUltima := float64(b.Talents["legacy_of_ultima"])
	thousandNeedles := float64(b.Talents["thousand_needles"])

	lotlMult := 1 + lotl*0.02
	exoPowerMult := 1 + exoPiercers*0.012
	catPowerMult := 1 + cat*0.02
	catSpeedMult := 1 - cat*0.004
	talentDumpMult := 1 + legacyOfUltima*0.01
	scarabDR := scarab * 0.01
	levelMult := math.Pow(1.001, level) * math.Pow(1.02, math.Floor(level/10))

	iridianMult := 1.0
	if b.Bonuses["iridian_card"] > 0 {
		iridianMult = 1.03
	}
	diskOfDawn := relicOrAlias(b, "disk_of_dawn", "r4")
	beeGone := relicOrAlias(b, "bee_gone_companion_drone", "r17")
	innovationNode3 := float64(b.Gems["innovation_node_#3"])

	gadgetHPMult := gadgetMult(float64(b.Gadgets["zaptron"])) *
		gadgetMult(float64(b.Gadgets["zaptron_533"])) *
		gadgetMult(float64(b.Gadgets["anchor_of_ages"]))
	gadgetPowerMult := gadgetHPMult
	gadgetRegenMult := gadgetHPMult

	maxHP := (16 + baseHP*(2+0.03*math.Floor(baseHP/5))) *
		lotlMult * talentDumpMult * (1 + diskOfDawn*0.03) * gadgetHPMult *
		(1 + 0.03*innovationNode3) * iridianMult

	power := (2 + basePower*(0.3+0.01*math.Floor(basePower/10))) *
		levelMult * exoPowerMult * catPowerMult * talentDumpMult *
		(1 + beeGone*0.03) * (1 + 0.03*innovationNode3) * gadgetPowerMult * iridianMult

	regen := (0.1 + baseRegen*(0.05+0.01*math.Floor(baseRegen/30))) *
		lotlMult * talentDumpMult * gadgetRegenMult *
		(1 + 0.25*innovationNode3) * iridianMult

	dr := baseDR*0.0035 + wingsOfIbu*0.026 + float64(b.Inscryptions["i37"])*0.0111 + float64(b.Inscryptions["i86"])*0.002
	evade := 0.05 + baseEvade*0.0062 + wingsOfIbu*0.005
	effect := 0.04 + baseEffect*0.0035 + extermination*0.028 + float64(b.Inscryptions["i31"])*0.006 + float64(b.Inscryptions["i92"])*0.002
	special := 0.05 + baseSpecialChance*0.0038 + float64(b.Inscryptions["i40"])*0.005 + 0.03*innovationNode3
	specialDamage := 0.25 + baseSpecialDamage*0.01
	speed := (4 - baseSpeed*0.0418 - thousandNeedles*0.06 - float64(b.Inscryptions["i36"])*0.03) * catSpeedMult
	lifesteal := shimmeringScorpion * 0.033

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
		ScarabDR:          scarabDR,
	}
}

// relicOrAlias reads a relic that the reference source accepts under
// either its modern name or its legacy "rNN" alias.
func relicOrAlias(b BuildConfig, name, alias string) float64 {
	if v := b.Relics[name]; v != 0 {
		return float64(v)
	}
	return float64(b.Relics[alias])
}
