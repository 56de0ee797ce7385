package hunters

import "math"

// Base loot/XP constants ported verbatim from the reference
// calculate_final_loot()/compute_loot_multiplier()/get_xp_bonus()
// implementation. These are reverse-engineered game-balance constants,
// not derivable from first principles, so they are treated as an
// authoritative lookup table rather than re-derived.
var stageMult = map[HunterKind]float64{
	KindMelee: 1.051, KindMultistrike: 1.059, KindSalvo: 1.074,
}

const (
	baseCommon   = 0.0237
	baseUncommon = 0.0463
	baseRare     = 0.0750
)

var baseXP = map[HunterKind]float64{
	KindMelee: 2.63e13, KindMultistrike: 7.79e11, KindSalvo: 786,
}

func gadgetLoot(level float64) float64 {
	if level <= 0 {
		return 1
	}
	return math.Pow(1.005, level) * math.Pow(1.02, math.Floor(level/10))
}

// lootMultiplier composes every bonus source named in the reference's
// compute_loot_multiplier, in source order: Timeless Mastery, Shard
// Milestone, the Manifestation Core Titan relic, the tiered Research 81
// bonus, per-kind inscriptions, gadgets, loop mods, construction
// milestones, diamond cards/specials, the travel-pack IAP, the Ultima
// multiplier, per-kind Attraction Loot gems, Attraction Node #3,
// Presence of God (reading the hunter's live effect chance as a
// scalar), the Skill 6 loot bonus, and the Wastarian relic.
func lootMultiplier(b BuildConfig, effectChance float64) float64 {
	mult := 1.0

	tm := float64(b.Attributes["timeless_mastery"])
	switch b.Kind {
	case KindMelee:
		mult *= 1 + tm*0.14
	case KindMultistrike:
		mult *= 1 + tm*0.16
	case KindSalvo:
		mult *= 1 + tm*0.14
	}

	if shard := b.Bonuses["shard_milestone"]; shard > 0 {
		mult *= math.Pow(1.02, shard)
	}

	titan := float64(relicOrAlias(b, "manifestation_core_titan", "r7"))
	if titan > 0 {
		mult *= math.Pow(1.05, titan)
	}

	if r81 := b.Bonuses["research81"]; r81 >= 4 {
		if b.Kind == KindMelee || (b.Kind == KindMultistrike && r81 >= 5) || r81 >= 6 {
			mult *= 1.32
		} else {
			mult *= 1.1
		}
	} else if r81 >= 1 {
		if b.Kind == KindMelee || (b.Kind == KindMultistrike && r81 >= 2) || r81 >= 3 {
			mult *= 1.1
		}
	}

	switch b.Kind {
	case KindMelee:
		if v := b.Inscryptions["i14"]; v > 0 {
			mult *= math.Pow(1.1, float64(v))
		}
		if v := b.Inscryptions["i44"]; v > 0 {
			mult *= math.Pow(1.08, float64(v))
		}
		if v := b.Inscryptions["i60"]; v > 0 {
			mult *= 1 + float64(v)*0.03
		}
		if v := b.Inscryptions["i80"]; v > 0 {
			mult *= math.Pow(1.1, float64(v))
		}
	case KindMultistrike:
		if v := b.Inscryptions["i32"]; v > 0 {
			mult *= math.Pow(1.5, float64(v))
		}
		if v := b.Inscryptions["i81"]; v > 0 {
			mult *= math.Pow(1.1, float64(v))
		}
		if scarab := b.Attributes["blessings_of_the_scarab"]; scarab > 0 {
			mult *= 1 + float64(scarab)*0.05
		}
	}

	switch b.Kind {
	case KindMelee:
		mult *= gadgetLoot(float64(b.Gadgets["wrench"])) * gadgetLoot(float64(b.Gadgets["wrench_of_gore"]))
	case KindMultistrike:
		mult *= gadgetLoot(float64(b.Gadgets["zaptron"])) * gadgetLoot(float64(b.Gadgets["zaptron_533"]))
	case KindSalvo:
		mult *= gadgetLoot(float64(b.Gadgets["trident"])) * gadgetLoot(float64(b.Gadgets["gadget19"])) * gadgetLoot(float64(b.Gadgets["trident_of_tides"]))
	}
	mult *= gadgetLoot(float64(b.Gadgets["anchor"])) * gadgetLoot(float64(b.Gadgets["anchor_of_ages"]))

	switch b.Kind {
	case KindMelee:
		if scavenger := math.Min(float64(b.Bonuses["scavenger"]), 25); scavenger > 0 {
			mult *= math.Pow(1.05, scavenger)
		}
		if v := b.Bonuses["lm_ouro1"]; v > 0 {
			mult *= math.Pow(1.03, v)
		}
		if v := b.Bonuses["lm_ouro11"]; v > 0 {
			mult *= math.Pow(1.05, v)
		}
	case KindMultistrike:
		if scavenger2 := math.Min(float64(b.Bonuses["scavenger2"]), 25); scavenger2 > 0 {
			mult *= math.Pow(1.05, scavenger2)
		}
		if v := b.Bonuses["lm_ouro18"]; v > 0 {
			mult *= math.Pow(1.03, v)
		}
	}

	if b.Bonuses["cm46"] > 0 {
		mult *= 1.03
	}
	if b.Bonuses["cm47"] > 0 {
		mult *= 1.02
	}
	if b.Bonuses["cm48"] > 0 {
		mult *= 1.07
	}
	if b.Bonuses["cm51"] > 0 {
		mult *= 1.05
	}

	if b.Kind == KindMelee && b.Bonuses["gaiden_card"] > 0 {
		mult *= 1.05
	}
	if b.Kind == KindMultistrike && b.Bonuses["iridian_card"] > 0 {
		mult *= 1.05
	}

	if v := b.Bonuses["diamond_loot"]; v > 0 {
		mult *= 1 + v*0.025
	}
	if b.Bonuses["iap_travpack"] > 0 {
		mult *= 1.25
	}
	if ultima := b.Bonuses["ultima_multiplier"]; ultima > 0 {
		mult *= ultima
	}

	gemKey := map[HunterKind]string{
		KindMelee: "attraction_loot_borge", KindMultistrike: "attraction_loot_ozzy", KindSalvo: "attraction_loot_knox",
	}[b.Kind]
	if v := float64(b.Gems[gemKey]); v > 0 {
		mult *= math.Pow(1.07, v)
	}
	if v := float64(b.Gems["attraction_node_#3"]); v > 0 {
		mult *= 1 + 0.25*v
	}

	if pog := float64(b.Talents["presence_of_god"]); pog > 0 {
		mult *= 1 + pog*0.2*effectChance
	}
	if v := b.Bonuses["skill6_loot_bonus"]; v > 0 {
		mult *= 1 + v
	}
	if v := float64(b.Relics["wastarian_relic_loot_bonus"]); v > 0 {
		mult *= 1 + v*0.05
	}

	return mult
}

// xpBonus implements get_xp_bonus's per-kind composition: Melee reads
// the Book of Mephisto relic and a research-line bonus, Multistrike
// reads an inscription and its own research-line bonus, and Salvo
// reads only its research-line bonus.
func xpBonus(b BuildConfig) float64 {
	bonus := 1.0
	switch b.Kind {
	case KindMelee:
		if r19 := relicOrAlias(b, "book_of_mephisto", "r19"); r19 > 0 {
			bonus *= math.Pow(2, math.Min(r19, 8))
		}
		if pom3 := b.Bonuses["pom3"]; pom3 > 0 {
			bonus *= 1 + pom3*0.10
		}
	case KindMultistrike:
		if i33 := float64(b.Inscryptions["i33"]); i33 > 0 {
			bonus *= math.Pow(1.75, math.Min(i33, 6))
		}
		if poi3 := b.Bonuses["poi3"]; poi3 > 0 {
			bonus *= 1 + poi3*0.15
		}
	case KindSalvo:
		if pok3 := b.Bonuses["pok3"]; pok3 > 0 {
			bonus *= 1 + pok3*0.15
		}
	}
	return bonus
}

// FinalizeLoot computes common/uncommon/rare/xp totals for a completed
// run. Loot scales with the geometric series sum of per-stage drop
// growth across all ten enemies per stage; XP scales with the FINAL
// stage reached directly (not a cumulative series), per the reference
// calculate_final_loot.
func FinalizeLoot(b BuildConfig, stagesCleared int, effectChance float64) (common, uncommon, rare, xp float64) {
	mult := stageMult[b.Kind]
	var geomSum float64
	if mult > 1.0 {
		geomSum = (math.Pow(mult, float64(stagesCleared)) - 1.0) / (mult - 1.0)
	} else {
		geomSum = float64(stagesCleared)
	}
	totalEnemyFactor := geomSum * enemiesPerStage

	loot := lootMultiplier(b, effectChance)
	common = baseCommon * totalEnemyFactor * loot
	uncommon = baseUncommon * totalEnemyFactor * loot
	rare = baseRare * totalEnemyFactor * loot
	xp = baseXP[b.Kind] * float64(stagesCleared) * xpBonus(b)
	return
}
