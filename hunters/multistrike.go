package hunters

// multistrikeKernel implements Ozzy-style combat: a main attack that
// probabilistically queues Multistrike/Echo Bullets follow-up hits
// (drained by EventHunterSpecial), Crippling Shots/Omen of Decay's
// per-hit damage composition, Dance of Dashes' chance to gain a
// trickster charge on any hit taken (enemy attacks carry no crit flag,
// so the gain is not tied to crits), and Vectid Elixir's temporary
// empowered-regen window
// (wired through ModifierStack rather than a bespoke counter, since
// it's exactly the timed-multiplier shape the stack models).
type multistrikeKernel struct {
	build BuildConfig
}

func (k *multistrikeKernel) effectivePower(state *HunterState) float64 {
	dealWithDeath := float64(k.build.Attributes["deal_with_death"])
	power := state.Stats.Power * (1 + dealWithDeath*0.02*float64(state.TimesRevived))
	return power * catchUpFactor(k.build, state)
}

func (k *multistrikeKernel) effectiveDR(state *HunterState) float64 {
	dealWithDeath := float64(k.build.Attributes["deal_with_death"])
	return state.Stats.DamageReduction + dealWithDeath*0.016*float64(state.TimesRevived)
}

func (k *multistrikeKernel) effectiveSpecialChance(state *HunterState) float64 {
	cycleOfDeath := float64(k.build.Attributes["cycle_of_death"])
	return capPercent(state.Stats.SpecialChance + float64(state.TimesRevived)*cycleOfDeath*0.023)
}

func (k *multistrikeKernel) effectiveSpecialDamage(state *HunterState) float64 {
	cycleOfDeath := float64(k.build.Attributes["cycle_of_death"])
	return state.Stats.SpecialDamageMult + float64(state.TimesRevived)*cycleOfDeath*0.02
}

// composeDamage applies Crippling Shots' stored debuff and Omen of
// Decay's proc multiplier, the reference's universal per-attack
// composition shared by main, Multistrike, and regular hits.
func (k *multistrikeKernel) composeDamage(state *HunterState, enemy *Enemy, base float64, rng *RNG, vsBoss bool) float64 {
	crippleEffect := 1.0
	if vsBoss {
		crippleEffect = 0.1
	}
	crippleDamage := enemy.HP * (state.CripplingStacks * 0.008) * crippleEffect
	state.CripplingStacks = 0

	omenOfDecay := float64(k.build.Talents["omen_of_decay"])
	omenMult := 1.0
	if omenOfDecay > 0 && rng.Chance(state.Stats.EffectChance/2) {
		omenMult = 1 + omenOfDecay*0.03
	}
	return (base + crippleDamage) * omenMult
}

func (k *multistrikeKernel) Attack(state *HunterState, enemy *Enemy, rng *RNG, now float64) (float64, bool, int, float64) {
	vsBoss := enemy.Kind == EnemyBoss
	power := k.effectivePower(state)

	if rng.Chance(state.Stats.EffectChance / 2) {
		state.TricksterCharges++
	}
	if rng.Chance(k.effectiveSpecialChance(state)) {
		state.AttackQueue = append(state.AttackQueue, "ms")
	}
	stunDuration := 0.0
	thousandNeedles := float64(k.build.Talents["thousand_needles"])
	if thousandNeedles > 0 && rng.Chance(state.Stats.EffectChance) {
		stunDuration = thousandNeedles * 0.06
	}
	echoBullets := float64(k.build.Talents["echo_bullets"])
	if echoBullets > 0 && rng.Chance(state.Stats.EffectChance/2) {
		state.AttackQueue = append(state.AttackQueue, "echo")
	}

	finalDamage := k.composeDamage(state, enemy, power, rng, vsBoss)
	killed := enemy.ReceiveDamage(finalDamage)
	k.postAttackProcs(state, now, power)

	return finalDamage, killed, 0, stunDuration
}

func (k *multistrikeKernel) AttackSpecial(state *HunterState, enemy *Enemy, rng *RNG, tag string) (float64, bool) {
	vsBoss := enemy.Kind == EnemyBoss
	power := k.effectivePower(state)
	switch tag {
	case "ms":
		base := power * k.effectiveSpecialDamage(state)
		final := k.composeDamage(state, enemy, base, rng, vsBoss)
		return final, enemy.ReceiveDamage(final)
	case "echo":
		echoBullets := float64(k.build.Talents["echo_bullets"])
		dmg := power * (echoBullets * 0.05)
		return dmg, enemy.ReceiveDamage(dmg)
	default:
		return 0, false
	}
}

// postAttackProcs handles Crippling Shots' stack gain and lifesteal,
// scaled up by Soul of Snek while Vectid Elixir's empowered regen
// window is active.
func (k *multistrikeKernel) postAttackProcs(state *HunterState, now, baseDamage float64) {
	if state.Stats.Lifesteal > 0 {
		lifesteal := state.Stats.Lifesteal
		if state.Transients.HasKey("empowered_regen") {
			lifesteal *= 1 + float64(k.build.Attributes["soul_of_snek"])*0.15
		}
		state.HP += baseDamage * lifesteal
		if state.HP > state.Stats.MaxHP {
			state.HP = state.Stats.MaxHP
		}
	}
	cripplingShots := float64(k.build.Talents["crippling_shots"])
	if cripplingShots > 0 {
		state.CripplingStacks += cripplingShots
	}
}

// ReceiveDamage ports Ozzy.receive_damage's WASM-verified order:
// trickster charge consumption (unless the boss is max-enraged),
// evade roll (same override), Blessings of the Scarab's independent DR
// layer, the main DR term, then Dance of Dashes' charge-gain chance.
func (k *multistrikeKernel) ReceiveDamage(state *HunterState, enemy *Enemy, raw float64, rng *RNG, now float64) bool {
	bossMaxEnrage := enemy.Kind == EnemyBoss && enemy.MaxEnrage

	if state.TricksterCharges > 0 && !bossMaxEnrage {
		state.TricksterCharges--
		return false
	}
	if !bossMaxEnrage && rng.Chance(state.Stats.EvadeChance) {
		return false
	}

	scarabReduced := raw * (1 - state.Stats.ScarabDR)
	mitigated := scarabReduced * (1 - k.effectiveDR(state))
	state.HP -= mitigated

	danceOfDashes := float64(k.build.Attributes["dance_of_dashes"])
	if danceOfDashes > 0 && rng.Chance(danceOfDashes*0.15) {
		state.TricksterCharges++
	}
	return state.HP <= 0
}

func (k *multistrikeKernel) OnKill(state *HunterState, enemy *Enemy, rng *RNG, now float64) bool {
	unfairAdvantage := float64(k.build.Talents["unfair_advantage"])
	if unfairAdvantage > 0 && rng.Chance(state.Stats.EffectChance) {
		state.HP += state.Stats.MaxHP * unfairAdvantage * 0.02
		if state.HP > state.Stats.MaxHP {
			state.HP = state.Stats.MaxHP
		}
	}
	if k.build.Attributes["vectid_elixir"] > 0 {
		soulOfSnek := float64(k.build.Attributes["soul_of_snek"])
		state.Transients.AddTemporary(SourceTalent, "empowered_regen", 0, 1+soulOfSnek*0.15, now, now+5, PriorityBuff)
	}

	giftOfMedusa := float64(k.build.Attributes["gift_of_medusa"])
	if giftOfMedusa > 0 {
		enemy.MedusaAntiRegen = state.Stats.RegenPerTick * giftOfMedusa * 0.06
	}

	if enemy.Kind != EnemyRegular {
		return false
	}
	if k.build.Talents["call_me_lucky_loot"] <= 0 {
		return false
	}
	return rng.Chance(state.Stats.EffectChance)
}

// OnDeath ports Ozzy's override: total allowed revives is
// death_is_my_companion plus Blessings of the Sisters, each restoring
// 80% of max HP.
func (k *multistrikeKernel) OnDeath(state *HunterState, now float64) bool {
	allowed := k.build.Talents["death_is_my_companion"] + k.build.Attributes["blessings_of_the_sisters"]
	if state.TimesRevived >= allowed {
		return false
	}
	state.TimesRevived++
	state.HP = state.Stats.MaxHP * 0.8
	return true
}

func (k *multistrikeKernel) RegenHP(state *HunterState, now float64) {
	regen := state.Transients.Resolve(state.Stats.RegenPerTick)
	state.HP += regen
	if state.HP > state.Stats.MaxHP {
		state.HP = state.Stats.MaxHP
	}
}

func (k *multistrikeKernel) NextAttackDelay(state *HunterState, now float64) float64 {
	return state.Stats.Speed / catchUpFactor(k.build, state)
}

func (k *multistrikeKernel) OnStageComplete(state *HunterState, rng *RNG) {}
