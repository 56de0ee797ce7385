package hunters

// BuildSalvoStats ports Knox.__create__ verbatim: gadgets and Legacy of
// Ultima affect nothing for Knox (neither HP, power, nor regen read
// gadget/talent-dump multipliers the way Melee/Multistrike do), a
// fixed 10% special chance, and Hundred Souls' +0.5%-per-stack power
// bonus applied at combat time in salvo.go since it accumulates over
// the run rather than being known at build time.
func BuildSalvoStats(b BuildConfig) DerivedStats {
	baseHP := float64(b.Stats["hp"])
	basePower := float64(b.Stats["power"])
	baseRegen := float64(b.Stats["regen"])
	baseDR := float64(b.Stats["damage_reduction"])
	baseBlock := float64(b.Stats["block_chance"])
	baseEffect := float64(b.Stats["effect_chance"])
	baseChargeChance := float64(b.Stats["charge_chance"])
	baseChargeGained := float64(b.Stats["charge_gained"])
	baseReload := float64(b.Stats["reload_time"])
	baseProjectiles := b.Stats["projectiles_per_salvo"]

	releaseTheKraken := float64(b.Attributes["release_the_kraken"])
	fortificationElixir := float64(b.Attributes["fortification_elixir"])
	pirateLife := float64(b.Attributes["a_pirates_life_for_knox"])
	seriousEfficiency := float64(b.Attributes["serious_efficiency"])
	shieldOfPoseidon := float64(b.Attributes["shield_of_poseidon"])
	passiveChargeTank := float64(b.Attributes["passive_charge_tank"])

	finishingMove := float64(b.Talents["finishing_move"])

	diskOfDawn := float64(b.Relics["disk_of_dawn"])

	maxHP := (20 + baseHP*(2.0+baseHP/50)) * (1 + releaseTheKraken*0.005) * (1 + diskOfDawn*0.03)
	power := (1.2 + basePower*(0.06+basePower/1000)) * (1 + releaseTheKraken*0.005)
	regen := 0.05 + baseRegen*(0.01+baseRegen*0.00075)
	dr := baseDR*0.01 + pirateLife*0.009
	block := 0.05 + baseBlock*0.005 + fortificationElixir*0.01 + pirateLife*0.008
	effect := 0.04 + baseEffect*0.004 + seriousEfficiency*0.02 + pirateLife*0.007
	chargeChance := 0.05 + baseChargeChance*0.003 + seriousEfficiency*0.01 + pirateLife*0.006
	chargeGained := 1.0 + baseChargeGained*0.01 + shieldOfPoseidon*0.1
	passiveChargeRate := passiveChargeTank * 0.02
	reloadTime := 8.0 - baseReload*0.08
	if reloadTime < 1.5 {
		reloadTime = 1.5
	}
	specialDamage := 1.0 + finishingMove*0.2
	projectiles := 3 + baseProjectiles

	return DerivedStats{
		MaxHP:             maxHP,
		Power:             power,
		RegenPerTick:      regen,
		DamageReduction:   dr,
		Block:             block,
		EvadeChance:       0,
		EffectChance:      effect,
		ChargeChance:      chargeChance,
		ChargeGained:      chargeGained,
		PassiveChargeRate: passiveChargeRate,
		ReloadTime:        reloadTime,
		Speed:             reloadTime,
		SpecialChance:     0.10,
		SpecialDamageMult: specialDamage,
		SalvoProjectiles:  projectiles,
		Lifesteal:         0,
	}
}
