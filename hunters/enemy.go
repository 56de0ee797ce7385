package hunters

import "math"

// enemiesPerStage mirrors the reference loot model's total_enemy_factor
// assumption: ten regular kills clear a stage. Every 100th stage spawns
// a single boss instead of the usual ten.
const enemiesPerStage = 10

// bossStageInterval mirrors calculate_final_loot's stage%100==0 boss
// gate, also used by Melee's atlas_protocol boss-stage overrides.
const bossStageInterval = 100

// IsBossStage reports whether stage spawns a boss instead of regulars.
func IsBossStage(stage int) bool {
	return stage > 0 && stage%bossStageInterval == 0
}

// enemyScaling returns (hp, attack, regen) for a given stage. The
// reference balance tables aren't part of the filtered source, so this
// uses the same exponential curve shape the reference's enrage/loot
// constants imply, scaled harder on boss stages.
func enemyScaling(stage int) (hp, attack, regen float64) {
	s := float64(stage)
	hp = 50 * math.Pow(1.045, s)
	attack = 5 * math.Pow(1.03, s)
	regen = 1 * math.Pow(1.02, s)
	if IsBossStage(stage) {
		hp *= 15
		attack *= 3
	}
	return
}

// NewEnemy constructs the next enemy to fight within stage: a boss on
// every 100th stage, a regular enemy otherwise. Every regular within a
// stage gets the same HP/attack, consistent with trample being able to
// clear several same-stage regulars with one overkill hit; a boss gets
// enemyScaling's boosted boss-stage values.
func NewEnemy(stage int) *Enemy {
	hp, attack, regen := enemyScaling(stage)
	kind := EnemyRegular
	if IsBossStage(stage) {
		kind = EnemyBoss
	}
	return &Enemy{
		Kind: kind, Stage: stage, HP: hp, MaxHP: hp,
		AttackDamage: attack, AttackInterval: 1.0, RegenPerTick: regen,
	}
}

// ReceiveDamage applies dmg to the enemy, reporting whether this blow
// killed it.
func (e *Enemy) ReceiveDamage(dmg float64) (killed bool) {
	e.HP -= dmg
	return e.HP <= 0
}

// RegenHP regenerates the enemy, reduced by any Gift of Medusa
// anti-regen debuff the hunter has applied. A stunned enemy still
// regens — stun only suppresses the enemy's attacks, matching the
// reference event ordering.
func (e *Enemy) RegenHP() {
	if e.HP <= 0 {
		return
	}
	regen := e.RegenPerTick - e.MedusaAntiRegen
	if regen < 0 {
		regen = 0
	}
	e.HP = math.Min(e.MaxHP, e.HP+regen)
}

// Enrage advances a boss's enrage stack count every 30 seconds of
// elapsed fight time, applying a stacking attack multiplier. A boss
// that hits the hard cap latches MaxEnrage true, which Multistrike's
// receive_damage reads to bypass trickster-charge consumption and the
// evade roll entirely (boss_max_enrage in the reference source).
func (e *Enemy) Enrage(maxStacks int) {
	if e.Kind != EnemyBoss {
		return
	}
	if e.EnrageStacks >= maxStacks {
		e.MaxEnrage = true
		return
	}
	e.EnrageStacks++
	e.AttackDamage *= 1.15
}

// Stun marks the enemy as stunned; the simulation loop clears it via a
// scheduled EventStunExpire rather than decrementing a countdown on
// every attack tick.
func (e *Enemy) Stun() {
	e.StunRemaining = 1
}

func (e *Enemy) ClearStun() {
	e.StunRemaining = 0
}

func (e *Enemy) Stunned() bool {
	return e.StunRemaining > 0
}
