package hunters

import "math"

const (
	maxStages           = 500
	bossEnrageInterval  = 30.0
	bossEnrageMaxStacks = 20
	maxSimulatedSeconds = 3600.0
)

// stageEnemyCount returns how many enemies must die to clear stage: one
// boss on a boss stage, ten regulars otherwise.
func stageEnemyCount(stage int) int {
	if IsBossStage(stage) {
		return 1
	}
	return enemiesPerStage
}

// Simulate runs one deterministic combat simulation for build, seeded
// from (buildIndex, runIndex), and returns its RunResult. This is the
// sole entry point the batch evaluator calls per (config, run) pair.
func Simulate(build BuildConfig, buildIndex, runIndex int64) RunResult {
	if err := Validate(build); err != nil {
		return RunResult{Error: true, ErrorReason: err.Error()}
	}

	rng := NewRNG(buildIndex, runIndex)
	kernel := NewKernel(build)
	state := NewHunterState(build)

	stage := 1
	remainingInStage := stageEnemyCount(stage)
	enemy := NewEnemy(stage)
	kills := 0
	luckyLootProcs := 0
	revives := 0
	trampleKills := 0
	totalDamage := 0.0

	q := newEventQueue()
	q.Enqueue(SimEvent{DueTime: 1, Priority: PriorityRegen, Kind: EventHunterRegen})
	q.Enqueue(SimEvent{DueTime: 1, Priority: PriorityRegen, Kind: EventEnemyRegen})
	q.Enqueue(SimEvent{DueTime: kernel.NextAttackDelay(state, 0), Priority: PriorityAttack, Kind: EventHunterAttack})
	q.Enqueue(SimEvent{DueTime: enemy.AttackInterval, Priority: PriorityAttack, Kind: EventEnemyAttack})
	if enemy.Kind == EnemyBoss {
		q.Enqueue(SimEvent{DueTime: bossEnrageInterval, Priority: PriorityEnrage, Kind: EventBossEnrage})
	}

	// advanceStage clears the current enemy's stage bookkeeping and
	// spawns the next encounter, whether that's another regular enemy
	// within the same stage or the first enemy of a new stage.
	advanceStage := func(now float64) (survived bool) {
		remainingInStage--
		if remainingInStage > 0 {
			enemy = NewEnemy(stage)
			q.Enqueue(SimEvent{DueTime: now + enemy.AttackInterval, Priority: PriorityAttack, Kind: EventEnemyAttack})
			return true
		}
		kernel.OnStageComplete(state, rng)
		stage++
		state.CurrentStage = stage
		state.CatchingUp = stage < 100
		if stage > maxStages {
			return false
		}
		remainingInStage = stageEnemyCount(stage)
		enemy = NewEnemy(stage)
		q.Enqueue(SimEvent{DueTime: now + enemy.AttackInterval, Priority: PriorityAttack, Kind: EventEnemyAttack})
		if enemy.Kind == EnemyBoss {
			q.Enqueue(SimEvent{DueTime: now + bossEnrageInterval, Priority: PriorityEnrage, Kind: EventBossEnrage})
		}
		return true
	}

	// handleKill runs OnKill procs, applies any trample overkill within
	// the same stage, and advances past however many enemies just died.
	handleKill := func(now float64, extraTrample int) bool {
		kills++
		if kernel.OnKill(state, enemy, rng, now) {
			luckyLootProcs++
		}
		cleared := 1
		if extraTrample > 0 && !IsBossStage(stage) {
			if extraTrample > remainingInStage-1 {
				extraTrample = remainingInStage - 1
			}
			if extraTrample < 0 {
				extraTrample = 0
			}
			trampleKills += extraTrample
			kills += extraTrample
			cleared += extraTrample
		}
		for i := 0; i < cleared; i++ {
			if !advanceStage(now) {
				return false
			}
		}
		return true
	}

	var now float64
	for {
		ev, ok := q.Dequeue()
		if !ok {
			break
		}
		now = ev.DueTime
		if now > maxSimulatedSeconds {
			break
		}
		if math.IsNaN(state.HP) {
			return RunResult{Error: true, ErrorReason: "NaN hunter HP", SurvivalSeconds: now}
		}

		switch ev.Kind {
		case EventHunterRegen:
			kernel.RegenHP(state, now)
			q.Enqueue(SimEvent{DueTime: now + 1, Priority: PriorityRegen, Kind: EventHunterRegen})

		case EventEnemyRegen:
			enemy.RegenHP()
			q.Enqueue(SimEvent{DueTime: now + 1, Priority: PriorityRegen, Kind: EventEnemyRegen})

		case EventHunterAttack:
			dmg, killed, extraTrample, stunDuration := kernel.Attack(state, enemy, rng, now)
			totalDamage += dmg
			if killed {
				if !handleKill(now, extraTrample) {
					return finishRun(build, state, now, stage-1, kills, luckyLootProcs, revives, trampleKills, totalDamage, false, "")
				}
			} else if stunDuration > 0 {
				enemy.Stun()
				q.Enqueue(SimEvent{DueTime: now + stunDuration, Priority: PriorityStun, Kind: EventStunExpire})
			}
			for len(state.AttackQueue) > 0 {
				tag := state.AttackQueue[0]
				state.AttackQueue = state.AttackQueue[1:]
				q.Enqueue(SimEvent{DueTime: now, Priority: PrioritySpecial, Kind: EventHunterSpecial, Tag: tag})
			}
			delay := kernel.NextAttackDelay(state, now)
			q.Enqueue(SimEvent{DueTime: now + delay, Priority: PriorityAttack, Kind: EventHunterAttack})

		case EventHunterSpecial:
			if enemy.HP <= 0 {
				break
			}
			dmg, killed := kernel.AttackSpecial(state, enemy, rng, ev.Tag)
			totalDamage += dmg
			if killed {
				if !handleKill(now, 0) {
					return finishRun(build, state, now, stage-1, kills, luckyLootProcs, revives, trampleKills, totalDamage, false, "")
				}
			}

		case EventEnemyAttack:
			if enemy.Stunned() {
				// skip this attack tick, still rescheduled below
			} else if enemy.HP > 0 {
				died := kernel.ReceiveDamage(state, enemy, enemy.AttackDamage, rng, now)
				if died {
					if kernel.OnDeath(state, now) {
						revives++
					} else {
						return finishRun(build, state, now, stage-1, kills, luckyLootProcs, revives, trampleKills, totalDamage, false, "")
					}
				}
			}
			if enemy.HP > 0 {
				q.Enqueue(SimEvent{DueTime: now + enemy.AttackInterval, Priority: PriorityAttack, Kind: EventEnemyAttack})
			}

		case EventStunExpire:
			enemy.ClearStun()

		case EventBossEnrage:
			enemy.Enrage(bossEnrageMaxStacks)
			if enemy.HP > 0 {
				q.Enqueue(SimEvent{DueTime: now + bossEnrageInterval, Priority: PriorityEnrage, Kind: EventBossEnrage})
			}
		}

		state.Transients.RemoveExpired(now)
	}

	return finishRun(build, state, now, stage-1, kills, luckyLootProcs, revives, trampleKills, totalDamage, false, "")
}

func finishRun(build BuildConfig, state *HunterState, survived float64, stagesCleared, kills, luckyLoot, revives, trample int, totalDamage float64, errored bool, reason string) RunResult {
	common, uncommon, rare, xp := FinalizeLoot(build, stagesCleared, state.Stats.EffectChance)
	return RunResult{
		SurvivalSeconds: survived,
		StagesCleared:   stagesCleared,
		TotalDamage:     totalDamage,
		Kills:           kills,
		LuckyLootProcs:  luckyLoot,
		Revives:         revives,
		TrampleKills:    trample,
		Common:          common,
		Uncommon:        uncommon,
		Rare:            rare,
		XP:              xp,
		Error:           errored,
		ErrorReason:     reason,
	}
}
