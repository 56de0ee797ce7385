// Package hunters implements the deterministic combat simulator: RNG
// seeding, build validation, derived-stat construction, the enemy
// model, the discrete-event simulation loop, the three hunter combat
// kernels, and end-of-run loot/XP accounting.
package hunters

import "go.mongodb.org/mongo-driver/v2/bson"

// HunterKind selects which of the three combat kernels and derived
// stat formulas a BuildConfig targets.
type HunterKind string

const (
	KindMelee       HunterKind = "melee"
	KindMultistrike HunterKind = "multistrike"
	KindSalvo       HunterKind = "salvo"
)

// BuildConfig is an immutable point allocation plus the wider bundle of
// external bonuses (relics, gems, gadgets, research/construction
// bonuses) the reference hunter classes read when deriving stats and
// loot. Only Stats/Talents/Attributes/Inscriptions are subject to
// Catalog budget validation; the rest mirror the reference's
// load_build() dict, which reads them without enforcing a spend cap of
// its own.
type BuildConfig struct {
	Kind         HunterKind         `json:"hunter" bson:"hunter"`
	Level        int                `json:"level" bson:"level"`
	Stats        map[string]int     `json:"stats" bson:"stats"`
	Talents      map[string]int     `json:"talents" bson:"talents"`
	Attributes   map[string]int     `json:"attributes" bson:"attributes"`
	Inscryptions map[string]int     `json:"inscryptions" bson:"inscryptions"`
	Mods         map[string]bool    `json:"mods,omitempty" bson:"mods,omitempty"`
	Relics       map[string]int     `json:"relics,omitempty" bson:"relics,omitempty"`
	Gems         map[string]int     `json:"gems,omitempty" bson:"gems,omitempty"`
	Gadgets      map[string]int     `json:"gadgets,omitempty" bson:"gadgets,omitempty"`
	Bonuses      map[string]float64 `json:"bonuses,omitempty" bson:"bonuses,omitempty"`
}

// Clone returns a deep copy so the generator's random walk and
// extend-elite promotion never mutate a shared elite build in place.
func (b BuildConfig) Clone() BuildConfig {
	out := BuildConfig{Kind: b.Kind, Level: b.Level}
	out.Stats = cloneIntMap(b.Stats)
	out.Talents = cloneIntMap(b.Talents)
	out.Attributes = cloneIntMap(b.Attributes)
	out.Inscryptions = cloneIntMap(b.Inscryptions)
	out.Relics = cloneIntMap(b.Relics)
	out.Gems = cloneIntMap(b.Gems)
	out.Gadgets = cloneIntMap(b.Gadgets)
	if b.Mods != nil {
		out.Mods = make(map[string]bool, len(b.Mods))
		for k, v := range b.Mods {
			out.Mods[k] = v
		}
	}
	if b.Bonuses != nil {
		out.Bonuses = make(map[string]float64, len(b.Bonuses))
		for k, v := range b.Bonuses {
			out.Bonuses[k] = v
		}
	}
	return out
}

func cloneIntMap(m map[string]int) map[string]int {
	if m == nil {
		return map[string]int{}
	}
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// CanonicalKey returns a deterministic string identity for deduping
// builds in the generator and the optimizer: kind, level and the sorted
// non-zero entries of the integer-valued maps, independent of Go map
// iteration order.
func (b BuildConfig) CanonicalKey() string {
	return canonicalKey(b)
}

// DerivedStats is the flattened output of applying a BuildConfig's
// points through the kind-specific layered formulas. Fields not
// meaningful for a kind are left zero (e.g. ChargeChance for Melee,
// Block for Multistrike).
type DerivedStats struct {
	MaxHP             float64
	Power             float64
	RegenPerTick      float64
	DamageReduction   float64
	EvadeChance       float64
	EffectChance      float64
	SpecialChance     float64
	SpecialDamageMult float64
	Speed             float64
	Lifesteal         float64
	Block             float64
	ChargeChance      float64
	ChargeGained      float64
	PassiveChargeRate float64
	ReloadTime        float64
	SalvoProjectiles  int

	// MinotaurDR and ScarabDR are independent multiplicative damage
	// layers applied in receive_damage before the main DR term, kept
	// separate because they compose rather than add with it.
	MinotaurDR float64
	ScarabDR   float64
}

// HunterState is the live, mutable combat state for one hunter across
// a single run: current HP, stage progress, and every kernel-specific
// counter the reference's getter-time overrides and triggered effects
// consume (trickster charges, empowered regen, crippling stacks...).
type HunterState struct {
	Kind         HunterKind
	Stats        DerivedStats
	HP           float64
	TimesRevived int
	CurrentStage int
	CatchingUp   bool

	// Charges is Salvo's banked reload charge.
	Charges float64

	// TricksterCharges is Multistrike's banked full-evade charges.
	TricksterCharges int
	// CripplingStacks accumulates Multistrike's Crippling Shots debuff
	// on the CURRENT target, reset on target death.
	CripplingStacks float64
	// HundredSouls counts Salvo's Calypso's Advantage stage-clear procs.
	HundredSouls float64
	// FiresOfWarBonus is Melee's one-shot speed buff, consumed (and
	// zeroed) on the next read of NextAttackDelay.
	FiresOfWarBonus float64
	// AttackQueue holds pending Multistrike special-attack tags
	// ("ms" or "echo") to be drained by EventHunterSpecial.
	AttackQueue []string

	Stacks     map[string]float64
	Transients *ModifierStack
}

// EnemyKind distinguishes a regular enemy (Lucky Loot eligible) from
// a boss (enrage timer, no Lucky Loot, spawned every 100th stage).
type EnemyKind string

const (
	EnemyRegular EnemyKind = "regular"
	EnemyBoss    EnemyKind = "boss"
)

// Enemy is the live, mutable state for the opposing side of a run:
// current stage, HP, attack stats, and boss enrage tracking.
type Enemy struct {
	Kind            EnemyKind
	Stage           int
	HP              float64
	MaxHP           float64
	AttackDamage    float64
	AttackInterval  float64
	RegenPerTick    float64
	StunRemaining   float64
	EnrageStacks    int
	MaxEnrage       bool
	MedusaAntiRegen float64
}

// RunResult is the outcome of a single deterministic simulation run:
// survival time, kills, loot/XP totals, and an error flag for
// aborted runs (a build that fails validation, or NaN hunter HP); a
// hunter whose HP reaches zero simply ends the run without the flag.
type RunResult struct {
	SurvivalSeconds float64 `json:"survival_seconds"`
	StagesCleared   int     `json:"stages_cleared"`
	Kills           int     `json:"kills"`
	LuckyLootProcs  int     `json:"lucky_loot_procs"`
	Revives         int     `json:"revives"`
	TrampleKills    int     `json:"trample_kills"`
	TotalDamage     float64 `json:"total_damage"`
	Common          float64 `json:"common"`
	Uncommon        float64 `json:"uncommon"`
	Rare            float64 `json:"rare"`
	XP              float64 `json:"xp"`
	Error           bool    `json:"error"`
	ErrorReason     string  `json:"error_reason,omitempty"`
}

// BuildResult aggregates every RunResult for one BuildConfig across a
// batch of runs, plus the five metrics the optimizer's top-K heaps and
// successive-halving composite score rank on.
type BuildResult struct {
	ID              bson.ObjectID `json:"-" bson:"_id,omitempty"`
	Build           BuildConfig   `json:"build"`
	Runs            []RunResult   `json:"-"`
	MeanSurvival    float64       `json:"mean_survival"`
	MeanStages      float64       `json:"mean_stages"`
	MinStages       int           `json:"min_stages"`
	MaxStages       int           `json:"max_stages"`
	MeanCommon      float64       `json:"mean_common"`
	MeanUncommon    float64       `json:"mean_uncommon"`
	MeanRare        float64       `json:"mean_rare"`
	MeanLootValue   float64       `json:"mean_loot_value"`
	AvgLootPerHour  float64       `json:"avg_loot_per_hour"`
	MeanXP          float64       `json:"mean_xp"`
	MeanDamage      float64       `json:"mean_damage"`
	SurvivalRate    float64       `json:"survival_rate"`
}
