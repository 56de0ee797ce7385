package hunters

// DummyBuild returns the zero-allocation starting point for kind at
// level, ported from each reference hunter's load_dummy(). It is the
// same empty build NewBuildConfig returns; the "Empty <kind>, level N"
// test scenarios construct it directly.
func DummyBuild(kind HunterKind, level int) BuildConfig {
	return NewBuildConfig(kind, level)
}

// NewHunterState derives the live combat state for a build: its
// DerivedStats, full HP, stage-1 catch-up eligibility (stages under
// 100 still get the Attraction gem bonus), and an empty transient
// modifier stack.
func NewHunterState(b BuildConfig) *HunterState {
	var stats DerivedStats
	switch b.Kind {
	case KindMelee:
		stats = BuildMeleeStats(b)
	case KindMultistrike:
		stats = BuildMultistrikeStats(b)
	case KindSalvo:
		stats = BuildSalvoStats(b)
	}
	return &HunterState{
		Kind:         b.Kind,
		Stats:        stats,
		HP:           stats.MaxHP,
		CurrentStage: 1,
		CatchingUp:   true,
		Stacks:       map[string]float64{},
		Transients:   NewModifierStack(),
	}
}
