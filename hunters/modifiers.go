package hunters

// ModifierSource identifies what layered a transient effect onto a
// hunter mid-combat. Adapted from the ship combat layering model: a
// hunter's in-run state is a base plus an ordered stack of timed
// layers rather than a single mutable number, which is what lets
// stun/crippling/trample/omen-of-decay effects expire and stack
// independently of each other.
type ModifierSource string

const (
	SourceTalent      ModifierSource = "talent"
	SourceInscryption ModifierSource = "inscryption"
	SourceEnemyDebuff ModifierSource = "enemy_debuff"
	SourceSelfBuff    ModifierSource = "self_buff"
)

// Modifier priority ordering: later-applied layers of equal priority
// stack additively within the layer, but layers resolve low-to-high
// priority so, e.g., a flat damage-reduction layer always applies
// before a percentage-based enrage layer.
const (
	PriorityBase     = 0
	PriorityTalent   = 100
	PriorityInscription = 200
	PriorityBuff     = 300
	PriorityDebuff   = 400
)

// ModifierLayer is one timed or permanent contribution to a hunter's
// live stats: a damage multiplier, a flat DR bonus, a stun, a stack
// count. ExpiresAt is a simulation-clock time, not wall-clock.
type ModifierLayer struct {
	Source     ModifierSource
	Key        string
	Additive   float64
	Multiplier float64
	AppliedAt  float64
	ExpiresAt  *float64
	Priority   int
}

// ModifierStack holds every active layer for one hunter or enemy. The
// combat kernels add/remove layers as triggered effects fire and
// expire; DerivedStats itself never changes mid-run.
type ModifierStack struct {
	Layers []ModifierLayer
}

func NewModifierStack() *ModifierStack {
	return &ModifierStack{}
}

func (s *ModifierStack) AddPermanent(source ModifierSource, key string, additive, multiplier float64, priority int) {
	s.Layers = append(s.Layers, ModifierLayer{
		Source: source, Key: key, Additive: additive, Multiplier: multiplier, Priority: priority,
	})
}

func (s *ModifierStack) AddTemporary(source ModifierSource, key string, additive, multiplier float64, now, expiresAt float64, priority int) {
	exp := expiresAt
	s.Layers = append(s.Layers, ModifierLayer{
		Source: source, Key: key, Additive: additive, Multiplier: multiplier,
		AppliedAt: now, ExpiresAt: &exp, Priority: priority,
	})
}

// RemoveExpired drops every layer whose ExpiresAt is at or before now.
func (s *ModifierStack) RemoveExpired(now float64) {
	kept := s.Layers[:0]
	for _, l := range s.Layers {
		if l.ExpiresAt == nil || *l.ExpiresAt > now {
			kept = append(kept, l)
		}
	}
	s.Layers = kept
}

// RemoveBySource drops every layer carrying both the given source and
// key, used when a single-application effect is consumed.
func (s *ModifierStack) RemoveBySource(source ModifierSource, key string) {
	kept := s.Layers[:0]
	for _, l := range s.Layers {
		if !(l.Source == source && l.Key == key) {
			kept = append(kept, l)
		}
	}
	s.Layers = kept
}

// Resolve folds every layer into base: additive layers sum first at
// each priority tier, then multiplier layers apply in priority order.
func (s *ModifierStack) Resolve(base float64) float64 {
	value := base
	priorities := map[int]bool{}
	for _, l := range s.Layers {
		priorities[l.Priority] = true
	}
	tiers := make([]int, 0, len(priorities))
	for p := range priorities {
		tiers = append(tiers, p)
	}
	sortInts(tiers)
	for _, tier := range tiers {
		for _, l := range s.Layers {
			if l.Priority != tier {
				continue
			}
			value += l.Additive
		}
		for _, l := range s.Layers {
			if l.Priority != tier || l.Multiplier == 0 {
				continue
			}
			value *= l.Multiplier
		}
	}
	return value
}

// HasKey reports whether any active layer carries the given key,
// e.g. to check a stun is in effect.
func (s *ModifierStack) HasKey(key string) bool {
	for _, l := range s.Layers {
		if l.Key == key {
			return true
		}
	}
	return false
}

func sortInts(xs []int) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
