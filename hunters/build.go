package hunters

import (
	"sort"
	"strconv"
	"strings"
)

// NewBuildConfig constructs an empty allocation for kind at level,
// matching each reference hunter's load_dummy() starting point.
func NewBuildConfig(kind HunterKind, level int) BuildConfig {
	return BuildConfig{
		Kind:         kind,
		Level:        level,
		Stats:        map[string]int{},
		Talents:      map[string]int{},
		Attributes:   map[string]int{},
		Inscryptions: map[string]int{},
	}
}

// canonicalKey renders a BuildConfig's non-zero points in sorted,
// namespaced order so two builds with identical allocations compare
// equal regardless of map iteration order. Used by the generator's and
// the optimizer's per-tier dedup sets. Relics/gems/gadgets are external
// game state rather than spendable allocation, but they're folded in
// too: two builds differing only in those still get distinct keys.
// Mods and Bonuses are not part of the key.
func canonicalKey(b BuildConfig) string {
	var parts []string
	parts = append(parts, string(b.Kind), "L"+strconv.Itoa(b.Level))
	appendSorted := func(prefix string, m map[string]int) {
		keys := make([]string, 0, len(m))
		for k, v := range m {
			if v != 0 {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, prefix+k+"="+strconv.Itoa(m[k]))
		}
	}
	appendSorted("s:", b.Stats)
	appendSorted("t:", b.Talents)
	appendSorted("a:", b.Attributes)
	appendSorted("i:", b.Inscryptions)
	appendSorted("r:", b.Relics)
	appendSorted("g:", b.Gems)
	appendSorted("d:", b.Gadgets)
	return strings.Join(parts, "|")
}
