// Package generator proposes BuildConfig candidates for the optimizer
// to evaluate: exhaustive enumeration at tiny point budgets, a guided
// random walk otherwise, and elite promotion/extension when carrying
// winners forward into a larger curriculum tier. Every sampling path
// enforces the target kind's Catalog (per-key caps, prerequisite
// chains) as it spends, rather than generating first and discarding
// invalid builds after the fact.
package generator

import (
	"sort"

	"github.com/hunterforge/core/hflog"
	"github.com/hunterforge/core/hunters"
)

// exhaustiveThreshold mirrors the reference optimizer's cutoff below
// which every combination is enumerated rather than sampled.
const exhaustiveThreshold = 12

// RandWalkRNG is the narrow random source the generator's sampling
// needs, satisfied by hunters.RNG or any equivalent.
type RandWalkRNG interface {
	Float64() float64
}

// Generate produces up to count distinct BuildConfig candidates for
// kind at level, spending attrPts across the kind's attribute catalog
// and talentPts across its talent catalog, deduplicated by canonical
// key. talentPts is normally level*fraction and attrPts 3*level*fraction,
// fraction being the current curriculum tier's share of the level's
// full budget.
func Generate(kind hunters.HunterKind, level, attrPts, talentPts, count int, rng RandWalkRNG) []hunters.BuildConfig {
	if attrPts+talentPts <= exhaustiveThreshold {
		return exhaustive(kind, level, attrPts, talentPts)
	}
	return randomWalk(kind, level, attrPts, talentPts, count, rng)
}

func sortedKeys(specs map[string]hunters.AttrSpec) []string {
	keys := make([]string, 0, len(specs))
	for k := range specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// enumerate recursively spends budget across specs, skipping or
// assigning each key in turn, never exceeding a key's cap and always
// routing prerequisite spend through its Requires key first.
func enumerate(specs map[string]hunters.AttrSpec, budget int) []map[string]int {
	keys := sortedKeys(specs)
	var out []map[string]int
	var rec func(idx, remaining int, acc map[string]int)
	rec = func(idx, remaining int, acc map[string]int) {
		if idx == len(keys) {
			out = append(out, acc)
			return
		}
		rec(idx+1, remaining, acc)
		key := keys[idx]
		spec := specs[key]
		if spec.Requires != "" && acc[spec.Requires] <= 0 {
			return
		}
		max := remaining
		if !spec.Unlimited && spec.Max < max {
			max = spec.Max
		}
		for spend := 1; spend <= max; spend++ {
			next := make(map[string]int, len(acc))
			for k, v := range acc {
				next[k] = v
			}
			next[key] = spend
			rec(idx+1, remaining-spend, next)
		}
	}
	rec(0, budget, map[string]int{})
	return out
}

func exhaustive(kind hunters.HunterKind, level, attrPts, talentPts int) []hunters.BuildConfig {
	cat := hunters.CatalogFor(kind)
	attrCombos := enumerate(cat.Attributes, attrPts)
	talentCombos := enumerate(cat.Talents, talentPts)
	seen := map[string]bool{}
	var out []hunters.BuildConfig
	for _, ac := range attrCombos {
		for _, tc := range talentCombos {
			b := hunters.NewBuildConfig(kind, level)
			for k, v := range ac {
				b.Attributes[k] = v
			}
			for k, v := range tc {
				b.Talents[k] = v
			}
			if hunters.Validate(b) != nil {
				continue
			}
			key := b.CanonicalKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, b)
		}
	}
	hflog.Debug("generator exhaustive enumeration complete", "kind", kind, "attr_pts", attrPts, "talent_pts", talentPts, "candidates", len(out))
	return out
}

// unlimitedKey returns the catalog's unlimited fallback-sink attribute,
// if any: the alphabetically first unlimited key (essence_of_ylith,
// exo_piercers, release_the_kraken for Melee/Multistrike/Salvo).
func unlimitedKey(specs map[string]hunters.AttrSpec) string {
	for _, k := range sortedKeys(specs) {
		if specs[k].Unlimited {
			return k
		}
	}
	return ""
}

// fillBudget spends budget points across specs via a guided random
// walk: each draw picks a key, redirects into its prerequisite if that
// prerequisite is still unspent, and clamps the step to whatever room
// remains under the key's cap. Any budget that can't be placed because
// every capped key is full drains into the catalog's unlimited sink.
func fillBudget(m map[string]int, specs map[string]hunters.AttrSpec, budget int, rng RandWalkRNG) {
	keys := sortedKeys(specs)
	if len(keys) == 0 {
		return
	}
	sink := unlimitedKey(specs)
	remaining := budget
	attempts := 0
	maxAttempts := (budget+1)*20 + 50
	for remaining > 0 && attempts < maxAttempts {
		attempts++
		key := keys[int(rng.Float64()*float64(len(keys)))%len(keys)]
		spec := specs[key]
		if spec.Requires != "" && m[spec.Requires] <= 0 {
			key = spec.Requires
			spec = specs[key]
		}
		room := remaining
		if !spec.Unlimited {
			if cap := spec.Max - m[key]; cap < room {
				room = cap
			}
		}
		if room <= 0 {
			continue
		}
		stepCap := budget/4 + 1
		if room < stepCap {
			stepCap = room
		}
		step := 1 + int(rng.Float64()*float64(stepCap))
		if step > room {
			step = room
		}
		m[key] += step
		remaining -= step
	}
	if remaining > 0 && sink != "" {
		m[sink] += remaining
	}
}

func randomWalk(kind hunters.HunterKind, level, attrPts, talentPts, count int, rng RandWalkRNG) []hunters.BuildConfig {
	cat := hunters.CatalogFor(kind)
	seen := map[string]bool{}
	var out []hunters.BuildConfig
	attempts := 0
	maxAttempts := count * 20
	for len(out) < count && attempts < maxAttempts {
		attempts++
		b := hunters.NewBuildConfig(kind, level)
		fillBudget(b.Attributes, cat.Attributes, attrPts, rng)
		fillBudget(b.Talents, cat.Talents, talentPts, rng)
		if hunters.Validate(b) != nil {
			continue
		}
		key := b.CanonicalKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// ExtendElitePattern carries a winning build from a smaller curriculum
// tier into a larger one: every already-spent point is kept as-is, the
// additional budget is spent via the same constrained random walk, and
// with probability mutationChance one attribute point moves from an
// already-spent key to another key so repeated promotion doesn't freeze
// the population into local optima. Ported from the reference
// optimizer's extend_elite_pattern.
func ExtendElitePattern(elite hunters.BuildConfig, newAttrPts, newTalentPts int, rng RandWalkRNG, mutationChance float64) hunters.BuildConfig {
	cat := hunters.CatalogFor(elite.Kind)
	out := elite.Clone()

	extraAttr := newAttrPts - sumValues(out.Attributes)
	if extraAttr > 0 {
		fillBudget(out.Attributes, cat.Attributes, extraAttr, rng)
	}
	extraTalent := newTalentPts - sumValues(out.Talents)
	if extraTalent > 0 {
		fillBudget(out.Talents, cat.Talents, extraTalent, rng)
	}

	if mutationChance > 0 && rng.Float64() < mutationChance {
		mutate(out.Attributes, cat.Attributes, rng)
	}
	return out
}

func sumValues(m map[string]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

// mutate moves one point from a random spent key to a random other key
// with room, leaving total spend unchanged.
func mutate(m map[string]int, specs map[string]hunters.AttrSpec, rng RandWalkRNG) {
	var spent []string
	for k, v := range m {
		if v > 0 {
			spent = append(spent, k)
		}
	}
	if len(spent) == 0 {
		return
	}
	sort.Strings(spent)
	from := spent[int(rng.Float64()*float64(len(spent)))%len(spent)]

	keys := sortedKeys(specs)
	if len(keys) == 0 {
		return
	}
	to := keys[int(rng.Float64()*float64(len(keys)))%len(keys)]
	if to == from {
		return
	}
	toSpec := specs[to]
	if toSpec.Requires != "" && m[toSpec.Requires] <= 0 && toSpec.Requires != from {
		return
	}
	if !toSpec.Unlimited && m[to] >= toSpec.Max {
		return
	}
	m[from]--
	m[to]++
}
