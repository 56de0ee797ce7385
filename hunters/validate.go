package hunters

// Validate checks a BuildConfig against its kind's Catalog, collecting
// every violation rather than failing fast, so a caller building UI
// feedback can show the whole picture at once.
//
// Two attribute budgets apply simultaneously: the level-scaled spend
// cap (3*level, the practical per-level allowance a player actually
// has) and the reference's fixed validate_build() ceiling
// (Catalog.MaxAttributePoints, the absolute maximum reachable were
// every attribute maxed). The binding constraint is whichever is
// smaller. Talents are capped at level (one talent point per level).
// legacy_of_ultima may only carry points once every other bounded
// talent of the kind is at its maximum.
func Validate(b BuildConfig) error {
	cat := catalogFor(b.Kind)
	var violations []ValidationViolation

	violations = append(violations, checkKnownKeys(b.Attributes, cat.Attributes, "attribute")...)
	violations = append(violations, checkKnownKeys(b.Talents, cat.Talents, "talent")...)
	violations = append(violations, checkKnownKeys(b.Inscryptions, cat.Inscriptions, "inscription")...)

	attrBudget := 3 * b.Level
	if cat.MaxAttributePoints > 0 && cat.MaxAttributePoints < attrBudget {
		attrBudget = cat.MaxAttributePoints
	}
	violations = append(violations, checkBudget(b.Attributes, attrBudget, "attribute")...)
	violations = append(violations, checkBudget(b.Talents, b.Level, "talent")...)

	violations = append(violations, checkPrereqs(b.Attributes, cat.Attributes)...)
	violations = append(violations, checkPrereqs(b.Talents, cat.Talents)...)

	for _, group := range cat.ExclusionGroups {
		spent := 0
		for _, key := range group {
			if b.Talents[key] > 0 || b.Attributes[key] > 0 {
				spent++
			}
		}
		if spent > 1 {
			for _, key := range group {
				if b.Talents[key] > 0 || b.Attributes[key] > 0 {
					violations = append(violations, ValidationViolation{
						Kind: "exclusion_violation", Key: key,
						Detail: "mutually exclusive with another key in its group",
					})
				}
			}
		}
	}

	const allMaxedTalent = "legacy_of_ultima"
	if b.Talents[allMaxedTalent] > 0 {
		for key, spec := range cat.Talents {
			if key == allMaxedTalent || spec.Unlimited {
				continue
			}
			if b.Talents[key] < spec.Max {
				violations = append(violations, ValidationViolation{
					Kind: "requires_all_maxed_violation", Key: allMaxedTalent,
					Detail: "every other bounded talent must be at its maximum",
				})
				break
			}
		}
	}

	if len(violations) > 0 {
		return &InvalidBuildError{Violations: violations}
	}
	return nil
}

func checkKnownKeys(m map[string]int, specs map[string]AttrSpec, kind string) []ValidationViolation {
	var out []ValidationViolation
	for k, v := range m {
		spec, known := specs[k]
		if !known {
			out = append(out, ValidationViolation{Kind: "unknown_key", Key: k, Detail: "not a known " + kind})
			continue
		}
		if v < 0 {
			out = append(out, ValidationViolation{Kind: "over_max", Key: k, Detail: "negative allocation"})
			continue
		}
		if !spec.Unlimited && v > spec.Max {
			out = append(out, ValidationViolation{Kind: "over_max", Key: k, Detail: "exceeds per-key maximum"})
		}
	}
	return out
}

func checkBudget(m map[string]int, budget int, kind string) []ValidationViolation {
	total := 0
	for _, v := range m {
		if v > 0 {
			total += v
		}
	}
	if total > budget {
		return []ValidationViolation{{Kind: "over_budget", Key: kind, Detail: "total points exceed budget"}}
	}
	return nil
}

// checkPrereqs reports missing_prereq for any key with at least one
// point allocated whose Requires key carries zero.
func checkPrereqs(m map[string]int, specs map[string]AttrSpec) []ValidationViolation {
	var out []ValidationViolation
	for k, v := range m {
		if v <= 0 {
			continue
		}
		spec, known := specs[k]
		if !known || spec.Requires == "" {
			continue
		}
		if m[spec.Requires] <= 0 {
			out = append(out, ValidationViolation{
				Kind: "missing_prereq", Key: k,
				Detail: "requires at least one point in " + spec.Requires,
			})
		}
	}
	return out
}
