package hunters

import "fmt"

// ValidationViolation is a single reason a BuildConfig was rejected.
type ValidationViolation struct {
	Kind    string // unknown_key, over_budget, over_max, missing_prereq, point_gate_violation, exclusion_violation, requires_all_maxed_violation
	Key     string
	Detail  string
}

func (v ValidationViolation) String() string {
	return fmt.Sprintf("%s[%s]: %s", v.Kind, v.Key, v.Detail)
}

// InvalidBuildError aggregates every violation found while validating
// a BuildConfig. Callers inspect Violations rather than string-parsing
// Error().
type InvalidBuildError struct {
	Violations []ValidationViolation
}

func (e *InvalidBuildError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid build"
	}
	return fmt.Sprintf("invalid build: %s (and %d more)", e.Violations[0], len(e.Violations)-1)
}

// SimulationAbortError never crosses a Go error return: it's recorded
// on RunResult.Error/ErrorReason so a single pathological run never
// fails an entire batch.
type SimulationAbortError struct {
	Reason string
}

func (e *SimulationAbortError) Error() string { return "simulation aborted: " + e.Reason }
