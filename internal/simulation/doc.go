// Package simulation provides a scenario-driven test harness for the
// projection engine. A Scenario names a set of parameter overrides; the
// Runner executes the full model and hands the projection to domain
// assertions (hours conservation, wage bounds, σ bounds, scarcity
// invariants). Engine and solver behavior is validated exclusively through
// this harness so tests read as economic claims, not plumbing.
package simulation
