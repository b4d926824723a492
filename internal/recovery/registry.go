// Package recovery substitutes known-safe defaults for violated profile
// fields. Two independent registries exist, the "spec" tier applied first
// and the "proto" tier applied to whatever is still broken, orchestrated
// by the Pipeline, which always re-validates before declaring success.
package recovery

import (
	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/record"
	"github.com/strelka-dev/a7p/internal/schema"
)

// FixFunc mutates the record at a known field, typically replacing the
// value with a registered default.
type FixFunc func(root record.Object)

// Registry is an immutable, tier-scoped table of corrective functions
// keyed by profile field. Build one with NewSpecRegistry or
// NewProtoRegistry at startup; registries are read-only afterwards and safe
// for concurrent use.
type Registry struct {
	tier  string
	fixes map[profile.FieldKey]FixFunc
}

func newRegistry(tier string) *Registry {
	return &Registry{tier: tier, fixes: make(map[profile.FieldKey]FixFunc)}
}

// Tier returns the registry's tier name ("spec" or "proto").
func (r *Registry) Tier() string { return r.tier }

func (r *Registry) register(key profile.FieldKey, fn FixFunc) {
	r.fixes[key] = fn
}

// lookup resolves a fix for a violation path: the leaf field name takes
// priority, the full dotted path is the fallback. An unregistered path is
// a skip, never a failure.
func (r *Registry) lookup(p record.Path) (FixFunc, bool) {
	if fn, ok := r.fixes[profile.FieldKey(p.Leaf())]; ok {
		return fn, true
	}
	fn, ok := r.fixes[profile.FieldKey(p.Dotted())]
	return fn, ok
}

// RecoverOne attempts to fix a single violation, snapshotting the value
// at its path before and after the fix.
func (r *Registry) RecoverOne(root record.Object, v *schema.Violation) Result {
	fn, ok := r.lookup(v.Path)
	if !ok {
		return Result{Path: v.Path, Recovered: false}
	}
	old, _ := record.Lookup(root, v.Path)
	old = record.Clone(old)
	fn(root)
	updated, _ := record.Lookup(root, v.Path)
	return Result{Path: v.Path, Recovered: true, OldValue: old, NewValue: updated}
}

// Recover applies the registry to every violation in the order produced by
// validation and reports each substitution or skip.
func (r *Registry) Recover(root record.Object, violations []*schema.Violation) []Result {
	results := make([]Result, 0, len(violations))
	for _, v := range violations {
		results = append(results, r.RecoverOne(root, v))
	}
	return results
}
