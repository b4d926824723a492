package recovery

import (
	"fmt"

	"github.com/strelka-dev/a7p/internal/profile"
	"github.com/strelka-dev/a7p/internal/record"
	"github.com/strelka-dev/a7p/internal/schema"
)

// Outcome is the pipeline's report: the final validation verdict, the
// residual violations when still invalid, and every recovery attempt made
// across both tiers.
type Outcome struct {
	Valid      bool
	Violations []*schema.Violation
	Results    []Result
}

// Summary renders the recovered/skipped totals.
func (o Outcome) Summary() string {
	recovered := 0
	for _, r := range o.Results {
		if r.Recovered {
			recovered++
		}
	}
	return fmt.Sprintf("Total: %d, Recovered: %d, Skipped: %d",
		len(o.Results), recovered, len(o.Results)-recovered)
}

// Pipeline orchestrates the two-tier recovery cascade. Construct once and
// reuse; it is immutable and safe for concurrent use on independent
// records.
type Pipeline struct {
	schema schema.Schema
	spec   *Registry
	proto  *Registry
}

// NewPipeline builds the default pipeline over the profile schema and both
// default registries.
func NewPipeline() *Pipeline {
	return New(profile.NewSchema(), NewSpecRegistry(), NewProtoRegistry())
}

// New builds a pipeline from explicit parts.
func New(s schema.Schema, spec, proto *Registry) *Pipeline {
	return &Pipeline{schema: s, spec: spec, proto: proto}
}

// Run validates root and, when invalid, applies the spec tier, re-checks,
// applies the proto tier to whatever remains, and validates once more for
// the report. The record is mutated in place; ownership stays with the
// caller throughout. Running the pipeline on an already-valid record is a
// no-op with zero results, so a second run after full recovery changes
// nothing.
//
// Run never fails on partial recovery: an unrecoverable violation simply
// stays in Outcome.Violations with its Recovered=false result.
func (p *Pipeline) Run(root record.Object) Outcome {
	initial := p.schema.Validate(root, nil, false)
	if initial == nil {
		return Outcome{Valid: true}
	}

	results := p.spec.Recover(root, initial.Leaves())

	// Cheap accept gate between tiers.
	if p.schema.Validate(root, nil, true) == nil {
		return Outcome{Valid: true, Results: results}
	}

	// The violation set may differ from the initial one: spec-tier fixes
	// resolve some issues and sibling changes can surface others.
	if remaining := p.schema.Validate(root, nil, false); remaining != nil {
		results = append(results, p.proto.Recover(root, remaining.Leaves())...)
	}

	final := p.schema.Validate(root, nil, false)
	out := Outcome{Valid: final == nil, Results: results}
	if final != nil {
		out.Violations = final.Leaves()
	}
	return out
}

// Validate runs a standalone validation of root against the pipeline's
// schema without attempting recovery.
func (p *Pipeline) Validate(root record.Object, failFast bool) error {
	return schema.Validate(p.schema, root, failFast)
}
