// Package prereqs models the prerequisite dependency sets of a
// distribution: version requirements keyed by lifecycle phase (configure,
// build, test, runtime, develop) and relationship strength (requires,
// recommends, suggests). Phases and relationships outside the fixed
// vocabulary are legal when they carry the x_/X_ extension prefix.
//
// A model is built from the decoded prereqs subtree of a metadata
// document:
//
//	p, err := prereqs.New(map[string]any{
//	    "runtime": map[string]any{
//	        "requires": map[string]any{"pgtap": ">=1.1.0"},
//	    },
//	})
//
// Construction assumes structurally pre-validated input (that is the
// metadata validator's job): illegal phases and relationships are silently
// dropped, but a malformed version range is a hard construction error.
//
// Models merge with union-of-constraints semantics: when two sources
// require the same dependency, the resulting range is the conjunction of
// both, not an overwrite:
//
//	merged := base.MergedWith(extra)
//
// # Finalization
//
// A model starts mutable. Finalize flips it, and every requirement cell
// it holds, into a terminal read-only state; any later mutation attempt
// fails with ErrFinalized. Finalizing and then sharing across goroutines
// is the intended way to use one model concurrently. Clone always returns
// a fresh mutable snapshot, whatever the original's state.
//
// Invalid phase or relationship arguments and mutation-after-finalize are
// caller bugs, not data problems, and are reported as errors immediately
// rather than being absorbed.
package prereqs
