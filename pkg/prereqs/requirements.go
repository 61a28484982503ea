package prereqs

import (
	"fmt"
	"maps"
	"slices"

	"github.com/pgxkit/distmeta/pkg/version"
)

// Requirements is one constraint-set: a mapping from dependency name to a
// version range. Adding a dependency that is already present combines the
// two ranges conjunctively: both constraints must hold.
type Requirements struct {
	reqs      map[string]version.Range
	finalized bool
}

// NewRequirements returns an empty, mutable constraint-set.
func NewRequirements() *Requirements {
	return &Requirements{reqs: make(map[string]version.Range)}
}

// Add parses rng and records it for name, conjoining with any existing
// requirement. Fails with ErrInvalidVersionRequirement on a malformed
// range and ErrFinalized after Finalize.
func (r *Requirements) Add(name, rng string) error {
	parsed, err := version.ParseRange(rng)
	if err != nil {
		return fmt.Errorf("%w: %q for dependency %q", ErrInvalidVersionRequirement, rng, name)
	}
	return r.AddRange(name, parsed)
}

// AddRange records an already-parsed range for name, conjoining with any
// existing requirement. Fails with ErrFinalized after Finalize.
func (r *Requirements) AddRange(name string, rng version.Range) error {
	if r.finalized {
		return fmt.Errorf("%w: cannot add requirement for %q", ErrFinalized, name)
	}
	if existing, ok := r.reqs[name]; ok {
		r.reqs[name] = existing.Intersect(rng)
		return nil
	}
	r.reqs[name] = rng
	return nil
}

// Remove drops a dependency. Fails with ErrFinalized after Finalize;
// removing an absent dependency is a no-op.
func (r *Requirements) Remove(name string) error {
	if r.finalized {
		return fmt.Errorf("%w: cannot remove requirement for %q", ErrFinalized, name)
	}
	delete(r.reqs, name)
	return nil
}

// RequirementFor returns the range recorded for name.
func (r *Requirements) RequirementFor(name string) (version.Range, bool) {
	rng, ok := r.reqs[name]
	return rng, ok
}

// Has reports whether name is required.
func (r *Requirements) Has(name string) bool {
	_, ok := r.reqs[name]
	return ok
}

// RequiredDeps lists the dependency names, sorted.
func (r *Requirements) RequiredDeps() []string {
	return slices.Sorted(maps.Keys(r.reqs))
}

// Len returns the number of dependencies in the set.
func (r *Requirements) Len() int {
	return len(r.reqs)
}

// IsEmpty reports whether the set holds no dependencies.
func (r *Requirements) IsEmpty() bool {
	return len(r.reqs) == 0
}

// AsStringMap serializes the set to primitive dependency→range form.
func (r *Requirements) AsStringMap() map[string]string {
	out := make(map[string]string, len(r.reqs))
	for name, rng := range r.reqs {
		out[name] = rng.String()
	}
	return out
}

// Finalize makes the set read-only. Idempotent and irreversible.
func (r *Requirements) Finalize() {
	r.finalized = true
}

// IsFinalized reports whether the set is read-only.
func (r *Requirements) IsFinalized() bool {
	return r.finalized
}

// Clone returns a mutable copy of the set, whatever the original's state.
func (r *Requirements) Clone() *Requirements {
	clone := NewRequirements()
	maps.Copy(clone.reqs, r.reqs)
	return clone
}
