package prereqs

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
)

var (
	phases    = []string{"configure", "build", "test", "runtime", "develop"}
	relations = []string{"requires", "recommends", "suggests"}
)

// Phases lists the fixed lifecycle phases.
func Phases() []string {
	return slices.Clone(phases)
}

// Relations lists the fixed relationship types.
func Relations() []string {
	return slices.Clone(relations)
}

// ValidPhase reports whether name is a legal phase: one of the fixed list,
// or x_/X_ prefixed.
func ValidPhase(name string) bool {
	return slices.Contains(phases, name) || hasCustomPrefix(name)
}

// ValidRelation reports whether name is a legal relationship type: one of
// the fixed list, or x_/X_ prefixed.
func ValidRelation(name string) bool {
	return slices.Contains(relations, name) || hasCustomPrefix(name)
}

func hasCustomPrefix(s string) bool {
	return len(s) >= 2 && (s[0] == 'x' || s[0] == 'X') && s[1] == '_'
}

// Prereqs holds the requirement sets of a distribution, keyed by phase and
// relationship type. A cell exists only while it has at least one
// dependency; empty cells are pruned on serialization.
//
// A Prereqs instance is single-owner mutable state. Finalize it before
// sharing across goroutines.
type Prereqs struct {
	cells     map[string]map[string]*Requirements
	finalized bool
}

// NewEmpty returns a model with no requirements.
func NewEmpty() *Prereqs {
	return &Prereqs{cells: make(map[string]map[string]*Requirements)}
}

// New builds a model from the decoded prereqs subtree of a metadata
// document: phase → relation → dependency → range. Input is assumed to be
// pre-validated; illegal phases, illegal relationship types, and cells of
// the wrong shape are dropped silently. A malformed version range is a
// construction error wrapping ErrInvalidVersionRequirement.
func New(spec map[string]any) (*Prereqs, error) {
	p := NewEmpty()
	for _, phase := range slices.Sorted(maps.Keys(spec)) {
		if !ValidPhase(phase) {
			continue
		}
		relMap, ok := spec[phase].(map[string]any)
		if !ok {
			continue
		}
		for _, rel := range slices.Sorted(maps.Keys(relMap)) {
			if !ValidRelation(rel) {
				continue
			}
			deps, ok := relMap[rel].(map[string]any)
			if !ok || len(deps) == 0 {
				continue
			}
			reqs := NewRequirements()
			for _, name := range slices.Sorted(maps.Keys(deps)) {
				rng, ok := rangeString(deps[name])
				if !ok {
					return nil, fmt.Errorf("%w: dependency %q in %s.%s", ErrInvalidVersionRequirement, name, phase, rel)
				}
				if err := reqs.Add(name, rng); err != nil {
					return nil, fmt.Errorf("%s.%s: %w", phase, rel, err)
				}
			}
			p.setCell(phase, rel, reqs)
		}
	}
	return p, nil
}

// rangeString renders a raw document value as a range expression. Numbers
// are legal ("0" decodes as an int in YAML documents); containers and
// nulls are not.
func rangeString(value any) (string, bool) {
	switch val := value.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	default:
		return "", false
	}
}

func (p *Prereqs) setCell(phase, rel string, reqs *Requirements) {
	rels := p.cells[phase]
	if rels == nil {
		rels = make(map[string]*Requirements)
		p.cells[phase] = rels
	}
	rels[rel] = reqs
}

// cell reads a requirement set without creating it.
func (p *Prereqs) cell(phase, rel string) *Requirements {
	return p.cells[phase][rel]
}

// RequirementsFor returns the requirement set for a (phase, relation)
// pair, lazily creating an empty one so callers can accumulate into it.
// Illegal names fail with ErrInvalidPhase or ErrInvalidRelation. On a
// finalized model the returned set is itself finalized.
func (p *Prereqs) RequirementsFor(phase, rel string) (*Requirements, error) {
	if !ValidPhase(phase) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhase, phase)
	}
	if !ValidRelation(rel) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRelation, rel)
	}

	reqs := p.cell(phase, rel)
	if reqs == nil {
		reqs = NewRequirements()
		if p.finalized {
			reqs.Finalize()
		}
		p.setCell(phase, rel, reqs)
	}
	return reqs, nil
}

// MergedWith unions the model with others into a brand-new, non-finalized
// model. For every legal (phase, relation) pair (the fixed vocabulary
// plus any extension names present in an input) each source's
// requirements are added in turn, so a dependency named by several sources
// ends up with the conjunction of their ranges. Cells left empty are
// omitted. The inputs are not modified.
func (p *Prereqs) MergedWith(others ...*Prereqs) *Prereqs {
	sources := make([]*Prereqs, 0, len(others)+1)
	sources = append(sources, p)
	sources = append(sources, others...)

	merged := NewEmpty()
	for _, phase := range mergeKeys(phases, sources, phaseKeys) {
		for _, rel := range mergeKeys(relations, sources, relationKeys) {
			acc := NewRequirements()
			for _, src := range sources {
				cell := src.cell(phase, rel)
				if cell == nil {
					continue
				}
				for _, name := range cell.RequiredDeps() {
					rng, _ := cell.RequirementFor(name)
					// acc is never finalized here, so AddRange cannot fail.
					_ = acc.AddRange(name, rng)
				}
			}
			if acc.IsEmpty() {
				continue
			}
			merged.setCell(phase, rel, acc)
		}
	}
	return merged
}

// mergeKeys returns the fixed vocabulary extended with any extension names
// the sources carry, in stable order.
func mergeKeys(fixed []string, sources []*Prereqs, keysOf func(*Prereqs) []string) []string {
	out := slices.Clone(fixed)
	var extra []string
	for _, src := range sources {
		for _, k := range keysOf(src) {
			if !slices.Contains(out, k) && !slices.Contains(extra, k) {
				extra = append(extra, k)
			}
		}
	}
	slices.Sort(extra)
	return append(out, extra...)
}

func phaseKeys(p *Prereqs) []string {
	return slices.Sorted(maps.Keys(p.cells))
}

func relationKeys(p *Prereqs) []string {
	var out []string
	for _, rels := range p.cells {
		for rel := range rels {
			if !slices.Contains(out, rel) {
				out = append(out, rel)
			}
		}
	}
	slices.Sort(out)
	return out
}

// AsStringMap serializes the non-empty cells back to the primitive
// phase → relation → dependency → range form used by metadata documents.
func (p *Prereqs) AsStringMap() map[string]map[string]map[string]string {
	out := make(map[string]map[string]map[string]string)
	for phase, rels := range p.cells {
		for rel, reqs := range rels {
			if reqs.IsEmpty() {
				continue
			}
			if out[phase] == nil {
				out[phase] = make(map[string]map[string]string)
			}
			out[phase][rel] = reqs.AsStringMap()
		}
	}
	return out
}

// Finalize makes the model and every requirement set it holds read-only.
// Idempotent and irreversible.
func (p *Prereqs) Finalize() {
	p.finalized = true
	for _, rels := range p.cells {
		for _, reqs := range rels {
			reqs.Finalize()
		}
	}
}

// IsFinalized reports whether the model is read-only.
func (p *Prereqs) IsFinalized() bool {
	return p.finalized
}

// Clone deep-copies the model by serializing and reconstructing it. The
// clone is always mutable, whatever the original's state.
func (p *Prereqs) Clone() *Prereqs {
	spec := make(map[string]any)
	for phase, rels := range p.AsStringMap() {
		relAny := make(map[string]any, len(rels))
		for rel, deps := range rels {
			depAny := make(map[string]any, len(deps))
			for name, rng := range deps {
				depAny[name] = rng
			}
			relAny[rel] = depAny
		}
		spec[phase] = relAny
	}

	// Every stored range already round-tripped through the parser once, so
	// reconstruction cannot fail.
	clone, _ := New(spec)
	return clone
}
