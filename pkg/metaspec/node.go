package metaspec

// kind identifies which shape of rule a node carries.
type kind int

const (
	kindValue kind = iota
	kindMap
	kindList
	kindLazyList
)

// predicate checks a single leaf value. Implementations report failures
// through the validator's error sink and return false; they never panic.
type predicate func(v *Validator, key string, value any) bool

// node is one rule in a schema tree. Exactly one kind-specific field must
// be populated for the node's kind: Value for kindValue, Entries and/or
// Wildcard for kindMap, Elem for kindList and kindLazyList. A node that
// violates this is a defect in the schema definition and is reported as a
// specification error, never as a data error.
type node struct {
	Kind      kind
	Mandatory bool

	Value    predicate        // kindValue
	Entries  map[string]*node // kindMap: explicitly named keys
	Wildcard *wildcard        // kindMap: fallback for unlisted keys
	Elem     *node            // kindList, kindLazyList: element rule
}

// wildcard validates map keys that have no explicit entry: Name checks the
// key itself, Rule checks the key's value.
type wildcard struct {
	Name predicate
	Rule *node
}

// Builders keep the schema tables in spec.go readable.

func leaf(p predicate) *node { return &node{Kind: kindValue, Value: p} }

func list(elem *node) *node { return &node{Kind: kindList, Elem: elem} }

func lazylist(elem *node) *node { return &node{Kind: kindLazyList, Elem: elem} }

func mapOf(entries map[string]*node, wc *wildcard) *node {
	return &node{Kind: kindMap, Entries: entries, Wildcard: wc}
}

func mandatory(n *node) *node {
	n.Mandatory = true
	return n
}
