// Package metaspec validates decoded distribution-metadata documents
// against a versioned, declarative schema.
//
// A document is any tree of maps with string keys, lists, strings,
// numbers, booleans, and nulls, typically the result of decoding a
// META.json file. The package never parses text itself; feed it the
// already-decoded value.
//
// Validation walks the document against a rule tree selected by schema
// version (the document's meta-spec.version field, "1.0.0" by default).
// Problems never abort the walk: every one is collected as a
// human-readable message carrying the path to the offending field, so a
// single pass reports everything that is wrong.
//
//	v := metaspec.New(doc)
//	if !v.IsValid() {
//	    for _, msg := range v.Errors() {
//	        fmt.Println(msg)
//	    }
//	}
//
// Messages have the form
//
//	Missing mandatory field, 'name' (name) [Validation: 1.0.0]
//
// with the parenthesized path joined by " -> " from the document root to
// the failure point.
//
// # Error categories
//
// Data problems (wrong shape, missing mandatory fields, bad values)
// surface as plain validation messages. A malformed rule tree (a defect
// in the schema definition itself, not in the document) surfaces as a
// distinct "Specification error" message so it cannot be mistaken for bad
// input data.
//
// # Concurrency
//
// Each Validator owns its private path stack and error list; the rule
// trees are built once and never mutated. Validating different documents
// concurrently is safe as long as each run uses its own Validator.
package metaspec
