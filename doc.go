// Package distmeta reads, validates, and manipulates distribution
// metadata for PostgreSQL extensions.
//
// A metadata document, the decoded form of a META.json file, describes
// a distribution: its name, version, license, the extensions it provides,
// and the prerequisites it needs at each lifecycle phase. This package
// ties the two underlying engines together:
//
//   - pkg/metaspec walks a document against a versioned declarative
//     schema and collects every problem in one pass
//   - pkg/prereqs models the per-phase, per-relationship version
//     requirements with merge and finalize semantics
//
// Basic Usage:
//
//	meta, err := distmeta.New(doc)
//	if err != nil {
//	    var verr *distmeta.ValidationError
//	    if errors.As(err, &verr) {
//	        for _, msg := range verr.Errors {
//	            fmt.Println(msg)
//	        }
//	    }
//	    return err
//	}
//
//	fmt.Println(meta.Name(), meta.Version())
//	reqs, _ := meta.Prereqs().RequirementsFor("runtime", "requires")
//
// The package performs no I/O and no text parsing: decode the JSON (or
// whatever carrier format you use) yourself and hand over the resulting
// map[string]any.
//
// A Meta is a read-only view over its document; accessors normalize the
// single-value shorthands the schema allows (a lone maintainer string
// becomes a one-element slice). Use AsStruct for an independent deep copy
// of the raw document.
package distmeta
