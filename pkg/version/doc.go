// Package version answers the two questions the metadata toolkit keeps
// asking about opaque version strings: "is this a valid semantic version?"
// and "is this a valid version-range expression?", and combines range
// expressions conjunctively when prerequisite sets are merged.
//
// A range expression is a comma-separated list of comparisons. Each
// comparison is a semantic version with an optional leading operator
// (==, =, !=, >=, <=, >, <). The literal "0" is the conventional
// "any version" requirement and is accepted both as a whole expression
// and as a list element.
//
// # Usage
//
//	version.IsVersion("1.2.0")          // true
//	version.IsRange(">=1.2.0, <2.0.0")  // true
//
//	r1, _ := version.ParseRange(">=1.0.0")
//	r2, _ := version.ParseRange("<2.0.0")
//	both := r1.Intersect(r2)            // satisfied only by [1.0.0, 2.0.0)
//
// The zero Range value is the unbounded range; it stringifies as "0" and
// every valid version matches it.
//
// Parsing and matching are delegated to github.com/Masterminds/semver/v3.
// The package holds no state and is safe for concurrent use.
package version
