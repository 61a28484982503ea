package metaspec

// knownSpecs maps schema versions to their rule trees. Built once at
// package init and treated as read-only afterwards, which is what makes
// sharing validators across goroutines safe.
var knownSpecs = map[string]*node{
	"1.0.0": specV1(),
}

// specV1 is the 1.0.0 schema for distribution metadata documents.
func specV1() *node {
	// Keys outside the fixed vocabulary must carry the x_/X_ extension
	// prefix and may hold any value.
	custom := &wildcard{Name: customKey, Rule: leaf(anything)}

	return mapOf(map[string]*node{
		"abstract":       mandatory(leaf(stringVal)),
		"maintainer":     mandatory(lazylist(leaf(stringVal))),
		"generated_by":   mandatory(leaf(stringVal)),
		"license":        mandatory(lazylist(leaf(license))),
		"name":           mandatory(leaf(stringVal)),
		"release_status": mandatory(leaf(releaseStatus)),
		"version":        mandatory(leaf(versionVal)),

		"meta-spec": mandatory(mapOf(map[string]*node{
			"version": mandatory(leaf(versionVal)),
			"url":     leaf(urlVal),
		}, custom)),

		"provides": mandatory(mapOf(nil, &wildcard{
			Name: module,
			Rule: mapOf(map[string]*node{
				"file":     mandatory(leaf(file)),
				"version":  leaf(versionVal),
				"abstract": leaf(stringVal),
				"docfile":  leaf(file),
			}, custom),
		})),

		"description": leaf(stringVal),
		"tags":        lazylist(leaf(stringVal)),

		"no_index": mapOf(map[string]*node{
			"file":      list(leaf(stringVal)),
			"directory": list(leaf(stringVal)),
		}, custom),

		"prereqs": mapOf(nil, &wildcard{
			Name: phase,
			Rule: mapOf(nil, &wildcard{
				Name: relation,
				Rule: mapOf(nil, &wildcard{
					Name: module,
					Rule: leaf(exversion),
				}),
			}),
		}),

		"resources": mapOf(map[string]*node{
			"license":  lazylist(leaf(urlVal)),
			"homepage": leaf(urlVal),
			"bugtracker": mapOf(map[string]*node{
				"web":    leaf(urlVal),
				"mailto": leaf(stringVal),
			}, custom),
			"repository": mapOf(map[string]*node{
				"web":  leaf(urlVal),
				"url":  leaf(urlVal),
				"type": leaf(stringVal),
			}, custom),
		}, custom),
	}, custom)
}
