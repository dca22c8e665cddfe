package app

import "repomap/internal/types"

type ValidateRequest struct {
	MapPath string
}

type ValidateResult struct {
	Source          string
	RepositoryCount int
	RuleCount       int
}

type ResolveRequest struct {
	MapPath string
	Project string
}

type ResolveResult struct {
	Project string
	// Groups are the emitted index groups in priority order. When the
	// search exhausted the rule list the final group is the empty
	// sentinel and Exhausted is set.
	Groups    []types.IndexGroup
	Exhausted bool
}

type LookupRequest struct {
	MapPath string
	Project string
}

type LookupResult struct {
	Project string
	// Found reports whether any mapped index served a page for the
	// project. IndexURL and Files are only set when it did.
	Found    bool
	IndexURL string
	Files    []types.ReleaseFile
}
