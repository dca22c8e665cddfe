package core

import "strings"

// matchGlob reports whether name matches pattern, case-sensitively.
// '*' matches any run of characters, including none; everything else
// matches literally. The map file schema restricts patterns to word
// characters, '/' and '*', so no other wildcard needs handling — and
// unlike path.Match, '*' here crosses '/' boundaries.
func matchGlob(pattern, name string) bool {
	segments := strings.Split(pattern, "*")
	if len(segments) == 1 {
		return name == pattern
	}

	if !strings.HasPrefix(name, segments[0]) {
		return false
	}
	name = name[len(segments[0]):]

	last := segments[len(segments)-1]
	if !strings.HasSuffix(name, last) {
		return false
	}
	name = name[:len(name)-len(last)]

	// Middle segments greedily left to right. Each must appear after
	// the previous one; '*' absorbs the gaps.
	for _, segment := range segments[1 : len(segments)-1] {
		idx := strings.Index(name, segment)
		if idx < 0 {
			return false
		}
		name = name[idx+len(segment):]
	}
	return true
}
