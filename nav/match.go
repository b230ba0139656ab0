package nav

import "strings"

// IsActive reports whether a nav entry pointing at entryPath should render as active
// for the page at currentPath. The root path only matches itself; any other entry
// also matches nested paths below it (/properties matches /properties/42).
func IsActive(currentPath, entryPath string) bool {
	cur := normalizePath(currentPath)
	entry := normalizePath(entryPath)

	if cur == entry {
		return true
	}
	if entry == "/" {
		return false
	}
	return strings.HasPrefix(cur, entry+"/")
}

// ActiveEntry returns the index of the top-level entry that owns currentPath,
// preferring the longest matching path. It returns -1 when no entry matches.
func ActiveEntry(currentPath string, entries []Entry) int {
	best, bestLen := -1, -1
	for i, e := range entries {
		if !IsActive(currentPath, e.Path) {
			continue
		}
		if l := len(normalizePath(e.Path)); l > bestLen {
			best, bestLen = i, l
		}
	}
	return best
}

// normalizePath drops query and fragment parts and any trailing slash (except on root)
func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	for len(p) > 1 && strings.HasSuffix(p, "/") {
		p = p[:len(p)-1]
	}
	return p
}
