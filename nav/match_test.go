package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsActiveRootIsExactOnly(t *testing.T) {
	for _, p := range []string{"/about", "/properties/42", "/x", "/blog/first-post"} {
		assert.False(t, IsActive(p, "/"), "root must not match %s", p)
	}
	assert.True(t, IsActive("/", "/"))
}

func TestIsActiveNestedAndSeparator(t *testing.T) {
	for _, e := range []string{"/properties", "/skills", "/blog", "/a/b"} {
		assert.True(t, IsActive(e, e), "exact %s", e)
		assert.True(t, IsActive(e+"/123", e), "nested %s", e)
		assert.False(t, IsActive(e+"x", e), "no separator %s", e)
	}
}

func TestIsActiveScenarios(t *testing.T) {
	testCases := []struct {
		current string
		entry   string
		want    bool
	}{
		{"/properties/42", "/properties", true},
		{"/properties-extra", "/properties", false},
		{"/about/", "/about", true},
		{"/about?tab=team", "/about", true},
		{"/contact#form", "/contact", true},
		{"/", "/contact", false},
		{"/skills/go", "/about", false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, IsActive(tc.current, tc.entry), "IsActive(%q, %q)", tc.current, tc.entry)
	}
}

func TestActiveEntryPrefersLongestPath(t *testing.T) {
	entries := []Entry{
		{Label: "Home", Path: "/"},
		{Label: "Skills", Path: "/skills"},
		{Label: "Go", Path: "/skills/go"},
	}

	assert.Equal(t, 0, ActiveEntry("/", entries))
	assert.Equal(t, 1, ActiveEntry("/skills/rust", entries))
	assert.Equal(t, 2, ActiveEntry("/skills/go/generics", entries))
	assert.Equal(t, -1, ActiveEntry("/pricing", entries))
}
