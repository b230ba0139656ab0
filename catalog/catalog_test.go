package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByType(t *testing.T) {
	assert.Len(t, FilterByType(Properties, ""), len(Properties))
	assert.Len(t, FilterByType(Properties, "house"), 2)
	assert.Len(t, FilterByType(Properties, "Houses"), 2)
	assert.Len(t, FilterByType(Properties, "villas"), 1)
	assert.Empty(t, FilterByType(Properties, "castle"))
}

func TestSearch(t *testing.T) {
	got := Search(Properties, "  ca ")
	assert.NotEmpty(t, got)
	for _, p := range got {
		assert.Contains(t, strings.ToLower(p.Title+p.Location+p.Type), "ca")
	}
	assert.Len(t, Search(Properties, "miami"), 1)
	assert.Len(t, Search(Properties, ""), len(Properties))
}

func TestFeatured(t *testing.T) {
	for _, p := range Featured(Properties) {
		assert.True(t, p.Featured, p.Title)
	}
	assert.Len(t, Featured(Properties), 4)
}

func TestPostBySlug(t *testing.T) {
	p, ok := PostBySlug("typescript-best-practices")
	assert.True(t, ok)
	assert.Equal(t, "Mike Johnson", p.Author)

	_, ok = PostBySlug("nope")
	assert.False(t, ok)
}

func TestFilterVideos(t *testing.T) {
	assert.Len(t, FilterVideos(VideoSteps, ""), len(VideoSteps))
	assert.Len(t, FilterVideos(VideoSteps, AllVideos), len(VideoSteps))
	assert.Len(t, FilterVideos(VideoSteps, "castle"), len(VideoSteps), "unknown categories show everything")

	advanced := FilterVideos(VideoSteps, "advanced")
	assert.Len(t, advanced, 2)
	for _, v := range advanced {
		assert.Equal(t, "Advanced", v.Category)
	}
	assert.Len(t, FilterVideos(VideoSteps, "Expert"), 1)
}

func TestVideoByID(t *testing.T) {
	v, ok := VideoByID(3)
	assert.True(t, ok)
	assert.Equal(t, "Intermediate", v.Category)
	assert.True(t, v.Embedded())

	v, _ = VideoByID(2)
	assert.False(t, v.Embedded())

	_, ok = VideoByID(42)
	assert.False(t, ok)
}
