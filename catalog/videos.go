package catalog

import "strings"

// VideoStep is one tutorial in the video gallery
type VideoStep struct {
	ID          int
	Title       string
	Description string
	Thumbnail   string
	URL         string // an embeddable player URL, or a direct .mp4
	Duration    string
	Category    string
}

// Embedded reports whether the step plays in an iframe rather than a video element
func (v VideoStep) Embedded() bool {
	return !strings.HasSuffix(strings.ToLower(v.URL), ".mp4")
}

// AllVideos is the filter value that shows every step
const AllVideos = "All"

// VideoCategories is the learning path, easiest first
var VideoCategories = []string{"Beginner", "Intermediate", "Advanced", "Expert"}

const videoThumb = "/static/img/video-thumb.svg"

var VideoSteps = []VideoStep{
	{1, "Step 1: Introduction & Overview", "Get started with the basics and understand the fundamentals", videoThumb, "https://www.youtube.com/embed/3IVCeyrFch4", "5:30", "Beginner"},
	{2, "Step 2: Setup & Configuration", "Learn how to set up your environment and configure settings", videoThumb, "https://videos.pexels.com/video-files/3209828/3209828-uhd_2560_1440_25fps.mp4", "8:45", "Beginner"},
	{3, "Step 3: Core Concepts", "Master the essential concepts and techniques", videoThumb, "https://www.youtube.com/embed/_k0gSkyxhr8", "12:20", "Intermediate"},
	{4, "Step 4: Advanced Features", "Explore advanced features and best practices", videoThumb, "https://videos.pexels.com/video-files/3209820/3209820-uhd_2560_1440_25fps.mp4", "15:10", "Advanced"},
	{5, "Step 5: Real-world Examples", "Apply your knowledge with practical examples", videoThumb, "https://www.youtube.com/embed/3IVCeyrFch4", "18:30", "Advanced"},
	{6, "Step 6: Final Project", "Build a complete project from start to finish", videoThumb, "https://www.youtube.com/embed/3IVCeyrFch4", "25:45", "Expert"},
}

// VideoCategory canonicalises a category filter. Unknown or empty values mean AllVideos.
func VideoCategory(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range VideoCategories {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return AllVideos
}

// FilterVideos keeps the steps in category; AllVideos keeps every step
func FilterVideos(steps []VideoStep, category string) []VideoStep {
	category = VideoCategory(category)
	if category == AllVideos {
		return steps
	}

	var out []VideoStep
	for _, v := range steps {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// VideoByID finds a step by its number
func VideoByID(id int) (VideoStep, bool) {
	for _, v := range VideoSteps {
		if v.ID == id {
			return v, true
		}
	}
	return VideoStep{}, false
}
