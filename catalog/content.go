package catalog

// Stat is a headline number on the home page
type Stat struct {
	Icon        string
	Value       string
	Label       string
	Description string
}

var Stats = []Stat{
	{"home", "500+", "Premium Properties", "Carefully curated luxury homes"},
	{"users", "10K+", "Happy Clients", "Satisfied homeowners worldwide"},
	{"award", "25+", "Awards Won", "Industry recognition & excellence"},
	{"trending-up", "98%", "Success Rate", "Client satisfaction guaranteed"},
}

// SkillCategory groups skills under a heading
type SkillCategory struct {
	Icon   string
	Title  string
	Skills []string
}

var Skills = []SkillCategory{
	{"code", "Frontend Development", []string{"React", "TypeScript", "Tailwind CSS", "Next.js"}},
	{"database", "Backend Development", []string{"Node.js", "PostgreSQL", "Go", "REST APIs"}},
	{"palette", "Design", []string{"UI/UX", "Figma", "Responsive Design", "Animations"}},
	{"rocket", "Tools & DevOps", []string{"Git", "Docker", "CI/CD", "Kubernetes"}},
}

// Plan is a pricing tier
type Plan struct {
	Name     string
	Price    string
	Period   string
	Features []string
	Popular  bool
}

var Plans = []Plan{
	{"Basic", "$99", "month", []string{"5 Projects", "Basic Support", "1GB Storage", "Email Support"}, false},
	{"Pro", "$199", "month", []string{"Unlimited Projects", "Priority Support", "10GB Storage", "24/7 Support", "Custom Domain"}, true},
	{"Enterprise", "$499", "month", []string{"Unlimited Everything", "Dedicated Support", "100GB Storage", "Phone Support", "Custom Solutions", "API Access"}, false},
}

// Post is a blog article summary
type Post struct {
	Slug     string
	Title    string
	Excerpt  string
	Category string
	Author   string
	Date     string
	ReadTime string
}

var Posts = []Post{
	{"getting-started-with-react", "Getting Started with React: A Comprehensive Guide", "Learn the fundamentals of React and start building modern web applications with this step-by-step guide for beginners.", "Tutorial", "John Doe", "2024-01-15", "8 min read"},
	{"mastering-tailwind-css", "Mastering Tailwind CSS: Tips and Tricks", "Discover advanced techniques and best practices for building beautiful, responsive designs with Tailwind CSS.", "Design", "Jane Smith", "2024-01-20", "6 min read"},
	{"typescript-best-practices", "TypeScript Best Practices for 2024", "Explore the latest TypeScript features and learn how to write type-safe, maintainable code in your projects.", "Development", "Mike Johnson", "2024-01-25", "10 min read"},
	{"web-performance-optimization", "Modern Web Performance Optimization", "Boost your website's performance with these proven optimization techniques and tools used by industry leaders.", "Performance", "Sarah Williams", "2024-02-01", "12 min read"},
	{"ui-ux-design-principles", "Essential UI/UX Design Principles", "Master the core principles of user interface and user experience design to create intuitive, user-friendly applications.", "Design", "David Brown", "2024-02-05", "7 min read"},
	{"state-management-in-react", "Complete Guide to State Management in React", "Navigate through different state management solutions and choose the right one for your React application.", "Tutorial", "Emily Davis", "2024-02-10", "15 min read"},
}

// PostBySlug finds an article
func PostBySlug(slug string) (Post, bool) {
	for _, p := range Posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return Post{}, false
}

// Milestone is an entry on the experience or education timeline
type Milestone struct {
	Period string
	Title  string
	Place  string
	Detail string
}

var Experience = []Milestone{
	{"2022 - Present", "Senior Full-Stack Engineer", "Northwind Realty", "Leads the listings platform and its search services."},
	{"2020 - 2022", "Backend Engineer", "Brightline Labs", "Built event pipelines and public APIs in Go."},
	{"2019 - 2020", "Frontend Developer", "Pixel & Pine", "Shipped responsive marketing sites and design systems."},
}

var Education = []Milestone{
	{"2015 - 2019", "B.Sc. Computer Science", "State University", "Distributed systems and human-computer interaction."},
	{"2021", "Cloud Native Certification", "CNCF", "Kubernetes application development."},
}

// Photo is a gallery item
type Photo struct {
	Title string
	Image string
}

var Gallery = []Photo{
	{"Modern mansion", "https://images.unsplash.com/photo-1613977257363-707ba9348227?w=800"},
	{"Luxury villa", "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=800"},
	{"Penthouse interior", "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c?w=800"},
	{"Coastal estate", "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=800"},
}
