package render

// TemplateInfo is the catalog entry shown by the template picker.
type TemplateInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	BestFor     []string `json:"bestFor"`
}

var TemplateCatalog = []TemplateInfo{
	{
		ID: "professional", Name: "Professional", Category: "ats",
		Description: "Clean, ATS-friendly template optimized for corporate roles",
		Features:    []string{"ATS-Safe", "One-Page", "Clean Typography"},
		BestFor:     []string{"Corporate Jobs", "Business Roles", "Traditional Industries"},
	},
	{
		ID: "minimal", Name: "Minimal", Category: "ats",
		Description: "Ultra-clean layout with maximum readability",
		Features:    []string{"Ultra Clean", "High Readability", "ATS-Optimized"},
		BestFor:     []string{"All Industries", "Freshers", "Career Switchers"},
	},
	{
		ID: "classic", Name: "Classic", Category: "ats",
		Description: "Traditional format trusted by recruiters",
		Features:    []string{"Traditional", "Conservative", "ATS-Safe"},
		BestFor:     []string{"Law", "Finance", "Government"},
	},
	{
		ID: "modern", Name: "Modern", Category: "modern",
		Description: "Contemporary design with subtle visual hierarchy",
		Features:    []string{"Contemporary", "Visual Hierarchy", "Professional"},
		BestFor:     []string{"Marketing", "Design", "Startups"},
	},
	{
		ID: "compact", Name: "Compact", Category: "modern",
		Description: "Maximize content with efficient space usage",
		Features:    []string{"Space Efficient", "Two Column", "Modern"},
		BestFor:     []string{"Experienced Professionals", "Multiple Roles"},
	},
	{
		ID: "elegant", Name: "Elegant", Category: "modern",
		Description: "Sophisticated layout with refined typography",
		Features:    []string{"Sophisticated", "Refined", "Professional"},
		BestFor:     []string{"Senior Roles", "Executive Positions", "Consulting"},
	},
	{
		ID: "developer", Name: "Developer", Category: "developer",
		Description: "Tech-focused template highlighting projects and skills",
		Features:    []string{"Tech Focused", "Project Showcase", "GitHub Links"},
		BestFor:     []string{"Software Engineers", "Developers", "Tech Roles"},
	},
	{
		ID: "tech-minimalist", Name: "Tech Minimalist", Category: "developer",
		Description: "Clean code-inspired layout for developers",
		Features:    []string{"Code Inspired", "Minimalist", "Tech Friendly"},
		BestFor:     []string{"Frontend Developers", "UI Engineers", "Tech Startups"},
	},
	{
		ID: "github", Name: "GitHub", Category: "developer",
		Description: "Developer-first template with prominent project links",
		Features:    []string{"Open Source Friendly", "Project Links", "Tech Skills"},
		BestFor:     []string{"Open Source Contributors", "Full Stack Developers"},
	},
	{
		ID: "academic", Name: "Academic", Category: "academic",
		Description: "Research-focused layout for academic positions",
		Features:    []string{"Publication Ready", "Research Focused", "Formal"},
		BestFor:     []string{"Researchers", "PhD Candidates", "Professors"},
	},
	{
		ID: "research", Name: "Research", Category: "academic",
		Description: "Detailed format for showcasing research work",
		Features:    []string{"Detailed", "Publication Support", "Academic"},
		BestFor:     []string{"Research Scientists", "Lab Positions", "Academia"},
	},
	{
		ID: "two-column", Name: "Two Column", Category: "creative",
		Description: "Sidebar layout with visual distinction",
		Features:    []string{"Two Column", "Sidebar", "Visual Interest"},
		BestFor:     []string{"Creative Roles", "Design", "Marketing"},
	},
	{
		ID: "accent-left", Name: "Accent Left", Category: "creative",
		Description: "Left accent bar for subtle visual appeal",
		Features:    []string{"Accent Bar", "Modern", "ATS-Safe"},
		BestFor:     []string{"Product Managers", "Business Analysts", "Consultants"},
	},
	{
		ID: "timeline", Name: "Timeline", Category: "modern",
		Description: "Chronological layout with visual timeline",
		Features:    []string{"Timeline View", "Chronological", "Visual"},
		BestFor:     []string{"Career Progressions", "Long Experience", "Leadership"},
	},
	{
		ID: "bold-header", Name: "Bold Header", Category: "creative",
		Description: "Strong header section with prominent name",
		Features:    []string{"Bold Typography", "Strong Header", "Modern"},
		BestFor:     []string{"Creative Directors", "Senior Roles", "Personal Brand"},
	},
}
