package model

// SampleResume returns a populated resume used for template previews and
// the offline render tool.
func SampleResume() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{
			FullName:  "Alex Johnson",
			Email:     "alex.johnson@email.com",
			Phone:     "(555) 123-4567",
			Location:  "San Francisco, CA",
			LinkedIn:  "linkedin.com/in/alexjohnson",
			GitHub:    "github.com/alexj",
			Portfolio: "alexjohnson.dev",
		},
		Summary: "Results-driven Software Engineer with 5+ years of experience building scalable web applications. Passionate about clean code, user experience, and solving complex problems with elegant solutions.",
		Experience: []Experience{
			{
				ID:          "exp1",
				Company:     "Tech Solutions Inc",
				Position:    "Senior Software Engineer",
				Location:    "San Francisco, CA",
				StartDate:   "2021-06",
				Current:     true,
				Description: "Lead development of core platform features",
				Highlights: []string{
					"Architected and deployed microservices handling 10M+ daily requests",
					"Reduced API response time by 40% through optimization",
					"Mentored team of 5 junior developers",
				},
				Visible: true,
			},
			{
				ID:          "exp2",
				Company:     "StartupXYZ",
				Position:    "Software Engineer",
				Location:    "Palo Alto, CA",
				StartDate:   "2019-03",
				EndDate:     "2021-05",
				Description: "Full-stack development for SaaS platform",
				Highlights: []string{
					"Built responsive dashboard used by 50K+ users",
					"Implemented real-time features using WebSockets",
					"Improved test coverage from 40% to 85%",
				},
				Visible: true,
			},
		},
		Education: []Education{
			{
				ID:          "edu1",
				Institution: "University of California",
				Degree:      "Bachelor of Science",
				Field:       "Computer Science",
				Location:    "Berkeley, CA",
				StartDate:   "2015-09",
				EndDate:     "2019-05",
				GPA:         "3.8/4.0",
				Honors:      "Magna Cum Laude",
				Visible:     true,
			},
		},
		Projects: []Project{
			{
				ID:           "proj1",
				Name:         "TaskFlow",
				Description:  "Open-source project management tool with real-time collaboration",
				Technologies: []string{"React", "Node.js", "PostgreSQL", "WebSockets"},
				GitHub:       "github.com/alexj/taskflow",
				Highlights:   []string{"1.2K+ GitHub stars", "Used by 100+ companies"},
				Visible:      true,
			},
			{
				ID:           "proj2",
				Name:         "DevTools Extension",
				Description:  "Browser extension for debugging React applications",
				Technologies: []string{"TypeScript", "React", "Chrome APIs"},
				Highlights:   []string{"10K+ active users", "Featured on Product Hunt"},
				Visible:      true,
			},
		},
		Skills: []Skill{
			{ID: "skill1", Category: "Languages", Skills: []string{"JavaScript", "TypeScript", "Python", "Go"}, Visible: true},
			{ID: "skill2", Category: "Frontend", Skills: []string{"React", "Next.js", "Vue", "Tailwind CSS"}, Visible: true},
			{ID: "skill3", Category: "Backend", Skills: []string{"Node.js", "Express", "PostgreSQL", "Redis"}, Visible: true},
		},
		Achievements: []Achievement{
			{
				ID:          "ach1",
				Title:       "AWS Certified Solutions Architect",
				Description: "Professional level certification",
				Date:        "2023",
				Visible:     true,
			},
		},
		SectionOrder: []string{
			SectionSummary,
			SectionExperience,
			SectionProjects,
			SectionEducation,
			SectionSkills,
			SectionAchievements,
		},
	}
}
