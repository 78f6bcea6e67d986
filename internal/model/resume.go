package model

import "github.com/google/uuid"

// Canonical resume data structures shared by the validator, the page
// estimator and every render strategy.

type PersonalInfo struct {
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Location  string `json:"location"`
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Current     bool     `json:"current"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	Visible     bool     `json:"visible"`
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	GPA         string `json:"gpa,omitempty"`
	Honors      string `json:"honors,omitempty"`
	Description string `json:"description,omitempty"`
	Visible     bool   `json:"visible"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Highlights   []string `json:"highlights"`
	Visible      bool     `json:"visible"`
}

// Skill is a category grouping, not a single skill string.
type Skill struct {
	ID       string   `json:"id"`
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
	Visible  bool     `json:"visible"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date,omitempty"`
	Visible     bool   `json:"visible"`
}

// Section identifiers accepted in ResumeData.SectionOrder. The renderer
// skips identifiers it does not recognize.
const (
	SectionSummary      = "summary"
	SectionExperience   = "experience"
	SectionEducation    = "education"
	SectionProjects     = "projects"
	SectionSkills       = "skills"
	SectionAchievements = "achievements"
)

type ResumeData struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Summary      string        `json:"summary"`
	Experience   []Experience  `json:"experience"`
	Education    []Education   `json:"education"`
	Projects     []Project     `json:"projects"`
	Skills       []Skill       `json:"skills"`
	Achievements []Achievement `json:"achievements"`
	SectionOrder []string      `json:"sectionOrder"`
}

type CustomizationSettings struct {
	TemplateID     string  `json:"templateId"`
	FontFamily     string  `json:"fontFamily"`
	FontSize       float64 `json:"fontSize"`
	LineHeight     float64 `json:"lineHeight"`
	SectionSpacing int     `json:"sectionSpacing"`
	MarginSize     string  `json:"marginSize"`
	AccentColor    string  `json:"accentColor"`
	BulletStyle    string  `json:"bulletStyle"`
}

type Metadata struct {
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
}

// ResumeState is the full persisted session record.
type ResumeState struct {
	Data          ResumeData            `json:"data"`
	Customization CustomizationSettings `json:"customization"`
	Metadata      Metadata              `json:"metadata"`
}

const (
	// StorageKey is the fixed key under which the session record is stored.
	StorageKey = "resumeforge_data"
	// Version gates loading: a stored record with a different version is
	// treated as absent rather than migrated.
	Version = "1.0.0"
)

// NewID returns a collision-resistant entity identifier. Random UUIDs
// replace the wall-clock ids used historically, which could collide on
// rapid-fire adds within one clock tick.
func NewID() string {
	return uuid.NewString()
}

func DefaultSectionOrder() []string {
	return []string{
		SectionSummary,
		SectionExperience,
		SectionEducation,
		SectionProjects,
		SectionSkills,
		SectionAchievements,
	}
}

func DefaultCustomization() CustomizationSettings {
	return CustomizationSettings{
		TemplateID:     "professional",
		FontFamily:     "Inter",
		FontSize:       11,
		LineHeight:     1.5,
		SectionSpacing: 16,
		MarginSize:     "medium",
		AccentColor:    "#2563eb",
		BulletStyle:    "circle",
	}
}

func NewResumeData() ResumeData {
	return ResumeData{
		PersonalInfo: PersonalInfo{},
		Experience:   []Experience{},
		Education:    []Education{},
		Projects:     []Project{},
		Skills:       []Skill{},
		Achievements: []Achievement{},
		SectionOrder: DefaultSectionOrder(),
	}
}
