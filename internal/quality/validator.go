// Package quality scores resume content and estimates rendered length.
// Scoring is rule-based arithmetic: the same input always produces the
// same report.
package quality

import (
	"fmt"

	"resumeforge/internal/model"
)

type Level string

const (
	LevelPoor      Level = "poor"
	LevelFair      Level = "fair"
	LevelGood      Level = "good"
	LevelExcellent Level = "excellent"
)

type WarningKind string

const (
	KindError   WarningKind = "error"
	KindWarning WarningKind = "warning"
	KindInfo    WarningKind = "info"
)

type Warning struct {
	Kind    WarningKind `json:"type"`
	Message string      `json:"message"`
	Section string      `json:"section,omitempty"`
}

type Report struct {
	Score       int       `json:"score"`
	Level       Level     `json:"level"`
	Warnings    []Warning `json:"warnings"`
	Suggestions []string  `json:"suggestions"`
}

// Validate scores a resume on a point-deduction model starting at 100.
// Deductions are additive and the final score is clamped to [0,100], so
// two sufficiently bad resumes can both land at 0.
func Validate(data model.ResumeData) Report {
	warnings := []Warning{}
	suggestions := []string{}
	score := 100

	if data.PersonalInfo.FullName == "" {
		warnings = append(warnings, Warning{KindError, "Full name is required", "personal"})
		score -= 20
	}
	if data.PersonalInfo.Email == "" {
		warnings = append(warnings, Warning{KindError, "Email is required", "personal"})
		score -= 15
	}
	if data.PersonalInfo.Phone == "" {
		warnings = append(warnings, Warning{KindWarning, "Phone number recommended", "personal"})
		score -= 5
	}

	if len(data.Summary) < 50 {
		suggestions = append(suggestions, "Add a professional summary (2-3 sentences recommended)")
		score -= 10
	} else if len(data.Summary) > 500 {
		warnings = append(warnings, Warning{KindWarning, "Summary is too long (keep under 500 characters)", "summary"})
		score -= 5
	}

	visibleExperience := visibleExperiences(data)
	if len(visibleExperience) == 0 {
		warnings = append(warnings, Warning{KindWarning, "No work experience added", "experience"})
		score -= 15
	} else {
		for _, exp := range visibleExperience {
			if len(exp.Highlights) > 8 {
				warnings = append(warnings, Warning{
					Kind:    KindWarning,
					Message: fmt.Sprintf("Experience %q has too many bullet points (%d). Consider 3-5 key highlights.", exp.Position, len(exp.Highlights)),
					Section: "experience",
				})
				score -= 3
			}
			for _, h := range exp.Highlights {
				if len(h) > 200 {
					warnings = append(warnings, Warning{
						Kind:    KindInfo,
						Message: fmt.Sprintf("Experience %q has very long bullet points. Keep them concise.", exp.Position),
						Section: "experience",
					})
					break
				}
			}
		}
	}

	visibleEducation := 0
	for _, e := range data.Education {
		if e.Visible {
			visibleEducation++
		}
	}
	if visibleEducation == 0 {
		warnings = append(warnings, Warning{KindWarning, "No education added", "education"})
		score -= 10
	}

	totalSkills := visibleSkillCount(data)
	if totalSkills == 0 {
		warnings = append(warnings, Warning{KindWarning, "No skills added", "skills"})
		score -= 10
	} else if totalSkills > 30 {
		warnings = append(warnings, Warning{
			Kind:    KindWarning,
			Message: fmt.Sprintf("Too many skills listed (%d). Focus on 15-20 most relevant skills.", totalSkills),
			Section: "skills",
		})
		score -= 5
	}

	visibleProjects := 0
	for _, p := range data.Projects {
		if p.Visible {
			visibleProjects++
		}
	}
	if len(visibleExperience) == 0 && visibleEducation == 0 && visibleProjects == 0 {
		warnings = append(warnings, Warning{Kind: KindError, Message: "Resume needs at least one section with content"})
		score -= 30
	}

	if len(visibleExperience) > 0 && visibleProjects == 0 {
		suggestions = append(suggestions, "Consider adding projects to showcase your work")
	}
	if totalSkills < 5 {
		suggestions = append(suggestions, "Add more skills relevant to your target role")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return Report{
		Score:       score,
		Level:       levelFor(score),
		Warnings:    warnings,
		Suggestions: suggestions,
	}
}

func levelFor(score int) Level {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelPoor
	}
}

func visibleExperiences(data model.ResumeData) []model.Experience {
	out := make([]model.Experience, 0, len(data.Experience))
	for _, e := range data.Experience {
		if e.Visible {
			out = append(out, e)
		}
	}
	return out
}

// visibleSkillCount sums skill strings across visible groups. Hidden
// groups contribute nothing even if their lists are populated.
func visibleSkillCount(data model.ResumeData) int {
	total := 0
	for _, g := range data.Skills {
		if g.Visible {
			total += len(g.Skills)
		}
	}
	return total
}
