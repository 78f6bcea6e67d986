package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/model"
)

func solidResume() model.ResumeData {
	data := model.NewResumeData()
	data.PersonalInfo = model.PersonalInfo{
		FullName: "Alex Johnson",
		Email:    "alex.johnson@email.com",
		Phone:    "(555) 123-4567",
		Location: "San Francisco, CA",
	}
	data.Summary = strings.Repeat("Engineer with experience. ", 7)[:180]
	data.Experience = []model.Experience{
		{
			ID: "exp1", Company: "Tech Solutions Inc", Position: "Senior Software Engineer",
			StartDate: "2021-06", Current: true,
			Highlights: []string{"Shipped the platform", "Cut latency 40%", "Mentored five engineers"},
			Visible:    true,
		},
	}
	data.Education = []model.Education{
		{ID: "edu1", Institution: "University of California", Degree: "BSc", Field: "CS", Visible: true},
	}
	data.Skills = []model.Skill{
		{ID: "s1", Category: "Languages", Skills: []string{"Go", "Python", "TypeScript", "SQL", "Rust", "C"}, Visible: true},
		{ID: "s2", Category: "Backend", Skills: []string{"Postgres", "Redis", "Kafka", "gRPC", "Docker", "Linux"}, Visible: true},
	}
	return data
}

func hasWarning(warnings []Warning, kind WarningKind, substr string) bool {
	for _, w := range warnings {
		if w.Kind == kind && strings.Contains(w.Message, substr) {
			return true
		}
	}
	return false
}

func TestValidateEmptyResume(t *testing.T) {
	report := Validate(model.NewResumeData())

	assert.LessOrEqual(t, report.Score, 50)
	assert.Contains(t, []Level{LevelPoor, LevelFair}, report.Level)
	assert.True(t, hasWarning(report.Warnings, KindError, "Full name is required"))
	assert.True(t, hasWarning(report.Warnings, KindError, "Email is required"))
	assert.True(t, hasWarning(report.Warnings, KindError, "at least one section with content"))
}

func TestValidateScoreClamped(t *testing.T) {
	// empty resume stacks deductions past 100 before the clamp
	report := Validate(model.NewResumeData())
	assert.Equal(t, 0, report.Score)
	assert.Equal(t, LevelPoor, report.Level)

	good := Validate(solidResume())
	assert.GreaterOrEqual(t, good.Score, 0)
	assert.LessOrEqual(t, good.Score, 100)
}

func TestValidateIdempotent(t *testing.T) {
	data := solidResume()
	first := Validate(data)
	second := Validate(data)
	assert.Equal(t, first, second)
}

func TestValidateHighlightBoundary(t *testing.T) {
	eight := solidResume()
	eight.Experience[0].Highlights = make([]string, 8)
	for i := range eight.Experience[0].Highlights {
		eight.Experience[0].Highlights[i] = "did a thing"
	}
	reportEight := Validate(eight)
	assert.False(t, hasWarning(reportEight.Warnings, KindWarning, "too many bullet points"))

	nine := solidResume()
	nine.Experience[0].Highlights = make([]string, 9)
	for i := range nine.Experience[0].Highlights {
		nine.Experience[0].Highlights[i] = "did a thing"
	}
	reportNine := Validate(nine)
	assert.True(t, hasWarning(reportNine.Warnings, KindWarning, "too many bullet points"))
	assert.True(t, hasWarning(reportNine.Warnings, KindWarning, "9"))
	assert.Equal(t, reportEight.Score-3, reportNine.Score)
}

func TestValidateLongHighlightIsInfoOnly(t *testing.T) {
	data := solidResume()
	base := Validate(data)

	data.Experience[0].Highlights[0] = strings.Repeat("x", 201)
	report := Validate(data)
	assert.True(t, hasWarning(report.Warnings, KindInfo, "very long bullet points"))
	assert.Equal(t, base.Score, report.Score)
}

func TestValidateCompleteResumeScenario(t *testing.T) {
	data := solidResume()
	require.Len(t, data.Summary, 180)

	report := Validate(data)

	for _, w := range report.Warnings {
		assert.NotEqual(t, KindError, w.Kind, "unexpected error: %s", w.Message)
	}
	assert.GreaterOrEqual(t, report.Score, 80)
	assert.Equal(t, LevelExcellent, report.Level)

	found := false
	for _, s := range report.Suggestions {
		if strings.Contains(s, "projects") {
			found = true
		}
	}
	assert.True(t, found, "expected a suggestion to add projects")
}

func TestValidateSummaryChecks(t *testing.T) {
	short := solidResume()
	short.Summary = "Too short"
	report := Validate(short)
	assert.Contains(t, report.Suggestions, "Add a professional summary (2-3 sentences recommended)")

	long := solidResume()
	long.Summary = strings.Repeat("a", 501)
	report = Validate(long)
	assert.True(t, hasWarning(report.Warnings, KindWarning, "Summary is too long"))
}

func TestValidateHiddenEntriesDoNotCount(t *testing.T) {
	data := solidResume()
	data.Experience[0].Visible = false
	data.Education[0].Visible = false
	for i := range data.Skills {
		data.Skills[i].Visible = false
	}

	report := Validate(data)
	assert.True(t, hasWarning(report.Warnings, KindWarning, "No work experience added"))
	assert.True(t, hasWarning(report.Warnings, KindWarning, "No education added"))
	assert.True(t, hasWarning(report.Warnings, KindWarning, "No skills added"))
	assert.True(t, hasWarning(report.Warnings, KindError, "at least one section with content"))
}

func TestValidateSkillCounts(t *testing.T) {
	many := solidResume()
	skills := make([]string, 31)
	for i := range skills {
		skills[i] = "skill"
	}
	many.Skills = []model.Skill{{ID: "s1", Category: "All", Skills: skills, Visible: true}}

	report := Validate(many)
	assert.True(t, hasWarning(report.Warnings, KindWarning, "Too many skills listed (31)"))

	few := solidResume()
	few.Skills = []model.Skill{{ID: "s1", Category: "Languages", Skills: []string{"Go"}, Visible: true}}
	report = Validate(few)
	assert.Contains(t, report.Suggestions, "Add more skills relevant to your target role")
}

func TestLevelThresholds(t *testing.T) {
	testCases := []struct {
		score int
		want  Level
	}{
		{100, LevelExcellent},
		{80, LevelExcellent},
		{79, LevelGood},
		{60, LevelGood},
		{59, LevelFair},
		{40, LevelFair},
		{39, LevelPoor},
		{0, LevelPoor},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, levelFor(tc.score), "score %d", tc.score)
	}
}
