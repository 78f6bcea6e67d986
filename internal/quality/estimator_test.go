package quality

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"resumeforge/internal/model"
)

func TestEstimatePagesEmptyResume(t *testing.T) {
	// header allowance alone: 5 lines -> one page
	assert.Equal(t, 1, EstimatePages(model.NewResumeData()))
}

func TestEstimatePagesLineMath(t *testing.T) {
	data := model.NewResumeData()
	data.Summary = strings.Repeat("a", 150) // ceil(150/100) = 2 lines
	data.Experience = []model.Experience{
		{ID: "e1", Highlights: []string{"a", "b", "c"}, Visible: true}, // 3 + 3
	}
	data.Education = []model.Education{{ID: "d1", Visible: true}} // 3
	data.Projects = []model.Project{
		{ID: "p1", Highlights: []string{"a", "b"}, Visible: true}, // 2 + 2
	}
	data.Skills = []model.Skill{ // ceil(3/2) = 2
		{ID: "s1", Visible: true},
		{ID: "s2", Visible: true},
		{ID: "s3", Visible: true},
	}
	data.Achievements = []model.Achievement{{ID: "a1", Visible: true}} // 2

	// 5 + 2 + 6 + 3 + 4 + 2 + 2 = 24 lines -> 1 page
	assert.Equal(t, 1, EstimatePages(data))
}

func TestEstimatePagesGrowsWithContent(t *testing.T) {
	data := model.NewResumeData()
	highlights := make([]string, 50)
	for i := range highlights {
		highlights[i] = "line"
	}
	data.Experience = []model.Experience{
		{ID: "e1", Highlights: highlights, Visible: true}, // 3 + 50 = 53
	}

	// 5 + 53 = 58 lines -> 2 pages
	assert.Equal(t, 2, EstimatePages(data))
}

func TestEstimatePagesIgnoresHiddenEntries(t *testing.T) {
	data := model.NewResumeData()
	data.Experience = []model.Experience{
		{ID: "e1", Highlights: make([]string, 80), Visible: false},
	}
	data.Education = []model.Education{{ID: "d1", Visible: false}}
	data.Projects = []model.Project{{ID: "p1", Visible: false}}
	data.Skills = []model.Skill{{ID: "s1", Visible: false}}
	data.Achievements = []model.Achievement{{ID: "a1", Visible: false}}

	assert.Equal(t, EstimatePages(model.NewResumeData()), EstimatePages(data))
}
