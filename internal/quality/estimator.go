package quality

import (
	"math"

	"resumeforge/internal/model"
)

// linesPerPage is the heuristic used to convert estimated line counts
// into page counts.
const linesPerPage = 55

// EstimatePages converts resume content into an approximate printed page
// count. The division is deliberately not clamped to a minimum of 1:
// downstream display logic shows the literal value. The fixed header
// allowance means an empty resume still estimates to one page.
func EstimatePages(data model.ResumeData) int {
	lines := 5 // header block

	if data.Summary != "" {
		lines += int(math.Ceil(float64(len(data.Summary)) / 100))
	}

	for _, exp := range data.Experience {
		if exp.Visible {
			lines += 3 + len(exp.Highlights)
		}
	}

	for _, edu := range data.Education {
		if edu.Visible {
			lines += 3
		}
	}

	for _, proj := range data.Projects {
		if proj.Visible {
			lines += 2 + len(proj.Highlights)
		}
	}

	skillGroups := 0
	for _, g := range data.Skills {
		if g.Visible {
			skillGroups++
		}
	}
	lines += int(math.Ceil(float64(skillGroups) / 2))

	for _, a := range data.Achievements {
		if a.Visible {
			lines += 2
		}
	}

	return int(math.Ceil(float64(lines) / linesPerPage))
}
