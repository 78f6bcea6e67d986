package render

import "resumeforge/internal/model"

// Shared section builders. Every skin routes through buildSection so the
// visibility, ordering and empty-section rules stay identical across
// visual treatments.

const placeholderName = "Your Name"

type sectionOpts struct {
	tagAccent    bool // emphasize technology tags (developer skins)
	withDuration bool // annotate dated entries with tenure (timeline skin)
	withMarkers  bool // prefix dated entries with timeline markers
}

// buildHeader renders the name and contact block. An empty resume still
// gets a header with placeholder text.
func buildHeader(data model.ResumeData) *Node {
	name := data.PersonalInfo.FullName
	if name == "" {
		name = placeholderName
	}
	h := &Node{Kind: KindHeader}
	h.add(&Node{Kind: KindName, Text: name})

	p := data.PersonalInfo
	for _, c := range []string{p.Email, p.Phone, p.Location} {
		if c != "" {
			h.add(&Node{Kind: KindContact, Text: c})
		}
	}
	for _, link := range []string{p.Website, p.LinkedIn, p.GitHub, p.Portfolio} {
		if link != "" {
			h.add(&Node{Kind: KindLink, Text: link, Href: link, Accent: true})
		}
	}
	return h
}

// buildSection renders one section by identifier. It returns nil when
// the section has no visible content, in which case the skin omits the
// section entirely, heading included. Unknown identifiers yield nil.
func buildSection(id string, data model.ResumeData, opts sectionOpts) *Node {
	switch id {
	case model.SectionSummary:
		return summarySection(data)
	case model.SectionExperience:
		return experienceSection(data, opts)
	case model.SectionEducation:
		return educationSection(data, opts)
	case model.SectionProjects:
		return projectsSection(data, opts)
	case model.SectionSkills:
		return skillsSection(data)
	case model.SectionAchievements:
		return achievementsSection(data)
	default:
		return nil
	}
}

func newSection(id, title string) *Node {
	s := &Node{Kind: KindSection, Section: id}
	s.add(&Node{Kind: KindSectionTitle, Text: title, Accent: true})
	return s
}

func summarySection(data model.ResumeData) *Node {
	if data.Summary == "" {
		return nil
	}
	s := newSection(model.SectionSummary, "Professional Summary")
	return s.add(&Node{Kind: KindParagraph, Text: data.Summary})
}

func experienceSection(data model.ResumeData, opts sectionOpts) *Node {
	var visible []model.Experience
	for _, e := range data.Experience {
		if e.Visible {
			visible = append(visible, e)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	s := newSection(model.SectionExperience, "Work Experience")
	for _, exp := range visible {
		entry := &Node{Kind: KindEntry}
		if opts.withMarkers {
			entry.add(&Node{Kind: KindMarker, Accent: true})
		}
		entry.add(&Node{Kind: KindTitle, Text: exp.Position})
		entry.add(&Node{Kind: KindSubtitle, Text: joinDot(exp.Company, exp.Location), Accent: true})
		entry.add(&Node{Kind: KindDates, Text: FormatDateRange(exp.StartDate, exp.EndDate, exp.Current)})
		// Ongoing entries get no tenure annotation: computing one would
		// read the clock and make the render pass non-deterministic.
		if opts.withDuration && !exp.Current {
			if d := Duration(exp.StartDate, exp.EndDate, false); d != "" {
				entry.add(&Node{Kind: KindDuration, Text: d})
			}
		}
		if exp.Description != "" {
			entry.add(&Node{Kind: KindParagraph, Text: exp.Description})
		}
		entry.add(bulletList(exp.Highlights))
		s.add(entry)
	}
	return s
}

func educationSection(data model.ResumeData, opts sectionOpts) *Node {
	var visible []model.Education
	for _, e := range data.Education {
		if e.Visible {
			visible = append(visible, e)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	s := newSection(model.SectionEducation, "Education")
	for _, edu := range visible {
		entry := &Node{Kind: KindEntry}
		if opts.withMarkers {
			entry.add(&Node{Kind: KindMarker, Accent: true})
		}
		entry.add(&Node{Kind: KindTitle, Text: edu.Degree})
		entry.add(&Node{Kind: KindSubtitle, Text: joinDot(edu.Institution, edu.Location), Accent: true})
		if edu.Field != "" {
			entry.add(&Node{Kind: KindDetail, Text: "Major: " + edu.Field})
		}
		if edu.GPA != "" {
			entry.add(&Node{Kind: KindDetail, Text: "GPA: " + edu.GPA})
		}
		if edu.Honors != "" {
			entry.add(&Node{Kind: KindDetail, Text: edu.Honors})
		}
		if edu.Description != "" {
			entry.add(&Node{Kind: KindParagraph, Text: edu.Description})
		}
		entry.add(&Node{Kind: KindDates, Text: FormatDateRange(edu.StartDate, edu.EndDate, edu.Current)})
		s.add(entry)
	}
	return s
}

func projectsSection(data model.ResumeData, opts sectionOpts) *Node {
	var visible []model.Project
	for _, p := range data.Projects {
		if p.Visible {
			visible = append(visible, p)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	s := newSection(model.SectionProjects, "Projects")
	for _, proj := range visible {
		entry := &Node{Kind: KindEntry}
		entry.add(&Node{Kind: KindTitle, Text: proj.Name})
		if proj.Link != "" {
			entry.add(&Node{Kind: KindLink, Text: proj.Link, Href: proj.Link, Accent: true})
		}
		if proj.GitHub != "" {
			entry.add(&Node{Kind: KindLink, Text: proj.GitHub, Href: proj.GitHub, Accent: true})
		}
		if proj.Description != "" {
			entry.add(&Node{Kind: KindParagraph, Text: proj.Description})
		}
		if len(proj.Technologies) > 0 {
			tags := &Node{Kind: KindTagList}
			for _, t := range proj.Technologies {
				tags.add(&Node{Kind: KindTag, Text: t, Accent: opts.tagAccent})
			}
			entry.add(tags)
		}
		entry.add(bulletList(proj.Highlights))
		s.add(entry)
	}
	return s
}

// skillsSection filters whole groups, not individual skill strings.
func skillsSection(data model.ResumeData) *Node {
	var visible []model.Skill
	for _, g := range data.Skills {
		if g.Visible {
			visible = append(visible, g)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	s := newSection(model.SectionSkills, "Skills")
	for _, g := range visible {
		group := &Node{Kind: KindSkillGroup, Text: g.Category}
		for _, skill := range g.Skills {
			group.add(&Node{Kind: KindTag, Text: skill})
		}
		s.add(group)
	}
	return s
}

func achievementsSection(data model.ResumeData) *Node {
	var visible []model.Achievement
	for _, a := range data.Achievements {
		if a.Visible {
			visible = append(visible, a)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	s := newSection(model.SectionAchievements, "Achievements")
	for _, a := range visible {
		entry := &Node{Kind: KindEntry}
		entry.add(&Node{Kind: KindTitle, Text: a.Title})
		if a.Date != "" {
			entry.add(&Node{Kind: KindDates, Text: a.Date})
		}
		if a.Description != "" {
			entry.add(&Node{Kind: KindParagraph, Text: a.Description})
		}
		s.add(entry)
	}
	return s
}

func bulletList(items []string) *Node {
	if len(items) == 0 {
		return nil
	}
	list := &Node{Kind: KindBulletList}
	for _, it := range items {
		list.add(&Node{Kind: KindBulletItem, Text: it})
	}
	return list
}

func joinDot(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" {
		return a
	}
	return a + " • " + b
}
