package render

import "resumeforge/internal/model"

// Strategy is one named visual layout. Implementations must honor the
// shared contract: iterate SectionOrder, filter by visibility, omit
// empty sections, apply the global style parameters, and never fail on
// well-formed input.
type Strategy interface {
	Render(data model.ResumeData, c model.CustomizationSettings) *Document
}

// baseLayout is the single-column skin behind most template ids. The
// flags select the thin visual variants that share its structure.
type baseLayout struct {
	id        string
	banner    bool // bold-header: name in a filled banner block
	accentBar bool // accent-left: accent bar along the page edge
	tagAccent bool // developer: technology tags in accent color
}

func (s *baseLayout) Render(data model.ResumeData, c model.CustomizationSettings) *Document {
	opts := sectionOpts{tagAccent: s.tagAccent}

	root := &Node{Kind: KindDocument}
	if s.accentBar {
		root.add(&Node{Kind: KindEdgeBar, Accent: true})
	}
	header := buildHeader(data)
	if s.banner {
		banner := &Node{Kind: KindBanner, Accent: true}
		banner.add(header)
		root.add(banner)
	} else {
		root.add(header)
	}
	for _, id := range data.SectionOrder {
		root.add(buildSection(id, data, opts))
	}
	return &Document{Template: s.id, Style: styleFrom(c), Root: root}
}

// twoColumnLayout places skill and achievement sections in a tinted
// sidebar. Relative order from SectionOrder is preserved within each
// column.
type twoColumnLayout struct {
	id string
}

func (s *twoColumnLayout) Render(data model.ResumeData, c model.CustomizationSettings) *Document {
	sidebar := &Node{Kind: KindSidebar, Accent: true}
	main := &Node{Kind: KindMain}

	for _, id := range data.SectionOrder {
		sec := buildSection(id, data, sectionOpts{})
		if sec == nil {
			continue
		}
		switch id {
		case model.SectionSkills, model.SectionAchievements:
			sidebar.add(sec)
		default:
			main.add(sec)
		}
	}

	root := &Node{Kind: KindDocument}
	root.add(buildHeader(data))
	cols := &Node{Kind: KindColumns}
	cols.add(sidebar, main)
	root.add(cols)
	return &Document{Template: s.id, Style: styleFrom(c), Root: root}
}

// timelineLayout is the base structure with timeline markers and tenure
// durations on dated entries.
type timelineLayout struct {
	id string
}

func (s *timelineLayout) Render(data model.ResumeData, c model.CustomizationSettings) *Document {
	opts := sectionOpts{withDuration: true, withMarkers: true}

	root := &Node{Kind: KindDocument}
	root.add(buildHeader(data))
	for _, id := range data.SectionOrder {
		root.add(buildSection(id, data, opts))
	}
	return &Document{Template: s.id, Style: styleFrom(c), Root: root}
}
