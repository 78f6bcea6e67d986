// Package render maps resume data plus a customization profile onto a
// visual document tree. Strategies are pure: no I/O, no clock reads in
// the layout path, identical inputs produce identical trees.
package render

import "resumeforge/internal/model"

type Kind string

const (
	KindDocument Kind = "document"
	KindHeader   Kind = "header"
	KindBanner   Kind = "banner"
	KindName     Kind = "name"
	KindContact  Kind = "contact"
	KindColumns  Kind = "columns"
	KindSidebar  Kind = "sidebar"
	KindMain     Kind = "main"

	KindSection      Kind = "section"
	KindSectionTitle Kind = "section-title"
	KindEntry        Kind = "entry"
	KindTitle        Kind = "title"
	KindSubtitle     Kind = "subtitle"
	KindDetail       Kind = "detail"
	KindDates        Kind = "dates"
	KindDuration     Kind = "duration"
	KindMarker       Kind = "marker"
	KindEdgeBar      Kind = "edge-bar"
	KindParagraph    Kind = "paragraph"
	KindBulletList   Kind = "bullets"
	KindBulletItem   Kind = "bullet"
	KindTagList      Kind = "tags"
	KindTag          Kind = "tag"
	KindLink         Kind = "link"
	KindSkillGroup   Kind = "skill-group"
)

// Node is one element of the rendered document tree.
type Node struct {
	Kind     Kind
	Text     string
	Href     string
	Section  string
	Accent   bool
	Children []*Node
}

func (n *Node) add(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Style carries the global style parameters every skin must honor.
type Style struct {
	FontFamily     string
	FontSize       float64
	LineHeight     float64
	SectionSpacing int
	Margin         string
	AccentColor    string
	Bullet         string
}

// Document is the result of one render pass.
type Document struct {
	Template string
	Style    Style
	Root     *Node
}

// BulletGlyph maps a bullet style name to its glyph. Unrecognized names
// fall back to the dash.
func BulletGlyph(style string) string {
	switch style {
	case "circle":
		return "•"
	case "square":
		return "▪"
	case "arrow":
		return "▸"
	default:
		return "—"
	}
}

func styleFrom(c model.CustomizationSettings) Style {
	return Style{
		FontFamily:     c.FontFamily,
		FontSize:       c.FontSize,
		LineHeight:     c.LineHeight,
		SectionSpacing: c.SectionSpacing,
		Margin:         model.MarginValue(c.MarginSize),
		AccentColor:    c.AccentColor,
		Bullet:         BulletGlyph(c.BulletStyle),
	}
}

// Find returns the first node of the given kind in depth-first order, or
// nil. Mostly useful in tests and tooling.
func (n *Node) Find(kind Kind) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == kind {
		return n
	}
	for _, c := range n.Children {
		if got := c.Find(kind); got != nil {
			return got
		}
	}
	return nil
}

// Sections returns the section nodes of the document in render order.
func (d *Document) Sections() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Kind == KindSection {
			out = append(out, n)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(d.Root)
	return out
}
