package render

import (
	"fmt"
	"html"
	"strings"
)

// HTML serializes a document tree into a self-contained print-ready
// page. The stylesheet is inlined so the output renders identically when
// saved to disk or fed to the PDF renderer.
func HTML(doc *Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<style>" + stylesheet(doc.Style) + "</style>\n")
	b.WriteString("</head>\n<body>\n")
	writeNode(&b, doc.Root, doc.Style)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func stylesheet(s Style) string {
	return fmt.Sprintf(`
@page { margin: %s; }
body { font-family: %s; font-size: %.1fpt; line-height: %.2f; margin: %s; color: #1f2937; }
section { margin-bottom: %dpx; }
h1 { font-size: 2em; margin: 0 0 4px; }
h2 { font-size: 1.2em; text-transform: uppercase; letter-spacing: .05em; border-bottom: 2px solid %s; padding-bottom: 2px; }
h3 { font-size: 1em; margin: 8px 0 2px; }
p { margin: 2px 0; }
a { color: %s; text-decoration: none; }
ul { list-style: none; padding-left: 0; margin: 4px 0; }
li .glyph { color: %s; margin-right: 6px; }
.contact { margin-right: 10px; color: #4b5563; }
.subtitle { color: %s; }
.detail, .dates, .duration { color: #6b7280; font-size: .9em; }
.duration { font-style: italic; margin-left: 6px; }
.tag { display: inline-block; margin-right: 6px; }
.tag.accent { color: %s; }
.skill-group strong { margin-right: 4px; }
.banner { background: %s; color: #fff; padding: 18px; margin-bottom: 12px; }
.banner h1, .banner .contact, .banner a { color: #fff; }
.columns { display: flex; gap: 18px; }
.columns aside { width: 33%%; background: %s18; padding: 12px; }
.columns .main { flex: 1; }
.edgebar { position: fixed; left: 0; top: 0; bottom: 0; width: 6px; background: %s; }
.marker { display: inline-block; width: 8px; height: 8px; border-radius: 50%%; background: %s; margin-right: 6px; }
`,
		s.Margin, s.FontFamily, s.FontSize, s.LineHeight, s.Margin,
		s.SectionSpacing, s.AccentColor, s.AccentColor, s.AccentColor,
		s.AccentColor, s.AccentColor, s.AccentColor, s.AccentColor,
		s.AccentColor, s.AccentColor)
}

func writeNode(b *strings.Builder, n *Node, s Style) {
	if n == nil {
		return
	}
	switch n.Kind {
	case KindDocument:
		b.WriteString("<main class=\"resume\">\n")
		writeChildren(b, n, s)
		b.WriteString("</main>\n")
	case KindHeader:
		b.WriteString("<header>\n")
		writeChildren(b, n, s)
		b.WriteString("</header>\n")
	case KindBanner:
		b.WriteString("<div class=\"banner\">\n")
		writeChildren(b, n, s)
		b.WriteString("</div>\n")
	case KindName:
		b.WriteString("<h1>" + esc(n.Text) + "</h1>\n")
	case KindContact:
		b.WriteString("<span class=\"contact\">" + esc(n.Text) + "</span>\n")
	case KindLink:
		b.WriteString("<a href=\"" + esc(hrefURL(n.Href)) + "\">" + esc(n.Text) + "</a>\n")
	case KindColumns:
		b.WriteString("<div class=\"columns\">\n")
		writeChildren(b, n, s)
		b.WriteString("</div>\n")
	case KindSidebar:
		b.WriteString("<aside>\n")
		writeChildren(b, n, s)
		b.WriteString("</aside>\n")
	case KindMain:
		b.WriteString("<div class=\"main\">\n")
		writeChildren(b, n, s)
		b.WriteString("</div>\n")
	case KindSection:
		b.WriteString("<section data-section=\"" + esc(n.Section) + "\">\n")
		writeChildren(b, n, s)
		b.WriteString("</section>\n")
	case KindSectionTitle:
		b.WriteString("<h2>" + esc(n.Text) + "</h2>\n")
	case KindEntry:
		b.WriteString("<div class=\"entry\">\n")
		writeChildren(b, n, s)
		b.WriteString("</div>\n")
	case KindTitle:
		b.WriteString("<h3>" + esc(n.Text) + "</h3>\n")
	case KindSubtitle:
		b.WriteString("<p class=\"subtitle\">" + esc(n.Text) + "</p>\n")
	case KindDetail:
		b.WriteString("<p class=\"detail\">" + esc(n.Text) + "</p>\n")
	case KindDates:
		b.WriteString("<span class=\"dates\">" + esc(n.Text) + "</span>\n")
	case KindDuration:
		b.WriteString("<span class=\"duration\">" + esc(n.Text) + "</span>\n")
	case KindMarker:
		b.WriteString("<span class=\"marker\"></span>\n")
	case KindEdgeBar:
		b.WriteString("<div class=\"edgebar\"></div>\n")
	case KindParagraph:
		b.WriteString("<p>" + esc(n.Text) + "</p>\n")
	case KindBulletList:
		b.WriteString("<ul>\n")
		for _, c := range n.Children {
			b.WriteString("<li><span class=\"glyph\">" + esc(s.Bullet) + "</span>" + esc(c.Text) + "</li>\n")
		}
		b.WriteString("</ul>\n")
	case KindTagList:
		b.WriteString("<div class=\"tags\">\n")
		writeChildren(b, n, s)
		b.WriteString("</div>\n")
	case KindTag:
		cls := "tag"
		if n.Accent {
			cls = "tag accent"
		}
		b.WriteString("<span class=\"" + cls + "\">" + esc(n.Text) + "</span>\n")
	case KindSkillGroup:
		b.WriteString("<div class=\"skill-group\"><strong>" + esc(n.Text) + ":</strong>\n")
		writeChildren(b, n, s)
		b.WriteString("</div>\n")
	default:
		writeChildren(b, n, s)
	}
}

func writeChildren(b *strings.Builder, n *Node, s Style) {
	for _, c := range n.Children {
		writeNode(b, c, s)
	}
}

func esc(t string) string {
	return html.EscapeString(t)
}

// hrefURL ensures a stored link has a scheme so the anchor resolves.
func hrefURL(u string) string {
	if u == "" {
		return u
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "mailto:") {
		return u
	}
	return "https://" + u
}
