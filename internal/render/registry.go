package render

import "resumeforge/internal/model"

// Registry maps template identifiers to render strategies. Resolution
// never fails: unknown or missing identifiers fall back to the default
// strategy so the preview can always render something.

const DefaultTemplateID = "professional"

type Registry struct {
	strategies map[string]Strategy
	fallback   Strategy
}

func NewRegistry() *Registry {
	professional := &baseLayout{id: "professional"}
	developer := &baseLayout{id: "developer", tagAccent: true}
	accentLeft := &baseLayout{id: "accent-left", accentBar: true}
	boldHeader := &baseLayout{id: "bold-header", banner: true}
	twoColumn := &twoColumnLayout{id: "two-column"}
	timeline := &timelineLayout{id: "timeline"}

	// Several ids are aliases: two keys resolving to one strategy
	// instance, not independent implementations.
	strategies := map[string]Strategy{
		"professional":    professional,
		"minimal":         professional,
		"classic":         professional,
		"modern":          professional,
		"elegant":         professional,
		"academic":        professional,
		"research":        professional,
		"developer":       developer,
		"tech-minimalist": developer,
		"github":          developer,
		"two-column":      twoColumn,
		"compact":         twoColumn,
		"accent-left":     accentLeft,
		"timeline":        timeline,
		"bold-header":     boldHeader,
	}

	return &Registry{strategies: strategies, fallback: professional}
}

// Resolve returns the strategy for the given template id, or the default
// strategy when the id is unknown or empty.
func (r *Registry) Resolve(templateID string) Strategy {
	if s, ok := r.strategies[templateID]; ok {
		return s
	}
	return r.fallback
}

// Render resolves the strategy named by the customization profile and
// renders the document tree with it.
func (r *Registry) Render(data model.ResumeData, c model.CustomizationSettings) *Document {
	return r.Resolve(c.TemplateID).Render(data, c)
}

// Known reports whether the id maps to a shipped template.
func (r *Registry) Known(templateID string) bool {
	_, ok := r.strategies[templateID]
	return ok
}
