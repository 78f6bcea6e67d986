package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/model"
)

func TestResolveUnknownFallsBackToDefault(t *testing.T) {
	reg := NewRegistry()

	s := reg.Resolve("nonexistent-template")
	require.NotNil(t, s)
	assert.Equal(t, reg.Resolve(DefaultTemplateID), s)
	assert.False(t, reg.Known("nonexistent-template"))

	// the fallback strategy must render without failing
	doc := s.Render(model.SampleResume(), model.DefaultCustomization())
	require.NotNil(t, doc)
	assert.Equal(t, "professional", doc.Template)
}

func TestEveryCatalogIDResolves(t *testing.T) {
	reg := NewRegistry()
	data := model.SampleResume()

	require.Len(t, TemplateCatalog, 15)
	for _, info := range TemplateCatalog {
		t.Run(info.ID, func(t *testing.T) {
			assert.True(t, reg.Known(info.ID))
			s := reg.Resolve(info.ID)
			require.NotNil(t, s)

			c := model.DefaultCustomization()
			c.TemplateID = info.ID
			doc := s.Render(data, c)
			require.NotNil(t, doc)
			require.NotNil(t, doc.Root)
			assert.NotEmpty(t, doc.Sections())
		})
	}
}

func TestAliasesShareStrategyInstances(t *testing.T) {
	reg := NewRegistry()

	for alias, base := range map[string]string{
		"minimal":         "professional",
		"classic":         "professional",
		"modern":          "professional",
		"elegant":         "professional",
		"academic":        "professional",
		"research":        "professional",
		"tech-minimalist": "developer",
		"github":          "developer",
		"compact":         "two-column",
	} {
		assert.Equal(t, reg.Resolve(base), reg.Resolve(alias), "%s should alias %s", alias, base)
	}
}
