package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	data := NewResumeData()
	assert.Equal(t, []string{"summary", "experience", "education", "projects", "skills", "achievements"}, data.SectionOrder)
	assert.Empty(t, data.Experience)

	c := DefaultCustomization()
	assert.Equal(t, "professional", c.TemplateID)
	assert.Equal(t, 11.0, c.FontSize)
	assert.Equal(t, "circle", c.BulletStyle)
}

func TestNewIDUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMarginValue(t *testing.T) {
	assert.Equal(t, "0.4in", MarginValue("narrow"))
	assert.Equal(t, "0.6in", MarginValue("medium"))
	assert.Equal(t, "0.8in", MarginValue("wide"))
	assert.Equal(t, "0.6in", MarginValue("gigantic"))
}

func TestValidateRecord(t *testing.T) {
	state := ResumeState{
		Data:          SampleResume(),
		Customization: DefaultCustomization(),
		Metadata:      Metadata{LastModified: "2025-01-01T00:00:00Z", Version: Version},
	}
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	assert.NoError(t, ValidateRecord(raw))

	assert.Error(t, ValidateRecord([]byte("not json at all")))
	assert.Error(t, ValidateRecord([]byte(`{"customization": {}}`)), "missing data and metadata")
	assert.Error(t, ValidateRecord([]byte(`{"data": {"personalInfo": {}, "sectionOrder": "summary"}, "customization": {}, "metadata": {"version": "1.0.0"}}`)),
		"sectionOrder must be an array")
}
