package model

// Customization option tables surfaced to the editing UI. The renderer
// accepts arbitrary values; these are the presets offered by the shell.

type FontFamilyOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Stack string `json:"stack"`
}

type NumericOption struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       float64 `json:"value"`
	Description string  `json:"description,omitempty"`
}

type NamedValueOption struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

var FontFamilies = []FontFamilyOption{
	{ID: "inter", Name: "Inter", Stack: `"Inter", sans-serif`},
	{ID: "system", Name: "System", Stack: `system-ui, sans-serif`},
	{ID: "roboto", Name: "Roboto", Stack: `"Roboto", sans-serif`},
	{ID: "open-sans", Name: "Open Sans", Stack: `"Open Sans", sans-serif`},
	{ID: "lato", Name: "Lato", Stack: `"Lato", sans-serif`},
	{ID: "georgia", Name: "Georgia", Stack: `Georgia, serif`},
	{ID: "times", Name: "Times New Roman", Stack: `"Times New Roman", serif`},
	{ID: "courier", Name: "Courier", Stack: `"Courier New", monospace`},
}

var FontSizes = []NumericOption{
	{ID: "xs", Name: "Extra Small", Value: 9, Description: "9pt"},
	{ID: "sm", Name: "Small", Value: 10, Description: "10pt"},
	{ID: "base", Name: "Medium", Value: 11, Description: "11pt (Recommended)"},
	{ID: "lg", Name: "Large", Value: 12, Description: "12pt"},
}

var LineHeights = []NumericOption{
	{ID: "tight", Name: "Tight", Value: 1.3},
	{ID: "normal", Name: "Normal", Value: 1.5},
	{ID: "relaxed", Name: "Relaxed", Value: 1.7},
}

var SectionSpacings = []NumericOption{
	{ID: "compact", Name: "Compact", Value: 12},
	{ID: "normal", Name: "Normal", Value: 16},
	{ID: "spacious", Name: "Spacious", Value: 20},
}

var MarginSizes = []NamedValueOption{
	{ID: "narrow", Name: "Narrow", Value: "0.4in"},
	{ID: "medium", Name: "Medium", Value: "0.6in"},
	{ID: "wide", Name: "Wide", Value: "0.8in"},
}

var AccentColors = []NamedValueOption{
	{ID: "blue", Name: "Blue", Value: "#2563eb"},
	{ID: "indigo", Name: "Indigo", Value: "#4f46e5"},
	{ID: "slate", Name: "Slate", Value: "#475569"},
	{ID: "teal", Name: "Teal", Value: "#0d9488"},
	{ID: "emerald", Name: "Emerald", Value: "#059669"},
	{ID: "red", Name: "Red", Value: "#dc2626"},
	{ID: "orange", Name: "Orange", Value: "#ea580c"},
	{ID: "amber", Name: "Amber", Value: "#d97706"},
}

var BulletStyles = []NamedValueOption{
	{ID: "circle", Name: "Circle", Value: "•"},
	{ID: "square", Name: "Square", Value: "▪"},
	{ID: "arrow", Name: "Arrow", Value: "▸"},
	{ID: "dash", Name: "Dash", Value: "—"},
}

// MarginValue maps a named margin size to its CSS value, defaulting to
// medium for unrecognized names.
func MarginValue(size string) string {
	for _, m := range MarginSizes {
		if m.ID == size {
			return m.Value
		}
	}
	return "0.6in"
}
