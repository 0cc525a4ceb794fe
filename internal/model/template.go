package model

// TemplateStyling is the base styling rule set a template ships with.
type TemplateStyling struct {
	PrimaryColor   string `json:"primary_color" yaml:"primary_color"`
	SecondaryColor string `json:"secondary_color" yaml:"secondary_color"`
	Font           string `json:"font" yaml:"font"`
}

// TemplateDefinition is one immutable catalog entry. The catalog is loaded
// once at process start; nothing mutates a definition afterwards.
type TemplateDefinition struct {
	ID          string          `json:"id" yaml:"id"`
	Name        string          `json:"name" yaml:"name"`
	Description string          `json:"description" yaml:"description"`
	Layout      string          `json:"layout" yaml:"layout"`
	Sections    []string        `json:"sections" yaml:"sections"`
	Styling     TemplateStyling `json:"styling" yaml:"styling"`
	Categories  []string        `json:"categories" yaml:"categories"`
	Tones       []BrandTone     `json:"tones" yaml:"tones"`
}

// HasTone reports whether the template declares an affinity for the tone.
func (t TemplateDefinition) HasTone(tone BrandTone) bool {
	for _, candidate := range t.Tones {
		if candidate == tone {
			return true
		}
	}
	return false
}
