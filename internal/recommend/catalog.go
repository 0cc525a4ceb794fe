// Package recommend scores an immutable template catalog against a
// synthesized business profile and picks the best match.
package recommend

import (
	_ "embed"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/sitegen/internal/model"
)

//go:embed catalog.yaml
var catalogYAML []byte

type catalogFile struct {
	Templates []model.TemplateDefinition `yaml:"templates"`
}

// LoadCatalog parses the embedded template catalog. Declaration order is
// preserved; callers load once at startup and treat the result as immutable.
func LoadCatalog() ([]model.TemplateDefinition, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog parses and validates catalog YAML.
func ParseCatalog(data []byte) ([]model.TemplateDefinition, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, eris.Wrap(err, "recommend: parse catalog")
	}
	if len(file.Templates) == 0 {
		return nil, eris.New("recommend: catalog is empty")
	}

	seen := make(map[string]bool, len(file.Templates))
	for _, tpl := range file.Templates {
		if tpl.ID == "" {
			return nil, eris.New("recommend: catalog entry missing id")
		}
		if seen[tpl.ID] {
			return nil, eris.Errorf("recommend: duplicate template id %q", tpl.ID)
		}
		seen[tpl.ID] = true
		if len(tpl.Sections) == 0 {
			return nil, eris.Errorf("recommend: template %q has no sections", tpl.ID)
		}
		for _, tone := range tpl.Tones {
			if !model.ValidTone(tone) {
				return nil, eris.Errorf("recommend: template %q has unknown tone %q", tpl.ID, tone)
			}
		}
	}
	return file.Templates, nil
}
