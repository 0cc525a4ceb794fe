package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	require.Len(t, catalog, 5)

	ids := make([]string, len(catalog))
	for i, tpl := range catalog {
		ids[i] = tpl.ID
		assert.NotEmpty(t, tpl.Name, "template %s", tpl.ID)
		assert.NotEmpty(t, tpl.Sections, "template %s", tpl.ID)
		assert.NotEmpty(t, tpl.Styling.PrimaryColor, "template %s", tpl.ID)
	}
	assert.Equal(t, []string{"service-heavy", "portfolio-grid", "booking-first", "local-classic", "minimal-pro"}, ids)
}

func TestParseCatalog_Empty(t *testing.T) {
	_, err := ParseCatalog([]byte("templates: []"))
	assert.Error(t, err)
}

func TestParseCatalog_DuplicateID(t *testing.T) {
	data := []byte(`
templates:
  - id: dup
    sections: [hero]
  - id: dup
    sections: [hero]
`)
	_, err := ParseCatalog(data)
	assert.ErrorContains(t, err, "duplicate template id")
}

func TestParseCatalog_UnknownTone(t *testing.T) {
	data := []byte(`
templates:
  - id: t1
    sections: [hero]
    tones: [sassy]
`)
	_, err := ParseCatalog(data)
	assert.ErrorContains(t, err, "unknown tone")
}

func TestParseCatalog_MissingSections(t *testing.T) {
	data := []byte(`
templates:
  - id: t1
`)
	_, err := ParseCatalog(data)
	assert.ErrorContains(t, err, "no sections")
}

func TestParseCatalog_InvalidYAML(t *testing.T) {
	_, err := ParseCatalog([]byte("{{not yaml"))
	assert.Error(t, err)
}
