package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sitegen/internal/model"
)

func TestRecommend_LandscapingFriendlyPicksServiceHeavy(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	profile := model.BusinessProfile{
		Category:  "Landscaping",
		BrandTone: model.ToneFriendly,
	}

	rec := Recommend(profile, catalog)
	assert.Equal(t, "service-heavy", rec.Best.ID)

	scores := make(map[string]int, len(rec.Ranked))
	for _, st := range rec.Ranked {
		scores[st.Template.ID] = st.Score
	}
	// Category match (2) plus tone match (1) beats tone-only matches.
	assert.Equal(t, 3, scores["service-heavy"])
	assert.Equal(t, 1, scores["booking-first"])
	assert.Equal(t, 0, scores["portfolio-grid"])
}

func TestRecommend_AllZeroFallsBackToCatalogOrder(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	profile := model.BusinessProfile{
		Category:  "Submarine Refitting",
		BrandTone: model.BrandTone("unrecognized"),
	}

	rec := Recommend(profile, catalog)
	require.Len(t, rec.Ranked, len(catalog))
	assert.Equal(t, catalog[0].ID, rec.Best.ID)
	for i, st := range rec.Ranked {
		assert.Zero(t, st.Score)
		assert.Equal(t, catalog[i].ID, st.Template.ID, "zero scores keep declaration order")
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	catalog := []model.TemplateDefinition{
		{ID: "first", Sections: []string{"hero"}, Tones: []model.BrandTone{model.ToneBold}},
		{ID: "second", Sections: []string{"hero"}, Tones: []model.BrandTone{model.ToneBold}},
	}

	rec := Recommend(model.BusinessProfile{BrandTone: model.ToneBold}, catalog)
	assert.Equal(t, "first", rec.Best.ID)
	assert.Equal(t, rec.Ranked[0].Score, rec.Ranked[1].Score)
}

func TestRecommend_Deterministic(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	profile := model.BusinessProfile{Category: "Fitness", BrandTone: model.ToneCasual}
	first := Recommend(profile, catalog)
	second := Recommend(profile, catalog)
	assert.Equal(t, first, second)
}

func TestScore_Weights(t *testing.T) {
	tpl := model.TemplateDefinition{
		Categories: []string{"landscaping"},
		Tones:      []model.BrandTone{model.ToneFriendly},
	}

	both := model.BusinessProfile{Category: "Landscaping", BrandTone: model.ToneFriendly}
	categoryOnly := model.BusinessProfile{Category: "Landscaping", BrandTone: model.ToneLuxury}
	toneOnly := model.BusinessProfile{Category: "Restaurant", BrandTone: model.ToneFriendly}
	neither := model.BusinessProfile{Category: "Restaurant", BrandTone: model.ToneLuxury}

	assert.Equal(t, 3, Score(tpl, both))
	assert.Equal(t, 2, Score(tpl, categoryOnly))
	assert.Equal(t, 1, Score(tpl, toneOnly))
	assert.Equal(t, 0, Score(tpl, neither))
}

func TestCategoryMatches_Tokenized(t *testing.T) {
	assert.True(t, categoryMatches("Health & Wellness", []string{"health & wellness"}))
	assert.True(t, categoryMatches("Health & Wellness", []string{"wellness retreats"}))
	assert.True(t, categoryMatches("Professional Services", []string{"services"}))
	assert.False(t, categoryMatches("Automotive", []string{"auto"}))
	assert.False(t, categoryMatches("", []string{"services"}))
}
