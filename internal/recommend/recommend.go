package recommend

import (
	"sort"
	"strings"

	"github.com/sells-group/sitegen/internal/model"
)

// Scoring weights. Category affinity outweighs tone affinity.
const (
	categoryWeight = 2
	toneWeight     = 1
)

// ScoredTemplate pairs a catalog entry with its score for a profile.
type ScoredTemplate struct {
	Template model.TemplateDefinition `json:"template"`
	Score    int                      `json:"score"`
}

// Recommendation is the full ranking plus the single best choice.
type Recommendation struct {
	Ranked []ScoredTemplate         `json:"ranked"`
	Best   model.TemplateDefinition `json:"best"`
}

// Recommend ranks the catalog against the profile. Pure: the same
// (profile, catalog) pair always yields the same ranking. Ties and the
// all-zero case resolve to catalog declaration order, so a zero-scoring
// profile gets the first catalog entry as Best.
func Recommend(profile model.BusinessProfile, catalog []model.TemplateDefinition) Recommendation {
	ranked := make([]ScoredTemplate, 0, len(catalog))
	for _, tpl := range catalog {
		ranked = append(ranked, ScoredTemplate{
			Template: tpl,
			Score:    Score(tpl, profile),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	rec := Recommendation{Ranked: ranked}
	if len(ranked) > 0 {
		rec.Best = ranked[0].Template
	}
	return rec
}

// Score computes the affinity of one template for a profile:
// categoryWeight for a category-token intersection plus toneWeight for a
// declared tone match.
func Score(tpl model.TemplateDefinition, profile model.BusinessProfile) int {
	score := 0
	if categoryMatches(profile.Category, tpl.Categories) {
		score += categoryWeight
	}
	if tpl.HasTone(profile.BrandTone) {
		score += toneWeight
	}
	return score
}

// categoryMatches reports whether the lowercased, tokenized profile
// category intersects the template's category tags. Both sides are
// tokenized so multiword categories like "Health & Wellness" match either
// token.
func categoryMatches(category string, tags []string) bool {
	profileTokens := tokenize(category)
	if len(profileTokens) == 0 {
		return false
	}
	for _, tag := range tags {
		for tagToken := range tokenize(tag) {
			if profileTokens[tagToken] {
				return true
			}
		}
	}
	return false
}

// tokenize lowercases and splits on non-letter runes, dropping connective
// noise like "&" and "and".
func tokenize(s string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
	tokens := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f == "and" || f == "" {
			continue
		}
		tokens[f] = true
	}
	return tokens
}
