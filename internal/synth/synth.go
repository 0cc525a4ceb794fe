// Package synth turns noisy, partial business signals into a complete,
// invariant-satisfying BusinessProfile using ordered, deterministic rule
// tables. It performs no I/O and never fails: any internal fault is
// recovered and replaced with a fixed minimal profile.
package synth

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sells-group/sitegen/internal/model"
)

var titleCaser = cases.Title(language.English)

// Synthesize builds a complete BusinessProfile from a raw signal plus any
// conversational free text. It is total: repeated calls with identical
// input yield identical output, and every returned profile satisfies the
// model.BusinessProfile bounds even for the empty signal.
func Synthesize(signal model.RawSignal, conversational string) (profile model.BusinessProfile) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Warn("synth: recovered from internal fault, using minimal profile",
				zap.Any("panic", r),
			)
			profile = MinimalProfile()
		}
	}()

	name := strings.TrimSpace(signal.Title)
	if name == "" {
		name = defaultName
	}

	description := strings.TrimSpace(strings.Join([]string{signal.Description, signal.FreeText, conversational}, " "))
	combined := strings.ToLower(name + " " + description)

	category := detectCategory(combined)
	tone := classifyTone(combined)

	profile = model.BusinessProfile{
		Name:             name,
		Category:         category,
		Location:         extractLocation(description),
		Services:         extractServices(combined),
		ValueProposition: extractValueProposition(signal.Description),
		TargetAudience:   detectAudience(combined),
		BrandTone:        tone,
		BrandColors:      paletteFor(tone),
		TrustSignals:     buildTrustSignals(combined),
		SEOKeywords:      buildSEOKeywords(name, category),
		ContactPrefs: model.ContactPreferences{
			Email:   signal.ContactEmail != "",
			Phone:   signal.ContactPhone != "",
			Booking: true,
		},
	}

	if len(signal.Images) > 0 {
		assets := model.ImageAssets{Hero: signal.Images[0]}
		if len(signal.Images) > 1 {
			assets.Gallery = append([]string(nil), signal.Images[1:]...)
		}
		profile.ImageAssets = &assets
	}

	return profile
}

// MinimalProfile is the fixed known-good fallback returned when synthesis
// hits an internal fault. It satisfies every profile invariant.
func MinimalProfile() model.BusinessProfile {
	return model.BusinessProfile{
		Name:             defaultName,
		Category:         defaultCategory,
		Services:         []string{defaultService},
		ValueProposition: defaultValueProp,
		TargetAudience:   defaultAudience,
		BrandTone:        defaultTone,
		BrandColors:      paletteFor(defaultTone),
		TrustSignals:     append([]string(nil), defaultTrustSignals...),
		SEOKeywords: []string{
			strings.ToLower(defaultName), "services", "local business", "professional", "trusted",
		},
		ContactPrefs: model.ContactPreferences{Booking: true},
	}
}

// detectCategory tests the ordered category rules against the lowercased
// combined text; the first match wins.
func detectCategory(combined string) string {
	for _, rule := range categoryRules {
		if rule.pattern.MatchString(combined) {
			return rule.category
		}
	}
	return defaultCategory
}

// extractServices includes one capitalized label for every keyword set with
// at least one keyword present. Sets are not mutually exclusive.
func extractServices(combined string) []string {
	var services []string
	for _, set := range serviceKeywordSets {
		for _, kw := range set.keywords {
			if strings.Contains(combined, kw) {
				services = append(services, titleCaser.String(set.label))
				break
			}
		}
	}
	if len(services) == 0 {
		services = []string{defaultService}
	}
	return services
}

// extractLocation tries the ordered location patterns against the
// original-case description; the first capturing match wins.
func extractLocation(description string) string {
	for _, pattern := range locationPatterns {
		if m := pattern.FindStringSubmatch(description); len(m) > 1 {
			return strings.TrimRight(strings.TrimSpace(m[1]), ".,!")
		}
	}
	return ""
}

// classifyTone scans the ordered tone buckets; the first bucket with a
// keyword present wins, otherwise professional.
func classifyTone(combined string) model.BrandTone {
	for _, rule := range toneRules {
		for _, kw := range rule.keywords {
			if strings.Contains(combined, kw) {
				return rule.tone
			}
		}
	}
	return defaultTone
}

// buildTrustSignals runs every trust rule as an independent presence test,
// appending its sentence on match. No matches yield the fixed defaults.
// The result is capped at maxTrustSignals.
func buildTrustSignals(combined string) []string {
	var signals []string
	for _, rule := range trustRules {
		for _, kw := range rule.keywords {
			if strings.Contains(combined, kw) {
				signals = append(signals, rule.sentence)
				break
			}
		}
	}
	if len(signals) == 0 {
		signals = append(signals, defaultTrustSignals...)
	}
	if len(signals) > maxTrustSignals {
		signals = signals[:maxTrustSignals]
	}
	return signals
}

// buildSEOKeywords assembles name + category keywords + closing keywords,
// deduplicates case-insensitively preserving first-seen order, pads with
// fillers to the minimum, and truncates to the maximum.
func buildSEOKeywords(name, category string) []string {
	categoryKeywords, ok := seoCategoryKeywords[category]
	if !ok {
		categoryKeywords = seoGenericKeywords
	}

	raw := make([]string, 0, 1+len(categoryKeywords)+len(seoClosingKeywords))
	raw = append(raw, strings.ToLower(name))
	raw = append(raw, categoryKeywords...)
	raw = append(raw, seoClosingKeywords...)

	seen := make(map[string]bool, len(raw))
	keywords := make([]string, 0, len(raw))
	for _, kw := range raw {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, key)
	}

	for _, filler := range seoFillerKeywords {
		if len(keywords) >= minSEOKeywords {
			break
		}
		if seen[filler] {
			continue
		}
		seen[filler] = true
		keywords = append(keywords, filler)
	}

	if len(keywords) > maxSEOKeywords {
		keywords = keywords[:maxSEOKeywords]
	}
	return keywords
}

// extractValueProposition returns the first sentence of the description
// longer than minSentenceLen characters, or the fixed default.
func extractValueProposition(description string) string {
	for _, sentence := range splitSentences(description) {
		if len(sentence) > minSentenceLen {
			return sentence
		}
	}
	return defaultValueProp
}

// splitSentences breaks text on sentence punctuation and trims each piece.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// detectAudience scans the audience rules in order; first match wins.
func detectAudience(combined string) string {
	for _, rule := range audienceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(combined, kw) {
				return rule.audience
			}
		}
	}
	return defaultAudience
}

// paletteFor returns the deterministic color pair for a tone.
func paletteFor(tone model.BrandTone) []string {
	if palette, ok := tonePalettes[tone]; ok {
		return append([]string(nil), palette...)
	}
	return append([]string(nil), tonePalettes[defaultTone]...)
}
