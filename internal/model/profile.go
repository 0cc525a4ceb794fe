package model

// BrandTone classifies the voice a generated site should use.
type BrandTone string

const (
	ToneProfessional BrandTone = "professional"
	ToneFriendly     BrandTone = "friendly"
	ToneLuxury       BrandTone = "luxury"
	ToneBold         BrandTone = "bold"
	ToneCasual       BrandTone = "casual"
)

// AllBrandTones returns every valid tone in declaration order.
func AllBrandTones() []BrandTone {
	return []BrandTone{ToneProfessional, ToneFriendly, ToneLuxury, ToneBold, ToneCasual}
}

// ValidTone reports whether t is one of the known brand tones.
func ValidTone(t BrandTone) bool {
	for _, known := range AllBrandTones() {
		if t == known {
			return true
		}
	}
	return false
}

// ContactPreferences records which contact channels the generated site
// should surface.
type ContactPreferences struct {
	Email   bool `json:"email"`
	Phone   bool `json:"phone"`
	Booking bool `json:"booking"`
}

// ImageAssets holds the resolved imagery for a generated site.
type ImageAssets struct {
	Hero    string   `json:"hero,omitempty"`
	Gallery []string `json:"gallery,omitempty"`
}

// BusinessProfile is the synthesized, always-complete description of a
// business. Every field is present and within bounds for any input the
// synthesizer sees, including the empty signal:
//
//	Services     ≥ 1 entry
//	TrustSignals 1..5 entries
//	SEOKeywords  5..20 entries, no duplicates
type BusinessProfile struct {
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	Location         string             `json:"location"`
	Services         []string           `json:"services"`
	ValueProposition string             `json:"value_proposition"`
	TargetAudience   string             `json:"target_audience"`
	BrandTone        BrandTone          `json:"brand_tone"`
	BrandColors      []string           `json:"brand_colors"`
	TrustSignals     []string           `json:"trust_signals"`
	SEOKeywords      []string           `json:"seo_keywords"`
	ContactPrefs     ContactPreferences `json:"contact_preferences"`
	LogoURL          string             `json:"logo_url,omitempty"`
	ImageAssets      *ImageAssets       `json:"image_assets,omitempty"`
}
