package model

// Theme holds the resolved color/font choices for a generated site.
type Theme struct {
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Font           string `json:"font"`
}

// ServiceCard is one entry in the services section.
type ServiceCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SiteContent holds the written copy for a generated site.
type SiteContent struct {
	HeroHeadline string        `json:"heroHeadline"`
	HeroSubtext  string        `json:"heroSubtext"`
	Services     []ServiceCard `json:"services"`
	About        string        `json:"about"`
}

// LeadForm lists the fields the lead-capture form renders.
type LeadForm struct {
	Fields []string `json:"fields"`
}

// Booking configures the booking integration block.
type Booking struct {
	Provider   string `json:"provider"`
	CalendarID string `json:"calendarId"`
}

// SEOMeta holds the page-level SEO metadata.
type SEOMeta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// WebsiteConfig is the assembled presentation configuration consumed by the
// downstream renderer. Field names follow the renderer's wire contract.
type WebsiteConfig struct {
	Slug     string      `json:"slug"`
	Theme    Theme       `json:"theme"`
	Sections []string    `json:"sections"`
	Content  SiteContent `json:"content"`
	LeadForm LeadForm    `json:"leadForm"`
	Booking  Booking     `json:"booking"`
	SEO      SEOMeta     `json:"seo"`
}
