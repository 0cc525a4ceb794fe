// Package sitecfg assembles the website configuration handed to the
// downstream renderer. Assembly is pure: the same profile/template pair
// always yields the same configuration.
package sitecfg

import (
	"fmt"
	"strings"

	"github.com/sells-group/sitegen/internal/model"
)

// Assemble combines a synthesized profile with the chosen template's layout
// and styling into the renderer's configuration shape.
func Assemble(profile model.BusinessProfile, tpl model.TemplateDefinition) model.WebsiteConfig {
	return model.WebsiteConfig{
		Slug:     Slugify(profile.Name),
		Theme:    buildTheme(profile, tpl),
		Sections: buildSections(profile, tpl),
		Content:  buildContent(profile),
		LeadForm: buildLeadForm(profile),
		Booking:  buildBooking(profile),
		SEO:      buildSEO(profile),
	}
}

// Slugify lowercases the name and collapses non-alphanumeric runs into
// single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case 'a' <= r && r <= 'z' || '0' <= r && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		slug = "business"
	}
	return slug
}

// buildTheme starts from the template styling and overrides colors with the
// profile's brand palette when present.
func buildTheme(profile model.BusinessProfile, tpl model.TemplateDefinition) model.Theme {
	theme := model.Theme{
		PrimaryColor:   tpl.Styling.PrimaryColor,
		SecondaryColor: tpl.Styling.SecondaryColor,
		Font:           tpl.Styling.Font,
	}
	if len(profile.BrandColors) > 0 {
		theme.PrimaryColor = profile.BrandColors[0]
	}
	if len(profile.BrandColors) > 1 {
		theme.SecondaryColor = profile.BrandColors[1]
	}
	return theme
}

// buildSections takes the template's default section list and adjusts it
// for contact preferences: the booking section only renders when booking is
// enabled, and a contact section is always present.
func buildSections(profile model.BusinessProfile, tpl model.TemplateDefinition) []string {
	sections := make([]string, 0, len(tpl.Sections)+1)
	hasContact := false
	for _, s := range tpl.Sections {
		if s == "booking" && !profile.ContactPrefs.Booking {
			continue
		}
		if s == "contact" {
			hasContact = true
		}
		sections = append(sections, s)
	}
	if !hasContact {
		sections = append(sections, "contact")
	}
	return sections
}

func buildContent(profile model.BusinessProfile) model.SiteContent {
	services := make([]model.ServiceCard, 0, len(profile.Services))
	for _, svc := range profile.Services {
		services = append(services, model.ServiceCard{
			Title:       svc,
			Description: fmt.Sprintf("%s tailored to %s.", svc, strings.ToLower(profile.TargetAudience)),
		})
	}

	about := profile.ValueProposition
	if len(profile.TrustSignals) > 0 {
		about = about + " " + strings.Join(profile.TrustSignals, ". ") + "."
	}

	return model.SiteContent{
		HeroHeadline: profile.Name,
		HeroSubtext:  profile.ValueProposition,
		Services:     services,
		About:        about,
	}
}

func buildLeadForm(profile model.BusinessProfile) model.LeadForm {
	fields := []string{"name", "email", "message"}
	if profile.ContactPrefs.Phone {
		fields = append(fields, "phone")
	}
	return model.LeadForm{Fields: fields}
}

func buildBooking(profile model.BusinessProfile) model.Booking {
	if !profile.ContactPrefs.Booking {
		return model.Booking{}
	}
	return model.Booking{
		Provider:   "calendly",
		CalendarID: Slugify(profile.Name),
	}
}

func buildSEO(profile model.BusinessProfile) model.SEOMeta {
	var title string
	if profile.Location != "" {
		title = fmt.Sprintf("%s | %s in %s", profile.Name, profile.Category, profile.Location)
	} else {
		title = fmt.Sprintf("%s | %s", profile.Name, profile.Category)
	}
	return model.SEOMeta{
		Title:       title,
		Description: profile.ValueProposition,
		Keywords:    append([]string(nil), profile.SEOKeywords...),
	}
}
