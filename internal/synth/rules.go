package synth

import (
	"regexp"

	"github.com/sells-group/sitegen/internal/model"
)

// The synthesizer is entirely rule-table driven. Every table below is
// ordered and first-match-wins unless noted otherwise, so adding a rule is
// a data change that never touches control flow.

// categoryRule maps a compiled pattern to a business category.
type categoryRule struct {
	pattern  *regexp.Regexp
	category string
}

// categoryRules is tested in order against the lowercased name+description.
// More specific trades come before the catch-all retail pattern.
var categoryRules = []categoryRule{
	{regexp.MustCompile(`landscap|garden|lawn care|lawn mow|tree service`), "Landscaping"},
	{regexp.MustCompile(`restaurant|cafe|coffee|bakery|catering|food truck|dining|pizzeria|bistro`), "Restaurant"},
	{regexp.MustCompile(`salon|spa\b|beauty|barber|nail|lash|skincare`), "Beauty"},
	{regexp.MustCompile(`plumb|electric|hvac|roof|remodel|renovat|construction|contractor|handyman|carpent`), "Construction"},
	{regexp.MustCompile(`dental|dentist|clinic|chiropract|therap|counsel|medical|wellness|acupunctur`), "Health & Wellness"},
	{regexp.MustCompile(`gym|fitness|yoga|pilates|crossfit|personal train`), "Fitness"},
	{regexp.MustCompile(`law firm|attorney|legal|account|bookkeep|tax prep|consult|financial advis|insurance`), "Professional Services"},
	{regexp.MustCompile(`auto repair|mechanic|auto body|car wash|detailing|tire|oil change`), "Automotive"},
	{regexp.MustCompile(`software|web design|web develop|app develop|it service|digital agency|tech support`), "Technology"},
	{regexp.MustCompile(`real estate|realtor|property manage|home staging`), "Real Estate"},
	{regexp.MustCompile(`tutor|academy|school|training course|lessons|education`), "Education"},
	{regexp.MustCompile(`wedding|event plan|photograph|videograph|dj service|party rental`), "Events"},
	{regexp.MustCompile(`cleaning|maid|janitorial|pressure wash|carpet clean`), "Cleaning"},
	{regexp.MustCompile(`boutique|retail|shop\b|store\b|merchandise`), "Retail"},
}

// defaultCategory is the classification fallback when no rule matches.
const defaultCategory = "Services"

// serviceKeywordSet contributes one capitalized service label when any of
// its keywords appears in the combined text. Sets are not mutually
// exclusive; several may match.
type serviceKeywordSet struct {
	label    string
	keywords []string
}

var serviceKeywordSets = []serviceKeywordSet{
	{"landscaping", []string{"landscap", "garden", "lawn", "tree", "irrigation"}},
	{"design", []string{"design", "creative", "branding"}},
	{"maintenance", []string{"maintenance", "upkeep", "repair"}},
	{"installation", []string{"install", "setup", "mounting"}},
	{"cleaning", []string{"clean", "maid", "janitorial", "wash"}},
	{"consulting", []string{"consult", "advisory", "strategy", "coaching"}},
	{"catering", []string{"catering", "food", "menu", "dining"}},
	{"wellness", []string{"wellness", "massage", "therapy", "treatment"}},
	{"training", []string{"training", "classes", "lessons", "tutoring"}},
	{"photography", []string{"photograph", "videograph", "portrait"}},
	{"renovation", []string{"renovat", "remodel", "construction", "roofing", "plumbing", "electrical"}},
	{"auto care", []string{"auto", "vehicle", "tire", "mechanic"}},
	{"development", []string{"software", "website", "web develop", "app"}},
	{"events", []string{"event", "wedding", "party", "venue"}},
}

// defaultService is used when no keyword set matches.
const defaultService = "Services"

// locationPatterns are tried in order against the original-case description;
// the first capturing match wins. Group 1 is the location.
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:[Bb]ased in|[Ll]ocated in|[Ss]erving)\s+([A-Z][a-z.'\-]*(?:\s+[A-Z][a-z.'\-]*)*(?:,\s*[A-Z]{2})?)`),
	regexp.MustCompile(`\bin\s+([A-Z][a-z]+(?: [A-Z][a-z]+)*,\s*[A-Z]{2})\b`),
	regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+)*, [A-Z]{2})\b`),
}

// toneRule assigns a brand tone when any keyword is present. Buckets are
// scanned in order; the professional default applies when none match.
type toneRule struct {
	tone     model.BrandTone
	keywords []string
}

var toneRules = []toneRule{
	{model.ToneLuxury, []string{"luxury", "premium", "exclusive", "elegant", "upscale", "high-end", "bespoke"}},
	{model.ToneBold, []string{"bold", "innovative", "cutting-edge", "disrupt", "dynamic", "revolutionary"}},
	{model.ToneCasual, []string{"casual", "laid-back", "relaxed", "easygoing", "chill", "no-frills"}},
	{model.ToneFriendly, []string{"friendly", "welcoming", "family", "warm", "community", "caring", "neighborly"}},
}

const defaultTone = model.ToneProfessional

// trustRule appends its sentence when any keyword is present. Rules are
// independent presence tests, not first-match-wins.
type trustRule struct {
	keywords []string
	sentence string
}

var trustRules = []trustRule{
	{[]string{"award", "certified", "accredited", "licensed"}, "Award-winning, certified professionals"},
	{[]string{"year", "since", "established", "decade"}, "Years of proven experience"},
	{[]string{"client", "customer"}, "Trusted by hundreds of satisfied clients"},
	{[]string{"expert", "professional", "qualified", "skilled"}, "Expert team dedicated to quality"},
	{[]string{"guarantee", "warranty", "insured"}, "Satisfaction guaranteed on every job"},
}

// defaultTrustSignals fill in when no trust rule matches.
var defaultTrustSignals = []string{
	"Trusted local business",
	"Committed to quality service",
	"Responsive, reliable support",
}

// maxTrustSignals caps the trust signal list.
const maxTrustSignals = 5

// seoCategoryKeywords supplies the per-category keyword list for SEO
// assembly. Categories without an entry use seoGenericKeywords.
var seoCategoryKeywords = map[string][]string{
	"Landscaping":           {"landscaping", "garden design", "lawn care", "outdoor living"},
	"Restaurant":            {"restaurant", "local dining", "fresh food", "catering"},
	"Beauty":                {"salon", "beauty services", "spa", "self care"},
	"Construction":          {"construction", "home renovation", "licensed contractor", "remodeling"},
	"Health & Wellness":     {"health", "wellness", "clinic", "patient care"},
	"Fitness":               {"fitness", "gym", "personal training", "workout"},
	"Professional Services": {"consulting", "professional advice", "business services", "expert guidance"},
	"Automotive":            {"auto repair", "car service", "mechanic", "vehicle maintenance"},
	"Technology":            {"software", "web design", "digital solutions", "it services"},
	"Real Estate":           {"real estate", "homes for sale", "property", "realtor"},
	"Education":             {"education", "tutoring", "classes", "learning"},
	"Events":                {"event planning", "weddings", "photography", "celebrations"},
	"Cleaning":              {"cleaning services", "house cleaning", "commercial cleaning", "deep clean"},
	"Retail":                {"shop local", "boutique", "retail store", "quality products"},
	"Services":              {"services"},
}

// seoGenericKeywords is the fallback list for unknown categories.
var seoGenericKeywords = []string{"services"}

// seoClosingKeywords are always appended after the category list.
var seoClosingKeywords = []string{"local business", "professional", "trusted"}

// seoFillerKeywords pad the deduplicated list up to the minimum length.
var seoFillerKeywords = []string{"best", "affordable", "near me", "top rated", "experienced"}

const (
	minSEOKeywords = 5
	maxSEOKeywords = 20
)

// audienceRule maps description keywords to a target audience label.
type audienceRule struct {
	keywords []string
	audience string
}

var audienceRules = []audienceRule{
	{[]string{"local", "community", "neighborhood"}, "Local customers and families"},
	{[]string{"b2b", "businesses", "companies", "organizations"}, "Small and medium businesses"},
	{[]string{"b2c", "consumers", "shoppers"}, "Individual consumers"},
	{[]string{"startup", "founders"}, "Startups and growing teams"},
	{[]string{"enterprise", "corporate"}, "Enterprise organizations"},
}

const defaultAudience = "Local customers and businesses"

// tonePalettes maps each brand tone to a deterministic color pair.
var tonePalettes = map[model.BrandTone][]string{
	model.ToneProfessional: {"#1E3A5F", "#4A90D9"},
	model.ToneFriendly:     {"#2E7D32", "#FFB300"},
	model.ToneLuxury:       {"#1A1A2E", "#C9A227"},
	model.ToneBold:         {"#B71C1C", "#212121"},
	model.ToneCasual:       {"#0097A7", "#FF7043"},
}

const (
	defaultName      = "Business"
	defaultValueProp = "Quality service you can count on"
	minSentenceLen   = 20
)
