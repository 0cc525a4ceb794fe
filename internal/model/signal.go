package model

// RawSignal is the untrusted, partial input describing a business. It is
// produced by the scraper or assembled from free-text conversational answers
// and is only ever consumed by the synthesizer; downstream code sees the
// complete BusinessProfile instead.
type RawSignal struct {
	Title        string            `json:"title,omitempty"`
	Description  string            `json:"description,omitempty"`
	ContactEmail string            `json:"contact_email,omitempty"`
	ContactPhone string            `json:"contact_phone,omitempty"`
	Images       []string          `json:"images,omitempty"`
	SocialLinks  map[string]string `json:"social_links,omitempty"`
	FreeText     string            `json:"free_text,omitempty"`
}

// Empty reports whether the signal carries no usable information at all.
func (s RawSignal) Empty() bool {
	return s.Title == "" &&
		s.Description == "" &&
		s.ContactEmail == "" &&
		s.ContactPhone == "" &&
		len(s.Images) == 0 &&
		len(s.SocialLinks) == 0 &&
		s.FreeText == ""
}
