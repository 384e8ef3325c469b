package profile

import (
	"fmt"
	"strings"
)

// Documented defaults used when a wizard answer is missing. Generation never
// fails on an incomplete profile; it falls back to these.
const (
	DefaultBusinessName = "Company"
	DefaultDescription  = "a new business"
	DefaultIndustry     = "General"
	DefaultLocation     = "India"
	DefaultBrandStyle   = "modern and professional"
	DefaultPartners     = "a single founder"
)

// ContextBlock renders the profile into the natural-language block sent as
// the user message to the AI gateway. Every field is defaulted when blank.
func ContextBlock(p BusinessProfile) string {
	partners := DefaultPartners
	if len(p.Partners) > 0 {
		partners = strings.Join(p.Partners, "; ")
	}
	return fmt.Sprintf(
		`Business profile:
- Name: %s
- What it does: %s
- Industry: %s
- Location: %s
- Brand color/style preference: %s
- Partners/directors: %s`,
		orDefault(p.BusinessName, DefaultBusinessName),
		orDefault(p.Description, DefaultDescription),
		orDefault(p.Industry, DefaultIndustry),
		orDefault(p.Location, DefaultLocation),
		orDefault(p.BrandStyle, DefaultBrandStyle),
		partners,
	)
}

// DisplayName returns the business name with the documented default applied.
func DisplayName(p BusinessProfile) string {
	return orDefault(p.BusinessName, DefaultBusinessName)
}

func orDefault(val, def string) string {
	if strings.TrimSpace(val) == "" {
		return def
	}
	return val
}
