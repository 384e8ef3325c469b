package wizard

import (
	"strings"

	"companion-backend/internal/profile"
)

// Question is one step of the fixed onboarding sequence. Apply writes the
// answer into the matching profile field.
type Question struct {
	Field  string
	Prompt string
	Apply  func(p *profile.BusinessProfile, answer string)
}

// Questions is the fixed, ordered onboarding sequence. No branching and no
// backtracking; each answer advances the index by one.
var Questions = []Question{
	{
		Field:  "businessName",
		Prompt: "What would you like to name your business?",
		Apply:  func(p *profile.BusinessProfile, answer string) { p.BusinessName = answer },
	},
	{
		Field:  "description",
		Prompt: "Tell me a little about your business. What will it do?",
		Apply:  func(p *profile.BusinessProfile, answer string) { p.Description = answer },
	},
	{
		Field:  "industry",
		Prompt: "Which industry does your business belong to?",
		Apply:  func(p *profile.BusinessProfile, answer string) { p.Industry = answer },
	},
	{
		Field:  "location",
		Prompt: "Where will your business operate from?",
		Apply:  func(p *profile.BusinessProfile, answer string) { p.Location = answer },
	},
	{
		Field:  "brandStyle",
		Prompt: "How would you describe the look and feel you want for your brand?",
		Apply:  func(p *profile.BusinessProfile, answer string) { p.BrandStyle = answer },
	},
	{
		Field:  "partners",
		Prompt: "Who are the partners or directors? List their names, separated by commas.",
		Apply:  func(p *profile.BusinessProfile, answer string) { p.Partners = splitPartners(answer) },
	},
}

// GenerationStartedMessage closes the wizard once the last answer lands.
const GenerationStartedMessage = "Thanks! I have everything I need. I'm preparing your business documents now; this usually takes about a minute."

// AlreadyCompletedMessage answers messages that arrive after the wizard is done.
const AlreadyCompletedMessage = "Your onboarding is already complete. Check your documents for the generated guides."

func splitPartners(answer string) []string {
	replaced := strings.NewReplacer(" and ", ",", "&", ",").Replace(answer)
	parts := strings.Split(replaced, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
