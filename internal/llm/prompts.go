package llm

import _ "embed"

var (
	//go:embed prompts/registration.txt
	promptRegistration string
	//go:embed prompts/compliance.txt
	promptCompliance string
	//go:embed prompts/branding.txt
	promptBranding string
	//go:embed prompts/hr.txt
	promptHR string
)

// CategoryPrompt returns the instruction prompt for a document category and
// whether the category was recognized.
func CategoryPrompt(category string) (string, bool) {
	switch category {
	case "registration":
		return promptRegistration, true
	case "compliance":
		return promptCompliance, true
	case "branding":
		return promptBranding, true
	case "hr":
		return promptHR, true
	default:
		return "", false
	}
}
