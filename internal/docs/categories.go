package docs

// KeywordPoint maps a lowercase keyword to the highlight emitted when the
// keyword appears anywhere in the generated text. Order is significant:
// earlier matches surface first.
type KeywordPoint struct {
	Keyword string
	Point   string
}

// Category parametrizes the generator: the four guides differ only in
// prompt, vocabulary and fallbacks.
type Category struct {
	Key       string
	Title     string
	Keywords  []KeywordPoint
	Fallbacks []string
}

const (
	CategoryRegistration = "registration"
	CategoryCompliance   = "compliance"
	CategoryBranding     = "branding"
	CategoryHR           = "hr"
)

var categories = map[string]Category{
	CategoryRegistration: {
		Key:   CategoryRegistration,
		Title: "Company Registration Guide",
		Keywords: []KeywordPoint{
			{Keyword: "private limited", Point: "Consider a Private Limited Company structure"},
			{Keyword: "llp", Point: "Evaluate an LLP as a lighter alternative"},
			{Keyword: "spice+", Point: "Incorporate through the SPICe+ form on the MCA portal"},
			{Keyword: "dsc", Point: "Obtain Digital Signature Certificates for all directors"},
			{Keyword: "din", Point: "Apply for Director Identification Numbers"},
			{Keyword: "pan", Point: "Secure the company PAN and TAN after incorporation"},
			{Keyword: "gst", Point: "Check whether GST registration applies from day one"},
			{Keyword: "trademark", Point: "Run a trademark search before locking the name"},
		},
		Fallbacks: []string{
			"Choose the business structure that fits your funding plans",
			"Reserve your company name early",
			"Keep incorporation documents in one place",
			"Budget for government and professional fees",
			"Open a current account right after incorporation",
			"Complete post-incorporation filings within 30 days",
		},
	},
	CategoryCompliance: {
		Key:   CategoryCompliance,
		Title: "Compliance Guide",
		Keywords: []KeywordPoint{
			{Keyword: "gst", Point: "Stay on top of GST registration and return filing"},
			{Keyword: "tds", Point: "Deduct and deposit TDS on applicable payments"},
			{Keyword: "roc", Point: "File ROC annual returns on schedule"},
			{Keyword: "provident fund", Point: "Register for Provident Fund once headcount requires it"},
			{Keyword: "esi", Point: "Check ESI applicability for your team"},
			{Keyword: "professional tax", Point: "Register for professional tax in your state"},
			{Keyword: "fssai", Point: "Hold a valid FSSAI license for food operations"},
			{Keyword: "audit", Point: "Appoint an auditor within the statutory window"},
		},
		Fallbacks: []string{
			"Maintain a monthly compliance calendar",
			"File statutory returns before their due dates",
			"Keep board minutes and statutory registers current",
			"Reconcile books with filed returns every quarter",
			"Track state-specific labour law obligations",
			"Review licenses annually for renewal dates",
		},
	},
	CategoryBranding: {
		Key:   CategoryBranding,
		Title: "Brand Guide",
		Keywords: []KeywordPoint{
			{Keyword: "positioning", Point: "Anchor the brand in a clear positioning statement"},
			{Keyword: "logo", Point: "Commission a logo aligned with your style preference"},
			{Keyword: "palette", Point: "Build the visual identity around a consistent palette"},
			{Keyword: "typography", Point: "Pick typography that scales from web to print"},
			{Keyword: "tagline", Point: "Shortlist taglines and test them with customers"},
			{Keyword: "trademark", Point: "Protect the brand with a trademark filing"},
			{Keyword: "domain", Point: "Secure the domain and social handles together"},
		},
		Fallbacks: []string{
			"Write down what the brand stands for",
			"Keep the visual identity consistent everywhere",
			"Define a tone of voice for all communication",
			"Prepare a minimal launch kit before going public",
			"Collect early customer feedback on the brand",
			"Revisit brand guidelines as the business grows",
		},
	},
	CategoryHR: {
		Key:   CategoryHR,
		Title: "HR Guide",
		Keywords: []KeywordPoint{
			{Keyword: "offer letter", Point: "Issue written offer letters for every hire"},
			{Keyword: "probation", Point: "Set clear probation and notice terms"},
			{Keyword: "provident fund", Point: "Plan for Provident Fund obligations as you grow"},
			{Keyword: "esi", Point: "Check ESI coverage for eligible employees"},
			{Keyword: "posh", Point: "Put POSH policies in place from the start"},
			{Keyword: "payroll", Point: "Run payroll on a fixed monthly cadence"},
			{Keyword: "leave", Point: "Publish a simple leave policy early"},
		},
		Fallbacks: []string{
			"Define roles before you start hiring",
			"Document employment terms in writing",
			"Set up statutory payroll deductions correctly",
			"Start a lightweight employee handbook",
			"Schedule regular feedback conversations",
			"Keep personnel records organized from day one",
		},
	},
}

// CategoryByKey returns the category configuration for a key.
func CategoryByKey(key string) (Category, bool) {
	cat, ok := categories[key]
	return cat, ok
}

// CategoryKeys returns the four category keys in generation order.
func CategoryKeys() []string {
	return []string{CategoryRegistration, CategoryCompliance, CategoryBranding, CategoryHR}
}
