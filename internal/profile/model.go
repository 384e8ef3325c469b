package profile

import "time"

// BusinessProfile holds the wizard answers for one session. At most one row
// exists per session; the wizard upserts a field at a time as answers arrive.
type BusinessProfile struct {
	SessionID    string    `json:"sessionId"`
	UserID       string    `json:"userId"`
	BusinessName string    `json:"businessName"`
	Description  string    `json:"description"`
	Industry     string    `json:"industry"`
	Location     string    `json:"location"`
	BrandStyle   string    `json:"brandStyle"`
	Partners     []string  `json:"partners"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MissingFields lists the profile fields still blank, for the orchestrator's
// soft precondition check.
func (p BusinessProfile) MissingFields() []string {
	var missing []string
	if p.BusinessName == "" {
		missing = append(missing, "businessName")
	}
	if p.Description == "" {
		missing = append(missing, "description")
	}
	if p.Industry == "" {
		missing = append(missing, "industry")
	}
	if p.Location == "" {
		missing = append(missing, "location")
	}
	if p.BrandStyle == "" {
		missing = append(missing, "brandStyle")
	}
	if len(p.Partners) == 0 {
		missing = append(missing, "partners")
	}
	return missing
}
