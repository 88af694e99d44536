package recipient

// Recipient priorities.
const (
	PriorityPrimary   = "primary"
	PrioritySecondary = "secondary"
)

// Instance levels a recommendation may be tagged with.
const (
	LevelLocal    = "local"
	LevelRegional = "regional"
	LevelFederal  = "federal"
)

// Provenance of a recipient's contact data.
const (
	ConfidenceVerified = "verified"
	ConfidenceStatic   = "static"
	ConfidenceUnknown  = "unknown"
)

// Recipient is one candidate destination for the finished document. It may
// originate from the recommendation pass, from the static directory, or be
// a custom entry the recommendation invented; enrichment fills gaps but
// never changes the id.
type Recipient struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Priority         string `json:"priority"`
	Level            string `json:"level,omitempty"`
	Effectiveness    string `json:"effectiveness,omitempty"`
	Reason           string `json:"reason,omitempty"`
	Email            string `json:"email,omitempty"`
	Website          string `json:"website,omitempty"`
	Address          string `json:"address,omitempty"`
	Jurisdiction     string `json:"jurisdiction,omitempty"`
	SourceConfidence string `json:"source_confidence,omitempty"`
	IsCustom         bool   `json:"is_custom,omitempty"`
}

// ContactDetails is the result of a live contact lookup for one recipient,
// cached in conversation state so later steps reuse it without re-querying.
type ContactDetails struct {
	Verified          bool     `json:"verified"`
	Address           string   `json:"address,omitempty"`
	Phone             string   `json:"phone,omitempty"`
	Email             string   `json:"email,omitempty"`
	WorkingHours      string   `json:"working_hours,omitempty"`
	PortalURL         string   `json:"portal_url,omitempty"`
	PortalName        string   `json:"portal_name,omitempty"`
	SubmissionMethods []string `json:"submission_methods,omitempty"`
	AuthRequired      string   `json:"auth_required,omitempty"`
	DocumentsNeeded   []string `json:"documents_needed,omitempty"`
	ProcessingTime    string   `json:"processing_time,omitempty"`
	Tips              string   `json:"tips,omitempty"`
	Recommendation    string   `json:"recommendation,omitempty"`
	Confidence        string   `json:"confidence,omitempty"`
	Source            string   `json:"source,omitempty"`
}

// Entry is a static directory record for a known recipient organization.
type Entry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email,omitempty"`
	Website       string `json:"website,omitempty"`
	Jurisdiction  string `json:"jurisdiction,omitempty"`
	Reason        string `json:"reason,omitempty"`
	WhenEffective string `json:"when_effective,omitempty"`
	Priority      int    `json:"priority"`
}

// Recommendation is the static category fallback: ordered primary and
// secondary recipient ids.
type Recommendation struct {
	Primary   []string
	Secondary []string
}

// Problem is one recognized sub-problem within a category.
type Problem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category describes one grievance category and its sub-problem catalog.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Problems []Problem `json:"problems,omitempty"`
}
