package speclint

// Severity classifies a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// RuleDef is a data-driven rule definition. Rules are stateless; all
// context arrives through the Check function parameters.
type RuleDef struct {
	ID          string    // unique identifier, e.g. "SEC01"
	Name        string    // human-readable name, e.g. "sections.user_goal"
	Group       string    // category: "sections", "qagate"
	Description string    // what the rule requires
	Severity    Severity  // default severity
	Check       CheckFunc // the check function

	// Documentation fields for the rules listing.
	Rationale string // why this rule exists
	Fix       string // how to satisfy it
}

// CheckFunc analyzes a document and returns diagnostics. The opts
// parameter carries rule-specific options from configuration.
type CheckFunc func(doc *Document, opts map[string]any) []Diagnostic

// Diagnostic is a single finding.
type Diagnostic struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     int      `json:"line"`              // 1-based; 0 when the finding has no anchor
	Section  string   `json:"section,omitempty"` // heading the finding relates to
}
