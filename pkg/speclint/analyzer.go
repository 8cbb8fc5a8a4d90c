package speclint

import "sort"

// Analyzer runs registered rules against parsed documents.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates an analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs every enabled rule against the document. Diagnostics are
// returned in stable order: rule ID, then line.
func (a *Analyzer) Analyze(doc *Document) []Diagnostic {
	if doc == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range All() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(doc, a.config.GetRuleOptions(rule.ID))
		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}
		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].RuleID != diagnostics[j].RuleID {
			return diagnostics[i].RuleID < diagnostics[j].RuleID
		}
		return diagnostics[i].Line < diagnostics[j].Line
	})

	return diagnostics
}

// ErrorCount returns how many diagnostics are errors.
func ErrorCount(diags []Diagnostic) int {
	count := 0
	for _, d := range diags {
		if d.Severity == SeverityError {
			count++
		}
	}
	return count
}
